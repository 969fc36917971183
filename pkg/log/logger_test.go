package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/go-smooth/smooth/pkg/errors"
)

func TestStacktraceHandler_AddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(WrapWithStacktraceHandler(handler))

	err := errors.NewSingularFitError("LocalPolynomial.PredictAt", 1.5, "rank deficient")
	logger.Error("fit failed", ErrAttr(err))

	var record map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("log output is not valid JSON: %v", jsonErr)
	}
	if _, ok := record[StacktraceAttrKey]; !ok {
		t.Errorf("expected %q attribute in record: %s", StacktraceAttrKey, buf.String())
	}
	if !strings.Contains(buf.String(), "singular weighted fit") {
		t.Errorf("expected error message in record: %s", buf.String())
	}
}

func TestToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		if got := ToLogLevel(name); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRedirectWarnings(t *testing.T) {
	var buf bytes.Buffer
	RedirectWarnings(zerolog.New(&buf))
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewDegenerateWindowWarning("LocalPolynomial.PredictAt", 2, 3))

	out := buf.String()
	if !strings.Contains(out, "DegenerateWindowWarning") {
		t.Errorf("expected structured warning type in output: %s", out)
	}
	if !strings.Contains(out, "query_x") {
		t.Errorf("expected structured query_x field in output: %s", out)
	}
}
