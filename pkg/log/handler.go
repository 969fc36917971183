package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// StacktraceHandler is a slog handler that recognizes cockroachdb/errors
// values in the "error" attribute and emits their stack trace as a separate
// "stacktrace" attribute.
type StacktraceHandler struct {
	handler slog.Handler
}

// WrapWithStacktraceHandler wraps a slog handler so that records carrying an
// error attribute also carry the error's stack trace.
func WrapWithStacktraceHandler(handler slog.Handler) slog.Handler {
	return &StacktraceHandler{handler: handler}
}

func (sh *StacktraceHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return sh.handler.Enabled(ctx, l)
}

func (sh *StacktraceHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			if err, ok := attr.Value.Any().(error); ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return sh.handler.Handle(ctx, r)
}

func (sh *StacktraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StacktraceHandler{handler: sh.handler.WithAttrs(attrs)}
}

func (sh *StacktraceHandler) WithGroup(g string) slog.Handler {
	return &StacktraceHandler{handler: sh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
