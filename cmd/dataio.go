package cmd

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-smooth/smooth/pkg/errors"
)

// readObservations parses a two-column CSV of (x, y) observations. A header
// row is tolerated and skipped. Pass "-" to read from stdin.
func readObservations(path string) (x, y []float64, err error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, nil, errors.Wrapf(openErr, "open input %s", path)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	first := true
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, errors.Wrap(readErr, "read input")
		}

		xv, xErr := strconv.ParseFloat(record[0], 64)
		yv, yErr := strconv.ParseFloat(record[1], 64)
		if xErr != nil || yErr != nil {
			if first {
				// Header row.
				first = false
				continue
			}
			return nil, nil, errors.Newf("malformed row %q: both columns must be numeric", record)
		}
		first = false
		x = append(x, xv)
		y = append(y, yv)
	}

	if len(x) == 0 {
		return nil, nil, errors.Wrapf(errors.ErrEmptyData, "input %s", path)
	}
	return x, y, nil
}

// writeCurve writes the query points and their smoothed values as CSV. NaN
// values (gaps from failed fits) are written as an empty field so downstream
// tools see a missing value rather than "NaN". Pass "-" to write to stdout.
func writeCurve(path string, xs, ys []float64) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create output %s", path)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"x", "smoothed"}); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i := range xs {
		yField := ""
		if !math.IsNaN(ys[i]) {
			yField = strconv.FormatFloat(ys[i], 'g', -1, 64)
		}
		record := []string{strconv.FormatFloat(xs[i], 'g', -1, 64), yField}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "flush output")
	}
	return nil
}
