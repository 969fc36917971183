package errors

import (
	"fmt"
	"math"
)

// CheckFinite returns an InvalidInputError if any value in the slice is NaN
// or infinite. The name identifies the offending input in the error message.
func CheckFinite(op, name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewInvalidInputError(op, fmt.Sprintf("%s contains a non-finite value at index %d", name, i), v)
		}
	}
	return nil
}

// CheckScalarFinite returns an InvalidInputError if the value is NaN or
// infinite.
func CheckScalarFinite(op, name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewInvalidInputError(op, name+" must be finite", value)
	}
	return nil
}
