// Package errors provides structured error handling and warnings for the
// smoothing library. Error types carry stack traces via cockroachdb/errors
// and marshal themselves into zerolog events for structured logging.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("smooth-warning: %v\n", w)
	}
	// zerolog sink, installed lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler. Pass a no-op
// function to silence warnings entirely.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. When set, it
// takes precedence over the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the configured sink.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateWindowWarning is raised when every observation kept in the
// active window sits exactly at the query point, so the effective half-width
// collapses to zero and all kernel weights fall back to W(0).
type DegenerateWindowWarning struct {
	Op     string
	QueryX float64
	Points int
}

func (w *DegenerateWindowWarning) Error() string {
	return fmt.Sprintf("%s: window around x=%g is degenerate (%d points, zero half-width); kernel weighting has no effect", w.Op, w.QueryX, w.Points)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *DegenerateWindowWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Float64("query_x", w.QueryX).
		Int("points", w.Points).
		Str("type", "DegenerateWindowWarning")
}

// NewDegenerateWindowWarning creates a new DegenerateWindowWarning.
func NewDegenerateWindowWarning(op string, queryX float64, points int) *DegenerateWindowWarning {
	return &DegenerateWindowWarning{Op: op, QueryX: queryX, Points: points}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Predict or Score is called on an estimator
// that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("smooth: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when paired input slices disagree in length.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("smooth: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// InvalidInputError is returned before any computation proceeds: the dataset
// is empty, contains non-finite values, or a configuration value is outside
// its valid domain (span outside (0,1], bandwidth <= 0, degree not in
// {0,1,2}).
type InvalidInputError struct {
	Op     string
	Reason string
	Value  interface{}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("smooth: %s: invalid input: %s (got: %v)", e.Op, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *InvalidInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidInputError")
}

// NewInvalidInputError creates an InvalidInputError with a stack trace attached.
func NewInvalidInputError(op, reason string, value interface{}) error {
	err := &InvalidInputError{Op: op, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// InsufficientDataError is returned when fewer observations remain in the
// active window than the local regression needs (degree + 1), making the fit
// underdetermined. It is local to a single query point; callers may skip the
// point or retry with a lower degree or wider window.
type InsufficientDataError struct {
	Op       string
	QueryX   float64
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("smooth: %s: window around x=%g holds %d observations, need at least %d", e.Op, e.QueryX, e.Got, e.Required)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("query_x", e.QueryX).
		Int("required", e.Required).
		Int("got", e.Got).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError creates an InsufficientDataError with a stack trace attached.
func NewInsufficientDataError(op string, queryX float64, required, got int) error {
	err := &InsufficientDataError{Op: op, QueryX: queryX, Required: required, Got: got}
	return errors.WithStack(err)
}

// SingularFitError is returned when the weighted design matrix at a query
// point is numerically singular even though enough observations remain, for
// example when all x values in the window coincide. Retrying with identical
// inputs yields the identical singular matrix, so it is never retried;
// callers may recover by widening the window or lowering the degree.
type SingularFitError struct {
	Op     string
	QueryX float64
	Reason string
}

func (e *SingularFitError) Error() string {
	return fmt.Sprintf("smooth: %s: singular weighted fit at x=%g: %s", e.Op, e.QueryX, e.Reason)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *SingularFitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("query_x", e.QueryX).
		Str("reason", e.Reason).
		Str("type", "SingularFitError")
}

// NewSingularFitError creates a SingularFitError with a stack trace attached.
func NewSingularFitError(op string, queryX float64, reason string) error {
	err := &SingularFitError{Op: op, QueryX: queryX, Reason: reason}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors passthroughs
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// CombineErrors returns err, or otherErr if err is nil. Both errors remain
// discoverable through Is and As.
func CombineErrors(err, otherErr error) error {
	return errors.CombineErrors(err, otherErr)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when a data source yields no observations.
	ErrEmptyData = New("empty data")
)
