package model

// EstimatorState represents the fitting state of an estimator.
type EstimatorState int

const (
	// NotFitted means the estimator has not seen any data yet.
	NotFitted EstimatorState = iota
	// Fitted means the estimator holds a bound dataset and can predict.
	Fitted
)

// BaseEstimator is the common base embedded by all estimators.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted returns whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to its initial, unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
