package model

// Fitter binds an estimator to an ordered sequence of (x, y) observations.
type Fitter interface {
	// Fit validates the observations and stores a read-only view of them.
	Fit(x, y []float64) error
}

// Smoother estimates an underlying trend at arbitrary query points.
type Smoother interface {
	Fitter

	// PredictAt returns the trend estimate at a single query point.
	PredictAt(x float64) (float64, error)

	// Predict returns one trend estimate per query point.
	Predict(xs []float64) ([]float64, error)
}

// Scorer evaluates a fitted estimator against reference observations.
type Scorer interface {
	// Score computes the coefficient of determination (R²).
	Score(x, y []float64) (float64, error)
}
