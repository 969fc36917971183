// Package log defines standard attribute keys for smoothing operations.
//
// Using these keys consistently across log statements keeps curve-fitting
// runs easy to filter and compare: every record that describes a fit carries
// the same window, kernel and degree attributes under the same names.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "LocalPolynomial".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "predict_at", "score"
	OperationKey = "smoothing.operation"
)

// Data shape and configuration.
const (
	// PointsKey is the number of observations bound by Fit.
	PointsKey = "data.points"

	// QueriesKey is the number of query points in a Predict call.
	QueriesKey = "query.count"

	// DegreeKey is the local polynomial degree (0, 1 or 2).
	DegreeKey = "config.degree"

	// KernelKey names the kernel weight function.
	KernelKey = "config.kernel"

	// WindowModeKey is the window policy: "span" or "bandwidth".
	WindowModeKey = "window.mode"

	// SpanKey is the proportional span in (0, 1], when in span mode.
	SpanKey = "window.span"

	// BandwidthKey is the fixed half-width, when in bandwidth mode.
	BandwidthKey = "window.bandwidth"
)

// Performance and results.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// GapsKey counts query points that failed and were emitted as gaps.
	GapsKey = "result.gaps"

	// R2ScoreKey records the R² of the smoothed curve against observations.
	R2ScoreKey = "metrics.r2_score"
)

// Standard operation values.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationPredictAt = "predict_at"
	OperationScore     = "score"
)
