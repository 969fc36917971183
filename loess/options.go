package loess

// Option is a function that configures a LocalPolynomial.
type Option func(*LocalPolynomial)

// WithDegree sets the local polynomial degree: 0 fits a locally constant
// value (bin smoother), 1 a local line, 2 a local parabola.
func WithDegree(degree int) Option {
	return func(lp *LocalPolynomial) {
		lp.degree = degree
	}
}

// WithSpan selects proportional-span windowing: each window holds the
// ceil(span·N) observations nearest to the query point. Span must be in
// (0, 1].
func WithSpan(span float64) Option {
	return func(lp *LocalPolynomial) {
		lp.mode = spanWindow
		lp.span = span
	}
}

// WithBandwidth selects fixed-bandwidth windowing: each window holds every
// observation within distance h of the query point. h must be positive.
func WithBandwidth(h float64) Option {
	return func(lp *LocalPolynomial) {
		lp.mode = bandwidthWindow
		lp.bandwidth = h
	}
}

// WithKernel sets the kernel weight function. When unset, tri-weight is used
// for degree 1 and 2, and box for degree 0.
func WithKernel(k Kernel) Option {
	return func(lp *LocalPolynomial) {
		lp.kernel = k
	}
}

// WithCopyData sets whether Fit copies the observations. Copying is the
// default; disabling it avoids the allocation but requires the caller not to
// mutate the slices while the estimator is in use.
func WithCopyData(copy bool) Option {
	return func(lp *LocalPolynomial) {
		lp.copyData = copy
	}
}

// WithParallelThreshold sets the query count above which Predict dispatches
// per-point fits across CPU cores.
func WithParallelThreshold(n int) Option {
	return func(lp *LocalPolynomial) {
		lp.parallelThreshold = n
	}
}
