// Package loess implements local weighted polynomial smoothing.
//
// The estimator generalizes the classical ksmooth and loess routines into a
// single configurable component: a window policy (fixed bandwidth or
// proportional span) restricts each fit to a neighborhood of the query
// point, a kernel down-weights distant observations, and a weighted
// least-squares polynomial of degree 0, 1 or 2 is solved in coordinates
// centered at the query point. The fitted intercept is the trend estimate.
// Degree 0 with the box kernel reduces exactly to the bin smoother.
package loess

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/go-smooth/smooth/core/model"
	"github.com/go-smooth/smooth/core/parallel"
	"github.com/go-smooth/smooth/metrics"
	"github.com/go-smooth/smooth/pkg/errors"
)

// svTolerance rejects a weighted design whose smallest singular value is
// below this fraction of the largest.
const svTolerance = 1e-10

// defaultParallelThreshold is the query count above which Predict fans out
// across CPU cores.
const defaultParallelThreshold = 256

// LocalPolynomial estimates a slowly-varying trend from noisy (x, y)
// observations by solving an independent weighted least-squares regression
// around every query point. A fitted estimator is read-only and safe for
// concurrent use.
type LocalPolynomial struct {
	model.BaseEstimator

	degree            int
	mode              windowMode
	span              float64
	bandwidth         float64
	kernel            Kernel
	copyData          bool
	parallelThreshold int

	x, y []float64
}

var (
	_ model.Smoother = (*LocalPolynomial)(nil)
	_ model.Scorer   = (*LocalPolynomial)(nil)
)

// New creates a LocalPolynomial smoother. Defaults follow the classical
// loess routine: degree 2, proportional span 0.75, tri-weight kernel (box
// when degree 0 is requested without an explicit kernel).
func New(opts ...Option) *LocalPolynomial {
	lp := &LocalPolynomial{
		degree:            2,
		mode:              spanWindow,
		span:              0.75,
		copyData:          true,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(lp)
	}
	if lp.kernel == nil {
		if lp.degree == 0 {
			lp.kernel = Box
		} else {
			lp.kernel = Triweight
		}
	}
	return lp
}

// validateConfig rejects configuration values outside their valid domain
// before any computation proceeds.
func (lp *LocalPolynomial) validateConfig(op string) error {
	if lp.degree < 0 || lp.degree > 2 {
		return errors.NewInvalidInputError(op, "degree must be 0, 1 or 2", lp.degree)
	}
	switch lp.mode {
	case bandwidthWindow:
		if math.IsNaN(lp.bandwidth) || lp.bandwidth <= 0 {
			return errors.NewInvalidInputError(op, "bandwidth must be positive", lp.bandwidth)
		}
	default:
		if math.IsNaN(lp.span) || lp.span <= 0 || lp.span > 1 {
			return errors.NewInvalidInputError(op, "span must be in (0, 1]", lp.span)
		}
	}
	return nil
}

// Fit validates and binds the observations. The estimator never mutates
// them; by default it stores a private copy.
func (lp *LocalPolynomial) Fit(x, y []float64) error {
	const op = "LocalPolynomial.Fit"

	if err := lp.validateConfig(op); err != nil {
		return err
	}
	if len(x) == 0 {
		return errors.NewInvalidInputError(op, "dataset must not be empty", len(x))
	}
	if len(x) != len(y) {
		return errors.NewDimensionError(op, len(x), len(y))
	}
	if err := errors.CheckFinite(op, "x", x); err != nil {
		return err
	}
	if err := errors.CheckFinite(op, "y", y); err != nil {
		return err
	}

	if lp.copyData {
		lp.x = append([]float64(nil), x...)
		lp.y = append([]float64(nil), y...)
	} else {
		lp.x = x
		lp.y = y
	}

	lp.SetFitted()
	return nil
}

// PredictAt returns the trend estimate at a single query point: the
// intercept of the weighted least-squares polynomial fitted in coordinates
// centered at x0. The computation is pure; repeated calls with identical
// inputs produce bit-identical results.
func (lp *LocalPolynomial) PredictAt(x0 float64) (yhat float64, err error) {
	const op = "LocalPolynomial.PredictAt"
	defer errors.Recover(&err, op)

	if !lp.IsFitted() {
		return 0, errors.NewNotFittedError("LocalPolynomial", "PredictAt")
	}
	if err := errors.CheckScalarFinite(op, "query point", x0); err != nil {
		return 0, err
	}

	idx, hEff := lp.selectWindow(x0)
	need := lp.degree + 1
	if len(idx) < need {
		return 0, errors.NewInsufficientDataError(op, x0, need, len(idx))
	}
	if hEff == 0 {
		errors.Warn(errors.NewDegenerateWindowWarning(op, x0, len(idx)))
	}

	weights := make([]float64, len(idx))
	for j, i := range idx {
		u := 0.0
		if hEff > 0 {
			u = math.Abs(lp.x[i]-x0) / hEff
		}
		weights[j] = lp.kernel.Weight(u)
	}

	if lp.degree == 0 {
		return lp.weightedMean(op, x0, idx, weights)
	}
	return lp.weightedPolyFit(op, x0, idx, weights)
}

// weightedMean is the degree-0 fast path: the kernel-weighted mean of y in
// the window.
func (lp *LocalPolynomial) weightedMean(op string, x0 float64, idx []int, weights []float64) (float64, error) {
	var sw, swy float64
	for j, i := range idx {
		sw += weights[j]
		swy += weights[j] * lp.y[i]
	}
	if sw <= 0 {
		return 0, errors.NewSingularFitError(op, x0, "all kernel weights are zero")
	}
	return swy / sw, nil
}

// weightedPolyFit solves the weighted least-squares regression of y on
// powers of (x - x0) up to the configured degree. Rows are scaled by the
// square root of their kernel weight so an ordinary QR solve yields the
// weighted solution; singular values of the scaled design gate the solve.
func (lp *LocalPolynomial) weightedPolyFit(op string, x0 float64, idx []int, weights []float64) (float64, error) {
	rows := len(idx)
	cols := lp.degree + 1

	design := mat.NewDense(rows, cols, nil)
	rhs := mat.NewDense(rows, 1, nil)
	for j, i := range idx {
		sw := math.Sqrt(weights[j])
		dx := lp.x[i] - x0
		pow := 1.0
		for c := 0; c < cols; c++ {
			design.Set(j, c, sw*pow)
			pow *= dx
		}
		rhs.Set(j, 0, sw*lp.y[i])
	}

	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDNone) {
		return 0, errors.NewSingularFitError(op, x0, "SVD factorization failed")
	}
	values := svd.Values(nil)
	largest, smallest := values[0], values[len(values)-1]
	if largest == 0 || smallest < svTolerance*largest {
		return 0, errors.NewSingularFitError(op, x0, "weighted design matrix is rank deficient")
	}

	var qr mat.QR
	qr.Factorize(design)
	coef := mat.NewDense(cols, 1, nil)
	if err := qr.SolveTo(coef, false, rhs); err != nil {
		return 0, errors.NewSingularFitError(op, x0, err.Error())
	}

	// The local coordinate system is centered at x0, so the intercept is the
	// fitted value there.
	return coef.At(0, 0), nil
}

// Predict returns one trend estimate per query point. Each fit is
// independent; above the parallel threshold they are dispatched across CPU
// cores. The first per-point failure aborts the call.
func (lp *LocalPolynomial) Predict(xs []float64) ([]float64, error) {
	if !lp.IsFitted() {
		return nil, errors.NewNotFittedError("LocalPolynomial", "Predict")
	}

	out := make([]float64, len(xs))
	errs := make([]error, len(xs))
	parallel.ParallelizeWithThreshold(len(xs), lp.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out[i], errs[i] = lp.PredictAt(xs[i])
		}
	})

	for i, e := range errs {
		if e != nil {
			return nil, errors.Wrapf(e, "query point %d (x=%g)", i, xs[i])
		}
	}
	return out, nil
}

// PredictWithGaps returns one trend estimate per query point, substituting
// NaN for points whose fit failed. The returned error combines every
// per-point failure (discoverable through errors.As) and is nil when the
// whole curve succeeded. Failures at one point never affect the others.
func (lp *LocalPolynomial) PredictWithGaps(xs []float64) ([]float64, error) {
	if !lp.IsFitted() {
		return nil, errors.NewNotFittedError("LocalPolynomial", "PredictWithGaps")
	}

	out := make([]float64, len(xs))
	errs := make([]error, len(xs))
	parallel.ParallelizeWithThreshold(len(xs), lp.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out[i], errs[i] = lp.PredictAt(xs[i])
		}
	})

	var combined error
	for i, e := range errs {
		if e != nil {
			out[i] = math.NaN()
			combined = errors.CombineErrors(combined, errors.Wrapf(e, "query point %d (x=%g)", i, xs[i]))
		}
	}
	return out, combined
}

// Residuals returns y minus the smoothed curve evaluated at the bound x
// values. This is the raw material for residual diagnostics and for robust
// re-weighting schemes layered on top of the estimator.
func (lp *LocalPolynomial) Residuals() ([]float64, error) {
	if !lp.IsFitted() {
		return nil, errors.NewNotFittedError("LocalPolynomial", "Residuals")
	}

	fitted, err := lp.Predict(lp.x)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(fitted))
	for i := range fitted {
		res[i] = lp.y[i] - fitted[i]
	}
	return res, nil
}

// Score computes the coefficient of determination (R²) of the smoothed
// curve against reference observations.
func (lp *LocalPolynomial) Score(x, y []float64) (float64, error) {
	if !lp.IsFitted() {
		return 0, errors.NewNotFittedError("LocalPolynomial", "Score")
	}

	fitted, err := lp.Predict(x)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, fitted)
}

// String returns the estimator configuration.
func (lp *LocalPolynomial) String() string {
	if lp.mode == bandwidthWindow {
		return fmt.Sprintf("LocalPolynomial(degree=%d, bandwidth=%g, kernel=%s)", lp.degree, lp.bandwidth, lp.kernel)
	}
	return fmt.Sprintf("LocalPolynomial(degree=%d, span=%g, kernel=%s)", lp.degree, lp.span, lp.kernel)
}
