package loess

import (
	"math"

	"github.com/go-smooth/smooth/pkg/errors"
)

// Kernel is a weight function over the normalized distance u = d / h between
// an observation and the query point. Weights are non-negative and, for the
// compactly supported kernels, zero outside [-1, 1]. By construction the
// estimator always evaluates kernels at u in [0, 1].
type Kernel interface {
	// Weight returns the kernel weight at normalized distance u.
	Weight(u float64) float64

	// String returns the kernel's canonical name.
	String() string
}

// The box kernel gives every observation in the window equal weight; this is
// the bin-smoother weighting.
type box struct{}

// Box is the uniform kernel.
var Box box

func (box) Weight(u float64) float64 {
	if u < -1 || u > 1 {
		return 0
	}
	return 1
}

func (box) String() string { return "box" }

// The tri-weight kernel (1 - |u|³)³ tapers smoothly to zero at the window
// edge; it is the classical loess weighting.
type triweight struct{}

// Triweight is the tri-cube kernel used by local regression.
var Triweight triweight

func (triweight) Weight(u float64) float64 {
	a := math.Abs(u)
	if a > 1 {
		return 0
	}
	w := 1 - a*a*a
	return w * w * w
}

func (triweight) String() string { return "triweight" }

// The Gaussian kernel exp(-u²/2) never reaches zero; it is the weighting
// used by normal-kernel bin smoothers.
type gaussian struct{}

// Gaussian is the normal density kernel.
var Gaussian gaussian

func (gaussian) Weight(u float64) float64 {
	return math.Exp(-u * u / 2)
}

func (gaussian) String() string { return "gaussian" }

// KernelByName resolves a kernel from its canonical name. It returns an
// InvalidInputError for unknown names.
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "box":
		return Box, nil
	case "triweight":
		return Triweight, nil
	case "gaussian":
		return Gaussian, nil
	default:
		return nil, errors.NewInvalidInputError("KernelByName", "unknown kernel (want box, triweight or gaussian)", name)
	}
}
