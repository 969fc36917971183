package loess

import (
	"math"
	"testing"
)

func TestBoxKernel(t *testing.T) {
	if w := Box.Weight(0); w != 1 {
		t.Errorf("Box(0) = %f, want 1", w)
	}
	if w := Box.Weight(1); w != 1 {
		t.Errorf("Box(1) = %f, want 1", w)
	}
	if w := Box.Weight(1.01); w != 0 {
		t.Errorf("Box(1.01) = %f, want 0", w)
	}
	if w := Box.Weight(-1.5); w != 0 {
		t.Errorf("Box(-1.5) = %f, want 0", w)
	}
}

func TestTriweightKernel(t *testing.T) {
	if w := Triweight.Weight(0); w != 1 {
		t.Errorf("Triweight(0) = %f, want 1", w)
	}
	if w := Triweight.Weight(1); w != 0 {
		t.Errorf("Triweight(1) = %f, want 0", w)
	}
	// (1 - 0.5³)³ = 0.875³
	want := 0.875 * 0.875 * 0.875
	if w := Triweight.Weight(0.5); math.Abs(w-want) > 1e-15 {
		t.Errorf("Triweight(0.5) = %f, want %f", w, want)
	}
	// Symmetric in u.
	if Triweight.Weight(-0.3) != Triweight.Weight(0.3) {
		t.Error("Triweight should be symmetric")
	}
}

func TestGaussianKernel(t *testing.T) {
	if w := Gaussian.Weight(0); w != 1 {
		t.Errorf("Gaussian(0) = %f, want 1", w)
	}
	want := math.Exp(-0.5)
	if w := Gaussian.Weight(1); math.Abs(w-want) > 1e-15 {
		t.Errorf("Gaussian(1) = %f, want %f", w, want)
	}
}

func TestKernelByName(t *testing.T) {
	for _, name := range []string{"box", "triweight", "gaussian"} {
		k, err := KernelByName(name)
		if err != nil {
			t.Fatalf("KernelByName(%q): %v", name, err)
		}
		if k.String() != name {
			t.Errorf("KernelByName(%q).String() = %q", name, k.String())
		}
	}

	if _, err := KernelByName("epanechnikov"); err == nil {
		t.Error("expected error for unknown kernel name")
	}
}
