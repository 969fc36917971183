package loess

import (
	"math"
	"sort"
)

// windowMode selects how the active window around a query point is formed.
type windowMode int

const (
	// spanWindow keeps the ceil(s·N) nearest observations.
	spanWindow windowMode = iota
	// bandwidthWindow keeps every observation within a fixed distance h.
	bandwidthWindow
)

func (m windowMode) String() string {
	if m == bandwidthWindow {
		return "bandwidth"
	}
	return "span"
}

// selectWindow returns the indices of the observations inside the active
// window around x0, together with the effective half-width hEff: the largest
// distance among the kept observations. Normalizing kernel distances by hEff
// puts every kept observation at u in [0, 1], so the farthest point always
// receives the kernel's boundary weight.
//
// In span mode, ties in distance are broken by original index order, so the
// selection is deterministic regardless of how the input was produced.
func (lp *LocalPolynomial) selectWindow(x0 float64) (idx []int, hEff float64) {
	n := len(lp.x)
	dist := make([]float64, n)
	for i, xi := range lp.x {
		dist[i] = math.Abs(xi - x0)
	}

	switch lp.mode {
	case bandwidthWindow:
		for i, d := range dist {
			if d <= lp.bandwidth {
				idx = append(idx, i)
			}
		}
	default:
		k := int(math.Ceil(lp.span * float64(n)))
		if k < 1 {
			k = 1
		}
		if k > n {
			k = n
		}
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		// Stable sort keeps equidistant observations in index order.
		sort.SliceStable(order, func(a, b int) bool {
			return dist[order[a]] < dist[order[b]]
		})
		idx = order[:k]
	}

	for _, i := range idx {
		if dist[i] > hEff {
			hEff = dist[i]
		}
	}
	return idx, hEff
}
