package histogram

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Histogram1D is a 1-D binned numeric container: N bin contents with
// per-bin variances between N+1 strictly increasing edges.
//
// Shape and stored values are fixed at construction. Derived arrays —
// bin centers X, BinWidths, Errors — are computed on first access and
// cached; they are views, not state, and are excluded from equality so
// that reading one never changes a comparison's outcome.
//
// Returned slices are the histogram's backing storage; callers must not
// modify them.
type Histogram1D struct {
	binEdges      []float64
	y             []float64
	errorsSquared []float64

	// memoized derived arrays; nil until first access
	x         []float64
	binWidths []float64
	errors    []float64
}

// New constructs a histogram from bin edges, contents and squared errors.
// The inputs are copied. Fails with ErrEmptyHistogram, ErrLengthMismatch
// or ErrEdgesNotIncreasing when the invariants in the type doc are
// violated.
func New(binEdges, y, errorsSquared []float64) (*Histogram1D, error) {
	if len(y) == 0 {
		return nil, ErrEmptyHistogram
	}
	if len(binEdges) != len(y)+1 || len(errorsSquared) != len(y) {
		return nil, fmt.Errorf("%w: %d edges, %d contents, %d variances",
			ErrLengthMismatch, len(binEdges), len(y), len(errorsSquared))
	}
	for i := 1; i < len(binEdges); i++ {
		if binEdges[i] <= binEdges[i-1] {
			return nil, fmt.Errorf("%w: edge[%d]=%g, edge[%d]=%g",
				ErrEdgesNotIncreasing, i-1, binEdges[i-1], i, binEdges[i])
		}
	}

	return &Histogram1D{
		binEdges:      append([]float64(nil), binEdges...),
		y:             append([]float64(nil), y...),
		errorsSquared: append([]float64(nil), errorsSquared...),
	}, nil
}

// NBins returns the number of bins N.
func (h *Histogram1D) NBins() int { return len(h.y) }

// BinEdges returns the N+1 bin edges.
func (h *Histogram1D) BinEdges() []float64 { return h.binEdges }

// Y returns the N bin contents.
func (h *Histogram1D) Y() []float64 { return h.y }

// ErrorsSquared returns the N per-bin variances.
func (h *Histogram1D) ErrorsSquared() []float64 { return h.errorsSquared }

// X returns the bin centers, computed on first access and cached.
func (h *Histogram1D) X() []float64 {
	if h.x == nil {
		h.x = make([]float64, len(h.y))
		for i := range h.x {
			h.x[i] = (h.binEdges[i] + h.binEdges[i+1]) / 2
		}
	}

	return h.x
}

// BinWidths returns edge[i+1]-edge[i] per bin, computed on first access
// and cached.
func (h *Histogram1D) BinWidths() []float64 {
	if h.binWidths == nil {
		h.binWidths = make([]float64, len(h.y))
		for i := range h.binWidths {
			h.binWidths[i] = h.binEdges[i+1] - h.binEdges[i]
		}
	}

	return h.binWidths
}

// Errors returns sqrt(errorsSquared) per bin, computed on first access
// and cached.
func (h *Histogram1D) Errors() []float64 {
	if h.errors == nil {
		h.errors = make([]float64, len(h.errorsSquared))
		for i, es := range h.errorsSquared {
			h.errors[i] = math.Sqrt(es)
		}
	}

	return h.errors
}

// Clone returns an independent copy of the stored arrays. Memoized
// derived arrays are not carried over; they recompute on demand.
func (h *Histogram1D) Clone() *Histogram1D {
	return &Histogram1D{
		binEdges:      append([]float64(nil), h.binEdges...),
		y:             append([]float64(nil), h.y...),
		errorsSquared: append([]float64(nil), h.errorsSquared...),
	}
}

// FindBin returns the 0-indexed bin i with edges[i] <= v < edges[i+1];
// the last bin is closed on both ends, so v == edges[N] lands in bin N-1.
// Values outside [edges[0], edges[N]] fail with ErrValueOutOfRange.
//
// Complexity: O(log N).
func (h *Histogram1D) FindBin(v float64) (int, error) {
	last := len(h.binEdges) - 1
	if math.IsNaN(v) || v < h.binEdges[0] || v > h.binEdges[last] {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]",
			ErrValueOutOfRange, v, h.binEdges[0], h.binEdges[last])
	}
	// idx is the first edge >= v.
	idx := sort.SearchFloat64s(h.binEdges, v)
	if h.binEdges[idx] == v {
		if idx == last {
			return last - 1, nil
		}

		return idx, nil
	}

	return idx - 1, nil
}

// Equal reports exact elementwise equality of bin edges, contents and
// variances. Memoized derived arrays never participate.
func (h *Histogram1D) Equal(other *Histogram1D) bool {
	if other == nil {
		return false
	}

	return floats.Equal(h.binEdges, other.binEdges) &&
		floats.Equal(h.y, other.y) &&
		floats.Equal(h.errorsSquared, other.errorsSquared)
}

// ApproxEqual reports elementwise equality of the stored arrays within the
// given relative/absolute tolerance.
func (h *Histogram1D) ApproxEqual(other *Histogram1D, tol float64) bool {
	if other == nil {
		return false
	}

	return floats.EqualApprox(h.binEdges, other.binEdges, tol) &&
		floats.EqualApprox(h.y, other.y, tol) &&
		floats.EqualApprox(h.errorsSquared, other.errorsSquared, tol)
}

// String renders a short summary for logs and test failures.
func (h *Histogram1D) String() string {
	return fmt.Sprintf("Histogram1D{bins: %d, range: [%g, %g]}",
		h.NBins(), h.binEdges[0], h.binEdges[len(h.binEdges)-1])
}
