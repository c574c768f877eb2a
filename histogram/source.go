package histogram

import "fmt"

// Source is the read surface an external histogram object must expose for
// conversion. Bin indices are 1-based, following the convention of
// ROOT-style histogramming packages; index 0 (underflow) and NBins()+1
// (overflow) are never read.
type Source interface {
	// Name identifies the object (diagnostics only).
	Name() string

	// NBins returns the number of in-range bins.
	NBins() int

	// BinLowEdge returns the lower edge of bin i, 1 <= i <= NBins().
	BinLowEdge(i int) float64

	// BinUpEdge returns the upper edge of bin i, 1 <= i <= NBins().
	BinUpEdge(i int) float64

	// BinContent returns the content of bin i.
	BinContent(i int) float64

	// BinError returns the error (not squared) of bin i.
	BinError(i int) float64
}

// FromSource converts an external histogram into a Histogram1D, reading
// the low edge of every bin plus the upper edge of the last bin (so
// non-uniform binning round-trips exactly), the bin contents, and the
// squared bin errors. Underflow and overflow are excluded.
func FromSource(src Source) (*Histogram1D, error) {
	if src == nil {
		return nil, ErrNilHistogram
	}
	n := src.NBins()
	if n < 1 {
		return nil, fmt.Errorf("%w: source %q has %d bins", ErrEmptyHistogram, src.Name(), n)
	}

	binEdges := make([]float64, n+1)
	y := make([]float64, n)
	errorsSquared := make([]float64, n)
	for i := 1; i <= n; i++ {
		binEdges[i-1] = src.BinLowEdge(i)
		y[i-1] = src.BinContent(i)
		e := src.BinError(i)
		errorsSquared[i-1] = e * e
	}
	binEdges[n] = src.BinUpEdge(n)

	h, err := New(binEdges, y, errorsSquared)
	if err != nil {
		return nil, fmt.Errorf("histogram: convert %q: %w", src.Name(), err)
	}

	return h, nil
}
