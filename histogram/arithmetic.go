// Package histogram: binary operators with error propagation.
//
// Addition and subtraction add variances in quadrature regardless of the
// operator sign. Multiplication and division propagate relative variances:
//
//	es3 = y3² · (es1/y1² + es2/y2²)
//
// with the zero-safe convention: a factor whose content is exactly zero
// contributes zero relative variance, and any division with a zero
// denominator yields content 0 with variance 0, matching ROOT's
// TH1::Divide. 0/0 is defined as 0.

package histogram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add returns h + other bin by bin; variances add in quadrature.
// Fails with ErrNilHistogram or ErrBinEdgesMismatch.
func (h *Histogram1D) Add(other *Histogram1D) (*Histogram1D, error) {
	if err := h.checkCompatible(other); err != nil {
		return nil, err
	}
	out := h.Clone()
	floats.Add(out.y, other.y)
	floats.Add(out.errorsSquared, other.errorsSquared)

	return out, nil
}

// Subtract returns h - other bin by bin; variances still add in
// quadrature. Fails with ErrNilHistogram or ErrBinEdgesMismatch.
func (h *Histogram1D) Subtract(other *Histogram1D) (*Histogram1D, error) {
	if err := h.checkCompatible(other); err != nil {
		return nil, err
	}
	out := h.Clone()
	floats.Sub(out.y, other.y)
	floats.Add(out.errorsSquared, other.errorsSquared)

	return out, nil
}

// Multiply returns h * other bin by bin with relative-variance
// propagation. A zero-content factor produces a zero product and
// contributes no relative variance.
func (h *Histogram1D) Multiply(other *Histogram1D) (*Histogram1D, error) {
	if err := h.checkCompatible(other); err != nil {
		return nil, err
	}
	out := h.Clone()
	for i := range out.y {
		y1, y2 := h.y[i], other.y[i]
		y3 := y1 * y2
		out.y[i] = y3
		out.errorsSquared[i] = y3 * y3 * (relativeVariance(h.errorsSquared[i], y1) +
			relativeVariance(other.errorsSquared[i], y2))
	}

	return out, nil
}

// Divide returns h / other bin by bin with relative-variance propagation.
// Any bin with a zero denominator yields content 0 and variance 0; 0/0 is
// likewise 0.
func (h *Histogram1D) Divide(other *Histogram1D) (*Histogram1D, error) {
	if err := h.checkCompatible(other); err != nil {
		return nil, err
	}
	out := h.Clone()
	for i := range out.y {
		y1, y2 := h.y[i], other.y[i]
		if y2 == 0 {
			out.y[i] = 0
			out.errorsSquared[i] = 0
			continue
		}
		y3 := y1 / y2
		out.y[i] = y3
		out.errorsSquared[i] = y3 * y3 * (relativeVariance(h.errorsSquared[i], y1) +
			relativeVariance(other.errorsSquared[i], y2))
	}

	return out, nil
}

// Sum reduces histograms via Add. The reduction is associative and
// order-independent. Fails with ErrNilHistogram when called with nothing
// to sum, and with Add's errors on incompatible shapes.
func Sum(hs ...*Histogram1D) (*Histogram1D, error) {
	if len(hs) == 0 || hs[0] == nil {
		return nil, ErrNilHistogram
	}
	out := hs[0].Clone()
	for _, h := range hs[1:] {
		var err error
		if out, err = out.Add(h); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// relativeVariance returns es/y² under the zero-safe convention.
func relativeVariance(es, y float64) float64 {
	if y == 0 {
		return 0
	}

	return es / (y * y)
}

// checkCompatible validates a binary operand: non-nil and identical bin
// edges. Mismatched edges are a caller error; no rebinning is attempted.
func (h *Histogram1D) checkCompatible(other *Histogram1D) error {
	if other == nil {
		return ErrNilHistogram
	}
	if !floats.Equal(h.binEdges, other.binEdges) {
		return fmt.Errorf("%w: %v vs %v", ErrBinEdgesMismatch, h, other)
	}

	return nil
}
