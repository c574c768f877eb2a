package histogram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaksimchuk/anakit/histogram"
)

// fillBin3 builds a 10-bin histogram over [0, 10] with a single filled
// bin, the shape of a counting histogram filled at one value with
// possibly non-unit weights.
func fillBin3(t *testing.T, content, variance float64) *histogram.Histogram1D {
	t.Helper()
	edges := make([]float64, 11)
	for i := range edges {
		edges[i] = float64(i)
	}
	y := make([]float64, 10)
	es := make([]float64, 10)
	y[3] = content
	es[3] = variance
	h, err := histogram.New(edges, y, es)
	require.NoError(t, err)

	return h
}

// assertBin3 asserts the filled bin's result and that every other bin
// stayed exactly zero in both content and variance.
func assertBin3(t *testing.T, h *histogram.Histogram1D, wantY, wantES float64) {
	t.Helper()
	for i := 0; i < h.NBins(); i++ {
		if i == 3 {
			assert.InDelta(t, wantY, h.Y()[i], 1e-12, "content of filled bin")
			assert.InDelta(t, wantES, h.ErrorsSquared()[i], 1e-12, "variance of filled bin")
			continue
		}
		assert.Zero(t, h.Y()[i], "bin %d content", i)
		assert.Zero(t, h.ErrorsSquared()[i], "bin %d variance", i)
	}
}

// The operand set mirrors filling one bin two times (unweighted), four
// times (unweighted), once with weight 2, and twice with weight 2.
func operands(t *testing.T) (twoTimes, fourTimes, onceW2, twiceW2 *histogram.Histogram1D) {
	t.Helper()

	return fillBin3(t, 2, 2), fillBin3(t, 4, 4), fillBin3(t, 2, 4), fillBin3(t, 4, 8)
}

// TestAdd verifies contents add and variances add in quadrature.
func TestAdd(t *testing.T) {
	twoTimes, fourTimes, _, twiceW2 := operands(t)

	tests := []struct {
		name          string
		a, b          *histogram.Histogram1D
		wantY, wantES float64
	}{
		{"two plus four", twoTimes, fourTimes, 6, 6},
		{"two plus weighted", twoTimes, twiceW2, 6, 10},
		{"four plus weighted", fourTimes, twiceW2, 8, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			require.NoError(t, err)
			assertBin3(t, got, tc.wantY, tc.wantES)
		})
	}
}

// TestSubtract verifies contents subtract while variances still add.
func TestSubtract(t *testing.T) {
	twoTimes, fourTimes, _, twiceW2 := operands(t)

	tests := []struct {
		name          string
		a, b          *histogram.Histogram1D
		wantY, wantES float64
	}{
		{"four minus two", fourTimes, twoTimes, 2, 6},
		{"weighted minus two", twiceW2, twoTimes, 2, 10},
		{"weighted minus four", twiceW2, fourTimes, 0, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Subtract(tc.b)
			require.NoError(t, err)
			assertBin3(t, got, tc.wantY, tc.wantES)
		})
	}
}

// TestMultiply verifies relative-variance propagation; the zero bins
// multiply to exactly zero content and zero variance.
func TestMultiply(t *testing.T) {
	twoTimes, fourTimes, onceW2, twiceW2 := operands(t)

	tests := []struct {
		name          string
		a, b          *histogram.Histogram1D
		wantY, wantES float64
	}{
		{"two times four", twoTimes, fourTimes, 8, 48},
		{"two times weighted", twoTimes, twiceW2, 8, 64},
		{"weighted pair", onceW2, twiceW2, 8, 96},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Multiply(tc.b)
			require.NoError(t, err)
			assertBin3(t, got, tc.wantY, tc.wantES)
		})
	}
}

// TestDivide verifies relative-variance propagation with the zero-safe
// convention: the empty bins divide as 0/0 = 0 without error.
func TestDivide(t *testing.T) {
	twoTimes, fourTimes, onceW2, twiceW2 := operands(t)

	tests := []struct {
		name          string
		a, b          *histogram.Histogram1D
		wantY, wantES float64
	}{
		{"four over two", fourTimes, twoTimes, 2, 3},
		{"weighted over two", twiceW2, twoTimes, 2, 4},
		{"weighted over weighted", twiceW2, onceW2, 2, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Divide(tc.b)
			require.NoError(t, err)
			assertBin3(t, got, tc.wantY, tc.wantES)
		})
	}
}

// TestMultiply_ZeroContentBin verifies multiplying a zero-content bin by
// a non-zero one never raises and yields exactly zero content and
// variance, while fully non-zero bins propagate normally.
func TestMultiply_ZeroContentBin(t *testing.T) {
	a, err := histogram.New([]float64{0, 1, 2, 3}, []float64{2, 0, 3}, []float64{2, 5, 3})
	require.NoError(t, err)
	b, err := histogram.New([]float64{0, 1, 2, 3}, []float64{0, 4, 2}, []float64{7, 4, 2})
	require.NoError(t, err)

	got, err := a.Multiply(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 6}, got.Y())
	// es = 36 * (3/9 + 2/4) = 30 in the only non-zero bin.
	assert.Zero(t, got.ErrorsSquared()[0])
	assert.Zero(t, got.ErrorsSquared()[1])
	assert.InDelta(t, 30, got.ErrorsSquared()[2], 1e-12)

	// Symmetric: the zero factor may sit on either side.
	flipped, err := b.Multiply(a)
	require.NoError(t, err)
	assert.True(t, got.Equal(flipped))
}

// TestDivide_ZeroDenominator verifies a non-zero numerator over a zero
// denominator yields content 0 with variance 0, while a zero numerator
// over a non-zero denominator divides cleanly to zero.
func TestDivide_ZeroDenominator(t *testing.T) {
	num, err := histogram.New([]float64{0, 1, 2, 3}, []float64{2, 0, 3}, []float64{2, 5, 3})
	require.NoError(t, err)
	den, err := histogram.New([]float64{0, 1, 2, 3}, []float64{0, 4, 2}, []float64{7, 4, 2})
	require.NoError(t, err)

	got, err := num.Divide(den)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1.5}, got.Y())
	assert.Zero(t, got.ErrorsSquared()[0], "2/0 carries no variance")
	assert.Zero(t, got.ErrorsSquared()[1], "0/4 carries no variance")
	// es = 1.5^2 * (3/9 + 2/4) = 1.875 in the clean bin.
	assert.InDelta(t, 1.875, got.ErrorsSquared()[2], 1e-12)
}

// TestOperationsDoNotMutateOperands verifies every operator returns a new
// histogram and leaves its inputs untouched.
func TestOperationsDoNotMutateOperands(t *testing.T) {
	twoTimes, fourTimes, _, _ := operands(t)
	a := twoTimes.Clone()
	b := fourTimes.Clone()

	_, err := twoTimes.Add(fourTimes)
	require.NoError(t, err)
	_, err = twoTimes.Subtract(fourTimes)
	require.NoError(t, err)
	_, err = twoTimes.Multiply(fourTimes)
	require.NoError(t, err)
	_, err = twoTimes.Divide(fourTimes)
	require.NoError(t, err)

	assert.True(t, twoTimes.Equal(a))
	assert.True(t, fourTimes.Equal(b))
}

// TestSum verifies the variadic reduction and its order independence.
func TestSum(t *testing.T) {
	twoTimes, fourTimes, onceW2, twiceW2 := operands(t)

	forward, err := histogram.Sum(twoTimes, fourTimes, onceW2, twiceW2)
	require.NoError(t, err)
	backward, err := histogram.Sum(twiceW2, onceW2, fourTimes, twoTimes)
	require.NoError(t, err)

	assertBin3(t, forward, 12, 18)
	assert.True(t, forward.Equal(backward))

	_, err = histogram.Sum()
	assert.ErrorIs(t, err, histogram.ErrNilHistogram)

	single, err := histogram.Sum(twoTimes)
	require.NoError(t, err)
	assert.True(t, single.Equal(twoTimes))
}

// TestIncompatibleOperands verifies shape checking on every operator.
func TestIncompatibleOperands(t *testing.T) {
	h := fillBin3(t, 2, 2)
	other, err := histogram.New([]float64{0, 1, 2}, []float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)

	for name, op := range map[string]func(*histogram.Histogram1D) (*histogram.Histogram1D, error){
		"add":      h.Add,
		"subtract": h.Subtract,
		"multiply": h.Multiply,
		"divide":   h.Divide,
	} {
		_, err := op(other)
		assert.ErrorIs(t, err, histogram.ErrBinEdgesMismatch, name)
		_, err = op(nil)
		assert.ErrorIs(t, err, histogram.ErrNilHistogram, name)
	}
}
