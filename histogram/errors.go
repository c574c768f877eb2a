// Package histogram: sentinel error set. Operations return these
// sentinels, wrapped with context where useful; tests match via errors.Is.

package histogram

import "errors"

var (
	// ErrEmptyHistogram indicates construction with no bins at all.
	ErrEmptyHistogram = errors.New("histogram: at least one bin required")

	// ErrLengthMismatch indicates parallel arrays whose lengths violate
	// len(binEdges) == len(y)+1 == len(errorsSquared)+1.
	ErrLengthMismatch = errors.New("histogram: array lengths do not match")

	// ErrEdgesNotIncreasing indicates bin edges that are not strictly
	// increasing.
	ErrEdgesNotIncreasing = errors.New("histogram: bin edges must be strictly increasing")

	// ErrNilHistogram indicates a nil operand.
	ErrNilHistogram = errors.New("histogram: nil histogram")

	// ErrBinEdgesMismatch indicates binary arithmetic between histograms
	// with differing bin edges; no alignment or rebinning is attempted.
	ErrBinEdgesMismatch = errors.New("histogram: bin edges differ")

	// ErrValueOutOfRange indicates a lookup value outside
	// [edges[0], edges[N]]. Out-of-domain input never clamps to an
	// in-range bin.
	ErrValueOutOfRange = errors.New("histogram: value outside bin edges")

	// ErrConflictingRange indicates an interval endpoint given both as a
	// bin and as a value; only specify one of the pair.
	ErrConflictingRange = errors.New("histogram: only specify one of bin and value per endpoint")

	// ErrInvertedRange indicates an interval whose resolved minimum bin is
	// greater than its resolved maximum bin.
	ErrInvertedRange = errors.New("histogram: interval minimum greater than maximum")

	// ErrBadWindow indicates a moving-average window outside [1, len(arr)].
	ErrBadWindow = errors.New("histogram: invalid moving-average window")
)
