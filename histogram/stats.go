package histogram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MovingAverage computes the window mean of arr with window length n.
// The output has len(arr)-n+1 elements: out[i] is the mean of
// arr[i : i+n]. Fails with ErrBadWindow unless 1 <= n <= len(arr).
//
// Complexity: O(len(arr)) via a running sum.
func MovingAverage(arr []float64, n int) ([]float64, error) {
	if n < 1 || n > len(arr) {
		return nil, fmt.Errorf("%w: n=%d, len=%d", ErrBadWindow, n, len(arr))
	}

	out := make([]float64, len(arr)-n+1)
	sum := floats.Sum(arr[:n])
	out[0] = sum / float64(n)
	for i := 1; i < len(out); i++ {
		sum += arr[i+n-1] - arr[i-1]
		out[i] = sum / float64(n)
	}

	return out, nil
}
