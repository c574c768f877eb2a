// Package histogram provides a 1-D binned numeric container with
// error-propagating arithmetic, bin lookup and interval integration.
//
// 🚀 What is histogram?
//
//	Histogram1D owns three parallel arrays — bin contents, per-bin
//	variances, and the N+1 strictly increasing bin edges — and keeps its
//	shape immutable after construction. Derived views (bin centers, bin
//	widths, errors) are memoized on first access and never participate in
//	equality. Arithmetic follows standard quadrature / relative-variance
//	propagation with a zero-safe convention, matching what a ROOT-style
//	histogramming package computes for Add/Multiply/Divide.
//
// ✨ Key features:
//   - New / FromSource — direct construction or conversion from any
//     external object exposing a 1-indexed bin API (non-uniform binning
//     supported; underflow/overflow excluded)
//   - FindBin — half-open interval search, last bin closed on both ends
//   - Add, Subtract, Multiply, Divide, Sum — shape-checked, zero-safe
//   - Integral / CountsInInterval — width-weighted and raw interval sums
//     with propagated uncertainties, ranges given as bins or values
//   - MovingAverage — window mean over a numeric series
//
// ⚙️ Usage:
//
//	h, err := histogram.New(edges, y, errsSquared)
//	sum, err := histogram.Sum(h1, h2, h3)
//	v, unc, err := h.Integral(histogram.WithMinValue(1.2), histogram.WithMaxValue(4.3))
//
// Histograms are effectively immutable; the only internal writes are the
// memoized derived arrays, so first accesses must not race. All errors are
// package-prefixed sentinels (errors.go) matched with errors.Is.
package histogram
