// Package anakit is a small support library for high-energy-physics data
// analysis: layered YAML configuration with anchor semantics, and a 1-D
// histogram with numerically-correct error propagation.
//
// 🚀 What is anakit?
//
//	The plumbing an analysis task needs before any physics happens:
//		• document/  — a configuration tree (Scalar | Sequence | Mapping)
//		  in which YAML anchors decode to shared nodes, plus
//		  simplification and template formatting
//		• config/    — override merging through shared references,
//		  iterable selection, and Cartesian-product construction of
//		  analysis objects addressed by composite keys
//		• histogram/ — Histogram1D: bin lookup, arithmetic with
//		  quadrature / relative-variance error propagation, and interval
//		  integration, convertible from any external binned source
//
// ✨ Why anakit?
//
//   - Deterministic — declaration order drives selection order, product
//     order and key layout; no map-iteration surprises
//   - Honest failure — sentinel errors for every authoring mistake;
//     nothing is silently added, clamped, or rebinned
//   - Anchor-faithful — overriding a value referenced from many keys
//     updates every reference, exactly as the YAML author intended
//
// See each package's doc.go for usage; start with document.Parse,
// config.Override and histogram.New.
package anakit
