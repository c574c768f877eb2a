// SPDX-License-Identifier: MIT

// Package document models a hierarchical configuration tree with
// shared-reference (anchor/alias) semantics.
//
// 🚀 What is document?
//
//	A closed tagged-variant tree — every node is exactly one of
//	Scalar | Sequence | Mapping — in which two locations may hold the
//	*same* *Node. Mutating through one location is observable through
//	every other location that shares it. This is the in-memory analogue
//	of YAML anchors (&name) and aliases (*name), and it is the invariant
//	the config override engine relies on.
//
// ✨ Key features:
//   - Parse / Load / LoadFile — YAML decoding (gopkg.in/yaml.v3) that maps
//     every anchored node to exactly one *Node, so aliases share identity
//   - Simplify — collapse single-element sequences to their sole element
//   - FormatString / ApplyFormatting — small "{name}" template substitution
//     over a key-value mapping, with a latex-skip rule
//   - Equal / Interface — structural comparison and plain-Go views
//
// ⚙️ Usage:
//
//	import "github.com/dmaksimchuk/anakit/document"
//
//	node, err := document.Parse([]byte(src))
//	if err != nil { ... }
//	node = document.Simplify(node)
//	val, _ := node.Get("responseTaskName")
//
// Invariants:
//   - A mapping preserves key insertion order.
//   - Aliased nodes are shared, never copied; identity survives decoding.
//   - Simplify and ApplyFormatting are pure: they never mutate their input.
//
// All operations are synchronous and single-threaded; a Node must not be
// mutated concurrently.
package document
