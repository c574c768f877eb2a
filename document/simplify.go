// SPDX-License-Identifier: MIT

package document

// Simplify collapses single-element sequences to their sole element,
// recursively, and returns the simplified tree:
//
//   - mapping  → new mapping with every value simplified (key order kept)
//   - sequence → if it holds exactly one element, the simplification of
//     that element (the wrapper disappears); otherwise a new sequence with
//     each element simplified
//   - scalar   → returned unchanged
//
// Simplify is pure (the input tree is never mutated) and idempotent:
// Simplify(Simplify(x)) is structurally equal to Simplify(x).
//
// Shared container nodes are rebuilt, so aliasing does not survive
// simplification; run it only after all override mutation is done.
//
// Complexity: O(nodes).
func Simplify(node *Node) *Node {
	if node == nil {
		return nil
	}
	switch node.kind {
	case KindMapping:
		out := Mapping()
		for _, k := range node.keys {
			out.Set(k, Simplify(node.children[k]))
		}

		return out

	case KindSequence:
		if len(node.items) == 1 {
			return Simplify(node.items[0])
		}
		out := Sequence()
		for _, item := range node.items {
			out.Append(Simplify(item))
		}

		return out

	default:
		return node
	}
}
