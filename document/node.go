// SPDX-License-Identifier: MIT

// Package document: the Node variant type and its accessors/mutators.
// Accessors are kind-tolerant (wrong kind yields zero values); mutators
// panic on a wrong-kind receiver — that is a programmer error, mirroring
// the validation stance used for option constructors elsewhere.

package document

import "fmt"

// Kind discriminates the closed set of node variants.
// A Node is exactly one of Scalar | Sequence | Mapping; there is no
// runtime type inspection beyond this tag.
type Kind int

const (
	// KindScalar is a leaf value: string, int, float64, bool or nil.
	KindScalar Kind = iota

	// KindSequence is an ordered list of child nodes.
	KindSequence

	// KindMapping is a string-keyed collection preserving insertion order.
	KindMapping
)

// String returns a human-readable kind name (used in error context).
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one node of a configuration tree.
//
// Aliasing: two or more parents may hold the same *Node. The override
// engine mutates through these shared pointers, so every holder observes
// the update. Treat Node identity (the pointer) as meaningful; never copy
// a Node by value.
type Node struct {
	kind  Kind
	value any     // scalar payload; comparable primitives only
	items []*Node // sequence payload

	keys     []string // mapping key order
	children map[string]*Node
}

// Scalar returns a new scalar node holding v.
// Payloads should be comparable primitives (string, int, float64, bool, nil);
// structural equality relies on ==.
func Scalar(v any) *Node {
	return &Node{kind: KindScalar, value: v}
}

// Sequence returns a new sequence node holding the given items, in order.
func Sequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: append([]*Node(nil), items...)}
}

// Mapping returns a new, empty mapping node.
func Mapping() *Node {
	return &Node{kind: KindMapping, children: make(map[string]*Node)}
}

// Kind reports which variant this node is.
func (n *Node) Kind() Kind { return n.kind }

// Value returns the scalar payload, or nil for non-scalar nodes.
func (n *Node) Value() any {
	if n == nil || n.kind != KindScalar {
		return nil
	}

	return n.value
}

// SetValue replaces the scalar payload in place.
// Panics if the node is not a scalar.
func (n *Node) SetValue(v any) {
	n.mustBe(KindScalar, "SetValue")
	n.value = v
}

// Items returns the sequence's children in order, or nil for non-sequences.
// The returned slice is the node's backing storage; do not retain it across
// mutations.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindSequence {
		return nil
	}

	return n.items
}

// Item returns the i-th sequence element.
// Panics on a non-sequence node or an out-of-range index.
func (n *Node) Item(i int) *Node {
	n.mustBe(KindSequence, "Item")

	return n.items[i]
}

// Append appends items to the sequence in place, preserving node identity.
// Panics if the node is not a sequence.
func (n *Node) Append(items ...*Node) {
	n.mustBe(KindSequence, "Append")
	n.items = append(n.items, items...)
}

// Clear removes all sequence elements in place, preserving node identity.
// Together with Append this implements "replace the contents of a shared
// sequence" — every alias of the node observes the new contents.
// Panics if the node is not a sequence.
func (n *Node) Clear() {
	n.mustBe(KindSequence, "Clear")
	n.items = n.items[:0]
}

// Keys returns the mapping's keys in insertion order, or nil for
// non-mappings. The returned slice is a copy.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindMapping {
		return nil
	}

	return append([]string(nil), n.keys...)
}

// Get returns the child stored under key and whether it exists.
// Non-mapping receivers report false.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.kind != KindMapping {
		return nil, false
	}
	child, ok := n.children[key]

	return child, ok
}

// Set stores child under key, mutating the mapping in place. A new key is
// appended to the key order; an existing key keeps its position.
// Panics if the node is not a mapping or child is nil.
func (n *Node) Set(key string, child *Node) {
	n.mustBe(KindMapping, "Set")
	if child == nil {
		panic("document: Set with nil child")
	}
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// Delete removes key from the mapping in place and reports whether it
// was present. Panics if the node is not a mapping.
func (n *Node) Delete(key string) bool {
	n.mustBe(KindMapping, "Delete")
	if _, exists := n.children[key]; !exists {
		return false
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}

	return true
}

// Len returns the element count: sequence length, mapping size, or 0 for
// scalars and nil nodes.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Interface returns a plain-Go view of the tree: scalars as their payload,
// sequences as []any, mappings as map[string]any. Aliasing is not
// preserved in the view (shared nodes appear as independent values).
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindScalar:
		return n.value
	case KindSequence:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Interface()
		}

		return out
	default:
		out := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			out[k] = n.children[k].Interface()
		}

		return out
	}
}

// Equal reports deep structural equality of two trees: same kinds, same
// scalar payloads, same sequence order, same mapping keys in the same
// order. Node identity (aliasing) does not participate: a shared node and
// an equal copy compare the same.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindScalar:
		return a.value == b.value
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}

		return true
	default:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			if b.keys[i] != k {
				return false
			}
			if !Equal(a.children[k], b.children[k]) {
				return false
			}
		}

		return true
	}
}

// mustBe panics when the receiver is nil or not of the wanted kind.
func (n *Node) mustBe(want Kind, op string) {
	if n == nil {
		panic(fmt.Sprintf("document: %s on nil node", op))
	}
	if n.kind != want {
		panic(fmt.Sprintf("document: %s on %s node, want %s", op, n.kind, want))
	}
}
