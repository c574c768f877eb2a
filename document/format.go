// SPDX-License-Identifier: MIT

// Package document: small explicit template substitution. Kept independent
// of any host templating engine; the syntax is the brace placeholder form
// used inside configuration strings ("{name}").

package document

import (
	"fmt"
	"strings"
)

// FormatString substitutes "{name}" placeholders in s with the values from
// the given mapping, rendering each value with %v.
//
// Rules:
//   - a placeholder whose name is not present in values is left literal,
//     braces and all ("{unknown}" stays "{unknown}")
//   - strings containing '$' are returned unchanged: they are treated as
//     latex-like markup whose braces carry meaning
//   - malformed placeholders (unclosed '{') are left literal
//
// Substitution is a single left-to-right pass; replaced values are not
// re-scanned for placeholders.
func FormatString(s string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(s, "{") || strings.Contains(s, "$") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '{')
		if open < 0 {
			b.WriteString(s[i:])
			break
		}
		open += i
		b.WriteString(s[i:open])
		close_ := strings.IndexByte(s[open:], '}')
		if close_ < 0 {
			b.WriteString(s[open:])
			break
		}
		close_ += open
		name := s[open+1 : close_]
		if v, ok := values[name]; ok {
			fmt.Fprintf(&b, "%v", v)
		} else {
			b.WriteString(s[open : close_+1])
		}
		i = close_ + 1
	}

	return b.String()
}

// ApplyFormatting returns a copy of the tree in which every string scalar
// has been run through FormatString with the given values. Non-string
// scalars and tree structure are unchanged. Pure: the input is not
// mutated, and aliasing is not preserved in the result.
func ApplyFormatting(node *Node, values map[string]any) *Node {
	if node == nil {
		return nil
	}
	switch node.kind {
	case KindMapping:
		out := Mapping()
		for _, k := range node.keys {
			out.Set(k, ApplyFormatting(node.children[k], values))
		}

		return out

	case KindSequence:
		out := Sequence()
		for _, item := range node.items {
			out.Append(ApplyFormatting(item, values))
		}

		return out

	default:
		if s, ok := node.value.(string); ok {
			return Scalar(FormatString(s, values))
		}

		return node
	}
}
