// SPDX-License-Identifier: MIT

// Package document: YAML decoding with anchor identity preserved.
// yaml.v3 exposes the raw node graph, including which nodes are aliases of
// which anchors; decodeNode memoizes on the source *yaml.Node so that every
// alias resolves to the one *Node already built for its anchor.

package document

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML document into a configuration tree.
//
// Every YAML anchor (&name) produces exactly one *Node; every alias
// (*name) resolves to that same *Node, so shared-reference semantics
// survive decoding. Mapping key order is preserved.
//
// Returns ErrInvalidYAML (with the decoder's message as context) for
// malformed input and ErrEmptyDocument for input with no document.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	return decodeNode(root.Content[0], make(map[*yaml.Node]*Node))
}

// Load decodes a YAML document from r. See Parse.
func Load(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return Parse(data)
}

// LoadFile decodes the YAML document stored at path. See Parse.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %q: %w", path, err)
	}

	return Parse(data)
}

// decodeNode converts one yaml.v3 node, memoizing on the source node so
// anchors and their aliases share a single *Node.
func decodeNode(src *yaml.Node, seen map[*yaml.Node]*Node) (*Node, error) {
	if src.Kind == yaml.AliasNode {
		// The anchor target appears earlier in the document, so it has
		// already been decoded and memoized.
		return decodeNode(src.Alias, seen)
	}
	if node, ok := seen[src]; ok {
		return node, nil
	}

	switch src.Kind {
	case yaml.ScalarNode:
		var v any
		if err := src.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		node := Scalar(v)
		seen[src] = node

		return node, nil

	case yaml.SequenceNode:
		node := Sequence()
		seen[src] = node
		for _, item := range src.Content {
			child, err := decodeNode(item, seen)
			if err != nil {
				return nil, err
			}
			node.Append(child)
		}

		return node, nil

	case yaml.MappingNode:
		node := Mapping()
		seen[src] = node
		// Content holds alternating key/value nodes.
		for i := 0; i+1 < len(src.Content); i += 2 {
			child, err := decodeNode(src.Content[i+1], seen)
			if err != nil {
				return nil, err
			}
			// Keys are stored in their YAML string form; non-string
			// scalar keys (ints, floats) keep their literal spelling.
			node.Set(src.Content[i].Value, child)
		}

		return node, nil

	default:
		return nil, fmt.Errorf("%w: unsupported node kind %d", ErrInvalidYAML, src.Kind)
	}
}
