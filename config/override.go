// SPDX-License-Identifier: MIT

// Package config: the override merge engine.
//
// The merge mutates the base tree in place and leans on node identity:
// a value referenced from several keys via anchors is one shared *Node,
// and writing through it updates every holder at once. Replacement
// therefore never rebinds a shared node when the node itself can be
// mutated — a length-1 sequence (the shared unit for scalar anchors) is
// cleared and refilled, keeping its identity alive for every alias.

package config

import (
	"fmt"

	"github.com/dmaksimchuk/anakit/document"
)

// overrideKey is the reserved top-level key holding replacement values.
const overrideKey = "override"

// Override applies the tree's override block onto the tree itself.
//
// specificKeys is the path prefix of the section to treat as the
// destination; overrideKeys is the path prefix, inside the override block,
// of the sub-block to apply. Empty slices mean the whole tree and the full
// block. After a successful merge the override block is removed from the
// destination: the engine proceeds as if it had never existed.
//
// For every (key, value) pair of the override source:
//   - a key not declared in the destination fails with
//     ErrUnknownOverrideKey naming the key;
//   - a mapping destination value is merged recursively (the override value
//     must itself be a mapping — nested partial overrides);
//   - a length-1 sequence destination is cleared and refilled in place, so
//     every anchor alias of that sequence observes the new value;
//   - anything else is replaced by assigning into the containing mapping.
//
// Override mutates base and is not safe for concurrent use on one tree.
func Override(base *document.Node, specificKeys, overrideKeys []string, opts ...Option) error {
	o := gatherOptions(opts)

	target, err := descend(base, specificKeys)
	if err != nil {
		return err
	}
	block, ok := target.Get(overrideKey)
	if !ok {
		return ErrNoOverrideBlock
	}
	source, err := descend(block, overrideKeys)
	if err != nil {
		return err
	}

	if err := mergeMapping(target, source, o); err != nil {
		return err
	}
	target.Delete(overrideKey)

	return nil
}

// mergeMapping applies every entry of src onto dst per the Override rules.
func mergeMapping(dst, src *document.Node, o options) error {
	for _, key := range src.Keys() {
		if key == overrideKey {
			// The block is a source of values, never a destination.
			continue
		}
		value, _ := src.Get(key)
		current, declared := dst.Get(key)
		if !declared {
			return fmt.Errorf("%w: %q", ErrUnknownOverrideKey, key)
		}

		switch {
		case current.Kind() == document.KindMapping:
			if value.Kind() != document.KindMapping {
				return fmt.Errorf("%w: override value for %q must be a mapping, got %s",
					ErrNotMapping, key, value.Kind())
			}
			if err := mergeMapping(current, value, o); err != nil {
				return err
			}

		case current.Kind() == document.KindSequence && current.Len() == 1:
			// Shared unit: keep the sequence's identity, swap its contents.
			current.Clear()
			current.Append(value)
			o.debug("override applied through shared sequence", "key", key)

		default:
			dst.Set(key, value)
			o.debug("override applied", "key", key)
		}
	}

	return nil
}

// descend walks a mapping path and returns the mapping it lands on.
func descend(node *document.Node, path []string) (*document.Node, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrNotMapping)
	}
	if node.Kind() != document.KindMapping {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, node.Kind())
	}
	for _, key := range path {
		child, ok := node.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, key)
		}
		if child.Kind() != document.KindMapping {
			return nil, fmt.Errorf("%w: %q is a %s", ErrNotMapping, key, child.Kind())
		}
		node = child
	}

	return node, nil
}
