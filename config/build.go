// SPDX-License-Identifier: MIT

// Package config: Cartesian-product object construction.
//
// One analysis object is built per combination of selected iterable
// members. Combinations enumerate in nested-loop order with the
// first-declared iterable as the outermost loop, so the product order is
// deterministic and mirrors the declaration order everywhere else.

package config

import (
	"fmt"

	"github.com/dmaksimchuk/anakit/document"
)

// Arguments is the per-combination input handed to a Factory: the member
// chosen for every iterable, plus the caller's extra arguments with their
// string values already template-substituted for this combination.
type Arguments struct {
	Iterables map[string]Member
	Options   map[string]any
}

// Factory constructs one analysis object from one combination.
type Factory[T any] func(Arguments) (T, error)

// BuildObjects builds one object per combination of the selection's
// members and returns the ordered iterable names together with the keyed
// collection (one entry per combination; len = product of per-iterable
// selection sizes; keys unique by construction).
//
// Each string value in args is run through document.FormatString with
// formatting merged with the current combination's members (the
// combination wins on name collisions), so one template can render
// differently for every generated object. Non-string args pass through
// untouched.
//
// An empty selection fails with ErrNoIterables; a factory error aborts the
// build and is returned wrapped with the offending key.
func BuildObjects[T any](
	factory Factory[T],
	args map[string]any,
	selection *Selection,
	formatting map[string]any,
	keyIndexName string,
) ([]string, *Collection[T], error) {
	if selection == nil || selection.Len() == 0 {
		return nil, nil, ErrNoIterables
	}

	names := selection.Names()
	axes := make([][]Member, len(names))
	for i, name := range names {
		axes[i] = selection.Members(name)
	}

	collection := newCollection[T](keyIndexName, names)
	for combination := range product(axes) {
		fields := make([]KeyField, len(names))
		iterables := make(map[string]Member, len(names))
		substitutions := make(map[string]any, len(formatting)+len(names))
		for k, v := range formatting {
			substitutions[k] = v
		}
		for i, name := range names {
			fields[i] = KeyField{Name: name, Member: combination[i]}
			iterables[name] = combination[i]
			substitutions[name] = combination[i]
		}

		options := make(map[string]any, len(args))
		for k, v := range args {
			if s, isString := v.(string); isString {
				options[k] = document.FormatString(s, substitutions)
			} else {
				options[k] = v
			}
		}

		key := NewKeyIndex(keyIndexName, fields...)
		obj, err := factory(Arguments{Iterables: iterables, Options: options})
		if err != nil {
			return nil, nil, fmt.Errorf("config: build %s: %w", key, err)
		}
		collection.insert(key, obj)
	}

	return names, collection, nil
}

// product yields every combination of one member per axis, leftmost axis
// varying slowest. An axis with no members yields no combinations. The
// yielded slice is reused between iterations; consumers must not retain it.
func product(axes [][]Member) func(yield func([]Member) bool) {
	return func(yield func([]Member) bool) {
		for _, axis := range axes {
			if len(axis) == 0 {
				return
			}
		}
		indices := make([]int, len(axes))
		combination := make([]Member, len(axes))
		for {
			for i, axis := range axes {
				combination[i] = axis[indices[i]]
			}
			if !yield(combination) {
				return
			}
			// Odometer increment, rightmost digit fastest.
			i := len(axes) - 1
			for ; i >= 0; i-- {
				indices[i]++
				if indices[i] < len(axes[i]) {
					break
				}
				indices[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
