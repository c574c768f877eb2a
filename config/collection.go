// SPDX-License-Identifier: MIT

package config

import "iter"

// Collection is an insertion-ordered map from KeyIndex to analysis object,
// as produced by BuildObjects. Iteration order is always the product order
// the collection was built in.
type Collection[T any] struct {
	keyIndexName string
	fieldNames   []string
	order        []KeyIndex
	objects      map[string]T
}

// newCollection returns an empty collection for the given key layout.
func newCollection[T any](keyIndexName string, fieldNames []string) *Collection[T] {
	return &Collection[T]{
		keyIndexName: keyIndexName,
		fieldNames:   append([]string(nil), fieldNames...),
		objects:      make(map[string]T),
	}
}

// insert stores one object; BuildObjects guarantees key uniqueness.
func (c *Collection[T]) insert(key KeyIndex, obj T) {
	c.order = append(c.order, key)
	c.objects[key.canonical()] = obj
}

// KeyIndexName returns the key type name declared at build time.
func (c *Collection[T]) KeyIndexName() string { return c.keyIndexName }

// FieldNames returns the ordered iterable names forming each key.
func (c *Collection[T]) FieldNames() []string {
	return append([]string(nil), c.fieldNames...)
}

// Len returns the number of stored objects.
func (c *Collection[T]) Len() int { return len(c.order) }

// Get returns the object addressed by key, if present.
func (c *Collection[T]) Get(key KeyIndex) (T, bool) {
	obj, ok := c.objects[key.canonical()]

	return obj, ok
}

// Keys returns every KeyIndex in insertion order; the slice is a copy.
func (c *Collection[T]) Keys() []KeyIndex {
	return append([]KeyIndex(nil), c.order...)
}

// All returns a lazy sequence over every (key, object) pair in insertion
// order.
func (c *Collection[T]) All() iter.Seq2[KeyIndex, T] {
	return c.Selected()
}

// Criterion is one field-equality filter for Selected.
type Criterion struct {
	field  string
	member Member
}

// Where selects keys whose named field equals the given member.
func Where(field string, member Member) Criterion {
	return Criterion{field: field, member: member}
}

// Selected returns a lazy sequence over the (key, object) pairs whose keys
// satisfy every criterion, in insertion order. A key lacking a criterion's
// field passes that criterion; with no criteria every pair is yielded.
// The sequence is evaluated on demand; breaking out of the range stops it.
func (c *Collection[T]) Selected(criteria ...Criterion) iter.Seq2[KeyIndex, T] {
	return func(yield func(KeyIndex, T) bool) {
		for _, key := range c.order {
			if !matches(key, criteria) {
				continue
			}
			if !yield(key, c.objects[key.canonical()]) {
				return
			}
		}
	}
}

// matches reports whether key satisfies every criterion.
func matches(key KeyIndex, criteria []Criterion) bool {
	for _, cr := range criteria {
		member, ok := key.Field(cr.field)
		if ok && member != cr.member {
			return false
		}
	}

	return true
}
