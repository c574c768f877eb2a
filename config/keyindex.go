// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"
)

// KeyField is one component of a KeyIndex: an iterable name bound to the
// member chosen for it.
type KeyField struct {
	Name   string
	Member Member
}

// KeyIndex is the composite, immutable key addressing one analysis object
// in a Collection. Its field set and order are the iterable declaration
// order fixed at build time. Two KeyIndex values are equal iff every
// component member is equal; the declared type name does not participate
// in equality.
type KeyIndex struct {
	typeName string
	fields   []KeyField
}

// NewKeyIndex assembles a key from ordered fields. Used by BuildObjects
// and by callers constructing lookup keys by hand.
func NewKeyIndex(typeName string, fields ...KeyField) KeyIndex {
	return KeyIndex{typeName: typeName, fields: append([]KeyField(nil), fields...)}
}

// TypeName returns the name the key type was declared with at build time.
func (k KeyIndex) TypeName() string { return k.typeName }

// Fields returns the ordered components; the returned slice is a copy.
func (k KeyIndex) Fields() []KeyField {
	return append([]KeyField(nil), k.fields...)
}

// Field returns the member bound to the named field, if present.
func (k KeyIndex) Field(name string) (Member, bool) {
	for _, f := range k.fields {
		if f.Name == name {
			return f.Member, true
		}
	}

	return Member{}, false
}

// Equal reports component-wise equality in declared order.
func (k KeyIndex) Equal(other KeyIndex) bool {
	if len(k.fields) != len(other.fields) {
		return false
	}
	for i, f := range k.fields {
		if other.fields[i].Name != f.Name || other.fields[i].Member != f.Member {
			return false
		}
	}

	return true
}

// String renders the key as "TypeName(name=member, ...)".
func (k KeyIndex) String() string {
	var b strings.Builder
	b.WriteString(k.typeName)
	b.WriteByte('(')
	for i, f := range k.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", f.Name, f.Member.Name())
	}
	b.WriteByte(')')

	return b.String()
}

// canonical returns the comparable map-key form. Field order matters, so
// equal keys canonicalize identically and distinct combinations cannot
// collide (member names are unique within a domain).
func (k KeyIndex) canonical() string {
	parts := make([]string, len(k.fields))
	for i, f := range k.fields {
		parts[i] = f.Name + "=" + f.Member.Name()
	}

	return strings.Join(parts, "\x1f")
}
