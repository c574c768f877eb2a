// SPDX-License-Identifier: MIT

// Package config: domain types — enumeration members, the Domain
// capability interface, the registration table, and selection results.

package config

import "fmt"

// Member is one named value of an enumeration. Members are immutable
// values; two Members are equal iff their names and payloads are equal.
// Payloads must be comparable (primitives in practice).
type Member struct {
	name  string
	value any
}

// NewMember returns a member with the given name and payload value.
func NewMember(name string, value any) Member {
	return Member{name: name, value: value}
}

// Name returns the member's declared name, as referenced in configuration.
func (m Member) Name() string { return m.name }

// Value returns the member's payload value.
func (m Member) Value() any { return m.value }

// String renders the member as its name; this is the form substituted into
// "{name}" templates during object construction.
func (m Member) String() string { return m.name }

// Domain is an ordered finite named domain — the capability any enum-like
// type must provide to participate in iterable selection.
type Domain interface {
	// Members returns every member in the enumeration's declared order.
	Members() []Member

	// MemberNamed resolves a member by name; unknown names return an error
	// matching ErrUnknownMember.
	MemberNamed(name string) (Member, error)
}

// Enum is the ready-made Domain implementation: a fixed, ordered member
// list. The zero Enum is empty but valid.
type Enum struct {
	members []Member
}

// NewEnum returns an Enum over the given members, order preserved.
func NewEnum(members ...Member) Enum {
	return Enum{members: append([]Member(nil), members...)}
}

// Members implements Domain.
func (e Enum) Members() []Member {
	return append([]Member(nil), e.members...)
}

// MemberNamed implements Domain.
func (e Enum) MemberNamed(name string) (Member, error) {
	for _, m := range e.members {
		if m.name == name {
			return m, nil
		}
	}

	return Member{}, fmt.Errorf("%w: %q", ErrUnknownMember, name)
}

// Registry is the registration table from iterable name to Domain.
// Registration order is the declaration order used everywhere downstream:
// selection output, Cartesian-product nesting, and KeyIndex field order.
type Registry struct {
	names   []string
	domains map[string]Domain
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{domains: make(map[string]Domain)}
}

// Register adds (or replaces) a named domain. A replaced name keeps its
// original position. Returns the registry for chaining.
func (r *Registry) Register(name string, d Domain) *Registry {
	if _, exists := r.domains[name]; !exists {
		r.names = append(r.names, name)
	}
	r.domains[name] = d

	return r
}

// Names returns the registered iterable names in declaration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Domain returns the domain registered under name, if any.
func (r *Registry) Domain(name string) (Domain, bool) {
	d, ok := r.domains[name]

	return d, ok
}

// Len returns the number of registered iterables.
func (r *Registry) Len() int { return len(r.names) }

// Selection is the resolved choice of members per iterable, in registry
// declaration order. Produced by DetermineSelection; consumed by
// BuildObjects.
type Selection struct {
	names   []string
	members map[string][]Member
}

// newSelection returns an empty selection.
func newSelection() *Selection {
	return &Selection{members: make(map[string][]Member)}
}

// add appends one resolved iterable; callers guarantee name uniqueness.
func (s *Selection) add(name string, members []Member) {
	s.names = append(s.names, name)
	s.members[name] = members
}

// Names returns the selected iterable names, in declaration order.
func (s *Selection) Names() []string {
	return append([]string(nil), s.names...)
}

// Members returns the selected members of one iterable, in selection
// order, or nil if the iterable is not part of the selection.
func (s *Selection) Members(name string) []Member {
	return append([]Member(nil), s.members[name]...)
}

// Len returns the number of selected iterables.
func (s *Selection) Len() int { return len(s.names) }
