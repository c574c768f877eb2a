// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/dmaksimchuk/anakit/document"
)

// iterablesKey is the configuration section naming requested iterables.
const iterablesKey = "iterables"

// DetermineSelection resolves the configuration's "iterables" section
// against the registered possible iterables.
//
// For each registered (name, domain), in registration order:
//   - name absent from the section → omitted from the result;
//   - boolean true  → every member of the domain, in declared order;
//   - boolean false → omitted (explicit "off" equals absence);
//   - sequence of member names → exactly those members, in the given
//     order; unknown names fail with ErrUnknownMember;
//   - any other descriptor shape → ErrInvalidSelection naming the shape.
//
// A section entry whose name was never registered fails with
// ErrUnknownIterable; a configuration without an "iterables" section fails
// with ErrMissingIterables.
func DetermineSelection(cfg *document.Node, possible *Registry) (*Selection, error) {
	section, ok := cfg.Get(iterablesKey)
	if !ok {
		return nil, ErrMissingIterables
	}
	if section.Kind() != document.KindMapping {
		return nil, fmt.Errorf("%w: %q is a %s", ErrNotMapping, iterablesKey, section.Kind())
	}

	// Requested names must all be registered, whatever their descriptor.
	for _, name := range section.Keys() {
		if _, registered := possible.Domain(name); !registered {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIterable, name)
		}
	}

	selection := newSelection()
	for _, name := range possible.Names() {
		descriptor, requested := section.Get(name)
		if !requested {
			continue
		}
		domain, _ := possible.Domain(name)

		members, selected, err := resolveDescriptor(name, descriptor, domain)
		if err != nil {
			return nil, err
		}
		if selected {
			selection.add(name, members)
		}
	}

	return selection, nil
}

// resolveDescriptor interprets one selection descriptor. The boolean
// result reports whether the iterable participates at all (false for an
// explicit boolean off).
func resolveDescriptor(name string, descriptor *document.Node, domain Domain) ([]Member, bool, error) {
	switch descriptor.Kind() {
	case document.KindScalar:
		enabled, isBool := descriptor.Value().(bool)
		if !isBool {
			return nil, false, fmt.Errorf("%w: %q selected with %T value",
				ErrInvalidSelection, name, descriptor.Value())
		}
		if !enabled {
			return nil, false, nil
		}

		return domain.Members(), true, nil

	case document.KindSequence:
		members := make([]Member, 0, descriptor.Len())
		for _, item := range descriptor.Items() {
			memberName := fmt.Sprintf("%v", item.Value())
			member, err := domain.MemberNamed(memberName)
			if err != nil {
				return nil, false, fmt.Errorf("iterable %q: %w", name, err)
			}
			members = append(members, member)
		}

		return members, true, nil

	default:
		return nil, false, fmt.Errorf("%w: %q selected with a %s",
			ErrInvalidSelection, name, descriptor.Kind())
	}
}
