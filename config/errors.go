// SPDX-License-Identifier: MIT
// Package config: sentinel error set.
// All operations return these sentinels, wrapped with the offending key,
// name or kind via fmt.Errorf("%w: ...", Err). Tests match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// structural (not-a-mapping / missing section) -> unknown names
// -> invalid descriptor types -> emptiness at build time.

package config

import "errors"

var (
	// ErrNotMapping indicates that a node expected to be a mapping (the
	// override target, the override block, a nested override value) has a
	// different kind.
	ErrNotMapping = errors.New("config: node is not a mapping")

	// ErrPathNotFound indicates that a path prefix given to Override does
	// not exist in the tree.
	ErrPathNotFound = errors.New("config: path not found")

	// ErrNoOverrideBlock indicates that the located section carries no
	// "override" mapping to apply.
	ErrNoOverrideBlock = errors.New("config: no override block")

	// ErrUnknownOverrideKey indicates an override entry whose key is not
	// already declared in the destination section. Overriding an undeclared
	// key is a configuration authoring bug, not a silent addition.
	ErrUnknownOverrideKey = errors.New("config: override key not declared in configuration")

	// ErrMissingIterables indicates that the configuration has no
	// "iterables" section to select from.
	ErrMissingIterables = errors.New("config: no iterables section")

	// ErrUnknownIterable indicates that the configuration requests an
	// iterable name that was never registered as possible.
	ErrUnknownIterable = errors.New("config: unknown iterable")

	// ErrUnknownMember indicates a selection naming a member absent from
	// its domain's enumeration.
	ErrUnknownMember = errors.New("config: unknown enumeration member")

	// ErrInvalidSelection indicates a selection descriptor that is neither
	// a boolean nor a sequence of member names.
	ErrInvalidSelection = errors.New("config: invalid iterable selection type")

	// ErrNoIterables indicates that object construction was attempted with
	// an empty selection; the Cartesian product would be empty.
	ErrNoIterables = errors.New("config: no iterables to build objects from")
)
