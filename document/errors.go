// SPDX-License-Identifier: MIT
// Package document: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", Err)); callers match with errors.Is.

package document

import "errors"

var (
	// ErrInvalidYAML indicates that the input could not be decoded as YAML.
	// The underlying yaml.v3 error is attached as context.
	ErrInvalidYAML = errors.New("document: invalid YAML input")

	// ErrEmptyDocument indicates that the input decoded to no document at all
	// (empty input or a stream with no nodes).
	ErrEmptyDocument = errors.New("document: empty document")
)
