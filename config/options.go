// SPDX-License-Identifier: MIT

// Package config: functional options. Deterministic behavior, no global
// state; the zero options value is the documented default.

package config

import "log/slog"

// options carries the gathered option state.
type options struct {
	logger *slog.Logger
}

// Option configures an operation of this package.
type Option func(*options)

// WithLogger attaches a structured logger; Override emits one Debug record
// per applied key. The default is no logging at all.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions folds the given options over the defaults.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// debug logs one record when a logger is configured.
func (o options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}
