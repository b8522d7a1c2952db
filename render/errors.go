// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams is matched by every *ConfigError.
	ErrInvalidParams = errors.New("render: invalid parameters")

	// ErrUnknownFormat is returned by LoadParams for unsupported file
	// extensions.
	ErrUnknownFormat = errors.New("render: unknown parameter file format")
)

// ConfigError reports a structural parameter error detected before any
// frame is rendered.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("render: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidParams) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidParams
}
