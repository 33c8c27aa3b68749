// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron473871429

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGroup is returned when a region group that a build step
	// needs has no sections.
	ErrEmptyGroup = errors.New("empty region group")

	// ErrUnknownSheet is returned for a Config.Sheet not in the params sheets.
	ErrUnknownSheet = errors.New("unknown params sheet")
)

// LoadError is returned when the morphology source is missing,
// unreadable or malformed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("neuron473871429: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ConfigError is returned when a build step cannot be applied to the
// loaded sections.
type ConfigError struct {

	// Step is the build step that failed.
	Step string

	// Group is the name of the region group involved, if any.
	Group string

	Err error
}

func (e *ConfigError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("neuron473871429: %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("neuron473871429: %s (%s): %v", e.Step, e.Group, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
