// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron473871429

import "gonum.org/v1/gonum/spatial/r3"

// DefaultName is the display name of a cell built without a name.
const DefaultName = "Neuron473871429_instance"

// Config has the construction options of a cell.
type Config struct {

	// Name is the display name of the cell. Empty means DefaultName.
	Name string

	// X is the x offset (um) added to every loaded point.
	X float64 `default:"0"`

	// Y is the y offset (um) added to every loaded point.
	Y float64 `default:"0"`

	// Z is the z offset (um) added to every loaded point.
	Z float64 `default:"0"`

	// Sheet is an extra params sheet applied on top of Base.
	// Must be a name in SectionParams.
	Sheet string
}

func (cfg *Config) Defaults() {
	cfg.Name = ""
	cfg.X, cfg.Y, cfg.Z = 0, 0, 0
	cfg.Sheet = ""
}

// Offset returns the position offset as a vector.
func (cfg *Config) Offset() r3.Vec {
	return r3.Vec{X: cfg.X, Y: cfg.Y, Z: cfg.Z}
}
