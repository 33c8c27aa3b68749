// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morph

import (
	"fmt"
	"io"
	"os"

	"github.com/CompCogNeuro/allencell/compart"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// fileSection is the YAML form of a Section. Points are [x, y, z, diam].
type fileSection struct {
	Name    string      `yaml:"name"`
	Region  string      `yaml:"region"`
	Parent  string      `yaml:"parent,omitempty"`
	ParentX *float64    `yaml:"parent_x,omitempty"`
	Points  [][]float64 `yaml:"points"`
}

type fileMorphology struct {
	Name     string        `yaml:"name"`
	Sections []fileSection `yaml:"sections"`
}

// FileLoader loads a morphology from a YAML structure file.
type FileLoader struct{}

func (FileLoader) Load(src string) (*Morphology, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML structure document and validates the result.
func Decode(r io.Reader) (*Morphology, error) {
	var fm fileMorphology
	if err := yaml.NewDecoder(r).Decode(&fm); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	m := &Morphology{Name: fm.Name, Sections: make([]Section, len(fm.Sections))}
	index := make(map[string]int, len(fm.Sections))
	for i, fs := range fm.Sections {
		index[fs.Name] = i
	}
	for i, fs := range fm.Sections {
		reg, err := compart.ParseRegion(fs.Region)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, fs.Name, err)
		}
		s := Section{Name: fs.Name, Region: reg, Parent: -1, ParentX: 1}
		if fs.Parent != "" {
			p, ok := index[fs.Parent]
			if !ok {
				return nil, fmt.Errorf("%w: %s: unknown parent %q", ErrMalformed, fs.Name, fs.Parent)
			}
			s.Parent = p
		}
		if fs.ParentX != nil {
			s.ParentX = *fs.ParentX
		}
		for _, pt := range fs.Points {
			if len(pt) != 4 {
				return nil, fmt.Errorf("%w: %s: point %v is not [x, y, z, diam]", ErrMalformed, fs.Name, pt)
			}
			s.Points = append(s.Points, compart.Point{Pos: r3.Vec{X: pt[0], Y: pt[1], Z: pt[2]}, Diam: pt[3]})
		}
		m.Sections[i] = s
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
