// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package morph holds a reconstructed cell morphology after it has been
parsed and classified into tagged sections by morphology tooling.
Reading raw reconstruction formats is left to that tooling: a Loader
only hands over the resulting section tree.
*/
package morph

import (
	"errors"
	"fmt"
	"math"

	"github.com/CompCogNeuro/allencell/compart"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMalformed is returned for a morphology that is not a valid section tree.
var ErrMalformed = errors.New("morph: malformed morphology")

// Loader provides the morphology for a source, typically a file path.
type Loader interface {
	Load(src string) (*Morphology, error)
}

// Section is one unbranched, region-tagged piece of the reconstruction.
type Section struct {
	Name   string
	Region compart.Region

	// Parent is the index of the parent section, -1 for a root.
	Parent int

	// ParentX is the position (0..1) on the parent the section attaches to.
	ParentX float64

	Points []compart.Point
}

// Morphology is an ordered list of sections.
type Morphology struct {
	Name     string
	Sections []Section
}

// Validate checks that the sections form a forest of well-formed sections.
func (m *Morphology) Validate() error {
	names := make(map[string]int, len(m.Sections))
	g := simple.NewDirectedGraph()
	for i, s := range m.Sections {
		if s.Name == "" {
			return fmt.Errorf("%w: section %d has no name", ErrMalformed, i)
		}
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("%w: duplicate section %q", ErrMalformed, s.Name)
		}
		names[s.Name] = i
		if s.Region < 0 || s.Region >= compart.RegionsN {
			return fmt.Errorf("%w: %s: bad region %v", ErrMalformed, s.Name, s.Region)
		}
		if len(s.Points) < 2 {
			return fmt.Errorf("%w: %s: %d points, need at least 2", ErrMalformed, s.Name, len(s.Points))
		}
		for _, p := range s.Points {
			if !finite(p.Pos.X) || !finite(p.Pos.Y) || !finite(p.Pos.Z) {
				return fmt.Errorf("%w: %s: non-finite point %v", ErrMalformed, s.Name, p.Pos)
			}
			if !(p.Diam > 0) || !finite(p.Diam) {
				return fmt.Errorf("%w: %s: bad diameter %g", ErrMalformed, s.Name, p.Diam)
			}
		}
		if s.ParentX < 0 || s.ParentX > 1 {
			return fmt.Errorf("%w: %s: parent position %g", ErrMalformed, s.Name, s.ParentX)
		}
		g.AddNode(simple.Node(i))
	}
	for i, s := range m.Sections {
		if s.Parent < 0 {
			continue
		}
		if s.Parent >= len(m.Sections) || s.Parent == i {
			return fmt.Errorf("%w: %s: bad parent %d", ErrMalformed, s.Name, s.Parent)
		}
		g.SetEdge(g.NewEdge(simple.Node(s.Parent), simple.Node(i)))
	}
	if _, err := topo.Sort(g); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Translate returns a copy of m with every point shifted by d.
func (m *Morphology) Translate(d r3.Vec) *Morphology {
	tm := &Morphology{Name: m.Name, Sections: make([]Section, len(m.Sections))}
	for i, s := range m.Sections {
		pts := make([]compart.Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = compart.Point{Pos: r3.Add(p.Pos, d), Diam: p.Diam}
		}
		s.Points = pts
		tm.Sections[i] = s
	}
	return tm
}

// Region returns the indexes of the sections tagged with r, in order.
func (m *Morphology) Region(r compart.Region) []int {
	var idx []int
	for i, s := range m.Sections {
		if s.Region == r {
			idx = append(idx, i)
		}
	}
	return idx
}
