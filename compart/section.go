// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	ErrNotInserted  = errors.New("compart: mechanism not inserted")
	ErrUnknownParam = errors.New("compart: parameter not owned by mechanism")
	ErrIonAbsent    = errors.New("compart: no inserted mechanism uses ion")
	ErrBadPosition  = errors.New("compart: connection position outside [0, 1]")
	ErrCycle        = errors.New("compart: connection would create a cycle")
	ErrConnected    = errors.New("compart: section already has a parent")
	ErrBadNSeg      = errors.New("compart: nseg outside [1, MaxNSeg]")
)

// Default section geometry and cable properties on creation.
const (
	DefaultL    = 100.0
	DefaultDiam = 500.0
	DefaultRa   = 35.4
	DefaultCm   = 1.0
)

// Point is one 3-D sample along a section centerline.
type Point struct {
	Pos  r3.Vec
	Diam float64
}

// Section is a cylindrical compartment with uniform cable properties.
// Sections are created by an Engine and form a tree through Connect.
type Section struct {

	// ID is the identity assigned by the engine.
	ID uuid.UUID

	// Owner is the id of the cell the section belongs to.
	Owner uuid.UUID

	// Name within the owning cell, e.g. soma[0].
	Name string

	// Region tag.
	Region Region

	// L is the length in um.
	L float64

	// Diam is the diameter in um.
	Diam float64

	// Ra is the axial resistance in ohm cm.
	Ra float64

	// Cm is the specific membrane capacitance in uF/cm2.
	Cm float64

	nseg     int
	seq      uint64
	points   []Point
	parent   *Section
	parentX  float64
	children []*Section
	mechs    map[Mech]map[Param]float64
	revs     map[Ion]float64
	errs     []error
}

func newSection(id, owner uuid.UUID, name string, region Region, seq uint64) *Section {
	return &Section{
		ID:     id,
		Owner:  owner,
		Name:   name,
		Region: region,
		L:      DefaultL,
		Diam:   DefaultDiam,
		Ra:     DefaultRa,
		Cm:     DefaultCm,
		nseg:   1,
		seq:    seq,
	}
}

func (sec *Section) String() string {
	return sec.Name
}

// StyleName is the name used for #name parameter selectors.
func (sec *Section) StyleName() string { return sec.Name }

// StyleClass is the class used for .class parameter selectors.
func (sec *Section) StyleClass() string { return sec.Region.String() }

// NSeg returns the number of discretization segments.
func (sec *Section) NSeg() int { return sec.nseg }

// SetNSeg sets the number of discretization segments.
func (sec *Section) SetNSeg(n int) error {
	if n < 1 || n > MaxNSeg {
		return fmt.Errorf("%w: %s nseg %d", ErrBadNSeg, sec.Name, n)
	}
	sec.nseg = n
	return nil
}

// Points returns the 3-D points of the section.
func (sec *Section) Points() []Point { return sec.points }

// SetPoints replaces the 3-D points. With two or more points, L becomes
// the length of the polyline and Diam the mean point diameter.
func (sec *Section) SetPoints(pts []Point) {
	sec.points = append([]Point(nil), pts...)
	if len(pts) < 2 {
		return
	}
	l, d := 0.0, pts[0].Diam
	for i := 1; i < len(pts); i++ {
		l += r3.Norm(r3.Sub(pts[i].Pos, pts[i-1].Pos))
		d += pts[i].Diam
	}
	sec.L = l
	sec.Diam = d / float64(len(pts))
}

// Connect attaches the 0 end of sec to position x of parent.
func (sec *Section) Connect(parent *Section, x float64) error {
	switch {
	case parent == nil:
		return fmt.Errorf("compart: connect %s: nil parent", sec.Name)
	case x < 0 || x > 1:
		return fmt.Errorf("%w: %s(%g)", ErrBadPosition, parent.Name, x)
	case sec.parent != nil:
		return fmt.Errorf("%w: %s", ErrConnected, sec.Name)
	}
	for p := parent; p != nil; p = p.parent {
		if p == sec {
			return fmt.Errorf("%w: %s to %s", ErrCycle, sec.Name, parent.Name)
		}
	}
	sec.parent = parent
	sec.parentX = x
	parent.children = append(parent.children, sec)
	return nil
}

// Parent returns the parent section and the position on it, or nil for a root.
func (sec *Section) Parent() (*Section, float64) { return sec.parent, sec.parentX }

// Children returns the sections connected to sec, in connection order.
func (sec *Section) Children() []*Section { return sec.children }

func (sec *Section) disconnect() {
	if p := sec.parent; p != nil {
		for i, c := range p.children {
			if c == sec {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	for _, c := range sec.children {
		c.parent = nil
		c.parentX = 0
	}
	sec.parent = nil
	sec.children = nil
}

// Insert adds mechanism m. Inserting twice is a no-op.
func (sec *Section) Insert(m Mech) {
	if _, ok := sec.mechs[m]; ok {
		return
	}
	if sec.mechs == nil {
		sec.mechs = make(map[Mech]map[Param]float64)
	}
	sec.mechs[m] = make(map[Param]float64)
}

// Has reports whether m is inserted.
func (sec *Section) Has(m Mech) bool {
	_, ok := sec.mechs[m]
	return ok
}

// Mechs returns the inserted mechanisms in enumeration order.
func (sec *Section) Mechs() []Mech {
	var ms []Mech
	for m := Mech(0); m < MechsN; m++ {
		if sec.Has(m) {
			ms = append(ms, m)
		}
	}
	return ms
}

// SetParam sets parameter p of the inserted mechanism m.
func (sec *Section) SetParam(m Mech, p Param, v float64) error {
	ps, ok := sec.mechs[m]
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrNotInserted, m, sec.Name)
	}
	if !m.HasParam(p) {
		return fmt.Errorf("%w: %s", ErrUnknownParam, p.Of(m))
	}
	ps[p] = v
	return nil
}

// Param returns parameter p of mechanism m, and whether it has been set.
func (sec *Section) Param(m Mech, p Param) (float64, bool) {
	v, ok := sec.mechs[m][p]
	return v, ok
}

// usesIon reports whether an inserted mechanism uses ion.
func (sec *Section) usesIon(ion Ion) bool {
	for m := range sec.mechs {
		for _, mi := range m.Ions() {
			if mi == ion {
				return true
			}
		}
	}
	return false
}

// SetReversal sets the reversal potential of ion (mV). Some inserted
// mechanism must use the ion.
func (sec *Section) SetReversal(ion Ion, e float64) error {
	if !sec.usesIon(ion) {
		return fmt.Errorf("%w: %s in %s", ErrIonAbsent, ion.RevName(), sec.Name)
	}
	if sec.revs == nil {
		sec.revs = make(map[Ion]float64)
	}
	sec.revs[ion] = e
	return nil
}

// Reversal returns the reversal potential of ion, and whether it has been set.
func (sec *Section) Reversal(ion Ion) (float64, bool) {
	e, ok := sec.revs[ion]
	return e, ok
}

// Record keeps the non-nil errors of setters called where no error
// can be returned, such as params sheet Set functions.
func (sec *Section) Record(errs ...error) {
	for _, err := range errs {
		if err != nil {
			sec.errs = append(sec.errs, err)
		}
	}
}

// Err returns the errors kept by Record, or nil.
func (sec *Section) Err() error {
	return errors.Join(sec.errs...)
}
