// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron473871429

import (
	"github.com/CompCogNeuro/allencell/compart"
	"github.com/google/uuid"
)

// Cell is the Allen Brain Institute model 473871429 instantiated on an
// engine. It is built once by a Builder and only read afterwards.
type Cell struct {

	// ID is the owner id of all sections of the cell.
	ID uuid.UUID

	// Name is the display name given at construction, possibly empty.
	Name string

	// Soma sections, in load order.
	Soma []*compart.Section

	// Axon is the synthetic two-section axon stub.
	Axon []*compart.Section

	// Dend are the basal dendrite sections, in load order.
	Dend []*compart.Section

	// Apic are the apical dendrite sections, in load order.
	Apic []*compart.Section

	// All is every section: loaded sections in load order, then Axon.
	All []*compart.Section

	// Mechs is the set of mechanisms inserted anywhere in the cell.
	Mechs []compart.Mech
}

// String returns the display name, or DefaultName.
func (c *Cell) String() string {
	if c.Name == "" {
		return DefaultName
	}
	return c.Name
}

// Group returns the sections of region r.
func (c *Cell) Group(r compart.Region) []*compart.Section {
	switch r {
	case compart.Soma:
		return c.Soma
	case compart.Axon:
		return c.Axon
	case compart.Dend:
		return c.Dend
	case compart.Apic:
		return c.Apic
	}
	return nil
}

func (c *Cell) addToGroup(sec *compart.Section) {
	switch sec.Region {
	case compart.Soma:
		c.Soma = append(c.Soma, sec)
	case compart.Axon:
		c.Axon = append(c.Axon, sec)
	case compart.Dend:
		c.Dend = append(c.Dend, sec)
	case compart.Apic:
		c.Apic = append(c.Apic, sec)
	}
	c.All = append(c.All, sec)
}

// SectionSummary is a serializable snapshot of one section.
type SectionSummary struct {
	Name    string             `yaml:"name"`
	Region  string             `yaml:"region"`
	Parent  string             `yaml:"parent,omitempty"`
	ParentX float64            `yaml:"parent_x,omitempty"`
	L       float64            `yaml:"L"`
	Diam    float64            `yaml:"diam"`
	NSeg    int                `yaml:"nseg"`
	Ra      float64            `yaml:"Ra"`
	Cm      float64            `yaml:"cm"`
	Mechs   []string           `yaml:"mechanisms"`
	Params  map[string]float64 `yaml:"params"`
}

// Summary is a serializable snapshot of a cell.
type Summary struct {
	Name     string           `yaml:"name"`
	ID       string           `yaml:"id"`
	Sections []SectionSummary `yaml:"sections"`
}

// Summary returns a snapshot of the cell with engine-style parameter
// names, e.g. gbar_NaTs and ena.
func (c *Cell) Summary() *Summary {
	sm := &Summary{Name: c.String(), ID: c.ID.String()}
	for _, sec := range c.All {
		ss := SectionSummary{
			Name:   sec.Name,
			Region: sec.Region.String(),
			L:      sec.L,
			Diam:   sec.Diam,
			NSeg:   sec.NSeg(),
			Ra:     sec.Ra,
			Cm:     sec.Cm,
			Params: make(map[string]float64),
		}
		if p, x := sec.Parent(); p != nil {
			ss.Parent = p.Name
			ss.ParentX = x
		}
		for _, m := range sec.Mechs() {
			ss.Mechs = append(ss.Mechs, m.String())
			for _, p := range m.Params() {
				if v, ok := sec.Param(m, p); ok {
					ss.Params[p.Of(m)] = v
				}
			}
		}
		for ion := compart.Ion(0); ion < compart.IonsN; ion++ {
			if e, ok := sec.Reversal(ion); ok {
				ss.Params[ion.RevName()] = e
			}
		}
		sm.Sections = append(sm.Sections, ss)
	}
	return sm
}
