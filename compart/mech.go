// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compart

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Mech is a biophysical mechanism that can be inserted into a section.
// The kinetics of each mechanism live in the simulation engine; here
// a mechanism is only its name, its parameters and the ions it uses.
type Mech int32

//go:generate stringer -type=Mech -linecomment

var KiT_Mech = kit.Enums.AddEnum(MechsN, kit.NotBitFlag, nil)

func (ev Mech) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Mech) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Pas is the passive leak.
	Pas Mech = iota // pas

	// CaDynamics is intracellular calcium buffering and decay.
	CaDynamics // CaDynamics

	// CaHVA is the high-voltage activated calcium channel.
	CaHVA // Ca_HVA

	// CaLVA is the low-voltage activated calcium channel.
	CaLVA // Ca_LVA

	// Ih is the hyperpolarization-activated cation current.
	Ih // Ih

	// Im is the muscarinic (M-type) potassium current.
	Im // Im

	// KP is the persistent potassium current.
	KP // K_P

	// KT is the transient potassium current.
	KT // K_T

	// Kv31 is the Kv3.1 fast potassium channel.
	Kv31 // Kv3_1

	// NaTs is the fast (transient) sodium channel.
	NaTs // NaTs

	// Nap is the persistent sodium channel.
	Nap // Nap

	// SK is the small-conductance calcium-activated potassium channel.
	SK // SK

	MechsN
)

// ParseMech returns the mechanism with the given engine name.
func ParseMech(s string) (Mech, error) {
	var m Mech
	if err := kit.SetEnumIfaceFromString(&m, s); err != nil || m >= MechsN {
		return -1, fmt.Errorf("compart: unknown mechanism %q", s)
	}
	return m, nil
}

// Params returns the parameters owned by the mechanism.
func (m Mech) Params() []Param {
	switch m {
	case Pas:
		return []Param{G, E}
	case CaDynamics:
		return []Param{Gamma, Decay}
	case CaHVA, CaLVA, Ih, Im, KP, KT, Kv31, NaTs, Nap, SK:
		return []Param{Gbar}
	}
	return nil
}

// HasParam reports whether p is a parameter of m.
func (m Mech) HasParam(p Param) bool {
	for _, mp := range m.Params() {
		if mp == p {
			return true
		}
	}
	return false
}

// Ions returns the ion species the mechanism reads or writes.
// Ih carries a non-specific current and uses none.
func (m Mech) Ions() []Ion {
	switch m {
	case CaDynamics, CaHVA, CaLVA:
		return []Ion{Ca}
	case Im, KP, KT, Kv31:
		return []Ion{K}
	case SK:
		return []Ion{K, Ca}
	case NaTs, Nap:
		return []Ion{Na}
	}
	return nil
}

// Param is a named parameter of a mechanism.
type Param int32

//go:generate stringer -type=Param -linecomment

var KiT_Param = kit.Enums.AddEnum(ParamsN, kit.NotBitFlag, nil)

func (ev Param) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Param) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Gbar is the maximal conductance density (S/cm2).
	Gbar Param = iota // gbar

	// Gamma is the fraction of calcium current that is not buffered.
	Gamma // gamma

	// Decay is the calcium removal time constant (ms).
	Decay // decay

	// G is the passive conductance density (S/cm2).
	G // g

	// E is the passive reversal potential (mV).
	E // e

	ParamsN
)

// Of returns the engine-style full name of the parameter for m,
// e.g. gbar_NaTs.
func (p Param) Of(m Mech) string {
	return p.String() + "_" + m.String()
}

// Ion is an ion species with a reversal potential.
type Ion int32

//go:generate stringer -type=Ion -linecomment

var KiT_Ion = kit.Enums.AddEnum(IonsN, kit.NotBitFlag, nil)

func (ev Ion) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Ion) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	Na Ion = iota // na
	K             // k
	Ca            // ca

	IonsN
)

// RevName returns the engine name of the reversal potential, e.g. ena.
func (i Ion) RevName() string {
	return "e" + i.String()
}
