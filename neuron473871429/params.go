// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron473871429

import (
	"github.com/CompCogNeuro/allencell/compart"
	"github.com/emer/emergent/v2/params"
)

// SectionSheets are params sheets applied to sections. Set functions
// cannot return errors, so they Record them on the section.
type SectionSheets = params.Sheets[*compart.Section]

// SomaMechs are the active mechanisms inserted into the soma.
// No other region gets active conductances.
var SomaMechs = []compart.Mech{
	compart.CaDynamics, compart.CaHVA, compart.CaLVA, compart.Ih, compart.Im,
	compart.KP, compart.KT, compart.Kv31, compart.NaTs, compart.Nap, compart.SK,
}

// SectionParams are the fitted parameters of model 473871429.
// Base is always applied, and others can be optionally selected to apply on top of that.
var SectionParams = SectionSheets{
	"Base": {
		{Sel: "Section", Doc: "uniform axial resistance and leak reversal",
			Set: func(sec *compart.Section) {
				sec.Ra = 100.0
				sec.Record(sec.SetParam(compart.Pas, compart.E, -90.0601425171))
			}},
		{Sel: ".apic", Doc: "spine-corrected capacitance",
			Set: func(sec *compart.Section) {
				sec.Cm = 2.57
				sec.Record(sec.SetParam(compart.Pas, compart.G, 0.000928244451449))
			}},
		{Sel: ".axon", Doc: "passive axon stub",
			Set: func(sec *compart.Section) {
				sec.Cm = 1.0
				sec.Record(sec.SetParam(compart.Pas, compart.G, 0.000437943770973))
			}},
		{Sel: ".dend", Doc: "spine-corrected capacitance",
			Set: func(sec *compart.Section) {
				sec.Cm = 2.57
				sec.Record(sec.SetParam(compart.Pas, compart.G, 9.90102776109e-05))
			}},
		{Sel: ".soma", Doc: "all active conductances are somatic",
			Set: func(sec *compart.Section) {
				sec.Cm = 1.0
				sec.Record(
					sec.SetReversal(compart.Na, 53.0),
					sec.SetReversal(compart.K, -107.0),
					sec.SetParam(compart.Im, compart.Gbar, 0.00368293),
					sec.SetParam(compart.Ih, compart.Gbar, 0.0341661),
					sec.SetParam(compart.NaTs, compart.Gbar, 0.378086),
					sec.SetParam(compart.Nap, compart.Gbar, 0.00036632),
					sec.SetParam(compart.KP, compart.Gbar, 0.00404644),
					sec.SetParam(compart.KT, compart.Gbar, 0.0016478),
					sec.SetParam(compart.SK, compart.Gbar, 0.000105283),
					sec.SetParam(compart.Kv31, compart.Gbar, 0.475705),
					sec.SetParam(compart.CaHVA, compart.Gbar, 0.000377324),
					sec.SetParam(compart.CaLVA, compart.Gbar, 0.000807931),
					sec.SetParam(compart.CaDynamics, compart.Gamma, 0.00788121),
					sec.SetParam(compart.CaDynamics, compart.Decay, 765.429),
					sec.SetParam(compart.Pas, compart.G, 2.70497e-06),
				)
			}},
	},
	"Passive": {
		{Sel: ".soma", Doc: "block somatic sodium for passive-response checks",
			Set: func(sec *compart.Section) {
				sec.Record(
					sec.SetParam(compart.NaTs, compart.Gbar, 0),
					sec.SetParam(compart.Nap, compart.Gbar, 0),
				)
			}},
	},
}
