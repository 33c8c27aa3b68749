// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neuron473871429 builds the Allen Brain Institute model 473871429:
// a reconstructed morphology with its axon replaced by a two-section stub,
// passive leak everywhere, all active conductances in the soma, and
// fitted per-region parameters.
package neuron473871429

import (
	"errors"
	"fmt"

	"github.com/CompCogNeuro/allencell/compart"
	"github.com/CompCogNeuro/allencell/morph"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Synthetic axon geometry.
const (
	AxonN    = 2
	AxonL    = 30.0
	AxonDiam = 1.0
)

// Build step names used in ConfigError.
const (
	StepAxon       = "axon"
	StepDiscretize = "discretize"
	StepParams     = "params"
)

// Builder builds cells on an engine. The zero value uses a FileLoader,
// SectionParams and no logging, and needs WithEngine before Build.
type Builder struct {
	engine compart.Engine
	loader morph.Loader
	sheets SectionSheets
	log    *zap.Logger
}

// WithEngine sets the engine that creates and owns the sections.
func (b Builder) WithEngine(eng compart.Engine) Builder {
	b.engine = eng
	return b
}

// WithLoader sets the morphology loader.
func (b Builder) WithLoader(ld morph.Loader) Builder {
	b.loader = ld
	return b
}

// WithSheets replaces SectionParams.
func (b Builder) WithSheets(sh SectionSheets) Builder {
	b.sheets = sh
	return b
}

// WithLogger sets the logger. Build steps are logged at debug level
// and the finished cell at info level.
func (b Builder) WithLogger(log *zap.Logger) Builder {
	b.log = log
	return b
}

// Build loads the morphology from src and builds a fully parameterized cell.
// It fails with a *LoadError or a *ConfigError, and then leaves nothing
// registered with the engine.
func (b Builder) Build(src string, cfg *Config) (cell *Cell, err error) {
	if b.engine == nil {
		return nil, errors.New("neuron473871429: builder has no engine")
	}
	if b.loader == nil {
		b.loader = morph.FileLoader{}
	}
	if b.sheets == nil {
		b.sheets = SectionParams
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if cfg == nil {
		cfg = &Config{}
	}
	log := b.log.With(zap.String("source", src))

	m, err := b.loader.Load(src)
	if err == nil && m == nil {
		err = fmt.Errorf("%w: loader returned no morphology", morph.ErrMalformed)
	}
	if err == nil {
		err = m.Validate()
	}
	if err != nil {
		return nil, &LoadError{Source: src, Err: err}
	}
	m = m.Translate(cfg.Offset())
	log.Debug("loaded morphology", zap.String("morphology", m.Name), zap.Int("sections", len(m.Sections)))

	c := &Cell{ID: uuid.New(), Name: cfg.Name}
	defer func() {
		if err != nil {
			for _, sec := range c.All {
				b.engine.Delete(sec)
			}
		}
	}()

	if err = c.instantiate(b.engine, m); err != nil {
		return nil, &LoadError{Source: src, Err: err}
	}
	if err = c.addAxon(b.engine); err != nil {
		return nil, err
	}
	log.Debug("attached axon", zap.Int("soma", len(c.Soma)), zap.Int("dend", len(c.Dend)), zap.Int("apic", len(c.Apic)))
	c.insertMechanisms()
	if err = c.discretize(); err != nil {
		return nil, err
	}
	if err = c.setParams(b.sheets, cfg.Sheet, log); err != nil {
		return nil, err
	}
	log.Info("built cell", zap.Stringer("cell", c), zap.Int("sections", len(c.All)))
	return c, nil
}

// instantiate creates the engine sections of m, leaving out its axon.
func (c *Cell) instantiate(eng compart.Engine, m *morph.Morphology) error {
	secs := make([]*compart.Section, len(m.Sections))
	for i, ms := range m.Sections {
		if ms.Region == compart.Axon {
			continue
		}
		if ms.Parent >= 0 && m.Sections[ms.Parent].Region == compart.Axon {
			return fmt.Errorf("%w: %s attaches to axon section %s", morph.ErrMalformed, ms.Name, m.Sections[ms.Parent].Name)
		}
		sec := eng.NewSection(c.ID, ms.Name, ms.Region)
		sec.SetPoints(ms.Points)
		c.addToGroup(sec)
		secs[i] = sec
	}
	for i, ms := range m.Sections {
		if secs[i] == nil || ms.Parent < 0 {
			continue
		}
		if err := secs[i].Connect(secs[ms.Parent], ms.ParentX); err != nil {
			return err
		}
	}
	return nil
}

// addAxon attaches the axon stub: axon[0] at soma[0](0.5), axon[1] at axon[0](1).
func (c *Cell) addAxon(eng compart.Engine) error {
	if len(c.Soma) == 0 {
		return &ConfigError{Step: StepAxon, Group: compart.Soma.String(), Err: ErrEmptyGroup}
	}
	parent, x := c.Soma[0], 0.5
	for i := 0; i < AxonN; i++ {
		sec := eng.NewSection(c.ID, fmt.Sprintf("axon[%d]", i), compart.Axon)
		c.addToGroup(sec)
		sec.L = AxonL
		sec.Diam = AxonDiam
		if err := sec.SetNSeg(1); err != nil {
			return &ConfigError{Step: StepAxon, Group: compart.Axon.String(), Err: err}
		}
		if err := sec.Connect(parent, x); err != nil {
			return &ConfigError{Step: StepAxon, Group: compart.Axon.String(), Err: err}
		}
		parent, x = sec, 1
	}
	return nil
}

func (c *Cell) insertMechanisms() {
	for _, sec := range c.All {
		sec.Insert(compart.Pas)
	}
	for _, sec := range c.Soma {
		for _, m := range SomaMechs {
			sec.Insert(m)
		}
	}
	c.Mechs = append([]compart.Mech{compart.Pas}, SomaMechs...)
}

func (c *Cell) discretize() error {
	for _, sec := range c.All {
		if err := sec.SetNSeg(compart.NSegFor(sec.L)); err != nil {
			return &ConfigError{Step: StepDiscretize, Group: sec.Region.String(), Err: err}
		}
	}
	return nil
}

// setParams applies the Base sheet and then the extra sheet, if any,
// to every section. Errors recorded by the sheet setters fail the step.
func (c *Cell) setParams(sheets SectionSheets, extra string, log *zap.Logger) error {
	names := []string{"Base"}
	if extra != "" && extra != "Base" {
		names = append(names, extra)
	}
	for _, nm := range names {
		sh, err := sheets.SheetByName(nm)
		if err != nil {
			return &ConfigError{Step: StepParams, Err: fmt.Errorf("%w: %v", ErrUnknownSheet, err)}
		}
		for _, sec := range c.All {
			sh.Apply(sec)
		}
	}
	var errs []error
	for _, sec := range c.All {
		if err := sec.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &ConfigError{Step: StepParams, Err: errors.Join(errs...)}
	}
	for r := compart.Soma; r < compart.RegionsN; r++ {
		if len(c.Group(r)) == 0 {
			log.Debug("region has no sections", zap.Stringer("region", r))
		}
	}
	return nil
}
