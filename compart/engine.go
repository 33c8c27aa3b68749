// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compart

import (
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Engine creates and owns sections. It stands for the simulation engine
// the sections are integrated by, and is handed to builders explicitly.
type Engine interface {

	// NewSection creates a section owned by the given cell.
	NewSection(owner uuid.UUID, name string, region Region) *Section

	// Delete removes a section and detaches it from the tree.
	Delete(sec *Section)
}

// Registry is an in-memory Engine. It is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	seq  uint64
	secs map[uuid.UUID]*Section
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{secs: make(map[uuid.UUID]*Section)}
}

func (rg *Registry) NewSection(owner uuid.UUID, name string, region Region) *Section {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	rg.seq++
	sec := newSection(uuid.New(), owner, name, region, rg.seq)
	rg.secs[sec.ID] = sec
	return sec
}

func (rg *Registry) Delete(sec *Section) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if _, ok := rg.secs[sec.ID]; !ok {
		return
	}
	delete(rg.secs, sec.ID)
	sec.disconnect()
}

// Lookup returns the section with the given id.
func (rg *Registry) Lookup(id uuid.UUID) (*Section, bool) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	sec, ok := rg.secs[id]
	return sec, ok
}

// Len returns the number of live sections.
func (rg *Registry) Len() int {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	return len(rg.secs)
}

// Owned returns the sections owned by a cell, in creation order.
func (rg *Registry) Owned(owner uuid.UUID) []*Section {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	var secs []*Section
	for _, sec := range rg.secs {
		if sec.Owner == owner {
			secs = append(secs, sec)
		}
	}
	sort.Slice(secs, func(i, j int) bool { return secs[i].seq < secs[j].seq })
	return secs
}

const (
	// SegLength is the target segment length (um) of NSegFor.
	SegLength = 40.0

	// MaxNSeg is the largest segment count the engine accepts.
	MaxNSeg = 32767
)

// NSegFor returns the segment count for a section of length l:
// 1 + 2*floor(l/40), which is always odd and at least 1.
// Lengths beyond the engine limit get MaxNSeg.
func NSegFor(l float64) int {
	if l <= 0 || math.IsNaN(l) {
		return 1
	}
	n := math.Floor(l / SegLength)
	if n >= (MaxNSeg-1)/2 {
		return MaxNSeg
	}
	return 1 + 2*int(n)
}
