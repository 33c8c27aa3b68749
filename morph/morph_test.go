// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CompCogNeuro/allencell/compart"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFileLoader(t *testing.T) {
	m, err := FileLoader{}.Load(filepath.Join("testdata", "cell.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Nr5a1-Cre_Ai14_IVSCC_-177834.03.02.01_472399664_m", m.Name)
	require.Len(t, m.Sections, 5)

	assert.Equal(t, []int{0}, m.Region(compart.Soma))
	assert.Equal(t, []int{1}, m.Region(compart.Axon))
	assert.Equal(t, []int{2, 3}, m.Region(compart.Dend))
	assert.Equal(t, []int{4}, m.Region(compart.Apic))

	soma := m.Sections[0]
	assert.Equal(t, -1, soma.Parent)
	dend1 := m.Sections[3]
	assert.Equal(t, 2, dend1.Parent)
	assert.Equal(t, 1.0, dend1.ParentX, "parent_x defaults to the distal end")
	assert.Equal(t, 0.0, m.Sections[2].ParentX)
	assert.Equal(t, compart.Point{Pos: r3.Vec{X: -79, Y: -6}, Diam: 1}, dend1.Points[1])
}

func TestFileLoaderMissing(t *testing.T) {
	_, err := FileLoader{}.Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoaderCycle(t *testing.T) {
	_, err := FileLoader{}.Load(filepath.Join("testdata", "cycle.yaml"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not yaml", "sections: [\n"},
		{"bad region", `sections: [{name: s, region: basal, points: [[0,0,0,1],[1,0,0,1]]}]`},
		{"unknown parent", `sections: [{name: s, region: soma, parent: x, points: [[0,0,0,1],[1,0,0,1]]}]`},
		{"short point", `sections: [{name: s, region: soma, points: [[0,0,1],[1,0,0,1]]}]`},
		{"one point", `sections: [{name: s, region: soma, points: [[0,0,0,1]]}]`},
		{"infinite point", `sections: [{name: s, region: soma, points: [[0,0,0,1],[.inf,0,0,1]]}]`},
		{"nan point", `sections: [{name: s, region: soma, points: [[0,.nan,0,1],[1,0,0,1]]}]`},
		{"infinite diam", `sections: [{name: s, region: soma, points: [[0,0,0,.inf],[1,0,0,1]]}]`},
		{"zero diam", `sections: [{name: s, region: soma, points: [[0,0,0,0],[1,0,0,1]]}]`},
		{"self parent", `sections: [{name: s, region: soma, parent: s, points: [[0,0,0,1],[1,0,0,1]]}]`},
		{"parent_x", `sections: [{name: s, region: soma, points: [[0,0,0,1],[1,0,0,1]]}, {name: d, region: dend, parent: s, parent_x: 2, points: [[0,0,0,1],[1,0,0,1]]}]`},
		{"duplicate", `sections: [{name: s, region: soma, points: [[0,0,0,1],[1,0,0,1]]}, {name: s, region: dend, points: [[0,0,0,1],[1,0,0,1]]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestTranslate(t *testing.T) {
	m, err := FileLoader{}.Load(filepath.Join("testdata", "cell.yaml"))
	require.NoError(t, err)
	d := r3.Vec{X: 10, Y: -2.5, Z: 100}
	tm := m.Translate(d)

	require.Len(t, tm.Sections, len(m.Sections))
	for i, s := range tm.Sections {
		orig := m.Sections[i]
		assert.Equal(t, orig.Name, s.Name)
		require.Len(t, s.Points, len(orig.Points))
		for j, p := range s.Points {
			assert.Equal(t, r3.Add(orig.Points[j].Pos, d), p.Pos)
			assert.Equal(t, orig.Points[j].Diam, p.Diam)
		}
	}

	again, err := FileLoader{}.Load(filepath.Join("testdata", "cell.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(again, m); diff != "" {
		t.Errorf("Translate modified its receiver (-want +got):\n%s", diff)
	}
}
