// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/CompCogNeuro/allencell/neuron473871429"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var cellFile = filepath.Join("..", "testdata", "cell.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	saved := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { newLogger = saved })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildYAML(t *testing.T) {
	out, err := run(t, "build", "--morph", cellFile, "--name", "cli", "--z", "5")
	require.NoError(t, err)

	var sm neuron473871429.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &sm))
	assert.Equal(t, "cli", sm.Name)
	require.Len(t, sm.Sections, 6)
	assert.Equal(t, "axon[1]", sm.Sections[5].Name)
	assert.Equal(t, 0.378086, sm.Sections[0].Params["gbar_NaTs"])
}

func TestBuildText(t *testing.T) {
	out, err := run(t, "build", "--morph", cellFile, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, neuron473871429.DefaultName)
	assert.Contains(t, out, "axon[0]")
	assert.Contains(t, out, "soma[0](0.5)")
}

func TestBuildEnv(t *testing.T) {
	t.Setenv("NEURON473871429_MORPH", cellFile)
	t.Setenv("NEURON473871429_NAME", "fromenv")
	out, err := run(t, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "name: fromenv")
}

func TestBuildInvalid(t *testing.T) {
	_, err := run(t, "build")
	assert.ErrorContains(t, err, "Morph")

	_, err = run(t, "build", "--morph", cellFile, "--format", "json")
	assert.ErrorContains(t, err, "Format")

	_, err = run(t, "build", "--morph", filepath.Join(t.TempDir(), "none.yaml"))
	var le *neuron473871429.LoadError
	assert.ErrorAs(t, err, &le)

	_, err = run(t, "build", "--morph", cellFile, "--sheet", "nope")
	var ce *neuron473871429.ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestSheets(t *testing.T) {
	out, err := run(t, "sheets")
	require.NoError(t, err)
	assert.Equal(t, "Base\nPassive\n", out)
}
