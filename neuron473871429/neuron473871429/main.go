// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// neuron473871429 builds Allen cell model 473871429 from a morphology
// structure file and prints the resulting sections and parameters.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/CompCogNeuro/allencell/compart"
	"github.com/CompCogNeuro/allencell/neuron473871429"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables that set flags,
// e.g. NEURON473871429_MORPH.
const EnvPrefix = "NEURON473871429"

// newLogger is replaced in tests.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// RunConfig is the resolved command line configuration.
type RunConfig struct {
	neuron473871429.Config

	// Morph is the morphology structure file.
	Morph string `validate:"required"`

	// Format of the printed summary.
	Format string `default:"yaml" validate:"oneof=yaml text"`

	// Verbose enables debug logging.
	Verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "neuron473871429",
		Short:        "Allen Brain Institute cell model 473871429",
		SilenceUsage: true,
	}
	root.AddCommand(newBuildCmd(), newSheetsCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the cell and print its sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(v)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			cell, err := neuron473871429.Builder{}.
				WithEngine(compart.NewRegistry()).
				WithLogger(log).
				Build(cfg.Morph, &cfg.Config)
			if err != nil {
				log.Error("build failed", zap.Error(err))
				return err
			}
			return writeSummary(cmd.OutOrStdout(), cell.Summary(), cfg.Format)
		},
	}
	fs := cmd.Flags()
	fs.String("morph", "", "morphology structure file (YAML)")
	fs.String("name", "", "display name of the cell")
	fs.Float64("x", 0, "x position offset (um)")
	fs.Float64("y", 0, "y position offset (um)")
	fs.Float64("z", 0, "z position offset (um)")
	fs.String("sheet", "", "extra params sheet applied on top of Base")
	fs.String("format", "yaml", "summary format: yaml or text")
	fs.BoolP("verbose", "v", false, "debug logging")
	cobra.CheckErr(v.BindPFlags(fs))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return cmd
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List the available params sheets",
		Run: func(cmd *cobra.Command, args []string) {
			nms := make([]string, 0, len(neuron473871429.SectionParams))
			for nm := range neuron473871429.SectionParams {
				nms = append(nms, nm)
			}
			sort.Strings(nms)
			for _, nm := range nms {
				fmt.Fprintln(cmd.OutOrStdout(), nm)
			}
		},
	}
}

// resolveConfig reads flags and environment and validates the result.
func resolveConfig(v *viper.Viper) (*RunConfig, error) {
	cfg := &RunConfig{}
	cfg.Config.Defaults()
	cfg.Name = v.GetString("name")
	cfg.X = v.GetFloat64("x")
	cfg.Y = v.GetFloat64("y")
	cfg.Z = v.GetFloat64("z")
	cfg.Sheet = v.GetString("sheet")
	cfg.Morph = v.GetString("morph")
	cfg.Format = strings.ToLower(v.GetString("format"))
	cfg.Verbose = v.GetBool("verbose")
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func writeSummary(w io.Writer, sm *neuron473871429.Summary, format string) error {
	if format == "text" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\n", sm.Name, sm.ID)
		fmt.Fprintln(tw, "section\tregion\tparent\tL\tdiam\tnseg\tcm\tmechanisms")
		for _, s := range sm.Sections {
			parent := "-"
			if s.Parent != "" {
				parent = fmt.Sprintf("%s(%g)", s.Parent, s.ParentX)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.4g\t%.4g\t%d\t%g\t%s\n", s.Name, s.Region, parent, s.L, s.Diam, s.NSeg, s.Cm, strings.Join(s.Mechs, " "))
		}
		return tw.Flush()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sm); err != nil {
		return err
	}
	return enc.Close()
}
