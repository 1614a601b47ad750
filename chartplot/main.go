// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartplot renders bar, line, and pie charts as SVG.
//
// chartplot reads a dataset from a CSV, JSON, or XLSX file, lays it out
// with the chart geometry engine, and writes a self-contained SVG
// document. The document carries a scoped theme stylesheet, so several
// charts with different themes can be embedded in one page.
//
//	chartplot bar -o sales.svg --category month --mode stacked sales.csv
//	chartplot line --smooth=false --theme dark temps.json
//	chartplot pie --label answer --value count --inner-radius 60 poll.xlsx
//	chartplot theme --theme dark --set tickColor=#ff0000 --css
//	chartplot batch jobs.yaml
//
// Every global flag may also be set in the environment as
// CHARTPLOT_<FLAG>, with dashes replaced by underscores, for example
// CHARTPLOT_THEME=dark.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chartplot:", err)
		os.Exit(1)
	}
}

// newRootCmd returns the chartplot command tree. Global settings are
// read through v, which layers flags over CHARTPLOT_ environment
// variables over defaults.
func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "chartplot",
		Short:         "Render bar, line, and pie charts as SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}

	f := root.PersistentFlags()
	f.BoolP("verbose", "v", false, "log debugging information")
	f.StringP("output", "o", "", "write output to `file` (default: stdout)")
	f.Float64("width", 640, "chart width in pixels")
	f.Float64("height", 400, "chart height in pixels")
	f.String("theme", string(defaultTheme), "theme preset: light or dark")
	f.String("theme-file", "", "read theme attributes from YAML `file`")
	f.StringToString("set", nil, "override theme attribute `name=value`")
	f.String("palette", "", "data palette: viridis[:n], gradient:#from:#to[:n], or a comma-separated color list")
	f.Bool("minify", false, "minify the SVG output")
	f.String("sheet", "", "XLSX sheet to read (default: first sheet)")

	v.SetEnvPrefix("CHARTPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}

	root.AddCommand(
		newBarCmd(v),
		newLineCmd(v),
		newPieCmd(v),
		newThemeCmd(v),
		newDataCmd(v),
		newBatchCmd(v),
	)
	return root
}

// globalJob returns a job holding the global settings.
func globalJob(v *viper.Viper) job {
	return job{
		Output:    v.GetString("output"),
		Width:     v.GetFloat64("width"),
		Height:    v.GetFloat64("height"),
		Theme:     v.GetString("theme"),
		ThemeFile: v.GetString("theme-file"),
		Set:       v.GetStringMapString("set"),
		Palette:   v.GetString("palette"),
		Minify:    v.GetBool("minify"),
		Sheet:     v.GetString("sheet"),
	}
}

func newBarCmd(v *viper.Viper) *cobra.Command {
	var (
		category string
		keys     []string
		mode     string
		colors   map[string]string
	)
	cmd := &cobra.Command{
		Use:   "bar [flags] input",
		Short: "Render a grouped or stacked bar chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := globalJob(v)
			j.Kind, j.Input = kindBar, args[0]
			j.Category, j.Keys, j.Mode, j.Colors = category, keys, mode, colors
			return j.run()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category `column` (default: first non-numeric column)")
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "series `columns` (default: all numeric columns)")
	cmd.Flags().StringVar(&mode, "mode", "grouped", "bar mode: grouped or stacked")
	cmd.Flags().StringToStringVar(&colors, "colors", nil, "explicit series color `key=color`")
	return cmd
}

func newLineCmd(v *viper.Viper) *cobra.Command {
	var (
		x      string
		keys   []string
		smooth bool
		series bool
	)
	cmd := &cobra.Command{
		Use:   "line [flags] input",
		Short: "Render a line chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := globalJob(v)
			j.Kind, j.Input = kindLine, args[0]
			j.X, j.Keys, j.Smooth, j.Series = x, keys, &smooth, series
			return j.run()
		},
	}
	cmd.Flags().StringVar(&x, "x", "", "x `column` (default: first column)")
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "series `columns` (default: all other numeric columns)")
	cmd.Flags().BoolVar(&smooth, "smooth", true, "draw monotone curves; --smooth=false draws straight segments")
	cmd.Flags().BoolVar(&series, "series", false, "input is a JSON array of {id, points, color} series")
	return cmd
}

func newPieCmd(v *viper.Viper) *cobra.Command {
	var (
		label, value string
		inner        float64
		pad, corner  float64
		noLabels     bool
		colors       map[string]string
	)
	cmd := &cobra.Command{
		Use:   "pie [flags] input",
		Short: "Render a pie or donut chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := globalJob(v)
			j.Kind, j.Input = kindPie, args[0]
			j.Label, j.Value, j.Colors = label, value, colors
			j.InnerRadius, j.NoLabels = inner, noLabels
			j.PadAngle, j.CornerRadius = &pad, &corner
			return j.run()
		},
	}
	def := pieDefaults()
	cmd.Flags().StringVar(&label, "label", "", "label `column` (default: first non-numeric column)")
	cmd.Flags().StringVar(&value, "value", "", "value `column` (default: first numeric column)")
	cmd.Flags().Float64Var(&inner, "inner-radius", 0, "donut hole `radius` in pixels")
	cmd.Flags().Float64Var(&pad, "pad-angle", def.PadAngle, "gap between slices in `radians`")
	cmd.Flags().Float64Var(&corner, "corner-radius", def.CornerRadius, "slice corner `radius` in pixels")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit slice labels")
	cmd.Flags().StringToStringVar(&colors, "colors", nil, "explicit slice color `label=color`")
	return cmd
}
