// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/d3c-charts/chartgeom/colors"
	"github.com/d3c-charts/chartgeom/dataset"
	"github.com/d3c-charts/chartgeom/layout"
	"github.com/d3c-charts/chartgeom/theme"
)

const (
	kindBar  = "bar"
	kindLine = "line"
	kindPie  = "pie"

	defaultTheme = theme.PresetLight
)

// A job describes one chart to render. Jobs come from command-line
// flags or from the jobs list of a batch file.
type job struct {
	Kind   string `yaml:"kind"`
	Input  string `yaml:"input"`
	Sheet  string `yaml:"sheet,omitempty"`
	Output string `yaml:"output,omitempty"`
	Title  string `yaml:"title,omitempty"`

	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	Theme     string            `yaml:"theme,omitempty"`
	ThemeFile string            `yaml:"themeFile,omitempty"`
	Set       map[string]string `yaml:"set,omitempty"`
	Palette   string            `yaml:"palette,omitempty"`
	Colors    map[string]string `yaml:"colors,omitempty"`
	Minify    bool              `yaml:"minify,omitempty"`

	// Bar and line charts.
	Keys []string `yaml:"keys,omitempty"`

	// Bar charts.
	Category string `yaml:"category,omitempty"`
	Mode     string `yaml:"mode,omitempty"`

	// Line charts. A nil Smooth draws monotone curves.
	X      string `yaml:"x,omitempty"`
	Smooth *bool  `yaml:"smooth,omitempty"`
	Series bool   `yaml:"series,omitempty"`

	// Pie charts. A nil PadAngle or CornerRadius selects the
	// default.
	Label        string   `yaml:"label,omitempty"`
	Value        string   `yaml:"value,omitempty"`
	InnerRadius  float64  `yaml:"innerRadius,omitempty"`
	PadAngle     *float64 `yaml:"padAngle,omitempty"`
	CornerRadius *float64 `yaml:"cornerRadius,omitempty"`
	NoLabels     bool     `yaml:"noLabels,omitempty"`
}

func pieDefaults() layout.PieOptions {
	return layout.DefaultPieOptions(0, 0)
}

func (j *job) smooth() bool {
	return j.Smooth == nil || *j.Smooth
}

// withDefaults returns j with its unset chart-wide settings taken from
// d.
func (j job) withDefaults(d job) job {
	if j.Width == 0 {
		j.Width = d.Width
	}
	if j.Height == 0 {
		j.Height = d.Height
	}
	if j.Theme == "" {
		j.Theme = d.Theme
	}
	if j.ThemeFile == "" {
		j.ThemeFile = d.ThemeFile
	}
	if j.Palette == "" {
		j.Palette = d.Palette
	}
	if j.Sheet == "" {
		j.Sheet = d.Sheet
	}
	if j.Smooth == nil {
		j.Smooth = d.Smooth
	}
	j.Minify = j.Minify || d.Minify
	if len(d.Set) > 0 {
		set := make(map[string]string, len(d.Set)+len(j.Set))
		for k, v := range d.Set {
			set[k] = v
		}
		for k, v := range j.Set {
			set[k] = v
		}
		j.Set = set
	}
	return j
}

// provider returns a theme provider for j's theme settings.
//
// A theme file holding every attribute replaces the preset as the
// base. A partial theme file supplies overrides, and --set attributes
// and the palette override those in turn.
func (j *job) provider() (*theme.Provider, error) {
	var src theme.Source = theme.Preset(j.Theme)
	if j.Theme != "" && !isPreset(j.Theme) {
		slog.Warn("unknown theme preset; using light", "theme", j.Theme)
	}

	var overrides theme.Theme
	if j.ThemeFile != "" {
		f, err := os.Open(j.ThemeFile)
		if err != nil {
			return nil, err
		}
		t, err := theme.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", j.ThemeFile, err)
		}
		if t.Complete() {
			src = t
		} else {
			overrides = t
		}
	}

	set, err := theme.OverridesFromMap(j.Set)
	if err != nil {
		return nil, err
	}
	overrides = theme.Merge(overrides, set)

	if j.Palette != "" {
		p, err := parsePalette(j.Palette)
		if err != nil {
			return nil, err
		}
		overrides.Palette = p
	}
	return theme.NewProvider(src, overrides), nil
}

func isPreset(name string) bool {
	for _, p := range theme.Presets {
		if string(p) == name {
			return true
		}
	}
	return false
}

// parsePalette parses a --palette value.
func parsePalette(s string) ([]string, error) {
	name, arg, _ := strings.Cut(s, ":")
	count := func(s string) (int, error) {
		if s == "" {
			return 10, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("bad palette size %q", s)
		}
		return n, nil
	}
	switch name {
	case "viridis":
		n, err := count(arg)
		if err != nil {
			return nil, err
		}
		return colors.Viridis(n), nil
	case "gradient":
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("bad gradient palette %q; want gradient:#from:#to[:n]", s)
		}
		n, err := count(strings.Join(parts[2:], ""))
		if err != nil {
			return nil, err
		}
		return colors.Gradient(parts[0], parts[1], n)
	}
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

// run renders j to its output file, or to stdout if it has none.
func (j *job) run() error {
	if j.Output == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			slog.Warn("writing SVG to a terminal; use -o to write a file")
		}
		return j.render(os.Stdout)
	}
	var buf bytes.Buffer
	if err := j.render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(j.Output, buf.Bytes(), 0666); err != nil {
		return err
	}
	slog.Debug("wrote chart", "kind", j.Kind, "output", j.Output, "bytes", buf.Len())
	return nil
}

// render writes j's chart as an SVG document to w.
func (j *job) render(w io.Writer) error {
	p, err := j.provider()
	if err != nil {
		return err
	}
	th := p.Theme()
	doc := &document{
		width:  j.Width,
		height: j.Height,
		title:  j.Title,
		scope:  p.Scope(),
		style:  p.Stylesheet(),
	}

	switch j.Kind {
	case kindBar:
		d, err := dataset.Load(j.Input, j.Sheet)
		if err != nil {
			return err
		}
		mode, ok := layout.ParseBarMode(j.Mode)
		if !ok {
			return fmt.Errorf("unknown bar mode %q", j.Mode)
		}
		category := j.Category
		if category == "" {
			category = firstLabelColumn(d)
		}
		keys := j.Keys
		if len(keys) == 0 {
			keys = d.NumericColumns(category)
		}
		slog.Debug("bar chart", "input", j.Input, "rows", len(d.Rows), "category", category, "keys", keys, "mode", mode)
		doc.bar = layout.Bars(d.Rows, layout.BarOptions{
			Width:       j.Width,
			Height:      j.Height,
			Margin:      layout.DefaultMargin,
			Mode:        mode,
			CategoryKey: category,
			Keys:        keys,
			Colors:      j.Colors,
			Theme:       th,
		})

	case kindLine:
		series, err := j.loadSeries()
		if err != nil {
			return err
		}
		slog.Debug("line chart", "input", j.Input, "series", len(series), "smooth", j.smooth())
		doc.line = layout.Lines(series, layout.LineOptions{
			Width:  j.Width,
			Height: j.Height,
			Margin: layout.DefaultMargin,
			Smooth: j.smooth(),
			Theme:  th,
		})

	case kindPie:
		d, err := dataset.Load(j.Input, j.Sheet)
		if err != nil {
			return err
		}
		label, value := j.Label, j.Value
		if label == "" {
			label = firstLabelColumn(d)
		}
		if value == "" {
			if nums := d.NumericColumns(label); len(nums) > 0 {
				value = nums[0]
			}
		}
		opts := layout.DefaultPieOptions(j.Width, j.Height)
		opts.InnerRadius = j.InnerRadius
		if j.PadAngle != nil {
			opts.PadAngle = *j.PadAngle
		}
		if j.CornerRadius != nil {
			opts.CornerRadius = *j.CornerRadius
		}
		opts.HideLabels = j.NoLabels
		opts.Colors = j.Colors
		opts.Theme = th
		slog.Debug("pie chart", "input", j.Input, "rows", len(d.Rows), "label", label, "value", value)
		doc.pie = layout.Pie(d.Items(label, value), opts)

	default:
		return fmt.Errorf("unknown chart kind %q", j.Kind)
	}

	if !j.Minify {
		return doc.write(w)
	}
	var buf bytes.Buffer
	if err := doc.write(&buf); err != nil {
		return err
	}
	return minifySVG(w, &buf)
}

// loadSeries reads j's input as line series, either directly from a
// series JSON file or from columns of a dataset.
func (j *job) loadSeries() ([]dataset.Series, error) {
	if j.Series {
		f, err := os.Open(j.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		s, err := dataset.ReadSeriesJSON(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", j.Input, err)
		}
		for i := range s {
			if c, ok := j.Colors[s[i].ID]; ok {
				s[i].Color = c
			}
		}
		return s, nil
	}
	d, err := dataset.Load(j.Input, j.Sheet)
	if err != nil {
		return nil, err
	}
	x := j.X
	if x == "" && len(d.Columns) > 0 {
		x = d.Columns[0]
	}
	keys := j.Keys
	if len(keys) == 0 {
		keys = d.NumericColumns(x)
	}
	s := d.Series(x, keys)
	for i := range s {
		s[i].Color = j.Colors[s[i].ID]
	}
	return s, nil
}

// firstLabelColumn returns the first column of d that is not numeric,
// or the first column if all are.
func firstLabelColumn(d *dataset.Dataset) string {
	numeric := make(map[string]bool)
	for _, c := range d.NumericColumns() {
		numeric[c] = true
	}
	for _, c := range d.Columns {
		if !numeric[c] {
			return c
		}
	}
	if len(d.Columns) > 0 {
		return d.Columns[0]
	}
	return ""
}

// resolvePaths makes j's file names relative to dir.
func (j *job) resolvePaths(dir string) {
	for _, p := range []*string{&j.Input, &j.Output, &j.ThemeFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
