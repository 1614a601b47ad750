// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme defines the visual attributes of a chart and
// serializes them as scoped CSS custom properties.
//
// A Theme is resolved from a base (a named preset or a complete
// custom Theme) plus a partial Theme of overrides. Resolution is a
// pure field-by-field merge and may be recomputed freely.
package theme

import (
	"strconv"
	"strings"
)

// Theme is a flat record of chart visual attributes. Values are CSS
// strings, exactly as they are emitted into style declarations.
//
// In a Theme used as overrides, the empty string (or an empty
// Palette) means the field is absent.
type Theme struct {
	FontFamily string `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`

	TickFontSize   string `yaml:"tickFontSize,omitempty" json:"tickFontSize,omitempty"`
	TickFontWeight string `yaml:"tickFontWeight,omitempty" json:"tickFontWeight,omitempty"`
	TickColor      string `yaml:"tickColor,omitempty" json:"tickColor,omitempty"`

	AxisLineColor string `yaml:"axisLineColor,omitempty" json:"axisLineColor,omitempty"`
	AxisLineWidth string `yaml:"axisLineWidth,omitempty" json:"axisLineWidth,omitempty"`

	GridLineColor     string `yaml:"gridLineColor,omitempty" json:"gridLineColor,omitempty"`
	GridLineWidth     string `yaml:"gridLineWidth,omitempty" json:"gridLineWidth,omitempty"`
	GridLineDasharray string `yaml:"gridLineDasharray,omitempty" json:"gridLineDasharray,omitempty"`

	LegendFontSize   string `yaml:"legendFontSize,omitempty" json:"legendFontSize,omitempty"`
	LegendFontWeight string `yaml:"legendFontWeight,omitempty" json:"legendFontWeight,omitempty"`
	LegendColor      string `yaml:"legendColor,omitempty" json:"legendColor,omitempty"`

	ChartBackground string `yaml:"chartBackground,omitempty" json:"chartBackground,omitempty"`

	// Palette is the ordered color sequence for data series. It
	// normally has at most 10 entries.
	Palette []string `yaml:"palette,omitempty" json:"palette,omitempty"`

	BarBorderRadius string `yaml:"barBorderRadius,omitempty" json:"barBorderRadius,omitempty"`

	LineStrokeWidth string `yaml:"lineStrokeWidth,omitempty" json:"lineStrokeWidth,omitempty"`
	PointRadius     string `yaml:"pointRadius,omitempty" json:"pointRadius,omitempty"`

	PieStrokeColor     string `yaml:"pieStrokeColor,omitempty" json:"pieStrokeColor,omitempty"`
	PieStrokeWidth     string `yaml:"pieStrokeWidth,omitempty" json:"pieStrokeWidth,omitempty"`
	PieLabelColor      string `yaml:"pieLabelColor,omitempty" json:"pieLabelColor,omitempty"`
	PieLabelFontSize   string `yaml:"pieLabelFontSize,omitempty" json:"pieLabelFontSize,omitempty"`
	PieLabelFontWeight string `yaml:"pieLabelFontWeight,omitempty" json:"pieLabelFontWeight,omitempty"`
}

// A Field describes one scalar attribute of a Theme.
type Field struct {
	// Name is the attribute name used in override maps and
	// configuration files, such as "tickColor".
	Name string

	// Var is the CSS custom property the attribute is emitted as.
	Var string

	get func(*Theme) *string
}

// Ptr returns a pointer to this field within t.
func (f Field) Ptr(t *Theme) *string {
	return f.get(t)
}

var fields = []Field{
	{"fontFamily", "--d3c-font-family", func(t *Theme) *string { return &t.FontFamily }},
	{"tickFontSize", "--d3c-tick-font-size", func(t *Theme) *string { return &t.TickFontSize }},
	{"tickFontWeight", "--d3c-tick-font-weight", func(t *Theme) *string { return &t.TickFontWeight }},
	{"tickColor", "--d3c-tick-color", func(t *Theme) *string { return &t.TickColor }},
	{"axisLineColor", "--d3c-axis-line-color", func(t *Theme) *string { return &t.AxisLineColor }},
	{"axisLineWidth", "--d3c-axis-line-width", func(t *Theme) *string { return &t.AxisLineWidth }},
	{"gridLineColor", "--d3c-grid-line-color", func(t *Theme) *string { return &t.GridLineColor }},
	{"gridLineWidth", "--d3c-grid-line-width", func(t *Theme) *string { return &t.GridLineWidth }},
	{"gridLineDasharray", "--d3c-grid-line-dasharray", func(t *Theme) *string { return &t.GridLineDasharray }},
	{"legendFontSize", "--d3c-legend-font-size", func(t *Theme) *string { return &t.LegendFontSize }},
	{"legendFontWeight", "--d3c-legend-font-weight", func(t *Theme) *string { return &t.LegendFontWeight }},
	{"legendColor", "--d3c-legend-color", func(t *Theme) *string { return &t.LegendColor }},
	{"chartBackground", "--d3c-chart-bg", func(t *Theme) *string { return &t.ChartBackground }},
	{"barBorderRadius", "--d3c-bar-border-radius", func(t *Theme) *string { return &t.BarBorderRadius }},
	{"lineStrokeWidth", "--d3c-line-stroke-width", func(t *Theme) *string { return &t.LineStrokeWidth }},
	{"pointRadius", "--d3c-point-radius", func(t *Theme) *string { return &t.PointRadius }},
	{"pieStrokeColor", "--d3c-pie-stroke-color", func(t *Theme) *string { return &t.PieStrokeColor }},
	{"pieStrokeWidth", "--d3c-pie-stroke-width", func(t *Theme) *string { return &t.PieStrokeWidth }},
	{"pieLabelColor", "--d3c-pie-label-color", func(t *Theme) *string { return &t.PieLabelColor }},
	{"pieLabelFontSize", "--d3c-pie-label-font-size", func(t *Theme) *string { return &t.PieLabelFontSize }},
	{"pieLabelFontWeight", "--d3c-pie-label-font-weight", func(t *Theme) *string { return &t.PieLabelFontWeight }},
}

// PaletteVarPrefix prefixes the CSS custom property of each palette
// entry. Entry i is emitted as PaletteVarPrefix + i.
const PaletteVarPrefix = "--d3c-palette-"

// Fields returns the scalar fields of Theme in serialization order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// LookupField returns the field with the given attribute name.
func LookupField(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy of t.
func (t Theme) Clone() Theme {
	if t.Palette != nil {
		t.Palette = append([]string(nil), t.Palette...)
	}
	return t
}

// IsZero reports whether no field of t is set.
func (t *Theme) IsZero() bool {
	if len(t.Palette) > 0 {
		return false
	}
	for _, f := range fields {
		if *f.get(t) != "" {
			return false
		}
	}
	return true
}

// Complete reports whether every field of t is set.
func (t *Theme) Complete() bool {
	if len(t.Palette) == 0 {
		return false
	}
	for _, f := range fields {
		if *f.get(t) == "" {
			return false
		}
	}
	return true
}

// Diff returns the names of the fields that differ between a and b.
// A differing palette is reported as "palette".
func Diff(a, b Theme) []string {
	var names []string
	for _, f := range fields {
		if *f.get(&a) != *f.get(&b) {
			names = append(names, f.Name)
		}
	}
	if !equalStrings(a.Palette, b.Palette) {
		names = append(names, "palette")
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Length parses a CSS length such as "12px" or a bare number such as
// "2". It reports false if s is not a plain pixel length.
func Length(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lengthOr(s string, def float64) float64 {
	if v, ok := Length(s); ok {
		return v
	}
	return def
}

// BarRadius returns the bar corner radius in pixels.
func (t *Theme) BarRadius() float64 { return lengthOr(t.BarBorderRadius, 2) }

// LineWidth returns the line stroke width in pixels.
func (t *Theme) LineWidth() float64 { return lengthOr(t.LineStrokeWidth, 2) }

// PointSize returns the data point radius in pixels.
func (t *Theme) PointSize() float64 { return lengthOr(t.PointRadius, 3) }

// PieStroke returns the width of the stroke between pie slices.
func (t *Theme) PieStroke() float64 { return lengthOr(t.PieStrokeWidth, 1) }

// LegendSize returns the legend font size in pixels.
func (t *Theme) LegendSize() float64 { return lengthOr(t.LegendFontSize, 11) }
