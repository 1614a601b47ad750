// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Light returns the light preset. Each call returns a fresh copy.
func Light() Theme {
	return Theme{
		FontFamily: "'Inter', 'Helvetica Neue', system-ui, sans-serif",

		TickFontSize:   "12px",
		TickFontWeight: "400",
		TickColor:      "#4b5563",

		AxisLineColor: "#9ca3af",
		AxisLineWidth: "1",

		GridLineColor:     "#e5e7eb",
		GridLineWidth:     "1",
		GridLineDasharray: "2,2",

		LegendFontSize:   "11px",
		LegendFontWeight: "500",
		LegendColor:      "#374151",

		ChartBackground: "transparent",

		Palette: []string{
			"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
			"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
		},

		BarBorderRadius: "2",

		LineStrokeWidth: "2",
		PointRadius:     "3",

		PieStrokeColor:     "#ffffff",
		PieStrokeWidth:     "1",
		PieLabelColor:      "#ffffff",
		PieLabelFontSize:   "12px",
		PieLabelFontWeight: "600",
	}
}

// darkDiff is the set of fields the dark preset changes relative to
// the light preset. The palette is shared with light.
var darkDiff = Theme{
	TickColor:       "#d1d5db",
	AxisLineColor:   "#6b7280",
	GridLineColor:   "#374151",
	LegendColor:     "#e5e7eb",
	ChartBackground: "transparent",
	PieStrokeColor:  "#1f2937",
	PieLabelColor:   "#f9fafb",
}

// Dark returns the dark preset: the light preset with darkDiff
// applied. Each call returns a fresh copy.
func Dark() Theme {
	return Merge(Light(), darkDiff)
}

// Merge returns base with every set field of overrides replacing the
// corresponding field of base. A non-empty overrides.Palette replaces
// the base palette as a whole.
func Merge(base, overrides Theme) Theme {
	out := base.Clone()
	for _, f := range fields {
		if v := *f.get(&overrides); v != "" {
			*f.get(&out) = v
		}
	}
	if len(overrides.Palette) > 0 {
		out.Palette = append([]string(nil), overrides.Palette...)
	}
	return out
}

// A Source supplies the base theme for resolution. It is either a
// Preset or a complete custom Theme.
type Source interface {
	base() Theme
}

// Preset names a built-in theme.
type Preset string

const (
	PresetLight Preset = "light"
	PresetDark  Preset = "dark"
)

// Presets lists the built-in preset names.
var Presets = []Preset{PresetLight, PresetDark}

// base returns the named preset. Unrecognized names, including "",
// select the light preset.
func (p Preset) base() Theme {
	if p == PresetDark {
		return Dark()
	}
	return Light()
}

// base returns t verbatim, so a custom Theme replaces the presets
// entirely.
func (t Theme) base() Theme {
	return t.Clone()
}

// Resolve returns the theme selected by src with overrides merged on
// top. A nil src selects the light preset.
func Resolve(src Source, overrides Theme) Theme {
	if src == nil {
		src = PresetLight
	}
	return Merge(src.base(), overrides)
}

// OverridesFromMap builds an overrides Theme from attribute names to
// values, such as {"tickColor": "#ff0000"}. The "palette" attribute
// takes a comma-separated color list. Unknown attribute names are an
// error.
func OverridesFromMap(m map[string]string) (Theme, error) {
	var t Theme
	// Sort for a deterministic error.
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := m[name]
		if name == "palette" {
			for _, c := range strings.Split(v, ",") {
				if c = strings.TrimSpace(c); c != "" {
					t.Palette = append(t.Palette, c)
				}
			}
			continue
		}
		f, ok := LookupField(name)
		if !ok {
			return Theme{}, fmt.Errorf("unknown theme attribute %q", name)
		}
		*f.get(&t) = v
	}
	return t, nil
}

// Decode reads a Theme from YAML. Attributes use the same names as
// OverridesFromMap. Missing attributes are left empty, so the result
// can be used either as overrides or, if Complete, as a custom base.
func Decode(r io.Reader) (Theme, error) {
	var t Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return Theme{}, fmt.Errorf("decoding theme: %w", err)
	}
	return t, nil
}

// Encode writes t as YAML, omitting empty attributes.
func Encode(w io.Writer, t Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}
