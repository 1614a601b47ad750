// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/d3c-charts/chartgeom/colors"
	"github.com/d3c-charts/chartgeom/dataset"
	"github.com/d3c-charts/chartgeom/theme"
)

const (
	// PieInset is the space between the outer radius and the
	// nearer edge of the chart.
	PieInset = 10

	// LabelRadius is the fraction of the outer radius at which
	// slice labels are anchored.
	LabelRadius = 0.65

	// MinLabelAngle is the smallest slice span, in radians, that
	// carries a label.
	MinLabelAngle = 0.3
)

// PieOptions configures a pie chart layout.
type PieOptions struct {
	Width, Height float64

	// InnerRadius is the radius of the hole. A positive value
	// makes a donut chart.
	InnerRadius float64

	// PadAngle is the angular gap, in radians, between adjacent
	// slices. It is taken out of the slices rather than added to
	// the total sweep.
	PadAngle float64

	// CornerRadius rounds the corners of each slice. Corners that
	// do not fit a slice are reduced or dropped.
	CornerRadius float64

	// HideLabels suppresses all slice labels.
	HideLabels bool

	// Palette, if non-empty, replaces the theme palette.
	Palette []string

	// Colors maps slice labels to explicit fill colors.
	Colors map[string]string

	// Theme is the resolved theme. The zero Theme means the light
	// preset.
	Theme theme.Theme
}

// DefaultPieOptions returns the options of a width × height pie with
// a small pad angle, slightly rounded corners, and labels.
func DefaultPieOptions(width, height float64) PieOptions {
	return PieOptions{
		Width:        width,
		Height:       height,
		PadAngle:     0.01,
		CornerRadius: 2,
	}
}

// A Slice is one sector of a pie chart.
type Slice struct {
	Label string
	Value float64
	Index int

	// StartAngle and EndAngle bound the slice, including its share
	// of padding. Angles are in radians, clockwise from 12 o'clock.
	StartAngle, EndAngle float64
	PadAngle             float64

	InnerRadius, OuterRadius float64
	CornerRadius             float64

	Fill  string
	Title string

	// LabelX and LabelY anchor the label relative to the pie
	// center. ShowLabel reports whether the label is drawn.
	LabelX, LabelY float64
	ShowLabel      bool

	// D is the SVG path data of the slice relative to the pie
	// center. It is empty if padding consumes the slice.
	D string
}

// Span returns the angular extent of s.
func (s *Slice) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// PieChart is the geometry of a pie or donut chart.
type PieChart struct {
	Width, Height float64

	// CX and CY are the pie center.
	CX, CY float64

	InnerRadius, OuterRadius float64

	Stroke      string
	StrokeWidth float64

	// Slices are in input order.
	Slices []Slice

	Theme theme.Theme
}

// Pie lays out items as a pie chart. Slices keep the input order and
// their spans are proportional to their values. Negative values get
// no span beyond their padding. If no value is positive, every slice
// is only padding.
func Pie(items []dataset.Item, opts PieOptions) *PieChart {
	th := resolved(opts.Theme)
	c := &PieChart{
		Width:       opts.Width,
		Height:      opts.Height,
		CX:          opts.Width / 2,
		CY:          opts.Height / 2,
		OuterRadius: nonNeg(math.Min(opts.Width, opts.Height)/2 - PieInset),
		InnerRadius: nonNeg(opts.InnerRadius),
		Stroke:      th.PieStrokeColor,
		StrokeWidth: th.PieStroke(),
		Theme:       th,
	}
	palette := th.Palette
	if len(opts.Palette) > 0 {
		palette = opts.Palette
	}

	n := len(items)
	if n == 0 {
		return c
	}
	values := make([]float64, n)
	for i, it := range items {
		if it.Value > 0 && !math.IsInf(it.Value, 0) {
			values[i] = it.Value
		}
	}
	pa := math.Min(2*math.Pi/float64(n), math.Max(opts.PadAngle, 0))
	k := 0.0
	if sum := vec.Sum(values); sum > 0 {
		k = (2*math.Pi - float64(n)*pa) / sum
	}

	a := 0.0
	for i, it := range items {
		s := Slice{
			Label:        it.Label,
			Value:        it.Value,
			Index:        i,
			StartAngle:   a,
			EndAngle:     a + values[i]*k + pa,
			PadAngle:     pa,
			InnerRadius:  c.InnerRadius,
			OuterRadius:  c.OuterRadius,
			CornerRadius: math.Max(opts.CornerRadius, 0),
			Fill:         colors.Resolve(it.Label, i, opts.Colors, palette),
			Title:        it.Label + ": " + formatNumber(it.Value),
		}
		a = s.EndAngle
		g := arc{
			r0:     s.InnerRadius,
			r1:     s.OuterRadius,
			a0:     s.StartAngle,
			a1:     s.EndAngle,
			pad:    pa,
			corner: s.CornerRadius,
		}
		s.D = g.path()
		s.LabelX, s.LabelY = g.centroid(c.OuterRadius * LabelRadius)
		s.ShowLabel = !opts.HideLabels && s.Span() > MinLabelAngle
		c.Slices = append(c.Slices, s)
	}
	return c
}
