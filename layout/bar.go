// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/d3c-charts/chartgeom/colors"
	"github.com/d3c-charts/chartgeom/dataset"
	"github.com/d3c-charts/chartgeom/scale"
	"github.com/d3c-charts/chartgeom/theme"
)

// BarMode selects how multiple series share a category.
type BarMode int

const (
	// Grouped places each series' bar side by side within the
	// category's band.
	Grouped BarMode = iota

	// Stacked places each series' bar on top of the previous
	// series' bar.
	Stacked
)

func (m BarMode) String() string {
	if m == Stacked {
		return "stacked"
	}
	return "grouped"
}

// ParseBarMode parses "grouped" or "stacked".
func ParseBarMode(s string) (BarMode, bool) {
	switch s {
	case "grouped", "":
		return Grouped, true
	case "stacked":
		return Stacked, true
	}
	return Grouped, false
}

const (
	// BarPadding is the fraction of each category step left
	// between bars.
	BarPadding = 0.2

	// GroupPadding is the fraction of each series step left
	// between bars of one group.
	GroupPadding = 0.05
)

// BarOptions configures a bar chart layout.
type BarOptions struct {
	Width, Height float64
	Margin        Margin

	Mode BarMode

	// CategoryKey is the row field holding the category label.
	CategoryKey string

	// Keys are the row fields holding the series values, in
	// drawing order.
	Keys []string

	// Colors maps series keys to explicit fill colors. Keys not
	// present use the theme palette.
	Colors map[string]string

	// Theme is the resolved theme. The zero Theme means the light
	// preset.
	Theme theme.Theme
}

// A Bar is one rectangle of a bar chart.
type Bar struct {
	Category string
	Key      string

	// Lo and Hi are the data extent of the bar: 0 to the value in
	// grouped mode, or the cumulative extent in stacked mode.
	Lo, Hi float64

	// X and Width are the horizontal extent of the bar.
	X, Width float64

	// Y0 and Y1 are the pixel positions of Lo and Hi. Y1 < Y0 for
	// positive values.
	Y0, Y1 float64

	// Radius is the corner radius.
	Radius float64

	Fill  string
	Title string
}

// Value returns the series value the bar represents.
func (b *Bar) Value() float64 {
	return b.Hi - b.Lo
}

// Rect returns the bar as a rectangle with non-negative height.
func (b *Bar) Rect() (x, y, w, h float64) {
	return b.X, math.Min(b.Y0, b.Y1), b.Width, math.Abs(b.Y0 - b.Y1)
}

// Path returns the bar outline as SVG path data.
func (b *Bar) Path() string {
	x, y, w, h := b.Rect()
	return RectPath(x, y, w, h, b.Radius)
}

// BarChart is the geometry of a bar chart.
type BarChart struct {
	Dimensions
	Mode BarMode

	X *scale.Band
	Y *scale.Linear

	XAxis, YAxis Axis

	// Bars are ordered by category, then by key.
	Bars []Bar

	// Legend is nil unless there is more than one key.
	Legend *Legend

	Theme theme.Theme
}

// Bars lays out rows as a bar chart. Each row is one category.
// Series values are coerced to numbers, with missing and non-numeric
// values counting as 0.
func Bars(rows []dataset.Row, opts BarOptions) *BarChart {
	th := resolved(opts.Theme)
	c := &BarChart{
		Dimensions: NewDimensions(opts.Width, opts.Height, opts.Margin),
		Mode:       opts.Mode,
		Theme:      th,
	}

	categories := make([]string, len(rows))
	for i, r := range rows {
		categories[i] = r.Label(opts.CategoryKey)
	}
	c.X = scale.NewBand(categories, 0, c.InnerWidth, BarPadding)
	fills := colors.Assign(opts.Keys, opts.Colors, th.Palette)

	var lo, hi [][]float64
	if opts.Mode == Stacked {
		lo, hi = stack(rows, opts.Keys)
	} else {
		lo, hi = group(rows, opts.Keys)
	}
	yMax := 0.0
	for _, his := range hi {
		for _, v := range his {
			yMax = math.Max(yMax, v)
		}
	}
	c.Y = scale.NewLinear(0, yMax, c.InnerHeight, 0, true)

	radius := th.BarRadius()
	sub := scale.NewBand(opts.Keys, 0, c.X.Bandwidth(), GroupPadding)
	width := sub.Bandwidth()
	if opts.Mode == Stacked {
		radius /= 2
		width = c.X.Bandwidth()
	}

	for i, cat := range categories {
		x0, ok := c.X.Map(cat)
		if !ok {
			continue
		}
		for j, key := range opts.Keys {
			x := x0
			if opts.Mode == Grouped {
				off, _ := sub.Map(key)
				x += off
			}
			b := Bar{
				Category: cat,
				Key:      key,
				Lo:       lo[i][j],
				Hi:       hi[i][j],
				X:        x,
				Width:    width,
				Y0:       c.Y.Map(lo[i][j]),
				Y1:       c.Y.Map(hi[i][j]),
				Radius:   radius,
				Fill:     fills[j],
			}
			b.Title = cat + " — " + key + ": " + formatNumber(b.Value())
			c.Bars = append(c.Bars, b)
		}
	}

	c.XAxis = BottomAxis(c.X.Ticks(), c.InnerWidth, c.InnerHeight)
	c.YAxis = LeftAxis(c.Y.Ticks(scale.DefaultTickCount), c.InnerWidth, c.InnerHeight)
	if len(opts.Keys) > 1 {
		c.Legend = NewLegend(opts.Keys, fills, c.InnerWidth, opts.Margin, th.LegendSize())
	}
	return c
}

// group returns the extent of each (row, key) bar in grouped mode.
func group(rows []dataset.Row, keys []string) (lo, hi [][]float64) {
	lo = make([][]float64, len(rows))
	hi = make([][]float64, len(rows))
	for i, r := range rows {
		lo[i] = make([]float64, len(keys))
		hi[i] = make([]float64, len(keys))
		for j, k := range keys {
			hi[i][j] = r.Number(k)
		}
	}
	return
}

// stack returns the extent of each (row, key) bar in stacked mode.
// Segment j of a row spans the sum of the row's first j values to
// the sum of its first j+1 values.
func stack(rows []dataset.Row, keys []string) (lo, hi [][]float64) {
	lo = make([][]float64, len(rows))
	hi = make([][]float64, len(rows))
	for i, r := range rows {
		lo[i] = make([]float64, len(keys))
		hi[i] = make([]float64, len(keys))
		sum := 0.0
		for j, k := range keys {
			lo[i][j] = sum
			sum += r.Number(k)
			hi[i][j] = sum
		}
	}
	return
}
