// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/d3c-charts/chartgeom/colors"
	"github.com/d3c-charts/chartgeom/dataset"
	"github.com/d3c-charts/chartgeom/scale"
	"github.com/d3c-charts/chartgeom/theme"
)

// LineOptions configures a line chart layout.
type LineOptions struct {
	Width, Height float64
	Margin        Margin

	// Smooth selects monotone cubic interpolation. Otherwise series
	// are drawn as straight segments.
	Smooth bool

	// Theme is the resolved theme. The zero Theme means the light
	// preset.
	Theme theme.Theme
}

// LinePoint is one marker of a line series.
type LinePoint struct {
	dataset.Point

	// PX and PY are the point's plot-area position.
	PX, PY float64

	Title string
}

// LinePath is the geometry of one line series.
type LinePath struct {
	ID    string
	Color string

	// D is the SVG path data of the line.
	D string

	StrokeWidth float64
	PointRadius float64

	Points []LinePoint
}

// LineChart is the geometry of a line chart.
type LineChart struct {
	Dimensions

	X, Y *scale.Linear

	XAxis, YAxis Axis

	// Lines are in series order.
	Lines []LinePath

	Theme theme.Theme
}

// Lines lays out series as a line chart. Both scales span the union
// of all series' points, rounded to nice values.
func Lines(series []dataset.Series, opts LineOptions) *LineChart {
	th := resolved(opts.Theme)
	c := &LineChart{
		Dimensions: NewDimensions(opts.Width, opts.Height, opts.Margin),
		Theme:      th,
	}

	var xs, ys []float64
	for _, s := range series {
		for _, p := range s.Points {
			if isFinite(p.X) && isFinite(p.Y) {
				xs, ys = append(xs, p.X), append(ys, p.Y)
			}
		}
	}
	xMin, xMax := bounds(xs)
	yMin, yMax := bounds(ys)
	c.X = scale.NewLinear(xMin, xMax, 0, c.InnerWidth, true)
	c.Y = scale.NewLinear(yMin, yMax, c.InnerHeight, 0, true)

	for i, s := range series {
		lp := LinePath{
			ID:          s.ID,
			Color:       s.Color,
			StrokeWidth: th.LineWidth(),
			PointRadius: th.PointSize(),
		}
		if lp.Color == "" {
			lp.Color = colors.Resolve(s.ID, i, nil, th.Palette)
		}
		px := make([]float64, len(s.Points))
		py := make([]float64, len(s.Points))
		for j, p := range s.Points {
			if !isFinite(p.X) || !isFinite(p.Y) {
				px[j], py[j] = math.NaN(), math.NaN()
				continue
			}
			px[j], py[j] = c.X.Map(p.X), c.Y.Map(p.Y)
			lp.Points = append(lp.Points, LinePoint{
				Point: p,
				PX:    px[j],
				PY:    py[j],
				Title: "(" + formatNumber(p.X) + ", " + formatNumber(p.Y) + ")",
			})
		}
		lp.D = curvePath(px, py, opts.Smooth)
		c.Lines = append(c.Lines, lp)
	}

	c.XAxis = BottomAxis(c.X.Ticks(scale.DefaultTickCount), c.InnerWidth, c.InnerHeight)
	c.YAxis = LeftAxis(c.Y.Ticks(scale.DefaultTickCount), c.InnerWidth, c.InnerHeight)
	return c
}

// bounds returns the extent of xs, or 0, 0 if xs is empty.
func bounds(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	return stats.Bounds(xs)
}
