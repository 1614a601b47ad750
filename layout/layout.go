// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes chart geometry.
//
// Each layout function takes a dataset, pixel dimensions, and a
// resolved theme, and returns the scales, axis ticks, and drawable
// primitives of one chart: bar rectangles, line paths and points, or
// pie slices. Layouts are pure functions of their inputs and never
// fail; empty or malformed input yields a valid chart with no
// primitives.
//
// All coordinates are SVG pixels with y increasing downward. Bar and
// line coordinates are relative to the inner plot area (the chart
// translated by its left and top margins). Pie coordinates are
// relative to the pie center.
package layout

import (
	"strconv"

	"github.com/d3c-charts/chartgeom/theme"
)

// Margin is the space reserved around the plot area for axes and
// the legend.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin leaves room for a bottom and a left axis.
var DefaultMargin = Margin{Top: 20, Right: 20, Bottom: 40, Left: 50}

// Dimensions is the outer size of a chart and its plot area.
type Dimensions struct {
	Width, Height float64
	Margin        Margin

	// InnerWidth and InnerHeight are the size of the plot area.
	// They are never negative.
	InnerWidth, InnerHeight float64
}

// NewDimensions returns the dimensions of a width × height chart
// with margin m.
func NewDimensions(width, height float64, m Margin) Dimensions {
	d := Dimensions{Width: width, Height: height, Margin: m}
	d.InnerWidth = nonNeg(width - m.Left - m.Right)
	d.InnerHeight = nonNeg(height - m.Top - m.Bottom)
	return d
}

func nonNeg(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return x
}

// resolved returns t, or the light preset if t is the zero Theme.
func resolved(t theme.Theme) theme.Theme {
	if t.IsZero() {
		return theme.Light()
	}
	return t
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
