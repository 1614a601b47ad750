// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/d3c-charts/chartgeom/scale"

// CSS classes of axis elements. The theme stylesheet styles these.
const (
	ClassAxisLine = "d3c-axis-line"
	ClassTickLine = "d3c-tick-line"
	ClassGridLine = "d3c-grid-line"
	ClassTickText = "d3c-tick-text"
)

// TickSize is the length of an axis tick mark.
const TickSize = 6

// A Segment is a straight line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// AxisTick is the geometry of one labeled axis tick.
type AxisTick struct {
	scale.Tick

	// Mark is the tick mark.
	Mark Segment

	// Grid is the grid line across the plot area. It is the zero
	// Segment for axes without grid lines.
	Grid Segment

	// TextX and TextY anchor the label. DY is the label's baseline
	// shift and Anchor its text-anchor.
	TextX, TextY float64
	DY           string
	Anchor       string
}

// Axis is the geometry of one axis in plot-area coordinates.
type Axis struct {
	// Line is the axis line.
	Line Segment

	// Grid reports whether the ticks carry grid lines.
	Grid bool

	Ticks []AxisTick
}

// BottomAxis returns a horizontal axis along the bottom of a
// width × height plot area with ticks below the line.
func BottomAxis(ticks []scale.Tick, width, height float64) Axis {
	a := Axis{Line: Segment{0, height, width, height}}
	for _, t := range ticks {
		a.Ticks = append(a.Ticks, AxisTick{
			Tick:   t,
			Mark:   Segment{t.Offset, height, t.Offset, height + TickSize},
			TextX:  t.Offset,
			TextY:  height + TickSize + 3,
			DY:     "0.71em",
			Anchor: "middle",
		})
	}
	return a
}

// LeftAxis returns a vertical axis along the left of a width × height
// plot area with ticks to the left of the line and a grid line across
// the plot area at each tick.
func LeftAxis(ticks []scale.Tick, width, height float64) Axis {
	a := Axis{Line: Segment{0, 0, 0, height}, Grid: true}
	for _, t := range ticks {
		a.Ticks = append(a.Ticks, AxisTick{
			Tick:   t,
			Mark:   Segment{0, t.Offset, -TickSize, t.Offset},
			Grid:   Segment{0, t.Offset, width, t.Offset},
			TextX:  -TickSize - 3,
			TextY:  t.Offset,
			DY:     "0.32em",
			Anchor: "end",
		})
	}
	return a
}
