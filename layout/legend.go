// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ClassLegendText is the CSS class of legend labels.
const ClassLegendText = "d3c-legend-text"

// Legend geometry.
const (
	LegendItemWidth = 85 // minimum width of one item
	LegendGap       = 5  // space reserved after each item
	LegendSwatch    = 12 // swatch width and height
	LegendRadius    = 2  // swatch corner radius
	LegendTextX     = 16 // label offset from the item origin
	LegendTextY     = 10
)

// LegendItem is one swatch and label of a legend.
type LegendItem struct {
	Key   string
	Color string

	// X is the offset of the item from the legend origin.
	X float64

	// Width is the horizontal space the item occupies.
	Width float64
}

// Legend is a row of series swatches placed above the plot area's
// right edge.
type Legend struct {
	// X and Y are the legend origin in plot-area coordinates.
	X, Y float64

	Items []LegendItem
}

// NewLegend lays out a legend for keys with the parallel colors.
// The row is right-aligned to innerWidth and sits in the top margin.
// Items are LegendItemWidth wide unless their label, measured at
// fontSize pixels, needs more room.
func NewLegend(keys, colors []string, innerWidth float64, m Margin, fontSize float64) *Legend {
	l := &Legend{Y: -m.Top + 4}
	total := 0.0
	for i, k := range keys {
		item := LegendItem{Key: k, X: total, Width: itemWidth(k, fontSize)}
		if i < len(colors) {
			item.Color = colors[i]
		}
		l.Items = append(l.Items, item)
		total += item.Width
	}
	l.X = innerWidth - total - LegendGap*float64(len(keys))
	return l
}

// itemWidth returns the width of a legend item labeled s.
func itemWidth(s string, fontSize float64) float64 {
	face := basicfont.Face7x13
	w := float64(font.MeasureString(face, s).Ceil())
	if fontSize > 0 {
		w = w * fontSize / float64(face.Height)
	}
	if w += LegendTextX + 4; w > LegendItemWidth {
		return w
	}
	return LegendItemWidth
}
