// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset holds the tabular input of a chart and reads it
// from CSV, JSON, XLSX, and go-gg tables.
package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// A Row maps a field name to either a category label (a string) or a
// series value (a number).
type Row map[string]interface{}

// Number returns the numeric value of field key. Numbers and numeric
// strings are converted; missing fields, non-numeric values, NaN, and
// infinities are 0.
func (r Row) Number(key string) float64 {
	var v float64
	switch x := r[key].(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int8:
		v = float64(x)
	case int16:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint8:
		v = float64(x)
	case uint16:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	case json.Number:
		v, _ = x.Float64()
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		var err error
		if v, err = strconv.ParseFloat(s, 64); err != nil {
			return 0
		}
	default:
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Label returns field key formatted as a category label. Missing
// fields are "".
func (r Row) Label(key string) string {
	switch x := r[key].(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return toString(x)
	}
}

// Point is one (x, y) data point of a line series.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Series is one line of a line chart.
type Series struct {
	// ID identifies the series in the legend and in color maps.
	ID string `json:"id" yaml:"id"`

	// Points are the data points in drawing order.
	Points []Point `json:"points" yaml:"points"`

	// Color, if non-empty, overrides the palette color.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Item is one labeled value of a pie chart.
type Item struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Dataset is an ordered sequence of rows plus the column order they
// were read in.
type Dataset struct {
	// Columns lists the field names in source order.
	Columns []string

	Rows []Row
}

// Categories returns the labels of field key across d's rows, in row
// order.
func (d *Dataset) Categories(key string) []string {
	out := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.Label(key)
	}
	return out
}

// NumericColumns returns the columns, other than those in exclude,
// whose values are all numbers or missing. A column with no values
// at all is not numeric.
func (d *Dataset) NumericColumns(exclude ...string) []string {
	skip := make(map[string]bool)
	for _, e := range exclude {
		skip[e] = true
	}
	var out []string
	for _, c := range d.Columns {
		if skip[c] {
			continue
		}
		numeric, seen := true, false
		for _, r := range d.Rows {
			switch r[c].(type) {
			case nil:
			case string:
				numeric = false
			default:
				seen = true
			}
		}
		if numeric && seen {
			out = append(out, c)
		}
	}
	return out
}

// Items returns one pie item per row, labeled by labelKey and valued
// by valueKey.
func (d *Dataset) Items(labelKey, valueKey string) []Item {
	items := make([]Item, len(d.Rows))
	for i, r := range d.Rows {
		items[i] = Item{Label: r.Label(labelKey), Value: r.Number(valueKey)}
	}
	return items
}

// Series returns one line series per key, using field xKey of each
// row as the x coordinate. Points are in row order.
func (d *Dataset) Series(xKey string, keys []string) []Series {
	out := make([]Series, len(keys))
	for i, k := range keys {
		s := Series{ID: k, Points: make([]Point, len(d.Rows))}
		for j, r := range d.Rows {
			s.Points[j] = Point{X: r.Number(xKey), Y: r.Number(k)}
		}
		out[i] = s
	}
	return out
}
