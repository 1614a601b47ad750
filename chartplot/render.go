// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	svgmin "github.com/tdewolff/minify/v2/svg"

	"github.com/d3c-charts/chartgeom/layout"
	"github.com/d3c-charts/chartgeom/theme"
)

// A document is one rendered chart. Exactly one of bar, line, and pie
// is set.
type document struct {
	width, height float64
	title         string
	scope         theme.Scope
	style         string

	bar  *layout.BarChart
	line *layout.LineChart
	pie  *layout.PieChart
}

// attr formats an XML attribute for svgo.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func px(x float64) int {
	return int(math.Round(x))
}

func num(x float64) string {
	return strconv.FormatFloat(math.Round(x*1000)/1000, 'f', -1, 64)
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func (d *document) write(w io.Writer) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(px(d.width), px(d.height), `role="img"`)
	if d.title != "" {
		s.Title(d.title)
	}
	s.Style("text/css", d.style)
	s.Group(d.scope.Attr() + `=""`)
	s.Rect(0, 0, px(d.width), px(d.height), `style="fill: var(--d3c-chart-bg, transparent)"`)
	switch {
	case d.bar != nil:
		drawBars(s, d.bar)
	case d.line != nil:
		drawLines(s, d.line)
	case d.pie != nil:
		drawPie(s, d.pie)
	}
	s.Gend()
	s.End()
	return ew.err
}

// errWriter records the first write error so drawing code need not
// check each element.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	_, e.err = e.w.Write(p)
	return len(p), nil
}

func plotArea(s *svg.SVG, m layout.Margin) {
	s.Gtransform(translate(m.Left, m.Top))
}

func drawAxis(s *svg.SVG, a layout.Axis) {
	if a.Grid {
		for _, t := range a.Ticks {
			segment(s, t.Grid, layout.ClassGridLine)
		}
	}
	segment(s, a.Line, layout.ClassAxisLine)
	for _, t := range a.Ticks {
		segment(s, t.Mark, layout.ClassTickLine)
		s.Text(px(t.TextX), px(t.TextY), t.Label,
			attr("class", layout.ClassTickText),
			attr("dy", t.DY),
			attr("text-anchor", t.Anchor))
	}
}

func segment(s *svg.SVG, l layout.Segment, class string) {
	s.Line(px(l.X1), px(l.Y1), px(l.X2), px(l.Y2), attr("class", class))
}

func drawLegend(s *svg.SVG, l *layout.Legend) {
	if l == nil {
		return
	}
	s.Gtransform(translate(l.X, l.Y))
	for _, it := range l.Items {
		s.Gtransform(translate(it.X, 0))
		s.Roundrect(0, 0, layout.LegendSwatch, layout.LegendSwatch, layout.LegendRadius, layout.LegendRadius, attr("fill", it.Color))
		s.Text(layout.LegendTextX, layout.LegendTextY, it.Key, attr("class", layout.ClassLegendText))
		s.Gend()
	}
	s.Gend()
}

func drawBars(s *svg.SVG, c *layout.BarChart) {
	plotArea(s, c.Margin)
	drawAxis(s, c.YAxis)
	drawAxis(s, c.XAxis)
	for _, b := range c.Bars {
		s.Group()
		s.Title(b.Title)
		s.Path(b.Path(), attr("fill", b.Fill))
		s.Gend()
	}
	drawLegend(s, c.Legend)
	s.Gend()
}

func drawLines(s *svg.SVG, c *layout.LineChart) {
	plotArea(s, c.Margin)
	drawAxis(s, c.YAxis)
	drawAxis(s, c.XAxis)
	for _, l := range c.Lines {
		s.Path(l.D,
			`fill="none"`,
			attr("stroke", l.Color),
			attr("stroke-width", num(l.StrokeWidth)))
		for _, p := range l.Points {
			s.Group()
			s.Title(p.Title)
			s.Circle(px(p.PX), px(p.PY), px(l.PointRadius), attr("fill", l.Color))
			s.Gend()
		}
	}
	s.Gend()
}

func drawPie(s *svg.SVG, c *layout.PieChart) {
	th := c.Theme
	s.Gtransform(translate(c.CX, c.CY))
	for _, sl := range c.Slices {
		s.Group()
		if sl.D != "" {
			s.Title(sl.Title)
			s.Path(sl.D,
				attr("fill", sl.Fill),
				attr("stroke", c.Stroke),
				attr("stroke-width", num(c.StrokeWidth)))
		}
		if sl.ShowLabel {
			s.Text(px(sl.LabelX), px(sl.LabelY), sl.Label,
				`text-anchor="middle"`,
				`dominant-baseline="central"`,
				`pointer-events="none"`,
				attr("fill", th.PieLabelColor),
				attr("font-size", th.PieLabelFontSize),
				attr("font-weight", th.PieLabelFontWeight))
		}
		s.Gend()
	}
	s.Gend()
}

// minifySVG copies the SVG document r to w with insignificant
// whitespace and redundant markup removed, including in the embedded
// stylesheet.
func minifySVG(w io.Writer, r io.Reader) error {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("image/svg+xml", svgmin.Minify)
	if err := m.Minify("image/svg+xml", w, r); err != nil {
		return fmt.Errorf("minifying SVG: %w", err)
	}
	return nil
}
