// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"
	"strconv"
)

// path accumulates SVG path data. Coordinates are rounded to three
// decimal places.
type path struct {
	buf []byte
}

func (p *path) num(x float64) {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0
	}
	p.buf = strconv.AppendFloat(p.buf, x, 'f', -1, 64)
}

func (p *path) point(x, y float64) {
	p.num(x)
	p.buf = append(p.buf, ',')
	p.num(y)
}

func (p *path) moveTo(x, y float64) {
	p.buf = append(p.buf, 'M')
	p.point(x, y)
}

func (p *path) lineTo(x, y float64) {
	p.buf = append(p.buf, 'L')
	p.point(x, y)
}

func (p *path) curveTo(x1, y1, x2, y2, x, y float64) {
	p.buf = append(p.buf, 'C')
	p.point(x1, y1)
	p.buf = append(p.buf, ',')
	p.point(x2, y2)
	p.buf = append(p.buf, ',')
	p.point(x, y)
}

// arcTo appends an elliptical arc with equal radii r.
func (p *path) arcTo(r float64, large, sweep bool, x, y float64) {
	p.buf = append(p.buf, 'A')
	p.num(r)
	p.buf = append(p.buf, ',')
	p.num(r)
	p.buf = append(p.buf, ",0,"...)
	p.buf = append(p.buf, flag(large), ',', flag(sweep), ',')
	p.point(x, y)
}

func flag(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

func (p *path) close() {
	p.buf = append(p.buf, 'Z')
}

func (p *path) String() string {
	return string(p.buf)
}

// RectPath returns the path of an x, y, w, h rectangle with corners
// rounded by r. r is reduced to fit within half the width and height.
func RectPath(x, y, w, h, r float64) string {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	var p path
	if r == 0 {
		p.moveTo(x, y)
		p.lineTo(x+w, y)
		p.lineTo(x+w, y+h)
		p.lineTo(x, y+h)
		p.close()
		return p.String()
	}
	p.moveTo(x+r, y)
	p.lineTo(x+w-r, y)
	p.arcTo(r, false, true, x+w, y+r)
	p.lineTo(x+w, y+h-r)
	p.arcTo(r, false, true, x+w-r, y+h)
	p.lineTo(x+r, y+h)
	p.arcTo(r, false, true, x, y+h-r)
	p.lineTo(x, y+r)
	p.arcTo(r, false, true, x+r, y)
	p.close()
	return p.String()
}
