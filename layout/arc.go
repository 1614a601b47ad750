// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "math"

const epsilon = 1e-12

// A pt is a point relative to an arc's center.
type pt struct {
	x, y float64
}

func (p pt) add(q pt) pt { return pt{p.x + q.x, p.y + q.y} }
func (p pt) sub(q pt) pt { return pt{p.x - q.x, p.y - q.y} }
func (p pt) scale(k float64) pt { return pt{p.x * k, p.y * k} }
func (p pt) dot(q pt) float64 { return p.x*q.x + p.y*q.y }
func (p pt) len() float64 { return math.Hypot(p.x, p.y) }
func polar(r, a float64) pt { return pt{r * math.Sin(a), -r * math.Cos(a)} }
func angleOf(p pt) float64 { return math.Atan2(p.x, -p.y) }
func (p *path) moveToPt(q pt) { p.moveTo(q.x, q.y) }
func (p *path) lineToPt(q pt) { p.lineTo(q.x, q.y) }
func (p *path) arcToPt(r float64, large, sweep bool, q pt) {
	p.arcTo(r, large, sweep, q.x, q.y)
}

// An arc is an annular sector. Angles are in radians, clockwise from
// 12 o'clock. Pad is removed from the sector's angular extent, half
// at each end, such that the gap between adjacent padded sectors has
// parallel sides.
type arc struct {
	r0, r1 float64
	a0, a1 float64
	pad    float64
	corner float64
}

// edge is one straight side of a padded sector running from its inner
// end to its outer end.
type edge struct {
	inner, outer pt
	start        bool
}

// cornerFit is a corner circle tangent to an edge and to one of the
// sector's circular sides.
type cornerFit struct {
	t      float64 // distance of the edge tangent point from the inner end
	onEdge pt
	onArc  pt
}

// fit places a corner of radius rc between e and the circle of radius
// r. If outer, the corner lies inside that circle; otherwise it lies
// outside it.
func (e edge) fit(r, rc float64, outer bool) (cornerFit, bool) {
	d := e.outer.sub(e.inner)
	l := d.len()
	if l < epsilon {
		return cornerFit{}, false
	}
	d = d.scale(1 / l)
	n := pt{-d.y, d.x}
	if !e.start {
		n = pt{d.y, -d.x}
	}
	q := e.inner.add(n.scale(rc))
	rr := r + rc
	if outer {
		rr = r - rc
	}
	if rr <= 0 {
		return cornerFit{}, false
	}
	b := q.dot(d)
	disc := b*b - (q.dot(q) - rr*rr)
	if disc < 0 {
		return cornerFit{}, false
	}
	t := -b + math.Sqrt(disc)
	if t < -epsilon || t > l+epsilon {
		return cornerFit{}, false
	}
	center := q.add(d.scale(t))
	return cornerFit{
		t:      t,
		onEdge: e.inner.add(d.scale(t)),
		onArc:  center.scale(r / rr),
	}, true
}

// path returns the SVG path data of the sector, or "" if padding
// leaves nothing to draw.
func (a arc) path() string {
	r0, r1 := math.Max(a.r0, 0), math.Max(a.r1, 0)
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	a0, a1 := a.a0, a.a1
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	da := a1 - a0

	var p path
	if r1 <= epsilon {
		p.moveTo(0, 0)
		p.close()
		return p.String()
	}
	if da >= 2*math.Pi-1e-9 {
		p.moveToPt(polar(r1, a0))
		p.arcToPt(r1, true, true, polar(r1, a0+math.Pi))
		p.arcToPt(r1, true, true, polar(r1, a0))
		if r0 > epsilon {
			p.moveToPt(polar(r0, a0))
			p.arcToPt(r0, true, false, polar(r0, a0-math.Pi))
			p.arcToPt(r0, true, false, polar(r0, a0))
		}
		p.close()
		return p.String()
	}

	a00, a10, da0 := a0, a1, da
	a01, a11, da1 := a0, a1, da
	if ap := a.pad / 2; ap > epsilon {
		rp := math.Sqrt(r0*r0 + r1*r1)
		p1 := math.Asin(rp / r1 * math.Sin(ap))
		if da1 -= 2 * p1; da1 > epsilon {
			a01, a11 = a0+p1, a1-p1
		} else {
			da1 = 0
		}
		p0 := math.NaN()
		if r0 > epsilon {
			p0 = math.Asin(rp / r0 * math.Sin(ap))
		}
		if da0 -= 2 * p0; da0 > epsilon {
			a00, a10 = a0+p0, a1-p0
		} else {
			da0 = 0
		}
	}
	if !(da1 > epsilon) {
		return ""
	}

	// The inner side collapses to a single apex when there is no
	// hole or the pad consumes it.
	apex := r0 <= epsilon || !(da0 > epsilon)
	var inner0, inner1 pt
	if apex {
		if r0 > epsilon {
			inner0 = polar(r0, (a0+a1)/2)
		}
		inner1 = inner0
	} else {
		inner0, inner1 = polar(r0, a00), polar(r0, a10)
	}
	start := edge{inner: inner0, outer: polar(r1, a01), start: true}
	end := edge{inner: inner1, outer: polar(r1, a11)}

	rc := math.Min(a.corner, (r1-r0)/2)
	for i := 0; rc > 1e-6 && i < 10; i++ {
		if s, ok := a.cornerPath(start, end, r0, r1, rc, apex); ok {
			return s
		}
		rc /= 2
	}

	p.moveToPt(start.outer)
	p.arcToPt(r1, da1 > math.Pi, true, end.outer)
	if apex {
		p.lineToPt(inner0)
	} else {
		p.lineToPt(end.inner)
		p.arcToPt(r0, da0 > math.Pi, false, start.inner)
	}
	p.close()
	return p.String()
}

// cornerPath returns the sector outline with corners of radius rc, or
// false if they do not fit.
func (a arc) cornerPath(start, end edge, r0, r1, rc float64, apex bool) (string, bool) {
	mid := (a.a0 + a.a1) / 2
	rel := func(q pt) float64 { return math.Remainder(angleOf(q)-mid, 2*math.Pi) }

	so, ok1 := start.fit(r1, rc, true)
	eo, ok2 := end.fit(r1, rc, true)
	if !ok1 || !ok2 {
		return "", false
	}
	outerSpan := rel(eo.onArc) - rel(so.onArc)
	if outerSpan < 0 {
		return "", false
	}

	var si, ei cornerFit
	innerSpan := 0.0
	if !apex {
		var ok3, ok4 bool
		si, ok3 = start.fit(r0, rc, false)
		ei, ok4 = end.fit(r0, rc, false)
		if !ok3 || !ok4 || si.t > so.t || ei.t > eo.t {
			return "", false
		}
		if innerSpan = rel(ei.onArc) - rel(si.onArc); innerSpan < 0 {
			return "", false
		}
	}

	var p path
	p.moveToPt(so.onEdge)
	p.arcToPt(rc, false, true, so.onArc)
	p.arcToPt(r1, outerSpan > math.Pi, true, eo.onArc)
	p.arcToPt(rc, false, true, eo.onEdge)
	if apex {
		p.lineToPt(start.inner)
	} else {
		p.lineToPt(ei.onEdge)
		p.arcToPt(rc, false, true, ei.onArc)
		p.arcToPt(r0, innerSpan > math.Pi, false, si.onArc)
		p.arcToPt(rc, false, true, si.onEdge)
	}
	p.close()
	return p.String(), true
}

// centroid returns the point at radius r on the bisector of the arc.
func (a arc) centroid(r float64) (x, y float64) {
	c := polar(r, (a.a0+a.a1)/2)
	return c.x, c.y
}
