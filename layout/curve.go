// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "math"

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// curvePath returns the path through the points (xs[i], ys[i]).
// Points with a non-finite coordinate break the path into separate
// runs. If smooth is true, each run is a monotone cubic curve in x;
// otherwise it is straight segments. A run of one point is a closed
// zero-length path.
func curvePath(xs, ys []float64, smooth bool) string {
	var p path
	start := 0
	flush := func(end int) {
		if end > start {
			if smooth {
				p.monotone(xs[start:end], ys[start:end])
			} else {
				p.polyline(xs[start:end], ys[start:end])
			}
		}
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			flush(i)
			start = i + 1
		}
	}
	flush(len(xs))
	return p.String()
}

func (p *path) polyline(xs, ys []float64) {
	p.moveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		p.lineTo(xs[i], ys[i])
	}
	if len(xs) == 1 {
		p.close()
	}
}

// monotone draws a cubic curve through the points that preserves
// monotonicity in y between adjacent points, so the curve never
// overshoots a data value. Tangents follow Steffen's method.
// Consecutive coincident points are dropped.
func (p *path) monotone(xs, ys []float64) {
	x := []float64{xs[0]}
	y := []float64{ys[0]}
	for i := 1; i < len(xs); i++ {
		if xs[i] == x[len(x)-1] && ys[i] == y[len(y)-1] {
			continue
		}
		x, y = append(x, xs[i]), append(y, ys[i])
	}

	n := len(x)
	p.moveTo(x[0], y[0])
	switch n {
	case 1:
		p.close()
		return
	case 2:
		p.lineTo(x[1], y[1])
		return
	}

	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		t[i] = steffen(x[i-1], y[i-1], x[i], y[i], x[i+1], y[i+1])
	}
	t[0] = endTangent(x[0], y[0], x[1], y[1], t[1])
	t[n-1] = endTangent(x[n-2], y[n-2], x[n-1], y[n-1], t[n-2])

	for i := 0; i < n-1; i++ {
		dx := (x[i+1] - x[i]) / 3
		p.curveTo(x[i]+dx, y[i]+dx*t[i], x[i+1]-dx, y[i+1]-dx*t[i+1], x[i+1], y[i+1])
	}
}

// steffen returns the tangent at (x1, y1) given its neighbors.
func steffen(x0, y0, x1, y1, x2, y2 float64) float64 {
	h0, h1 := x1-x0, x2-x1
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0, s1 := (y1-y0)/h0, (y2-y1)/h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if !isFinite(t) {
		return 0
	}
	return t
}

// endTangent returns the tangent at an end of the segment from
// (x0, y0) to (x1, y1) whose other end has tangent t.
func endTangent(x0, y0, x1, y1, t float64) float64 {
	h := x1 - x0
	if h == 0 {
		return t
	}
	return (3*(y1-y0)/h - t) / 2
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
