// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Linear is a continuous scale mapping the domain [Min, Max] onto the
// range [r0, r1] by affine interpolation. r0 may be larger than r1,
// which is how SVG y axes are built: larger values map to smaller
// pixel offsets.
type Linear struct {
	min, max float64
	r0, r1   float64
}

// NewLinear returns a linear scale over the domain [min, max] mapping
// to [r0, r1].
//
// If min > max, the bounds are swapped. Non-finite bounds are
// treated as 0. If nice is true, the domain is extended outward to
// multiples of the step that DefaultTickCount ticks would use, so the
// domain is always fully covered by round tick values.
func NewLinear(min, max, r0, r1 float64, nice bool) *Linear {
	min, max = finite(min), finite(max)
	if min > max {
		min, max = max, min
	}
	if nice {
		min, max = Nice(min, max, DefaultTickCount)
	}
	return &Linear{min: min, max: max, r0: r0, r1: r1}
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Domain returns the (possibly niced) input interval of s.
func (s *Linear) Domain() (min, max float64) {
	return s.min, s.max
}

// Range returns the output interval of s.
func (s *Linear) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

// Map returns the pixel position of v. Values outside the domain are
// extrapolated. If the domain is degenerate (min == max), every value
// maps to r0.
func (s *Linear) Map(v float64) float64 {
	if s.min == s.max {
		return s.r0
	}
	u := scale.Linear{Min: s.min, Max: s.max}.Map(v)
	return s.r0 + u*(s.r1-s.r0)
}

// Invert returns the domain value at pixel position px. If the range
// is degenerate, it returns the domain minimum.
func (s *Linear) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.min
	}
	return s.min + (px-s.r0)/(s.r1-s.r0)*(s.max-s.min)
}

// Ticks returns at most count ticks at round values within the
// domain, in ascending order. If count <= 0, DefaultTickCount is
// used. A degenerate domain has a single tick.
func (s *Linear) Ticks(count int) []Tick {
	vals := TickValues(s.min, s.max, count)
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Label: FormatTick(v), Value: v, Offset: s.Map(v)}
	}
	return ticks
}
