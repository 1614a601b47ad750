// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// DefaultTickCount is the maximum number of ticks used when the
// caller does not ask for a specific number, and the tick count
// used to nice linear domains.
const DefaultTickCount = 5

// A Tick is one labeled position along an axis.
type Tick struct {
	// Label is the text to draw at the tick.
	Label string

	// Value is the domain value of the tick. For band scales this
	// is the index of the label in the domain.
	Value float64

	// Offset is the pixel position of the tick.
	Offset float64
}

// Tick steps are organized into levels. Level l has step
// {1, 2, 5}[l mod 3] × 10^⌊l/3⌋, so level 0 is 1, level 1 is 2,
// level 3 is 10 and level -1 is 0.5. Higher levels have larger steps.
//
// The level search is bounded so that 10^exp stays finite.
const minLevel, maxLevel = -900, 900

var mantissas = [3]float64{1, 2, 5}

func levelStep(level int) (m float64, exp int) {
	exp = level / 3
	if level%3 < 0 {
		exp--
	}
	return mantissas[level-3*exp], exp
}

// NiceStep returns the step used at the given tick level.
func NiceStep(level int) float64 {
	return multiple(1, level)
}

// multiple returns i steps at level. It divides by a power of ten
// for negative exponents so that values like 0.3 come out exact.
func multiple(i float64, level int) float64 {
	m, exp := levelStep(level)
	if exp >= 0 {
		return i * m * math.Pow10(exp)
	}
	return i * m / math.Pow10(-exp)
}

// inSteps returns x measured in steps of level.
func inSteps(x float64, level int) float64 {
	m, exp := levelStep(level)
	if exp >= 0 {
		return x / (m * math.Pow10(exp))
	}
	return x * math.Pow10(-exp) / m
}

const stepEpsilon = 1e-9

func floorSteps(x float64, level int) float64 {
	return math.Floor(inSteps(x, level) + stepEpsilon)
}

func ceilSteps(x float64, level int) float64 {
	return math.Ceil(inSteps(x, level) - stepEpsilon)
}

// clampCount converts a float tick count to an int that FindLevel
// can compare without overflow.
func clampCount(n float64) int {
	const limit = 1 << 30
	if n > limit || math.IsNaN(n) {
		return limit
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func guessLevel(lo, hi float64, count int) int {
	l := math.Floor(3 * math.Log10((hi-lo)/float64(count)))
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return 0
	}
	return int(l)
}

// countTicker is a scale.Ticker that only counts ticks.
type countTicker func(level int) int

func (c countTicker) CountTicks(level int) int { return c(level) }

func (c countTicker) TicksAtLevel(level int) interface{} { return nil }

// findLevel returns the lowest level whose count is at most max.
func findLevel(lo, hi float64, max int, count func(level int) int) (int, bool) {
	o := scale.TickOptions{Max: max, MinLevel: minLevel, MaxLevel: maxLevel}
	return o.FindLevel(countTicker(count), guessLevel(lo, hi, max))
}

// Nice extends [lo, hi] outward to multiples of the smallest step for
// which the extended interval holds at most count ticks. A degenerate
// or non-finite interval is returned unchanged.
func Nice(lo, hi float64, count int) (float64, float64) {
	if count <= 0 {
		count = DefaultTickCount
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return lo, hi
	}
	level, ok := findLevel(lo, hi, count, func(l int) int {
		return clampCount(ceilSteps(hi, l) - floorSteps(lo, l) + 1)
	})
	if !ok {
		return lo, hi
	}
	return multiple(floorSteps(lo, level), level), multiple(ceilSteps(hi, level), level)
}

// TickValues returns at most count round values within [lo, hi] in
// ascending order. Every value is a multiple of a step of the form
// {1, 2, 5} × 10^k. If count <= 0, DefaultTickCount is used. If
// lo == hi, the single value lo is returned.
func TickValues(lo, hi float64, count int) []float64 {
	if count <= 0 {
		count = DefaultTickCount
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	level, ok := findLevel(lo, hi, count, func(l int) int {
		return clampCount(floorSteps(hi, l) - ceilSteps(lo, l) + 1)
	})
	if !ok {
		return nil
	}
	first, last := ceilSteps(lo, level), floorSteps(hi, level)
	var vals []float64
	for i := first; i <= last; i++ {
		v := multiple(i, level)
		if v == 0 {
			// Avoid -0.
			v = 0
		}
		vals = append(vals, v)
	}
	return vals
}

// FormatTick formats a tick value with the shortest decimal
// representation that reads back exactly, such as "1500" or "0.25".
func FormatTick(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
