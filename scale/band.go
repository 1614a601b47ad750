// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to pixel coordinates.
//
// A Band scale partitions a pixel range into equal slots, one per
// category. A Linear scale interpolates a numeric domain onto a pixel
// range and can round its domain outward to "nice" values. Both
// produce axis ticks.
//
// Scales are immutable once constructed and safe for concurrent use.
package scale

// Band is a discrete scale that divides the range [r0, r1] into one
// equal step per domain label. Each label is assigned the start of
// its step, and all labels share the same bandwidth.
type Band struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	padding float64
	step    float64
}

// NewBand returns a band scale over domain mapping to [r0, r1].
//
// Duplicate labels in domain keep the position of their first
// occurrence. padding is the fraction of each step left empty after
// the band and is clamped to [0, 1). An empty domain yields a scale
// with zero step and bandwidth.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	b := &Band{
		index: make(map[string]int, len(domain)),
		r0:    r0,
		r1:    r1,
	}
	for _, label := range domain {
		if _, ok := b.index[label]; ok {
			continue
		}
		b.index[label] = len(b.domain)
		b.domain = append(b.domain, label)
	}

	switch {
	case !(padding > 0):
		padding = 0
	case padding >= 1:
		padding = maxPadding
	}
	b.padding = padding

	if n := len(b.domain); n > 0 {
		b.step = (r1 - r0) / float64(n)
	}
	return b
}

// maxPadding is the largest padding accepted by NewBand. A padding
// of 1 would leave no room for the band itself.
const maxPadding = 1 - 1e-9

// Domain returns a copy of the scale's distinct labels in order.
func (b *Band) Domain() []string {
	return append([]string(nil), b.domain...)
}

// Range returns the output interval of b.
func (b *Band) Range() (r0, r1 float64) {
	return b.r0, b.r1
}

// Padding returns the padding fraction of b after clamping.
func (b *Band) Padding() float64 {
	return b.padding
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 {
	return b.step
}

// Bandwidth returns the width of every band.
func (b *Band) Bandwidth() float64 {
	return b.step * (1 - b.padding)
}

// Map returns the start position of label's band. If label is not
// in the domain, it returns 0, false. Callers must check ok rather
// than place a mark at 0 for an unknown category.
func (b *Band) Map(label string) (pos float64, ok bool) {
	i, ok := b.index[label]
	if !ok {
		return 0, false
	}
	return b.r0 + float64(i)*b.step, true
}

// Ticks returns one tick per domain label, in domain order, at the
// center of each band. Value is the label's index in the domain.
func (b *Band) Ticks() []Tick {
	ticks := make([]Tick, len(b.domain))
	half := b.Bandwidth() / 2
	for i, label := range b.domain {
		ticks[i] = Tick{
			Label:  label,
			Value:  float64(i),
			Offset: b.r0 + float64(i)*b.step + half,
		}
	}
	return ticks
}
