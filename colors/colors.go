// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors assigns colors to chart series and converts between
// CSS hex strings and image/color values.
package colors

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
)

// Resolve returns the color of the series key at position index.
//
// A non-empty entry for key in explicit always wins. Otherwise the
// color is palette[index mod len(palette)], with negative indexes
// wrapping from the end. If palette is empty and there is no explicit
// color, Resolve returns "".
func Resolve(key string, index int, explicit map[string]string, palette []string) string {
	if c := explicit[key]; c != "" {
		return c
	}
	if len(palette) == 0 {
		return ""
	}
	i := index % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}

// Assign resolves a color for each of keys in order.
func Assign(keys []string, explicit map[string]string, palette []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Resolve(k, i, explicit, palette)
	}
	return out
}

// ParseHex parses a CSS hex color of the form #rgb, #rrggbb, or
// #rrggbbaa.
func ParseHex(s string) (color.RGBA, error) {
	bad := func() (color.RGBA, error) {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	if len(s) == 0 || s[0] != '#' {
		return bad()
	}
	digits := s[1:]
	var r, g, b, a uint64
	a = 0xff
	var err error
	field := func(str string) uint64 {
		if err != nil {
			return 0
		}
		var v uint64
		v, err = strconv.ParseUint(str, 16, 8)
		return v
	}
	switch len(digits) {
	case 3:
		r = field(digits[0:1]) * 0x11
		g = field(digits[1:2]) * 0x11
		b = field(digits[2:3]) * 0x11
	case 6, 8:
		r = field(digits[0:2])
		g = field(digits[2:4])
		b = field(digits[4:6])
		if len(digits) == 8 {
			a = field(digits[6:8])
		}
	default:
		return bad()
	}
	if err != nil {
		return bad()
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// Hex formats c as a CSS color. Opaque colors use the short #rgb form
// when possible; translucent colors are written as #rrggbbaa.
func Hex(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nc.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", nc.R, nc.G, nc.B, nc.A)
	}
	if nc.R%0x11 == 0 && nc.G%0x11 == 0 && nc.B%0x11 == 0 {
		return fmt.Sprintf("#%x%x%x", nc.R/0x11, nc.G/0x11, nc.B/0x11)
	}
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}

// Sample returns n colors sampled evenly from the continuous palette
// p, including both ends. It returns nil if n <= 0.
func Sample(p palette.Continuous, n int) []string {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []string{Hex(p.Map(0))}
	}
	xs := vec.Linspace(0, 1, n)
	out := make([]string, n)
	for i, x := range xs {
		out[i] = Hex(p.Map(x))
	}
	return out
}

// Gradient returns n colors interpolated in sRGB between the hex
// colors from and to.
func Gradient(from, to string, n int) ([]string, error) {
	a, err := ParseHex(from)
	if err != nil {
		return nil, err
	}
	b, err := ParseHex(to)
	if err != nil {
		return nil, err
	}
	return Sample(palette.RGBGradient{Colors: []color.RGBA{a, b}}, n), nil
}

// Viridis returns n colors from the viridis palette.
func Viridis(n int) []string {
	return Sample(palette.Viridis, n)
}
