// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// BaseStyles is the fixed block of class rules that consume the theme
// variables. Every reference carries the light preset value as its
// fallback so charts render even when a variable is missing.
const BaseStyles = `.d3c-tick-text {
  font-family: var(--d3c-font-family, 'Inter', 'Helvetica Neue', system-ui, sans-serif);
  font-size: var(--d3c-tick-font-size, 12px);
  font-weight: var(--d3c-tick-font-weight, 400);
  fill: var(--d3c-tick-color, #4b5563);
}

.d3c-axis-line {
  stroke: var(--d3c-axis-line-color, #9ca3af);
  stroke-width: var(--d3c-axis-line-width, 1);
}

.d3c-tick-line {
  stroke: var(--d3c-axis-line-color, #9ca3af);
  stroke-width: var(--d3c-axis-line-width, 1);
}

.d3c-grid-line {
  stroke: var(--d3c-grid-line-color, #e5e7eb);
  stroke-width: var(--d3c-grid-line-width, 1);
  stroke-dasharray: var(--d3c-grid-line-dasharray, 2,2);
}

.d3c-legend-text {
  font-family: var(--d3c-font-family, 'Inter', 'Helvetica Neue', system-ui, sans-serif);
  font-size: var(--d3c-legend-font-size, 11px);
  font-weight: var(--d3c-legend-font-weight, 500);
  fill: var(--d3c-legend-color, #374151);
}`

// A Scope isolates one theme's variables from every other theme on
// the same page.
type Scope string

// NewScope returns a new, unique scope.
func NewScope() Scope {
	return Scope(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Attr returns the attribute name that marks elements in scope s.
func (s Scope) Attr() string {
	return "data-d3c-theme-" + string(s)
}

// Selector returns the CSS selector matching elements in scope s.
func (s Scope) Selector() string {
	return "[" + s.Attr() + "]"
}

// Variables returns the custom property declarations for t, scoped to
// s. Scalar fields are emitted in Fields order, followed by one
// variable per palette entry. Empty fields are omitted so the
// fallbacks in BaseStyles apply.
func Variables(s Scope, t Theme) string {
	var buf strings.Builder
	buf.WriteString(s.Selector())
	buf.WriteString(" {\n")
	for _, f := range fields {
		v := *f.get(&t)
		if v == "" {
			continue
		}
		buf.WriteString("  " + f.Var + ": " + v + ";\n")
	}
	for i, c := range t.Palette {
		buf.WriteString("  " + PaletteVarPrefix + strconv.Itoa(i) + ": " + c + ";\n")
	}
	buf.WriteString("}")
	return buf.String()
}

// Stylesheet returns the complete style text for t in scope s: the
// scoped variables followed by BaseStyles. For identical inputs the
// result differs only in the scope identifier.
func Stylesheet(s Scope, t Theme) string {
	return Variables(s, t) + "\n" + BaseStyles
}

var (
	minifierOnce sync.Once
	minifier     *minify.M
)

// Minify returns style text with insignificant whitespace removed.
func Minify(style string) (string, error) {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/css", css.Minify)
	})
	return minifier.String("text/css", style)
}
