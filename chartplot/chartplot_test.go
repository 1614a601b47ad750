// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/d3c-charts/chartgeom/theme"
)

const salesCSV = `month,car,bus
Jan,120,45
Feb,150,60
Mar,90,30
`

const pollCSV = `answer,count
Yes,70
No,30
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParsePalette(t *testing.T) {
	for _, test := range []struct {
		in   string
		n    int
		head string
		tail string
	}{
		{"viridis", 10, "", ""},
		{"viridis:3", 3, "", ""},
		{"gradient:#000:#fff:5", 5, "#000", "#fff"},
		{"gradient:#000:#fff", 10, "#000", "#fff"},
		{"#111, #222,#333", 3, "#111", "#333"},
	} {
		got, err := parsePalette(test.in)
		if err != nil {
			t.Errorf("parsePalette(%q): %v", test.in, err)
			continue
		}
		if len(got) != test.n {
			t.Errorf("parsePalette(%q) has %d colors, want %d", test.in, len(got), test.n)
			continue
		}
		if test.head != "" && (got[0] != test.head || got[len(got)-1] != test.tail) {
			t.Errorf("parsePalette(%q) = %v, want %s ... %s", test.in, got, test.head, test.tail)
		}
	}
	for _, bad := range []string{"viridis:x", "viridis:0", "gradient:#000", "gradient:#000:nope:3"} {
		if _, err := parsePalette(bad); err == nil {
			t.Errorf("parsePalette(%q) succeeded, want error", bad)
		}
	}
}

func TestJobProvider(t *testing.T) {
	j := job{Theme: "dark", Set: map[string]string{"tickColor": "#ff0000"}}
	p, err := j.provider()
	if err != nil {
		t.Fatal(err)
	}
	want := theme.Dark()
	want.TickColor = "#ff0000"
	if got := p.Theme(); !reflect.DeepEqual(got, want) {
		t.Errorf("theme = %+v, want %+v", got, want)
	}

	j = job{Set: map[string]string{"tickColour": "red"}}
	if _, err := j.provider(); err == nil {
		t.Errorf("unknown attribute accepted")
	}

	dir := t.TempDir()
	j = job{ThemeFile: writeFile(t, dir, "partial.yaml", "legendColor: '#010203'\n"), Palette: "#aaa,#bbb"}
	p, err = j.provider()
	if err != nil {
		t.Fatal(err)
	}
	got := p.Theme()
	if got.LegendColor != "#010203" || got.TickColor != theme.Light().TickColor {
		t.Errorf("partial theme file: legendColor %q, tickColor %q", got.LegendColor, got.TickColor)
	}
	if !reflect.DeepEqual(got.Palette, []string{"#aaa", "#bbb"}) {
		t.Errorf("palette = %v", got.Palette)
	}

	custom := theme.Light()
	custom.FontFamily = "serif"
	var buf bytes.Buffer
	if err := theme.Encode(&buf, custom); err != nil {
		t.Fatal(err)
	}
	j = job{Theme: "dark", ThemeFile: writeFile(t, dir, "full.yaml", buf.String())}
	p, err = j.provider()
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Theme(); !reflect.DeepEqual(got, custom) {
		t.Errorf("complete theme file did not replace the preset: %+v", got)
	}
}

func TestWithDefaults(t *testing.T) {
	d := job{Width: 300, Height: 200, Theme: "dark", Set: map[string]string{"tickColor": "#111", "axisLineColor": "#222"}}
	j := job{Kind: kindBar, Width: 500, Set: map[string]string{"tickColor": "#333"}}.withDefaults(d)
	if j.Width != 500 || j.Height != 200 || j.Theme != "dark" {
		t.Errorf("size, theme = %v×%v, %q", j.Width, j.Height, j.Theme)
	}
	if want := map[string]string{"tickColor": "#333", "axisLineColor": "#222"}; !reflect.DeepEqual(j.Set, want) {
		t.Errorf("Set = %v, want %v", j.Set, want)
	}
}

var scopeRE = regexp.MustCompile(`data-d3c-theme-([0-9a-f]{32})=""`)

func render(t *testing.T, j job) string {
	t.Helper()
	var buf bytes.Buffer
	if err := j.render(&buf); err != nil {
		t.Fatalf("render %s: %v", j.Kind, err)
	}
	return buf.String()
}

var linePathRE = regexp.MustCompile(`<path d="([^"]*)" fill="none"`)

func TestRenderBackground(t *testing.T) {
	in := writeFile(t, t.TempDir(), "poll.csv", pollCSV)
	out := render(t, job{Kind: kindPie, Input: in, Width: 400, Height: 300, Set: map[string]string{"chartBackground": "#101010"}})
	if !strings.Contains(out, `style="fill: var(--d3c-chart-bg, transparent)"`) {
		t.Errorf("background does not read --d3c-chart-bg through CSS:\n%s", out)
	}
	if strings.Contains(out, `fill="var(`) {
		t.Errorf("background uses var() in a presentation attribute")
	}
	if !strings.Contains(out, "--d3c-chart-bg: #101010;") {
		t.Errorf("chartBackground override missing from stylesheet")
	}
}

func TestRenderBar(t *testing.T) {
	in := writeFile(t, t.TempDir(), "sales.csv", salesCSV)
	out := render(t, job{Kind: kindBar, Input: in, Width: 400, Height: 300, Title: "Sales"})
	for _, want := range []string{
		`<svg`,
		`<title>Sales</title>`,
		`<style type="text/css">`,
		`--d3c-tick-color: #4b5563;`,
		`<title>Jan — car: 120</title>`,
		`class="d3c-grid-line"`,
		`class="d3c-legend-text"`,
		`>bus</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("bar SVG missing %q:\n%s", want, out)
		}
	}
	if !scopeRE.MatchString(out) {
		t.Errorf("bar SVG has no scope attribute")
	}
	if n := strings.Count(out, "<path "); n != 6 {
		t.Errorf("bar SVG has %d paths, want 6", n)
	}

	var buf bytes.Buffer
	if err := (&job{Kind: kindBar, Input: in, Mode: "sideways"}).render(&buf); err == nil {
		t.Errorf("unknown mode accepted")
	}
}

func TestRenderLine(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "temps.csv", "day,min,max\n1,3,9\n2,4,12\n3,2,8\n")
	out := render(t, job{Kind: kindLine, Input: in, Width: 400, Height: 300, Theme: "dark"})
	paths := linePathRE.FindAllStringSubmatch(out, -1)
	if len(paths) != 2 {
		t.Errorf("line SVG has %d lines, want 2", len(paths))
	}
	for _, m := range paths {
		if !strings.Contains(m[1], "C") {
			t.Errorf("default line path %q is not a curve", m[1])
		}
	}
	if n := strings.Count(out, "<circle"); n != 6 {
		t.Errorf("line SVG has %d points, want 6", n)
	}
	if !strings.Contains(out, "--d3c-tick-color: #d1d5db;") {
		t.Errorf("line SVG does not carry the dark theme")
	}

	straight := false
	out = render(t, job{Kind: kindLine, Input: in, Width: 400, Height: 300, Smooth: &straight})
	for _, m := range linePathRE.FindAllStringSubmatch(out, -1) {
		if strings.Contains(m[1], "C") {
			t.Errorf("straight line path %q has curves", m[1])
		}
	}

	series := writeFile(t, dir, "series.json", `[{"id": "a", "points": [{"x": 0, "y": 1}, {"x": 1, "y": 2}]}]`)
	out = render(t, job{Kind: kindLine, Input: series, Series: true, Width: 400, Height: 300, Colors: map[string]string{"a": "#123456"}})
	if !strings.Contains(out, `stroke="#123456"`) {
		t.Errorf("series color not applied:\n%s", out)
	}
}

func TestRenderPie(t *testing.T) {
	in := writeFile(t, t.TempDir(), "poll.csv", pollCSV)
	zero := 0.0
	out := render(t, job{Kind: kindPie, Input: in, Width: 400, Height: 300, PadAngle: &zero, CornerRadius: &zero})
	for _, want := range []string{
		`transform="translate(200,150)"`,
		`d="M0,-140A140,140,0,1,1,-133.148,43.262L0,0Z"`,
		`<title>Yes: 70</title>`,
		`>Yes</text>`,
		`stroke="#ffffff"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pie SVG missing %q:\n%s", want, out)
		}
	}
	out = render(t, job{Kind: kindPie, Input: in, Width: 400, Height: 300, NoLabels: true})
	if strings.Contains(out, ">Yes</text>") {
		t.Errorf("pie SVG has labels with NoLabels")
	}
}

func TestRenderMinify(t *testing.T) {
	in := writeFile(t, t.TempDir(), "poll.csv", pollCSV)
	plain := render(t, job{Kind: kindPie, Input: in, Width: 400, Height: 300})
	min := render(t, job{Kind: kindPie, Input: in, Width: 400, Height: 300, Minify: true})
	if len(min) >= len(plain) {
		t.Errorf("minified SVG is %d bytes, plain is %d", len(min), len(plain))
	}
	if !strings.Contains(min, "<svg") || !strings.Contains(min, "<path") {
		t.Errorf("minified SVG lost content:\n%s", min)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	for _, j := range []job{
		{Kind: "radar", Input: writeFile(t, dir, "a.csv", salesCSV)},
		{Kind: kindBar, Input: filepath.Join(dir, "missing.csv")},
		{Kind: kindBar, Input: writeFile(t, dir, "a.txt", salesCSV)},
		{Kind: kindBar, Input: writeFile(t, dir, "b.csv", salesCSV), Palette: "viridis:-1"},
	} {
		if err := j.render(&buf); err == nil {
			t.Errorf("render(%+v) succeeded, want error", j)
		}
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sales.csv", salesCSV)
	writeFile(t, dir, "poll.csv", pollCSV)
	b, err := readBatch(strings.NewReader(`
defaults:
  width: 300
  theme: dark
jobs:
  - kind: bar
    input: sales.csv
    output: sales.svg
    mode: stacked
  - kind: pie
    input: poll.csv
    output: poll.svg
    innerRadius: 40
    padAngle: 0.02
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Jobs) != 2 || *b.Jobs[1].PadAngle != 0.02 {
		t.Fatalf("batch = %+v", b)
	}
	defaults := b.Defaults.withDefaults(job{Width: 640, Height: 400})
	if err := runBatch(context.Background(), b.Jobs, defaults, dir, 2); err != nil {
		t.Fatal(err)
	}

	var scopes []string
	for _, name := range []string{"sales.svg", "poll.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		m := scopeRE.FindStringSubmatch(string(data))
		if m == nil {
			t.Fatalf("%s has no scope", name)
		}
		scopes = append(scopes, m[1])
		if !bytes.Contains(data, []byte(`width="300"`)) || !bytes.Contains(data, []byte("#d1d5db")) {
			t.Errorf("%s does not use batch defaults", name)
		}
	}
	if scopes[0] == scopes[1] {
		t.Errorf("batch jobs share scope %s", scopes[0])
	}
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sales.csv", salesCSV)
	err := runBatch(context.Background(), []job{{Kind: kindBar, Input: "sales.csv"}}, job{Width: 100, Height: 100}, dir, 1)
	if !errors.Is(err, errNoOutput) {
		t.Errorf("job without output: got %v, want %v", err, errNoOutput)
	}

	if _, err := readBatch(strings.NewReader("jobs:\n  - kind: bar\n    colour: red\n")); err == nil {
		t.Errorf("unknown job field accepted")
	}
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "poll.csv", pollCSV)
	out := filepath.Join(dir, "poll.svg")
	t.Setenv("CHARTPLOT_THEME", "dark")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"pie", "-o", out, "--width", "320", "--pad-angle", "0", in})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`width="320"`)) || !bytes.Contains(data, []byte("#1f2937")) {
		t.Errorf("flags or environment not applied:\n%s", data)
	}

	temps := writeFile(t, dir, "temps.csv", "day,min,max\n1,3,9\n2,4,12\n3,2,8\n")
	for _, test := range []struct {
		args  []string
		curve bool
	}{
		{[]string{"line"}, true},
		{[]string{"line", "--smooth=false"}, false},
	} {
		lines := filepath.Join(dir, "temps.svg")
		cmd = newRootCmd()
		cmd.SetArgs(append(test.args, "-o", lines, temps))
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(lines)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range linePathRE.FindAllStringSubmatch(string(data), -1) {
			if got := strings.Contains(m[1], "C"); got != test.curve {
				t.Errorf("%v: path %q curved = %v, want %v", test.args, m[1], got, test.curve)
			}
		}
	}

	css := filepath.Join(dir, "theme.css")
	cmd = newRootCmd()
	cmd.SetArgs([]string{"theme", "--css", "--set", "tickColor=#ff0000", "-o", css})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(css)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("--d3c-tick-color: #ff0000;")) {
		t.Errorf("theme --css output:\n%s", data)
	}
}
