// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestNumber(t *testing.T) {
	r := Row{
		"f":     120.5,
		"i":     45,
		"i64":   int64(7),
		"s":     " 80 ",
		"bad":   "n/a",
		"empty": "",
		"nan":   math.NaN(),
		"inf":   math.Inf(-1),
		"num":   json.Number("3.5"),
		"bool":  true,
	}
	for _, test := range []struct {
		key  string
		want float64
	}{
		{"f", 120.5},
		{"i", 45},
		{"i64", 7},
		{"s", 80},
		{"bad", 0},
		{"empty", 0},
		{"nan", 0},
		{"inf", 0},
		{"num", 3.5},
		{"bool", 0},
		{"missing", 0},
	} {
		if got := r.Number(test.key); got != test.want {
			t.Errorf("Number(%q) = %v, want %v", test.key, got, test.want)
		}
	}
}

func TestLabel(t *testing.T) {
	r := Row{"s": "Jan", "f": 2024.0, "i": 3}
	for _, test := range []struct {
		key, want string
	}{
		{"s", "Jan"}, {"f", "2024"}, {"i", "3"}, {"missing", ""},
	} {
		if got := r.Label(test.key); got != test.want {
			t.Errorf("Label(%q) = %q, want %q", test.key, got, test.want)
		}
	}
}

func TestReadCSV(t *testing.T) {
	for _, test := range []struct {
		input string
		want  *Dataset
	}{
		// Test mixed columns.
		{`month,car,bus
Jan,120,45
Feb,150,50`,
			&Dataset{
				Columns: []string{"month", "car", "bus"},
				Rows: []Row{
					{"month": "Jan", "car": 120.0, "bus": 45.0},
					{"month": "Feb", "car": 150.0, "bus": 50.0},
				},
			},
		},

		// Test missing and non-numeric cells.
		{`month,car,bus
Jan,,45
Feb,150,x`,
			&Dataset{
				Columns: []string{"month", "car", "bus"},
				Rows: []Row{
					{"month": "Jan", "bus": "45"},
					{"month": "Feb", "car": 150.0, "bus": "x"},
				},
			},
		},

		// Test short records.
		{`a,b
1`,
			&Dataset{
				Columns: []string{"a", "b"},
				Rows:    []Row{{"a": 1.0}},
			},
		},

		// Test empty input.
		{``, &Dataset{}},
	} {
		got, err := ReadCSV(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("ReadCSV(%q): %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ReadCSV(%q):\nwant %#v\ngot  %#v", test.input, test.want, got)
		}
	}
}

func TestParseValuesParsers(t *testing.T) {
	upper := func(s string) (interface{}, error) {
		if strings.ToUpper(s) != s {
			return nil, errors.New("not upper")
		}
		return "UP:" + s, nil
	}
	d := ParseValues([]string{"a", "b"}, [][]string{{"X", "y"}, {"Z", "W"}}, []ValueParser{upper})
	want := []Row{{"a": "UP:X", "b": "y"}, {"a": "UP:Z", "b": "W"}}
	if !reflect.DeepEqual(d.Rows, want) {
		t.Errorf("ParseValues = %v, want %v", d.Rows, want)
	}
}

func TestReadJSON(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`[
		{"month": "Jan", "car": 120, "bus": 45},
		{"month": "Feb", "car": 150, "cycle": "65"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"bus", "car", "month", "cycle"}; !reflect.DeepEqual(d.Columns, want) {
		t.Errorf("Columns = %v, want %v", d.Columns, want)
	}
	if got := d.Rows[1].Number("cycle"); got != 65 {
		t.Errorf("cycle = %v, want 65", got)
	}
	if got := d.Rows[0]["car"]; got != 120.0 {
		t.Errorf("car = %#v, want 120.0", got)
	}

	if _, err := ReadJSON(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Errorf("ReadJSON accepted an object")
	}
}

func TestReadSeriesJSON(t *testing.T) {
	got, err := ReadSeriesJSON(strings.NewReader(`[{"id": "a", "color": "#f00", "points": [{"x": 1, "y": 2}]}]`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Series{{ID: "a", Color: "#f00", Points: []Point{{1, 2}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadSeriesJSON = %+v, want %+v", got, want)
	}
}

func sampleDataset() *Dataset {
	return &Dataset{
		Columns: []string{"month", "car", "bus"},
		Rows: []Row{
			{"month": "Jan", "car": 120.0, "bus": 45.0},
			{"month": "Feb", "car": 150.0},
		},
	}
}

func TestHelpers(t *testing.T) {
	d := sampleDataset()
	if got, want := d.Categories("month"), []string{"Jan", "Feb"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
	if got, want := d.NumericColumns("month"), []string{"car", "bus"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NumericColumns = %v, want %v", got, want)
	}
	if got, want := d.Items("month", "bus"), []Item{{"Jan", 45}, {"Feb", 0}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Items = %v, want %v", got, want)
	}
	d.Rows[0]["x"], d.Rows[1]["x"] = 1.0, 2.0
	want := []Series{{ID: "car", Points: []Point{{1, 120}, {2, 150}}}}
	if got := d.Series("x", []string{"car"}); !reflect.DeepEqual(got, want) {
		t.Errorf("Series = %v, want %v", got, want)
	}
}

func TestTable(t *testing.T) {
	tab := table.NewBuilder(nil).
		Add("month", []string{"Jan", "Feb"}).
		Add("car", []int{120, 150}).
		Add("ok", []bool{true, false}).
		Done()
	d := FromTable(tab)
	want := &Dataset{
		Columns: []string{"month", "car", "ok"},
		Rows: []Row{
			{"month": "Jan", "car": 120.0, "ok": "true"},
			{"month": "Feb", "car": 150.0, "ok": "false"},
		},
	}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("FromTable:\nwant %#v\ngot  %#v", want, d)
	}

	back := ToTable(sampleDataset())
	if back.Len() != 2 {
		t.Fatalf("ToTable has %d rows, want 2", back.Len())
	}
	if got, want := back.Column("bus"), []float64{45, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("bus column = %v, want %v", got, want)
	}
	if got, want := back.Column("month"), []string{"Jan", "Feb"}; !reflect.DeepEqual(got, want) {
		t.Errorf("month column = %v, want %v", got, want)
	}
}

func TestXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleDataset(), "Trips"); err != nil {
		t.Fatal(err)
	}
	d, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d, sampleDataset()) {
		t.Errorf("XLSX round trip:\nwant %#v\ngot  %#v", sampleDataset(), d)
	}
	if _, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "Nope"); err == nil {
		t.Errorf("ReadXLSX of missing sheet succeeded")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("label,value\nYes,70\nNo,30\n"), 0666); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Items("label", "value"), []Item{{"Yes", 70}, {"No", 30}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Items = %v, want %v", got, want)
	}

	if _, err := Load(filepath.Join(dir, "data.txt"), ""); err == nil {
		t.Errorf("Load of missing file succeeded")
	}
	other := filepath.Join(dir, "data.tsv")
	os.WriteFile(other, nil, 0666)
	if _, err := Load(other, ""); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(.tsv) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, sampleDataset()); err != nil {
		t.Fatal(err)
	}
	want := "month  car  bus\n" +
		"Jan    120   45\n" +
		"Feb    150     \n"
	if buf.String() != want {
		t.Errorf("Fprint:\nwant %q\ngot  %q", want, buf.String())
	}
}
