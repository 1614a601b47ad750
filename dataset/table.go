// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// FromTable converts a go-gg table into a dataset. Columns of any
// numeric element type become float64 values; []string columns stay
// labels; other columns are formatted with fmt.
func FromTable(t *table.Table) *Dataset {
	d := &Dataset{Columns: t.Columns(), Rows: make([]Row, t.Len())}
	for i := range d.Rows {
		d.Rows[i] = make(Row, len(d.Columns))
	}
	for _, name := range d.Columns {
		col := t.Column(name)
		switch kindOf(col) {
		case reflect.String:
			var ss []string
			slice.Convert(&ss, col)
			for i, s := range ss {
				d.Rows[i][name] = s
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			var fs []float64
			slice.Convert(&fs, col)
			for i, f := range fs {
				d.Rows[i][name] = f
			}
		default:
			v := reflect.ValueOf(col)
			for i := 0; i < v.Len(); i++ {
				d.Rows[i][name] = toString(v.Index(i).Interface())
			}
		}
	}
	return d
}

func kindOf(col table.Slice) reflect.Kind {
	return reflect.TypeOf(col).Elem().Kind()
}

// ToTable converts d into a go-gg table. Columns whose values are all
// numbers become []float64 columns (missing values are 0); all other
// columns become []string.
func ToTable(d *Dataset) *table.Table {
	numeric := make(map[string]bool)
	for _, c := range d.NumericColumns() {
		numeric[c] = true
	}
	b := table.NewBuilder(nil)
	for _, c := range d.Columns {
		if numeric[c] {
			col := make([]float64, len(d.Rows))
			for i, r := range d.Rows {
				col[i] = r.Number(c)
			}
			b.Add(c, col)
			continue
		}
		col := make([]string, len(d.Rows))
		for i, r := range d.Rows {
			col[i] = r.Label(c)
		}
		b.Add(c, col)
	}
	return b.Done()
}
