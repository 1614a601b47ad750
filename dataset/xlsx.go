// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a dataset from a worksheet of an XLSX workbook. The
// first row of the sheet is the header. If sheet is "", the first
// sheet of the workbook is used.
func ReadXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return &Dataset{}, nil
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Dataset{}, nil
	}
	return ParseValues(rows[0], rows[1:], nil), nil
}

// WriteXLSX writes d as a single-sheet XLSX workbook with a header
// row. Numeric values are written as numbers.
func WriteXLSX(w io.Writer, d *Dataset, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if def := f.GetSheetName(0); def != sheet {
		if err := f.SetSheetName(def, sheet); err != nil {
			return err
		}
	}

	set := func(col, row int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}
	for i, c := range d.Columns {
		if err := set(i+1, 1, c); err != nil {
			return err
		}
	}
	for j, r := range d.Rows {
		for i, c := range d.Columns {
			v, ok := r[c]
			if !ok || v == nil {
				continue
			}
			if err := set(i+1, j+2, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
