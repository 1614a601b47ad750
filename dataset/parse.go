// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownFormat is returned by Load for file extensions it cannot
// read.
var ErrUnknownFormat = errors.New("unknown dataset format")

func toString(x interface{}) string {
	return fmt.Sprint(x)
}

// ValueParser is a function that parses a string cell into a
// structured value or returns an error if the cell cannot be parsed.
type ValueParser func(string) (interface{}, error)

// DefaultValueParsers is the default sequence of value parsers used
// by ParseValues if no parsers are specified.
var DefaultValueParsers = []ValueParser{
	func(s string) (interface{}, error) { return strconv.ParseFloat(strings.TrimSpace(s), 64) },
}

// ParseValues converts string records into rows using best-effort,
// column-wise parsing.
//
// If every non-empty cell of a column can be parsed by one of
// valueParsers, the column's values are the results of that parser.
// If several parsers can parse a whole column, the earliest one in
// valueParsers wins. Columns no parser accepts stay strings. Empty
// cells are left out of the row and so read as missing.
//
// If valueParsers is nil, it uses DefaultValueParsers. Records shorter
// than header are treated as having empty trailing cells.
func ParseValues(header []string, records [][]string, valueParsers []ValueParser) *Dataset {
	if valueParsers == nil {
		valueParsers = DefaultValueParsers
	}
	d := &Dataset{Columns: append([]string(nil), header...)}
	d.Rows = make([]Row, len(records))
	for i := range d.Rows {
		d.Rows[i] = make(Row, len(header))
	}
	cell := func(rec []string, col int) string {
		if col < len(rec) {
			return rec[col]
		}
		return ""
	}

	for col, key := range header {
		good := false
	tryParsers:
		for _, vp := range valueParsers {
			good = true
			vals := make([]interface{}, len(records))
			for i, rec := range records {
				raw := cell(rec, col)
				if strings.TrimSpace(raw) == "" {
					continue
				}
				v, err := vp(raw)
				if err != nil {
					// Parse error. Fail this parser.
					good = false
					continue tryParsers
				}
				vals[i] = v
			}
			for i, v := range vals {
				if v != nil {
					d.Rows[i][key] = v
				}
			}
			break
		}
		if !good {
			// All of the value parsers failed. Fall back
			// to strings.
			for i, rec := range records {
				if raw := cell(rec, col); raw != "" {
					d.Rows[i][key] = raw
				}
			}
		}
	}
	return d
}

// ReadCSV reads a dataset from CSV with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return &Dataset{}, nil
	}
	return ParseValues(records[0], records[1:], nil), nil
}

// ReadJSON reads a dataset from a JSON array of objects. Columns are
// ordered by first appearance, and alphabetically within one object.
func ReadJSON(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var objs []map[string]interface{}
	if err := dec.Decode(&objs); err != nil {
		return nil, fmt.Errorf("reading JSON dataset: %w", err)
	}

	d := &Dataset{Rows: make([]Row, len(objs))}
	seen := make(map[string]bool)
	for i, obj := range objs {
		row := make(Row, len(obj))
		var keys []string
		for k, v := range obj {
			if n, ok := v.(json.Number); ok {
				if f, err := n.Float64(); err == nil {
					v = f
				}
			}
			row[k] = v
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		d.Columns = append(d.Columns, keys...)
		d.Rows[i] = row
	}
	return d, nil
}

// ReadSeriesJSON reads line series from a JSON array of
// {"id", "points": [{"x", "y"}], "color"} objects.
func ReadSeriesJSON(r io.Reader) ([]Series, error) {
	var series []Series
	if err := json.NewDecoder(r).Decode(&series); err != nil {
		return nil, fmt.Errorf("reading JSON series: %w", err)
	}
	return series, nil
}

// Load reads the dataset in the file at path, choosing the format by
// extension: .csv, .json, or .xlsx. sheet selects the worksheet of an
// XLSX file; "" means the first sheet.
func Load(path, sheet string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		d, err = ReadCSV(bytes.NewReader(data))
	case ".json":
		d, err = ReadJSON(bytes.NewReader(data))
	case ".xlsx":
		d, err = ReadXLSX(bytes.NewReader(data), sheet)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
