// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"
	"os"
)

// Print writes d to standard output as an aligned text table.
func Print(d *Dataset) error {
	return Fprint(os.Stdout, d)
}

// Fprint writes d to w as an aligned text table with a header line.
// Numeric columns are right aligned and missing cells are blank.
func Fprint(w io.Writer, d *Dataset) error {
	numeric := make(map[string]bool)
	for _, c := range d.NumericColumns() {
		numeric[c] = true
	}

	// Construct lines.
	lines := make([][]string, 0, len(d.Rows)+1)
	lines = append(lines, d.Columns)
	for _, r := range d.Rows {
		line := make([]string, len(d.Columns))
		for i, c := range d.Columns {
			if _, ok := r[c]; ok {
				line[i] = r.Label(c)
			}
		}
		lines = append(lines, line)
	}

	// Compute column widths.
	widths := make([]int, len(d.Columns))
	for _, line := range lines {
		for i, elt := range line {
			if len(elt) > widths[i] {
				widths[i] = len(elt)
			}
		}
	}

	// Print lines.
	for _, line := range lines {
		for i, elt := range line {
			var err error
			p := widths[i]
			if numeric[d.Columns[i]] {
				// Right align.
				_, err = fmt.Fprintf(w, "%*s", p, elt)
			} else if i < len(line)-1 {
				// Left align and pad.
				_, err = fmt.Fprintf(w, "%-*s", p, elt)
			} else {
				// Left align, no pad.
				_, err = fmt.Fprint(w, elt)
			}
			if err == nil {
				if i < len(line)-1 {
					_, err = fmt.Fprint(w, "  ")
				} else {
					_, err = fmt.Fprint(w, "\n")
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
