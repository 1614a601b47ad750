// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"

	"github.com/aclements/go-gg/table"

	"github.com/d3c-charts/chartgeom/dataset"
	"github.com/d3c-charts/chartgeom/theme"
)

func newThemeCmd(v *viper.Viper) *cobra.Command {
	var (
		asCSS bool
		diff  bool
	)
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the resolved theme as YAML or as a scoped stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j := globalJob(v)
			p, err := j.provider()
			if err != nil {
				return err
			}
			return writeOutput(j.Output, func(w io.Writer) error {
				switch {
				case diff:
					for _, name := range theme.Diff(theme.Light(), p.Theme()) {
						if _, err := fmt.Fprintln(w, name); err != nil {
							return err
						}
					}
					return nil
				case asCSS:
					style := p.Stylesheet()
					if j.Minify {
						if style, err = theme.Minify(style); err != nil {
							return err
						}
					}
					_, err := fmt.Fprintln(w, style)
					return err
				}
				return theme.Encode(w, p.Theme())
			})
		},
	}
	cmd.Flags().BoolVar(&asCSS, "css", false, "print the scoped stylesheet instead of YAML")
	cmd.Flags().BoolVar(&diff, "diff", false, "print the attributes that differ from the light preset")
	return cmd
}

func newDataCmd(v *viper.Viper) *cobra.Command {
	var (
		xlsxOut string
		gg      bool
		sheets  bool
	)
	cmd := &cobra.Command{
		Use:   "data [flags] input",
		Short: "Print a dataset as a table or convert it to XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := globalJob(v)
			if sheets {
				names, err := sheetNames(args[0])
				if err != nil {
					return err
				}
				return writeOutput(j.Output, func(w io.Writer) error {
					for _, n := range names {
						if _, err := fmt.Fprintln(w, n); err != nil {
							return err
						}
					}
					return nil
				})
			}
			d, err := dataset.Load(args[0], j.Sheet)
			if err != nil {
				return err
			}
			if xlsxOut != "" {
				f, err := os.Create(xlsxOut)
				if err != nil {
					return err
				}
				if err := dataset.WriteXLSX(f, d, ""); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			}
			return writeOutput(j.Output, func(w io.Writer) error {
				if gg {
					table.Fprint(w, dataset.ToTable(d))
					return nil
				}
				return dataset.Fprint(w, d)
			})
		},
	}
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write the dataset to XLSX `file`")
	cmd.Flags().BoolVar(&gg, "gg", false, "print through a go-gg table, with one column per field")
	cmd.Flags().BoolVar(&sheets, "sheets", false, "list the sheets of an XLSX input")
	return cmd
}

// writeOutput calls write with the named file, or stdout if name is
// empty.
func writeOutput(name string, write func(io.Writer) error) error {
	if name == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// sheetNames lists the sheets of an XLSX file.
func sheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
