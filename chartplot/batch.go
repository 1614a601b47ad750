// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// A batchFile lists charts to render together.
//
//	defaults:
//	  width: 480
//	  theme: dark
//	jobs:
//	  - kind: bar
//	    input: sales.csv
//	    output: sales.svg
//	    mode: stacked
//	  - kind: pie
//	    input: poll.csv
//	    output: poll.svg
//	    innerRadius: 60
//
// Relative file names are relative to the batch file.
type batchFile struct {
	Defaults job   `yaml:"defaults"`
	Jobs     []job `yaml:"jobs"`
}

func readBatch(r io.Reader) (*batchFile, error) {
	var b batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && err != io.EOF {
		return nil, err
	}
	return &b, nil
}

func newBatchCmd(v *viper.Viper) *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "batch [flags] jobs.yaml",
		Short: "Render every chart listed in a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			b, err := readBatch(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			defaults := b.Defaults.withDefaults(globalJob(v))
			return runBatch(cmd.Context(), b.Jobs, defaults, filepath.Dir(args[0]), parallel)
		},
	}
	cmd.Flags().IntVarP(&parallel, "parallel", "j", runtime.NumCPU(), "render up to `n` charts at once")
	return cmd
}

var errNoOutput = errors.New("no output file")

// runBatch renders jobs concurrently, at most parallel at a time.
// Each job gets its own theme provider, and therefore its own scope.
// The first failure cancels jobs that have not started.
func runBatch(ctx context.Context, jobs []job, defaults job, dir string, parallel int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range jobs {
		j := jobs[i].withDefaults(defaults)
		j.resolvePaths(dir)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if j.Output == "" {
				return fmt.Errorf("job %d (%s): %w", i, j.Input, errNoOutput)
			}
			start := time.Now()
			if err := j.run(); err != nil {
				return fmt.Errorf("job %d (%s): %w", i, j.Input, err)
			}
			slog.Info("rendered", "job", i, "kind", j.Kind, "output", j.Output, "elapsed", time.Since(start))
			return nil
		})
	}
	return g.Wait()
}
