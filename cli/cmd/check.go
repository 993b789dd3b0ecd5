// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"

	"github.com/yourbase/recfile/rfc822"
	"zombiezen.com/go/log"
)

// Check parses files and reports syntax errors. A file with an error does not
// stop the remaining files from being checked.
type Check struct {
	Verbose bool     `help:"Print the origin of every record." short:"v"`
	Files   []string `arg:"" help:"Files to check or '-' for stdin." name:"file" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context, g *Globals) error {
	files := filesOrStdin(c.Files)
	failed := 0
	for _, name := range files {
		n := 0
		err := g.forEachRecord(ctx, name, func(rec *rfc822.Record) error {
			n++
			if c.Verbose {
				fmt.Fprintf(g.Stdout, "%v: %d fields\n", g.origin(rec.Origin()), rec.Len())
			}
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			failed++
			fmt.Fprintln(g.Stderr, g.describeError(name, err))
			continue
		}
		log.Infof(ctx, "%s: %d records", g.filename(name), n)
	}
	if failed > 0 {
		return fmt.Errorf("check: %d of %d files have errors", failed, len(files))
	}
	return nil
}
