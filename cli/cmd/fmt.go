// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yourbase/recfile/rfc822"
	"zombiezen.com/go/log"
)

// Fmt rewrites records in canonical form: normalized values, one blank line
// between records and no comments.
type Fmt struct {
	Write bool   `help:"Write the result back to the source file instead of stdout." short:"w"`
	File  string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"file"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context, g *Globals) error {
	if f.Write && f.File == stdinName {
		return errors.New("fmt: cannot write back to stdin")
	}
	var out io.Writer = g.Stdout
	buf := new(bytes.Buffer)
	if f.Write {
		// Nothing is written unless the whole file parses.
		out = buf
	}
	w := rfc822.NewWriter(out)
	n := 0
	err := g.forEachRecord(ctx, f.File, func(rec *rfc822.Record) error {
		n++
		return w.WriteRecord(rec)
	})
	if err != nil {
		return fmt.Errorf("fmt: %s", g.describeError(f.File, err))
	}
	if !f.Write {
		return nil
	}
	if err := replaceFile(f.File, buf.Bytes()); err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	log.Infof(ctx, "Rewrote %d records in %s", n, g.filename(f.File))
	return nil
}

// replaceFile atomically replaces the contents of the named file.
func replaceFile(name string, data []byte) (err error) {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
