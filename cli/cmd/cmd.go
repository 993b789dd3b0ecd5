// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package cmd implements the subcommands of the recfile tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/yourbase/recfile/rfc822"
)

// Globals holds the values shared by all subcommands.
type Globals struct {
	// BaseDir, if not empty, is the directory that reported file names are
	// made relative to.
	BaseDir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// stdinName is the argument that names standard input.
const stdinName = "-"

// stdinSource is the source attached to records read from standard input.
var stdinSource = rfc822.FileSource{Filename: "<stdin>"}

// openRecords returns a reader for the named file, or for standard input if
// name is "-". The returned function closes the file.
func (g *Globals) openRecords(name string) (*rfc822.Reader, func() error, error) {
	if name == stdinName {
		r := rfc822.NewReader(g.Stdin, &rfc822.ParseOptions{
			Source:   stdinSource,
			Filename: stdinSource.Filename,
		})
		return r, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return rfc822.NewReader(f, nil), f.Close, nil
}

// forEachRecord calls fn for every record in the named file. It stops at the
// first error.
func (g *Globals) forEachRecord(ctx context.Context, name string, fn func(*rfc822.Record) error) error {
	r, closeFile, err := g.openRecords(name)
	if err != nil {
		return err
	}
	defer closeFile()
	for rec, err := range r.All(ctx) {
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// origin returns the origin in the form shown to users.
func (g *Globals) origin(o rfc822.Origin) rfc822.Origin {
	if g.BaseDir == "" {
		return o
	}
	return o.RelativeTo(g.BaseDir)
}

// filename returns a file name in the form shown to users.
func (g *Globals) filename(name string) string {
	if g.BaseDir == "" || name == "" || name == stdinSource.Filename {
		return name
	}
	return rfc822.FileSource{Filename: name}.RelativeTo(g.BaseDir).String()
}

// describeError formats an error from reading the named file as
// "file:line: message" when it has a location, or "file: message" otherwise.
func (g *Globals) describeError(name string, err error) string {
	var syntaxErr *rfc822.SyntaxError
	if errors.As(err, &syntaxErr) {
		filename := syntaxErr.Filename
		if filename == "" {
			filename = name
		}
		return fmt.Sprintf("%s:%d: %s", g.filename(filename), syntaxErr.Line, syntaxErr.Msg)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("%s: %s: %v", g.filename(pathErr.Path), pathErr.Op, pathErr.Err)
	}
	return fmt.Sprintf("%s: %v", g.filename(name), err)
}

func filesOrStdin(files []string) []string {
	if len(files) == 0 {
		return []string{stdinName}
	}
	return files
}
