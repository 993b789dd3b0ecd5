// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the recfile command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/yourbase/recfile/cli/cmd"
)

const (
	// Name is the name of the program.
	Name = "recfile"
	// Description is shown in the program's help output.
	Description = "Check, format, convert, and query RFC 822-style record files."
)

// DefaultConfigPath is the configuration file read by default.
const DefaultConfigPath = "~/.config/recfile/config"

// CLI is the top-level command-line interface for recfile.
type CLI struct {
	Log     logConfig `embed:"" prefix:"log-"`
	BaseDir string    `env:"RECFILE_BASE_DIR" help:"Report file names relative to this directory." name:"base-dir" type:"path"`

	Check   cmd.Check   `cmd:"" help:"Check files for syntax errors."`
	Fmt     cmd.Fmt     `cmd:"" help:"Rewrite records in canonical form."`
	Convert cmd.Convert `cmd:"" help:"Convert records to YAML or JSON."`
	Query   cmd.Query   `cmd:"" help:"Print records that match an expression."`
}

// Env is the environment a command runs in.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Exit is called when kong wants to end the program, e.g. after --help.
	Exit func(code int)

	// ConfigPaths are configuration files to load, in order.
	// Missing files are skipped.
	ConfigPaths []string
}

// DefaultEnv returns the environment of the current process.
func DefaultEnv() *Env {
	return &Env{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Exit:        os.Exit,
		ConfigPaths: []string{DefaultConfigPath},
	}
}

// Run parses args and executes the selected command. Log entries go to
// env.Stderr when the default logger is a Logger.
func Run(ctx context.Context, env *Env, args ...string) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(Name),
		kong.Description(Description),
		kong.UsageOnError(),
		kong.Exit(env.Exit),
		kong.Writers(env.Stdout, env.Stderr),
		kong.Configuration(loadConfig, env.ConfigPaths...),
	)
	if err != nil {
		return err
	}
	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	ctx = withLogger(ctx, cli.Log.newLogger(env.Stderr))
	ktx.BindTo(ctx, (*context.Context)(nil))
	return ktx.Run(&cmd.Globals{
		BaseDir: cli.BaseDir,
		Stdin:   env.Stdin,
		Stdout:  env.Stdout,
		Stderr:  env.Stderr,
	})
}
