// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"io"

	"zombiezen.com/go/log"
)

type logConfig struct {
	Level string `default:"warn" enum:"debug,info,warn,error" env:"RECFILE_LOG_LEVEL" help:"Set log level (${enum})."`
}

// newLogger returns a logger that writes entries at or above the configured
// level to w, one line per entry.
func (c *logConfig) newLogger(w io.Writer) log.Logger {
	return &log.LevelFilter{
		Min:    parseLevel(c.Level),
		Output: log.New(w, Name+": ", log.ShowLevel, nil),
	}
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.Debug
	case "info":
		return log.Info
	case "error":
		return log.Error
	default:
		return log.Warn
	}
}

// Logger sends entries to the logger that Run attached to the Context.
// Install it with log.SetDefault before calling Run.
type Logger struct {
	// Fallback is used if the Context has no logger.
	// If nil, then log.Discard is assumed.
	Fallback log.Logger
}

type loggerKey struct{}

func withLogger(parent context.Context, l log.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, l)
}

func (l Logger) output(ctx context.Context) log.Logger {
	if out, _ := ctx.Value(loggerKey{}).(log.Logger); out != nil {
		return out
	}
	if l.Fallback != nil {
		return l.Fallback
	}
	return log.Discard
}

// Log writes to the logger in ctx or l.Fallback.
func (l Logger) Log(ctx context.Context, e log.Entry) {
	l.output(ctx).Log(ctx, e)
}

// LogEnabled always returns true: the Context is needed to pick a logger.
func (l Logger) LogEnabled(e log.Entry) bool {
	return true
}
