// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/yourbase/recfile/rfc822"
)

// loadConfig is a kong.ConfigurationLoader for configuration files written as
// records:
//
//	# ~/.config/recfile/config
//	log-level: info
//	base_dir: /srv/providers
//
// Keys are flag names, with hyphens or underscores. When the file has more
// than one record, later records override earlier ones. Command-line flags
// override config file values.
func loadConfig(r io.Reader) (kong.Resolver, error) {
	records, err := rfc822.Parse(context.Background(), r, nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := make(config)
	for _, rec := range records {
		for _, f := range rec.Data() {
			cfg[strings.ReplaceAll(f.Key, "_", "-")] = f.Value
		}
	}
	return cfg, nil
}

// config implements kong.Resolver for configuration records.
type config map[string]string

// Validate implements kong.Resolver.
func (cfg config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements kong.Resolver.
func (cfg config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	v, ok := cfg[flag.Name]
	if !ok {
		return nil, nil
	}
	return v, nil
}
