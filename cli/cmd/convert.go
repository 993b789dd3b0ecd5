// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/yourbase/recfile/rfc822"
)

// Convert writes records as a YAML or JSON sequence. Each element has the
// record's origin and its fields in their original order.
type Convert struct {
	To     string   `default:"yaml" enum:"yaml,json" help:"Output format (${enum})."`
	Indent int      `default:"2" help:"Indent width for YAML output." short:"i"`
	Files  []string `arg:"" help:"Source files or '-' for stdin." name:"file" optional:""`
}

// Run executes the convert command.
func (c *Convert) Run(ctx context.Context, g *Globals) error {
	docs := []yaml.MapSlice{}
	for _, name := range filesOrStdin(c.Files) {
		err := g.forEachRecord(ctx, name, func(rec *rfc822.Record) error {
			docs = append(docs, recordToMapSlice(g.origin(rec.Origin()), rec.Data()))
			return nil
		})
		if err != nil {
			return fmt.Errorf("convert: %s", g.describeError(name, err))
		}
	}

	var opts []yaml.EncodeOption
	switch c.To {
	case "json":
		opts = append(opts, yaml.JSON())
	default:
		opts = append(opts, yaml.Indent(c.Indent), yaml.UseLiteralStyleIfMultiline(true))
	}
	data, err := yaml.MarshalContext(ctx, docs, opts...)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if _, err := g.Stdout.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = fmt.Fprintln(g.Stdout)
	}
	return err
}

func recordToMapSlice(origin rfc822.Origin, data rfc822.Fields) yaml.MapSlice {
	fields := make(yaml.MapSlice, 0, len(data))
	for _, f := range data {
		fields = append(fields, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	return yaml.MapSlice{
		{Key: "origin", Value: origin.String()},
		{Key: "fields", Value: fields},
	}
}
