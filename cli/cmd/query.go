// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/yourbase/recfile/rfc822"
)

// Query prints the records for which a boolean expression is true.
//
// Every field of a record is available as a variable named after its key.
// Fields whose keys are not identifiers can be reached through the fields map,
// as in fields["plugin-name"]. The variable origin holds the record's origin as
// a string. Fields that a record does not have are nil.
type Query struct {
	Expr  string   `help:"Boolean expression that selects records." required:"" short:"e"`
	Files []string `arg:"" help:"Source files or '-' for stdin." name:"file" optional:""`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context, g *Globals) error {
	program, err := compileQuery(q.Expr)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	w := rfc822.NewWriter(g.Stdout)
	for _, name := range filesOrStdin(q.Files) {
		err := g.forEachRecord(ctx, name, func(rec *rfc822.Record) error {
			origin := g.origin(rec.Origin())
			ok, err := matchQuery(program, origin, rec.Data())
			if err != nil {
				return fmt.Errorf("%v: %w", origin, err)
			}
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(g.Stdout, "# %v\n", origin); err != nil {
				return err
			}
			return w.WriteRecord(rec)
		})
		if err != nil {
			return fmt.Errorf("query: %s", g.describeError(name, err))
		}
	}
	return nil
}

func compileQuery(source string) (*vm.Program, error) {
	return expr.Compile(source,
		expr.Env(map[string]any{
			"fields": map[string]string{},
			"origin": "",
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
}

func matchQuery(program *vm.Program, origin rfc822.Origin, data rfc822.Fields) (bool, error) {
	env := make(map[string]any, len(data)+2)
	for _, f := range data {
		env[f.Key] = f.Value
	}
	env["fields"] = data.Map()
	env["origin"] = origin.String()
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}
