// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"testing"

	"github.com/yourbase/recfile/rfc822"
)

func TestMatchQuery(t *testing.T) {
	origin := rfc822.Origin{
		Source:    rfc822.FileSource{Filename: "units/jobs.txt"},
		LineStart: 4,
		LineEnd:   9,
	}
	data := rfc822.Fields{
		{Key: "id", Value: "audio/playback"},
		{Key: "plugin", Value: "manual"},
		{Key: "estimated-duration", Value: "30"},
	}
	tests := []struct {
		expr string
		want bool
	}{
		{`plugin == "manual"`, true},
		{`plugin == "shell"`, false},
		{`id startsWith "audio/"`, true},
		{`fields["estimated-duration"] == "30"`, true},
		{`origin == "units/jobs.txt:4-9"`, true},
		{`requires == nil`, true},
		{`plugin == "manual" && fields["user"] == "root"`, false},
	}
	for _, test := range tests {
		program, err := compileQuery(test.expr)
		if err != nil {
			t.Errorf("compileQuery(%q): %v", test.expr, err)
			continue
		}
		got, err := matchQuery(program, origin, data)
		if err != nil {
			t.Errorf("matchQuery(%q): %v", test.expr, err)
			continue
		}
		if got != test.want {
			t.Errorf("matchQuery(%q) = %t; want %t", test.expr, got, test.want)
		}
	}
}

func TestCompileQueryErrors(t *testing.T) {
	for _, expr := range []string{`plugin ==`, `"not a bool"`} {
		if _, err := compileQuery(expr); err == nil {
			t.Errorf("compileQuery(%q) did not return an error", expr)
		}
	}
}
