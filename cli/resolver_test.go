// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/yourbase/recfile/rfc822"
)

func TestLoadConfig(t *testing.T) {
	const file = "# defaults\n" +
		"log-level: debug\n" +
		"base_dir: /srv/old\n" +
		"\n" +
		"base-dir: /srv/new\n"
	resolver, err := loadConfig(strings.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"base-dir", "/srv/new"},
		{"verbose", nil},
	}
	for _, test := range tests {
		flag := &kong.Flag{Value: &kong.Value{Name: test.flag}}
		got, err := resolver.Resolve(nil, nil, flag)
		if err != nil {
			t.Errorf("Resolve(%q): %v", test.flag, err)
			continue
		}
		if got != test.want {
			t.Errorf("Resolve(%q) = %v; want %v", test.flag, got, test.want)
		}
	}
}

func TestLoadConfigSyntaxError(t *testing.T) {
	_, err := loadConfig(strings.NewReader("log-level: debug\nnot a setting\n"))
	var syntaxErr *rfc822.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("loadConfig(...) error = %v; want *rfc822.SyntaxError", err)
	}
	if syntaxErr.Line != 2 {
		t.Errorf("syntax error line = %d; want 2", syntaxErr.Line)
	}
}
