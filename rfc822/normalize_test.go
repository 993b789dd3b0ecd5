// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"value", "value"},
		{"value\n", "value"},
		{"  value  \n", "value"},
		{".", ""},
		{"..", "."},
		{"...", "..."},
		{"  ....", "...."},
		{"Loading\n...\n", "Loading\n..."},
		{".x", ".x"},
		{"a.", "a."},
		{"one\n.\ntwo\n", "one\n\ntwo"},
		{"one\n  .\ntwo\n", "one\n\ntwo"},
		{"one\n..\ntwo\n", "one\n.\ntwo"},
		{"\n.\nfoo\n", "foo"},
		{"  a\n    b\n  c\n", "a\n  b\nc"},
		{"\ta\n\tb\n", "a\nb"},
		{"\ta\n  b\n", "a\n  b"},
		{"  a\n\n  b\n", "a\n\nb"},
		{"  a\n      \n  b\n", "a\n\nb"},
		{"  a\n  .\n  b\n", "a\n\nb"},
		{"    a\n  b\n", "a\nb"},
	}
	for _, test := range tests {
		if got := Normalize(test.raw); got != test.want {
			t.Errorf("Normalize(%q) = %q; want %q", test.raw, got, test.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	values := []string{
		"",
		"value",
		"  a\n    b\n  c\n",
		"first\n\n  second\nthird",
		"\t\tx\n\t\ty\n\t\t\tz",
		"a\n      \n  b\n",
		"trailing space   \n\n",
	}
	for _, v := range values {
		once := Normalize(v)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q; want %q", v, twice, once)
		}
	}
}
