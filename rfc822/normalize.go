// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import (
	"strings"
	"unicode"
)

// Normalize converts a raw field value into its logical value. It:
//
//  1. Removes one dot from every line that consists of optional whitespace
//     followed by "." or "..". A lone "." becomes an empty line and ".."
//     becomes ".". Longer runs of dots are kept as they are.
//  2. Replaces whitespace-only lines with empty lines and removes the longest
//     run of leading spaces and tabs shared by all remaining lines.
//  3. Trims leading and trailing whitespace from the result.
//
// Normalize is idempotent for values without lines of one or two dots.
func Normalize(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = unescapeDots(line)
	}
	dedent(lines)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func unescapeDots(line string) string {
	switch strings.TrimLeftFunc(line, unicode.IsSpace) {
	case ".", "..":
		return line[:len(line)-1]
	default:
		return line
	}
}

// dedent removes the common leading spaces and tabs from lines in place.
func dedent(lines []string) {
	margin, hasMargin := "", false
	for i, line := range lines {
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if len(indent) == len(line) {
			lines[i] = ""
			continue
		}
		if !hasMargin {
			margin, hasMargin = indent, true
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	if margin == "" {
		return
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
