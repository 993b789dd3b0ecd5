// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import "fmt"

// SyntaxError is returned by a Reader when it encounters malformed input.
// SyntaxErrors are comparable with ==.
type SyntaxError struct {
	// Filename is the name of the stream being parsed or empty if unknown.
	Filename string
	// Line is the 1-based line number of the offending line.
	Line int
	// Msg describes the problem.
	Msg string
	// Key is the repeated key for duplicate key errors and empty otherwise.
	Key string
}

func (e *SyntaxError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Msg)
}
