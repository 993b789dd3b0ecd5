// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import (
	"fmt"
	"runtime"
)

// An Origin locates a record within a source. Line numbers are 1-based;
// zero means the line is not known. Origins are comparable with ==.
type Origin struct {
	Source    Source
	LineStart int
	LineEnd   int
}

// String formats the origin as "source:start-end".
func (o Origin) String() string {
	return fmt.Sprintf("%v:%d-%d", o.Source, o.LineStart, o.LineEnd)
}

// RelativeTo returns a copy of o with its source relative to the given base
// directory. An Origin without a source is returned unchanged.
func (o Origin) RelativeTo(baseDir string) Origin {
	if o.Source == nil {
		return o
	}
	o.Source = o.Source.RelativeTo(baseDir)
	return o
}

// Compare returns an integer comparing two origins lexicographically by
// source (see CompareSources), start line, and end line. Unknown lines
// order before known lines.
func (o Origin) Compare(other Origin) int {
	if c := CompareSources(o.Source, other.Source); c != 0 {
		return c
	}
	if c := compareInts(o.LineStart, other.LineStart); c != 0 {
		return c
	}
	return compareInts(o.LineEnd, other.LineEnd)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CallerOrigin returns an Origin pointing at a line of Go code on the calling
// goroutine's stack. The argument skip is the number of stack frames to
// ascend, with 0 identifying the caller of CallerOrigin. If the information
// is not available, the origin has an UnknownSource.
func CallerOrigin(skip int) Origin {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{Source: UnknownSource{}}
	}
	return Origin{
		Source:    GoFileSource{Filename: file},
		LineStart: line,
		LineEnd:   line,
	}
}
