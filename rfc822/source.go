// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import (
	"path/filepath"
	"strings"
)

// A Source describes where parsed text came from. The Source implementations
// in this package are comparable values: two sources are equal iff they
// compare equal with ==.
type Source interface {
	// String returns the source in a form suitable for messages.
	String() string

	// RelativeTo returns a source whose location is relative to the given
	// base directory. Sources without a location return themselves.
	RelativeTo(baseDir string) Source
}

// UnknownSource is a Source for text of unknown provenance.
// All UnknownSource values are equal.
type UnknownSource struct{}

// String returns "???".
func (UnknownSource) String() string {
	return "???"
}

// RelativeTo returns the source unchanged.
func (src UnknownSource) RelativeTo(baseDir string) Source {
	return src
}

// FileSource is a Source for text read from a file.
type FileSource struct {
	Filename string
}

// String returns the filename.
func (src FileSource) String() string {
	return src.Filename
}

// RelativeTo returns a FileSource whose filename is a path relative to baseDir.
func (src FileSource) RelativeTo(baseDir string) Source {
	return FileSource{Filename: relativePath(src.Filename, baseDir)}
}

// GoFileSource is a Source for a location inside a Go source file.
// It behaves like FileSource, but is a distinct type so that reports can tell
// records defined in code apart from records read from data files. A
// GoFileSource is never equal to a FileSource, even with the same filename.
type GoFileSource struct {
	Filename string
}

// String returns the filename.
func (src GoFileSource) String() string {
	return src.Filename
}

// RelativeTo returns a GoFileSource whose filename is a path relative to
// baseDir.
func (src GoFileSource) RelativeTo(baseDir string) Source {
	return GoFileSource{Filename: relativePath(src.Filename, baseDir)}
}

// relativePath returns path relative to baseDir. Both are made absolute first,
// so relative inputs are interpreted against the working directory. If no
// relative path can be computed, path is returned as-is.
func relativePath(path, baseDir string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return path
	}
	return rel
}

// CompareSources returns an integer comparing two sources. The result is 0 if
// a == b, negative if a < b, and positive if a > b.
//
// Sources of the same type are ordered by filename. Sources of different types
// are ordered by kind: nil, then UnknownSource, FileSource, GoFileSource, and
// finally implementations from other packages, which are ordered among
// themselves by their String method.
func CompareSources(a, b Source) int {
	ra, rb := sourceRank(a), sourceRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a := a.(type) {
	case nil, UnknownSource:
		return 0
	case FileSource:
		return strings.Compare(a.Filename, b.(FileSource).Filename)
	case GoFileSource:
		return strings.Compare(a.Filename, b.(GoFileSource).Filename)
	default:
		return strings.Compare(a.String(), b.String())
	}
}

func sourceRank(src Source) int {
	switch src.(type) {
	case nil:
		return 0
	case UnknownSource:
		return 1
	case FileSource:
		return 2
	case GoFileSource:
		return 3
	default:
		return 4
	}
}

// SourceOf infers the Source of a stream. If r has a Name method that returns
// a non-empty string (like *os.File), SourceOf returns a FileSource with that
// name. Otherwise, it returns UnknownSource.
func SourceOf(r any) Source {
	if name := streamName(r); name != "" {
		return FileSource{Filename: name}
	}
	return UnknownSource{}
}

func streamName(r any) string {
	n, ok := r.(interface{ Name() string })
	if !ok {
		return ""
	}
	return n.Name()
}
