// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package rfc822 provides a streaming parser and serializer for a restricted
dialect of RFC 822-style records.

The parser tracks where every record came from (see Origin), so that callers
can point users at the exact lines of a malformed or otherwise problematic
record.

Syntax

A file is a sequence of records separated by blank lines. A line that contains
only whitespace is a blank line. Any number of blank lines may separate two
records. A record is a sequence of fields:

	key: value
	other-key: other value

The key is everything before the first colon (':') with surrounding whitespace
removed. The value is everything after the colon. Keys must be unique within a
record.

A line starting with a single space continues the value of the most recent key
in the record. Exactly one leading space is removed from a continuation line.
The first line of the value may be empty:

	description:
	 First line.
	 Second line.

Continuation lines cannot express an empty line, since a blank line separates
records. A continuation line consisting of a single dot ('.') after the
leading space stands for an empty line, and a line consisting of two dots
stands for a line with a single dot:

	description:
	 First paragraph.
	 .
	 Second paragraph.

A line starting with a hash ('#') is a comment and is ignored. Comments must
start in the first column; there are no inline comments.

Normalization

Each value is stored twice in a Record: as the raw text collected from the
input and in normalized form. See Normalize for the exact transformation.
*/
package rfc822
