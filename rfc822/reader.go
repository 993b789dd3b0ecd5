// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"

	"zombiezen.com/go/log"
)

// ParseOptions holds optional parameters for NewReader and Parse.
type ParseOptions struct {
	// Source is attached to the origin of every record. If nil, the source is
	// inferred from the stream with SourceOf.
	Source Source

	// Filename is reported in syntax errors. If empty, the name of the stream
	// is used if it has one.
	Filename string
}

// A Reader reads records from a line-oriented text stream. A Reader must not be
// used from multiple goroutines concurrently.
type Reader struct {
	lines    lineSource
	source   Source
	filename string

	lineno int
	b      *recordBuilder
	err    error
}

// NewReader returns a Reader that reads records from r. Nil options are treated
// identically as passing the zero value.
//
// See the Syntax section in the package documentation for the format recognized
// by the Reader.
func NewReader(r io.Reader, opts *ParseOptions) *Reader {
	return newReader(&streamLines{r: bufio.NewReader(r)}, r, opts)
}

// NewLinesReader returns a Reader that reads records from a sequence of lines.
// Lines may include their terminating newline. A line without a newline is
// treated as if it ended in one.
func NewLinesReader(lines []string, opts *ParseOptions) *Reader {
	return newReader(&sliceLines{lines: lines}, nil, opts)
}

func newReader(lines lineSource, stream any, opts *ParseOptions) *Reader {
	if opts == nil {
		opts = new(ParseOptions)
	}
	r := &Reader{
		lines:    lines,
		source:   opts.Source,
		filename: opts.Filename,
	}
	if r.source == nil {
		r.source = SourceOf(stream)
	}
	if r.filename == "" {
		r.filename = streamName(stream)
	}
	r.b = newRecordBuilder(r.source)
	return r
}

// Next reads the next record. It returns io.EOF once all records have been
// read. If the input is malformed, Next returns a *SyntaxError. The record that
// was being read when the error occurred is discarded. After Next returns an
// error other than a Context error, it returns the same error on subsequent
// calls.
func (r *Reader) Next(ctx context.Context) (*Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for {
		line, err := r.lines.readLine()
		if err == io.EOF {
			r.err = io.EOF
			r.commit(ctx)
			if rec := r.yield(ctx); rec != nil {
				return rec, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			r.err = fmt.Errorf("read rfc822 record: line %d: %w", r.lineno+1, err)
			return nil, r.err
		}
		r.lineno++
		rec, err := r.step(ctx, foldCRLF(line))
		if err != nil {
			r.err = err
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
}

// All returns an iterator over the remaining records. Iteration stops after the
// first error, which is yielded with a nil record.
func (r *Reader) All(ctx context.Context) iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			rec, err := r.Next(ctx)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// step processes a single line and returns a record if the line completed one.
func (r *Reader) step(ctx context.Context, line string) (*Record, error) {
	log.Debugf(ctx, "rfc822: looking at line %d: %q", r.lineno, line)
	switch {
	case strings.HasPrefix(line, "#"):
		return nil, nil
	case strings.TrimSpace(line) == "":
		r.commit(ctx)
		return r.yield(ctx), nil
	case strings.HasPrefix(line, " "):
		if !r.b.hasKey {
			return nil, r.syntaxError("unexpected multi-line value")
		}
		// Only one space is removed: deeper indentation is part of the value.
		r.b.appendLine(line[1:])
		r.b.origin.LineEnd = r.lineno
		return nil, nil
	case strings.Contains(line, ":"):
		if r.b.origin.LineStart == 0 {
			r.b.origin.LineStart = r.lineno
		}
		r.commit(ctx)
		i := strings.IndexByte(line, ':')
		key := strings.TrimSpace(line[:i])
		value := strings.TrimLeftFunc(line[i+1:], unicode.IsSpace)
		if old, dup := r.b.rawValue(key); dup {
			err := r.syntaxError(fmt.Sprintf("duplicate key %q with old value %q and new value %q",
				key, strings.TrimSpace(old), strings.TrimSpace(value)))
			err.Key = key
			return nil, err
		}
		r.b.open(key, value)
		r.b.origin.LineEnd = r.lineno
		return nil, nil
	default:
		return nil, r.syntaxError(fmt.Sprintf("unexpected non-empty line: %q", strings.TrimSuffix(line, "\n")))
	}
}

func (r *Reader) commit(ctx context.Context) {
	if field, ok := r.b.commit(); ok {
		log.Debugf(ctx, "rfc822: committed %s=%q", field.Key, field.Value)
	}
}

// yield returns the record built so far, if it has any fields, and starts a
// new record.
func (r *Reader) yield(ctx context.Context) *Record {
	b := r.b
	r.b = newRecordBuilder(r.source)
	if b.empty() {
		return nil
	}
	rec := b.record()
	log.Debugf(ctx, "rfc822: yielding %v", rec)
	return rec
}

func (r *Reader) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{
		Filename: r.filename,
		Line:     r.lineno,
		Msg:      msg,
	}
}

// Parse reads all records from r. If Parse encounters an error, it returns the
// records read before the error along with the error.
func Parse(ctx context.Context, r io.Reader, opts *ParseOptions) ([]*Record, error) {
	return collect(ctx, NewReader(r, opts))
}

// ParseString reads all records from s.
func ParseString(ctx context.Context, s string, opts *ParseOptions) ([]*Record, error) {
	return collect(ctx, NewReader(strings.NewReader(s), opts))
}

func collect(ctx context.Context, r *Reader) ([]*Record, error) {
	var records []*Record
	for rec, err := range r.All(ctx) {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// lineSource produces lines including their terminators.
type lineSource interface {
	readLine() (string, error)
}

type streamLines struct {
	r   *bufio.Reader
	err error
}

func (s *streamLines) readLine() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.err = err
		if line != "" {
			return line, nil
		}
	}
	return line, err
}

type sliceLines struct {
	lines []string
}

func (s *sliceLines) readLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	return line, nil
}

func foldCRLF(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}
