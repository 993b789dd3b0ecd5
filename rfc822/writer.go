// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// A Writer serializes records. Fields are buffered until EndRecord is called.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a Writer that writes records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteField adds a field to the current record. Values containing newlines
// are written as multi-line values.
//
// A value line consisting of exactly two dots cannot be represented, since
// ".." is the escape for a single dot: it reads back as ".". WriteField
// returns an error for a value with a line ending in a carriage return,
// because readers treat "\r\n" as a line ending.
func (w *Writer) WriteField(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkValue(key, value); err != nil {
		return err
	}
	if !strings.Contains(value, "\n") {
		w.buf = append(w.buf, key...)
		w.buf = append(w.buf, ':')
		if value != "" {
			w.buf = append(w.buf, ' ')
			w.buf = appendEscapedLine(w.buf, value)
		}
		w.buf = append(w.buf, '\n')
		return nil
	}
	items := strings.Split(value, "\n")
	if items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	w.buf = appendList(w.buf, key, items)
	return nil
}

// WriteList adds a field to the current record whose value has one line per
// item.
func (w *Writer) WriteList(key string, items []string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	for _, item := range items {
		if strings.Contains(item, "\n") {
			return fmt.Errorf("write rfc822 field %q: list item contains a newline", key)
		}
		if err := checkValue(key, item); err != nil {
			return err
		}
	}
	w.buf = appendList(w.buf, key, items)
	return nil
}

// EndRecord terminates the current record with a blank line and writes it to
// the underlying writer.
func (w *Writer) EndRecord() error {
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	if err != nil {
		return fmt.Errorf("write rfc822 record: %w", err)
	}
	return nil
}

// WriteRecord writes the normalized data of r as a complete record.
func (w *Writer) WriteRecord(r *Record) error {
	for _, field := range r.Data() {
		if err := w.WriteField(field.Key, field.Value); err != nil {
			w.buf = w.buf[:0]
			return err
		}
	}
	return w.EndRecord()
}

func appendList(dst []byte, key string, items []string) []byte {
	dst = append(dst, key...)
	dst = append(dst, ":\n"...)
	for _, item := range items {
		dst = append(dst, ' ')
		dst = appendEscapedLine(dst, item)
		dst = append(dst, '\n')
	}
	return dst
}

// appendEscapedLine appends a line of a value, adding a dot to lines that
// would otherwise be blank or be mistaken for the empty line escape.
func appendEscapedLine(dst []byte, line string) []byte {
	dst = append(dst, line...)
	if body := strings.TrimLeftFunc(line, unicode.IsSpace); body == "" || body == "." {
		dst = append(dst, '.')
	}
	return dst
}

func checkValue(key, value string) error {
	if strings.HasSuffix(value, "\r") || strings.Contains(value, "\r\n") {
		return fmt.Errorf("write rfc822 field %q: line ends in carriage return", key)
	}
	return nil
}

func checkKey(key string) error {
	if !IsValidKey(key) {
		return fmt.Errorf("write rfc822 field: invalid key %q", key)
	}
	return nil
}

// IsValidKey reports whether a string can be used as a key in a record that
// can be read back.
func IsValidKey(key string) bool {
	if key == "" || strings.TrimSpace(key) != key {
		return false
	}
	if key[0] == '#' {
		return false
	}
	return !strings.ContainsAny(key, ":\n")
}
