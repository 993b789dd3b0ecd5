// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822

import (
	"bytes"
	"io"
	"strings"
)

// A Field is a single key/value pair of a record.
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered mapping of keys to values. Keys are unique.
type Fields []Field

// Lookup returns the value associated with the given key and whether the key
// is present.
func (f Fields) Lookup(key string) (_ string, ok bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Get returns the value associated with the given key or the empty string if
// the key is not present.
func (f Fields) Get(key string) string {
	v, _ := f.Lookup(key)
	return v
}

// Keys returns the keys in order.
func (f Fields) Keys() []string {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for _, field := range f {
		keys = append(keys, field.Key)
	}
	return keys
}

// Map returns the fields as a Go map.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		m[field.Key] = field.Value
	}
	return m
}

// A Record is a set of fields along with where they came from. Records
// produced by a Reader must not be modified.
type Record struct {
	data    Fields
	rawData Fields
	origin  Origin
}

// NewRecord returns a record with the given normalized data and origin.
// The raw data of the record is the same as its normalized data.
func NewRecord(data Fields, origin Origin) *Record {
	return &Record{
		data:    data,
		rawData: data,
		origin:  origin,
	}
}

// NewRecordHere returns a record with the given normalized data whose origin
// is the line of Go code that called NewRecordHere.
func NewRecordHere(data Fields) *Record {
	return NewRecord(data, CallerOrigin(1))
}

// Data returns the normalized fields of the record.
func (r *Record) Data() Fields {
	return r.data
}

// RawData returns the fields of the record as they appeared in the input,
// before normalization. The keys are the same as the keys in Data.
func (r *Record) RawData() Fields {
	return r.rawData
}

// Origin returns where the record came from.
func (r *Record) Origin() Origin {
	return r.origin
}

// Get returns the normalized value of the given key or the empty string if the
// record does not have the key.
func (r *Record) Get(key string) string {
	return r.data.Get(key)
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.data)
}

// Equal reports whether r and other have the same normalized data and the same
// origin. The order of fields and the raw data are not considered.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.origin != other.origin || len(r.data) != len(other.data) {
		return false
	}
	for _, field := range r.data {
		v, ok := other.data.Lookup(field.Key)
		if !ok || v != field.Value {
			return false
		}
	}
	return true
}

// String returns the record's origin followed by its keys, for debugging.
func (r *Record) String() string {
	sb := new(strings.Builder)
	sb.WriteString("rfc822.Record{")
	sb.WriteString(r.origin.String())
	for _, key := range r.data.Keys() {
		sb.WriteByte(' ')
		sb.WriteString(key)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Dump writes the record's normalized data to w, followed by a blank line.
func (r *Record) Dump(w io.Writer) error {
	return NewWriter(w).WriteRecord(r)
}

// MarshalText serializes the record's normalized data, followed by a blank
// line.
func (r *Record) MarshalText() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := r.Dump(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// recordBuilder accumulates the fields of a record during parsing.
type recordBuilder struct {
	data    Fields
	rawData Fields
	index   map[string]int
	origin  Origin

	key     string
	hasKey  bool
	pending []string
}

func newRecordBuilder(src Source) *recordBuilder {
	return &recordBuilder{
		index:  make(map[string]int),
		origin: Origin{Source: src},
	}
}

func (b *recordBuilder) rawValue(key string) (_ string, ok bool) {
	i, ok := b.index[key]
	if !ok {
		return "", false
	}
	return b.rawData[i].Value, true
}

// open starts a new pending key. value is the text after the colon.
func (b *recordBuilder) open(key, value string) {
	b.key = key
	b.hasKey = true
	b.pending = b.pending[:0]
	if strings.TrimSpace(value) != "" {
		b.pending = append(b.pending, value)
	}
}

func (b *recordBuilder) appendLine(line string) {
	b.pending = append(b.pending, line)
}

// commit finalizes the pending key, if any, and reports the committed field.
func (b *recordBuilder) commit() (_ Field, ok bool) {
	if !b.hasKey {
		return Field{}, false
	}
	raw := strings.Join(b.pending, "")
	field := Field{Key: b.key, Value: Normalize(raw)}
	b.index[b.key] = len(b.data)
	b.data = append(b.data, field)
	b.rawData = append(b.rawData, Field{Key: b.key, Value: raw})
	b.key = ""
	b.hasKey = false
	b.pending = b.pending[:0]
	return field, true
}

func (b *recordBuilder) empty() bool {
	return len(b.data) == 0
}

func (b *recordBuilder) record() *Record {
	return &Record{
		data:    b.data,
		rawData: b.rawData,
		origin:  b.origin,
	}
}
