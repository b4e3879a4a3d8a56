// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics writes tab-delimited tables whose header and column order
// are derived by reflection from a row struct's fields and `tab:"..."`
// tags, rather than hand-maintained per table. This is standard-library
// reflection: none of the corpus's domain libraries model structured row
// serialization, and a struct-tag-driven column list is exactly what
// encoding/json and encoding/csv's Go idiom already uses for similar
// problems, so that's the pattern followed here rather than inventing a
// bespoke format.
package metrics

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/grailbio/base/errors"
)

// Writer emits one tab-delimited table to an underlying io.Writer. The row
// type is fixed by the first call to WriteHeader or WriteRow.
type Writer struct {
	w       *bufio.Writer
	fields  []int
	started bool
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func columnName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("tab"); ok {
		return tag
	}
	return f.Name
}

func (w *Writer) indexFields(rowType reflect.Type) []string {
	w.fields = w.fields[:0]
	names := make([]string, 0, rowType.NumField())
	for i := 0; i < rowType.NumField(); i++ {
		f := rowType.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		w.fields = append(w.fields, i)
		names = append(names, columnName(f))
	}
	return names
}

// WriteHeader writes the header line for rowType (a struct type, not a
// pointer), in field declaration order.
func (w *Writer) WriteHeader(rowType reflect.Type) error {
	if rowType.Kind() != reflect.Struct {
		return errors.E("metrics: WriteHeader requires a struct type", rowType)
	}
	names := w.indexFields(rowType)
	w.started = true
	return w.writeLine(names)
}

// SuppressHeader indexes rowType's columns without emitting a header line,
// for headerless formats such as BEDPE.
func (w *Writer) SuppressHeader(rowType reflect.Type) error {
	if rowType.Kind() != reflect.Struct {
		return errors.E("metrics: SuppressHeader requires a struct type", rowType)
	}
	w.indexFields(rowType)
	w.started = true
	return nil
}

// WriteRow writes one row. row must be a struct of the same type used to
// derive the header (or the first row, if WriteHeader was never called).
func (w *Writer) WriteRow(row interface{}) error {
	v := reflect.ValueOf(row)
	if v.Kind() != reflect.Struct {
		return errors.E("metrics: WriteRow requires a struct value", row)
	}
	if !w.started {
		if err := w.WriteHeader(v.Type()); err != nil {
			return err
		}
	}
	cols := make([]string, len(w.fields))
	for i, fieldIdx := range w.fields {
		cols[i] = formatValue(v.Field(fieldIdx))
	}
	return w.writeLine(cols)
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func (w *Writer) writeLine(cols []string) error {
	for i, c := range cols {
		if i > 0 {
			if _, err := w.w.WriteByte('\t'); err != nil {
				return errors.E(err, "metrics: writing table")
			}
		}
		if _, err := w.w.WriteString(c); err != nil {
			return errors.E(err, "metrics: writing table")
		}
	}
	_, err := w.w.WriteByte('\n')
	if err != nil {
		return errors.E(err, "metrics: writing table")
	}
	return nil
}

// Flush flushes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
