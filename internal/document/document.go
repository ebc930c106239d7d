// Package document exposes the fields of arbitrary records by name.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Document is a read-only view of one record's fields
type Document struct {
	fields map[string]any
	folded map[string]string
}

// Accessor turns a record into a Document. FromObject is the default.
type Accessor func(record any) Document

// FromObject builds a Document from record. Maps with string keys are used
// as they are; anything else is read through its JSON encoding, so struct
// tags name the fields. Records that cannot be read yield an empty Document.
func FromObject(record any) Document {
	switch r := record.(type) {
	case nil:
		return Document{}
	case Document:
		return r
	case *Document:
		if r == nil {
			return Document{}
		}
		return *r
	case map[string]any:
		return newDocument(r)
	case map[string]string:
		fields := make(map[string]any, len(r))
		for k, v := range r {
			fields[k] = v
		}
		return newDocument(fields)
	}

	v := reflect.ValueOf(record)
	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String {
		fields := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}
		return newDocument(fields)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return Document{}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Document{}
	}
	return newDocument(fields)
}

func newDocument(fields map[string]any) Document {
	folded := make(map[string]string, len(fields))
	for k := range fields {
		lk := strings.ToLower(k)
		if _, ok := folded[lk]; !ok {
			folded[lk] = k
		}
	}
	return Document{fields: fields, folded: folded}
}

// Lookup returns the value of the named field. An exact match wins over a
// case-insensitive one.
func (d Document) Lookup(name string) (any, bool) {
	if v, ok := d.fields[name]; ok {
		return v, true
	}
	if k, ok := d.folded[strings.ToLower(name)]; ok {
		return d.fields[k], true
	}
	return nil, false
}

// Has reports whether the named field exists
func (d Document) Has(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

// GetString returns the named field formatted as text, or "" when the field
// is missing or null.
func (d Document) GetString(name string) string {
	v, ok := d.Lookup(name)
	if !ok {
		return ""
	}
	return Format(v)
}

// Len returns the number of fields
func (d Document) Len() int {
	return len(d.fields)
}

// Format renders a field value as display text
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	case map[string]any, []any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	default:
		return fmt.Sprint(x)
	}
}
