// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jsondoc provides a small JSON document tree with insertion-ordered
// object fields. The standard library's map-backed objects sort keys
// alphabetically when marshaled; the documents thermo-cli emits carry a fixed
// field order that consumers pin in golden tests, so objects here remember
// the order fields were added in.
//
// A document is a tree of Node values: Object, Array, Number, or String.
// Rendering delegates to encoding/json for escaping and number formatting,
// so any Node can also be embedded directly in a json.Marshal call.
package jsondoc

import (
	"bytes"
	"encoding/json"
)

// Node is a value in a JSON document tree: an *Object, an *Array,
// a Number, or a String.
type Node interface {
	json.Marshaler
}

// Number is a JSON number. Integral values render without a decimal point.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// String is a JSON string.
type String string

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Object is a JSON object whose fields marshal in insertion order.
// Adding the same key twice is a caller bug and produces invalid JSON.
type Object struct {
	fields []field
}

type field struct {
	key   string
	value Node
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{}
}

// AddNumber appends a numeric field.
func (o *Object) AddNumber(key string, value float64) {
	o.fields = append(o.fields, field{key: key, value: Number(value)})
}

// AddInt appends a numeric field from an integer value.
func (o *Object) AddInt(key string, value int) {
	o.fields = append(o.fields, field{key: key, value: Number(value)})
}

// AddString appends a string field.
func (o *Object) AddString(key, value string) {
	o.fields = append(o.fields, field{key: key, value: String(value)})
}

// AddObject appends an empty nested object under key and returns it so the
// caller can populate it in place.
func (o *Object) AddObject(key string) *Object {
	child := NewObject()
	o.fields = append(o.fields, field{key: key, value: child})
	return child
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// Has reports whether a field with the given key exists.
func (o *Object) Has(key string) bool {
	for _, f := range o.fields {
		if f.key == key {
			return true
		}
	}
	return false
}

// MarshalJSON implements json.Marshaler, preserving field insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := f.value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Array is an ordered JSON array.
type Array struct {
	items []Node
}

// NewArray creates an empty array.
func NewArray() *Array {
	return &Array{}
}

// Append adds an element to the end of the array.
func (a *Array) Append(n Node) {
	a.items = append(a.items, n)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// MarshalJSON implements json.Marshaler. An empty array renders as [].
func (a *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, n := range a.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := n.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Render serializes a document. With formatted set, the output is a
// multi-line indented layout; otherwise it is a compact single line.
// Neither layout ends with a newline; that is the emitter's job.
func Render(n Node, formatted bool) ([]byte, error) {
	b, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if !formatted {
		return b, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
