package keypath

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedValue indicates a JSON token outside the translatable
// data model (numbers, booleans). Only strings, nulls, objects and
// arrays can appear in a translation file.
var ErrUnsupportedValue = errors.New("unsupported JSON value")

// Value is a JSON value restricted to the translatable data model:
// null, string, ordered object, or array. The concrete types are Null,
// String, *Array and *Object; traversal discriminates with a type switch.
type Value interface {
	isValue()
}

// Null is a missing translation leaf.
type Null struct{}

// String is a translatable text leaf.
type String string

// Array is an ordered list of values.
type Array struct {
	Items []Value
}

// Object is a string-keyed mapping that preserves insertion order.
type Object struct {
	keys []string
	vals map[string]Value
}

func (Null) isValue()    {}
func (String) isValue()  {}
func (*Array) isValue()  {}
func (*Object) isValue() {}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set stores a value under key, appending the key on first use.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get retrieves the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the object's keys in insertion order.
// The returned slice is owned by the object and must not be modified.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Decode parses JSON bytes into a Value, preserving object key order.
// Numbers and booleans are rejected with ErrUnsupportedValue.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key %v", ErrUnsupportedValue, keyTok)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			// Consume the closing brace.
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &Array{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Items = append(arr.Items, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrUnsupportedValue, t.String())
	case string:
		return String(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, tok)
	}
}

// MarshalJSON renders a null literal.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON renders a JSON string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON renders the array elements in order.
func (a *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range a.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON renders the object entries in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders v as compact JSON (flat output format).
func Encode(v Value) ([]byte, error) {
	return json.Marshal(v)
}

// EncodeIndent renders v with 4-space indentation (nested output format).
func EncodeIndent(v Value) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}
