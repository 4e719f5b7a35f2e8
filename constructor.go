// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongocore

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// EC is a convenience variable provided for access to the ElementConstructor methods.
var EC ElementConstructor
var ECE ElementConstructorError

// VC is a convenience variable provided for access to the ValueConstructor methods.
var VC ValueConstructor

// ElementConstructor is used as a namespace for document element constructor functions.
type ElementConstructor struct{}
type ElementConstructorError struct{}

// ValueConstructor is used as a namespace for value constructor functions.
type ValueConstructor struct{}

// Interface will attempt to turn the provided key and value into an Element.
// Common scalar types, maps, slices, documents and values are supported.
//
// If the value cannot be converted, a null Element is constructed with the
// key. This method will never return a nil *Element. If an error turning the
// value into an Element is desired, use ECE.Interface.
func (ElementConstructor) Interface(key string, value any) *Element {
	elem, err := ECE.Interface(key, value)
	if err != nil || elem == nil {
		return EC.Null(key)
	}
	return elem
}

// Interface does what EC.Interface does, but returns an error when it
// cannot properly convert a value into an *Element.
func (ElementConstructorError) Interface(key string, value any) (*Element, error) {
	switch t := value.(type) {
	case nil:
		return EC.Null(key), nil
	case bool:
		return EC.Boolean(key, t), nil
	case int8:
		return EC.Int32(key, int32(t)), nil
	case int16:
		return EC.Int32(key, int32(t)), nil
	case int32:
		return EC.Int32(key, t), nil
	case int64:
		return EC.Int64(key, t), nil
	case int:
		return EC.Int(key, t), nil
	case uint8:
		return EC.Int32(key, int32(t)), nil
	case uint16:
		return EC.Int32(key, int32(t)), nil
	case uint32:
		if t <= math.MaxInt32 {
			return EC.Int32(key, int32(t)), nil
		}
		return EC.Int64(key, int64(t)), nil
	case uint:
		return uintElement(key, uint64(t))
	case uint64:
		return uintElement(key, t)
	case float32:
		return EC.Double(key, float64(t)), nil
	case float64:
		return EC.Double(key, t), nil
	case string:
		return EC.String(key, t), nil
	case *Element:
		if t == nil {
			return nil, ErrNilElement
		}
		return EC.Value(key, t.Value()), nil
	case *Value:
		return EC.Value(key, t), nil
	case *Document:
		if t == nil {
			return EC.Null(key), nil
		}
		return EC.SubDocument(key, t), nil
	case *Array:
		if t == nil {
			return EC.Null(key), nil
		}
		return EC.Array(key, t), nil
	case []*Element:
		return EC.SubDocumentFromElements(key, t...), nil
	case []*Value:
		return EC.ArrayFromValues(key, t...), nil
	case map[string]any:
		doc, err := DCE.MapInterface(t)
		if err != nil {
			return nil, errors.Wrapf(err, "converting map for key %q", key)
		}
		return EC.SubDocument(key, doc), nil
	case map[string]string:
		return EC.SubDocument(key, DC.MapString(t)), nil
	case []any:
		return ECE.SliceInterface(key, t)
	case []string:
		return EC.SliceString(key, t), nil
	case []int:
		return EC.SliceInt(key, t), nil
	case []*Document:
		return EC.SliceDocument(key, t), nil
	default:
		return nil, fmt.Errorf("cannot create element for type %T", value)
	}
}

func uintElement(key string, t uint64) (*Element, error) {
	switch {
	case t <= math.MaxInt32:
		return EC.Int32(key, int32(t)), nil
	case t > math.MaxInt64:
		return nil, fmt.Errorf("documents only have signed integer types and %d overflows an int64", t)
	default:
		return EC.Int64(key, int64(t)), nil
	}
}

// Double creates a double element with the given key and value.
func (ElementConstructor) Double(key string, f float64) *Element {
	return EC.Value(key, VC.Double(f))
}

// String creates a string element with the given key and value.
func (ElementConstructor) String(key string, val string) *Element {
	return EC.Value(key, VC.String(val))
}

// SubDocument creates an embedded document element with the given key
// and value. A nil document produces an empty embedded document.
func (ElementConstructor) SubDocument(key string, d *Document) *Element {
	return EC.Value(key, VC.Document(d))
}

// SubDocumentFromElements creates an embedded document element with the
// given key. The elements passed as arguments will be used to create a
// new document as the value.
func (ElementConstructor) SubDocumentFromElements(key string, elems ...*Element) *Element {
	return EC.SubDocument(key, DC.Elements(elems...))
}

// Array creates an array element with the given key and value.
func (ElementConstructor) Array(key string, a *Array) *Element {
	return EC.Value(key, VC.Array(a))
}

// ArrayFromValues creates an array element with the given key. The
// values passed as arguments are the contents of the array.
func (ElementConstructor) ArrayFromValues(key string, values ...*Value) *Element {
	return EC.Array(key, NewArray(values...))
}

// Boolean creates a boolean element with the given key and value.
func (ElementConstructor) Boolean(key string, b bool) *Element {
	return EC.Value(key, VC.Boolean(b))
}

// Null creates a null element with the given key.
func (ElementConstructor) Null(key string) *Element {
	return EC.Value(key, VC.Null())
}

// Int32 creates a int32 element with the given key and value.
func (ElementConstructor) Int32(key string, i int32) *Element {
	return EC.Value(key, VC.Int32(i))
}

// Int64 creates a int64 element with the given key and value.
func (ElementConstructor) Int64(key string, i int64) *Element {
	return EC.Value(key, VC.Int64(i))
}

// Value constructs an element using the underlying value. A nil value
// is stored as null.
func (ElementConstructor) Value(key string, value *Value) *Element {
	if value == nil {
		value = VC.Null()
	}
	return &Element{key: key, value: value}
}

// Double creates and returns a double Value.
func (ValueConstructor) Double(f float64) *Value {
	return &Value{t: TypeDouble, primitive: f}
}

// String creates and returns a string Value.
func (ValueConstructor) String(val string) *Value {
	return &Value{t: TypeString, primitive: val}
}

// Document creates and returns an embedded document Value.
func (ValueConstructor) Document(d *Document) *Value {
	if d == nil {
		d = DC.New()
	}
	return &Value{t: TypeEmbeddedDocument, primitive: d}
}

// DocumentFromElements creates and returns an embedded document Value
// holding the elements.
func (ValueConstructor) DocumentFromElements(elems ...*Element) *Value {
	return VC.Document(DC.Elements(elems...))
}

// Array creates and returns an array Value.
func (ValueConstructor) Array(a *Array) *Value {
	if a == nil {
		a = MakeArray(0)
	}
	return &Value{t: TypeArray, primitive: a}
}

// ArrayFromValues creates and returns an array Value holding the values.
func (ValueConstructor) ArrayFromValues(values ...*Value) *Value {
	return VC.Array(NewArray(values...))
}

// Boolean creates and returns a boolean Value.
func (ValueConstructor) Boolean(b bool) *Value {
	return &Value{t: TypeBoolean, primitive: b}
}

// Null creates and returns a null Value.
func (ValueConstructor) Null() *Value {
	return &Value{t: TypeNull}
}

// Int32 creates and returns an int32 Value.
func (ValueConstructor) Int32(i int32) *Value {
	return &Value{t: TypeInt32, primitive: i}
}

// Int64 creates and returns an int64 Value.
func (ValueConstructor) Int64(i int64) *Value {
	return &Value{t: TypeInt64, primitive: i}
}
