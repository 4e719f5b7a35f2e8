// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongocore

import (
	"fmt"
	"math"
	"strconv"
)

// Type identifies the kind of data held by a Value. The numeric values
// match the BSON element type bytes so that the wire layer can map
// between the two without a table.
type Type byte

// The value types a response document can carry.
const (
	TypeDouble           Type = 0x01
	TypeString           Type = 0x02
	TypeEmbeddedDocument Type = 0x03
	TypeArray            Type = 0x04
	TypeBoolean          Type = 0x08
	TypeNull             Type = 0x0A
	TypeInt32            Type = 0x10
	TypeInt64            Type = 0x12
)

func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeEmbeddedDocument:
		return "embedded document"
	case TypeArray:
		return "array"
	case TypeBoolean:
		return "boolean"
	case TypeNull:
		return "null"
	case TypeInt32:
		return "32-bit integer"
	case TypeInt64:
		return "64-bit integer"
	default:
		return "invalid type " + strconv.Itoa(int(t))
	}
}

// Value represents a single typed value held by an Element or an
// Array. Values are created with the VC constructors.
type Value struct {
	t         Type
	primitive any
}

// Type returns the type of the value. A nil value reports TypeNull.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

func (v *Value) typeError(want Type) error {
	return &ElementTypeError{Method: "Value." + want.String(), Type: v.Type()}
}

// Interface returns the Go representation of the value: float64,
// string, *Document, *Array, bool, nil, int32 or int64.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	return v.primitive
}

// Double returns the float64 held by the value, panicking when the
// value is not a double.
func (v *Value) Double() float64 {
	f, ok := v.DoubleOK()
	if !ok {
		panic(v.typeError(TypeDouble))
	}
	return f
}

// DoubleOK is the same as Double, but returns false instead of panicking.
func (v *Value) DoubleOK() (float64, bool) {
	if v.Type() != TypeDouble {
		return 0, false
	}
	return v.primitive.(float64), true
}

// StringValue returns the string held by the value. It panics if the
// value is not a string.
func (v *Value) StringValue() string {
	s, ok := v.StringValueOK()
	if !ok {
		panic(v.typeError(TypeString))
	}
	return s
}

// StringValueOK is the same as StringValue, but returns false instead
// of panicking.
func (v *Value) StringValueOK() (string, bool) {
	if v.Type() != TypeString {
		return "", false
	}
	return v.primitive.(string), true
}

// MutableDocument returns the embedded document held by the value.
func (v *Value) MutableDocument() *Document {
	d, ok := v.MutableDocumentOK()
	if !ok {
		panic(v.typeError(TypeEmbeddedDocument))
	}
	return d
}

// MutableDocumentOK is the same as MutableDocument, but returns false
// instead of panicking.
func (v *Value) MutableDocumentOK() (*Document, bool) {
	if v.Type() != TypeEmbeddedDocument {
		return nil, false
	}
	return v.primitive.(*Document), true
}

// MutableArray returns the array held by the value.
func (v *Value) MutableArray() *Array {
	a, ok := v.MutableArrayOK()
	if !ok {
		panic(v.typeError(TypeArray))
	}
	return a
}

// MutableArrayOK is the same as MutableArray, but returns false
// instead of panicking.
func (v *Value) MutableArrayOK() (*Array, bool) {
	if v.Type() != TypeArray {
		return nil, false
	}
	return v.primitive.(*Array), true
}

// Boolean returns the bool held by the value.
func (v *Value) Boolean() bool {
	b, ok := v.BooleanOK()
	if !ok {
		panic(v.typeError(TypeBoolean))
	}
	return b
}

// BooleanOK is the same as Boolean, but returns false instead of panicking.
func (v *Value) BooleanOK() (bool, bool) {
	if v.Type() != TypeBoolean {
		return false, false
	}
	return v.primitive.(bool), true
}

// Int32 returns the int32 held by the value.
func (v *Value) Int32() int32 {
	i, ok := v.Int32OK()
	if !ok {
		panic(v.typeError(TypeInt32))
	}
	return i
}

// Int32OK is the same as Int32, but returns false instead of panicking.
func (v *Value) Int32OK() (int32, bool) {
	if v.Type() != TypeInt32 {
		return 0, false
	}
	return v.primitive.(int32), true
}

// Int64 returns the int64 held by the value.
func (v *Value) Int64() int64 {
	i, ok := v.Int64OK()
	if !ok {
		panic(v.typeError(TypeInt64))
	}
	return i
}

// Int64OK is the same as Int64, but returns false instead of panicking.
func (v *Value) Int64OK() (int64, bool) {
	if v.Type() != TypeInt64 {
		return 0, false
	}
	return v.primitive.(int64), true
}

// IsNull reports whether the value is absent or an explicit null.
func (v *Value) IsNull() bool { return v == nil || v.t == TypeNull }

// IsNumber reports whether the value is one of the numeric types.
func (v *Value) IsNumber() bool {
	switch v.Type() {
	case TypeDouble, TypeInt32, TypeInt64:
		return true
	default:
		return false
	}
}

// Int returns the integer held by a numeric value, panicking for
// non-numeric values.
func (v *Value) Int() int {
	i, ok := v.IntOK()
	if !ok {
		panic(v.typeError(TypeInt64))
	}
	return i
}

// IntOK is permissive about the integer width of the value: int32 and
// int64 values convert directly, doubles convert when they hold a
// whole number that fits in an int.
func (v *Value) IntOK() (int, bool) {
	switch v.Type() {
	case TypeInt32:
		return int(v.primitive.(int32)), true
	case TypeInt64:
		return int(v.primitive.(int64)), true
	case TypeDouble:
		f := v.primitive.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f >= 1<<63 || f < -(1<<63) {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// Float64OK converts any numeric value to a float64.
func (v *Value) Float64OK() (float64, bool) {
	switch v.Type() {
	case TypeDouble:
		return v.primitive.(float64), true
	case TypeInt32:
		return float64(v.primitive.(int32)), true
	case TypeInt64:
		return float64(v.primitive.(int64)), true
	default:
		return 0, false
	}
}

// IsEmpty reports whether the value holds its type's zero value: null,
// the empty string, zero, false or an empty document or array.
func (v *Value) IsEmpty() bool {
	switch v.Type() {
	case TypeNull:
		return true
	case TypeString:
		return v.primitive.(string) == ""
	case TypeBoolean:
		return !v.primitive.(bool)
	case TypeDouble:
		return v.primitive.(float64) == 0
	case TypeInt32:
		return v.primitive.(int32) == 0
	case TypeInt64:
		return v.primitive.(int64) == 0
	case TypeEmbeddedDocument:
		return v.primitive.(*Document).Len() == 0
	case TypeArray:
		return v.primitive.(*Array).Len() == 0
	default:
		return true
	}
}

// Equal compares two values, recursing into documents and arrays.
func (v *Value) Equal(v2 *Value) bool {
	if v == nil || v2 == nil {
		return v.IsNull() && v2.IsNull()
	}

	if v.t != v2.t {
		return false
	}

	switch v.t {
	case TypeEmbeddedDocument:
		return v.primitive.(*Document).Equal(v2.primitive.(*Document))
	case TypeArray:
		return v.primitive.(*Array).Equal(v2.primitive.(*Array))
	case TypeDouble:
		a, b := v.primitive.(float64), v2.primitive.(float64)
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	default:
		return v.primitive == v2.primitive
	}
}

// Copy returns a deep copy of the value.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}

	switch v.t {
	case TypeEmbeddedDocument:
		return VC.Document(v.primitive.(*Document).DeepCopy())
	case TypeArray:
		return VC.Array(v.primitive.(*Array).DeepCopy())
	default:
		return &Value{t: v.t, primitive: v.primitive}
	}
}

func (v *Value) String() string {
	switch v.Type() {
	case TypeNull:
		return "null"
	case TypeString:
		return strconv.Quote(v.primitive.(string))
	case TypeDouble:
		return strconv.FormatFloat(v.primitive.(float64), 'g', -1, 64)
	default:
		return fmt.Sprint(v.primitive)
	}
}
