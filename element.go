// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongocore

import "strconv"

// Element is a key/value pair in a Document.
type Element struct {
	key   string
	value *Value
}

// Key returns the key of the element.
func (e *Element) Key() string { return e.key }

// Value returns the value of the element. The value is never nil for
// elements built with the EC constructors.
func (e *Element) Value() *Value { return e.value }

// Equal compares both the key and the value of two elements.
func (e *Element) Equal(e2 *Element) bool {
	if e == nil || e2 == nil {
		return e == e2
	}

	return e.key == e2.key && e.value.Equal(e2.value)
}

// Copy returns a deep copy of the element.
func (e *Element) Copy() *Element {
	if e == nil {
		return nil
	}
	return &Element{key: e.key, value: e.value.Copy()}
}

func (e *Element) String() string {
	return strconv.Quote(e.key) + ": " + e.value.String()
}
