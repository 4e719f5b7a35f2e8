// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongocore holds the in-memory document model for command
// replies and option documents. Subpackages classify replies (result)
// and build write options (options).
package mongocore

import (
	"fmt"
	"iter"
)

// Document is a mutable ordered map that represents a command reply or
// any nested document within one. The zero value is an empty document
// ready to use.
type Document struct {
	// The default behavior or Append, Prepend, and Set is to panic on the
	// insertion of a nil element. Setting IgnoreNilInsert to true will instead
	// silently ignore any nil parameters to these methods.
	IgnoreNilInsert bool
	elems           []*Element
}

// Copy makes a shallow copy of this document.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}

	doc := &Document{
		IgnoreNilInsert: d.IgnoreNilInsert,
		elems:           make([]*Element, len(d.elems), cap(d.elems)),
	}

	copy(doc.elems, d.elems)

	return doc
}

// DeepCopy copies the document and every value it holds, recursively.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}

	doc := &Document{
		IgnoreNilInsert: d.IgnoreNilInsert,
		elems:           make([]*Element, 0, len(d.elems)),
	}

	for _, elem := range d.elems {
		doc.elems = append(doc.elems, elem.Copy())
	}

	return doc
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.elems)
}

// Append adds each element to the end of the document, in order. If a nil element is passed
// as a parameter this method will panic. To change this behavior to silently
// ignore a nil element, set IgnoreNilInsert to true on the Document.
//
// If a nil element is inserted and this method panics, it does not remove the
// previously added elements.
func (d *Document) Append(elems ...*Element) *Document {
	for _, elem := range elems {
		if elem == nil {
			if d.IgnoreNilInsert {
				continue
			}
			panic(ErrNilElement)
		}

		d.elems = append(d.elems, elem)
	}

	return d
}

// AppendOmitEmpty adds all non-empty values to the document, and has
// no impact otherwise.
func (d *Document) AppendOmitEmpty(elems ...*Element) *Document {
	for _, elem := range elems {
		if elem == nil || elem.Value().IsEmpty() {
			continue
		}

		d.Append(elem)
	}
	return d
}

// Prepend adds each element to the beginning of the document, in
// order. Nil elements panic unless IgnoreNilInsert is set, in which
// case they are skipped; on panic the document is unchanged.
func (d *Document) Prepend(elems ...*Element) *Document {
	front := make([]*Element, 0, len(elems)+len(d.elems))
	for _, elem := range elems {
		if elem == nil {
			if d.IgnoreNilInsert {
				continue
			}
			panic(ErrNilElement)
		}
		front = append(front, elem)
	}

	d.elems = append(front, d.elems...)

	return d
}

// Set replaces an element of a document. If an element with a matching key is
// found, the element will be replaced with the one provided. If the document
// does not have an element with that key, the element is appended to the
// document instead. If a nil element is passed as a parameter this method will
// panic. To change this behavior to silently ignore a nil element, set
// IgnoreNilInsert to true on the Document.
func (d *Document) Set(elem *Element) *Document {
	if elem == nil {
		if d.IgnoreNilInsert {
			return d
		}

		panic(ErrNilElement)
	}

	for idx, e := range d.elems {
		if elem.Key() == e.Key() {
			d.elems[idx] = elem
			return d
		}
	}

	d.elems = append(d.elems, elem)

	return d
}

// Delete removes the keys from the Document. The deleted element is
// returned. If the key does not exist, then nil is returned and the delete is
// a no-op.
func (d *Document) Delete(key string) *Element {
	if d == nil {
		return nil
	}

	for idx := range d.elems {
		if d.elems[idx].Key() == key {
			elem := d.elems[idx]
			d.elems = append(d.elems[:idx], d.elems[idx+1:]...)
			return elem
		}
	}

	return nil
}

// ElementAt retrieves the element at the given index in a Document. It panics if the index is
// out-of-bounds.
func (d *Document) ElementAt(index uint) *Element {
	return d.elems[index]
}

// ElementAtOK is the same as ElementAt, but returns a boolean instead of panicking.
func (d *Document) ElementAtOK(index uint) (*Element, bool) {
	if index >= uint(d.Len()) {
		return nil, false
	}

	return d.ElementAt(index), true
}

// Elements returns the elements of the document in order. The slice is
// a copy; the elements are shared.
func (d *Document) Elements() []*Element {
	if d == nil {
		return nil
	}
	out := make([]*Element, len(d.elems))
	copy(out, d.elems)
	return out
}

// Iterator returns a sequence over the elements of the document.
func (d *Document) Iterator() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if d == nil {
			return
		}
		for _, elem := range d.elems {
			if !yield(elem) {
				return
			}
		}
	}
}

// Extend merges a second document into the document. It may produce a
// document with duplicate keys. Extending with a nil document, or
// extending a nil document, has no effect.
func (d *Document) Extend(d2 *Document) *Document {
	if d == nil || d2 == nil {
		return d
	}

	d.Append(d2.elems...)
	return d
}

// Reset clears a document so it can be reused. This method clears references
// to the underlying pointers to elements so they can be garbage collected.
func (d *Document) Reset() {
	for idx := range d.elems {
		d.elems[idx] = nil
	}

	d.elems = d.elems[:0]
}

// Search iterates through the keys in the document, descending into
// embedded documents and arrays for each additional key, and returns
// the matching element.
func (d *Document) Search(keys ...string) (*Element, error) {
	if d == nil || len(keys) == 0 {
		return nil, ErrElementNotFound
	}

	elem := d.findElemForKey(keys[0])
	if elem == nil {
		return nil, ErrElementNotFound
	}

	if len(keys) == 1 {
		return elem, nil
	}

	if sd, ok := elem.Value().MutableDocumentOK(); ok {
		return sd.Search(keys[1:]...)
	}
	if ar, ok := elem.Value().MutableArrayOK(); ok {
		if em := ar.findElementForStrKey(keys[1:]...); em != nil {
			return em, nil
		}
	}

	return nil, ErrElementNotFound
}

// Lookup returns the value at the path described by keys, or nil when
// no such element exists.
func (d *Document) Lookup(keys ...string) *Value {
	elem, err := d.Search(keys...)
	if err != nil {
		return nil
	}
	return elem.Value()
}

// LookupErr is the same as Lookup, but returns ErrElementNotFound for
// missing paths.
func (d *Document) LookupErr(keys ...string) (*Value, error) {
	elem, err := d.Search(keys...)
	if err != nil {
		return nil, err
	}
	return elem.Value(), nil
}

func (d *Document) findElemForKey(key string) *Element {
	for idx := range d.elems {
		if d.elems[idx].Key() == key {
			return d.elems[idx]
		}
	}
	return nil
}

// Equal compares two documents element by element, in order.
func (d *Document) Equal(d2 *Document) bool {
	if d.Len() != d2.Len() {
		return false
	}

	for idx := 0; idx < d.Len(); idx++ {
		if !d.elems[idx].Equal(d2.elems[idx]) {
			return false
		}
	}

	return true
}

// String implements the fmt.Stringer interface.
func (d *Document) String() string {
	buf := getBuf(0)
	defer putBuf(buf)

	buf.WriteByte('{')

	for idx, elem := range d.Elements() {
		if idx > 0 {
			buf.WriteString(", ")
		}

		fmt.Fprintf(buf, "%s", elem)
	}

	buf.WriteByte('}')

	return buf.String()
}
