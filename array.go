package mongocore

import (
	"iter"
	"strconv"

	"github.com/pkg/errors"
)

// Array is an ordered list of values, the document model's
// representation of a BSON array.
type Array struct {
	values []*Value
}

// MakeArray creates an empty array with capacity for n values.
func MakeArray(n int) *Array { return &Array{values: make([]*Value, 0, n)} }

// NewArray creates an array holding the given values.
func NewArray(values ...*Value) *Array { return MakeArray(len(values)).Append(values...) }

// Len returns the number of values in the array.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Append adds values to the end of the array. Nil values are stored as
// nulls.
func (a *Array) Append(values ...*Value) *Array {
	for _, v := range values {
		if v == nil {
			v = VC.Null()
		}
		a.values = append(a.values, v)
	}
	return a
}

// Lookup returns the value at the given index.
func (a *Array) Lookup(index uint) (*Value, error) {
	if index >= uint(a.Len()) {
		return nil, errors.Wrapf(ErrOutOfBounds, "index %d of array with length %d", index, a.Len())
	}
	return a.values[index], nil
}

// Iterator returns a sequence over the values of the array.
func (a *Array) Iterator() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		if a == nil {
			return
		}
		for _, v := range a.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Interface returns a slice of typed values for every value in the
// array using the Value.Interface() method to export them.
func (a *Array) Interface() []any {
	out := make([]any, 0, a.Len())
	for v := range a.Iterator() {
		out = append(out, v.Interface())
	}

	return out
}

// Equal compares two arrays value by value.
func (a *Array) Equal(a2 *Array) bool {
	if a.Len() != a2.Len() {
		return false
	}
	for idx := range a.Len() {
		if !a.values[idx].Equal(a2.values[idx]) {
			return false
		}
	}
	return true
}

// DeepCopy copies the array and every value in it.
func (a *Array) DeepCopy() *Array {
	if a == nil {
		return nil
	}
	out := MakeArray(a.Len())
	for _, v := range a.values {
		out.values = append(out.values, v.Copy())
	}
	return out
}

func (a *Array) findElementForStrKey(keys ...string) *Element {
	idx, err := strconv.ParseUint(keys[0], 10, 0)
	if err != nil {
		return nil
	}

	val, err := a.Lookup(uint(idx))
	if err != nil {
		return nil
	}

	if len(keys) == 1 {
		return &Element{key: keys[0], value: val}
	}

	if sd, ok := val.MutableDocumentOK(); ok {
		elem, err := sd.Search(keys[1:]...)
		if err != nil {
			return nil
		}
		return elem
	}

	if ar, ok := val.MutableArrayOK(); ok {
		return ar.findElementForStrKey(keys[1:]...)
	}

	return nil
}

func (a *Array) String() string {
	buf := getBuf(0)
	defer putBuf(buf)

	buf.WriteByte('[')
	for idx, v := range a.values {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(v.String())
	}
	buf.WriteByte(']')

	return buf.String()
}
