package mongocore

import (
	"maps"
	"math"
	"slices"
)

// DC is a convenience variable provided for access to the DocumentConstructor methods.
var DC DocumentConstructor

// DCE is a convenience variable provided for access to the DocumentConstructorError methods.
var DCE DocumentConstructorError

// DocumentConstructor is used as a namespace for document constructor
// functions. Constructor methods may panic in cases when invalid
// input would cause them to error when using the DocumentConstructorError
type DocumentConstructor struct{}

// DocumentConstructorError is used as a namespace for document constructor
// functions. These methods return errors rather than panicing in the
// case of invalid input
type DocumentConstructorError struct{}

// New returns an empty document.
func (DocumentConstructor) New() *Document { return DC.Make(0) }

// Make returns a document with the underlying storage
// allocated as specified. Provides some efficiency when building
// larger documents iteratively.
func (DocumentConstructor) Make(n int) *Document { return &Document{elems: make([]*Element, 0, n)} }

// Elements returns a document initialized with the elements passed as
// arguments.
func (DocumentConstructor) Elements(elems ...*Element) *Document {
	return DC.Make(len(elems)).Append(elems...)
}

// ElementsOmitEmpty crates a document with all non-empty values.
func (DocumentConstructor) ElementsOmitEmpty(elems ...*Element) *Document {
	return DC.Make(len(elems)).AppendOmitEmpty(elems...)
}

// MapString builds a document from a string map. Keys are sorted so
// that the resulting document has a stable order.
func (DocumentConstructor) MapString(in map[string]string) *Document {
	out := DC.Make(len(in))

	for _, k := range slices.Sorted(maps.Keys(in)) {
		out.Append(EC.String(k, in[k]))
	}

	return out
}

// MapInterface builds a document from a map, with keys in sorted
// order. Values that cannot be converted become nulls.
func (DocumentConstructor) MapInterface(in map[string]any) *Document {
	out := DC.Make(len(in))
	for _, k := range slices.Sorted(maps.Keys(in)) {
		out.Append(EC.Interface(k, in[k]))
	}

	return out
}

// MapInterface builds a document from a map, with keys in sorted
// order, and returns an error for values that cannot be converted.
func (DocumentConstructorError) MapInterface(in map[string]any) (*Document, error) {
	out := DC.Make(len(in))

	for _, k := range slices.Sorted(maps.Keys(in)) {
		elem, err := ECE.Interface(k, in[k])
		if err != nil {
			return nil, err
		}

		out.Append(elem)
	}

	return out, nil
}

func (ElementConstructor) Int(key string, i int) *Element {
	if i <= math.MaxInt32 && i >= math.MinInt32 {
		return EC.Int32(key, int32(i))
	}

	return EC.Int64(key, int64(i))
}

func (ElementConstructor) SliceString(key string, in []string) *Element {
	vals := make([]*Value, len(in))

	for idx := range in {
		vals[idx] = VC.String(in[idx])
	}

	return EC.Array(key, NewArray(vals...))
}

func (ElementConstructor) SliceInt(key string, in []int) *Element {
	vals := make([]*Value, len(in))

	for idx := range in {
		vals[idx] = VC.Int(in[idx])
	}

	return EC.Array(key, NewArray(vals...))
}

func (ElementConstructor) SliceDocument(key string, in []*Document) *Element {
	vals := make([]*Value, len(in))

	for idx := range in {
		vals[idx] = VC.Document(in[idx])
	}

	return EC.Array(key, NewArray(vals...))
}

func (ElementConstructor) SliceInterface(key string, in []any) *Element {
	vals := make([]*Value, len(in))

	for idx := range in {
		vals[idx] = VC.Interface(in[idx])
	}

	return EC.Array(key, NewArray(vals...))
}

func (ElementConstructorError) SliceInterface(key string, in []any) (*Element, error) {
	vals := make([]*Value, 0, len(in))

	for idx := range in {
		elem, err := ECE.Interface("", in[idx])
		if err != nil {
			return nil, err
		}

		vals = append(vals, elem.Value())
	}

	return EC.Array(key, NewArray(vals...)), nil
}

func (ValueConstructor) Int(in int) *Value {
	return EC.Int("", in).value
}

// Interface converts the input with EC.Interface and returns the
// resulting value.
func (ValueConstructor) Interface(in any) *Value {
	return EC.Interface("", in).value
}
