package mongocore

import (
	"github.com/pkg/errors"
	"github.com/tychoish/emt"
)

// DocumentMap is a map-based view of a document, used for
// key-lookups, and providing another option in document construction.
type DocumentMap map[string]*Element

// Copy returns a new map with the same values as the source map, but
// in a different map object that callers have ownership over.
func (dm DocumentMap) Copy() DocumentMap {
	out := make(DocumentMap, len(dm))
	for key := range dm {
		out[key] = dm[key]
	}
	return out
}

// Validate ensures that every element in the map is non-nil and that
// every key in the map matches the key of the element itself.
func (dm DocumentMap) Validate() error {
	catcher := emt.NewBasicCatcher()
	for key, elem := range dm {
		if elem == nil {
			catcher.Add(errors.Errorf("for mapKey=%q, element is nil", key))
			continue
		}
		catcher.ErrorfWhen(key != elem.Key(), "for mapKey=%q, element has key %q", key, elem.Key())
	}

	return catcher.Resolve()
}

// Map returns a map-based view of the document. If a key appears in a
// document more than once only the first occurrence is included.
//
// The object returned contains pointers to the underlying elements of
// the document, and is rebuilt on every call so that it reflects the
// current state of the document.
func (d *Document) Map() DocumentMap {
	out := make(DocumentMap, d.Len())
	for elem := range d.Iterator() {
		key := elem.Key()
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = elem
	}

	return out
}

// Unmarshal reads the document into the map provided. The semantics
// are loose: fields that cannot be converted to the map's value type
// are skipped, and existing keys are overwritten but never removed.
func (d *Document) Unmarshal(into any) error {
	switch out := into.(type) {
	case map[string]any:
		for elem := range d.Iterator() {
			out[elem.Key()] = elem.value.Interface()
		}
	case map[string]string:
		for elem := range d.Iterator() {
			if val, ok := elem.value.StringValueOK(); ok {
				out[elem.Key()] = val
			}
		}
	case map[string]int:
		for elem := range d.Iterator() {
			if val, ok := elem.value.IntOK(); ok {
				out[elem.Key()] = val
			}
		}
	case map[string]bool:
		for elem := range d.Iterator() {
			if val, ok := elem.value.BooleanOK(); ok {
				out[elem.Key()] = val
			}
		}
	default:
		return errors.Errorf("cannot unmarshal document into %T", into)
	}

	return nil
}
