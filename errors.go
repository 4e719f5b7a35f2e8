package mongocore

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrElementNotFound is returned by lookups for keys that are not
	// in the document.
	ErrElementNotFound = errors.New("element not found")

	// ErrNilElement is the panic value for inserting a nil element
	// into a document that does not ignore nil inserts.
	ErrNilElement = errors.New("element is nil")

	// ErrOutOfBounds is returned when an array index is past the end
	// of the array.
	ErrOutOfBounds = errors.New("out of bounds")
)

// ElementTypeError is the panic value of the typed accessors on Value
// when the value holds a different type.
type ElementTypeError struct {
	Method string
	Type   Type
}

func (ete *ElementTypeError) Error() string {
	return fmt.Sprintf("call of %s on %s type", ete.Method, ete.Type)
}
