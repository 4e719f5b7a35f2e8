// Package result decides whether a command reply reports success and,
// when it does not, builds the error that describes the failure.
//
// Classify gives the raw ok/not-ok verdict of a reply. A Classifier
// evaluates a reply in the context of the command that produced it and
// chooses between the error variants: DuplicateKeyError,
// WriteFailureError and CommandFailureError. CommandResult wraps a
// single reply for callers that want the inspect (Err) or the
// propagate (ThrowOnError) form of the same evaluation.
package result

import (
	"math"

	"github.com/tychoish/mongocore"
)

// Verdict is the success or failure determination of a reply's ok
// field.
type Verdict int

const (
	NotOk Verdict = iota
	Ok
)

func (v Verdict) String() string {
	if v == Ok {
		return "ok"
	}
	return "not ok"
}

// Classify reads the ok field of the reply. Boolean true and any
// non-zero number are Ok. Everything else, including false, zero, NaN,
// strings, nulls, an absent field and a nil document, is NotOk.
//
// Classify reads the document every time it is called and never
// fails.
func Classify(doc *mongocore.Document) Verdict {
	val := doc.Lookup("ok")

	switch {
	case val == nil:
		return NotOk
	case val.Type() == mongocore.TypeBoolean:
		if val.Boolean() {
			return Ok
		}
	case val.IsNumber():
		f, _ := val.Float64OK()
		if f != 0 && !math.IsNaN(f) {
			return Ok
		}
	}

	return NotOk
}
