package options

import (
	"github.com/pkg/errors"
	"github.com/tychoish/mongocore"
)

// ErrForeignOptions is returned by Resolve for UpdateOptions values
// that were not built by this package.
var ErrForeignOptions = errors.New("update options were not created by the options package")

// Fields is the resolved, read-only content of an options value. Nil
// fields are left to the server default.
type Fields struct {
	Kind         Kind
	ArrayFilters []*mongocore.Document
	Collation    *Collation
	Hint         *mongocore.Document
	HintString   *string
	Upsert       *bool
}

// Resolve reads the fields of an options value for serialization. Only
// the option types from this package's constructors are accepted; any
// other implementation of UpdateOptions, including a type that embeds
// one of them, is rejected with ErrForeignOptions. The returned fields
// are copies.
func Resolve(opts UpdateOptions) (Fields, error) {
	var out Fields

	switch o := opts.(type) {
	case nil:
		return Fields{}, errors.New("update options are nil")
	case *updateManyOptions:
		if o == nil {
			return Fields{}, errors.New("update many options are nil")
		}
		out = o.baseOptions.fields(KindUpdateMany)
		out.ArrayFilters = copyFilters(o.arrayFilters)
	case *updateOneOptions:
		if o == nil {
			return Fields{}, errors.New("update one options are nil")
		}
		out = o.baseOptions.fields(KindUpdateOne)
		out.ArrayFilters = copyFilters(o.arrayFilters)
	case *replaceOneOptions:
		if o == nil {
			return Fields{}, errors.New("replace one options are nil")
		}
		out = o.baseOptions.fields(KindReplaceOne)
	default:
		return Fields{}, errors.Wrapf(ErrForeignOptions, "type %T", opts)
	}

	if err := out.Collation.Validate(); err != nil {
		return Fields{}, errors.Wrapf(err, "resolving %s options", out.Kind)
	}

	return out, nil
}

func (b baseOptions) fields(kind Kind) Fields {
	return Fields{
		Kind:       kind,
		Collation:  b.collation.copy(),
		Hint:       b.hint.DeepCopy(),
		HintString: copyPtr(b.hintString),
		Upsert:     copyPtr(b.upsert),
	}
}

// MarshalDocument renders the fields that are set in command form,
// omitting every field left to the server default.
func (f Fields) MarshalDocument() (*mongocore.Document, error) {
	doc := mongocore.DC.Make(4)

	if f.ArrayFilters != nil {
		doc.Append(mongocore.EC.SliceDocument("arrayFilters", f.ArrayFilters))
	}

	if f.Collation != nil {
		collation, err := f.Collation.MarshalDocument()
		if err != nil {
			return nil, err
		}
		doc.Append(mongocore.EC.SubDocument("collation", collation))
	}

	switch {
	case f.Hint != nil && f.HintString != nil:
		return nil, errors.New("hint and hint string are mutually exclusive")
	case f.Hint != nil:
		doc.Append(mongocore.EC.SubDocument("hint", f.Hint))
	case f.HintString != nil:
		doc.Append(mongocore.EC.String("hint", *f.HintString))
	}

	if f.Upsert != nil {
		doc.Append(mongocore.EC.Boolean("upsert", *f.Upsert))
	}

	return doc, nil
}
