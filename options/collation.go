package options

import (
	"github.com/pkg/errors"
	"github.com/tychoish/emt"
	"github.com/tychoish/mongocore"
)

// Collation describes language-specific string comparison rules.
// Nil and zero fields are omitted, leaving them to the server.
type Collation struct {
	Locale          string
	CaseLevel       *bool
	CaseFirst       string
	Strength        int
	NumericOrdering *bool
	Alternate       string
	MaxVariable     string
	Normalization   *bool
	Backwards       *bool
}

// Validate checks the fields the server would reject.
func (c *Collation) Validate() error {
	if c == nil {
		return nil
	}

	catcher := emt.NewBasicCatcher()
	catcher.NewWhen(c.Locale == "", "collation locale must be specified")
	catcher.ErrorfWhen(c.Strength < 0 || c.Strength > 5,
		"collation strength %d is not between 1 and 5", c.Strength)
	catcher.ErrorfWhen(c.CaseFirst != "" && c.CaseFirst != "upper" && c.CaseFirst != "lower" && c.CaseFirst != "off",
		"collation caseFirst %q is not one of upper, lower or off", c.CaseFirst)
	catcher.ErrorfWhen(c.Alternate != "" && c.Alternate != "non-ignorable" && c.Alternate != "shifted",
		"collation alternate %q is not one of non-ignorable or shifted", c.Alternate)
	catcher.ErrorfWhen(c.MaxVariable != "" && c.MaxVariable != "punct" && c.MaxVariable != "space",
		"collation maxVariable %q is not one of punct or space", c.MaxVariable)

	return errors.Wrap(catcher.Resolve(), "invalid collation")
}

// MarshalDocument renders the collation in command form.
func (c *Collation) MarshalDocument() (*mongocore.Document, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc := mongocore.DC.Make(9).Append(mongocore.EC.String("locale", c.Locale))
	if c.CaseLevel != nil {
		doc.Append(mongocore.EC.Boolean("caseLevel", *c.CaseLevel))
	}
	if c.CaseFirst != "" {
		doc.Append(mongocore.EC.String("caseFirst", c.CaseFirst))
	}
	if c.Strength != 0 {
		doc.Append(mongocore.EC.Int("strength", c.Strength))
	}
	if c.NumericOrdering != nil {
		doc.Append(mongocore.EC.Boolean("numericOrdering", *c.NumericOrdering))
	}
	if c.Alternate != "" {
		doc.Append(mongocore.EC.String("alternate", c.Alternate))
	}
	if c.MaxVariable != "" {
		doc.Append(mongocore.EC.String("maxVariable", c.MaxVariable))
	}
	if c.Normalization != nil {
		doc.Append(mongocore.EC.Boolean("normalization", *c.Normalization))
	}
	if c.Backwards != nil {
		doc.Append(mongocore.EC.Boolean("backwards", *c.Backwards))
	}

	return doc, nil
}

func (c *Collation) copy() *Collation {
	if c == nil {
		return nil
	}
	out := *c
	out.CaseLevel = copyPtr(c.CaseLevel)
	out.NumericOrdering = copyPtr(c.NumericOrdering)
	out.Normalization = copyPtr(c.Normalization)
	out.Backwards = copyPtr(c.Backwards)
	return &out
}

func copyPtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
