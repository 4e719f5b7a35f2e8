// Package options provides the option types for write operations.
//
// Each operation kind has one constructor that returns options with
// every field left to the server default. Setters never modify the
// receiver: they return a new instance with the field changed, so
// options may be shared freely once built.
//
//	opts := options.UpdateMany().
//		Upsert(options.Bool(true)).
//		HintString(options.String("status_1"))
//
// A nil argument to a setter restores the server default for that
// field; it is distinct from an empty slice or false.
package options

import "github.com/tychoish/mongocore"

// UpdateOptions is the family of update option types. It is
// implemented only by the types returned from UpdateMany, UpdateOne
// and ReplaceOne, and Resolve rejects any other implementation.
type UpdateOptions interface {
	// Kind names the operation the options belong to.
	Kind() Kind

	updateOptions()
}

// Kind names an operation kind.
type Kind string

const (
	KindUpdateMany Kind = "updateMany"
	KindUpdateOne  Kind = "updateOne"
	KindReplaceOne Kind = "replaceOne"
)

// UpdateManyOptions are the options for updating every document that
// matches a filter.
type UpdateManyOptions interface {
	UpdateOptions

	// ArrayFilters sets the filters that select the array elements an
	// update applies to.
	ArrayFilters(filters []*mongocore.Document) UpdateManyOptions
	Collation(collation *Collation) UpdateManyOptions
	// Hint sets the index specification and clears the hint string.
	Hint(hint *mongocore.Document) UpdateManyOptions
	// HintString sets the index name and clears the hint.
	HintString(name *string) UpdateManyOptions
	// Upsert sets whether to insert a document when none match.
	Upsert(upsert *bool) UpdateManyOptions
}

// UpdateOneOptions are the options for updating at most one document.
type UpdateOneOptions interface {
	UpdateOptions

	ArrayFilters(filters []*mongocore.Document) UpdateOneOptions
	Collation(collation *Collation) UpdateOneOptions
	Hint(hint *mongocore.Document) UpdateOneOptions
	HintString(name *string) UpdateOneOptions
	Upsert(upsert *bool) UpdateOneOptions
}

// ReplaceOneOptions are the options for replacing one document. A
// replacement has no array filters.
type ReplaceOneOptions interface {
	UpdateOptions

	Collation(collation *Collation) ReplaceOneOptions
	Hint(hint *mongocore.Document) ReplaceOneOptions
	HintString(name *string) ReplaceOneOptions
	Upsert(upsert *bool) ReplaceOneOptions
}

// Bool returns a pointer to b, for the nullable setters.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for the nullable setters.
func String(s string) *string { return &s }

// UpdateMany returns options with every field at the server default.
func UpdateMany() UpdateManyOptions { return &updateManyOptions{} }

// UpdateOne returns options with every field at the server default.
func UpdateOne() UpdateOneOptions { return &updateOneOptions{} }

// ReplaceOne returns options with every field at the server default.
func ReplaceOne() ReplaceOneOptions { return &replaceOneOptions{} }

// baseOptions holds the fields shared by every update kind. Its
// methods return modified copies.
type baseOptions struct {
	collation  *Collation
	hint       *mongocore.Document
	hintString *string
	upsert     *bool
}

func (b baseOptions) withCollation(c *Collation) baseOptions {
	b.collation = c.copy()
	return b
}

func (b baseOptions) withHint(hint *mongocore.Document) baseOptions {
	b.hint = hint.DeepCopy()
	b.hintString = nil
	return b
}

func (b baseOptions) withHintString(name *string) baseOptions {
	b.hintString = copyPtr(name)
	b.hint = nil
	return b
}

func (b baseOptions) withUpsert(upsert *bool) baseOptions {
	b.upsert = copyPtr(upsert)
	return b
}

func copyFilters(filters []*mongocore.Document) []*mongocore.Document {
	if filters == nil {
		return nil
	}

	out := make([]*mongocore.Document, 0, len(filters))
	for _, f := range filters {
		out = append(out, f.DeepCopy())
	}
	return out
}

type updateManyOptions struct {
	baseOptions
	arrayFilters []*mongocore.Document
}

func (*updateManyOptions) updateOptions() {}
func (*updateManyOptions) Kind() Kind     { return KindUpdateMany }

func (o *updateManyOptions) with(fn func(*updateManyOptions)) UpdateManyOptions {
	out := *o
	fn(&out)
	return &out
}

func (o *updateManyOptions) ArrayFilters(filters []*mongocore.Document) UpdateManyOptions {
	return o.with(func(out *updateManyOptions) { out.arrayFilters = copyFilters(filters) })
}

func (o *updateManyOptions) Collation(c *Collation) UpdateManyOptions {
	return o.with(func(out *updateManyOptions) { out.baseOptions = out.withCollation(c) })
}

func (o *updateManyOptions) Hint(hint *mongocore.Document) UpdateManyOptions {
	return o.with(func(out *updateManyOptions) { out.baseOptions = out.withHint(hint) })
}

func (o *updateManyOptions) HintString(name *string) UpdateManyOptions {
	return o.with(func(out *updateManyOptions) { out.baseOptions = out.withHintString(name) })
}

func (o *updateManyOptions) Upsert(upsert *bool) UpdateManyOptions {
	return o.with(func(out *updateManyOptions) { out.baseOptions = out.withUpsert(upsert) })
}

type updateOneOptions struct {
	baseOptions
	arrayFilters []*mongocore.Document
}

func (*updateOneOptions) updateOptions() {}
func (*updateOneOptions) Kind() Kind     { return KindUpdateOne }

func (o *updateOneOptions) with(fn func(*updateOneOptions)) UpdateOneOptions {
	out := *o
	fn(&out)
	return &out
}

func (o *updateOneOptions) ArrayFilters(filters []*mongocore.Document) UpdateOneOptions {
	return o.with(func(out *updateOneOptions) { out.arrayFilters = copyFilters(filters) })
}

func (o *updateOneOptions) Collation(c *Collation) UpdateOneOptions {
	return o.with(func(out *updateOneOptions) { out.baseOptions = out.withCollation(c) })
}

func (o *updateOneOptions) Hint(hint *mongocore.Document) UpdateOneOptions {
	return o.with(func(out *updateOneOptions) { out.baseOptions = out.withHint(hint) })
}

func (o *updateOneOptions) HintString(name *string) UpdateOneOptions {
	return o.with(func(out *updateOneOptions) { out.baseOptions = out.withHintString(name) })
}

func (o *updateOneOptions) Upsert(upsert *bool) UpdateOneOptions {
	return o.with(func(out *updateOneOptions) { out.baseOptions = out.withUpsert(upsert) })
}

type replaceOneOptions struct {
	baseOptions
}

func (*replaceOneOptions) updateOptions() {}
func (*replaceOneOptions) Kind() Kind     { return KindReplaceOne }

func (o *replaceOneOptions) with(fn func(*replaceOneOptions)) ReplaceOneOptions {
	out := *o
	fn(&out)
	return &out
}

func (o *replaceOneOptions) Collation(c *Collation) ReplaceOneOptions {
	return o.with(func(out *replaceOneOptions) { out.baseOptions = out.withCollation(c) })
}

func (o *replaceOneOptions) Hint(hint *mongocore.Document) ReplaceOneOptions {
	return o.with(func(out *replaceOneOptions) { out.baseOptions = out.withHint(hint) })
}

func (o *replaceOneOptions) HintString(name *string) ReplaceOneOptions {
	return o.with(func(out *replaceOneOptions) { out.baseOptions = out.withHintString(name) })
}

func (o *replaceOneOptions) Upsert(upsert *bool) ReplaceOneOptions {
	return o.with(func(out *replaceOneOptions) { out.baseOptions = out.withUpsert(upsert) })
}
