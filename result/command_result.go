package result

import (
	"github.com/tychoish/mongocore"
	"github.com/tychoish/mongocore/model"
)

// CommandResult is the reply to a single command along with the
// context needed to report its failure.
type CommandResult struct {
	cmd        model.Command
	doc        *mongocore.Document
	classifier *Classifier
}

// NewCommandResult wraps a reply using the DefaultClassifier.
func NewCommandResult(cmd model.Command, doc *mongocore.Document) *CommandResult {
	return DefaultClassifier().Result(cmd, doc)
}

// Document returns the reply. It is the caller's document, not a copy.
func (r *CommandResult) Document() *mongocore.Document { return r.doc }

// Command returns the context of the command that produced the reply.
func (r *CommandResult) Command() model.Command { return r.cmd }

// Verdict classifies the reply's ok field.
func (r *CommandResult) Verdict() Verdict { return Classify(r.doc) }

// OK reports whether the reply's ok field indicates success.
func (r *CommandResult) OK() bool { return r.Verdict() == Ok }

// Evaluate runs the full classification of the reply.
func (r *CommandResult) Evaluate() Evaluation {
	c := r.classifier
	if c == nil {
		c = DefaultClassifier()
	}
	return c.Evaluate(r.cmd, r.doc)
}

// Err returns the error for the reply without raising it, or nil when
// the reply is acknowledged.
func (r *CommandResult) Err() CommandError { return r.Evaluate().Err }

// ThrowOnError returns the error for a failed reply and nil otherwise.
// The returned error is always one of the CommandError variants.
func (r *CommandResult) ThrowOnError() error {
	if err := r.Err(); err != nil {
		return err
	}
	return nil
}

// Failure returns the diagnostic fields of a failed reply.
func (r *CommandResult) Failure() (FailureDescriptor, bool) {
	ev := r.Evaluate()
	if ev.Failure == nil {
		return FailureDescriptor{}, false
	}
	return *ev.Failure, true
}
