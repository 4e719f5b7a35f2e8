package result

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tychoish/mongocore"
	"github.com/tychoish/mongocore/model"
)

// Sentinels for matching the error variants with errors.Is.
var (
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrWriteFailure   = errors.New("write failure")
	ErrCommandFailure = errors.New("command failure")
)

// Kind names an error variant; it is also the metrics label for the
// variant.
type Kind string

const (
	KindDuplicateKey   Kind = "duplicate_key"
	KindWriteFailure   Kind = "write_failure"
	KindCommandFailure Kind = "command_failure"
)

// CommandError is implemented by the error variants in this package
// and nothing else: DuplicateKeyError, WriteFailureError and
// CommandFailureError. Values are only produced by a Classifier.
type CommandError interface {
	error
	Kind() Kind
	Code() int
	Message() string
	Failure() FailureDescriptor
	Response() *mongocore.Document
	Command() model.Command
	ServerAddress() model.ServerAddress

	commandError()
}

type commandFailure struct {
	cmd     model.Command
	doc     *mongocore.Document
	failure FailureDescriptor
}

func (f *commandFailure) commandError() {}

// Code returns the server's error code, or UnspecifiedErrorCode.
func (f *commandFailure) Code() int { return f.failure.Code }

// Message returns the server's error message, which may be empty.
func (f *commandFailure) Message() string { return f.failure.Message }

func (f *commandFailure) Failure() FailureDescriptor { return f.failure }

// Response returns the reply the error was built from.
func (f *commandFailure) Response() *mongocore.Document { return f.doc }

func (f *commandFailure) Command() model.Command { return f.cmd }

func (f *commandFailure) ServerAddress() model.ServerAddress { return f.cmd.Server }

func (f *commandFailure) format(what string) string {
	msg := fmt.Sprintf("%s (code %d", what, f.failure.Code)
	if f.failure.CodeName != "" {
		msg += ", " + f.failure.CodeName
	}
	msg += ") from " + f.cmd.String()
	if f.failure.Message != "" {
		msg += ": " + f.failure.Message
	}
	return msg
}

// DuplicateKeyError reports a unique index violation.
type DuplicateKeyError struct{ commandFailure }

func (e *DuplicateKeyError) Kind() Kind           { return KindDuplicateKey }
func (e *DuplicateKeyError) Error() string        { return e.format("duplicate key error") }
func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// WriteFailureError reports a write-specific failure: a write concern
// error, per-write errors or a legacy getLastError err field.
type WriteFailureError struct{ commandFailure }

func (e *WriteFailureError) Kind() Kind           { return KindWriteFailure }
func (e *WriteFailureError) Error() string        { return e.format("write failure") }
func (e *WriteFailureError) Is(target error) bool { return target == ErrWriteFailure }

// WriteConcernError returns the writeConcernError document of the
// reply, if any.
func (e *WriteFailureError) WriteConcernError() *mongocore.Document {
	doc, _ := e.doc.Lookup("writeConcernError").MutableDocumentOK()
	return doc
}

// WriteErrors returns the per-write error documents of the reply.
func (e *WriteFailureError) WriteErrors() []*mongocore.Document {
	return writeErrors(e.doc)
}

// CommandFailureError is the catch-all variant for failed replies that
// are not duplicate key or write failures.
type CommandFailureError struct{ commandFailure }

func (e *CommandFailureError) Kind() Kind           { return KindCommandFailure }
func (e *CommandFailureError) Error() string        { return e.format("command failed") }
func (e *CommandFailureError) Is(target error) bool { return target == ErrCommandFailure }

// AsCommandError finds the first CommandError in err's chain.
func AsCommandError(err error) (CommandError, bool) {
	var ce CommandError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsDuplicateKeyError reports whether err is or wraps a DuplicateKeyError.
func IsDuplicateKeyError(err error) bool { return errors.Is(err, ErrDuplicateKey) }

// IsWriteFailure reports whether err is or wraps a WriteFailureError.
func IsWriteFailure(err error) bool { return errors.Is(err, ErrWriteFailure) }

// IsCommandFailure reports whether err is or wraps a CommandFailureError.
func IsCommandFailure(err error) bool { return errors.Is(err, ErrCommandFailure) }

func writeErrors(doc *mongocore.Document) []*mongocore.Document {
	arr, ok := doc.Lookup("writeErrors").MutableArrayOK()
	if !ok {
		return nil
	}

	out := make([]*mongocore.Document, 0, arr.Len())
	for val := range arr.Iterator() {
		if sub, ok := val.MutableDocumentOK(); ok {
			out = append(out, sub)
		}
	}
	return out
}
