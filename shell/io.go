// Package shell builds server-style replies from errors, the inverse of
// the result package. Test servers and proxies use it to answer
// commands.
package shell

import (
	"github.com/pkg/errors"
	"github.com/tychoish/mongocore"
	"github.com/tychoish/mongocore/model"
	"github.com/tychoish/mongocore/result"
)

func intOK(ok bool) int {
	if ok {
		return 1
	}

	return 0
}

// ErrorResponse represents a response indicating whether the operation was okay
// and errors, if any.
type ErrorResponse struct {
	OK           int
	ErrorMessage string
	Code         int
	CodeName     string
}

// MakeErrorResponse returns an ErrorResponse with the given ok status and error
// message, if any. The code and code name of a result.CommandError are
// carried over.
func MakeErrorResponse(ok bool, err error) ErrorResponse {
	resp := ErrorResponse{OK: intOK(ok)}
	if err == nil {
		return resp
	}

	resp.ErrorMessage = err.Error()
	if ce, isCmdErr := result.AsCommandError(err); isCmdErr {
		fd := ce.Failure()
		if fd.Message != "" {
			resp.ErrorMessage = fd.Message
		}
		if fd.HasCode {
			resp.Code = fd.Code
		}
		resp.CodeName = fd.CodeName
	}

	return resp
}

// MakeSuccessResponse returns an ErrorResponse that is ok and has no error.
func MakeSuccessResponse() ErrorResponse {
	return ErrorResponse{OK: intOK(true)}
}

// MarshalDocument renders the reply. The error fields are omitted when
// empty.
func (r ErrorResponse) MarshalDocument() (*mongocore.Document, error) {
	return mongocore.DC.Elements(mongocore.EC.Int("ok", r.OK)).AppendOmitEmpty(
		mongocore.EC.String("errmsg", r.ErrorMessage),
		mongocore.EC.Int("code", r.Code),
		mongocore.EC.String("codeName", r.CodeName)), nil
}

// UnmarshalDocument reads the reply fields of a document, ignoring
// fields it does not know.
func (r *ErrorResponse) UnmarshalDocument(in *mongocore.Document) error {
	var ok bool

	for elem := range in.Iterator() {
		switch elem.Key() {
		case "ok":
			if r.OK, ok = elem.Value().IntOK(); !ok {
				if b, isBool := elem.Value().BooleanOK(); isBool {
					r.OK = intOK(b)
					continue
				}
				return errors.Errorf("could not parse value of correct type [%s] for key %s",
					elem.Value().Type(), elem.Key())
			}
		case "errmsg":
			if r.ErrorMessage, ok = elem.Value().StringValueOK(); !ok {
				return errors.Errorf("could not parse value of correct type [%s] for key %s",
					elem.Value().Type(), elem.Key())
			}
		case "code":
			if r.Code, ok = elem.Value().IntOK(); !ok {
				return errors.Errorf("could not parse value of correct type [%s] for key %s",
					elem.Value().Type(), elem.Key())
			}
		case "codeName":
			if r.CodeName, ok = elem.Value().StringValueOK(); !ok {
				return errors.Errorf("could not parse value of correct type [%s] for key %s",
					elem.Value().Type(), elem.Key())
			}
		}
	}

	return nil
}

// SuccessOrError classifies the reply as if cmd had received it,
// returning nil for an ok reply and the classified error otherwise.
func (r ErrorResponse) SuccessOrError(cmd model.Command) error {
	doc, err := r.MarshalDocument()
	if err != nil {
		return errors.WithStack(err)
	}

	return result.NewCommandResult(cmd, doc).ThrowOnError()
}
