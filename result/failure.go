package result

import "github.com/tychoish/mongocore"

// UnspecifiedErrorCode is the code of a failure whose reply did not
// include a numeric code field.
const UnspecifiedErrorCode = -5

// FailureDescriptor holds the diagnostic fields of a failed reply.
type FailureDescriptor struct {
	// Code is the server error code, or UnspecifiedErrorCode when
	// HasCode is false.
	Code     int
	HasCode  bool
	Message  string
	CodeName string
}

// Describe extracts the failure fields from a reply. The message is
// taken from errmsg, then err, then $err; non-string values are
// ignored.
func Describe(doc *mongocore.Document) FailureDescriptor {
	out := FailureDescriptor{Code: UnspecifiedErrorCode}

	if code, ok := doc.Lookup("code").IntOK(); ok {
		out.Code = code
		out.HasCode = true
	}

	for _, key := range []string{"errmsg", "err", "$err"} {
		if msg, ok := doc.Lookup(key).StringValueOK(); ok && msg != "" {
			out.Message = msg
			break
		}
	}

	if name, ok := doc.Lookup("codeName").StringValueOK(); ok {
		out.CodeName = name
	}

	return out
}
