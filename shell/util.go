package shell

import (
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"
	"github.com/tychoish/mongocore"
)

// ErrorReply renders the reply a server would send for err: an ok
// reply when err is nil, and otherwise a failed reply carrying the
// message and, for classified errors, the code.
func ErrorReply(err error, op string) *mongocore.Document {
	doc, merr := MakeErrorResponse(err == nil, err).MarshalDocument()
	if merr != nil {
		grip.Error(message.WrapError(merr, message.Fields{
			"message": "could not render reply",
			"op":      op,
		}))
		return mongocore.DC.Elements(mongocore.EC.Int("ok", 0))
	}

	return doc
}

// OKReply renders a bare ok reply.
func OKReply() *mongocore.Document {
	doc, _ := MakeSuccessResponse().MarshalDocument()
	return doc
}
