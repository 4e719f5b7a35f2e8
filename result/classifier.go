package result

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/tychoish/fun/ft"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"
	"github.com/tychoish/mongocore"
	"github.com/tychoish/mongocore/metrics"
	"github.com/tychoish/mongocore/model"
)

// Marker reports whether a reply carries a write-specific failure.
type Marker func(doc *mongocore.Document) bool

// FieldMarker marks replies where the named field is present and not
// empty: a getLastError reply with err:null is not a failure, one with
// an err string is.
func FieldMarker(field string) Marker {
	return func(doc *mongocore.Document) bool {
		val := doc.Lookup(field)
		return val != nil && !val.IsEmpty()
	}
}

// Classifier turns replies into verdicts and errors. It is immutable
// and safe for concurrent use.
type Classifier struct {
	duplicateCodes    map[int]struct{}
	duplicatePatterns []*regexp.Regexp
	markers           []Marker
	recorder          metrics.Recorder
}

// Option customizes a Classifier beyond its configuration.
type Option func(*Classifier)

// WithRecorder sends classification events to the recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Classifier) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithMarkers adds write failure markers to those built from the
// configuration's field list.
func WithMarkers(markers ...Marker) Option {
	return func(c *Classifier) {
		for _, m := range markers {
			if m != nil {
				c.markers = append(c.markers, m)
			}
		}
	}
}

// NewClassifier validates the configuration and builds a Classifier.
func NewClassifier(conf ClassifierConfig, opts ...Option) (*Classifier, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid classifier config")
	}

	c := &Classifier{
		duplicateCodes:    make(map[int]struct{}, len(conf.DuplicateKeyCodes)),
		duplicatePatterns: make([]*regexp.Regexp, 0, len(conf.DuplicateKeyPatterns)),
		markers:           make([]Marker, 0, len(conf.WriteFailureFields)),
		recorder:          metrics.NoopRecorder{},
	}

	for _, code := range conf.DuplicateKeyCodes {
		c.duplicateCodes[code] = struct{}{}
	}
	for _, pattern := range conf.DuplicateKeyPatterns {
		c.duplicatePatterns = append(c.duplicatePatterns, regexp.MustCompile(pattern))
	}
	for _, field := range conf.WriteFailureFields {
		c.markers = append(c.markers, FieldMarker(field))
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNewClassifier is NewClassifier for configurations known to be
// valid; it panics on error.
func MustNewClassifier(conf ClassifierConfig, opts ...Option) *Classifier {
	return ft.Must(NewClassifier(conf, opts...))
}

var defaultClassifier = MustNewClassifier(DefaultClassifierConfig())

// DefaultClassifier returns the classifier built from
// DefaultClassifierConfig, without metrics.
func DefaultClassifier() *Classifier { return defaultClassifier }

// Evaluation is the outcome of evaluating a reply. Err is nil exactly
// when the reply is acknowledged: its verdict is Ok and it carries no
// write failure marker.
type Evaluation struct {
	Verdict Verdict
	Failure *FailureDescriptor
	Err     CommandError
}

// OK reports whether the evaluation produced no error.
func (e Evaluation) OK() bool { return e.Err == nil }

// Evaluate classifies a reply to cmd. Both the inspecting and the
// propagating forms of CommandResult are derived from it.
func (c *Classifier) Evaluate(cmd model.Command, doc *mongocore.Document) Evaluation {
	ev := Evaluation{Verdict: Classify(doc)}
	marked := c.writeFailureMarked(doc)

	rec := c.metricsRecorder()
	rec.IncVerdict(ev.Verdict == Ok)

	if ev.Verdict == Ok && !marked {
		return ev
	}

	fd := c.describe(doc)
	ev.Failure = &fd
	ev.Err = c.build(cmd, doc, fd, marked)

	rec.IncFailure(string(ev.Err.Kind()), fd.Code)
	grip.Debug(message.Fields{
		"message":   "command reply classified as failed",
		"kind":      ev.Err.Kind(),
		"verdict":   ev.Verdict.String(),
		"code":      fd.Code,
		"code_name": fd.CodeName,
		"errmsg":    fd.Message,
		"command":   cmd.Namespace(),
		"server":    cmd.Server.String(),
	})

	return ev
}

// ErrorFor builds the error variant for a failed reply and its
// descriptor, which is used as given. It always returns an error; use
// Evaluate to find out whether a reply failed.
func (c *Classifier) ErrorFor(cmd model.Command, doc *mongocore.Document, fd FailureDescriptor) CommandError {
	return c.build(cmd, doc, fd, c.writeFailureMarked(doc))
}

// Result wraps a reply to cmd for evaluation with this classifier.
func (c *Classifier) Result(cmd model.Command, doc *mongocore.Document) *CommandResult {
	return &CommandResult{cmd: cmd, doc: doc, classifier: c}
}

func (c *Classifier) build(cmd model.Command, doc *mongocore.Document, fd FailureDescriptor, marked bool) CommandError {
	base := commandFailure{cmd: cmd, doc: doc, failure: fd}

	switch {
	case c.isDuplicateKey(fd) || c.hasDuplicateKeyWriteError(doc):
		return &DuplicateKeyError{base}
	case marked:
		return &WriteFailureError{base}
	default:
		return &CommandFailureError{base}
	}
}

// describe reads the failure fields of a reply. Replies that only
// report a failure inside writeErrors or writeConcernError take their
// code from there: the duplicate key write error first, then the write
// concern error, then the first write error.
func (c *Classifier) describe(doc *mongocore.Document) FailureDescriptor {
	fd := Describe(doc)
	if fd.HasCode {
		return fd
	}

	nested, ok := c.nestedFailure(doc)
	if !ok {
		return fd
	}

	fd.Code, fd.HasCode = nested.Code, nested.HasCode
	if fd.Message == "" {
		fd.Message = nested.Message
	}
	if fd.CodeName == "" {
		fd.CodeName = nested.CodeName
	}

	return fd
}

func (c *Classifier) nestedFailure(doc *mongocore.Document) (FailureDescriptor, bool) {
	wes := writeErrors(doc)
	for _, we := range wes {
		if fd := Describe(we); c.isDuplicateKey(fd) {
			return fd, true
		}
	}

	if wce, ok := doc.Lookup("writeConcernError").MutableDocumentOK(); ok && wce.Len() > 0 {
		return Describe(wce), true
	}

	if len(wes) > 0 {
		return Describe(wes[0]), true
	}

	return FailureDescriptor{}, false
}

func (c *Classifier) isDuplicateKey(fd FailureDescriptor) bool {
	if fd.HasCode {
		if _, ok := c.duplicateCodes[fd.Code]; ok {
			return true
		}
	}

	if fd.Message == "" {
		return false
	}

	for _, pattern := range c.duplicatePatterns {
		if pattern.MatchString(fd.Message) {
			return true
		}
	}

	return false
}

func (c *Classifier) hasDuplicateKeyWriteError(doc *mongocore.Document) bool {
	for _, we := range writeErrors(doc) {
		if c.isDuplicateKey(Describe(we)) {
			return true
		}
	}
	return false
}

func (c *Classifier) metricsRecorder() metrics.Recorder {
	if c.recorder == nil {
		return metrics.NoopRecorder{}
	}
	return c.recorder
}

func (c *Classifier) writeFailureMarked(doc *mongocore.Document) bool {
	for _, marked := range c.markers {
		if marked(doc) {
			return true
		}
	}
	return false
}
