// Package metrics records how command replies are classified.
package metrics

// Recorder receives classification events. Implementations must be
// safe for concurrent use.
type Recorder interface {
	// IncVerdict counts a reply by the verdict of its ok field.
	IncVerdict(ok bool)
	// IncFailure counts an error produced for a reply, by variant.
	IncFailure(kind string, code int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncVerdict(bool)        {}
func (NoopRecorder) IncFailure(string, int) {}
