// Package document holds the process-wide display sink components publish to.
//
// The sink is a single mutable string (the page title in a browser). Components get
// it injected instead of touching a global, so tests observe every write.
package document

import "sync"

// TitleSink receives title writes. The last writer wins; writes are not queued.
type TitleSink interface {
	SetTitle(title string)
}

// Recorder is an in-memory TitleSink that keeps every write.
type Recorder struct {
	mu      sync.Mutex
	title   string
	history []string

	// OnSet, when non-nil, is called after each write with the new title.
	OnSet func(title string)
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetTitle implements TitleSink.
func (r *Recorder) SetTitle(title string) {
	r.mu.Lock()
	r.title = title
	r.history = append(r.history, title)
	hook := r.OnSet
	r.mu.Unlock()

	if hook != nil {
		hook(title)
	}
}

// Title returns the current title.
func (r *Recorder) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}

// History returns all titles written so far, oldest first.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Discard is a TitleSink that drops every write.
var Discard TitleSink = discard{}

type discard struct{}

func (discard) SetTitle(string) {}
