// Package history keeps the in-memory log of copied constants.
package history

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Entry is one copy event.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Recorder is an append-only copy log. It never deduplicates and has no size bound,
// so it grows for the lifetime of the process. It is not persisted.
type Recorder struct {
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a copy event.
func (r *Recorder) Record(name, value string) {
	logrus.Debugf("Recording copy: name=%s", name)
	r.entries = append(r.entries, Entry{Name: name, Value: value})
}

// Drain returns every recorded event in order. The log is left intact.
func (r *Recorder) Drain() []Entry {
	return slices.Clone(r.entries)
}

// Len reports how many events have been recorded.
func (r *Recorder) Len() int {
	return len(r.entries)
}
