// Package app ties the catalog, the copy history and the system clipboard together
// for the presentation shells (CLI and TUI).
package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/sciconst/internal/catalog"
	"github.com/ensigniasec/sciconst/internal/history"
)

// Clipboard receives copied values.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardError is returned when the value could not be placed on the clipboard.
type ClipboardError struct {
	Name string
	Err  error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("copy %q to clipboard: %v", e.Name, e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// Session is one running instance of the application.
type Session struct {
	ID        string
	Store     *catalog.Store
	History   *history.Recorder
	Clipboard Clipboard

	log *logrus.Entry
}

// NewSession wires a store to a fresh history. A nil clipboard uses the system clipboard.
func NewSession(store *catalog.Store, clip Clipboard) *Session {
	if clip == nil {
		clip = SystemClipboard{}
	}
	id := uuid.NewString()
	return &Session{
		ID:        id,
		Store:     store,
		History:   history.NewRecorder(),
		Clipboard: clip,
		log:       logrus.WithField("session", id),
	}
}

// Copy places the value of a built-in constant on the clipboard and records it.
// Nothing is recorded when the lookup or the clipboard write fails.
func (s *Session) Copy(category, name string) (catalog.Entry, error) {
	e, err := s.Store.Lookup(category, name)
	if err != nil {
		return catalog.Entry{}, err
	}
	return e, s.copyEntry(e)
}

// CopyCustom is Copy for the custom overlay.
func (s *Session) CopyCustom(name string) (catalog.Entry, error) {
	e, err := s.Store.LookupCustom(name)
	if err != nil {
		return catalog.Entry{}, err
	}
	return e, s.copyEntry(e)
}

func (s *Session) copyEntry(e catalog.Entry) error {
	if err := s.Clipboard.WriteAll(e.Value); err != nil {
		s.log.Warnf("clipboard write failed for %q: %v", e.Name, err)
		return &ClipboardError{Name: e.Name, Err: err}
	}
	s.History.Record(e.Name, e.Value)
	s.log.Debugf("copied %q", e.Name)
	return nil
}

// Details renders the detail text shown for a selected constant.
func Details(e catalog.Entry) string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString("\n\nValue: ")
	b.WriteString(e.Value)
	b.WriteString("\n\nDescription: ")
	if e.Description == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(e.Description)
	}
	return b.String()
}
