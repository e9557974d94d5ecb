package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/sciconst/internal/app"
	"github.com/ensigniasec/sciconst/internal/storage"
)

// Run starts the Bubble Tea browser and blocks until the user quits.
func Run(session *app.Session, st *storage.Storage, opts Options) error {
	model := NewModel(session, st, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence logs while the TUI owns the terminal to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	return err
}
