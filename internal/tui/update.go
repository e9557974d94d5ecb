package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.resize()
		return m, nil

	case clearStatusMsg:
		if x.Seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(x, m.keys.Quit) && (x.String() == "ctrl+c" || m.mode == ModeBrowse || m.mode == ModeHistory) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(x)
		case ModeAdd:
			return m.updateForm(x)
		case ModeHistory:
			if key.Matches(x, m.keys.Escape) || key.Matches(x, m.keys.History) {
				m.mode = ModeBrowse
			}
			return m, nil
		case ModeBrowse:
			return m.handleKey(x)
		}
	}

	return m, nil
}

// updateSearch feeds key presses to the search box and refilters on every change.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.search.SetValue("")
		m.search.Blur()
		m.mode = ModeBrowse
		m.refresh()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.search.Blur()
		m.mode = ModeBrowse
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if msg.Type == tea.KeyUp || msg.Type == tea.KeyDown {
			var cmd tea.Cmd
			m.constants, cmd = m.constants.Update(msg)
			return m, cmd
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// updateForm drives the add-custom-constant form.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeBrowse
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case msg.Type == tea.KeyEnter:
		if m.form.focused == fieldDescription {
			return m.submitForm()
		}
		return m, m.form.move(1)
	case key.Matches(msg, m.keys.NextField) && msg.Type != tea.KeyRunes:
		return m, m.form.move(1)
	case key.Matches(msg, m.keys.PrevField) && msg.Type != tea.KeyRunes:
		return m, m.form.move(-1)
	}
	return m, m.form.update(msg)
}
