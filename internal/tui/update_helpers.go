package tui

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/sciconst/internal/catalog"
)

// handleKey processes browse-mode key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tabIndex = (m.tabIndex + 1) % len(m.tabs)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabIndex = (m.tabIndex - 1 + len(m.tabs)) % len(m.tabs)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.History):
		m.mode = ModeHistory
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		return m, m.form.open()

	case key.Matches(msg, m.keys.Convert):
		e, _ := m.selectedEntry()
		_, err := catalog.ConvertUnit(e, "")
		return m.setStatus(placeholderMessage("Unit conversion", err), true)

	case key.Matches(msg, m.keys.Language):
		return m.setStatus(placeholderMessage("Language switching", catalog.SetLanguage("")), true)

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Graph):
		e, _ := m.selectedEntry()
		_, err := catalog.HistoryGraph(e)
		return m.setStatus(placeholderMessage("History graph", err), true)
	}

	// Cursor and paging keys go to the list.
	var cmd tea.Cmd
	m.constants, cmd = m.constants.Update(msg)
	return m, cmd
}

// refresh rebuilds the list from the current tab and search term.
func (m *Model) refresh() {
	var rows []catalog.Row
	if m.currentTab() == customTab {
		rows = m.session.Store.FilterCustom(m.search.Value())
	} else {
		rows = m.session.Store.Filter(m.currentTab(), m.search.Value())
	}
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, constantItem{Name: r.Name, Value: r.Value})
	}
	m.constants.SetItems(items)
	m.constants.ResetSelected()
}

// resize fits the list between the header and the details pane.
func (m *Model) resize() {
	height := m.height - listOverheadLines - detailsLines
	if height < listMinHeight {
		height = listMinHeight
	}
	m.constants.SetSize(m.contentWidth(), height)
}

func (m Model) contentWidth() int {
	if m.width <= 0 || m.width > contentMaxWidth {
		return contentMaxWidth
	}
	return m.width
}

// selectedEntry returns the full entry behind the highlighted row.
func (m Model) selectedEntry() (catalog.Entry, bool) {
	it, ok := m.constants.SelectedItem().(constantItem)
	if !ok {
		return catalog.Entry{}, false
	}
	var (
		e   catalog.Entry
		err error
	)
	if m.currentTab() == customTab {
		e, err = m.session.Store.LookupCustom(it.Name)
	} else {
		e, err = m.session.Store.Lookup(m.currentTab(), it.Name)
	}
	if err != nil {
		logrus.Debugf("selected row vanished: %v", err)
		return catalog.Entry{}, false
	}
	return e, true
}

// copySelected copies the highlighted value to the clipboard and records it.
func (m Model) copySelected() (Model, tea.Cmd) {
	it, ok := m.constants.SelectedItem().(constantItem)
	if !ok {
		return m.setStatus("No constant selected. Please select a constant to copy.", true)
	}
	var err error
	if m.currentTab() == customTab {
		_, err = m.session.CopyCustom(it.Name)
	} else {
		_, err = m.session.Copy(m.currentTab(), it.Name)
	}
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	return m.setStatus("Copied to clipboard: "+it.Value, false)
}

// submitForm validates and stores the custom constant, then persists the overlay.
// When the file cannot be written the overlay is rolled back and the form stays open.
func (m Model) submitForm() (Model, tea.Cmd) {
	name, value, description := m.form.values()
	store := m.session.Store
	snapshot, err := store.ExportCustom()
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	if err := store.AddCustom(name, value, description); err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	if m.storage != nil {
		if err := m.storage.Save(store); err != nil {
			if rerr := store.ImportCustom(snapshot); rerr != nil {
				logrus.Errorf("restoring custom constants: %v", rerr)
			}
			m.form.err = fmt.Sprintf("could not save %q: %v", name, err)
			return m, nil
		}
	}
	m.mode = ModeBrowse
	m.tabIndex = len(m.tabs) - 1
	m.refresh()
	return m.setStatus(fmt.Sprintf("Added custom constant %q", name), false)
}

// cycleTheme switches to the next accent colour for the rest of the session.
func (m Model) cycleTheme() (Model, tea.Cmd) {
	next := accentPalette[0]
	if i := slices.Index(accentPalette, m.accent); i >= 0 {
		next = accentPalette[(i+1)%len(accentPalette)]
	}
	m.accent = next
	m.styles = newStyles(next)
	m.constants.SetDelegate(constantsDelegate{selected: m.styles.selected})
	return m.setStatus("Theme colour: "+next, false)
}

// setStatus shows a transient message and schedules its removal.
func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return clearStatusMsg{Seq: seq}
	})
}

func placeholderMessage(feature string, err error) string {
	if errors.Is(err, catalog.ErrNotImplemented) {
		return feature + " is not implemented yet."
	}
	return fmt.Sprintf("%s failed: %v", feature, err)
}
