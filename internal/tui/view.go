package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/sciconst/internal/app"
)

func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	width := m.contentWidth()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Scientific Constants"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.helpVisible {
		b.WriteString(m.renderHelp())
		b.WriteString("\n")
	}

	switch m.mode {
	case ModeHistory:
		b.WriteString(m.renderHistory())
	case ModeAdd:
		b.WriteString(m.renderForm())
	case ModeBrowse, ModeSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n")
		b.WriteString(m.constants.View())
		b.WriteString("\n")
		b.WriteString(m.renderDetails(width))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tabIndex {
			parts = append(parts, m.styles.tabOn.Render(t))
		} else {
			parts = append(parts, m.styles.tab.Render(t))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderDetails(width int) string {
	e, ok := m.selectedEntry()
	content := m.styles.muted.Render("Select a constant to view details...")
	if ok {
		content = app.Details(e)
	}
	// Border and padding take four columns.
	return m.styles.details.Width(width - 4).Render(content)
}

func (m Model) renderHistory() string {
	entries := m.session.History.Drain()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Copy History"))
	b.WriteString("\n\n")
	if len(entries) == 0 {
		b.WriteString(m.styles.muted.Render("No constants have been copied yet."))
		b.WriteString("\n")
		return b.String()
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "%3d. %s: %s\n", i+1, e.Name, m.styles.accent.Render(e.Value))
	}
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Add Custom Constant"))
	b.WriteString("\n\n")
	b.WriteString(m.form.view())
	if m.form.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.errText.Render(m.form.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("tab: next field • enter on description/ctrl+s: save • esc: cancel"))
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.errText.Render(m.status)
	}
	return m.styles.okText.Render(m.status)
}

func (m Model) renderFooter() string {
	switch m.mode {
	case ModeSearch:
		return m.styles.muted.Render("type to filter • enter: done • esc: clear • ↑/↓: move")
	case ModeHistory:
		return m.styles.muted.Render("esc/H: back • q: quit")
	case ModeAdd:
		return ""
	default:
		return m.styles.muted.Render("tab/←/→: category • /: search • enter/c: copy • H: history • a: add • t: theme • ?: help • q: quit")
	}
}

func (m Model) renderHelp() string {
	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Foreground(lipgloss.Color(m.accent))
	bindings := []struct{ keys, desc string }{
		{"tab, →, l", "next category"},
		{"shift+tab, ←, h", "previous category"},
		{"/", "search by name"},
		{"esc", "clear search"},
		{"enter, c, y", "copy value to clipboard"},
		{"H", "copy history"},
		{"a", "add custom constant"},
		{"t", "change theme colour"},
		{"u, L, g", "unit conversion, language, history graph (not implemented)"},
		{"?", "toggle this help"},
		{"q, ctrl+c", "quit"},
	}
	content := []string{"Help", ""}
	for _, kb := range bindings {
		content = append(content, fmt.Sprintf("%-16s %s", kb.keys, kb.desc))
	}
	return border.Render(strings.Join(content, "\n"))
}
