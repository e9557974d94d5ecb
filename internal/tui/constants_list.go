package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// constantItem is the list item backing a name/value row.
type constantItem struct {
	Name  string
	Value string
}

// List item interface methods.
func (it constantItem) Title() string       { return it.Name }
func (it constantItem) Description() string { return it.Value }
func (it constantItem) FilterValue() string { return it.Name }

// constantsDelegate renders constantItem rows with the value right-justified.
type constantsDelegate struct {
	selected lipgloss.Style
}

func (d constantsDelegate) Height() int                             { return 1 }
func (d constantsDelegate) Spacing() int                            { return 0 }
func (d constantsDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d constantsDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(constantItem)
	if !ok {
		return
	}
	selected := index == m.Index()
	leftPrefix := "  "
	lineStyle := lipgloss.NewStyle()
	if selected {
		leftPrefix = "> "
		lineStyle = d.selected
	}

	left := leftPrefix + it.Name
	right := it.Value

	padding := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	_, _ = fmt.Fprint(w, lineStyle.Render(left+spaces(padding)+right))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(n).Render("")
}
