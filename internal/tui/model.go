package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/sciconst/internal/app"
	"github.com/ensigniasec/sciconst/internal/storage"
)

// Mode selects what the main area shows and who receives key presses.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeHistory
	ModeAdd
)

// Options carries presentation preferences.
type Options struct {
	AccentColor string
}

// Model is the root Bubble Tea model.
type Model struct {
	session *app.Session
	// storage persists custom constants added from the form; nil keeps them in memory only.
	storage *storage.Storage

	tabs     []string
	tabIndex int

	search      textinput.Model
	constants   list.Model
	form        addForm
	mode        Mode
	helpVisible bool

	status    string
	statusErr bool
	statusSeq int

	width    int
	height   int
	quitting bool

	accent string
	styles styles
	keys   keyMap
}

// styles are derived once from the accent colour.
type styles struct {
	accent   lipgloss.Style
	title    lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	muted    lipgloss.Style
	errText  lipgloss.Style
	okText   lipgloss.Style
	details  lipgloss.Style
	selected lipgloss.Style
}

func newStyles(accent string) styles {
	color := lipgloss.Color(accent)
	return styles{
		accent:   lipgloss.NewStyle().Foreground(color),
		title:    lipgloss.NewStyle().Foreground(color).Bold(true),
		tab:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241")),
		tabOn:    lipgloss.NewStyle().Padding(0, 1).Foreground(color).Bold(true).Underline(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		okText:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		details:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(color).Padding(0, 1),
		selected: lipgloss.NewStyle().Foreground(color).Bold(true),
	}
}

// NewModel constructs a Model showing the first category.
func NewModel(session *app.Session, st *storage.Storage, opts Options) Model {
	accent := opts.AccentColor
	if accent == "" {
		accent = accentPalette[0]
	}
	sty := newStyles(accent)

	search := textinput.New()
	search.Prompt = "🔍 "
	search.Placeholder = "Search for a constant..."
	search.CharLimit = searchCharLimit

	delegate := constantsDelegate{selected: sty.selected}
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()
	lst.SetStatusBarItemName("constant", "constants")

	m := Model{
		session:   session,
		storage:   st,
		tabs:      append(session.Store.Categories(), customTab),
		search:    search,
		constants: lst,
		form:      newAddForm(),
		mode:      ModeBrowse,
		accent:    accent,
		styles:    sty,
		keys:      newKeyMap(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// currentTab returns the selected tab name.
func (m Model) currentTab() string {
	return m.tabs[m.tabIndex]
}
