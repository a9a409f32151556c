package app

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/monaco/internal/config"
	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/debug"
	"github.com/henri123lemoine/monaco/internal/export"
	"github.com/henri123lemoine/monaco/internal/theme"
	"github.com/henri123lemoine/monaco/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateDashboard State = iota
	StateFilter
	StateHelp
)

// Focus is the card the cursor moves in.
type Focus int

const (
	FocusRankings Focus = iota
	FocusGoals
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	styles ui.Styles

	// Data, derived once in New
	view           dashboard.View
	rankingIndexes []int
	goalIndexes    []int

	// State
	state     State
	focus     Focus
	cursor    int
	err       error
	status    string
	exporting bool

	// Filter
	filterInput textinput.Model

	// UI
	width      int
	height     int
	keys       KeyMap
	showDetail bool

	shouldQuit bool
}

// New creates a new Model, deriving the dashboard from p.
func New(cfg *config.Config, p dashboard.Provider) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter teams and goals..."
	filterInput.Prompt = "/ "
	filterInput.CharLimit = 50

	palette, ok := theme.Get(cfg.UI.Theme)
	if !ok {
		debug.Log("unknown theme, using default", "theme", cfg.UI.Theme)
	}

	done := debug.Timed("derive dashboard")
	view := dashboard.Build(p)
	done()

	return Model{
		config:      cfg,
		styles:      ui.NewStyles(palette),
		view:        view,
		keys:        KeyMapFromConfig(&cfg.Keys),
		filterInput: filterInput,
		state:       StateDashboard,
		focus:       FocusRankings,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.shouldQuit = true
			return m, tea.Quit
		}
		// Handle quit globally
		if key.Matches(msg, m.keys.Quit) && m.state == StateDashboard {
			m.shouldQuit = true
			return m, tea.Quit
		}

		// Delegate to state-specific handler
		return m.handleKeyPress(msg)

	case ExportedMsg:
		m.exporting = false
		if msg.Err != nil {
			m.err = msg.Err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = "Exported to " + msg.Path
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateDashboard:
		return m.handleDashboardKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleDashboardKeys handles key presses on the dashboard.
func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.visibleCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = max(m.visibleCount()-1, 0)
	case key.Matches(msg, m.keys.Focus):
		if m.focus == FocusRankings {
			m.focus = FocusGoals
		} else {
			m.focus = FocusRankings
		}
		m.cursor = 0
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Detail):
		m.showDetail = !m.showDetail
	case key.Matches(msg, m.keys.Export):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.err = nil
		m.status = "Exporting..."
		return m, exportPDF(m.config.ExportPath(), m.view)
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateDashboard
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateDashboard
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.state = StateDashboard
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// rankingSource implements fuzzy.Source over team names.
type rankingSource []dashboard.RankingRow

func (r rankingSource) String(i int) string { return r[i].Team }
func (r rankingSource) Len() int            { return len(r) }

// goalSource implements fuzzy.Source over goal titles.
type goalSource []dashboard.GoalRow

func (g goalSource) String(i int) string { return g[i].Title }
func (g goalSource) Len() int            { return len(g) }

// applyFilter narrows both cards to the rows matching the filter input.
// Matches keep collection order; rows are referenced by index so their
// ordinals never change.
func (m *Model) applyFilter() {
	filter := m.filterInput.Value()
	if filter == "" {
		m.rankingIndexes = nil
		m.goalIndexes = nil
	} else {
		m.rankingIndexes = matchIndexes(fuzzy.FindFrom(filter, rankingSource(m.view.Rankings)))
		m.goalIndexes = matchIndexes(fuzzy.FindFrom(filter, goalSource(m.view.Goals)))
	}

	// Ensure cursor is in bounds
	if m.cursor >= m.visibleCount() {
		m.cursor = m.visibleCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func matchIndexes(matches fuzzy.Matches) []int {
	indexes := make([]int, 0, len(matches))
	for _, match := range matches {
		indexes = append(indexes, match.Index)
	}
	slices.Sort(indexes)
	return indexes
}

// visibleCount returns the number of rows shown in the focused card.
func (m Model) visibleCount() int {
	if m.focus == FocusGoals {
		if m.goalIndexes != nil {
			return len(m.goalIndexes)
		}
		return len(m.view.Goals)
	}
	if m.rankingIndexes != nil {
		return len(m.rankingIndexes)
	}
	return len(m.view.Rankings)
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(ui.RenderParams{
		State:          int(m.state),
		View:           m.view,
		Styles:         m.styles,
		RankingIndexes: m.rankingIndexes,
		GoalIndexes:    m.goalIndexes,
		Interactive:    true,
		Focus:          int(m.focus),
		Cursor:         m.cursor,
		ShowDetail:     m.showDetail,
		ShowScores:     m.config.UI.ShowScores,
		ShowHelp:       m.config.UI.ShowHelp,
		FilterInput:    m.filterInput.View(),
		FilterValue:    m.filterInput.Value(),
		Status:         m.status,
		Err:            m.err,
		HelpSections:   m.helpSections(),
		Width:          m.width,
		Height:         m.height,
	})
}

// helpSections lists the active bindings for the help screen.
func (m Model) helpSections() []ui.HelpSection {
	section := func(title string, bindings ...key.Binding) ui.HelpSection {
		s := ui.HelpSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Bindings = append(s.Bindings, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
		}
		return s
	}
	return []ui.HelpSection{
		section("Navigation", m.keys.Up, m.keys.Down, m.keys.Home, m.keys.End, m.keys.Focus),
		section("Actions", m.keys.Filter, m.keys.Detail, m.keys.Export),
		section("General", m.keys.Help, m.keys.Quit),
	}
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func exportPDF(path string, view dashboard.View) tea.Cmd {
	return func() tea.Msg {
		err := export.WriteFile(path, view)
		return ExportedMsg{Path: path, Err: err}
	}
}
