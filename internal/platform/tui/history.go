package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// maxRuns caps how many runs the history screen loads.
const maxRuns = 100

// HistoryView selects which ordering of runs is shown.
type HistoryView int

const (
	HistoryRecent HistoryView = iota
	HistoryLongest
)

// String returns the tab title.
func (v HistoryView) String() string {
	if v == HistoryLongest {
		return "Longest"
	}
	return "Recent"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "recent/longest"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// runColumns returns the table columns for run history.
func runColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Pattern", Width: 18},
		{Title: "Grid", Width: 9},
		{Title: "Gens", Width: 7},
		{Title: "Peak", Width: 6},
		{Title: "Final", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "By", Width: 10},
		{Title: "Date", Width: 12},
	}
}

// runRows converts runs to table rows.
func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		pattern := r.Pattern
		if pattern == "" {
			pattern = "(drawn)"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			pattern,
			fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			fmt.Sprintf("%d", r.Generations),
			fmt.Sprintf("%d", r.PeakPopulation),
			fmt.Sprintf("%d", r.FinalPopulation),
			(time.Duration(r.Duration) * time.Second).String(),
			r.Source,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	return s
}

// RenderRunsTable renders runs as a static table, for non-interactive output.
func RenderRunsTable(runs []storage.RunEntry) string {
	if len(runs) == 0 {
		return "No runs recorded yet."
	}

	s := tableStyles()
	s.Selected = lipgloss.NewStyle()

	// Height covers the two-line header plus every row.
	t := table.New(
		table.WithColumns(runColumns()),
		table.WithStyles(s),
		table.WithRows(runRows(runs)),
		table.WithHeight(len(runs)+2),
	)
	return t.View()
}

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	store     *storage.Store
	view      HistoryView
	runs      []storage.RunEntry
	loadError error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(runColumns()),
		table.WithStyles(tableStyles()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)
	return t
}

// loadRuns loads runs for the current view.
func (m *HistoryModel) loadRuns() {
	m.runs, m.loadError = nil, nil
	if m.store != nil {
		if m.view == HistoryLongest {
			m.runs, m.loadError = m.store.LongestRuns(maxRuns)
		} else {
			m.runs, m.loadError = m.store.RecentRuns(maxRuns)
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % 2
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Padding(0, 1)

	b.WriteString(centerText(titleStyle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, 0, 2)
	for _, v := range []HistoryView{HistoryRecent, HistoryLongest} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadError != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadError.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nStep a grid to record one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
