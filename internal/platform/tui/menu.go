package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

// Preview bounds, in cells.
const (
	previewMaxRows = 8
	previewMaxCols = 20
)

var (
	menuTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuNoticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	menuPreviewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238"))
)

// MenuItem represents a selectable seed in the menu.
type MenuItem struct {
	PatternID   string // Empty for a blank grid
	Title       string
	Kind        string
	Description string
	Width       int
	Height      int
	preview     string
}

// MenuModel is the Bubble Tea model for the pattern picker menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem
	openHistory bool
	notice      string // e.g. a seed that did not fit
}

// NewMenuModel creates a new menu model listing every registered pattern.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	list := patterns.List()
	items := make([]MenuItem, 0, len(list)+1)
	items = append(items, MenuItem{
		Title:       "Empty grid",
		Description: "Draw your own cells with the mouse.",
	})
	for _, p := range list {
		items = append(items, MenuItem{
			PatternID:   p.ID,
			Title:       p.Name,
			Kind:        p.Kind,
			Description: p.Description,
			Width:       p.Width,
			Height:      p.Height,
			preview:     patternPreview(p),
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// patternPreview draws the top-left corner of a pattern, two characters
// per cell so it looks square.
func patternPreview(p patterns.Pattern) string {
	rows := core.Min(p.Height, previewMaxRows)
	cols := core.Min(p.Width, previewMaxCols)
	if rows <= 0 || cols <= 0 {
		return ""
	}

	live := make([]bool, rows*cols)
	for _, c := range p.Cells {
		if c.Row < rows && c.Col < cols {
			live[c.Row*cols+c.Col] = true
		}
	}

	lines := make([]string, rows)
	for r := range rows {
		var b strings.Builder
		for c := range cols {
			if live[r*cols+c] {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the viewer
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var item MenuItem
	if m.cursor < len(m.items) {
		item = m.items[m.cursor]
	}

	var details []string
	if item.Description != "" {
		details = append(details, menuDimStyle.Render(item.Description))
	}
	// Drop the preview before the list gets too short to scroll.
	if item.preview != "" && m.height >= 16+core.Min(item.Height, previewMaxRows) {
		details = append(details, menuPreviewStyle.Render(item.preview))
	}
	if m.notice != "" {
		details = append(details, menuNoticeStyle.Render(m.notice))
	}
	detail := lipgloss.JoinVertical(lipgloss.Center, details...)

	sections := []string{
		"",
		menuTitleStyle.Render("G A M E   O F   L I F E"),
		"",
		"Pick a seed",
		"",
		m.renderList(m.height - 10 - lipgloss.Height(detail)),
		"",
		detail,
		"",
		"Up/Down: Navigate  |  Enter: Start  |  Tab: History  |  Q: Quit",
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// renderList draws a window of at most visible items around the cursor.
func (m MenuModel) renderList(visible int) string {
	visible = core.Max(visible, 3)
	start := core.Clamp(m.cursor-visible/2, 0, core.Max(len(m.items)-visible, 0))
	end := core.Min(start+visible, len(m.items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.items[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + item.Title
		switch {
		case item.Kind != "":
			line += fmt.Sprintf("  (%s, %dx%d)", item.Kind, item.Width, item.Height)
		case item.PatternID != "":
			line += fmt.Sprintf("  (%dx%d)", item.Width, item.Height)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PatternID    string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarises how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.PatternID = m.Selected().PatternID
	default:
		result.Quit = true
	}
	return result
}
