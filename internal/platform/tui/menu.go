package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/registry"
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items         []registry.Variant
	cursor        int
	width         int
	height        int
	keys          MenuKeyMap
	help          help.Model
	renderer      *lipgloss.Renderer
	quitting      bool
	selected      *registry.Variant // Set when user selects a variant
	openStandings bool              // True if user pressed Tab for standings
}

// NewMenuModel creates a new menu model listing every registered variant.
// The cursor starts on the preferred variant when it is listed.
func NewMenuModel(preferred string, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	items := registry.List()
	cursor := 0
	for i, v := range items {
		if v.ID == preferred {
			cursor = i
			break
		}
	}

	return MenuModel{
		items:    items,
		cursor:   cursor,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		renderer: r,
	}
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
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
		}

	case MenuActionStandings:
		m.openStandings = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	r := m.renderer
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	itemStyle := r.NewStyle().Foreground(lipgloss.Color("250"))
	activeStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := r.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	for i, v := range m.items {
		line := fmt.Sprintf("  %-16s %dx%d", v.Title, v.Height, v.Width)
		if i == m.cursor {
			b.WriteString(activeStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("C O N N E C T   F O U R"),
		dimStyle.Render("Choose a board"),
		"",
		b.String(),
		"",
		dimStyle.Render(m.help.View(m.keys)),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return r.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected variant, or nil if none selected.
func (m MenuModel) Selected() *registry.Variant {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStandings returns true if user requested the standings screen.
func (m MenuModel) WantsStandings() bool {
	return m.openStandings
}
