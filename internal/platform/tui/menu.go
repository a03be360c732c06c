package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/censorbox/internal/config"
	"github.com/vovakirdan/censorbox/internal/core"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	menuMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	env       *Env
	items     []config.Difficulty
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	quitting  bool
	selected  *config.Difficulty // Set when user selects a difficulty
}

// NewMenuModel creates a new menu model with the cursor on the last played
// difficulty, or on the configured default.
func NewMenuModel(env *Env) MenuModel {
	items := env.Config.Difficulties

	cursor := indexOf(items, env.lastDifficulty())
	if cursor < 0 {
		cursor = max(indexOf(items, env.Config.DefaultDifficulty), 0)
	}

	return MenuModel{
		env:       env,
		items:     items,
		cursor:    cursor,
		width:     env.Runtime.ScreenW,
		height:    env.Runtime.ScreenH,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
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
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionMute:
		m.env.toggleMute()

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.env.rememberDifficulty(selected.Name)
			return m, tea.Quit // Exit menu to start the round
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C E N S O R   B O X ™"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Select clearance protocol"), m.width))
	b.WriteString("\n\n")

	for i, d := range m.items {
		line := fmt.Sprintf(" %-8s %2d lives  %3ds  %3d words ", d.Name, d.Lives, d.TimeBudget, d.WordCount)
		if i == m.cursor {
			line = menuCursorStyle.Render(line)
		} else {
			line = menuItemStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.env.muted() {
		b.WriteString(centerText(menuMutedStyle.Render("AUDIO MUTED"), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.help.View(m.keyMapper.Menu), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected difficulty, or nil if none selected.
func (m MenuModel) Selected() *config.Difficulty {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// indexOf returns the position of the named difficulty, or -1.
func indexOf(items []config.Difficulty, name string) int {
	for i, d := range items {
		if name != "" && d.Name == name {
			return i
		}
	}
	return -1
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty config.Difficulty
	Runtime    core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(env *Env) (MenuResult, error) {
	model := NewMenuModel(env)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Runtime: env.Runtime}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Runtime: env.Runtime, Quit: true}, nil
	}

	// Keep any size changes for the next screen
	result := MenuResult{Runtime: env.Runtime}
	if m.width > 0 && m.height > 0 {
		result.Runtime.ScreenW = m.width
		result.Runtime.ScreenH = m.height
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Difficulty = *m.Selected()
	return result, nil
}
