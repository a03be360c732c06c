package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Boot sequence timing.
const (
	bootTypeDelay  = 55 * time.Millisecond
	bootFieldPause = 200 * time.Millisecond
	bootAuthDelay  = 600 * time.Millisecond
	bootGrantDelay = 800 * time.Millisecond
)

const (
	bootIdentity   = "AGENT_K"
	bootPassphrase = "********"
)

// BootStage is a step of the login animation.
type BootStage int

const (
	BootIdentity BootStage = iota
	BootPassphrase
	BootAuthenticating
	BootGranted
	BootDone
)

var (
	bootHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bootLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bootFieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	bootStatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Blink(true)
	bootGrantedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// BootModel types out the secure login before the menu opens.
type BootModel struct {
	stage    BootStage
	identity int // Characters of the identity typed so far
	pass     int // Characters of the passphrase typed so far
	width    int
	height   int
	quitting bool
}

// NewBootModel creates the login animation.
func NewBootModel(width, height int) BootModel {
	return BootModel{width: width, height: height}
}

// Init starts typing.
func (m BootModel) Init() tea.Cmd {
	return bootCmd(bootTypeDelay)
}

// Update advances the animation on each step and skips it on any key.
func (m BootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
		}
		m.stage = BootDone
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bootStepMsg:
		next, delay := m.step()
		if next.stage == BootDone {
			return next, tea.Quit
		}
		return next, bootCmd(delay)
	}

	return m, nil
}

// step returns the model after one animation step and the delay before the next.
func (m BootModel) step() (BootModel, time.Duration) {
	switch m.stage {
	case BootIdentity:
		if m.identity < len(bootIdentity) {
			m.identity++
			if m.identity == len(bootIdentity) {
				return m, bootFieldPause
			}
			return m, bootTypeDelay
		}
		m.stage = BootPassphrase
		return m, bootTypeDelay

	case BootPassphrase:
		if m.pass < len(bootPassphrase) {
			m.pass++
			if m.pass == len(bootPassphrase) {
				return m, bootFieldPause
			}
			return m, bootTypeDelay
		}
		m.stage = BootAuthenticating
		return m, bootAuthDelay

	case BootAuthenticating:
		m.stage = BootGranted
		return m, bootGrantDelay

	default:
		m.stage = BootDone
		return m, 0
	}
}

// Stage returns the current step of the animation.
func (m BootModel) Stage() BootStage {
	return m.stage
}

// View renders the login form.
func (m BootModel) View() string {
	if m.quitting || m.stage == BootDone {
		return ""
	}

	cursor := func(active bool) string {
		if active {
			return "_"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(bootHeaderStyle.Render("SECURE LOGIN V.3.1"))
	b.WriteString("\n\n")
	b.WriteString(bootLabelStyle.Render("IDENTITY:   "))
	b.WriteString(bootFieldStyle.Render(bootIdentity[:m.identity] + cursor(m.stage == BootIdentity)))
	b.WriteString("\n")
	b.WriteString(bootLabelStyle.Render("PASSPHRASE: "))
	b.WriteString(bootFieldStyle.Render(bootPassphrase[:m.pass] + cursor(m.stage == BootPassphrase)))
	b.WriteString("\n\n")

	switch m.stage {
	case BootAuthenticating:
		b.WriteString(bootStatusStyle.Render("AUTHENTICATING..."))
	case BootGranted:
		b.WriteString(bootGrantedStyle.Render("ACCESS GRANTED"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(1, 3).
		Width(40).
		Render(b.String())

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// RunBoot plays the login animation. It returns true if the user asked to quit.
func RunBoot(width, height int) (bool, error) {
	p := tea.NewProgram(
		NewBootModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BootModel)
	return ok && m.quitting, nil
}
