package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/censorbox/internal/config"
	"github.com/vovakirdan/censorbox/internal/core"
	"github.com/vovakirdan/censorbox/internal/device"
	"github.com/vovakirdan/censorbox/internal/round"
)

// helpHeight is the number of rows reserved below the device for key help.
const helpHeight = 1

// GameModel is the Bubble Tea model for one difficulty on the device.
// Key presses and clock messages both arrive on the Bubble Tea event loop,
// so round transitions never race.
type GameModel struct {
	env        *Env
	difficulty config.Difficulty
	ctrl       *round.Controller
	clock      *round.Clock
	state      round.State
	screen     *core.Screen
	keyMapper  *KeyMapper
	help       help.Model
	lit        core.Action // Pad currently lit
	flashSeq   int         // Incremented on every press
	rounds     int         // Rounds started, for logging
	quitting   bool
	back       bool // True if user pressed back (not quit)
}

// NewGameModel creates a device model and starts the first round.
func NewGameModel(env *Env, difficulty config.Difficulty) (GameModel, error) {
	seed := env.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pool, err := env.Config.Pool(seed)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}

	m := GameModel{
		env:        env,
		difficulty: difficulty,
		ctrl:       round.NewController(pool, env.Config.Classifier, env.cues()),
		clock:      round.NewClock(env.cues()),
		screen:     core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH-helpHeight),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
	m.startRound()
	return m, nil
}

// startRound replaces the current round with a fresh one.
func (m *GameModel) startRound() {
	m.state = m.ctrl.Start(m.difficulty.RoundConfig())
	m.rounds++
	m.env.logger().Info("round started",
		"round", m.state.ID,
		"difficulty", m.difficulty.Name,
		"words", len(m.state.Slots),
	)
	m.logIfOver(round.PhaseActive)
}

// nextTick schedules the clock for the current round while it is active.
func (m GameModel) nextTick() tea.Cmd {
	if m.state.Over() {
		return nil
	}
	return clockCmd(m.state.ID)
}

// Init starts the clock for the first round.
func (m GameModel) Init() tea.Cmd {
	return m.nextTick()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		return m.handleClock(msg)

	case flashMsg:
		if msg.seq == m.flashSeq {
			m.lit = core.ActionNone
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.back = true
		return m, tea.Quit

	case core.ActionMute:
		m.env.toggleMute()
		return m, nil

	case core.ActionRestart:
		if !m.state.Over() {
			return m, nil
		}
		m.startRound()
		return m, m.nextTick()

	case core.ActionPad1, core.ActionPad2, core.ActionPad3, core.ActionPad4, core.ActionSkip:
		return m.press(action)
	}

	return m, nil
}

// press lights the pad and forwards it to the round.
func (m GameModel) press(action core.Action) (tea.Model, tea.Cmd) {
	m.lit = action
	m.flashSeq++

	before := m.state.Phase
	m.state = m.ctrl.Apply(m.state, RoundAction(action))
	m.logIfOver(before)

	return m, flashCmd(m.flashSeq)
}

// handleClock counts down the round the message was scheduled for.
// Messages for a replaced round are dropped without rescheduling.
func (m GameModel) handleClock(msg ClockMsg) (tea.Model, tea.Cmd) {
	if msg.RoundID != m.state.ID {
		return m, nil
	}

	before := m.state.Phase
	m.state = m.clock.Tick(m.state)
	m.logIfOver(before)

	return m, m.nextTick()
}

// logIfOver records the outcome when a round has just ended.
func (m GameModel) logIfOver(before round.Phase) {
	if before.Terminal() || !m.state.Over() {
		return
	}
	t := m.state.Tally()
	m.env.logger().Info("round over",
		"round", m.state.ID,
		"phase", m.state.Phase,
		"score", m.state.Score,
		"correct", t.Correct,
		"incorrect", t.Incorrect,
		"skipped", t.Skipped,
		"time_left", m.state.TimeRemaining,
	)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	device.Render(m.screen, device.View{
		State:     m.state,
		Clearance: m.env.Config.Display.Clearance,
		SizeHint:  m.env.Config.Display.SizeHint,
		Muted:     m.env.muted(),
		Lit:       m.lit,
	})

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Game)
}

// State returns the round currently on the device.
func (m GameModel) State() round.State {
	return m.state
}

// GameResult holds the outcome of a device session.
type GameResult struct {
	Back   bool // Return to the menu
	Rounds int  // Rounds played, including the last one
	Last   round.State
}

// Run starts the Bubble Tea program for the given difficulty.
func Run(env *Env, difficulty config.Difficulty) (GameResult, error) {
	model, err := NewGameModel(env, difficulty)
	if err != nil {
		return GameResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{Back: m.back, Rounds: m.rounds, Last: m.state}, nil
}
