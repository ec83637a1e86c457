package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/registry"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

// DefaultHoldFrames is how long a movement key stays held after the
// terminal last reported it.
const DefaultHoldFrames = 8

// Options tune the game model.
type Options struct {
	Store          *storage.Store
	Logger         *log.Logger
	SwipeThreshold int  // Drag distance in cells that counts as a swipe
	HoldFrames     int  // Frames a movement key stays held
	InSession      bool // Esc returns to the menu instead of pausing
}

// Model is the Bubble Tea model for running the dungeon.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	held       *heldInput
	gesture    *gesture
	recorder   *recorder
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	inSession  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldFrames <= 0 {
		opts.HoldFrames = DefaultHoldFrames
	}
	var store runStore
	if opts.Store != nil {
		store = opts.Store
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		held:       newHeldInput(opts.HoldFrames),
		gesture:    newGesture(opts.SwipeThreshold),
		recorder:   newRecorder(store, game, opts.Logger),
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
		inSession:  opts.InSession,
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.gesture.Handle(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.inSession {
			m.recorder.Abandon(m.game.State())
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.recorder.Abandon(m.game.State())
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(a)
	case core.ActionInteract:
		m.held.Release()
		m.inputFrame.Set(a)
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events. The run keeps going; the
// game draws a notice while the window is too small for the level.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	m.held.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.recorder.Restart()
	}
	m.recorder.Observe(m.gameState)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dungeon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("could not create screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("could not save screenshot", err)
	}
}

func (m *Model) warn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
