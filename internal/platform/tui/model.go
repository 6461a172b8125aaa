package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/passive/internal/config"
	"github.com/vovakirdan/passive/internal/core"
	"github.com/vovakirdan/passive/internal/games/passive"
)

// Model is the Bubble Tea model that drives one passive game.
type Model struct {
	game    *passive.Game
	cfg     config.PassiveConfig
	runtime core.RuntimeConfig
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	held    *HeldKeys
	logger  *log.Logger
	now     func() time.Time

	lastTick time.Time
	status   string // Transient message shown in the footer
	quitting bool
}

// NewModel creates a model for a terminal of rt.ScreenW x rt.ScreenH cells.
// One row is reserved for the key help footer.
func NewModel(cfg config.PassiveConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		cfg:     cfg,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(time.Duration(cfg.Input.HoldMillis) * time.Millisecond),
		logger:  logger,
		now:     time.Now,
	}
	m.screen = core.NewScreen(m.fieldSize())
	m.game = m.newGame()
	return m
}

// fieldSize returns the play field dimensions, excluding the footer.
func (m Model) fieldSize() (int, int) {
	return max(m.runtime.ScreenW, 1), max(m.runtime.ScreenH-1, 1)
}

// newGame builds a fresh game sized to the current play field.
func (m Model) newGame() *passive.Game {
	field := m.runtime
	field.ScreenW, field.ScreenH = m.fieldSize()
	aspect := field.AspectRatio()

	m.logger.Debug("new game", "seed", m.runtime.Seed, "aspect", aspect,
		"cols", field.ScreenW, "rows", field.ScreenH)

	rng := rand.New(rand.NewSource(m.runtime.Seed))
	return passive.New(m.cfg, aspect, rng, passive.WithLogger(m.logger))
}

// Game returns the running game.
func (m Model) Game() *passive.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.game.TogglePause()
		m.held.Clear()
		m.status = ""
	case core.ActionRestart:
		m.restart()
	case core.ActionNone:
	default:
		m.held.Press(action, m.now())
	}

	return m, nil
}

// restart replaces the game. A fixed seed replays the same spawns.
func (m *Model) restart() {
	m.logger.Info("restart", "survived", m.game.Snapshot().Timer)
	m.held.Clear()
	m.status = ""
	m.game = m.newGame()
}

// handleResize rebuilds the game for the new aspect ratio.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.runtime.ScreenW && msg.Height == m.runtime.ScreenH {
		return m, nil
	}

	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(m.fieldSize())
	m.help.Width = msg.Width

	// Shapes and collisions depend on the aspect ratio, so the round starts over
	m.held.Clear()
	m.game = m.newGame()
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := float32(1) / float32(max(m.runtime.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = float32(t.Sub(m.lastTick).Seconds())
	}
	m.lastTick = t

	m.game.SetHeld(m.held.Held(t)...)
	m.game.Advance(max(dt, 0))

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns a
// footer message describing the outcome.
func (m Model) saveScreenshot() string {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return "screenshot failed"
	}
	dir := filepath.Join(home, ".passive", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return "screenshot failed"
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", passive.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "path", path, "err", err)
		return "screenshot failed"
	}

	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the play field and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.PassiveConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
