package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beer-arcade/internal/audio"
	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/logging"
	"github.com/vovakirdan/beer-arcade/internal/registry"
	"github.com/vovakirdan/beer-arcade/internal/storage"
)

// helpRows is the space kept below the game screen for the key help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options are the optional collaborators of a game session.
// Nil fields are replaced by silent defaults.
type Options struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *logging.Logger
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      audio.Player
	log        *logging.Logger
	config     core.RuntimeConfig
	clock      *core.FrameClock
	holds      *core.HoldTracker
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTier   string
	quitting   bool
	back       bool // Leave to the menu rather than quit
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Store != nil {
		cfg.Best = opts.Store
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		store:      opts.Store,
		audio:      opts.Audio,
		log:        opts.Logger,
		config:     cfg,
		clock:      core.NewFrameClock(game.MaxFrameDelta()),
		holds:      core.NewHoldTracker(),
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.log.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, a := range actions {
		switch {
		case a == core.ActionBack:
			m.back = true
			m.quitting = true
			return m, tea.Quit
		case holdable[a]:
			// Autorepeat only extends the hold.
			if m.holds.Press(a, now) {
				m.inputFrame.Set(a)
			}
		default:
			m.inputFrame.Set(a)
		}
	}

	return m, nil
}

// handleMouse tracks the pointer: X drives analog tilt, the left button
// drinks while held and taps on press.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := &m.inputFrame.Pointer
	p.Present = true
	if w := m.screen.Width(); w > 1 {
		p.X = core.ClampF(float64(msg.X)/float64(w-1)*2-1, -1, 1)
	}

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			p.Down = true
			m.inputFrame.Set(core.ActionTap)
		case tea.MouseActionRelease:
			p.Down = false
		}
	} else if msg.Action == tea.MouseActionRelease {
		p.Down = false
	}

	return m, nil
}

// handleResize processes window resize events.
// Games scale to the screen, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: input, step, sound, persistence.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed, dt := m.clock.Tick(now)
	m.holds.Fill(&m.inputFrame, now)

	result := m.game.Step(core.Frame{Input: m.inputFrame, Now: elapsed, Dt: dt})
	m.gameState = result.State

	for _, s := range result.Sounds {
		m.audio.Play(s)
	}
	if src, ok := m.game.(registry.AudioSource); ok {
		m.audio.Wobble(src.AudioParams())
	}

	if tier := m.gameState.Tier; tier != m.lastTier {
		m.log.Debug("tier changed", "game", m.game.ID(), "from", m.lastTier, "to", tier)
		m.lastTier = tier
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveRun()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Storage failures are logged and the
// game continues.
func (m *Model) saveRun() {
	id := m.game.ID()
	summary := core.RunSummary{Score: m.gameState.Score}
	if rep, ok := m.game.(registry.RunReporter); ok {
		summary = rep.RunSummary()
	}
	m.log.Info("game over", "game", id, "score", summary.Score, "best", m.gameState.Best,
		"max_tier", summary.MaxTier, "reason", summary.EndReason)

	if m.store == nil {
		return
	}
	if summary.Score > 0 {
		if _, err := m.store.SaveScore(id, summary.Score); err != nil {
			m.log.Warn("save score failed", "game", id, "err", err)
		}
	}
	if _, err := m.store.SaveRun(id, summary); err != nil {
		m.log.Warn("save run failed", "game", id, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".beerarcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Back reports whether the player asked to return to the menu.
func (m Model) Back() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player left for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer tilt needs motion without buttons
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.Back(), nil
	}
	return false, nil
}
