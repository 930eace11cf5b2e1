package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/T0rrag/SnakeCAD/internal/core"
	"github.com/T0rrag/SnakeCAD/internal/game"
	"github.com/T0rrag/SnakeCAD/internal/storage"
)

// Model is the Bubble Tea model driving one snake session. It owns the
// fixed-tick scheduler: keys buffer into an input frame as they arrive, and
// every tick the frame is handed to the session, the board is re-rendered,
// and the next tick is scheduled.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current game
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers keyboard input for the next tick. Quit takes effect
// immediately; everything else waits for the tick boundary.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.session.RequestQuit()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer to the new terminal size.
// The board itself is fixed; only the rendering viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after a terminal outcome builds fresh session state.
	if m.inputFrame.Has(core.ActionRestart) && m.session.Phase().Terminal() {
		m.session.Reset(time.Now().UnixNano())
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval)
	}

	m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	// Record the result once per finished game. Quit is a clean exit and
	// is not recorded.
	phase := m.session.Phase()
	if (phase == game.PhaseGameOver || phase == game.PhaseWon) && !m.scoreSaved {
		if m.store != nil && m.session.Score() > 0 {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveScore(m.session.Score(), m.session.Length(), phase.String())
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run drives the session to completion in the terminal. The caller keeps the
// session pointer and can inspect its phase and score after Run returns.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(session, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Released on exit, clearing all drawn cells
	)

	_, err := p.Run()
	return err
}
