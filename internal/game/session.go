package game

import (
	"fmt"

	"github.com/T0rrag/SnakeCAD/internal/config"
	"github.com/T0rrag/SnakeCAD/internal/core"
)

// Phase is the session state machine tag. Running is the initial phase; all
// other phases are terminal. Restarting builds fresh session state rather
// than transitioning out of a terminal phase.
type Phase int

const (
	PhaseRunning  Phase = iota
	PhaseGameOver       // collision with a wall or the snake's own body
	PhaseWon            // snake filled the board, no cell left for food
	PhaseQuit           // clean exit requested by the player
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p != PhaseRunning
}

// Session owns all state of one snake game: board, snake, food, score, RNG
// and phase. Everything lives in this one structure; there are no package
// globals, and a session is discarded at termination.
type Session struct {
	cfg   config.GameConfig
	rng   *LCG
	tick  uint64
	score int
	phase Phase

	// Snake state. Head at index 0, tail last.
	snake   []core.Point
	dir     Direction
	pending Direction

	// Board state.
	food    core.Point
	hasFood bool
	free    *freeCells

	hudHeight int
}

// NewSession creates a session with the given configuration and RNG seed.
func NewSession(cfg config.GameConfig, seed int64) *Session {
	cfg.Normalize()
	s := &Session{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset reinitializes the session for a new game with a fresh seed.
func (s *Session) Reset(seed int64) {
	s.rng = NewLCG(seed)
	s.tick = 0
	s.score = 0
	s.phase = PhaseRunning
	s.hudHeight = 2
	s.initSnake()
	s.placeFood()
}

// initSnake places the initial snake centered on the board, heading right,
// with the body extending left of the head.
func (s *Session) initSnake() {
	w, h := s.cfg.Grid.Width, s.cfg.Grid.Height
	s.free = newFreeCells(w, h)

	head := core.Point{X: w / 2, Y: h / 2}
	length := s.cfg.Snake.InitialLength
	s.snake = make([]core.Point, 0, length)
	for i := 0; i < length; i++ {
		p := head.Offset(-i, 0)
		s.snake = append(s.snake, p)
		s.free.Occupy(p)
	}

	s.dir = DirRight
	s.pending = DirRight
}

// Step advances the simulation by one fixed tick: consume buffered input,
// then move. Terminal phases ignore further steps.
func (s *Session) Step(in core.InputFrame) {
	if s.phase.Terminal() {
		return
	}
	s.tick++
	s.processInput(in)
	s.advance()
}

// processInput routes directional actions through the shared arbitration
// routine. Unrecognized actions are ignored without error.
func (s *Session) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.setDirection(DirUp)
	case in.Has(core.ActionDown):
		s.setDirection(DirDown)
	case in.Has(core.ActionLeft):
		s.setDirection(DirLeft)
	case in.Has(core.ActionRight):
		s.setDirection(DirRight)
	}
}

// advance moves the snake one cell in the active direction, handling
// collision, growth and food respawn.
func (s *Session) advance() {
	s.dir = s.pending

	head := s.snake[0]
	newHead := head.Offset(s.dir.DX, s.dir.DY)

	if s.isBlocked(newHead) {
		s.phase = PhaseGameOver
		return
	}

	// Eating and shrinking are mutually exclusive within a tick: the head
	// either lands on food (grow, keep tail) or it doesn't (drop tail).
	grows := s.hasFood && newHead == s.food
	if !grows {
		tail := s.snake[len(s.snake)-1]
		s.snake = s.snake[:len(s.snake)-1]
		s.free.Release(tail)
	}

	s.snake = append([]core.Point{newHead}, s.snake...)
	s.free.Occupy(newHead)

	if grows {
		s.score++
		if !s.placeFood() {
			s.phase = PhaseWon
		}
	}
}

// isBlocked reports whether moving the head to p ends the game: out of
// bounds, or onto an occupied cell other than the tail. The tail cell is
// legal because it vacates this same tick; food never sits on the snake, so
// a move onto the tail can never be a growth move that would keep it.
func (s *Session) isBlocked(p core.Point) bool {
	if p.X < 0 || p.X >= s.cfg.Grid.Width || p.Y < 0 || p.Y >= s.cfg.Grid.Height {
		return true
	}
	if s.free.Contains(p) {
		return false
	}
	return p != s.snake[len(s.snake)-1]
}

// placeFood draws a uniformly random free cell for the food. Returns false
// when the board is full, which the caller treats as the won outcome.
func (s *Session) placeFood() bool {
	p, ok := s.free.Sample(s.rng)
	if !ok {
		s.hasFood = false
		return false
	}
	s.food = p
	s.hasFood = true
	return true
}

// RequestQuit transitions a running session to the quit phase. Quit is a
// clean exit, distinct from game over: no final score is reported for it.
func (s *Session) RequestQuit() {
	if s.phase == PhaseRunning {
		s.phase = PhaseQuit
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the number of food items consumed.
func (s *Session) Score() int {
	return s.score
}

// Length returns the current snake length in cells.
func (s *Session) Length() int {
	return len(s.snake)
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// Render draws the current game state into the screen buffer.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.renderHUD(dst)

	w, h := s.cfg.Grid.Width, s.cfg.Grid.Height
	requiredW := w + 2
	requiredH := h + s.hudHeight + 2
	if dst.Width() < requiredW || dst.Height() < requiredH {
		s.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Center the board below the HUD.
	offX := (dst.Width() - w) / 2
	offY := s.hudHeight + 1

	dst.DrawBoxColored(core.NewRect(offX-1, offY-1, w+2, h+2), core.ColorGray)

	if s.hasFood {
		dst.SetCell(offX+s.food.X, offY+s.food.Y, '*', core.ColorBrightRed)
	}

	for i, seg := range s.snake {
		if i == 0 {
			dst.SetCell(offX+seg.X, offY+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetCell(offX+seg.X, offY+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch s.phase {
	case PhaseGameOver:
		s.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d  (R to restart)", s.score))
	case PhaseWon:
		s.renderOverlay(dst, "Board Filled!", fmt.Sprintf("Final Score: %d  (R to restart)", s.score))
	}
}

// renderHUD draws the top status bar.
func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", s.score, len(s.snake))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
