package game

import (
	"testing"

	"github.com/T0rrag/SnakeCAD/internal/config"
	"github.com/T0rrag/SnakeCAD/internal/core"
)

// smallConfig returns a width x height board config.
func smallConfig(width, height int) config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Grid.Width = width
	cfg.Grid.Height = height
	return cfg
}

// placeSnake overwrites the session's snake with an explicit body (head
// first) and heading, rebuilding the free-cell set to match.
func placeSnake(s *Session, body []core.Point, dir Direction) {
	s.free = newFreeCells(s.cfg.Grid.Width, s.cfg.Grid.Height)
	s.snake = append([]core.Point(nil), body...)
	for _, p := range body {
		s.free.Occupy(p)
	}
	s.dir = dir
	s.pending = dir
}

// setFood pins the food to a known cell.
func setFood(s *Session, p core.Point) {
	s.food = p
	s.hasFood = true
}

func TestInitialState(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 12345)

	want := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if len(s.snake) != len(want) {
		t.Fatalf("Initial snake length = %d, want %d", len(s.snake), len(want))
	}
	for i, p := range want {
		if s.snake[i] != p {
			t.Errorf("Segment %d = %v, want %v", i, s.snake[i], p)
		}
	}
	if s.dir != DirRight {
		t.Errorf("Initial direction = %s, want right", s.dir)
	}
	if s.score != 0 {
		t.Errorf("Initial score = %d, want 0", s.score)
	}
	if s.phase != PhaseRunning {
		t.Errorf("Initial phase = %s, want running", s.phase)
	}
	if !s.hasFood {
		t.Fatal("Food should be placed at session start")
	}
	for _, seg := range s.snake {
		if seg == s.food {
			t.Errorf("Initial food %v sits on the snake", s.food)
		}
	}
}

func TestOneTickMovesHeadByDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
	}{
		{"right", DirRight},
		{"left", DirLeft},
		{"up", DirUp},
		{"down", DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(config.DefaultGameConfig(), 1)
			placeSnake(s, []core.Point{{X: 10, Y: 10}}, tc.dir)
			setFood(s, core.Point{X: 0, Y: 0})

			s.Step(core.NewInputFrame())

			want := core.Point{X: 10 + tc.dir.DX, Y: 10 + tc.dir.DY}
			if s.snake[0] != want {
				t.Errorf("Head = %v, want %v (exactly head + direction)", s.snake[0], want)
			}
		})
	}
}

func TestEndToEndSingleTick(t *testing.T) {
	// Initial snake [(10,10),(9,10),(8,10)] heading right on 20x20:
	// after one tick with no input it becomes [(11,10),(10,10),(9,10)].
	s := NewSession(config.DefaultGameConfig(), 1)
	setFood(s, core.Point{X: 0, Y: 0})

	s.Step(core.NewInputFrame())

	want := []core.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	for i, p := range want {
		if s.snake[i] != p {
			t.Errorf("Segment %d = %v, want %v", i, s.snake[i], p)
		}
	}
	if s.score != 0 {
		t.Errorf("Score changed to %d on a plain move", s.score)
	}
	if s.phase != PhaseRunning {
		t.Errorf("Phase = %s, want running", s.phase)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  Direction
	}{
		{"right wall", core.Point{X: 19, Y: 10}, DirRight},
		{"left wall", core.Point{X: 0, Y: 10}, DirLeft},
		{"top wall", core.Point{X: 10, Y: 0}, DirUp},
		{"bottom wall", core.Point{X: 10, Y: 19}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(config.DefaultGameConfig(), 1)
			placeSnake(s, []core.Point{tc.head}, tc.dir)
			setFood(s, core.Point{X: 5, Y: 5})

			s.Step(core.NewInputFrame())

			if s.phase != PhaseGameOver {
				t.Errorf("Phase = %s after driving into the %s, want game_over", s.phase, tc.name)
			}
		})
	}
}

func TestEndToEndRightWall(t *testing.T) {
	// Snake [(19,10),(18,10),(17,10)] heading right on a width-20 grid:
	// next advance puts the head at x=20, out of bounds.
	s := NewSession(config.DefaultGameConfig(), 1)
	placeSnake(s, []core.Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}, DirRight)
	setFood(s, core.Point{X: 0, Y: 0})

	s.Step(core.NewInputFrame())

	if s.phase != PhaseGameOver {
		t.Errorf("Phase = %s, want game_over", s.phase)
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at (5,5) moving right into (6,5), a body segment that is not
	// the tail.
	s := NewSession(config.DefaultGameConfig(), 1)
	placeSnake(s, []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 7, Y: 5},
	}, DirRight)
	setFood(s, core.Point{X: 0, Y: 0})

	s.Step(core.NewInputFrame())

	if s.phase != PhaseGameOver {
		t.Errorf("Phase = %s after self collision, want game_over", s.phase)
	}
}

func TestMovingOntoVacatingTailIsLegal(t *testing.T) {
	// Square of 4 segments. The head moves onto the tail cell, which
	// vacates this same tick because the move is a non-growth move.
	s := NewSession(config.DefaultGameConfig(), 1)
	placeSnake(s, []core.Point{
		{X: 5, Y: 5}, // head
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6}, // tail, about to vacate
	}, DirDown)
	setFood(s, core.Point{X: 0, Y: 0})

	s.Step(core.NewInputFrame())

	if s.phase != PhaseRunning {
		t.Fatalf("Phase = %s after chasing the vacating tail, want running", s.phase)
	}
	if s.snake[0] != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Head = %v, want (5,6)", s.snake[0])
	}
	if len(s.snake) != 4 {
		t.Errorf("Length = %d after a plain move, want 4", len(s.snake))
	}
}

func TestGrowthOnFood(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	initialLen := len(s.snake)
	head := s.snake[0]
	setFood(s, core.Point{X: head.X + 1, Y: head.Y})

	s.Step(core.NewInputFrame())

	if len(s.snake) != initialLen+1 {
		t.Errorf("Length = %d after eating, want %d", len(s.snake), initialLen+1)
	}
	if s.score != 1 {
		t.Errorf("Score = %d after eating, want 1", s.score)
	}
	if !s.hasFood {
		t.Fatal("Food should be respawned after eating")
	}
	for _, seg := range s.snake {
		if seg == s.food {
			t.Errorf("Respawned food %v sits on the snake", s.food)
		}
	}
}

func TestPlainMoveChangesNothingButPosition(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	setFood(s, core.Point{X: 0, Y: 0})
	initialLen := len(s.snake)
	food := s.food

	for i := 0; i < 5; i++ {
		s.Step(core.NewInputFrame())
	}

	if len(s.snake) != initialLen {
		t.Errorf("Length = %d after plain moves, want %d", len(s.snake), initialLen)
	}
	if s.score != 0 {
		t.Errorf("Score = %d after plain moves, want 0", s.score)
	}
	if s.food != food {
		t.Errorf("Food moved from %v to %v without being eaten", food, s.food)
	}
}

func TestFoodPlacementNeverOnSnake(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 999)

	for i := 0; i < 200; i++ {
		if !s.placeFood() {
			t.Fatal("placeFood failed on a mostly empty board")
		}
		for _, seg := range s.snake {
			if seg == s.food {
				t.Fatalf("Iteration %d: food %v placed on the snake", i, s.food)
			}
		}
	}
}

func TestBoardFullOutcome(t *testing.T) {
	// Fill an 8x8 board except (0,0), put the food there, and eat it.
	// With no free cell left for the next food the session is won.
	s := NewSession(smallConfig(8, 8), 1)

	var body []core.Point
	body = append(body, core.Point{X: 1, Y: 0}) // head
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := core.Point{X: x, Y: y}
			if p == (core.Point{X: 0, Y: 0}) || p == (core.Point{X: 1, Y: 0}) {
				continue
			}
			body = append(body, p)
		}
	}
	placeSnake(s, body, DirLeft)
	setFood(s, core.Point{X: 0, Y: 0})
	prevScore := s.score

	s.Step(core.NewInputFrame())

	if s.phase != PhaseWon {
		t.Fatalf("Phase = %s after filling the board, want won", s.phase)
	}
	if s.score != prevScore+1 {
		t.Errorf("Score = %d, want %d", s.score, prevScore+1)
	}
	if s.free.Len() != 0 {
		t.Errorf("Free cells = %d on a full board, want 0", s.free.Len())
	}
}

func TestReversalInputIgnoredDuringStep(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	setFood(s, core.Point{X: 0, Y: 0})

	// Initial heading is right; request left through the input path.
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	s.Step(in)

	if s.dir != DirRight {
		t.Errorf("Direction = %s after a reversal request, want right", s.dir)
	}
	if s.snake[0] != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Head = %v, reversal must not alter the move", s.snake[0])
	}
}

func TestTurnAppliedOnNextAdvance(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	setFood(s, core.Point{X: 0, Y: 0})

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	s.Step(in)

	if s.dir != DirDown {
		t.Errorf("Direction = %s after a down request, want down", s.dir)
	}
	if s.snake[0] != (core.Point{X: 10, Y: 11}) {
		t.Errorf("Head = %v, want (10,11)", s.snake[0])
	}
}

func TestQuitIsTerminalAndClean(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	setFood(s, core.Point{X: 0, Y: 0})

	s.RequestQuit()
	if s.phase != PhaseQuit {
		t.Fatalf("Phase = %s after quit request, want quit", s.phase)
	}

	snap := s.Snapshot()
	s.Step(core.NewInputFrame())
	if s.Snapshot() != snap {
		t.Error("Step mutated a quit session")
	}
}

func TestTerminalPhasesStayTerminal(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	placeSnake(s, []core.Point{{X: 19, Y: 10}}, DirRight)
	setFood(s, core.Point{X: 0, Y: 0})
	s.Step(core.NewInputFrame())

	if s.phase != PhaseGameOver {
		t.Fatalf("Setup failed, phase = %s", s.phase)
	}

	// Neither quitting nor stepping leaves game over.
	s.RequestQuit()
	if s.phase != PhaseGameOver {
		t.Errorf("Quit request left game over, phase = %s", s.phase)
	}
	s.Step(core.NewInputFrame())
	if s.phase != PhaseGameOver {
		t.Errorf("Step left game over, phase = %s", s.phase)
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Two sessions with the same seed and input script must stay in
	// lockstep for the whole run.
	script := func(tick int, in *core.InputFrame) {
		switch tick {
		case 5:
			in.Set(core.ActionDown)
		case 12:
			in.Set(core.ActionLeft)
		case 20:
			in.Set(core.ActionUp)
		case 30:
			in.Set(core.ActionRight)
		}
	}

	s1 := NewSession(config.DefaultGameConfig(), 424242)
	s2 := NewSession(config.DefaultGameConfig(), 424242)

	in := core.NewInputFrame()
	for tick := 0; tick < 100; tick++ {
		in.Clear()
		script(tick, &in)
		s1.Step(in)
		s2.Step(in)

		if s1.Snapshot() != s2.Snapshot() {
			t.Fatalf("Sessions diverged at tick %d:\n%+v\n%+v",
				tick, s1.Snapshot(), s2.Snapshot())
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 1)
	setFood(s, core.Point{X: 11, Y: 10})
	s.Step(core.NewInputFrame()) // eat

	if s.score != 1 {
		t.Fatalf("Setup failed, score = %d", s.score)
	}

	s.Reset(2)

	if s.score != 0 || s.phase != PhaseRunning || len(s.snake) != 3 {
		t.Errorf("Reset left score=%d phase=%s len=%d", s.score, s.phase, len(s.snake))
	}
	if s.snake[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Reset head = %v, want (10,10)", s.snake[0])
	}
}

func TestRenderShowsBoardAndHUD(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 444)
	screen := core.NewScreen(80, 30)

	s.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("Rendered screen should not be empty")
	}
	if row := screen.Row(0); !containsSubstring(row, "Score") {
		t.Errorf("HUD row missing score: %q", row)
	}
	if !containsSubstring(content, "O") {
		t.Error("Rendered screen missing the snake head")
	}
	if !containsSubstring(content, "*") {
		t.Error("Rendered screen missing the food")
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := NewSession(config.DefaultGameConfig(), 444)
	screen := core.NewScreen(30, 10)

	s.Render(screen)

	if !containsSubstring(screen.String(), "small") {
		t.Error("Undersized screen should show the too-small overlay")
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
