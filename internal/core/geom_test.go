package core

import "testing"

func TestPointOffset(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		dx, dy   int
		expected Point
	}{
		{"move right", Point{X: 3, Y: 4}, 1, 0, Point{X: 4, Y: 4}},
		{"move left", Point{X: 3, Y: 4}, -1, 0, Point{X: 2, Y: 4}},
		{"move down", Point{X: 3, Y: 4}, 0, 1, Point{X: 3, Y: 5}},
		{"move up", Point{X: 3, Y: 4}, 0, -1, Point{X: 3, Y: 3}},
		{"no move", Point{X: 0, Y: 0}, 0, 0, Point{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.start.Offset(tc.dx, tc.dy)
			if got != tc.expected {
				t.Errorf("Offset(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestPointEquality(t *testing.T) {
	// Points are value types: same coordinates, same cell.
	a := Point{X: 2, Y: 7}
	b := Point{X: 2, Y: 7}
	if a != b {
		t.Error("Points with equal coordinates should be equal")
	}
	if (Point{X: 2, Y: 7}) == (Point{X: 7, Y: 2}) {
		t.Error("Points with swapped coordinates should differ")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 5, 4)

	inside := [][2]int{{2, 3}, {6, 6}, {4, 5}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, expected true", p[0], p[1])
		}
	}

	outside := [][2]int{{1, 3}, {7, 3}, {2, 2}, {2, 7}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if r.Right() != 11 {
		t.Errorf("Right() = %d, expected 11", r.Right())
	}
	if r.Bottom() != 22 {
		t.Errorf("Bottom() = %d, expected 22", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 6 || cy != 12 {
		t.Errorf("Center() = (%d, %d), expected (6, 12)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(42, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}
