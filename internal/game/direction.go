package game

// Direction is a unit vector along one of the four grid axes. Exactly one
// direction is active at a time; the zero value is not a valid heading.
type Direction struct {
	DX, DY int
}

// The four legal headings. Y grows downward, matching screen coordinates.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Dot returns the dot product of two directions.
func (d Direction) Dot(o Direction) int {
	return d.DX*o.DX + d.DY*o.DY
}

// IsReversalOf reports whether d is the exact opposite of o. For unit axis
// vectors this is equivalent to a dot product of -1.
func (d Direction) IsReversalOf(o Direction) bool {
	return d.Dot(o) == -1
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// setDirection updates the pending heading unless the request is a 180°
// reversal of the active one, in which case it is silently dropped. This is
// the single arbitration routine for every input path, so deferred input and
// same-tick key events cannot diverge.
func (s *Session) setDirection(requested Direction) {
	if requested.IsReversalOf(s.dir) {
		return
	}
	s.pending = requested
}
