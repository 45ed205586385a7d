package selection

// GesturePhase enumerates the states of a pointer drag.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GestureDragging
)

func (p GesturePhase) String() string {
	switch p {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// GestureState holds the drag endpoints of the gesture in progress.
// It is owned by a single interaction controller and cleared on End.
// The zero value is idle and ready to use.
type GestureState struct {
	phase   GesturePhase
	start   Point
	current Point
}

// Begin starts a new drag at p, discarding any previous one.
func (g *GestureState) Begin(p Point) {
	g.phase = GestureDragging
	g.start = p
	g.current = p
}

// Move updates the current endpoint and returns the normalized rectangle.
// ok is false when no drag is in progress.
func (g *GestureState) Move(p Point) (SelectionRect, bool) {
	if g.phase != GestureDragging {
		return SelectionRect{}, false
	}
	g.current = p
	return NormalizeSelection(g.start, g.current), true
}

// End finishes the drag at p and returns the final rectangle. The state is
// reset to idle either way.
func (g *GestureState) End(p Point) (SelectionRect, bool) {
	if g.phase != GestureDragging {
		return SelectionRect{}, false
	}
	g.current = p
	r := NormalizeSelection(g.start, g.current)
	g.Reset()
	return r, true
}

// Current returns the rectangle spanned so far.
func (g *GestureState) Current() (SelectionRect, bool) {
	if g.phase != GestureDragging {
		return SelectionRect{}, false
	}
	return NormalizeSelection(g.start, g.current), true
}

func (g *GestureState) Active() bool { return g.phase == GestureDragging }

func (g *GestureState) Phase() GesturePhase { return g.phase }

// Reset returns to idle.
func (g *GestureState) Reset() { *g = GestureState{} }
