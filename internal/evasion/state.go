package evasion

import "github.com/jask/valentine/internal/geom"

// Phase is the interaction phase. Accepted is terminal.
type Phase int

const (
	Evading Phase = iota
	Accepted
)

func (p Phase) String() string {
	if p == Accepted {
		return "accepted"
	}
	return "evading"
}

// Geometry is a snapshot of the layout, measured fresh for every event.
// Reference is in container coordinates.
type Geometry struct {
	Container geom.Size
	Target    geom.Size
	Reference geom.Rect
}

// Measured reports whether both the container and the target have been laid
// out.
func (g Geometry) Measured() bool {
	return !g.Container.Empty() && !g.Target.Empty()
}

// State is owned by the UI layer and threaded through every handler. Methods
// never mutate the receiver.
type State struct {
	Phase     Phase
	Target    geom.Point // center of the avoid-button
	Placed    bool
	Moves     int
	Fallbacks int
}

// Accepted reports whether the reference control has been activated.
func (s State) Accepted() bool {
	return s.Phase == Accepted
}

// TargetRect returns the avoid-button rectangle for size.
func (s State) TargetRect(size geom.Size) geom.Rect {
	return geom.RectAround(s.Target, size)
}

// Place runs the initial placement policy. A container too small for the
// padded target leaves the state unchanged.
func (s State) Place(g Geometry, p Params) State {
	if s.Accepted() || !g.Measured() {
		return s
	}
	if _, _, ok := Bounds(g.Container, g.Target, p.Padding); !ok {
		return s
	}
	s.Target = PlaceInitial(g.Container, g.Reference, g.Target, p)
	s.Placed = true
	return s
}

// Evade repositions the target when pointer comes within p.Threshold of its
// center. It reports whether the target moved.
func (s State) Evade(pointer geom.Point, g Geometry, p Params, rng Source) (State, bool) {
	if s.Accepted() || !g.Measured() || !s.Placed {
		return s, false
	}
	if !ShouldEvade(pointer, s.Target, p.Threshold) {
		return s, false
	}
	return s.Dodge(g, p, rng)
}

// Dodge repositions the target unconditionally, as on hover or press. It
// reports whether the target moved.
func (s State) Dodge(g Geometry, p Params, rng Source) (State, bool) {
	if s.Accepted() || !g.Measured() {
		return s, false
	}
	res := ComputeNewPosition(g.Container, s.Target, g.Target, g.Reference, p, rng)
	if !res.Moved {
		return s, false
	}
	s.Target = res.Pos
	s.Placed = true
	s.Moves++
	if res.Fallback {
		s.Fallbacks++
	}
	return s, true
}

// Accept moves to the terminal phase. It reports false when already accepted.
func (s State) Accept() (State, bool) {
	if s.Accepted() {
		return s, false
	}
	s.Phase = Accepted
	return s, true
}
