package evasion

import (
	"testing"

	"github.com/jask/valentine/internal/geom"
)

func testGeometry() Geometry {
	return Geometry{
		Container: geom.Size{W: 80, H: 16},
		Target:    geom.Size{W: 8, H: 3},
		Reference: geom.RectAround(geom.Point{X: 25.6, Y: 8}, geom.Size{W: 9, H: 3}),
	}
}

func TestStatePlace(t *testing.T) {
	s := State{}.Place(testGeometry(), DefaultParams())
	if !s.Placed {
		t.Fatal("expected state to be placed")
	}
	if !near(s.Target, geom.Point{X: 80 * 0.68, Y: 8}) {
		t.Errorf("target = %+v", s.Target)
	}
}

func TestStatePlaceSkipsUnmeasuredGeometry(t *testing.T) {
	g := testGeometry()
	g.Target = geom.Size{}
	s := State{}.Place(g, DefaultParams())
	if s.Placed {
		t.Error("unmeasured target should not be placed")
	}
}

func TestStatePlaceSkipsDegenerateContainer(t *testing.T) {
	g := testGeometry()
	g.Container = geom.Size{W: 80, H: 4}
	start := State{Target: geom.Point{X: 50, Y: 8}, Placed: true}
	if s := start.Place(g, DefaultParams()); s != start {
		t.Errorf("degenerate container changed placement: %+v", s)
	}
}

func TestStateEvadeOnlyWithinThreshold(t *testing.T) {
	g := testGeometry()
	p := DefaultParams()
	s := State{}.Place(g, p)

	far := geom.Point{X: s.Target.X - p.Threshold, Y: s.Target.Y}
	next, moved := s.Evade(far, g, p, NewSource(3))
	if moved || next.Target != s.Target {
		t.Fatalf("pointer at threshold moved target: %+v", next)
	}

	nearby := geom.Point{X: s.Target.X - 1, Y: s.Target.Y}
	next, moved = s.Evade(nearby, g, p, NewSource(3))
	if !moved {
		t.Fatal("expected target to move")
	}
	if next.Moves != 1 {
		t.Errorf("moves = %d, want 1", next.Moves)
	}
	box := geom.Rect{W: g.Container.W, H: g.Container.H}
	if !box.ContainsRect(next.TargetRect(g.Target).Inflate(p.Padding)) {
		t.Errorf("target %+v escaped container", next.TargetRect(g.Target))
	}
}

func TestStateEvadeBeforePlacement(t *testing.T) {
	s, moved := State{}.Evade(geom.Point{}, testGeometry(), DefaultParams(), NewSource(1))
	if moved || s.Placed {
		t.Error("unplaced target should ignore pointer movement")
	}
}

func TestStateDodgeCountsFallbacks(t *testing.T) {
	g := Geometry{
		Container: geom.Size{W: 100, H: 50},
		Target:    geom.Size{W: 20, H: 10},
		Reference: geom.RectAround(geom.Point{X: 30, Y: 20}, geom.Size{W: 80, H: 40}),
	}
	p := Params{Gap: 30, MaxAttempts: 5, Threshold: 1, Placement: PlacementAligned}
	s, moved := State{}.Dodge(g, p, NewSource(9))
	if !moved || s.Fallbacks != 1 || s.Moves != 1 {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestStateDodgeDegenerateContainer(t *testing.T) {
	g := testGeometry()
	g.Container = geom.Size{W: 8, H: 3}
	start := State{Target: geom.Point{X: 4, Y: 1}, Placed: true}
	s, moved := start.Dodge(g, DefaultParams(), NewSource(1))
	if moved || s != start {
		t.Errorf("degenerate container changed state: %+v", s)
	}
}

func TestStateAcceptFreezesTarget(t *testing.T) {
	g := testGeometry()
	p := DefaultParams()
	s := State{}.Place(g, p)

	s, fired := s.Accept()
	if !fired || !s.Accepted() {
		t.Fatal("first accept should fire")
	}
	if _, fired := s.Accept(); fired {
		t.Error("second accept should not fire")
	}

	frozen := s.Target
	rng := NewSource(5)
	s, moved := s.Evade(frozen, g, p, rng)
	if moved || s.Target != frozen {
		t.Error("Evade moved an accepted target")
	}
	s, moved = s.Dodge(g, p, rng)
	if moved || s.Target != frozen {
		t.Error("Dodge moved an accepted target")
	}
	g.Container = geom.Size{W: 200, H: 40}
	if s = s.Place(g, p); s.Target != frozen {
		t.Error("Place moved an accepted target")
	}
}

func TestPhaseString(t *testing.T) {
	if Evading.String() != "evading" || Accepted.String() != "accepted" {
		t.Errorf("unexpected phase names %q %q", Evading, Accepted)
	}
}
