// Package evasion computes where the avoid-button goes next. Every function
// here is pure: callers measure geometry, pass it in, and apply the result.
package evasion

import (
	"math/rand/v2"

	"github.com/jask/valentine/internal/geom"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed is replaced with a
// random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Bounds returns the valid center ranges for a target of size target inside
// container, keeping padding clear on every side. ok is false when either
// range is inverted.
func Bounds(container, target geom.Size, padding float64) (xr, yr geom.Range, ok bool) {
	half := target.Half()
	xr = geom.Range{Min: padding + half.W, Max: container.W - padding - half.W}
	yr = geom.Range{Min: padding + half.H, Max: container.H - padding - half.H}
	return xr, yr, !xr.Empty() && !yr.Empty()
}

// MinDistance is the smallest center-to-center distance that keeps the two
// buttons apart with gap to spare.
func MinDistance(target, reference geom.Size, gap float64) float64 {
	return max(target.W, reference.W)/2 + max(target.H, reference.H)/2 + gap
}

// Result describes a computed position.
type Result struct {
	Pos      geom.Point
	Moved    bool
	Fallback bool
	Attempts int
}

// ComputeNewPosition picks a new center for the target. It draws up to
// p.MaxAttempts uniform points and keeps the first one at least MinDistance
// away from the reference center. When none qualifies it takes the valid
// corner opposite the reference. If the container cannot fit the target the
// current position is returned unchanged.
func ComputeNewPosition(container geom.Size, current geom.Point, target geom.Size, reference geom.Rect, p Params, rng Source) Result {
	xr, yr, ok := Bounds(container, target, p.Padding)
	if !ok {
		return Result{Pos: current}
	}

	ref := reference.Center()
	minDist := MinDistance(target, reference.Size(), p.Gap)

	attempts := max(p.MaxAttempts, 1)
	for i := 0; i < attempts; i++ {
		cand := geom.Point{X: xr.Lerp(rng.Float64()), Y: yr.Lerp(rng.Float64())}
		if geom.Distance(cand, ref) >= minDist {
			return Result{Pos: cand, Moved: true, Attempts: i + 1}
		}
	}

	return Result{Pos: Fallback(container, xr, yr, ref), Moved: true, Fallback: true, Attempts: attempts}
}

// Fallback returns the corner of the valid ranges on the far side of the
// container midlines from ref.
func Fallback(container geom.Size, xr, yr geom.Range, ref geom.Point) geom.Point {
	pos := geom.Point{X: xr.Min, Y: yr.Min}
	if ref.X < container.W/2 {
		pos.X = xr.Max
	}
	if ref.Y < container.H/2 {
		pos.Y = yr.Max
	}
	return pos
}

// ShouldEvade reports whether pointer is strictly closer than threshold to
// the target center.
func ShouldEvade(pointer, targetCenter geom.Point, threshold float64) bool {
	return geom.Distance(pointer, targetCenter) < threshold
}

// PlaceInitial returns the starting center for the target. The result is
// clamped into the valid ranges when the container can hold the target.
func PlaceInitial(container geom.Size, reference geom.Rect, target geom.Size, p Params) geom.Point {
	var pos geom.Point
	switch p.Placement {
	case PlacementFixed:
		pos = geom.Point{X: container.W * 0.62, Y: container.H * 0.58}
	default:
		pos = geom.Point{X: container.W * 0.68, Y: reference.Center().Y}
	}
	if xr, yr, ok := Bounds(container, target, p.Padding); ok {
		pos = geom.Point{X: xr.Clamp(pos.X), Y: yr.Clamp(pos.Y)}
	}
	return pos
}
