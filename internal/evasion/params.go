package evasion

import (
	"errors"
	"fmt"
)

// Placement selects how the avoid-button is first positioned.
type Placement string

const (
	// PlacementAligned puts the target at 68% of the container width,
	// level with the reference center.
	PlacementAligned Placement = "aligned"
	// PlacementFixed puts the target at 62% width, 58% height regardless of
	// where the reference is.
	PlacementFixed Placement = "fixed"
)

// Params tunes the controller.
type Params struct {
	Padding     float64
	Gap         float64
	MaxAttempts int
	Threshold   float64
	Placement   Placement
}

// DefaultParams returns values sized for terminal cells.
func DefaultParams() Params {
	return Params{
		Padding:     1,
		Gap:         2,
		MaxAttempts: 35,
		Threshold:   8,
		Placement:   PlacementAligned,
	}
}

var errInvalidParams = errors.New("invalid evasion params")

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	switch {
	case p.Padding < 0:
		return fmt.Errorf("%w: padding %v < 0", errInvalidParams, p.Padding)
	case p.Gap < 0:
		return fmt.Errorf("%w: gap %v < 0", errInvalidParams, p.Gap)
	case p.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts %d < 1", errInvalidParams, p.MaxAttempts)
	case p.Threshold <= 0:
		return fmt.Errorf("%w: threshold %v <= 0", errInvalidParams, p.Threshold)
	}
	switch p.Placement {
	case PlacementAligned, PlacementFixed:
	default:
		return fmt.Errorf("%w: unknown placement %q", errInvalidParams, p.Placement)
	}
	return nil
}

// IsInvalidParams reports whether err came from Params.Validate.
func IsInvalidParams(err error) bool {
	return errors.Is(err, errInvalidParams)
}
