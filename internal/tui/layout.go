package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/valentine/internal/evasion"
	"github.com/jask/valentine/internal/geom"
)

const (
	headerRows = 3 // title, subtitle, blank
	footerRows = 4 // hint, result, footer, help
	boxBorder  = 1

	// yesAnchorX is the accept-button center as a fraction of the
	// playground width.
	yesAnchorX = 0.32
)

// layout is a fresh measurement of the screen. Nothing here is cached
// between events.
type layout struct {
	origin  geom.Point // top-left of the playground interior, screen cells
	size    geom.Size  // playground interior
	yes     string
	no      string
	yesSize geom.Size
	noSize  geom.Size
	yesRect geom.Rect // playground coords
}

func (l layout) ok() bool {
	return !l.size.Empty()
}

func (l layout) geometry() evasion.Geometry {
	return evasion.Geometry{Container: l.size, Target: l.noSize, Reference: l.yesRect}
}

// local converts a screen cell to playground coordinates, using the cell
// center.
func (l layout) local(x, y int) geom.Point {
	return geom.Point{X: float64(x) - l.origin.X + 0.5, Y: float64(y) - l.origin.Y + 0.5}
}

func (l layout) bounds() geom.Rect {
	return geom.Rect{W: l.size.W, H: l.size.H}
}

func (a *App) measure() layout {
	l := layout{
		origin: geom.Point{X: boxBorder, Y: headerRows + boxBorder},
		size: geom.Size{
			W: float64(max(a.width-2*boxBorder, 0)),
			H: float64(max(a.height-headerRows-footerRows-2*boxBorder, 0)),
		},
	}

	yes, no := yesStyle, noStyle
	if a.state.Accepted() {
		yes, no = disabledStyle, disabledStyle
	}
	l.yes = yes.Render("Yes")
	l.no = no.Render("No")
	l.yesSize = geom.Size{W: float64(lipgloss.Width(l.yes)), H: float64(lipgloss.Height(l.yes))}
	l.noSize = geom.Size{W: float64(lipgloss.Width(l.no)), H: float64(lipgloss.Height(l.no))}

	r := snapRect(geom.Point{X: l.size.W * yesAnchorX, Y: l.size.H / 2}, l.yesSize)
	r.X = max(0, min(r.X, l.size.W-r.W))
	r.Y = max(0, min(r.Y, l.size.H-r.H))
	l.yesRect = r
	return l
}

// noRect is the avoid-button rectangle as drawn.
func (a *App) noRect(l layout) geom.Rect {
	return snapRect(a.state.Target, l.noSize)
}

// snapRect centers a rectangle of size s on c and rounds its origin to whole
// cells.
func snapRect(c geom.Point, s geom.Size) geom.Rect {
	r := geom.RectAround(c, s)
	r.X = math.Round(r.X)
	r.Y = math.Round(r.Y)
	return r
}
