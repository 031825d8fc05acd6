package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/valentine/internal/applog"
	"github.com/jask/valentine/internal/config"
	"github.com/jask/valentine/internal/evasion"
	"github.com/jask/valentine/internal/geom"
)

const (
	title    = "Will you be my Valentine?"
	subtitle = "Be honest. But also… choose wisely."
	hint     = "Tip: the “No” button is… shy."
)

// App is the bubbletea model hosting the evasion controller.
type App struct {
	cfg    config.Config
	params evasion.Params
	log    *slog.Logger
	rng    evasion.Source
	keys   keyMap
	help   help.Model

	width  int
	height int

	state    evasion.State
	hovering bool // pointer is over the avoid-button
	message  string

	burstSeq     int
	burstVisible bool
}

type burstDoneMsg struct {
	seq int
}

// New builds the model. A nil logger discards records.
func New(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = applog.Discard()
	}
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(colorSubtext0)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(colorOverlay1)
	return &App{
		cfg:    cfg,
		params: cfg.Params(),
		log:    logger,
		rng:    evasion.NewSource(cfg.Evasion.Seed),
		keys:   newKeyMap(),
		help:   h,
	}
}

// State returns the current evasion state.
func (a *App) State() evasion.State {
	return a.state
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
		a.relayout()
		return a, nil
	case tea.MouseMsg:
		return a.handleMouse(m)
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Accept):
			return a, a.accept()
		}
	case burstDoneMsg:
		if m.seq == a.burstSeq {
			a.burstVisible = false
		}
	}
	return a, nil
}

// relayout re-runs initial placement after a resize. Once accepted the
// avoid-button stays where it was.
func (a *App) relayout() {
	if a.state.Accepted() {
		return
	}
	l := a.measure()
	if !l.ok() {
		return
	}
	prev := a.state
	a.state = a.state.Place(l.geometry(), a.params)
	if a.state.Target == prev.Target && a.state.Placed == prev.Placed {
		return
	}
	a.log.Debug("placed", slog.Float64("x", a.state.Target.X), slog.Float64("y", a.state.Target.Y),
		slog.Int("width", a.width), slog.Int("height", a.height))
}

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.state.Accepted() {
		return a, nil
	}
	l := a.measure()
	if !l.ok() {
		return a, nil
	}
	p := l.local(m.X, m.Y)
	if !l.bounds().Contains(p) {
		a.hovering = false
		return a, nil
	}

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if l.yesRect.Contains(p) {
			return a, a.accept()
		}
		if a.noRect(l).Contains(p) {
			a.dodge(l, p, "press")
		}
	case tea.MouseActionMotion:
		over := a.state.Placed && a.noRect(l).Contains(p)
		if over && !a.hovering {
			a.dodge(l, p, "hover")
			return a, nil
		}
		next, moved := a.state.Evade(p, l.geometry(), a.params, a.rng)
		if moved {
			a.logMove(next, "proximity")
		}
		a.state = next
		a.hovering = a.noRect(l).Contains(p)
	}
	return a, nil
}

func (a *App) dodge(l layout, p geom.Point, trigger string) {
	next, moved := a.state.Dodge(l.geometry(), a.params, a.rng)
	if moved {
		a.logMove(next, trigger)
	}
	a.state = next
	a.hovering = a.noRect(l).Contains(p)
}

func (a *App) logMove(s evasion.State, trigger string) {
	a.log.Debug("evaded",
		slog.String("trigger", trigger),
		slog.Float64("x", s.Target.X),
		slog.Float64("y", s.Target.Y),
		slog.Bool("fallback", s.Fallbacks > a.state.Fallbacks),
		slog.Int("moves", s.Moves),
	)
}

func (a *App) accept() tea.Cmd {
	next, fired := a.state.Accept()
	if !fired {
		return nil
	}
	a.state = next
	a.message = a.cfg.UI.Message
	a.burstSeq++
	a.burstVisible = true
	a.log.Info("accepted", slog.Int("moves", next.Moves), slog.Int("fallbacks", next.Fallbacks))

	seq := a.burstSeq
	return tea.Tick(a.cfg.UI.BurstDuration, func(time.Time) tea.Msg {
		return burstDoneMsg{seq: seq}
	})
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return title + "\n\n" + a.help.View(a.keys)
	}
	l := a.measure()
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString(center(titleStyle.Render(title)) + "\n")
	b.WriteString(center(subtitleStyle.Render(subtitle)) + "\n\n")
	b.WriteString(a.renderPlayground(l) + "\n")
	b.WriteString(center(hintStyle.Render(hint)) + "\n")
	b.WriteString(center(resultStyle.Render(a.message)) + "\n")
	b.WriteString(center(footerStyle.Render(a.cfg.UI.Footer)) + "\n")
	b.WriteString(a.help.View(a.keys))
	view := b.String()

	if a.burstVisible {
		view = a.overlayBurst(view)
	}
	return view
}

func (a *App) renderPlayground(l layout) string {
	if !l.ok() {
		return ""
	}
	w, h := int(l.size.W), int(l.size.H)
	grid := blankGrid(w, h)
	grid = overlayAt(grid, l.yes, int(l.yesRect.X), int(l.yesRect.Y), w, h)
	if a.state.Placed {
		// a frozen button can sit outside a playground that shrank after
		// acceptance
		r := a.noRect(l)
		grid = overlayAt(grid, l.no, max(int(r.X), 0), max(int(r.Y), 0), w, h)
	}
	return boxStyle.Render(clipLines(grid, w))
}

func (a *App) overlayBurst(view string) string {
	burst := burstStyle.Render(a.cfg.UI.Burst)
	lines := splitLines(burst)
	x := max((a.width-maxLineWidth(lines))/2, 0)
	y := max((a.height-len(lines))/2, 0)
	return overlayAt(view, burst, x, y, a.width, a.height)
}
