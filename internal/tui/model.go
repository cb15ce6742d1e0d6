package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lifegrid/internal/app"
	icore "lifegrid/internal/core"
)

// gridTop is the terminal row of the first grid line; the status line sits above it.
const gridTop = 1

// Model is the Bubble Tea model driving a Controller from terminal input.
type Model struct {
	ctrl     *app.Controller
	keys     KeyMap
	help     help.Model
	tickRate int
	cellW    int

	pending   icore.Frame
	primary   bool
	secondary bool
	pointerX  int
	pointerY  int
	last      time.Time
	quitting  bool
}

// NewModel creates a model for ctrl. cellW is the number of terminal columns
// one cell occupies and must match the controller's horizontal cell size.
func NewModel(ctrl *app.Controller, tickRate, cellW int) Model {
	if cellW <= 0 {
		cellW = 1
	}
	return Model{
		ctrl:     ctrl,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
		cellW:    cellW,
		pointerX: -1,
		pointerY: -1,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey records key edges for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.pending.CloseRequested = true
	case key.Matches(msg, m.keys.Pause):
		m.pending.TogglePause = !m.pending.TogglePause
	case key.Matches(msg, m.keys.Clear):
		m.pending.Clear = true
	case key.Matches(msg, m.keys.Seed):
		m.pending.Seed = true
	}
	return m
}

// handleMouse tracks pointer position and held buttons. Terminals report
// presses and releases, not button state, so the state is kept here.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	m.pointerX = msg.X
	m.pointerY = msg.Y - gridTop
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.primary, m.secondary = true, false
		case tea.MouseButtonRight:
			m.primary, m.secondary = false, true
		}
	case tea.MouseActionRelease:
		m.primary, m.secondary = false, false
	}
	return m
}

// handleTick turns the accumulated input into one controller frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending
	frame.Primary = m.primary
	frame.Secondary = m.secondary
	frame.PointerX = m.pointerX
	frame.PointerY = m.pointerY
	if !m.last.IsZero() {
		frame.Delta = now.Sub(m.last)
	}
	m.last = now
	m.pending = icore.Frame{}

	if err := m.ctrl.Update(frame); err != nil {
		if errors.Is(err, app.ErrClosed) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tea.Sequence(tea.Println(err), tea.Quit)
	}
	return m, tickCmd(m.tickRate)
}

// View renders the status line, the grid and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	sim := m.ctrl.Sim()
	size := sim.Size()

	var sb strings.Builder
	if sim.Paused() {
		sb.WriteString(pausedStyle.Render("Paused"))
	} else {
		sb.WriteString(runningStyle.Render("Running"))
	}
	sb.WriteString(statsStyle.Render(fmt.Sprintf("  generation %d  population %d", sim.Generation(), sim.Population())))
	sb.WriteRune('\n')

	var cur cursor
	if sim.Paused() {
		cur.x, cur.y, cur.ok = m.ctrl.Hover()
	}
	sb.WriteString(RenderGrid(sim.Cells(), size.W, size.H, m.cellW, cur))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for ctrl and blocks until it exits.
func Run(ctrl *app.Controller, tickRate, cellW int) error {
	p := tea.NewProgram(
		NewModel(ctrl, tickRate, cellW),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
