package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"lifegrid/internal/app"
	"lifegrid/pkg/sims/life"
)

func newTestModel(t *testing.T, paused bool) Model {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.StartPaused = paused
	cfg.TickInterval = 100 * time.Millisecond
	ctrl := app.NewController(life.New(8, 6), cfg, 2, 1, log.New(io.Discard))
	return NewModel(ctrl, 60, 2)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMouseEditsWhilePaused(t *testing.T) {
	m := newTestModel(t, true)
	t0 := time.Unix(0, 0)

	m, _ = send(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg(t0))
	if !m.ctrl.Sim().IsAlive(2, 2) {
		t.Fatal("left click must set the cell under the pointer alive")
	}

	m, _ = send(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = send(t, m, TickMsg(t0.Add(time.Second)))
	if m.ctrl.Sim().IsAlive(2, 2) {
		t.Fatal("right click must set the cell dead")
	}
	if m.ctrl.Sim().Generation() != 0 {
		t.Fatal("paused ticks must not step")
	}
}

func TestStatusLineClickIsIgnored(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg(time.Unix(0, 0)))
	if m.ctrl.Sim().Population() != 0 {
		t.Fatal("clicks above the grid must not edit cells")
	}
}

func TestEscapeTogglesAndTicksStep(t *testing.T) {
	m := newTestModel(t, true)
	sim := m.ctrl.Sim()
	sim.SetCell(2, 2, true)
	sim.SetCell(3, 2, true)
	sim.SetCell(4, 2, true)

	t0 := time.Unix(100, 0)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := send(t, m, TickMsg(t0))
	if sim.Paused() {
		t.Fatal("esc must resume the simulation")
	}
	if cmd == nil || isQuit(cmd) {
		t.Fatal("tick must schedule the next tick")
	}
	if !strings.Contains(m.View(), "Running") {
		t.Fatal("status line should report running")
	}

	m, _ = send(t, m, TickMsg(t0.Add(150*time.Millisecond)))
	if sim.Generation() != 1 {
		t.Fatalf("expected one step, got generation %d", sim.Generation())
	}
	if !sim.IsAlive(3, 1) || !sim.IsAlive(3, 3) {
		t.Fatal("blinker did not rotate")
	}
}

func TestQuitKeyEndsProgramOnNextTick(t *testing.T) {
	m := newTestModel(t, true)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Fatal("key handling must not issue commands")
	}
	m, cmd = send(t, m, TickMsg(time.Unix(0, 0)))
	if !isQuit(cmd) {
		t.Fatal("expected quit after a close request")
	}
	if m.View() != "" {
		t.Fatal("view should be empty once quitting")
	}
}

func TestViewShowsPausedGridAndHelp(t *testing.T) {
	m := newTestModel(t, true)
	m.ctrl.Sim().SetCell(0, 0, true)
	m.ctrl.Sim().SetCell(7, 5, true)

	view := m.View()
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[0], "Paused") {
		t.Fatalf("status line %q should report paused", lines[0])
	}
	if got := strings.Count(view, "█"); got != 4 {
		t.Fatalf("expected 2 cells of width 2, counted %d blocks", got)
	}
	if len(lines) != 1+6+1 {
		t.Fatalf("expected status, 6 grid rows and help, got %d lines", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Fatalf("help line %q should list the quit binding", lines[len(lines)-1])
	}
}
