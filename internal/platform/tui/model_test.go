package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// fakeGame records the input of every step.
type fakeGame struct {
	resets int
	inputs []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

func newTestModel(g *fakeGame, inSession bool) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	return NewModel(g, cfg, Options{HoldFrames: 2, SwipeThreshold: 4, InSession: inSession})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func tick(m Model) TickMsg {
	return TickMsg{Time: time.Now(), Loop: m.loop}
}

func TestModelHeldMovement(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, false)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 3; i++ {
		m = send(t, m, tick(m))
	}

	if len(g.inputs) != 3 {
		t.Fatalf("stepped %d times, want 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[1].Has(core.ActionLeft) {
		t.Error("left not held for the hold window")
	}
	if g.inputs[2].Has(core.ActionLeft) {
		t.Error("left held past the hold window")
	}
}

func TestModelInteractIsOneFrame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, false)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, tick(m))
	m = send(t, m, tick(m))

	if !g.inputs[0].Has(core.ActionInteract) {
		t.Error("interact missing on first frame")
	}
	if g.inputs[1].Has(core.ActionInteract) {
		t.Error("interact repeated on second frame")
	}
}

func TestModelMouseSwipe(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, false)

	m = send(t, m, mouse(20, 4, tea.MouseActionPress))
	m = send(t, m, mouse(5, 4, tea.MouseActionRelease))
	m = send(t, m, tick(m))

	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("swipe left did not reach the game")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, false)

	m = send(t, m, TickMsg{Time: time.Now(), Loop: m.loop + 1000})
	if len(g.inputs) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(g.inputs))
	}
}

func TestModelEscape(t *testing.T) {
	t.Run("standalone pauses", func(t *testing.T) {
		g := &fakeGame{}
		m := newTestModel(g, false)
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
		m = send(t, m, tick(m))
		if !g.inputs[0].Has(core.ActionPause) {
			t.Error("esc did not pause")
		}
		if m.BackToMenu() {
			t.Error("standalone model asked for the menu")
		}
	})

	t.Run("session returns to menu", func(t *testing.T) {
		g := &fakeGame{}
		m := newTestModel(g, true)
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
		if !m.BackToMenu() {
			t.Error("esc did not return to the menu")
		}
	})
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, false)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model not quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, false)
	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("view missing game screen")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view missing help line")
	}
	if m.screen.Height() != 9 {
		t.Errorf("screen height %d, want 9 to leave a help row", m.screen.Height())
	}
}
