package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// heldInput keeps the last movement key held for a few frames. Terminals
// report key presses and auto-repeats but never releases, so a movement key
// counts as held until its repeat window runs out.
type heldInput struct {
	action    core.Action
	remaining int
	window    int
}

func newHeldInput(window int) *heldInput {
	if window < 1 {
		window = 1
	}
	return &heldInput{window: window}
}

// Press starts or refreshes the hold for a movement action.
func (h *heldInput) Press(a core.Action) {
	h.action = a
	h.remaining = h.window
}

// Release drops the held action.
func (h *heldInput) Release() {
	h.action = core.ActionNone
	h.remaining = 0
}

// Apply sets the held action on the frame and consumes one frame of hold.
func (h *heldInput) Apply(frame *core.InputFrame) {
	if h.remaining <= 0 {
		return
	}
	frame.Set(h.action)
	h.remaining--
}

// Held returns the currently held action.
func (h *heldInput) Held() core.Action {
	if h.remaining <= 0 {
		return core.ActionNone
	}
	return h.action
}

// gesture turns a mouse press and release into a swipe or a tap. A release
// farther than threshold cells from the press is a swipe in the direction
// of the horizontal drag; anything shorter is a tap.
type gesture struct {
	threshold float64
	startX    int
	startY    int
	pressed   bool
}

func newGesture(threshold int) *gesture {
	return &gesture{threshold: float64(threshold)}
}

// Handle feeds a mouse event and returns the resulting action, if any.
func (g *gesture) Handle(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			g.startX, g.startY = msg.X, msg.Y
			g.pressed = true
		}
	case tea.MouseActionRelease:
		if !g.pressed {
			return core.ActionNone
		}
		g.pressed = false
		dx := float64(msg.X - g.startX)
		dy := float64(msg.Y - g.startY)
		if math.Hypot(dx, dy) > g.threshold {
			if dx >= 0 {
				return core.ActionRight
			}
			return core.ActionLeft
		}
		return core.ActionInteract
	}
	return core.ActionNone
}
