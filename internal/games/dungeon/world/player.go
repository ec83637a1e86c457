package world

import "github.com/vovakirdan/tui-dungeon/internal/core"

// Player is the controllable character.
type Player struct {
	rules Rules

	pos       GridPosition
	screen    core.Vec2
	animating bool
	dir       Direction
	changed   bool
}

// NewPlayer returns an unplaced player.
func NewPlayer(rules Rules) *Player {
	return &Player{rules: rules}
}

// Cell returns the player's cell and whether the player has been placed.
func (p *Player) Cell() (Cell, bool) {
	return p.pos.Get()
}

// Screen returns the current animated pixel position.
func (p *Player) Screen() core.Vec2 {
	return p.screen
}

// Animating reports whether the player is travelling toward its cell.
func (p *Player) Animating() bool {
	return p.animating
}

// Facing returns the direction the sprite faces.
func (p *Player) Facing() Direction {
	return p.dir
}

// Pending reports whether a move has not yet been reported as finished.
func (p *Player) Pending() bool {
	return p.changed
}

// Target returns the projected pixel position of the player's cell.
func (p *Player) Target() core.Vec2 {
	cell, _ := p.pos.Get()
	return p.rules.Projection.Project(cell, PlayerAnchor)
}

// RequestMove shifts the player one cell in dir. It is ignored while the
// player is unplaced or animating. The column is clamped back into the grid
// and the move is marked pending even when the clamp cancels it.
func (p *Player) RequestMove(dir Direction) bool {
	cell, ok := p.pos.Get()
	if !ok || p.animating || dir == None {
		return false
	}
	p.pos = Placed(p.clampColumn(cell.Shift(dir)))
	p.changed = true
	return true
}

// Teleport places the player on c immediately, without animation.
func (p *Player) Teleport(c Cell) {
	c = p.clampColumn(c)
	p.pos = Placed(c)
	p.screen = p.rules.Projection.Project(c, PlayerAnchor)
	p.animating = false
	p.changed = true
}

func (p *Player) clampColumn(c Cell) Cell {
	for c.Col < 0 {
		c.Col++
	}
	for c.Col >= p.rules.Width {
		c.Col--
	}
	return c
}

// StepAnimation advances current one frame toward the player's target. It
// moves horizontally first and vertically second. reached is true on the
// frame the target is reached after a pending move, and only once per move.
func (p *Player) StepAnimation(current core.Vec2) (next core.Vec2, reached bool) {
	if !p.pos.IsPlaced() {
		return current, false
	}
	target := p.Target()
	speed := p.rules.MoveSpeed

	if current.X != target.X {
		p.animating = true
		dx := target.X - current.X
		if core.AbsF(dx) < speed {
			return core.V(target.X, current.Y), false
		}
		if dx < 0 {
			p.dir = Left
			return core.V(current.X-speed, current.Y), false
		}
		p.dir = Right
		return core.V(current.X+speed, current.Y), false
	}

	if core.AbsF(current.Y-target.Y) < speed {
		p.dir = None
		p.animating = false
		reached = p.changed
		p.changed = false
		return target, reached
	}

	p.animating = true
	if current.Y > target.Y {
		p.dir = Down
		return core.V(target.X, current.Y-p.rules.FallSpeed), false
	}
	p.dir = None
	return core.V(target.X, current.Y+speed), false
}

// Animate applies one StepAnimation to the player's own screen position.
func (p *Player) Animate() bool {
	next, reached := p.StepAnimation(p.screen)
	p.screen = next
	return reached
}
