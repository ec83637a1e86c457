package world

import "github.com/vovakirdan/tui-dungeon/internal/core"

// Monster is spawned by an opened chest and chases the player along its row.
type Monster struct {
	ID int

	rules     Rules
	cell      Cell
	screen    core.Vec2
	moved     bool
	dir       Direction
	animating bool
}

func newMonster(id int, c Cell, rules Rules) *Monster {
	return &Monster{
		ID:     id,
		rules:  rules,
		cell:   c,
		screen: rules.Projection.Project(c, TileAnchor),
	}
}

// Cell returns the monster's cell.
func (m *Monster) Cell() Cell {
	return m.cell
}

// Screen returns the current animated pixel position.
func (m *Monster) Screen() core.Vec2 {
	return m.screen
}

// Facing returns the direction the sprite faces.
func (m *Monster) Facing() Direction {
	return m.dir
}

// Animating reports whether the monster is travelling toward its cell.
func (m *Monster) Animating() bool {
	return m.animating
}

// towards returns the direction that brings the monster closer to col.
func (m *Monster) towards(col int) Direction {
	switch {
	case col < m.cell.Col:
		return Left
	case col > m.cell.Col:
		return Right
	default:
		return None
	}
}

// Animate moves the screen position one frame along the straight line to
// the monster's cell.
func (m *Monster) Animate() {
	target := m.rules.Projection.Project(m.cell, TileAnchor)
	dist := m.screen.Distance(target)
	speed := m.rules.MoveSpeed

	if dist < speed*m.rules.MonsterSnapFactor {
		m.screen = target
		m.animating = false
		return
	}
	m.animating = true
	if target.X > m.screen.X {
		m.dir = Right
	} else {
		m.dir = Left
	}
	m.screen = m.screen.Add(target.Sub(m.screen).Scale(speed / dist))
}

// Chest spawns a monster once it has been opened.
type Chest struct {
	cell    Cell
	open    bool
	spawned bool
	frames  int
}

// ChestSteps is the number of sprite steps of the opening animation.
const ChestSteps = 3

// Cell returns the chest's cell.
func (c *Chest) Cell() Cell {
	return c.cell
}

// IsOpen reports whether the chest has been opened.
func (c *Chest) IsOpen() bool {
	return c.open
}

// Spawned reports whether the chest has released its monster.
func (c *Chest) Spawned() bool {
	return c.spawned
}

// Open opens the chest. It returns false if the chest was already open.
func (c *Chest) Open() bool {
	if c.open {
		return false
	}
	c.open = true
	return true
}

// Step returns the opening animation step, 0 while closed and up to
// ChestSteps once fully open.
func (c *Chest) Step(frameTicks int) int {
	if !c.open {
		return 0
	}
	if frameTicks <= 0 {
		return ChestSteps
	}
	return core.Min(1+c.frames/frameTicks, ChestSteps)
}

func (c *Chest) advance(frameTicks int) {
	if c.open && c.Step(frameTicks) < ChestSteps {
		c.frames++
	}
}
