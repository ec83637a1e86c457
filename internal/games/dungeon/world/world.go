package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Layout is the static content of a level.
type Layout struct {
	Width       int
	Height      int
	Walls       []Cell
	BlueDoors   []Cell
	RedDoor     Cell
	Chests      []Cell
	PlayerStart Cell
}

// World owns every entity of the level being played.
type World struct {
	rules Rules

	Player *Player

	height    int
	walls     mapset.Set[Cell]
	blueDoors []Cell
	redDoor   GridPosition
	chests    []*Chest
	monsters  []*Monster
	nextID    int
}

// New returns an empty world with an unplaced player.
func New(rules Rules) *World {
	return &World{
		rules:  rules,
		Player: NewPlayer(rules),
		walls:  mapset.New[Cell](),
	}
}

// Rules returns the simulation parameters.
func (w *World) Rules() Rules {
	return w.rules
}

// Height returns the row count of the loaded level.
func (w *World) Height() int {
	return w.height
}

// TopRow is the row a falling player reappears on.
func (w *World) TopRow() int {
	return w.height - 1
}

// Clear removes every level entity. The player keeps its position.
func (w *World) Clear() {
	w.walls = mapset.New[Cell]()
	w.blueDoors = nil
	w.redDoor = GridPosition{}
	w.chests = nil
	w.monsters = nil
	w.nextID = 0
	w.height = 0
}

// Load clears the world, spawns the layout and places the player on its
// start cell.
func (w *World) Load(l Layout) {
	w.Clear()
	w.height = l.Height
	for _, c := range l.Walls {
		w.walls.Put(c)
	}
	w.blueDoors = append(w.blueDoors, l.BlueDoors...)
	w.redDoor = Placed(l.RedDoor)
	for _, c := range l.Chests {
		w.chests = append(w.chests, &Chest{cell: c})
	}
	w.Player.Teleport(l.PlayerStart)
}

// IsWall reports whether c holds a wall.
func (w *World) IsWall(c Cell) bool {
	return w.walls.Has(c)
}

// Walls returns every wall cell ordered by row then column.
func (w *World) Walls() []Cell {
	out := make([]Cell, 0, w.walls.Size())
	w.walls.Each(func(c Cell) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// BlueDoors returns the blue door cells in level order.
func (w *World) BlueDoors() []Cell {
	return w.blueDoors
}

// RedDoor returns the red door cell.
func (w *World) RedDoor() (Cell, bool) {
	return w.redDoor.Get()
}

// Chests returns the chests in level order.
func (w *World) Chests() []*Chest {
	return w.chests
}

// Monsters returns the monsters in spawn order.
func (w *World) Monsters() []*Monster {
	return w.monsters
}

// MonsterAt returns the monster on c, or nil.
func (w *World) MonsterAt(c Cell) *Monster {
	for _, m := range w.monsters {
		if m.cell == c {
			return m
		}
	}
	return nil
}

// ChestAt returns the chest on c, or nil.
func (w *World) ChestAt(c Cell) *Chest {
	for _, ch := range w.chests {
		if ch.cell == c {
			return ch
		}
	}
	return nil
}

// IsBlueDoor reports whether c holds a blue door.
func (w *World) IsBlueDoor(c Cell) bool {
	for _, d := range w.blueDoors {
		if d == c {
			return true
		}
	}
	return false
}

// IsRedDoor reports whether c holds the red door.
func (w *World) IsRedDoor(c Cell) bool {
	d, ok := w.redDoor.Get()
	return ok && d == c
}

// Supported reports whether a wall or monster lies directly below c.
func (w *World) Supported(c Cell) bool {
	below := c.Below()
	return w.IsWall(below) || w.MonsterAt(below) != nil
}

// AllChestsOpen reports whether every chest has been opened. A level
// without chests is trivially open.
func (w *World) AllChestsOpen() bool {
	for _, ch := range w.chests {
		if !ch.open {
			return false
		}
	}
	return true
}

// OpenChests counts opened chests.
func (w *World) OpenChests() int {
	n := 0
	for _, ch := range w.chests {
		if ch.open {
			n++
		}
	}
	return n
}

// BlueDoorExit returns the first other blue door whose column and row both
// differ from from.
func (w *World) BlueDoorExit(from Cell) (Cell, bool) {
	for _, d := range w.blueDoors {
		if d.Col != from.Col && d.Row != from.Row {
			return d, true
		}
	}
	return Cell{}, false
}

// SpawnMonster adds a monster on c.
func (w *World) SpawnMonster(c Cell) *Monster {
	w.nextID++
	m := newMonster(w.nextID, c, w.rules)
	w.monsters = append(w.monsters, m)
	return m
}

// Animate advances every animation by one frame. It reports whether the
// player reached its target after a move.
func (w *World) Animate() bool {
	reached := w.Player.Animate()
	for _, m := range w.monsters {
		m.Animate()
	}
	for _, ch := range w.chests {
		ch.advance(w.rules.ChestFrameTicks)
	}
	return reached
}
