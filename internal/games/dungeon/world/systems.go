package world

// Chase moves every monster one column toward the player's column. Monsters
// are resolved in spawn order and swept until no further monster can move,
// so a monster blocked by another that later moves away still gets its
// step. It returns the number of monsters that moved.
func (w *World) Chase() int {
	target, ok := w.Player.Cell()
	if !ok {
		return 0
	}
	for _, m := range w.monsters {
		m.moved = false
	}

	moves := 0
	for progress := true; progress; {
		progress = false
		for _, m := range w.monsters {
			if m.moved {
				continue
			}
			dir := m.towards(target.Col)
			if dir == None {
				continue
			}
			dest := m.cell.Shift(dir)
			if w.IsWall(dest) || w.MonsterAt(dest) != nil {
				continue
			}
			m.cell = dest
			m.dir = dir
			m.moved = true
			moves++
			progress = true
		}
	}
	return moves
}

// Fall is the outcome of a gravity step.
type Fall int

const (
	// Rest means the player is supported, animating or unplaced.
	Rest Fall = iota
	// Fell means the player moved down one row.
	Fell
	// Wrapped means the player fell past the floor and reappeared at the top.
	Wrapped
)

// Gravity drops an idle, unsupported player by one row. A player that ends
// up below the floor row is teleported to the top row of the same column.
func (w *World) Gravity() Fall {
	cell, ok := w.Player.Cell()
	if !ok || w.Player.Animating() || w.Supported(cell) {
		return Rest
	}
	w.Player.RequestMove(Down)
	cell, _ = w.Player.Cell()
	if cell.Row < w.rules.FloorRow {
		w.Player.Teleport(C(cell.Col, w.TopRow()))
		return Wrapped
	}
	return Fell
}

// SpawnFromChests releases one monster from every open chest that has not
// spawned yet, unless the player stands on it. It returns the new monsters.
func (w *World) SpawnFromChests() []*Monster {
	player, ok := w.Player.Cell()
	if !ok {
		return nil
	}
	var spawned []*Monster
	for _, ch := range w.chests {
		if !ch.open || ch.spawned || ch.cell == player {
			continue
		}
		ch.spawned = true
		spawned = append(spawned, w.SpawnMonster(ch.cell))
	}
	return spawned
}

// Caught reports whether a monster shares the player's cell.
func (w *World) Caught() bool {
	player, ok := w.Player.Cell()
	if !ok {
		return false
	}
	return w.MonsterAt(player) != nil
}
