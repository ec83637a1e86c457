package dungeon

// MonsterSnapshot is the grid state of one monster.
type MonsterSnapshot struct {
	ID  int
	Col int
	Row int
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       int
	Level      int
	Mode       string
	Phase      Phase
	Score      int
	Resets     int
	Cleared    int
	Placed     bool
	PlayerCol  int
	PlayerRow  int
	PlayerX    float64
	PlayerY    float64
	Facing     string
	Animating  bool
	ChestsOpen int
	Monsters   []MonsterSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.ctx.Ticks,
		Level:   g.ctx.Level,
		Mode:    string(g.mode),
		Phase:   g.phase,
		Score:   g.Score(),
		Resets:  g.ctx.Resets,
		Cleared: g.ctx.Cleared,
	}
	if g.world == nil {
		return s
	}

	p := g.world.Player
	if cell, ok := p.Cell(); ok {
		s.Placed = true
		s.PlayerCol = cell.Col
		s.PlayerRow = cell.Row
	}
	s.PlayerX = p.Screen().X
	s.PlayerY = p.Screen().Y
	s.Facing = p.Facing().String()
	s.Animating = p.Animating()
	s.ChestsOpen = g.world.OpenChests()
	for _, m := range g.world.Monsters() {
		s.Monsters = append(s.Monsters, MonsterSnapshot{ID: m.ID, Col: m.Cell().Col, Row: m.Cell().Row})
	}
	return s
}
