package world

import "github.com/vovakirdan/tui-dungeon/internal/config"

// Rules are the fixed parameters of the simulation.
type Rules struct {
	Width             int // Columns; the player column is clamped into [0, Width)
	FloorRow          int // A player below this row reappears at the top
	Projection        Projection
	MoveSpeed         float64 // Pixels per frame, horizontal and upward
	FallSpeed         float64 // Pixels per frame, downward
	MonsterSnapFactor float64
	ChestFrameTicks   int
}

// RulesFromConfig builds Rules from the dungeon configuration.
func RulesFromConfig(cfg config.DungeonConfig) Rules {
	return Rules{
		Width:    cfg.Grid.Width,
		FloorRow: cfg.Grid.FloorRow,
		Projection: Projection{
			CellSize:   float64(cfg.Grid.CellSize),
			HalfWidth:  float64(cfg.Grid.HalfWidth),
			HalfHeight: float64(cfg.Grid.HalfHeight),
		},
		MoveSpeed:         cfg.Animation.MoveSpeed,
		FallSpeed:         cfg.Animation.FallSpeed,
		MonsterSnapFactor: cfg.Animation.MonsterSnapFactor,
		ChestFrameTicks:   cfg.Animation.ChestFrameTicks,
	}
}

// DefaultRules returns Rules for the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultDungeonConfig())
}
