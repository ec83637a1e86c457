package config

import (
	_ "embed"
)

//go:embed defaults/dungeon.yaml
var defaultDungeonYAML []byte

// DefaultDungeonConfig returns the built-in dungeon configuration.
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		Grid: GridConfig{
			Width:      18,
			Height:     12,
			CellSize:   50,
			HalfWidth:  450,
			HalfHeight: 300,
			FloorRow:   -1,
		},
		Animation: AnimationConfig{
			MoveSpeed:         3,
			FallSpeed:         2,
			MonsterSnapFactor: 2,
			ChestFrameTicks:   8,
		},
		Interaction: InteractionConfig{
			TeleportCooldownMS: 500,
			SwipeThreshold:     4,
		},
		Levels: LevelsConfig{
			Count: 5,
		},
		Scoring: ScoringConfig{
			ChestPoints: 10,
			LevelPoints: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDungeonYAML
}
