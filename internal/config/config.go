// Package config provides YAML-based configuration loading for the dungeon.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DungeonConfig contains all tunable parameters of the dungeon crawler.
type DungeonConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Animation   AnimationConfig   `yaml:"animation"`
	Interaction InteractionConfig `yaml:"interaction"`
	Levels      LevelsConfig      `yaml:"levels"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// GridConfig defines the logical grid and its projection to screen space.
type GridConfig struct {
	Width      int `yaml:"width"`       // Columns; player column is clamped into [0, width)
	Height     int `yaml:"height"`      // Nominal rows of a level
	CellSize   int `yaml:"cell_size"`   // Pixels per cell
	HalfWidth  int `yaml:"half_width"`  // Screen half extent, X
	HalfHeight int `yaml:"half_height"` // Screen half extent, Y
	FloorRow   int `yaml:"floor_row"`   // Rows below this wrap back to the top
}

// AnimationConfig defines per-frame movement speeds in pixels.
type AnimationConfig struct {
	MoveSpeed         float64 `yaml:"move_speed"`
	FallSpeed         float64 `yaml:"fall_speed"`
	MonsterSnapFactor float64 `yaml:"monster_snap_factor"` // Monsters snap within move_speed * factor
	ChestFrameTicks   int     `yaml:"chest_frame_ticks"`   // Frames per chest opening sprite step
}

// InteractionConfig defines door and gesture parameters.
type InteractionConfig struct {
	TeleportCooldownMS int `yaml:"teleport_cooldown_ms"` // Blue doors stay shut this long after start
	SwipeThreshold     int `yaml:"swipe_threshold"`      // Drag distance (cells) that counts as a swipe
}

// LevelsConfig defines where level maps come from.
type LevelsConfig struct {
	Count int    `yaml:"count"` // Levels in the campaign
	Dir   string `yaml:"dir"`   // Directory of .lev files; empty uses the built-in set
}

// ScoringConfig defines points awarded during a run.
type ScoringConfig struct {
	ChestPoints int `yaml:"chest_points"`
	LevelPoints int `yaml:"level_points"`
}

// TeleportCooldown returns the blue door cooldown as a duration.
func (c InteractionConfig) TeleportCooldown() time.Duration {
	return time.Duration(c.TeleportCooldownMS) * time.Millisecond
}

// Validate checks that the configuration can drive a game.
func (c DungeonConfig) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.Animation.MoveSpeed <= 0 || c.Animation.FallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("animation speeds must be positive, got move=%v fall=%v",
			c.Animation.MoveSpeed, c.Animation.FallSpeed))
	}
	if c.Animation.MonsterSnapFactor <= 0 {
		errs = append(errs, fmt.Errorf("animation.monster_snap_factor must be positive, got %v", c.Animation.MonsterSnapFactor))
	}
	if c.Levels.Count <= 0 {
		errs = append(errs, fmt.Errorf("levels.count must be positive, got %d", c.Levels.Count))
	}
	if c.Interaction.TeleportCooldownMS < 0 {
		errs = append(errs, fmt.Errorf("interaction.teleport_cooldown_ms must not be negative, got %d", c.Interaction.TeleportCooldownMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dungeon config: %w", errors.Join(errs...))
	}
	return nil
}
