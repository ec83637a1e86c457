package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg DungeonConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDungeonConfig()) {
		t.Errorf("embedded defaults drifted from DefaultDungeonConfig():\n%+v\n%+v", cfg, DefaultDungeonConfig())
	}
}

func TestLoadDungeonDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDungeon("")
	if err != nil {
		t.Fatalf("LoadDungeon() failed: %v", err)
	}
	if cfg.Grid.Width != 18 || cfg.Grid.CellSize != 50 {
		t.Errorf("expected default grid 18 cols / 50px, got %+v", cfg.Grid)
	}
	if cfg.Interaction.TeleportCooldown().Milliseconds() != 500 {
		t.Errorf("expected 500ms cooldown, got %v", cfg.Interaction.TeleportCooldown())
	}
}

func TestLoadDungeonCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("levels:\n  count: 2\nanimation:\n  move_speed: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDungeon(path)
	if err != nil {
		t.Fatalf("LoadDungeon() failed: %v", err)
	}
	if cfg.Levels.Count != 2 {
		t.Errorf("levels.count = %d, expected 2", cfg.Levels.Count)
	}
	if cfg.Animation.MoveSpeed != 5 {
		t.Errorf("move_speed = %v, expected 5", cfg.Animation.MoveSpeed)
	}
	// Keys missing from the file keep their defaults
	if cfg.Animation.FallSpeed != 2 {
		t.Errorf("fall_speed = %v, expected default 2", cfg.Animation.FallSpeed)
	}
}

func TestLoadDungeonUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".dungeon", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dungeon.yaml"), []byte("scoring:\n  chest_points: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDungeon("")
	if err != nil {
		t.Fatalf("LoadDungeon() failed: %v", err)
	}
	if cfg.Scoring.ChestPoints != 7 {
		t.Errorf("chest_points = %d, expected 7 from user config", cfg.Scoring.ChestPoints)
	}
}

func TestLoadDungeonErrors(t *testing.T) {
	if _, err := LoadDungeon(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDungeon(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDungeon(invalid); err == nil {
		t.Error("expected validation error for zero grid width")
	}
}

func TestLoadDungeonEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLevelsDir, "/tmp/levels")
	t.Setenv(EnvLevelCount, "3")

	cfg, err := LoadDungeon("")
	if err != nil {
		t.Fatalf("LoadDungeon() failed: %v", err)
	}
	if cfg.Levels.Dir != "/tmp/levels" || cfg.Levels.Count != 3 {
		t.Errorf("env overrides not applied: %+v", cfg.Levels)
	}

	t.Setenv(EnvLevelCount, "many")
	if _, err := LoadDungeon(""); err == nil {
		t.Error("expected error for non-numeric level count")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DungeonConfig)
		wantErr bool
	}{
		{"defaults", func(*DungeonConfig) {}, false},
		{"zero cell size", func(c *DungeonConfig) { c.Grid.CellSize = 0 }, true},
		{"negative fall speed", func(c *DungeonConfig) { c.Animation.FallSpeed = -1 }, true},
		{"no levels", func(c *DungeonConfig) { c.Levels.Count = 0 }, true},
		{"negative cooldown", func(c *DungeonConfig) { c.Interaction.TeleportCooldownMS = -5 }, true},
		{"zero cooldown", func(c *DungeonConfig) { c.Interaction.TeleportCooldownMS = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDungeonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
