// Package registry lets game modes announce themselves from init() so the
// platform can list and build them by ID without importing each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Game is the contract between a game mode and the platform. Games hold
// pure simulation state; input mapping, timing and drawing to the terminal
// belong to the platform.
type Game interface {
	// ID is the stable mode identifier used by the CLI and run storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run. Called once before the first Step and
	// again when the player restarts from the end screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed simulation frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports the run status without advancing it.
	State() core.GameState
}

// Ranked is implemented by modes that can keep their runs off the
// scoreboard. Modes without it are ranked.
type Ranked interface {
	Ranked() bool
}

// IsRanked reports whether runs of g belong on the scoreboard.
func IsRanked(g any) bool {
	if r, ok := g.(Ranked); ok {
		return r.Ranked()
	}
	return true
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID     string
	Title  string
	Ranked bool
}

// Factory builds a new instance of a mode.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a mode. The factory is called once to read the title and
// ranking. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Ranked: IsRanked(g)}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
