// Package dungeon implements the tile dungeon crawler on top of the world
// simulation. It sequences the per-frame phases, resolves interactions and
// draws the level into a core.Screen.
package dungeon

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/levels"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/world"
	"github.com/vovakirdan/tui-dungeon/internal/registry"
)

// Mode selects how a run starts and whether it is ranked.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModePractice Mode = "practice"
)

// Phase is the top-level state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEnd
)

func (p Phase) String() string {
	if p == PhaseEnd {
		return "end"
	}
	return "playing"
}

// Package-level defaults picked up by games created through the registry.
var (
	defaultConfig = config.DefaultDungeonConfig()
	defaultLevels []*levels.Level
	defaultLogger = log.New(io.Discard)
	selectedStart int
)

// SetConfig sets the configuration used by newly created games.
func SetConfig(cfg config.DungeonConfig) {
	defaultConfig = cfg
}

// SetLevels sets preloaded levels for newly created games. Without them
// each game loads its levels from the configured source on Reset.
func SetLevels(lvls []*levels.Level) {
	defaultLevels = lvls
}

// SetLogger sets the logger used by newly created games.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// SetStartLevel sets the level practice runs start from. 0 means level 1.
func SetStartLevel(level int) {
	selectedStart = level
}

// GetStartLevel returns the selected practice start level.
func GetStartLevel() int {
	return selectedStart
}

// Option configures a Game.
type Option func(*Game)

// WithConfig overrides the dungeon configuration.
func WithConfig(cfg config.DungeonConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLevels supplies the level set.
func WithLevels(lvls []*levels.Level) Option {
	return func(g *Game) { g.levels = lvls }
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithStartLevel sets the first level of the run.
func WithStartLevel(n int) Option {
	return func(g *Game) { g.startLevel = n }
}

// Game implements registry.Game for the dungeon crawler.
type Game struct {
	mode       Mode
	cfg        config.DungeonConfig
	levels     []*levels.Level
	loadErr    error
	clock      Clock
	logger     *log.Logger
	startLevel int

	world  *world.World
	phase  Phase
	ctx    Context
	paused bool

	tick        Slot[Tick]
	endTick     Slot[EndTick]
	changeLevel Slot[ChangeLevel]

	screenW int
	screenH int
}

// New creates a campaign game.
func New(opts ...Option) *Game {
	return newGame(ModeCampaign, opts...)
}

// NewPractice creates a practice game starting at the selected level.
func NewPractice(opts ...Option) *Game {
	opts = append([]Option{WithStartLevel(selectedStart)}, opts...)
	return newGame(ModePractice, opts...)
}

func newGame(mode Mode, opts ...Option) *Game {
	g := &Game{
		mode:   mode,
		cfg:    defaultConfig,
		levels: defaultLevels,
		clock:  WallClock{},
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register("dungeon", func() registry.Game {
		return New()
	})
	registry.Register("dungeon_practice", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "dungeon_practice"
	}
	return "dungeon"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Dungeon (Practice)"
	}
	return "Dungeon"
}

// Mode returns the run mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Ranked reports whether runs of this game belong on the scoreboard.
func (g *Game) Ranked() bool {
	return g.mode == ModeCampaign
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.phase = PhasePlaying
	g.tick.Reset()
	g.endTick.Reset()
	g.changeLevel.Reset()

	if g.world == nil {
		g.world = world.New(world.RulesFromConfig(g.cfg))
	}
	if len(g.levels) == 0 {
		g.levels, g.loadErr = levels.FromConfig(g.cfg.Levels).LoadAll(g.cfg.Levels.Count)
		if g.loadErr != nil {
			g.logger.Error("loading levels", "err", g.loadErr)
			g.levels = nil
		}
	}

	start := 1
	if g.mode == ModePractice && g.startLevel > 0 && g.startLevel <= len(g.levels) {
		start = g.startLevel
	}
	g.ctx = Context{Level: start, StartLevel: start}

	if len(g.levels) == 0 {
		g.phase = PhaseEnd
		g.world.Clear()
		return
	}
	g.loadLevel()
	g.logger.Info("run started", "game", g.ID(), "level", start, "levels", len(g.levels))
}

// loadLevel rebuilds the world from the current level.
func (g *Game) loadLevel() {
	lvl := g.levels[g.ctx.Level-1]
	g.world.Load(lvl.Layout)
	g.logger.Debug("level loaded", "level", lvl.Number, "name", lvl.Name,
		"chests", len(lvl.Layout.Chests), "blue_doors", len(lvl.Layout.BlueDoors))
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		if g.phase == PhaseEnd {
			g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
			return core.StepResult{State: g.State()}
		}
		g.changeLevel.Post(ChangeLevel{Advance: false})
	}

	if g.phase == PhaseEnd {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ctx.Ticks++

	if ev, ok := g.changeLevel.Take(); ok {
		g.applyChangeLevel(ev)
		if g.phase == PhaseEnd {
			return core.StepResult{State: g.State()}
		}
	}

	g.handleInput(in)

	if g.world.Animate() {
		g.endTick.Post(EndTick{})
	}

	if _, ok := g.tick.Take(); ok {
		g.ctx.Moves++
		g.world.Chase()
		g.afterTick()
	}

	if _, ok := g.endTick.Take(); ok {
		switch g.world.Gravity() {
		case world.Fell:
			g.tick.Post(Tick{})
		case world.Wrapped:
			g.tick.Post(Tick{})
			cell, _ := g.world.Player.Cell()
			g.logger.Debug("fell through the floor", "col", cell.Col)
		}
		g.afterTick()
	}

	return core.StepResult{State: g.State()}
}

// afterTick releases monsters from opened chests and checks for a catch.
func (g *Game) afterTick() {
	for _, m := range g.world.SpawnFromChests() {
		g.logger.Debug("monster spawned", "id", m.ID, "cell", m.Cell())
	}
	if g.world.Caught() {
		g.changeLevel.Post(ChangeLevel{Advance: false})
	}
}

// applyChangeLevel rebuilds the current level or moves to the next one.
func (g *Game) applyChangeLevel(ev ChangeLevel) {
	g.tick.Reset()
	g.endTick.Reset()

	if !ev.Advance {
		g.ctx.Resets++
		g.logger.Info("level restarted", "level", g.ctx.Level, "resets", g.ctx.Resets)
		g.loadLevel()
		return
	}

	g.ctx.ChestsTaken += g.world.OpenChests()
	g.ctx.Cleared++
	g.ctx.Level++
	if g.ctx.Level > len(g.levels) {
		g.phase = PhaseEnd
		g.world.Clear()
		g.logger.Info("run complete", "score", g.Score(), "resets", g.ctx.Resets, "ticks", g.ctx.Ticks)
		return
	}
	g.logger.Info("level cleared", "level", g.ctx.Level-1, "score", g.Score())
	g.loadLevel()
}

// Score is the points earned so far. Chests opened on a level that is
// later restarted do not count.
func (g *Game) Score() int {
	chests := g.ctx.ChestsTaken
	if g.phase == PhasePlaying && g.world != nil {
		chests += g.world.OpenChests()
	}
	return chests*g.cfg.Scoring.ChestPoints + g.ctx.Cleared*g.cfg.Scoring.LevelPoints
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Context returns a copy of the run bookkeeping.
func (g *Game) Context() Context {
	return g.ctx
}

// World exposes the simulation for rendering and tests.
func (g *Game) World() *world.World {
	return g.world
}

// LoadError returns the error that prevented levels from loading, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.phase == PhaseEnd,
		Won:      g.phase == PhaseEnd && g.loadErr == nil && len(g.levels) > 0,
		Paused:   g.paused,
		Level:    g.ctx.Level,
		Cleared:  g.ctx.Cleared,
		Resets:   g.ctx.Resets,
		Ticks:    g.ctx.Ticks,
	}
}
