package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/registry"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

// runStore is the part of the store the recorder writes to.
type runStore interface {
	SaveRun(run storage.Run) (storage.Run, error)
}

// recorder saves each run at most once: when it ends, or when the player
// leaves a run that made progress.
type recorder struct {
	store  runStore
	gameID string
	ranked bool
	logger *log.Logger
	saved  bool
}

func newRecorder(store runStore, game interface{ ID() string }, logger *log.Logger) *recorder {
	return &recorder{store: store, gameID: game.ID(), ranked: registry.IsRanked(game), logger: logger}
}

// Observe records the run once it is over. A run that ended before its
// first frame, such as one without levels, is not a run.
func (r *recorder) Observe(state core.GameState) {
	if state.GameOver && state.Ticks > 0 {
		r.save(state)
	}
}

// Abandon records an unfinished run that made progress.
func (r *recorder) Abandon(state core.GameState) {
	if state.Ticks > 0 && (state.Score > 0 || state.Cleared > 0 || state.Resets > 0) {
		r.save(state)
	}
}

// Restart arms the recorder for a new run.
func (r *recorder) Restart() {
	r.saved = false
}

func (r *recorder) save(state core.GameState) {
	if r.saved || r.store == nil || !r.ranked {
		return
	}
	r.saved = true
	run, err := r.store.SaveRun(storage.Run{
		GameID:        r.gameID,
		Score:         state.Score,
		LevelsCleared: state.Cleared,
		Resets:        state.Resets,
		Ticks:         state.Ticks,
		Completed:     state.Won,
	})
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("could not save run", "game", r.gameID, "err", err)
		}
		return
	}
	if r.logger != nil {
		r.logger.Info("run saved", "run", run.RunID, "score", run.Score, "completed", run.Completed)
	}
}
