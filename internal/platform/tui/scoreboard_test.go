package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks  int
		expect string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{60*75 + 30, "1:15"},
	}
	for _, tt := range tests {
		if got := formatTicks(tt.ticks); got != tt.expect {
			t.Errorf("formatTicks(%d) = %q, want %q", tt.ticks, got, tt.expect)
		}
	}
}

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, run := range []storage.Run{
		{GameID: "dungeon", Score: 540, LevelsCleared: 5, Ticks: 6000, Completed: true},
		{GameID: "dungeon", Score: 120, LevelsCleared: 1, Ticks: 600},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 540 {
		t.Fatalf("best view runs = %+v, want best first", m.runs)
	}
	if !strings.Contains(m.View(), "Best 540") {
		t.Error("stats line missing high score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || m.runs[0].Score != 120 {
		t.Errorf("recent view = %v first %d, want newest first", m.view, m.runs[0].Score)
	}

	next, _ = m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b did not go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	view := m.View()
	if !strings.Contains(view, "No runs") {
		t.Error("empty scoreboard missing notice")
	}
}
