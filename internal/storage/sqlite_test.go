package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "dungeon", Score: 120}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestRun("dungeon")
	if err != nil || best == nil || best.Score != 120 {
		t.Errorf("BestRun() = %+v, %v", best, err)
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(Run{
		GameID:        "dungeon",
		Score:         210,
		LevelsCleared: 2,
		Resets:        1,
		Ticks:         900,
		Completed:     true,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected a database ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Score != 210 || got.LevelsCleared != 2 || got.Resets != 1 || got.Ticks != 900 || !got.Completed {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %+v, %v, want nil, nil", missing, err)
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	saved, err := store.SaveRun(Run{RunID: id, GameID: "dungeon"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.RunID != id {
		t.Errorf("RunID = %s, want %s", saved.RunID, id)
	}
	if _, err := store.SaveRun(Run{RunID: id, GameID: "dungeon"}); err == nil {
		t.Error("duplicate RunID should fail")
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "dungeon", Score: 100, Resets: 3},
		{GameID: "dungeon", Score: 200, Resets: 5},
		{GameID: "dungeon", Score: 100, Resets: 0},
		{GameID: "dungeon", Score: 50},
		{GameID: "dungeon_practice", Score: 900},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("dungeon", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}

	want := []struct{ score, resets int }{{200, 5}, {100, 0}, {100, 3}}
	for i, w := range want {
		if top[i].Score != w.score || top[i].Resets != w.resets {
			t.Errorf("top[%d] = score %d resets %d, want %d/%d", i, top[i].Score, top[i].Resets, w.score, w.resets)
		}
	}

	best, err := store.BestRun("dungeon_practice")
	if err != nil || best == nil || best.Score != 900 {
		t.Errorf("BestRun(practice) = %+v, %v", best, err)
	}

	none, err := store.BestRun("nope")
	if err != nil || none != nil {
		t.Errorf("BestRun(nope) = %+v, %v, want nil", none, err)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].GameID != "dungeon_practice" {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("dungeon")
	if err != nil {
		t.Fatalf("Stats() on empty table failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Run{
		{GameID: "dungeon", Score: 100, LevelsCleared: 1, Resets: 2},
		{GameID: "dungeon", Score: 300, LevelsCleared: 3, Resets: 1, Completed: true},
		{GameID: "dungeon_practice", Score: 10},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	st, err := store.Stats("dungeon")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Completed != 1 || st.HighScore != 300 || st.AvgScore != 200 ||
		st.BestLevels != 3 || st.TotalResets != 3 {
		t.Errorf("stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["dungeon_practice"].Runs != 1 {
		t.Errorf("AllStats() = %+v", all)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "dungeon", Score: 10})
	store.SaveRun(Run{GameID: "dungeon_practice", Score: 20})

	if err := store.ClearRuns("dungeon"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("dungeon", 10)
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
	practice, _ := store.TopRuns("dungeon_practice", 10)
	if len(practice) != 1 {
		t.Errorf("clear removed other game's runs")
	}
}

func TestHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.dungeon/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".dungeon", "runs.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
