package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func practiceIndex(t *testing.T, m MenuModel) int {
	t.Helper()
	for i, item := range m.items {
		if item.GameID == practiceID {
			return i
		}
	}
	t.Fatal("practice mode not in menu")
	return -1
}

func TestMenuPracticeLevelPicker(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 3)
	for i := 0; i < practiceIndex(t, m); i++ {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	for i := 0; i < 5; i++ {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.startLevel != 3 {
		t.Errorf("start level %d, want clamp at 3", m.startLevel)
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil || sel.GameID != practiceID || sel.StartLevel != 2 {
		t.Fatalf("selected %+v, want practice from level 2", sel)
	}

	game, err := CreateGame(*sel)
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	pg, ok := game.(*dungeon.Game)
	if !ok || pg.Mode() != dungeon.ModePractice || pg.Ranked() {
		t.Errorf("created %T, want unranked practice game", game)
	}
}

func TestMenuLevelPickerOnlyOnPractice(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 5)
	if m.items[m.cursor].GameID != "dungeon" {
		t.Fatalf("first item %s, want the campaign", m.items[m.cursor].GameID)
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.startLevel != 1 {
		t.Errorf("level picker moved on %s", m.items[m.cursor].GameID)
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.StartLevel != 0 {
		t.Errorf("campaign selection %+v carries a start level", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 1)
	if got := menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab}); !got.WantsScoreboard() {
		t.Error("tab did not open the scoreboard")
	}
	if got := menuKey(t, m, runeKey('q')); !got.IsQuitting() {
		t.Error("q did not quit")
	}
}
