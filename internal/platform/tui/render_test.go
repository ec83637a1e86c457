package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

func TestPaletteCoversEveryRole(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorText; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "<@", core.ColorPlayer)
	s.DrawTextColored(2, 0, "██", core.ColorWall)
	s.DrawText(0, 1, "hud")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	for _, want := range []string{"<@", "██", "hud"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
