package dungeon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/world"
)

const (
	hudHeight   = 2
	cellColumns = 2 // Terminal columns per grid cell
)

var chestGlyphs = [world.ChestSteps + 1]string{"[]", "[/", "[_", "__"}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	if g.world == nil {
		return
	}

	if g.phase == PhaseEnd {
		g.renderEnd(dst)
		return
	}

	height := g.world.Height()
	gridW := g.cfg.Grid.Width * cellColumns
	if dst.Width() < gridW || dst.Height() < height+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", gridW, height+hudHeight))
		return
	}

	offX := (dst.Width() - gridW) / 2
	offY := hudHeight + (dst.Height()-hudHeight-height)/2
	place := func(col, row int) (int, int) {
		return offX + col*cellColumns, offY + height - 1 - row
	}

	for _, c := range g.world.Walls() {
		x, y := place(c.Col, c.Row)
		dst.DrawTextColored(x, y, "██", core.ColorWall)
	}
	for _, c := range g.world.BlueDoors() {
		x, y := place(c.Col, c.Row)
		dst.DrawTextColored(x, y, "▐▌", core.ColorBlueDoor)
	}
	if c, ok := g.world.RedDoor(); ok {
		color := core.ColorRedDoor
		if g.world.AllChestsOpen() {
			color = core.ColorRedDoorOpen
		}
		x, y := place(c.Col, c.Row)
		dst.DrawTextColored(x, y, "▐▌", color)
	}
	for _, ch := range g.world.Chests() {
		x, y := place(ch.Cell().Col, ch.Cell().Row)
		dst.DrawTextColored(x, y, chestGlyphs[ch.Step(g.cfg.Animation.ChestFrameTicks)], core.ColorChest)
	}

	proj := g.world.Rules().Projection
	for _, m := range g.world.Monsters() {
		col, row := proj.Unproject(m.Screen(), world.TileAnchor)
		x, y := screenCell(offX, offY, height, col, row)
		dst.DrawTextColored(x, y, monsterGlyph(m.Facing()), core.ColorMonster)
	}

	if _, ok := g.world.Player.Cell(); ok {
		col, row := proj.Unproject(g.world.Player.Screen(), world.PlayerAnchor)
		x, y := screenCell(offX, offY, height, col, row)
		dst.DrawTextColored(x, y, playerGlyph(g.world.Player.Facing()), core.ColorPlayer)
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// screenCell converts fractional grid coordinates into a terminal cell.
// Columns keep half-cell precision so horizontal motion looks smooth.
func screenCell(offX, offY, height int, col, row float64) (int, int) {
	x := offX + int(math.Round(col*cellColumns))
	y := offY + height - 1 - int(math.Round(row))
	return x, y
}

func playerGlyph(d world.Direction) string {
	switch d {
	case world.Left:
		return "<@"
	case world.Right:
		return "@>"
	case world.Down:
		return "@v"
	default:
		return "@ "
	}
}

func monsterGlyph(d world.Direction) string {
	switch d {
	case world.Left:
		return "<M"
	case world.Right:
		return "M>"
	default:
		return "M "
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	chests, total := 0, 0
	if g.world != nil && g.phase == PhasePlaying {
		chests, total = g.world.OpenChests(), len(g.world.Chests())
	}
	level := core.Min(g.ctx.Level, len(g.levels))
	hud := fmt.Sprintf(" %s | Level %d/%d  Score: %d  Chests: %d/%d  Resets: %d",
		g.Title(), level, len(g.levels), g.Score(), chests, total, g.ctx.Resets)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderEnd draws the end screen.
func (g *Game) renderEnd(dst *core.Screen) {
	if g.loadErr != nil || len(g.levels) == 0 {
		g.renderOverlay(dst, "No levels loaded", "Check the levels directory")
		return
	}
	g.renderOverlay(dst, "You escaped the dungeon!",
		fmt.Sprintf("Score: %d  Resets: %d  R to play again", g.Score(), g.ctx.Resets))
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1, core.ColorTitle)
	dst.DrawTextCentered(boxY+3, line2, core.ColorText)
}
