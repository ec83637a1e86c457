package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// colorStyles maps palette roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlueDoor:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorRedDoor:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorRedDoorOpen: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorChest:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMonster:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
