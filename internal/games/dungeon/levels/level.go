// Package levels parses level maps and loads them from a filesystem.
// This package depends on world but world does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/world"
)

// Tile codes of the map format.
const (
	TileWall        = '1'
	TileBlueDoor    = 'B'
	TileRedDoor     = 'R'
	TileChest       = 'C'
	TilePlayerStart = '&'
)

var (
	ErrEmpty             = errors.New("level has no rows")
	ErrNoPlayerStart     = errors.New("level has no player start")
	ErrDuplicatePlayer   = errors.New("level has more than one player start")
	ErrNoRedDoor         = errors.New("level has no red door")
	ErrDuplicateRedDoor  = errors.New("level has more than one red door")
	ErrNotFound          = errors.New("level not found")
	ErrUnsupportedFormat = errors.New("unsupported level format")
)

// Level is a parsed level map.
type Level struct {
	Number   int
	Name     string
	Width    int
	Height   int
	Rows     []string // Top row first, as written in the file
	Layout   world.Layout
	Metadata map[string]string
	FilePath string
}

// Parse reads a map in the plain text format. Rows are separated by any
// whitespace and the first row is the top of the level.
func Parse(name string, data []byte) (*Level, error) {
	return parseRows(name, strings.Fields(string(data)))
}

func parseRows(name string, rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	lvl := &Level{
		Name:   name,
		Height: len(rows),
		Rows:   rows,
	}
	l := &lvl.Layout
	l.Height = len(rows)

	var starts, reds int
	for i, line := range rows {
		row := len(rows) - 1 - i
		col := 0
		for _, ch := range line {
			c := world.C(col, row)
			switch ch {
			case TileWall:
				l.Walls = append(l.Walls, c)
			case TileBlueDoor:
				l.BlueDoors = append(l.BlueDoors, c)
			case TileRedDoor:
				l.RedDoor = c
				reds++
			case TileChest:
				l.Chests = append(l.Chests, c)
			case TilePlayerStart:
				l.PlayerStart = c
				starts++
			}
			col++
		}
		if col > lvl.Width {
			lvl.Width = col
		}
	}
	l.Width = lvl.Width

	switch {
	case starts == 0:
		return nil, fmt.Errorf("%s: %w", name, ErrNoPlayerStart)
	case starts > 1:
		return nil, fmt.Errorf("%s: %w (%d found)", name, ErrDuplicatePlayer, starts)
	case reds == 0:
		return nil, fmt.Errorf("%s: %w", name, ErrNoRedDoor)
	case reds > 1:
		return nil, fmt.Errorf("%s: %w (%d found)", name, ErrDuplicateRedDoor, reds)
	}
	return lvl, nil
}

// Tile returns the tile code at a gameplay cell, or '.' outside the map.
func (l *Level) Tile(c world.Cell) rune {
	i := len(l.Rows) - 1 - c.Row
	if i < 0 || i >= len(l.Rows) || c.Col < 0 {
		return '.'
	}
	line := []rune(l.Rows[i])
	if c.Col >= len(line) {
		return '.'
	}
	return line[c.Col]
}
