package dungeon

import (
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/world"
)

// Interaction is what an Interact action did.
type Interaction int

const (
	InteractNone Interaction = iota
	InteractTeleport
	InteractExit
	InteractChest
)

func (i Interaction) String() string {
	switch i {
	case InteractTeleport:
		return "teleport"
	case InteractExit:
		return "exit"
	case InteractChest:
		return "chest"
	default:
		return "none"
	}
}

// handleInput turns the frame's actions into a move or an interaction.
// Nothing happens while the player is in the air, animating, or has a move
// that has not been reported as finished.
func (g *Game) handleInput(in core.InputFrame) {
	p := g.world.Player
	cell, ok := p.Cell()
	if !ok || p.Animating() || p.Pending() || !g.world.Supported(cell) {
		return
	}

	switch {
	case in.Has(core.ActionLeft):
		g.walk(cell, world.Left)
	case in.Has(core.ActionRight):
		g.walk(cell, world.Right)
	case in.Has(core.ActionInteract):
		if what := g.interact(cell); what != InteractNone {
			g.logger.Debug("interact", "what", what, "cell", cell)
		}
	}
}

// walk moves the player sideways unless a wall is in the way.
func (g *Game) walk(from world.Cell, dir world.Direction) bool {
	if g.world.IsWall(from.Shift(dir)) {
		return false
	}
	if !g.world.Player.RequestMove(dir) {
		return false
	}
	g.tick.Post(Tick{})
	return true
}

// interact resolves the Interact action on the player's cell. Blue doors
// take precedence over the red door, which takes precedence over chests.
func (g *Game) interact(at world.Cell) Interaction {
	if g.world.IsBlueDoor(at) && g.clock.SinceStart() > g.cfg.Interaction.TeleportCooldown() {
		if exit, ok := g.world.BlueDoorExit(at); ok {
			g.world.Player.Teleport(exit)
			g.tick.Post(Tick{})
			return InteractTeleport
		}
	}

	if g.world.IsRedDoor(at) && g.world.AllChestsOpen() {
		g.changeLevel.Post(ChangeLevel{Advance: true})
		return InteractExit
	}

	if chest := g.world.ChestAt(at); chest != nil && chest.Open() {
		g.tick.Post(Tick{})
		return InteractChest
	}
	return InteractNone
}
