package core

// Color is a semantic foreground color for a screen cell. Games pick the
// role; the platform decides how each role looks.
type Color uint8

// Palette roles.
const (
	ColorDefault Color = iota
	ColorWall
	ColorBlueDoor
	ColorRedDoor     // Locked: chests remain closed
	ColorRedDoorOpen // Every chest on the level is open
	ColorChest
	ColorMonster
	ColorPlayer
	ColorHUD
	ColorTitle
	ColorText
)
