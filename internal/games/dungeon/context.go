package dungeon

// Context is the bookkeeping of one run. It replaces process-wide state so
// several games can run side by side in one server.
type Context struct {
	Level       int // Current level number, 1-indexed
	StartLevel  int // Level the run started from
	Cleared     int // Levels left through the red door
	Resets      int // Level restarts after a collision or a manual restart
	ChestsTaken int // Chests opened on cleared levels
	Ticks       int // Simulation frames of this run
	Moves       int // Tick events processed
}
