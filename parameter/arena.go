package parameter

// Arena geometry, pixel coordinates are inclusive on both ends ([0,Width] x [0,Height])
const (
	ArenaWidth  = 480
	ArenaHeight = 480

	// GridWidth and GridHeight size the cells towers occupy
	GridWidth  = 40
	GridHeight = 40

	// Monster spawn point
	StartX = 20
	StartY = 20

	// End-zone pixel, sole seed of every scalar field
	EndX = 460
	EndY = 20
)

// Simulation pacing
const (
	// WaveInterval is the number of frames between monster waves
	WaveInterval = 50

	// TickRate is frames per second when running against a wall clock
	TickRate = 30

	StartingResources = 200

	// InitialDifficulty seeds the first wave, incremented after every wave
	InitialDifficulty = 1.0
)
