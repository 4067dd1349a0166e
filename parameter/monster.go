package parameter

// Monster - shared
const (
	// SlowMultiplier scales speed while a slow effect is active
	SlowMultiplier = 0.2

	// MonsterMaxStep bounds the pixels a monster can cover in one frame, used to widen
	// tower range queries so trail pixels are not missed
	MonsterMaxStep = 8

	// WaveBaseCount, WaveDifficultyFactor and WaveRandomSpread shape wave size:
	// count = base + difficulty*factor + spread*rand
	WaveBaseCount        = 1.0
	WaveDifficultyFactor = 0.2
	WaveRandomSpread     = 2.0
)

// Monster - Fox (follows the threat field)
const (
	FoxBaseHealth       = 5.0
	FoxHealthPerLevel   = 2.0
	FoxBaseSpeed        = 5.0
	FoxSpeedLogFactor   = 0.5
	FoxResourceFactor   = 1.5
)

// Monster - Penguin (regenerates)
const (
	PenguinBaseHealth     = 7.5
	PenguinHealthPerLevel = 2.5
	PenguinBaseSpeed      = 3.0
	PenguinSpeedLogFactor = 0.3
	PenguinResourceFactor = 1.25
	PenguinRegenFraction  = 0.05
)

// Monster - Unicorn
const (
	UnicornBaseHealth     = 10.0
	UnicornHealthPerLevel = 3.0
	UnicornBaseSpeed      = 2.0
	UnicornSpeedLogFactor = 0.2
	UnicornResourceFactor = 1.0
)
