package component

import "github.com/lixenwraith/fieldtd/core"

// Projectile travels from a tower toward a monster and resolves on arrival
type Projectile struct {
	Source core.Entity // Firing tower
	Target core.Entity // Monster, may be gone by arrival

	Tower TowerKind

	Speed        int
	Damage       float64
	SplashRadius int
	SlowDuration int

	// Progress accumulates fractional movement between frames
	Progress float64
}
