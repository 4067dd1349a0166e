package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityWave       = 10
	PriorityMonster    = 20
	PriorityTower      = 30
	PriorityProjectile = 40
	PriorityEndZone    = 50
)
