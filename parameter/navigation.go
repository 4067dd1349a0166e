package parameter

// Navigation - Scalar fields
const (
	// ThreatMovementCost is added to every step of the threat field so regions without
	// tower coverage still have a strictly decreasing gradient toward the end-zone
	ThreatMovementCost = 0.001

	// DistanceStepCost is the per-pixel cost of the distance field
	DistanceStepCost = 1.0
)
