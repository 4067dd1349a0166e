package navigation

import (
	"time"

	"github.com/lixenwraith/fieldtd/parameter"
)

// FieldKind names the fields kept by a Registry
type FieldKind uint8

const (
	FieldDistance FieldKind = iota
	FieldThreat
	FieldKindCount
)

var fieldKindNames = [FieldKindCount]string{"distance", "threat"}

func (k FieldKind) String() string {
	if k >= FieldKindCount {
		return "unknown"
	}
	return fieldKindNames[k]
}

// ParseFieldKind maps a name back to a FieldKind, ok is false for unknown names
func ParseFieldKind(name string) (FieldKind, bool) {
	for i, n := range fieldKindNames {
		if n == name {
			return FieldKind(i), true
		}
	}
	return 0, false
}

// Stats reports recompute activity
type Stats struct {
	Recomputes   int
	LastDuration time.Duration
	Reachable    int // Finite cells in the distance field after the last recompute
}

// Registry owns the distance field, the threat field and the threat weights for one arena
// Both fields share a single seed, the end-zone pixel
type Registry struct {
	seedX, seedY int

	distance *Field
	threat   *Field
	weights  *ThreatWeights

	stats Stats
}

func NewRegistry(width, height, seedX, seedY int) *Registry {
	return &Registry{
		seedX:    seedX,
		seedY:    seedY,
		distance: NewField(width, height),
		threat:   NewField(width, height),
		weights:  NewThreatWeights(width, height),
	}
}

// Recompute rebuilds the threat weights and fully re-relaxes both fields
func (r *Registry) Recompute(towers []Coverage, isBlocked WallChecker) {
	start := time.Now()

	r.weights.Rebuild(towers)
	RelaxDistance(r.distance, r.seedX, r.seedY, isBlocked)
	RelaxThreat(r.threat, r.seedX, r.seedY, isBlocked, r.weights, parameter.ThreatMovementCost)

	r.stats.Recomputes++
	r.stats.LastDuration = time.Since(start)
	r.stats.Reachable = r.distance.ReachableCount()
}

func (r *Registry) Distance() *Field { return r.distance }

func (r *Registry) Threat() *Field { return r.threat }

func (r *Registry) Weights() *ThreatWeights { return r.weights }

// Field returns the field for kind, nil for unknown kinds
func (r *Registry) Field(kind FieldKind) *Field {
	switch kind {
	case FieldDistance:
		return r.distance
	case FieldThreat:
		return r.threat
	}
	return nil
}

// Seed returns the end-zone pixel both fields relax from
func (r *Registry) Seed() (x, y int) {
	return r.seedX, r.seedY
}

func (r *Registry) Stats() Stats {
	return r.stats
}
