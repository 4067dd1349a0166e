package component

import (
	"math"

	"github.com/lixenwraith/fieldtd/core"
	"github.com/lixenwraith/fieldtd/parameter"
)

// Species selects monster stats and the field it descends
type Species uint8

const (
	SpeciesFox Species = iota
	SpeciesPenguin
	SpeciesUnicorn
	SpeciesCount
)

var speciesNames = [SpeciesCount]string{"fox", "penguin", "unicorn"}

func (s Species) String() string {
	if s >= SpeciesCount {
		return "unknown"
	}
	return speciesNames[s]
}

// speciesStats indexed by Species
type speciesStats struct {
	baseHealth, healthPerLevel float64
	baseSpeed, speedLogFactor  float64
	resourceFactor             float64
	regenFraction              float64
	avoidsThreat               bool
}

var speciesLUT = [SpeciesCount]speciesStats{
	{parameter.FoxBaseHealth, parameter.FoxHealthPerLevel, parameter.FoxBaseSpeed, parameter.FoxSpeedLogFactor, parameter.FoxResourceFactor, 0, true},
	{parameter.PenguinBaseHealth, parameter.PenguinHealthPerLevel, parameter.PenguinBaseSpeed, parameter.PenguinSpeedLogFactor, parameter.PenguinResourceFactor, parameter.PenguinRegenFraction, false},
	{parameter.UnicornBaseHealth, parameter.UnicornHealthPerLevel, parameter.UnicornBaseSpeed, parameter.UnicornSpeedLogFactor, parameter.UnicornResourceFactor, 0, false},
}

// Monster holds health, movement state and active effects
type Monster struct {
	Species Species

	Health    float64
	MaxHealth float64
	Speed     float64
	Value     float64
	Regen     float64

	// Carry accumulates fractional movement between frames
	Carry float64

	// Trail lists pixels visited during the current frame, oldest first
	Trail []core.Point

	Effects []StatusEffect
}

// NewMonster scales the species table by difficulty
func NewMonster(species Species, difficulty float64) *Monster {
	st := speciesLUT[species%SpeciesCount]
	d := max(difficulty, 1)
	hp := st.baseHealth + st.healthPerLevel*d
	return &Monster{
		Species:   species,
		Health:    hp,
		MaxHealth: hp,
		Speed:     st.baseSpeed + st.speedLogFactor*math.Log10(d),
		Value:     st.resourceFactor * d,
		Regen:     st.regenFraction * hp,
	}
}

// AvoidsThreat reports whether the monster descends the threat field instead of the distance field
func (m *Monster) AvoidsThreat() bool {
	return speciesLUT[m.Species%SpeciesCount].avoidsThreat
}

// TakeDamage reduces health and reports whether the monster died
func (m *Monster) TakeDamage(amount float64) bool {
	m.Health -= amount
	return m.Health <= 0
}

// Dead reports whether health is exhausted
func (m *Monster) Dead() bool {
	return m.Health <= 0
}

// Slow applies or extends the slow effect
func (m *Monster) Slow(frames int) {
	for i := range m.Effects {
		if m.Effects[i].Type == EffectSlow {
			m.Effects[i].Remaining = max(m.Effects[i].Remaining, frames)
			return
		}
	}
	m.Effects = append(m.Effects, StatusEffect{Type: EffectSlow, Remaining: frames})
}

// Slowed reports whether a slow effect is active
func (m *Monster) Slowed() bool {
	for _, e := range m.Effects {
		if e.Type == EffectSlow && e.Remaining > 0 {
			return true
		}
	}
	return false
}

// EffectiveSpeed is the speed after status modifiers
func (m *Monster) EffectiveSpeed() float64 {
	if m.Slowed() {
		return m.Speed * parameter.SlowMultiplier
	}
	return m.Speed
}

// TickEffects counts every effect down and drops the expired ones
func (m *Monster) TickEffects() {
	kept := m.Effects[:0]
	for i := range m.Effects {
		if m.Effects[i].Tick() {
			kept = append(kept, m.Effects[i])
		}
	}
	m.Effects = kept
}

// Regenerate restores the per-frame regeneration up to max health
func (m *Monster) Regenerate() {
	if m.Regen > 0 && m.Health > 0 {
		m.Health = min(m.Health+m.Regen, m.MaxHealth)
	}
}

// Visited reports whether p is on this frame's trail
func (m *Monster) Visited(p core.Point) bool {
	for _, t := range m.Trail {
		if t == p {
			return true
		}
	}
	return false
}
