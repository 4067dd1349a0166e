package component

// StatusEffect is a timed modifier applied to a monster
type StatusEffect struct {
	Type      EffectType
	Remaining int // Frames left, effect expires at zero
}

type EffectType uint8

const (
	EffectSlow EffectType = iota
)

// Tick counts the effect down one frame and reports whether it is still active
func (e *StatusEffect) Tick() bool {
	if e.Remaining > 0 {
		e.Remaining--
	}
	return e.Remaining > 0
}
