package system

import (
	"math"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/navigation"
	"github.com/lixenwraith/fieldtd/parameter"
)

// MonsterSystem moves every monster down its field one pixel per unit of speed
// Foxes descend the threat field, every other species the distance field
type MonsterSystem struct{}

func NewMonsterSystem() *MonsterSystem {
	return &MonsterSystem{}
}

func (s *MonsterSystem) Name() string {
	return "monster"
}

func (s *MonsterSystem) Priority() int {
	return parameter.PriorityMonster
}

func (s *MonsterSystem) Update(w *engine.World) error {
	for _, o := range w.Store.Objects(component.KindMonster) {
		m := o.Monster
		field := w.Fields.Distance()
		if m.AvoidsThreat() {
			field = w.Fields.Threat()
		}

		m.Trail = m.Trail[:0]
		m.Carry += m.EffectiveSpeed()

		x, y := o.X, o.Y
		for m.Carry >= 1 {
			m.Carry--
			nx, ny, ok := navigation.Descend(field, x, y)
			if !ok {
				// Stuck at the seed or a local minimum, drop whole units of carry
				m.Carry -= math.Floor(m.Carry)
				break
			}
			x, y = nx, ny
			m.Trail = append(m.Trail, core.Point{X: x, Y: y})
		}

		if x != o.X || y != o.Y {
			if err := w.MoveEntity(o, x, y); err != nil {
				return err
			}
		}

		m.TickEffects()
		m.Regenerate()
	}
	return nil
}
