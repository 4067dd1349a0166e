package system

import (
	"math"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/parameter"
)

// ProjectileSystem moves projectiles toward their target and resolves hits on arrival
// A projectile whose target is gone is discarded
type ProjectileSystem struct {
	// Telemetry
	hits int
}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

// Hits returns the number of projectiles that reached their target
func (s *ProjectileSystem) Hits() int { return s.hits }

func (s *ProjectileSystem) Update(w *engine.World) error {
	for _, o := range w.Store.Objects(component.KindProjectile) {
		p := o.Projectile
		target, ok := w.Store.Get(p.Target)
		if !ok || target.Kind != component.KindMonster {
			if err := w.RemoveEntity(o); err != nil {
				return err
			}
			continue
		}

		dx, dy := float64(target.X-o.X), float64(target.Y-o.Y)
		dist := math.Hypot(dx, dy)
		p.Progress += float64(p.Speed)

		if dist <= p.Progress {
			if err := w.RemoveEntity(o); err != nil {
				return err
			}
			if err := s.hit(w, p, target); err != nil {
				return err
			}
			continue
		}

		step := math.Floor(p.Progress)
		p.Progress -= step
		nx := o.X + int(math.Round(dx/dist*step))
		ny := o.Y + int(math.Round(dy/dist*step))
		if err := w.MoveEntity(o, nx, ny); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProjectileSystem) hit(w *engine.World, p *component.Projectile, target *engine.Object) error {
	s.hits++
	w.Emit(engine.Cue{Type: engine.CueProjectileHit, X: target.X, Y: target.Y, Tower: p.Tower.String()})

	switch {
	case p.SplashRadius > 0:
		splash := engine.Circle(target.X, target.Y, p.SplashRadius)
		for _, m := range w.Store.Query(component.Kinds(component.KindMonster), splash) {
			if _, err := w.Damage(m, p.Damage); err != nil {
				return err
			}
		}
	case p.SlowDuration > 0:
		target.Monster.Slow(p.SlowDuration)
		if p.Damage > 0 {
			if _, err := w.Damage(target, p.Damage); err != nil {
				return err
			}
		}
	default:
		if _, err := w.Damage(target, p.Damage); err != nil {
			return err
		}
	}
	return nil
}
