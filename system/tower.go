package system

import (
	"fmt"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/parameter"
)

// TowerSystem counts tower reloads down and fires at the monster closest to the end zone
// Candidates come from a ring query widened by one frame of monster movement, then each is checked
// against the tower's exact annulus at its current position and along this frame's trail
type TowerSystem struct {
	// Telemetry
	shots int
}

func NewTowerSystem() *TowerSystem {
	return &TowerSystem{}
}

func (s *TowerSystem) Name() string {
	return "tower"
}

func (s *TowerSystem) Priority() int {
	return parameter.PriorityTower
}

// Shots returns the number of shots fired so far
func (s *TowerSystem) Shots() int { return s.shots }

func (s *TowerSystem) Update(w *engine.World) error {
	for _, o := range w.Store.Objects(component.KindTower) {
		t := o.Tower
		if t.Ready() {
			if target := s.acquire(w, o); target != nil {
				fired, err := s.fire(w, o, target)
				if err != nil {
					return err
				}
				if fired {
					t.Fired()
					s.shots++
				}
			}
		}
		t.Cooldown()
	}
	return nil
}

// acquire returns the in-range monster with the lowest distance-field value
func (s *TowerSystem) acquire(w *engine.World, tower *engine.Object) *engine.Object {
	t := tower.Tower
	ring := engine.Ring(tower.X, tower.Y, t.MinRange-parameter.MonsterMaxStep, t.MaxRange+parameter.MonsterMaxStep)
	for _, m := range w.Store.SortedQuery(component.KindMonster, engine.Ascending, ring) {
		if t.InRange(tower.Pos().DistSq(m.Pos())) {
			return m
		}
		for _, p := range m.Monster.Trail {
			if t.InRange(tower.Pos().DistSq(p)) {
				return m
			}
		}
	}
	return nil
}

func (s *TowerSystem) fire(w *engine.World, tower, target *engine.Object) (bool, error) {
	t := tower.Tower
	if t.Instant() {
		return s.fireLaser(w, tower, target)
	}

	p := engine.NewProjectileObject(tower.X, tower.Y, &component.Projectile{
		Source:       tower.ID,
		Target:       target.ID,
		Tower:        t.Kind,
		Speed:        t.ProjectileSpeed,
		Damage:       t.Attack,
		SplashRadius: t.SplashRadius,
		SlowDuration: t.SlowDuration,
	})
	if err := w.AddEntity(p); err != nil {
		return false, fmt.Errorf("tower %d fire: %w", tower.ID, err)
	}
	w.Emit(engine.Cue{Type: engine.CueTowerFire, X: tower.X, Y: tower.Y, Tower: t.Kind.String()})
	return true, nil
}

// fireLaser damages every monster within LaserRayWidth of the ray from the tower through the target
func (s *TowerSystem) fireLaser(w *engine.World, tower, target *engine.Object) (bool, error) {
	if w.Player.Resources < parameter.LaserTowerShotCost {
		return false, nil
	}
	w.Player.Resources -= parameter.LaserTowerShotCost

	ray := engine.Property(inRay(tower, target, parameter.LaserRayWidth))
	for _, m := range w.Store.Query(component.Kinds(component.KindMonster), ray) {
		if _, err := w.Damage(m, tower.Tower.Attack); err != nil {
			return true, fmt.Errorf("laser %d: %w", tower.ID, err)
		}
	}
	w.Emit(engine.Cue{Type: engine.CueTowerFire, X: tower.X, Y: tower.Y, Tower: tower.Tower.Kind.String()})
	return true, nil
}

// inRay matches objects on the half-line from origin through target within width pixels
func inRay(origin, target *engine.Object, width float64) func(o *engine.Object) bool {
	dx, dy := float64(target.X-origin.X), float64(target.Y-origin.Y)
	lenSq := dx*dx + dy*dy
	return func(o *engine.Object) bool {
		if lenSq == 0 {
			return o.ID == target.ID
		}
		vx, vy := float64(o.X-origin.X), float64(o.Y-origin.Y)
		proj := vx*dx + vy*dy
		if proj < 0 {
			return false
		}
		distSq := vx*vx + vy*vy - proj*proj/lenSq
		return distSq <= width*width
	}
}
