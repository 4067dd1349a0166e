package system

import (
	"testing"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
	"github.com/lixenwraith/fieldtd/engine"
)

func TestBasicTowerKills(t *testing.T) {
	towers := NewTowerSystem()
	projectiles := NewProjectileSystem()
	w := newTestWorld(t, towers, projectiles)
	if _, err := w.BuildTower(component.TowerBasic, 100, 100); err != nil {
		t.Fatal(err)
	}
	m := addMonster(t, w, component.SpeciesUnicorn, 140, 100) // 13 health, 20 pixels away
	resources := w.Player.Resources

	stepN(t, w, 1)
	if w.Store.Count(component.KindProjectile) != 1 {
		t.Fatalf("Expected a projectile after the first frame, got %d", w.Store.Count(component.KindProjectile))
	}
	if countCues(w, engine.CueTowerFire) != 1 {
		t.Error("Expected a fire cue")
	}

	for i := 0; i < 20 && w.Store.Count(component.KindMonster) > 0; i++ {
		stepN(t, w, 1)
	}
	if _, ok := w.Store.Get(m.ID); ok {
		t.Fatalf("Expected monster dead, health %v", m.Monster.Health)
	}
	if w.Player.Score != 1 || w.Player.Resources != resources+1 {
		t.Errorf("Expected reward of 1, score %v resources %v", w.Player.Score, w.Player.Resources)
	}
	if projectiles.Hits() != 2 {
		t.Errorf("Expected two hits to kill, got %d", projectiles.Hits())
	}
	// Third shot leaves on frame 11 before the second hit lands
	if towers.Shots() != 3 {
		t.Errorf("Expected three shots, got %d", towers.Shots())
	}
}

func TestTowerReload(t *testing.T) {
	towers := NewTowerSystem()
	w := newTestWorld(t, towers)
	if _, err := w.BuildTower(component.TowerBasic, 100, 100); err != nil {
		t.Fatal(err)
	}
	m := addMonster(t, w, component.SpeciesUnicorn, 140, 100)
	m.Monster.Health = 1e9

	// Fires on frames 1, 6 and 11
	stepN(t, w, 11)
	if towers.Shots() != 3 {
		t.Errorf("Expected 3 shots in 11 frames, got %d", towers.Shots())
	}
}

func TestTowerTargetsClosestToGoal(t *testing.T) {
	w := newTestWorld(t, NewTowerSystem())
	tower, err := w.BuildTower(component.TowerBasic, 260, 60)
	if err != nil {
		t.Fatal(err)
	}
	addMonster(t, w, component.SpeciesUnicorn, 230, 60)
	near := addMonster(t, w, component.SpeciesUnicorn, 300, 40)

	stepN(t, w, 1)
	ps := w.Store.Objects(component.KindProjectile)
	if len(ps) != 1 || ps[0].Projectile.Target != near.ID || ps[0].Projectile.Source != tower.ID {
		t.Fatalf("Expected one projectile at monster %d", near.ID)
	}
}

func TestTowerTargetsTrail(t *testing.T) {
	w := newTestWorld(t, NewTowerSystem())
	if _, err := w.BuildTower(component.TowerBasic, 100, 100); err != nil {
		t.Fatal(err)
	}
	// Current position is 70 pixels away, just past max range 65
	m := addMonster(t, w, component.SpeciesUnicorn, 170, 100)
	stepN(t, w, 1)
	if w.Store.Count(component.KindProjectile) != 0 {
		t.Fatal("Expected no shot at an out-of-range monster")
	}

	m.Monster.Trail = []core.Point{{X: 164, Y: 100}, {X: 170, Y: 100}}
	stepN(t, w, 1)
	if w.Store.Count(component.KindProjectile) != 1 {
		t.Error("Expected a shot at a monster whose trail crossed the range")
	}
}

func TestLaserTower(t *testing.T) {
	w := newTestWorld(t, NewTowerSystem())
	if _, err := w.BuildTower(component.TowerLaser, 100, 100); err != nil {
		t.Fatal(err)
	}
	a := addMonster(t, w, component.SpeciesUnicorn, 150, 100) // target
	b := addMonster(t, w, component.SpeciesUnicorn, 300, 102) // on the ray, out of range
	c := addMonster(t, w, component.SpeciesUnicorn, 50, 100)  // behind the tower
	b.Monster.Health, c.Monster.Health = 100, 100
	resources := w.Player.Resources

	stepN(t, w, 1)
	if _, ok := w.Store.Get(a.ID); ok {
		t.Error("Expected target killed by 30 damage")
	}
	if b.Monster.Health != 70 {
		t.Errorf("Expected monster on the ray hit, health %v", b.Monster.Health)
	}
	if c.Monster.Health != 100 {
		t.Errorf("Expected monster behind the tower untouched, health %v", c.Monster.Health)
	}
	if got := w.Player.Resources; got != resources-2+1 {
		t.Errorf("Expected shot cost 2 and reward 1, resources %v -> %v", resources, got)
	}
	if w.Store.Count(component.KindProjectile) != 0 {
		t.Error("Laser must not spawn projectiles")
	}
}

func TestLaserNeedsResources(t *testing.T) {
	towers := NewTowerSystem()
	w := newTestWorld(t, towers)
	if _, err := w.BuildTower(component.TowerLaser, 100, 100); err != nil {
		t.Fatal(err)
	}
	m := addMonster(t, w, component.SpeciesUnicorn, 150, 100)
	w.Player.Resources = 1

	stepN(t, w, 3)
	if towers.Shots() != 0 || m.Monster.Health != m.Monster.MaxHealth {
		t.Errorf("Expected no shots without resources, got %d", towers.Shots())
	}
}

func TestIceTowerSlows(t *testing.T) {
	w := newTestWorld(t, NewTowerSystem(), NewProjectileSystem())
	if _, err := w.BuildTower(component.TowerIce, 100, 100); err != nil {
		t.Fatal(err)
	}
	m := addMonster(t, w, component.SpeciesUnicorn, 130, 100)

	stepN(t, w, 4)
	if !m.Monster.Slowed() {
		t.Fatal("Expected monster slowed")
	}
	if m.Monster.Health != m.Monster.MaxHealth {
		t.Errorf("Expected ice to deal no damage, health %v", m.Monster.Health)
	}
}

func TestCatapultSplash(t *testing.T) {
	w := newTestWorld(t, NewTowerSystem(), NewProjectileSystem())
	if _, err := w.BuildTower(component.TowerCatapult, 100, 300); err != nil {
		t.Fatal(err)
	}
	a := addMonster(t, w, component.SpeciesUnicorn, 200, 300)
	b := addMonster(t, w, component.SpeciesUnicorn, 210, 310) // inside splash of a
	c := addMonster(t, w, component.SpeciesUnicorn, 100, 420) // in range, farther from the goal
	for _, o := range []*engine.Object{a, b, c} {
		o.Monster.Health = 100
	}

	stepN(t, w, 3)
	if a.Monster.Health != 75 || b.Monster.Health != 75 {
		t.Errorf("Expected both splashed monsters at 75, got %v and %v", a.Monster.Health, b.Monster.Health)
	}
	if c.Monster.Health != 100 {
		t.Errorf("Expected monster outside splash untouched, got %v", c.Monster.Health)
	}
}

func TestProjectileLosesTarget(t *testing.T) {
	w := newTestWorld(t, NewProjectileSystem())
	m := addMonster(t, w, component.SpeciesUnicorn, 400, 400)
	p := engine.NewProjectileObject(100, 100, &component.Projectile{Target: m.ID, Speed: 5, Damage: 1})
	if err := w.AddEntity(p); err != nil {
		t.Fatal(err)
	}

	stepN(t, w, 1)
	if p.X <= 100 || p.Y <= 100 {
		t.Errorf("Expected projectile to advance, at (%d,%d)", p.X, p.Y)
	}
	if err := w.RemoveEntity(m); err != nil {
		t.Fatal(err)
	}
	stepN(t, w, 1)
	if w.Store.Count(component.KindProjectile) != 0 {
		t.Error("Expected projectile discarded once its target is gone")
	}
}
