package engine

import (
	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
)

// Object is the unit stored and indexed by Store
// Exactly one payload is set and it matches Kind
type Object struct {
	ID   core.Entity
	X, Y int
	Kind component.Kind

	Tower      *component.Tower
	Monster    *component.Monster
	Projectile *component.Projectile
}

// Pos returns the object's pixel position
func (o *Object) Pos() core.Point {
	return core.Point{X: o.X, Y: o.Y}
}

// payloadMatches reports whether exactly the payload selected by Kind is set
func (o *Object) payloadMatches() bool {
	switch o.Kind {
	case component.KindTower:
		return o.Tower != nil && o.Monster == nil && o.Projectile == nil
	case component.KindMonster:
		return o.Monster != nil && o.Tower == nil && o.Projectile == nil
	case component.KindProjectile:
		return o.Projectile != nil && o.Tower == nil && o.Monster == nil
	}
	return false
}

// NewTowerObject wraps a tower payload
func NewTowerObject(x, y int, t *component.Tower) *Object {
	return &Object{X: x, Y: y, Kind: component.KindTower, Tower: t}
}

// NewMonsterObject wraps a monster payload
func NewMonsterObject(x, y int, m *component.Monster) *Object {
	return &Object{X: x, Y: y, Kind: component.KindMonster, Monster: m}
}

// NewProjectileObject wraps a projectile payload
func NewProjectileObject(x, y int, p *component.Projectile) *Object {
	return &Object{X: x, Y: y, Kind: component.KindProjectile, Projectile: p}
}
