package engine

import (
	"math/rand"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
)

// newTestObject builds an object of kind with a fresh payload
func newTestObject(id core.Entity, kind component.Kind, x, y int) *Object {
	var o *Object
	switch kind {
	case component.KindTower:
		o = NewTowerObject(x, y, component.NewTower(component.TowerBasic))
	case component.KindMonster:
		o = NewMonsterObject(x, y, component.NewMonster(component.SpeciesUnicorn, 1))
	default:
		o = NewProjectileObject(x, y, &component.Projectile{})
	}
	o.ID = id
	return o
}

// populate adds n objects of random kind and position
func populate(s *Store, rng *rand.Rand, n int) []*Object {
	objs := make([]*Object, 0, n)
	for i := 0; i < n; i++ {
		kind := component.Kind(rng.Intn(int(component.KindCount)))
		o := newTestObject(core.Entity(i+1), kind, rng.Intn(s.Width()+1), rng.Intn(s.Height()+1))
		if err := s.Add(o); err != nil {
			panic(err)
		}
		objs = append(objs, o)
	}
	return objs
}

// idSet collects result IDs for order-insensitive comparison
func idSet(objs []*Object) map[core.Entity]bool {
	m := make(map[core.Entity]bool, len(objs))
	for _, o := range objs {
		m[o.ID] = true
	}
	return m
}

func sameSet(a, b []*Object) bool {
	if len(a) != len(b) {
		return false
	}
	sa := idSet(a)
	for _, o := range b {
		if !sa[o.ID] {
			return false
		}
	}
	return len(sa) == len(a)
}
