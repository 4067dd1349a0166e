package component

// Kind is the closed discriminant for every object held by the store
type Kind uint8

const (
	KindTower Kind = iota
	KindMonster
	KindProjectile
	KindCount
)

var kindNames = [KindCount]string{"tower", "monster", "projectile"}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return k < KindCount
}

// KindSet is a bitmask over Kind
type KindSet uint8

// Kinds builds a set from the given kinds, invalid kinds are ignored
func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		if k.Valid() {
			s |= 1 << k
		}
	}
	return s
}

// AllKinds contains every declared kind
const AllKinds KindSet = 1<<KindCount - 1

func (s KindSet) Has(k Kind) bool {
	return k.Valid() && s&(1<<k) != 0
}

func (s KindSet) Empty() bool {
	return s&AllKinds == 0
}

// Each calls fn for every kind in the set in declaration order
func (s KindSet) Each(fn func(Kind)) {
	for k := Kind(0); k < KindCount; k++ {
		if s.Has(k) {
			fn(k)
		}
	}
}
