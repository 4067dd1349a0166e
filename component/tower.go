package component

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/fieldtd/parameter"
)

// TowerKind selects the stat table and firing behaviour of a tower
type TowerKind uint8

const (
	TowerBasic TowerKind = iota
	TowerCatapult
	TowerIce
	TowerLaser
	TowerKindCount
)

var towerKindNames = [TowerKindCount]string{"basic", "catapult", "ice", "laser"}

func (k TowerKind) String() string {
	if k >= TowerKindCount {
		return "unknown"
	}
	return towerKindNames[k]
}

// ParseTowerKind maps a config name back to a TowerKind
func ParseTowerKind(name string) (TowerKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range towerKindNames {
		if n == name {
			return TowerKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tower kind %q", name)
}

// Tower holds tower stats and firing state
type Tower struct {
	Kind TowerKind

	MinRange int
	MaxRange int
	Reload   int
	Attack   float64

	// ProjectileSpeed is zero for instant-hit towers
	ProjectileSpeed int
	SplashRadius    int
	SlowDuration    int

	// Counter counts down every frame, the tower fires when it reaches zero
	Counter int

	BuildCost   int
	UpgradeCost int
	// BuildValue accumulates everything spent on this tower, half is refunded on sale
	BuildValue int
	Level      int
}

// NewTower returns a level-zero tower with the stat table of kind
func NewTower(kind TowerKind) *Tower {
	t := &Tower{Kind: kind, Reload: parameter.TowerDefaultReload}
	switch kind {
	case TowerBasic:
		t.MaxRange = parameter.BasicTowerMaxRange
		t.Attack = parameter.BasicTowerAttackPower
		t.ProjectileSpeed = parameter.BasicTowerProjectileSpeed
		t.BuildCost = parameter.BasicTowerBuildCost
		t.UpgradeCost = parameter.BasicTowerUpgradeCost
	case TowerCatapult:
		t.MinRange = parameter.CatapultMinRange
		t.MaxRange = parameter.CatapultMaxRange
		t.Reload = parameter.CatapultReload
		t.Attack = parameter.CatapultAttackPower
		t.ProjectileSpeed = parameter.CatapultProjectileSpeed
		t.SplashRadius = parameter.CatapultSplashRadius
		t.BuildCost = parameter.CatapultBuildCost
		t.UpgradeCost = parameter.CatapultUpgradeCost
	case TowerIce:
		t.MaxRange = parameter.IceTowerMaxRange
		t.ProjectileSpeed = parameter.IceTowerProjectileSpeed
		t.SlowDuration = parameter.IceTowerSlowDuration
		t.BuildCost = parameter.IceTowerBuildCost
		t.UpgradeCost = parameter.IceTowerUpgradeCost
	case TowerLaser:
		t.MaxRange = parameter.LaserTowerMaxRange
		t.Attack = parameter.LaserTowerAttackPower
		t.BuildCost = parameter.LaserTowerBuildCost
		t.UpgradeCost = parameter.LaserTowerUpgradeCost
	}
	t.BuildValue = t.BuildCost
	return t
}

// Upgrade applies one level of the kind's upgrade, the caller pays UpgradeCost
func (t *Tower) Upgrade() {
	switch t.Kind {
	case TowerBasic:
		t.Attack = min(t.Attack+parameter.BasicTowerUpgradeAttack, parameter.TowerMaxAttackPower)
	case TowerCatapult:
		t.Reload = max(t.Reload-1, parameter.TowerMinReload)
	case TowerIce:
		t.SlowDuration = min(t.SlowDuration+parameter.IceTowerSlowUpgrade, parameter.IceTowerMaxSlowDuration)
	case TowerLaser:
		t.Attack = min(t.Attack+parameter.LaserTowerUpgradeAttack, parameter.TowerMaxAttackPower)
	}
	t.BuildValue += t.UpgradeCost
	t.Level++
}

// FireRate is shots per frame, the threat contribution of this tower
func (t *Tower) FireRate() float64 {
	if t.Reload <= 0 {
		return 1
	}
	return 1 / float64(t.Reload)
}

// Instant reports whether the tower hits without a projectile
func (t *Tower) Instant() bool {
	return t.ProjectileSpeed == 0
}

// InRange reports whether squared distance d2 lies in the closed annulus
func (t *Tower) InRange(d2 int) bool {
	return t.MinRange*t.MinRange <= d2 && d2 <= t.MaxRange*t.MaxRange
}

// Ready reports whether the tower may fire this frame
func (t *Tower) Ready() bool {
	return t.Counter <= 0
}

// Fired resets the counter after a shot
func (t *Tower) Fired() {
	t.Counter = t.Reload
}

// Cooldown decrements the counter once per frame
func (t *Tower) Cooldown() {
	t.Counter--
}

// RefundValue is what selling the tower returns
func (t *Tower) RefundValue() int {
	return t.BuildValue / parameter.TowerSellRefundDivisor
}
