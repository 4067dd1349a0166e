package parameter

// Tower - shared limits
const (
	TowerMaxAttackPower = 100
	TowerMinReload      = 2
	TowerDefaultReload  = 5

	// TowerSellRefundDivisor divides the build value refunded on sale
	TowerSellRefundDivisor = 2
)

// Tower - Basic
const (
	BasicTowerBuildCost       = 10
	BasicTowerUpgradeCost     = 10
	BasicTowerAttackPower     = 10
	BasicTowerMaxRange        = 65
	BasicTowerProjectileSpeed = 5
	BasicTowerUpgradeAttack   = 5
)

// Tower - Catapult
const (
	CatapultBuildCost       = 20
	CatapultUpgradeCost     = 20
	CatapultAttackPower     = 25
	CatapultMinRange        = 50
	CatapultMaxRange        = 150
	CatapultProjectileSpeed = 50
	CatapultReload          = 20
	CatapultSplashRadius    = 25
)

// Tower - Ice
const (
	IceTowerBuildCost       = 15
	IceTowerUpgradeCost     = 10
	IceTowerMaxRange        = 50
	IceTowerProjectileSpeed = 10
	IceTowerSlowDuration    = 10
	IceTowerSlowUpgrade     = 5
	IceTowerMaxSlowDuration = 100
)

// Tower - Laser
const (
	LaserTowerBuildCost     = 20
	LaserTowerUpgradeCost   = 10
	LaserTowerAttackPower   = 30
	LaserTowerMaxRange      = 100
	LaserTowerShotCost      = 2
	LaserTowerUpgradeAttack = 5

	// LaserRayWidth is the maximum distance from the ray at which monsters are hit
	LaserRayWidth = 3.0
)
