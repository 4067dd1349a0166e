package system

import "github.com/lixenwraith/fieldtd/engine"

// RegisterDefaults adds the full tick pipeline to w
func RegisterDefaults(w *engine.World, waveInterval int) {
	w.AddSystem(NewWaveSystem(waveInterval))
	w.AddSystem(NewMonsterSystem())
	w.AddSystem(NewTowerSystem())
	w.AddSystem(NewProjectileSystem())
	w.AddSystem(NewEndZoneSystem())
}
