package system

import (
	"fmt"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/parameter"
)

// WaveSystem spawns a wave of monsters near the spawn point every interval frames
// Difficulty rises by one after each wave
type WaveSystem struct {
	interval int

	// Telemetry
	waves   int
	spawned int
}

func NewWaveSystem(interval int) *WaveSystem {
	if interval <= 0 {
		interval = parameter.WaveInterval
	}
	return &WaveSystem{interval: interval}
}

func (s *WaveSystem) Name() string {
	return "wave"
}

func (s *WaveSystem) Priority() int {
	return parameter.PriorityWave
}

// Waves returns the number of waves spawned so far
func (s *WaveSystem) Waves() int { return s.waves }

// Spawned returns the number of monsters spawned so far
func (s *WaveSystem) Spawned() int { return s.spawned }

func (s *WaveSystem) Update(w *engine.World) error {
	if (w.Frame-1)%s.interval != 0 {
		return nil
	}

	count := int(parameter.WaveBaseCount + parameter.WaveDifficultyFactor*w.Difficulty + parameter.WaveRandomSpread*w.Rand.Float64())
	a := w.Arena
	for i := 0; i < count; i++ {
		species := component.Species(w.Rand.Intn(int(component.SpeciesCount)))
		x := clamp(a.StartX+w.Rand.Intn(a.GridWidth/2+1)-a.GridWidth/4, 0, a.Width)
		y := clamp(a.StartY+w.Rand.Intn(a.GridHeight/2+1)-a.GridHeight/4, 0, a.Height)

		o := engine.NewMonsterObject(x, y, component.NewMonster(species, w.Difficulty))
		if err := w.AddEntity(o); err != nil {
			return fmt.Errorf("wave spawn: %w", err)
		}
	}

	w.Emit(engine.Cue{Type: engine.CueWave, X: a.StartX, Y: a.StartY})
	w.Logger().Printf("[WAVE] %d: %d monsters at difficulty %.0f", s.waves+1, count, w.Difficulty)

	s.waves++
	s.spawned += count
	w.Difficulty++
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
