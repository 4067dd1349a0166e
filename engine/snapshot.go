package engine

import (
	"slices"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
)

// CueType names a one-shot event surfaced to the UI boundary
type CueType string

const (
	CueTowerFire     CueType = "tower_fire"
	CueProjectileHit CueType = "projectile_hit"
	CueMonsterDeath  CueType = "monster_death"
	CueWave          CueType = "wave"
	CueGameOver      CueType = "game_over"
)

// Cue is a frame-stamped event for audio and network collaborators
type Cue struct {
	Frame int     `json:"frame"`
	Type  CueType `json:"type" jsonschema:"enum=tower_fire,enum=projectile_hit,enum=monster_death,enum=wave,enum=game_over"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Tower string  `json:"tower,omitempty" jsonschema:"description=Tower kind for fire and hit cues"`
}

// EntityView is the read-only projection of one stored object
type EntityView struct {
	ID     core.Entity `json:"id"`
	Kind   string      `json:"kind" jsonschema:"enum=tower,enum=monster,enum=projectile"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Detail string      `json:"detail,omitempty" jsonschema:"description=Tower kind or monster species"`
	Health float64     `json:"health,omitempty"`
	Level  int         `json:"level,omitempty"`
}

// Snapshot is an immutable copy of world state published after each step
type Snapshot struct {
	Frame      int          `json:"frame" jsonschema:"description=Simulation frame the snapshot was taken after"`
	Resources  float64      `json:"resources"`
	Score      float64      `json:"score"`
	Difficulty float64      `json:"difficulty"`
	GameOver   bool         `json:"gameOver"`
	Recomputes int          `json:"recomputes" jsonschema:"description=Field recomputes since the world was created"`
	Entities   []EntityView `json:"entities"`
	Cues       []Cue        `json:"cues,omitempty"`
}

// Snapshot copies the current state, entities ordered by ID
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:      w.Frame,
		Resources:  w.Player.Resources,
		Score:      w.Player.Score,
		Difficulty: w.Difficulty,
		GameOver:   w.gameOver,
		Recomputes: w.Fields.Stats().Recomputes,
		Entities:   make([]EntityView, 0, w.Store.Len()),
		Cues:       slices.Clone(w.cues),
	}
	for k := component.Kind(0); k < component.KindCount; k++ {
		for _, o := range w.Store.kinds[k].items {
			snap.Entities = append(snap.Entities, viewOf(o))
		}
	}
	slices.SortFunc(snap.Entities, func(a, b EntityView) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return snap
}

func viewOf(o *Object) EntityView {
	v := EntityView{ID: o.ID, Kind: o.Kind.String(), X: o.X, Y: o.Y}
	switch o.Kind {
	case component.KindTower:
		v.Detail = o.Tower.Kind.String()
		v.Level = o.Tower.Level
	case component.KindMonster:
		v.Detail = o.Monster.Species.String()
		v.Health = o.Monster.Health
	case component.KindProjectile:
		v.Detail = o.Projectile.Tower.String()
	}
	return v
}
