package system

import (
	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/parameter"
)

// EndZoneSystem ends the game when any monster stands on the end-zone pixel
type EndZoneSystem struct{}

func NewEndZoneSystem() *EndZoneSystem {
	return &EndZoneSystem{}
}

func (s *EndZoneSystem) Name() string {
	return "endzone"
}

func (s *EndZoneSystem) Priority() int {
	return parameter.PriorityEndZone
}

func (s *EndZoneSystem) Update(w *engine.World) error {
	at := engine.Rectangle(w.Arena.EndX, w.Arena.EndY, 0, 0)
	if len(w.Store.Query(component.Kinds(component.KindMonster), at)) > 0 {
		w.EndGame()
	}
	return nil
}
