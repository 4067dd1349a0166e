package engine

import (
	"fmt"

	"github.com/lixenwraith/fieldtd/component"
)

// BuildTower places a tower of kind at the centre of the grid cell containing (x, y)
func (w *World) BuildTower(kind component.TowerKind, x, y int) (*Object, error) {
	if !w.Store.InBounds(x, y) {
		return nil, fmt.Errorf("build %s at (%d,%d): %w", kind, x, y, ErrInvalidCoordinate)
	}
	gx, gy := w.Arena.Cell(x, y)
	cx, cy := w.Arena.CellCentre(gx, gy)
	if !w.Store.InBounds(cx, cy) {
		return nil, fmt.Errorf("build %s in cell (%d,%d): %w", kind, gx, gy, ErrInvalidCoordinate)
	}

	t := component.NewTower(kind)
	if w.Player.Resources < float64(t.BuildCost) {
		return nil, fmt.Errorf("build %s costs %d, have %.1f: %w", kind, t.BuildCost, w.Player.Resources, ErrInsufficientResources)
	}
	if w.towers[gy*w.Arena.Columns()+gx] {
		return nil, fmt.Errorf("build %s in cell (%d,%d): %w", kind, gx, gy, ErrCellOccupied)
	}
	if !w.routeOpenWith(gx, gy) {
		return nil, fmt.Errorf("build %s in cell (%d,%d): %w", kind, gx, gy, ErrRouteBlocked)
	}

	o := NewTowerObject(cx, cy, t)
	if err := w.AddEntity(o); err != nil {
		return nil, err
	}
	w.Player.Resources -= float64(t.BuildCost)
	w.logger.Printf("[TOWER] built %s %d at (%d,%d)", kind, o.ID, cx, cy)
	return o, nil
}

// UpgradeTower pays the upgrade cost and applies one level of the kind's upgrade
func (w *World) UpgradeTower(o *Object) error {
	if o.Kind != component.KindTower || o.Tower == nil {
		return fmt.Errorf("upgrade %s %d: %w", o.Kind, o.ID, ErrNotTower)
	}
	if cur, ok := w.Store.Get(o.ID); !ok || cur != o {
		return fmt.Errorf("upgrade tower %d: %w", o.ID, ErrUnknownEntity)
	}
	cost := float64(o.Tower.UpgradeCost)
	if w.Player.Resources < cost {
		return fmt.Errorf("upgrade tower %d costs %.0f: %w", o.ID, cost, ErrInsufficientResources)
	}
	w.Player.Resources -= cost
	o.Tower.Upgrade()
	w.refreshFields()
	w.logger.Printf("[TOWER] upgraded %s %d to level %d", o.Tower.Kind, o.ID, o.Tower.Level)
	return nil
}

// SellTower removes a tower and refunds half of everything spent on it
func (w *World) SellTower(o *Object) error {
	if o.Kind != component.KindTower || o.Tower == nil {
		return fmt.Errorf("sell %s %d: %w", o.Kind, o.ID, ErrNotTower)
	}
	if err := w.RemoveEntity(o); err != nil {
		return err
	}
	refund := o.Tower.RefundValue()
	w.Player.Resources += float64(refund)
	w.logger.Printf("[TOWER] sold %s %d for %d", o.Tower.Kind, o.ID, refund)
	return nil
}

// routeOpenWith flood-fills the grid from the end-zone cell treating (bx, by) as occupied
// The route stays open when the spawn cell and every monster's cell are reached
func (w *World) routeOpenWith(bx, by int) bool {
	cols, rows := w.Arena.Columns(), w.Arena.Rows()
	blocked := func(gx, gy int) bool {
		return (gx == bx && gy == by) || w.towers[gy*cols+gx]
	}

	ex, ey := w.Arena.Cell(w.Arena.EndX, w.Arena.EndY)
	if blocked(ex, ey) {
		return false
	}

	visited := make([]bool, cols*rows)
	queue := []int{ey*cols + ex}
	visited[ey*cols+ex] = true
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cx, cy := idx%cols, idx/cols
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := cx+d[0], cy+d[1]
			if nx < 0 || ny < 0 || nx >= cols || ny >= rows {
				continue
			}
			n := ny*cols + nx
			if visited[n] || blocked(nx, ny) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	sx, sy := w.Arena.Cell(w.Arena.StartX, w.Arena.StartY)
	if !visited[sy*cols+sx] {
		return false
	}
	for _, m := range w.Store.Objects(component.KindMonster) {
		mx, my := w.Arena.Cell(m.X, m.Y)
		if !visited[my*cols+mx] {
			return false
		}
	}
	return true
}
