package engine

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
	"github.com/lixenwraith/fieldtd/navigation"
	"github.com/lixenwraith/fieldtd/parameter"
)

// Arena is the pixel and grid geometry of one simulation
type Arena struct {
	Width, Height         int
	GridWidth, GridHeight int
	StartX, StartY        int
	EndX, EndY            int
}

// DefaultArena returns the arena described by the parameter package
func DefaultArena() Arena {
	return Arena{
		Width:      parameter.ArenaWidth,
		Height:     parameter.ArenaHeight,
		GridWidth:  parameter.GridWidth,
		GridHeight: parameter.GridHeight,
		StartX:     parameter.StartX,
		StartY:     parameter.StartY,
		EndX:       parameter.EndX,
		EndY:       parameter.EndY,
	}
}

// Columns and Rows count grid cells, the last cell on each axis may be partial
func (a Arena) Columns() int { return a.Width/a.GridWidth + 1 }
func (a Arena) Rows() int    { return a.Height/a.GridHeight + 1 }

// Cell returns the grid cell containing pixel (x, y)
func (a Arena) Cell(x, y int) (gx, gy int) {
	return x / a.GridWidth, y / a.GridHeight
}

// CellCentre returns the pixel at the centre of grid cell (gx, gy)
func (a Arena) CellCentre(gx, gy int) (x, y int) {
	return gx*a.GridWidth + a.GridWidth/2, gy*a.GridHeight + a.GridHeight/2
}

// Player holds the economy
type Player struct {
	Resources float64
	Score     float64
}

// World is the explicit simulation context: store, fields, player, RNG and systems
// Single writer, nothing here is safe for concurrent use
type World struct {
	Store  *Store
	Fields *navigation.Registry
	Arena  Arena
	Player Player
	Rand   *rand.Rand

	Frame      int
	Difficulty float64

	logger  *log.Logger
	nextID  core.Entity
	towers  []bool // Grid cells holding a tower, row-major over Columns()
	systems []System

	gameOver bool
	cues     []Cue
}

// Option configures a World
type Option func(*World)

// WithLogger routes world logging to l
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSeed makes the world's RNG deterministic
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithResources overrides the starting resources
func WithResources(r float64) Option {
	return func(w *World) {
		w.Player.Resources = r
	}
}

// NewWorld creates a world for arena with both fields relaxed over the empty grid
func NewWorld(arena Arena, opts ...Option) *World {
	w := &World{
		Store:      NewStore(arena.Width, arena.Height),
		Fields:     navigation.NewRegistry(arena.Width, arena.Height, arena.EndX, arena.EndY),
		Arena:      arena,
		Player:     Player{Resources: parameter.StartingResources},
		Rand:       rand.New(rand.NewSource(1)),
		Difficulty: parameter.InitialDifficulty,
		logger:     log.Default(),
		nextID:     1,
		towers:     make([]bool, arena.Columns()*arena.Rows()),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Store.SetKeyFunc(w.distanceKey)
	w.refreshFields()
	return w
}

// distanceKey orders monsters by remaining distance to the end zone
func (w *World) distanceKey(o *Object) float64 {
	if o.Kind != component.KindMonster {
		return 0
	}
	return w.Fields.Distance().ValueAt(o.X, o.Y)
}

func (w *World) Logger() *log.Logger { return w.logger }

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort systems by priority (bubble sort is fine for small number of systems)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// AddEntity assigns an ID when unset and stores o, tower additions recompute the fields
func (w *World) AddEntity(o *Object) error {
	if o.ID == 0 {
		o.ID = w.nextID
		w.nextID++
	} else if o.ID >= w.nextID {
		w.nextID = o.ID + 1
	}
	if err := w.Store.Add(o); err != nil {
		return fmt.Errorf("world add: %w", err)
	}
	if o.Kind == component.KindTower {
		w.refreshFields()
	}
	return nil
}

// RemoveEntity deletes o, tower removals recompute the fields
func (w *World) RemoveEntity(o *Object) error {
	if err := w.Store.Remove(o); err != nil {
		return fmt.Errorf("world remove: %w", err)
	}
	if o.Kind == component.KindTower {
		w.refreshFields()
	}
	return nil
}

// MoveEntity relocates o, tower moves recompute the fields
func (w *World) MoveEntity(o *Object, x, y int) error {
	if err := w.Store.Move(o, x, y); err != nil {
		return fmt.Errorf("world move: %w", err)
	}
	if o.Kind == component.KindTower {
		w.refreshFields()
	}
	return nil
}

// refreshFields rebuilds tower occupancy and synchronously recomputes every field
func (w *World) refreshFields() {
	cols, rows := w.Arena.Columns(), w.Arena.Rows()
	towers := component.Kinds(component.KindTower)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			sel := GridCell(gx*w.Arena.GridWidth, gy*w.Arena.GridHeight, w.Arena.GridWidth, w.Arena.GridHeight)
			w.towers[gy*cols+gx] = len(w.Store.Query(towers, sel)) > 0
		}
	}

	objs := w.Store.Objects(component.KindTower)
	cov := make([]navigation.Coverage, 0, len(objs))
	for _, o := range objs {
		cov = append(cov, navigation.Coverage{
			X:        o.X,
			Y:        o.Y,
			MinRange: o.Tower.MinRange,
			MaxRange: o.Tower.MaxRange,
			FireRate: o.Tower.FireRate(),
		})
	}

	w.Fields.Recompute(cov, w.Blocked)
	w.Store.InvalidateOrder()

	st := w.Fields.Stats()
	w.logger.Printf("[FIELD] recompute #%d: %d towers, %d reachable cells, %v", st.Recomputes, len(cov), st.Reachable, st.LastDuration)
}

// Blocked reports whether the grid cell containing pixel (x, y) holds a tower
func (w *World) Blocked(x, y int) bool {
	if !w.Store.InBounds(x, y) {
		return true
	}
	gx, gy := w.Arena.Cell(x, y)
	return w.towers[gy*w.Arena.Columns()+gx]
}

// Step advances one frame, running every system in priority order
// An error from any system aborts the frame and is returned
func (w *World) Step() error {
	if w.gameOver {
		return nil
	}
	w.Frame++
	w.cues = w.cues[:0]
	for _, s := range w.systems {
		if err := s.Update(w); err != nil {
			return fmt.Errorf("frame %d: %w", w.Frame, err)
		}
		if w.gameOver {
			break
		}
	}
	return nil
}

// GameOver reports whether a monster reached the end zone
func (w *World) GameOver() bool {
	return w.gameOver
}

// EndGame stops the simulation, further steps are no-ops
func (w *World) EndGame() {
	if w.gameOver {
		return
	}
	w.gameOver = true
	w.Emit(Cue{Type: CueGameOver, X: w.Arena.EndX, Y: w.Arena.EndY})
	w.logger.Printf("[GAME] over at frame %d, score %.1f", w.Frame, w.Player.Score)
}

// Emit records a cue for the current frame
func (w *World) Emit(c Cue) {
	c.Frame = w.Frame
	w.cues = append(w.cues, c)
}

// Damage applies amount to a monster and kills it when health is exhausted
func (w *World) Damage(o *Object, amount float64) (killed bool, err error) {
	if o.Kind != component.KindMonster {
		return false, nil
	}
	if !o.Monster.TakeDamage(amount) {
		return false, nil
	}
	return true, w.KillMonster(o)
}

// KillMonster removes a monster and pays out its value
func (w *World) KillMonster(o *Object) error {
	if err := w.RemoveEntity(o); err != nil {
		return err
	}
	w.Player.Resources += o.Monster.Value
	w.Player.Score += o.Monster.Value
	w.Emit(Cue{Type: CueMonsterDeath, X: o.X, Y: o.Y})
	return nil
}
