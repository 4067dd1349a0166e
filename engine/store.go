package engine

import (
	"fmt"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/core"
)

// KeyFunc supplies the ordering key used by SortedQuery
type KeyFunc func(o *Object) float64

// sortKey identifies one cached sorted view of a kind bucket
type sortKey struct {
	kind  component.Kind
	order SortOrder
}

// Store indexes objects by x coordinate, y coordinate and kind
// Coordinates are inclusive on both ends: x in [0,Width], y in [0,Height]
// Not safe for concurrent use, the owning World is the single writer
type Store struct {
	width, height int

	objects map[core.Entity]*Object
	xs      []bucket // Width+1 buckets
	ys      []bucket // Height+1 buckets
	kinds   [component.KindCount]bucket

	keyFn  KeyFunc
	sorted map[sortKey][]*Object // Lazily rebuilt per (kind, order), dropped on mutation
}

// NewStore creates an empty store for a width x height arena
func NewStore(width, height int) *Store {
	return &Store{
		width:   width,
		height:  height,
		objects: make(map[core.Entity]*Object),
		xs:      make([]bucket, width+1),
		ys:      make([]bucket, height+1),
		sorted:  make(map[sortKey][]*Object),
	}
}

func (s *Store) Width() int  { return s.width }
func (s *Store) Height() int { return s.height }

// InBounds reports whether (x, y) is a valid pixel
func (s *Store) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= s.width && y <= s.height
}

// Add inserts o into its kind bucket and position buckets
func (s *Store) Add(o *Object) error {
	if !s.InBounds(o.X, o.Y) {
		return fmt.Errorf("add %s %d at (%d,%d): %w", o.Kind, o.ID, o.X, o.Y, ErrInvalidCoordinate)
	}
	if !o.Kind.Valid() || !o.payloadMatches() {
		return fmt.Errorf("add %s %d: %w", o.Kind, o.ID, ErrKindMismatch)
	}
	if _, exists := s.objects[o.ID]; exists {
		return fmt.Errorf("add %s %d: %w", o.Kind, o.ID, ErrDuplicateEntity)
	}

	s.objects[o.ID] = o
	s.kinds[o.Kind].add(o)
	s.xs[o.X].add(o)
	s.ys[o.Y].add(o)
	s.invalidate(o.Kind)
	return nil
}

// Remove deletes o from every bucket
func (s *Store) Remove(o *Object) error {
	if cur, exists := s.objects[o.ID]; !exists || cur != o {
		return fmt.Errorf("remove %s %d: %w", o.Kind, o.ID, ErrUnknownEntity)
	}

	delete(s.objects, o.ID)
	s.kinds[o.Kind].remove(o)
	s.xs[o.X].remove(o)
	s.ys[o.Y].remove(o)
	s.invalidate(o.Kind)
	return nil
}

// Move relocates o to (x, y), on error nothing changes
func (s *Store) Move(o *Object, x, y int) error {
	if cur, exists := s.objects[o.ID]; !exists || cur != o {
		return fmt.Errorf("move %s %d: %w", o.Kind, o.ID, ErrUnknownEntity)
	}
	if !s.InBounds(x, y) {
		return fmt.Errorf("move %s %d to (%d,%d): %w", o.Kind, o.ID, x, y, ErrInvalidCoordinate)
	}
	if x == o.X && y == o.Y {
		return nil
	}

	if x != o.X {
		s.xs[o.X].remove(o)
		s.xs[x].add(o)
	}
	if y != o.Y {
		s.ys[o.Y].remove(o)
		s.ys[y].add(o)
	}
	o.X, o.Y = x, y
	s.invalidate(o.Kind)
	return nil
}

// Get returns the stored object for id
func (s *Store) Get(id core.Entity) (*Object, bool) {
	o, ok := s.objects[id]
	return o, ok
}

// Len returns the number of stored objects
func (s *Store) Len() int {
	return len(s.objects)
}

// Count returns the number of stored objects of kind
func (s *Store) Count(kind component.Kind) int {
	if !kind.Valid() {
		return 0
	}
	return s.kinds[kind].len()
}

// Objects returns a copy of the kind bucket in insertion order, modulo swap-removes
func (s *Store) Objects(kind component.Kind) []*Object {
	if !kind.Valid() {
		return nil
	}
	return append([]*Object(nil), s.kinds[kind].items...)
}

// SetKeyFunc installs the ordering key for SortedQuery and drops every cached order
func (s *Store) SetKeyFunc(fn KeyFunc) {
	s.keyFn = fn
	s.InvalidateOrder()
}

// InvalidateOrder drops every cached sorted bucket, call after the key source changes
func (s *Store) InvalidateOrder() {
	clear(s.sorted)
}

func (s *Store) invalidate(kind component.Kind) {
	delete(s.sorted, sortKey{kind, Ascending})
	delete(s.sorted, sortKey{kind, Descending})
}

// Clear removes every object
func (s *Store) Clear() {
	clear(s.objects)
	for i := range s.xs {
		s.xs[i].reset()
	}
	for i := range s.ys {
		s.ys[i].reset()
	}
	for i := range s.kinds {
		s.kinds[i].reset()
	}
	s.InvalidateOrder()
}

// Validate checks every index invariant and returns the first violation
func (s *Store) Validate() error {
	xTotal, yTotal, kTotal := 0, 0, 0
	for x := range s.xs {
		for _, o := range s.xs[x].items {
			if o.X != x {
				return fmt.Errorf("object %d in x-bucket %d has x=%d", o.ID, x, o.X)
			}
		}
		xTotal += s.xs[x].len()
	}
	for y := range s.ys {
		for _, o := range s.ys[y].items {
			if o.Y != y {
				return fmt.Errorf("object %d in y-bucket %d has y=%d", o.ID, y, o.Y)
			}
		}
		yTotal += s.ys[y].len()
	}
	for k := range s.kinds {
		for _, o := range s.kinds[k].items {
			if o.Kind != component.Kind(k) {
				return fmt.Errorf("object %d in %s bucket has kind %s", o.ID, component.Kind(k), o.Kind)
			}
		}
		kTotal += s.kinds[k].len()
	}

	n := len(s.objects)
	if xTotal != n || yTotal != n || kTotal != n {
		return fmt.Errorf("bucket totals x=%d y=%d kind=%d, want %d", xTotal, yTotal, kTotal, n)
	}
	for id, o := range s.objects {
		if o.ID != id {
			return fmt.Errorf("object keyed %d has id %d", id, o.ID)
		}
		if !s.InBounds(o.X, o.Y) {
			return fmt.Errorf("object %d out of bounds at (%d,%d)", id, o.X, o.Y)
		}
		if !s.xs[o.X].has(o) || !s.ys[o.Y].has(o) || !s.kinds[o.Kind].has(o) {
			return fmt.Errorf("object %d missing from its buckets", id)
		}
	}
	return nil
}
