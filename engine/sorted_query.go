package engine

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/fieldtd/component"
)

// SortOrder selects key direction for SortedQuery
type SortOrder uint8

const (
	Ascending SortOrder = iota
	Descending
)

func (s *Store) key(o *Object) float64 {
	if s.keyFn == nil {
		return 0
	}
	return s.keyFn(o)
}

// compareObjects orders by key in the requested direction, then by ID ascending
func (s *Store) compareObjects(order SortOrder) func(a, b *Object) int {
	return func(a, b *Object) int {
		ka, kb := s.key(a), s.key(b)
		c := cmp.Compare(ka, kb)
		if order == Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}
}

// sortedBucket returns the cached sorted view of a kind bucket, rebuilding it if stale
// The returned slice is shared and must not be modified
func (s *Store) sortedBucket(kind component.Kind, order SortOrder) []*Object {
	k := sortKey{kind, order}
	if cached, ok := s.sorted[k]; ok {
		return cached
	}
	view := append([]*Object(nil), s.kinds[kind].items...)
	slices.SortStableFunc(view, s.compareObjects(order))
	s.sorted[k] = view
	return view
}

// SortedQuery is Query restricted to one kind with results ordered by the store's key
// Equal keys resolve by entity ID ascending on every access path
func (s *Store) SortedQuery(kind component.Kind, order SortOrder, selectors ...Selector) []*Object {
	if !kind.Valid() {
		return nil
	}
	p := s.planQuery(s.kinds[kind].len(), selectors)
	switch p.path {
	case PathTypeScan:
		return s.sortedTypeScan(kind, order, selectors)
	case PathIndexScan:
		return s.sortedIndexScan(kind, order, p.driver, selectors)
	}
	return nil
}

func (s *Store) sortedTypeScan(kind component.Kind, order SortOrder, selectors []Selector) []*Object {
	var out []*Object
	for _, o := range s.sortedBucket(kind, order) {
		if matches(o, selectors) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) sortedIndexScan(kind component.Kind, order SortOrder, b box, selectors []Selector) []*Object {
	out := s.indexScan(nil, component.Kinds(kind), b, selectors)
	slices.SortStableFunc(out, s.compareObjects(order))
	return out
}
