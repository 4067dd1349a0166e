package engine

import (
	"github.com/lixenwraith/fieldtd/component"
)

// AccessPath is the plan chosen for a query
type AccessPath uint8

const (
	PathEmpty     AccessPath = iota // Nothing can match, no index touched
	PathTypeScan                    // Scan the requested kind buckets
	PathIndexScan                   // Scan position buckets under the cheapest area selector
)

func (p AccessPath) String() string {
	switch p {
	case PathEmpty:
		return "empty"
	case PathTypeScan:
		return "type-scan"
	case PathIndexScan:
		return "index-scan"
	}
	return "unknown"
}

// plan holds the planner decision and, for index scans, the driving selector's box
type plan struct {
	path   AccessPath
	driver box
}

// planQuery picks between a type scan and an index scan using the fixed cost heuristic
// baseline is the summed size of the requested buckets
func (s *Store) planQuery(baseline int, selectors []Selector) plan {
	if len(selectors) == 0 {
		return plan{path: PathTypeScan}
	}

	minCost := 0.0
	var cheapest Selector
	for i, sel := range selectors {
		if a, ok := sel.(AreaSelector); ok && a.Empty(s) {
			return plan{path: PathEmpty}
		}
		c := sel.EstimateCost(s)
		if i == 0 || c < minCost {
			minCost, cheapest = c, sel
		}
	}

	if float64(baseline) <= minCost {
		return plan{path: PathTypeScan}
	}
	a, ok := cheapest.(AreaSelector)
	if !ok {
		return plan{path: PathTypeScan}
	}
	b, _ := a.bounds(s)
	return plan{path: PathIndexScan, driver: b}
}

func (s *Store) baseline(kinds component.KindSet) int {
	n := 0
	kinds.Each(func(k component.Kind) {
		n += s.kinds[k].len()
	})
	return n
}

// Explain reports the access path Query would take
func (s *Store) Explain(kinds component.KindSet, selectors ...Selector) AccessPath {
	if kinds.Empty() {
		return PathEmpty
	}
	return s.planQuery(s.baseline(kinds), selectors).path
}

// Query returns every object whose kind is in kinds and that every selector contains
// Result order is unspecified
func (s *Store) Query(kinds component.KindSet, selectors ...Selector) []*Object {
	if kinds.Empty() {
		return nil
	}
	p := s.planQuery(s.baseline(kinds), selectors)
	switch p.path {
	case PathTypeScan:
		return s.typeScan(nil, kinds, selectors)
	case PathIndexScan:
		return s.indexScan(nil, kinds, p.driver, selectors)
	}
	return nil
}

// matches applies every selector with short-circuit AND
func matches(o *Object, selectors []Selector) bool {
	for _, sel := range selectors {
		if !sel.Contains(o) {
			return false
		}
	}
	return true
}

func (s *Store) typeScan(dst []*Object, kinds component.KindSet, selectors []Selector) []*Object {
	kinds.Each(func(k component.Kind) {
		for _, o := range s.kinds[k].items {
			if matches(o, selectors) {
				dst = append(dst, o)
			}
		}
	})
	return dst
}

// indexScan walks the position buckets covered by b on its thinner axis
// The driving selector is re-checked along with the rest since b only bounds it
func (s *Store) indexScan(dst []*Object, kinds component.KindSet, b box, selectors []Selector) []*Object {
	visit := func(items []*Object) {
		for _, o := range items {
			if !kinds.Has(o.Kind) {
				continue
			}
			if b.scanX() {
				if o.Y < b.y0 || o.Y > b.y1 {
					continue
				}
			} else if o.X < b.x0 || o.X > b.x1 {
				continue
			}
			if matches(o, selectors) {
				dst = append(dst, o)
			}
		}
	}

	if b.scanX() {
		for x := b.x0; x <= b.x1; x++ {
			visit(s.xs[x].items)
		}
	} else {
		for y := b.y0; y <= b.y1; y++ {
			visit(s.ys[y].items)
		}
	}
	return dst
}
