package engine

import (
	"math"
)

// Selector is a stateless predicate over stored objects with a cost estimate for the planner
type Selector interface {
	// Contains is the exact membership test
	Contains(o *Object) bool
	// EstimateCost approximates the candidates an index scan driven by this selector would visit
	EstimateCost(s *Store) float64
}

// AreaSelector is a selector with a bounding box that can drive an index scan
type AreaSelector interface {
	Selector
	// Empty reports whether the selector is degenerate or lies fully outside the arena of s
	Empty(s *Store) bool
	bounds(s *Store) (box, bool)
}

// box is an inclusive pixel rectangle
type box struct {
	x0, y0, x1, y1 int
}

func (b box) cols() int { return b.x1 - b.x0 + 1 }
func (b box) rows() int { return b.y1 - b.y0 + 1 }

// clip intersects b with the arena, ok is false when nothing remains
func (b box) clip(s *Store) (box, bool) {
	c := box{
		x0: max(b.x0, 0),
		y0: max(b.y0, 0),
		x1: min(b.x1, s.width),
		y1: min(b.y1, s.height),
	}
	if c.x0 > c.x1 || c.y0 > c.y1 {
		return box{}, false
	}
	return c, true
}

// scanX reports whether the x axis is the thinner one to scan
func (b box) scanX() bool {
	return b.cols() <= b.rows()
}

// areaCost is span x (1 + average occupancy) on the thinner axis of the clipped box, zero when empty
func areaCost(a AreaSelector, s *Store) float64 {
	b, ok := a.bounds(s)
	if !ok {
		return 0
	}
	n := float64(len(s.objects))
	if b.scanX() {
		return float64(b.cols()) * (1 + n/float64(len(s.xs)))
	}
	return float64(b.rows()) * (1 + n/float64(len(s.ys)))
}

// --- Rectangle ---

type rectSelector struct {
	left, top, w, h int
}

// Rectangle selects objects with left <= x <= left+w and top <= y <= top+h
// A zero extent selects a single row or column, negative extents select nothing
func Rectangle(left, top, w, h int) AreaSelector {
	return rectSelector{left: left, top: top, w: w, h: h}
}

func (r rectSelector) Contains(o *Object) bool {
	return o.X >= r.left && o.X <= r.left+r.w && o.Y >= r.top && o.Y <= r.top+r.h
}

func (r rectSelector) bounds(s *Store) (box, bool) {
	if r.w < 0 || r.h < 0 {
		return box{}, false
	}
	return box{r.left, r.top, r.left + r.w, r.top + r.h}.clip(s)
}

func (r rectSelector) Empty(s *Store) bool {
	_, ok := r.bounds(s)
	return !ok
}

func (r rectSelector) EstimateCost(s *Store) float64 {
	return areaCost(r, s)
}

// GridCell selects the grid cell of size cellW x cellH containing (x, y)
func GridCell(x, y, cellW, cellH int) AreaSelector {
	if cellW <= 0 || cellH <= 0 {
		return Rectangle(x, y, -1, -1)
	}
	left := floorDiv(x, cellW) * cellW
	top := floorDiv(y, cellH) * cellH
	return Rectangle(left, top, cellW-1, cellH-1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// --- Circle ---

type circleSelector struct {
	cx, cy, r int
}

// Circle selects objects with squared distance to (cx, cy) at most r²
func Circle(cx, cy, r int) AreaSelector {
	return circleSelector{cx: cx, cy: cy, r: r}
}

func (c circleSelector) Contains(o *Object) bool {
	if c.r < 0 {
		return false
	}
	dx, dy := o.X-c.cx, o.Y-c.cy
	return dx*dx+dy*dy <= c.r*c.r
}

func (c circleSelector) bounds(s *Store) (box, bool) {
	if c.r < 0 {
		return box{}, false
	}
	return box{c.cx - c.r, c.cy - c.r, c.cx + c.r, c.cy + c.r}.clip(s)
}

func (c circleSelector) Empty(s *Store) bool {
	_, ok := c.bounds(s)
	return !ok
}

func (c circleSelector) EstimateCost(s *Store) float64 {
	return areaCost(c, s)
}

// --- Ring ---

type ringSelector struct {
	cx, cy, minR, maxR int
}

// Ring selects objects with minR² <= squared distance to (cx, cy) <= maxR²
// A negative minR is treated as zero, minR > maxR selects nothing
func Ring(cx, cy, minR, maxR int) AreaSelector {
	return ringSelector{cx: cx, cy: cy, minR: max(minR, 0), maxR: maxR}
}

func (r ringSelector) Contains(o *Object) bool {
	if r.maxR < 0 || r.minR > r.maxR {
		return false
	}
	dx, dy := o.X-r.cx, o.Y-r.cy
	d2 := dx*dx + dy*dy
	return d2 >= r.minR*r.minR && d2 <= r.maxR*r.maxR
}

func (r ringSelector) bounds(s *Store) (box, bool) {
	if r.maxR < 0 || r.minR > r.maxR {
		return box{}, false
	}
	return box{r.cx - r.maxR, r.cy - r.maxR, r.cx + r.maxR, r.cy + r.maxR}.clip(s)
}

func (r ringSelector) Empty(s *Store) bool {
	_, ok := r.bounds(s)
	return !ok
}

func (r ringSelector) EstimateCost(s *Store) float64 {
	return areaCost(r, s)
}

// --- Property ---

type propertySelector struct {
	fn func(o *Object) bool
}

// Property selects objects for which fn returns true, a nil fn selects everything
// It has no spatial bound and always forces a type scan
func Property(fn func(o *Object) bool) Selector {
	return propertySelector{fn: fn}
}

func (p propertySelector) Contains(o *Object) bool {
	return p.fn == nil || p.fn(o)
}

func (p propertySelector) EstimateCost(*Store) float64 {
	return math.Inf(1)
}
