package navigation

import "math"

// Field is a dense scalar grid over the inclusive pixel range [0,Width] x [0,Height]
// Values decrease toward the seed, unreachable cells hold +Inf
type Field struct {
	Width, Height int
	Values        []float64 // Row-major, stride Width+1

	// Seed this field was relaxed from
	SeedX, SeedY int
	Valid        bool // False until the first relaxation

	// Reusable heap buffer to reduce allocations across recomputes
	heap minHeap
}

// NewField creates an invalid field covering the inclusive pixel range
func NewField(width, height int) *Field {
	size := (width + 1) * (height + 1)
	f := &Field{
		Width:  width,
		Height: height,
		Values: make([]float64, size),
		SeedX:  -1,
		SeedY:  -1,
		heap:   make(minHeap, 0, size/4),
	}
	f.reset()
	return f
}

func (f *Field) reset() {
	inf := math.Inf(1)
	for i := range f.Values {
		f.Values[i] = inf
	}
}

// InBounds reports whether (x, y) is inside the inclusive pixel range
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= f.Width && y <= f.Height
}

func (f *Field) index(x, y int) int {
	return y*(f.Width+1) + x
}

// ValueAt returns the relaxed value, +Inf out of bounds or before the first relaxation
func (f *Field) ValueAt(x, y int) float64 {
	if !f.Valid || !f.InBounds(x, y) {
		return math.Inf(1)
	}
	return f.Values[f.index(x, y)]
}

// Reachable reports whether the seed can be reached from (x, y)
func (f *Field) Reachable(x, y int) bool {
	return !math.IsInf(f.ValueAt(x, y), 1)
}

// MinMax returns the finite value range, ok is false when no cell is reachable
func (f *Field) MinMax() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Values {
		if math.IsInf(v, 1) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// ReachableCount returns the number of cells with a finite value
func (f *Field) ReachableCount() int {
	if !f.Valid {
		return 0
	}
	n := 0
	for _, v := range f.Values {
		if !math.IsInf(v, 1) {
			n++
		}
	}
	return n
}
