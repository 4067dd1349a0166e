package navigation

import "math"

// Descend picks the neighbour of (x, y) with the strictly lowest field value
// Neighbours are scanned left, right, up, down and the first minimum wins
// ok is false at the seed, on +Inf cells and at local minima
func Descend(f *Field, x, y int) (nx, ny int, ok bool) {
	best := f.ValueAt(x, y)
	if math.IsInf(best, 1) {
		return x, y, false
	}
	nx, ny = x, y
	for _, d := range neighbours {
		cx, cy := x+d[0], y+d[1]
		if v := f.ValueAt(cx, cy); v < best {
			best = v
			nx, ny = cx, cy
			ok = true
		}
	}
	return nx, ny, ok
}
