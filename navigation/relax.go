package navigation

// WallChecker is a function that returns true if cell blocks navigation
type WallChecker func(x, y int) bool

// StepCost returns the cost of stepping into the cell at flat index idx
type StepCost func(idx int) float64

// 4-neighbour offsets, the order Descend scans in
var neighbours = [4][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// relax recomputes f from (seedX, seedY) with label-correcting Dijkstra
// A cell is re-pushed whenever a strictly lower value reaches it, stale heap entries are skipped
// The seed always holds 0, a nil isBlocked blocks nothing
func relax(f *Field, seedX, seedY int, isBlocked WallChecker, cost StepCost) {
	f.reset()
	f.SeedX, f.SeedY = seedX, seedY
	if !f.InBounds(seedX, seedY) {
		f.Valid = false
		return
	}
	f.Valid = true

	stride := f.Width + 1
	seedIdx := f.index(seedX, seedY)
	f.Values[seedIdx] = 0

	f.heap = f.heap[:0]
	f.heap.push(heapEntry{idx: seedIdx, value: 0})

	for len(f.heap) > 0 {
		entry := f.heap.pop()

		if entry.value > f.Values[entry.idx] {
			continue // Stale entry
		}

		cx := entry.idx % stride
		cy := entry.idx / stride

		for _, d := range neighbours {
			nx, ny := cx+d[0], cy+d[1]
			if !f.InBounds(nx, ny) {
				continue
			}
			if isBlocked != nil && isBlocked(nx, ny) {
				continue
			}
			nIdx := ny*stride + nx
			v := entry.value + cost(nIdx)
			if v < f.Values[nIdx] {
				f.Values[nIdx] = v
				f.heap.push(heapEntry{idx: nIdx, value: v})
			}
		}
	}
}

// RelaxDistance fills f with hop distance to the seed
func RelaxDistance(f *Field, seedX, seedY int, isBlocked WallChecker) {
	relax(f, seedX, seedY, isBlocked, func(int) float64 { return 1 })
}

// RelaxThreat fills f with accumulated tower fire rate along the cheapest route to the seed
// Every step pays a small movement cost so open ground still slopes toward the seed
func RelaxThreat(f *Field, seedX, seedY int, isBlocked WallChecker, w *ThreatWeights, movementCost float64) {
	relax(f, seedX, seedY, isBlocked, func(idx int) float64 {
		return w.Values[idx] + movementCost
	})
}
