package navigation

// Coverage describes the closed annulus a tower fires into
type Coverage struct {
	X, Y     int
	MinRange int
	MaxRange int
	FireRate float64 // Shots per frame, 1/reload
}

// ThreatWeights holds the summed fire rate of every tower covering each pixel
type ThreatWeights struct {
	Width, Height int
	Values        []float64 // Same layout as Field.Values
}

func NewThreatWeights(width, height int) *ThreatWeights {
	return &ThreatWeights{
		Width:  width,
		Height: height,
		Values: make([]float64, (width+1)*(height+1)),
	}
}

// At returns the weight at (x, y), zero out of bounds
func (w *ThreatWeights) At(x, y int) float64 {
	if x < 0 || y < 0 || x > w.Width || y > w.Height {
		return 0
	}
	return w.Values[y*(w.Width+1)+x]
}

// Rebuild zeroes the grid and adds FireRate to every pixel with minR² <= d² <= maxR²
func (w *ThreatWeights) Rebuild(towers []Coverage) {
	clear(w.Values)
	stride := w.Width + 1
	for _, t := range towers {
		if t.MaxRange < 0 || t.MinRange > t.MaxRange {
			continue
		}
		minSq := t.MinRange * t.MinRange
		maxSq := t.MaxRange * t.MaxRange

		x0, x1 := max(t.X-t.MaxRange, 0), min(t.X+t.MaxRange, w.Width)
		y0, y1 := max(t.Y-t.MaxRange, 0), min(t.Y+t.MaxRange, w.Height)
		for y := y0; y <= y1; y++ {
			dy := y - t.Y
			row := y * stride
			for x := x0; x <= x1; x++ {
				dx := x - t.X
				d2 := dx*dx + dy*dy
				if d2 >= minSq && d2 <= maxSq {
					w.Values[row+x] += t.FireRate
				}
			}
		}
	}
}
