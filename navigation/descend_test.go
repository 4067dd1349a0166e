package navigation

import (
	"math"
	"testing"
)

func TestDescendReachesSeed(t *testing.T) {
	f := NewField(480, 480)
	RelaxDistance(f, 460, 20, nil)

	x, y := 20, 20
	steps := 0
	for {
		nx, ny, ok := Descend(f, x, y)
		if !ok {
			break
		}
		if f.ValueAt(nx, ny) >= f.ValueAt(x, y) {
			t.Fatalf("step %d did not decrease: (%d,%d) -> (%d,%d)", steps, x, y, nx, ny)
		}
		x, y = nx, ny
		steps++
	}
	if x != 460 || y != 20 {
		t.Errorf("Expected to stop at seed, stopped at (%d,%d)", x, y)
	}
	if steps != 440 {
		t.Errorf("Expected 440 steps, got %d", steps)
	}
}

func TestDescendTieBreakOrder(t *testing.T) {
	f := NewField(2, 2)
	f.Valid = true
	inf := math.Inf(1)
	set := func(x, y int, v float64) { f.Values[f.index(x, y)] = v }

	// Every cell starts at +Inf
	for i := range f.Values {
		f.Values[i] = inf
	}
	set(1, 1, 5)
	set(0, 1, 3) // left
	set(2, 1, 3) // right, equal to left
	set(1, 0, 3) // up
	set(1, 2, 4) // down

	for i := 0; i < 10; i++ {
		nx, ny, ok := Descend(f, 1, 1)
		if !ok || nx != 0 || ny != 1 {
			t.Fatalf("Expected left neighbour on tie, got (%d,%d,%v)", nx, ny, ok)
		}
	}

	set(1, 2, 2)
	if nx, ny, ok := Descend(f, 1, 1); !ok || nx != 1 || ny != 2 {
		t.Errorf("Expected strictly lower down neighbour, got (%d,%d,%v)", nx, ny, ok)
	}
}

func TestDescendNoMove(t *testing.T) {
	f := NewField(4, 4)
	isBlocked := wallsChecker(pixelWall{2, 0, 2, 4})
	RelaxDistance(f, 0, 0, isBlocked)

	tests := []struct {
		name string
		x, y int
	}{
		{"seed", 0, 0},
		{"unreachable", 4, 4},
		{"wall", 2, 2},
		{"out of bounds", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny, ok := Descend(f, tt.x, tt.y)
			if ok || nx != tt.x || ny != tt.y {
				t.Errorf("Descend(%d,%d) = (%d,%d,%v), want no move", tt.x, tt.y, nx, ny, ok)
			}
		})
	}
}
