package navigation

import (
	"math"
	"testing"
)

// TestRegistryRangeUpgrade raises one tower's max range and checks only the affected region moves
func TestRegistryRangeUpgrade(t *testing.T) {
	const fireRate = 0.2
	r := NewRegistry(480, 480, 460, 20)

	r.Recompute([]Coverage{{X: 60, Y: 400, MinRange: 0, MaxRange: 50, FireRate: fireRate}}, nil)
	beforeWeights := append([]float64(nil), r.Weights().Values...)
	beforeThreat := append([]float64(nil), r.Threat().Values...)
	beforeDistance := append([]float64(nil), r.Distance().Values...)

	r.Recompute([]Coverage{{X: 60, Y: 400, MinRange: 0, MaxRange: 80, FireRate: fireRate}}, nil)

	stride := 481
	for y := 0; y <= 480; y++ {
		for x := 0; x <= 480; x++ {
			i := y*stride + x
			dx, dy := x-60, y-400
			d2 := dx*dx + dy*dy
			want := 0.0
			if d2 > 50*50 && d2 <= 80*80 {
				want = fireRate
			}
			if got := r.Weights().Values[i] - beforeWeights[i]; math.Abs(got-want) > 1e-12 {
				t.Fatalf("weight delta at (%d,%d) = %v, want %v", x, y, got, want)
			}
			if r.Distance().Values[i] != beforeDistance[i] {
				t.Fatalf("distance changed at (%d,%d)", x, y)
			}
		}
	}

	// Region near the seed is untouched
	for y := 0; y <= 100; y++ {
		for x := 300; x <= 480; x++ {
			if got, want := r.Threat().ValueAt(x, y), beforeThreat[y*stride+x]; got != want {
				t.Fatalf("threat at (%d,%d) changed from %v to %v", x, y, want, got)
			}
		}
	}

	// Newly covered pixel now pays the tower's rate
	if got, was := r.Threat().ValueAt(60, 330), beforeThreat[330*stride+60]; got < was+fireRate-1e-9 {
		t.Errorf("Expected threat at (60,330) to rise by at least %v, was %v now %v", fireRate, was, got)
	}

	st := r.Stats()
	if st.Recomputes != 2 {
		t.Errorf("Expected 2 recomputes, got %d", st.Recomputes)
	}
	if st.Reachable != 481*481 {
		t.Errorf("Expected every cell reachable, got %d", st.Reachable)
	}
}

func TestRegistryFieldLookup(t *testing.T) {
	r := NewRegistry(10, 10, 5, 5)
	if r.Field(FieldDistance) != r.Distance() || r.Field(FieldThreat) != r.Threat() {
		t.Error("Field lookup does not match accessors")
	}
	if r.Field(FieldKindCount) != nil {
		t.Error("Expected nil for unknown field kind")
	}
	if k, ok := ParseFieldKind("threat"); !ok || k != FieldThreat {
		t.Errorf("ParseFieldKind(threat) = %v, %v", k, ok)
	}
	if x, y := r.Seed(); x != 5 || y != 5 {
		t.Errorf("Seed() = %d,%d", x, y)
	}
}
