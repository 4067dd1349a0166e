package render

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fieldtd/component"
	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/navigation"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		sb.WriteRune(runeAt(screen, x, y))
	}
	return sb.String()
}

func TestFieldViewDrawsEntitiesAndStatus(t *testing.T) {
	w := engine.NewWorld(engine.DefaultArena(), engine.WithLogger(log.New(io.Discard, "", 0)))
	if _, err := w.BuildTower(component.TowerCatapult, 60, 100); err != nil {
		t.Fatal(err)
	}
	m := engine.NewMonsterObject(20, 20, component.NewMonster(component.SpeciesPenguin, 1))
	if err := w.AddEntity(m); err != nil {
		t.Fatal(err)
	}

	screen := newScreen(t, 80, 14)
	view := NewFieldView(screen, navigation.FieldDistance, 40)
	view.Draw(w.Snapshot(), w.Fields.Distance())

	if got := runeAt(screen, 1, 2); got != 'C' {
		t.Errorf("Expected catapult glyph at (1,2), got %q", got)
	}
	if got := runeAt(screen, 0, 0); got != 'p' {
		t.Errorf("Expected penguin glyph at (0,0), got %q", got)
	}
	if got := runeAt(screen, 5, 5); got != ' ' {
		t.Errorf("Expected heat cell at (5,5), got %q", got)
	}
	// Columns past the arena stay blank
	if got := runeAt(screen, 40, 5); got != ' ' {
		t.Errorf("Expected nothing past the arena, got %q", got)
	}

	status := rowText(screen, 13, 80)
	if !strings.HasPrefix(status, "frame 0") || !strings.Contains(status, "field distance") {
		t.Errorf("Unexpected status line %q", status)
	}
}

func TestFieldViewUnreachableAndToggle(t *testing.T) {
	f := navigation.NewField(40, 40)
	navigation.RelaxDistance(f, 0, 0, func(x, y int) bool { return x >= 20 })

	screen := newScreen(t, 12, 6)
	view := NewFieldView(screen, navigation.FieldDistance, 10)
	view.Draw(engine.Snapshot{GameOver: true}, f)

	if got := runeAt(screen, 0, 0); got != ' ' {
		t.Errorf("Expected reachable heat cell, got %q", got)
	}
	if got := runeAt(screen, 3, 0); got != '░' {
		t.Errorf("Expected unreachable marker, got %q", got)
	}
	if status := rowText(screen, 5, 12); !strings.HasPrefix(status, "GAME OVER") {
		t.Errorf("Expected truncated game over status, got %q", status)
	}

	view.Toggle()
	if view.Kind() != navigation.FieldThreat {
		t.Errorf("Expected threat after toggle, got %s", view.Kind())
	}
	view.Toggle()
	if view.Kind() != navigation.FieldDistance {
		t.Errorf("Expected distance after second toggle, got %s", view.Kind())
	}
}

func TestHeatColorEndpoints(t *testing.T) {
	if HeatColor(-1) != HeatColor(0) || HeatColor(2) != HeatColor(1) {
		t.Error("Expected HeatColor to clamp its input")
	}
	if HeatColor(0) == HeatColor(1) {
		t.Error("Expected distinct gradient endpoints")
	}
}
