package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/fieldtd/engine"
	"github.com/lixenwraith/fieldtd/navigation"
)

// FieldView draws a scalar field as a terminal heat map with entities on top
// Each terminal cell samples the arena pixel at its centre, the last row is a status line
type FieldView struct {
	screen tcell.Screen
	kind   navigation.FieldKind
	cellPx int
}

// NewFieldView creates a viewer over screen, cellPx arena pixels per terminal cell
func NewFieldView(screen tcell.Screen, kind navigation.FieldKind, cellPx int) *FieldView {
	return &FieldView{
		screen: screen,
		kind:   kind,
		cellPx: max(cellPx, 1),
	}
}

// Kind returns the field being drawn
func (v *FieldView) Kind() navigation.FieldKind { return v.kind }

// Toggle switches between the distance and threat fields
func (v *FieldView) Toggle() {
	v.kind = (v.kind + 1) % navigation.FieldKindCount
}

// Draw renders one frame from a snapshot and the field it was taken alongside
func (v *FieldView) Draw(snap engine.Snapshot, f *navigation.Field) {
	v.screen.Clear()
	width, height := v.screen.Size()
	if height < 1 {
		return
	}
	rows := height - 1

	v.drawField(f, width, rows)
	v.drawEntities(snap, width, rows)
	v.drawStatus(snap, width, height-1)
	v.screen.Show()
}

func (v *FieldView) drawField(f *navigation.Field, width, rows int) {
	if f == nil {
		return
	}
	lo, hi, ok := f.MinMax()
	span := hi - lo
	unreachable := tcell.StyleDefault.Background(RgbUnreachable).Foreground(RgbBackground)

	for cy := 0; cy < rows; cy++ {
		py := cy*v.cellPx + v.cellPx/2
		if py > f.Height {
			break
		}
		for cx := 0; cx < width; cx++ {
			px := cx*v.cellPx + v.cellPx/2
			if px > f.Width {
				break
			}
			val := f.ValueAt(px, py)
			if !ok || math.IsInf(val, 1) {
				v.screen.SetContent(cx, cy, '░', nil, unreachable)
				continue
			}
			t := 0.0
			if span > 0 {
				t = (val - lo) / span
			}
			v.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(HeatColor(t)))
		}
	}
}

func (v *FieldView) drawEntities(snap engine.Snapshot, width, rows int) {
	for _, e := range snap.Entities {
		cx, cy := e.X/v.cellPx, e.Y/v.cellPx
		if cx >= width || cy >= rows {
			continue
		}
		r, fg := entityGlyph(e)
		_, _, style, _ := v.screen.GetContent(cx, cy)
		v.screen.SetContent(cx, cy, r, nil, style.Foreground(fg).Bold(true))
	}
}

// entityGlyph picks a rune per tower kind or species, towers upper case and monsters lower case
func entityGlyph(e engine.EntityView) (rune, tcell.Color) {
	initial := '?'
	if e.Detail != "" {
		initial = rune(e.Detail[0])
	}
	switch e.Kind {
	case "tower":
		return []rune(strings.ToUpper(string(initial)))[0], RgbTower
	case "monster":
		return initial, RgbMonster
	}
	return '*', RgbProjectile
}

func (v *FieldView) drawStatus(snap engine.Snapshot, width, row int) {
	status := fmt.Sprintf("frame %d  resources %.0f  score %.0f  difficulty %.0f  field %s  recomputes %d",
		snap.Frame, snap.Resources, snap.Score, snap.Difficulty, v.kind, snap.Recomputes)
	if snap.GameOver {
		status = "GAME OVER  " + status
	}
	status = runewidth.Truncate(status, width, "…")

	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	x := 0
	for _, r := range status {
		v.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, row, ' ', nil, style)
	}
}
