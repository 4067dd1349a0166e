package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the field viewer
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbUnreachable = tcell.NewRGBColor(60, 60, 70)    // Cells the seed cannot reach
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbTower       = tcell.NewRGBColor(230, 230, 230)
	RgbMonster     = tcell.NewRGBColor(255, 220, 0)
	RgbProjectile  = tcell.NewRGBColor(255, 120, 120)
)

// Heat gradient endpoints, low values (near the goal) are cool
var (
	heatLow  = colorful.Color{R: 0.11, G: 0.24, B: 0.55}
	heatMid  = colorful.Color{R: 0.20, G: 0.65, B: 0.35}
	heatHigh = colorful.Color{R: 0.85, G: 0.20, B: 0.15}
)

// HeatColor maps t in [0,1] onto the heat gradient, blending in HCL space
func HeatColor(t float64) tcell.Color {
	t = max(0, min(t, 1))
	var c colorful.Color
	if t < 0.5 {
		c = heatLow.BlendHcl(heatMid, t*2)
	} else {
		c = heatMid.BlendHcl(heatHigh, (t-0.5)*2)
	}
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
