package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/byrax15/snake-gl/core"
)

// ToTcell converts a linear [0,1] color to a terminal true color, alpha is ignored
func ToTcell(c core.Color) tcell.Color {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim blends c toward black by factor in [0,1], used for the paused field
func Dim(c core.Color, factor float64) core.Color {
	src := colorful.Color{R: c.R, G: c.G, B: c.B}
	out := src.BlendRgb(colorful.Color{}, factor).Clamped()
	return core.Color{R: out.R, G: out.G, B: out.B, A: c.A}
}
