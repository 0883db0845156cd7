package core

// Color is a linear RGBA color with components in [0, 1]
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Scale multiplies the RGB channels by f and clamps them to [0, 1], alpha is kept
func (c Color) Scale(f float64) Color {
	return Color{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
