package animation

import (
	"math"

	"github.com/go-drift/cascade/pkg/graphics"
)

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt32 interpolates between two integers, rounding toward negative
// infinity so a falling value reaches each step at the same progress as a
// rising one.
func LerpInt32(a, b int32, t float64) int32 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return int32(math.Floor(LerpFloat64(float64(a), float64(b), t)))
}

// LerpColor linearly interpolates between two Color values.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	r := uint8(LerpFloat64(float64(a.R()), float64(b.R()), t))
	g := uint8(LerpFloat64(float64(a.G()), float64(b.G()), t))
	b8 := uint8(LerpFloat64(float64(a.B()), float64(b.B()), t))
	alpha := uint8(LerpFloat64(float64(a.A()), float64(b.A()), t))
	return graphics.RGBA8(r, g, b8, alpha)
}
