package game

import (
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/bokeh/internal/config"
)

// EaseOutCubic eases from b to b+c as t goes from 0 to d.
func EaseOutCubic(t, b, c, d float64) float64 {
	return float64(ease.OutCubic(float32(t), float32(b), float32(c), float32(d)))
}

// fadeAlpha returns the opacity of a particle that has lived for lived of
// its life seconds. The fade-out check runs first, so it wins whenever the
// two windows overlap (life < 2*FadeWindow).
func fadeAlpha(lived, life float64) float64 {
	switch {
	case lived >= life-config.FadeWindow:
		return EaseOutCubic(lived, 0, life-lived, life) / 2
	case lived <= config.FadeWindow:
		return EaseOutCubic(lived, 0, lived, config.FadeWindow) / 2
	default:
		return 1
	}
}
