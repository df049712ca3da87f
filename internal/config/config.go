package config

import "image/color"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Bokeh - Space: Pause/Resume, R: Reset, H: HUD, Esc/Q: Quit"

	// TPS is the host tick rate; one tick is one animation frame.
	TPS = 60

	// FrameRingSize is the number of recent frame deltas kept for the HUD.
	FrameRingSize = 120

	// FadeWindow is how long a particle fades in after birth and out before death, in seconds.
	FadeWindow = 2.0

	// GradientScale is the downsampling factor used when rasterising background gradients.
	GradientScale = 8
)

// Background is the flat colour used for both stops of the background gradient.
var Background = color.RGBA{R: 127, G: 239, B: 189, A: 255}
