package game

import "math"

// Particle is a single glowing dot. It has no behaviour of its own; the
// owning Emitter advances Lived and sets Dead.
type Particle struct {
	X, Y   float64 // position in canvas pixels
	VX, VY float64 // velocity in pixels per second
	Size   float64 // radius in pixels
	Life   float64 // seconds to live
	Lived  float64 // seconds since creation
	Dead   bool
}

// NewParticle creates a particle moving at speed along angle degrees,
// measured counter-clockwise with y growing downward on screen.
func NewParticle(x, y, angle, speed, life, size float64) Particle {
	rad := angle * math.Pi / 180
	return Particle{
		X:    x,
		Y:    y,
		VX:   math.Cos(rad) * speed,
		VY:   -math.Sin(rad) * speed,
		Size: size,
		Life: life,
	}
}
