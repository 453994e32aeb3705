// Package motion holds the continuous-time animation primitives: angular
// oscillators, periodic colors, impulse-decay scalars and the fractal
// background parameters. Everything here is advanced explicitly with a frame
// delta and never schedules work on its own.
package motion

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Oscillator is an angle advancing at a constant angular velocity.
// Theta is kept in [0, Tau).
type Oscillator struct {
	Theta    float64
	Velocity float64
}

// Advance moves Theta by Velocity*dt and wraps it.
func (o *Oscillator) Advance(dt float64) {
	o.Theta = WrapAngle(o.Theta + o.Velocity*dt)
}

// Intensity returns (sin(Theta+offset)+1)/2, always in [0, 1].
func (o *Oscillator) Intensity(offset float64) float64 {
	v := (math.Sin(o.Theta+offset) + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Channel maps the intensity to an 8-bit color channel.
func (o *Oscillator) Channel(offset float64) uint8 {
	return uint8(math.Floor(o.Intensity(offset) * 0xFF))
}

// WrapAngle folds any angle into [0, Tau).
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, Tau)
	if theta < 0 {
		theta += Tau
	}
	// math.Mod of a tiny negative value can round back up to Tau.
	if theta >= Tau {
		theta = 0
	}
	return theta
}
