package page

import (
	"math"

	"github.com/automoto/showcase/motion"
)

// Spinner is a page-local angle that turns with dt. Clicks flip its
// direction and kick its impulse.
type Spinner struct {
	Angle     float64
	Direction float64
	Rate      float64
	// Accel is the spinner's own impulse. Spinners without one take their
	// speed from a shared impulse passed to Advance.
	Accel *motion.Impulse
}

// NewSpinner creates a spinner turning forward at rate per unit of dt.
func NewSpinner(rate float64, accel *motion.Impulse) *Spinner {
	return &Spinner{Direction: 1, Rate: rate, Accel: accel}
}

// Flip reverses the direction of rotation.
func (s *Spinner) Flip() {
	s.Direction = -s.Direction
}

// Kick feeds the spinner's own impulse, if any.
func (s *Spinner) Kick(amount float64) {
	if s.Accel != nil {
		s.Accel.Trigger(amount)
	}
}

// Advance turns the spinner. multiplier is used only when the spinner has
// no impulse of its own; its own impulse decays after the step.
func (s *Spinner) Advance(dt, multiplier float64) {
	if s.Accel != nil {
		multiplier = s.Accel.Multiplier()
	}
	s.Angle += s.Rate * dt * s.Direction * multiplier
	if s.Accel != nil {
		s.Accel.Advance(dt)
	}
}

// Pulse maps the angle to a breathing scale in [0.5, 1].
func (s *Spinner) Pulse() float64 {
	return (math.Cos(s.Angle)+1)/4 + 0.5
}
