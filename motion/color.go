package motion

import "image/color"

// RGB24 is a color packed as 0xRRGGBB.
type RGB24 uint32

// RGBA expands the packed value into an opaque color.RGBA.
func (c RGB24) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// PeriodicColor cycles smoothly through RGB space using one oscillator per
// channel. Velocities that are rational multiples of each other keep the
// combined period long.
type PeriodicColor struct {
	R, G, B Oscillator
}

// NewPeriodicColor creates a color with the given channel velocities and
// advances it once by warmup so the generators do not all start in phase.
func NewPeriodicColor(vr, vg, vb, warmup float64) *PeriodicColor {
	c := &PeriodicColor{
		R: Oscillator{Velocity: vr},
		G: Oscillator{Velocity: vg},
		B: Oscillator{Velocity: vb},
	}
	if warmup != 0 {
		c.Advance(warmup)
	}
	return c
}

// Advance moves all three channels forward by dt.
func (c *PeriodicColor) Advance(dt float64) {
	c.R.Advance(dt)
	c.G.Advance(dt)
	c.B.Advance(dt)
}

// Reverse flips the cycling direction of every channel.
func (c *PeriodicColor) Reverse() {
	c.R.Velocity = -c.R.Velocity
	c.G.Velocity = -c.G.Velocity
	c.B.Velocity = -c.B.Velocity
}

// Sample packs the three channels sampled at the given phase offset.
// An echo sprite uses a non-zero offset so it pulses out of sync with the
// sprite it overlays.
func (c *PeriodicColor) Sample(offset float64) RGB24 {
	return RGB24(c.R.Channel(offset))<<16 | RGB24(c.G.Channel(offset))<<8 | RGB24(c.B.Channel(offset))
}

// RGBA is Sample expanded into a color.RGBA.
func (c *PeriodicColor) RGBA(offset float64) color.RGBA {
	return c.Sample(offset).RGBA()
}
