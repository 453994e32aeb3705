package motion

import (
	"math"
	"testing"
)

func TestPeriodicColorWarmup(t *testing.T) {
	c := NewPeriodicColor(1, 1.5, 4.0/3, 8)
	if math.Abs(c.R.Theta-WrapAngle(8)) > 1e-9 {
		t.Errorf("R.Theta = %v, want %v", c.R.Theta, WrapAngle(8))
	}
	if math.Abs(c.G.Theta-WrapAngle(12)) > 1e-9 {
		t.Errorf("G.Theta = %v, want %v", c.G.Theta, WrapAngle(12))
	}
}

func TestPeriodicColorSamplePacksChannels(t *testing.T) {
	c := NewPeriodicColor(0, 0, 0, 0)
	c.R.Theta = math.Pi / 2
	c.G.Theta = 3 * math.Pi / 2
	c.B.Theta = math.Pi / 2

	if got := c.Sample(0); got != 0xFF00FF {
		t.Errorf("Sample(0) = %#06x, want 0xff00ff", uint32(got))
	}
	rgba := c.RGBA(0)
	if rgba.R != 0xFF || rgba.G != 0 || rgba.B != 0xFF || rgba.A != 0xFF {
		t.Errorf("RGBA(0) = %+v", rgba)
	}
}

func TestPeriodicColorOffsetIsPhaseShift(t *testing.T) {
	c := NewPeriodicColor(1, 1.5, 4.0/3, 8)
	c.Advance(3.3)

	shifted := c.Sample(math.Pi / 2)

	// Advancing a copy by the same angle per channel must reproduce the echo.
	echo := *c
	echo.R.Theta = WrapAngle(echo.R.Theta + math.Pi/2)
	echo.G.Theta = WrapAngle(echo.G.Theta + math.Pi/2)
	echo.B.Theta = WrapAngle(echo.B.Theta + math.Pi/2)

	if got := echo.Sample(0); got != shifted {
		t.Errorf("echo Sample(0) = %#06x, want %#06x", uint32(got), uint32(shifted))
	}
	if c.Sample(0) == shifted {
		t.Error("offset sample should differ from the base sample")
	}
}

func TestPeriodicColorReverse(t *testing.T) {
	c := NewPeriodicColor(1, 1.5, 4.0/3, 0)
	c.Advance(2)
	c.Reverse()
	c.Advance(2)
	for name, o := range map[string]Oscillator{"r": c.R, "g": c.G, "b": c.B} {
		if math.Abs(o.Theta) > 1e-9 && math.Abs(o.Theta-Tau) > 1e-9 {
			t.Errorf("%s.Theta = %v, want back at 0", name, o.Theta)
		}
	}
}

func TestPeriodicColorZeroDelta(t *testing.T) {
	c := NewPeriodicColor(1, 1.5, 4.0/3, 8)
	before := c.Sample(0)
	c.Advance(0)
	if got := c.Sample(0); got != before {
		t.Errorf("Sample after Advance(0) = %#06x, want %#06x", uint32(got), uint32(before))
	}
}
