package motion

import "math"

// FractalEffect holds the uniform inputs of one Julia-set background layer.
// The shader itself lives with the renderer; this is only its parameter state.
type FractalEffect struct {
	Time          float64
	RealC         float64
	ImagC         float64
	Width         int
	Height        int
	MaxIterations int
}

// FractalParams is the parameter snapshot read by the renderer each tick.
type FractalParams struct {
	RealC float64
	ImagC float64
	Time  float64
}

// ParamFunc maps a layer time to one component of the complex constant c.
type ParamFunc func(t float64) float64

// DefaultReal is sin(t*0.2).
func DefaultReal(t float64) float64 { return math.Sin(t * 0.2) }

// DefaultImag is cos(t*1.3*0.2).
func DefaultImag(t float64) float64 { return math.Cos(t * 1.3 * 0.2) }

// ZeroParam keeps a component pinned at 0.
func ZeroParam(float64) float64 { return 0 }

// FractalLayers drives a stack of parallax fractal layers sharing one clock.
// Layer i runs at layer i-1's time multiplied by Stagger.
type FractalLayers struct {
	Rate    float64
	Stagger float64

	time   float64
	re     ParamFunc
	im     ParamFunc
	layers []*FractalEffect
}

// NewFractalLayers creates n layers starting at startTime.
func NewFractalLayers(n int, startTime, rate, stagger float64) *FractalLayers {
	if n < 1 {
		n = 1
	}
	fl := &FractalLayers{
		Rate:    rate,
		Stagger: stagger,
		time:    startTime,
		re:      DefaultReal,
		im:      DefaultImag,
		layers:  make([]*FractalEffect, n),
	}
	for i := range fl.layers {
		fl.layers[i] = &FractalEffect{MaxIterations: 10}
	}
	fl.cascade()
	return fl
}

// Advance moves the shared clock by Rate*dt*speed and re-derives every layer.
func (fl *FractalLayers) Advance(dt, speed float64) {
	fl.time += fl.Rate * dt * speed
	fl.cascade()
}

func (fl *FractalLayers) cascade() {
	t := fl.time
	for i, l := range fl.layers {
		if i > 0 {
			t *= fl.Stagger
		}
		l.Time = t
		l.RealC = fl.re(t)
		l.ImagC = fl.im(t)
	}
}

// SetFunctions swaps the parameter functions; nil keeps the default.
func (fl *FractalLayers) SetFunctions(re, im ParamFunc) {
	if re == nil {
		re = DefaultReal
	}
	if im == nil {
		im = DefaultImag
	}
	fl.re = re
	fl.im = im
	fl.cascade()
}

// SetMaxIterations sets the iteration depth on every layer.
func (fl *FractalLayers) SetMaxIterations(n int) {
	for _, l := range fl.layers {
		l.MaxIterations = n
	}
}

// SetViewport stores the screen dimensions used for aspect correction.
func (fl *FractalLayers) SetViewport(width, height int) {
	for _, l := range fl.layers {
		l.Width = width
		l.Height = height
	}
}

// Time returns the base clock.
func (fl *FractalLayers) Time() float64 { return fl.time }

// Len returns the number of layers.
func (fl *FractalLayers) Len() int { return len(fl.layers) }

// Layer returns layer i.
func (fl *FractalLayers) Layer(i int) *FractalEffect { return fl.layers[i] }

// Parameters returns the parameter snapshot of layer i.
func (fl *FractalLayers) Parameters(i int) FractalParams {
	l := fl.layers[i]
	return FractalParams{RealC: l.RealC, ImagC: l.ImagC, Time: l.Time}
}

// DotAngle is the rotation of the halftone overlay, derived from the clock.
// The clock runs forward and the angle backward, so the result is in (-Tau, 0].
func (fl *FractalLayers) DotAngle() float64 {
	return math.Mod(fl.time/-20, Tau)
}
