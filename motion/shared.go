package motion

import "math"

// Indices of the shared colors.
const (
	ColorTitle = iota
	ColorGlow
	ColorSlogan
	ColorContent
	NumColors
)

// EchoOffset is the phase shift between a sprite and its echo overlay.
const EchoOffset = math.Pi / 2

// ColorPresets are the channel velocities of the shared colors.
var ColorPresets = [NumColors][3]float64{
	{1, 1.5, 4.0 / 3},
	{1.5, 4.0 / 3, 1},
	{4.0 / 3, 1, 1.5},
	{9.0 / 7, 13.0 / 9, 139.0 / 126},
}

// SharedConfig tunes NewShared.
type SharedConfig struct {
	Warmup         float64
	ColorRate      float64
	FractalLayers  int
	FractalStart   float64
	FractalRate    float64
	FractalStagger float64
	FractalBoost   float64
}

// DefaultSharedConfig matches the look of the site.
var DefaultSharedConfig = SharedConfig{
	Warmup:         8,
	ColorRate:      0.01,
	FractalLayers:  3,
	FractalStart:   40,
	FractalRate:    0.04,
	FractalStagger: 1.3,
	FractalBoost:   1,
}

// Shared is the animation state every page draws from: four cycling colors,
// the impulses that speed them up, and the fractal background clock.
type Shared struct {
	Colors [NumColors]*PeriodicColor

	Title  *Impulse
	Glow   *Impulse
	Slogan *Impulse
	Julia  *Impulse

	Fractal *FractalLayers

	colorRate float64
}

// NewShared builds the shared state from cfg.
func NewShared(cfg SharedConfig) *Shared {
	s := &Shared{
		Title:     NewSlowImpulse(Set),
		Glow:      NewFastImpulse(Additive),
		Slogan:    NewSlowImpulse(Set),
		Julia:     NewSlowImpulse(Additive),
		Fractal:   NewFractalLayers(cfg.FractalLayers, cfg.FractalStart, cfg.FractalRate, cfg.FractalStagger),
		colorRate: cfg.ColorRate,
	}
	for i, p := range ColorPresets {
		s.Colors[i] = NewPeriodicColor(p[0], p[1], p[2], cfg.Warmup)
	}
	// the background starts out fast and settles
	s.Julia.Trigger(cfg.FractalBoost)
	return s
}

// Color returns shared color i.
func (s *Shared) Color(i int) *PeriodicColor { return s.Colors[i] }

// Advance moves every shared animation forward by dt. Rates are taken
// before the impulses decay, so a trigger is felt on the very next tick.
func (s *Shared) Advance(dt float64) {
	step := dt * s.colorRate
	s.Colors[ColorTitle].Advance(step * s.Title.Multiplier())
	s.Colors[ColorGlow].Advance(step * s.Glow.Multiplier())
	s.Colors[ColorSlogan].Advance(step * s.Slogan.Multiplier())
	s.Colors[ColorContent].Advance(step)

	s.Title.Advance(dt)
	s.Glow.Advance(dt)
	s.Slogan.Advance(dt)

	s.Fractal.Advance(dt, s.Julia.Multiplier())
	s.Julia.Advance(dt)
}
