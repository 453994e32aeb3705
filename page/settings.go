package page

import (
	"github.com/automoto/showcase/layout"
	"github.com/automoto/showcase/motion"
)

// Base textures every page draws with. The controller loads them at boot.
const (
	TextureArrow = "arrow"
	TextureTM    = "TM"
)

// DefaultMaxIterations is the fractal depth of a page that does not set one.
const DefaultMaxIterations = 10

// Shortcut is a small clickable sprite in the top-left corner that loads
// another page.
type Shortcut struct {
	Texture string
	Page    string
}

// Fractal tunes the background of a page.
type Fractal struct {
	MaxIterations int
	// Real and Imag map fractal time to the Julia constant. Nil keeps the
	// default functions.
	Real motion.ParamFunc
	Imag motion.ParamFunc
}

// Settings is the declarative part of a page.
type Settings struct {
	Key string

	// Title and Slogan are texture keys, "title" and "slogan" when empty.
	Title  string
	Slogan string
	// Textures lists the extra textures the hooks draw with.
	Textures []string

	// TMTitle and TMSlogan add a faint trademark mark beside the title or
	// slogan.
	TMTitle  bool
	TMSlogan bool

	UI    []Shortcut
	Story []string

	Fractal Fractal

	// ReferenceWidth is the natural width portrait layouts are fitted to.
	// Zero selects the width of the home title.
	ReferenceWidth float64
}

func (s *Settings) withDefaults() {
	if s.Title == "" {
		s.Title = "title"
	}
	if s.Slogan == "" {
		s.Slogan = "slogan"
	}
	if s.Fractal.MaxIterations <= 0 {
		s.Fractal.MaxIterations = DefaultMaxIterations
	}
	if s.ReferenceWidth <= 0 {
		s.ReferenceWidth = layout.DefaultReferenceWidth
	}
}

// Frame is the unscaled layout frame handed to layout hooks: the screen and
// its center divided by the base scale.
type Frame struct {
	Width, Height    float64
	CenterX, CenterY float64
	Horizontal       bool
}

func frameOf(m layout.Metrics) Frame {
	w, h, cx, cy := m.Unscaled()
	return Frame{Width: w, Height: h, CenterX: cx, CenterY: cy, Horizontal: m.Horizontal}
}

// Hooks is the behavioral part of a page. Every hook is optional.
type Hooks struct {
	// Init builds page specific nodes after the base nodes exist and before
	// the frame sequencer is reset.
	Init func(p *Page) error
	// Layout runs after the base layout on every relayout.
	Layout func(p *Page, f Frame)
	// Update runs after the base update on every tick.
	Update func(p *Page, dt float64)
}
