// Package layout derives the single uniform scale the whole composition is
// drawn at, and coalesces resize events into one relayout.
package layout

const (
	// ReferenceHeight is the design height for landscape viewports.
	ReferenceHeight = 2048.0
	// AspectFactor shrinks portrait content so it fits the width.
	AspectFactor = 0.85
	// DefaultReferenceWidth is the natural width of the home title.
	DefaultReferenceWidth = 2103.0
)

// Metrics is the layout state for one viewport size.
type Metrics struct {
	Width      float64
	Height     float64
	CenterX    float64
	CenterY    float64
	Scale      float64
	Horizontal bool
}

// Compute derives the metrics for a viewport. Dimensions below 1 are
// clamped to 1. A refWidth of 0 or less selects DefaultReferenceWidth.
func Compute(width, height, refWidth float64) Metrics {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if refWidth <= 0 {
		refWidth = DefaultReferenceWidth
	}

	m := Metrics{
		Width:      width,
		Height:     height,
		CenterX:    width / 2,
		CenterY:    height / 2,
		Horizontal: width >= height,
	}
	if m.Horizontal {
		m.Scale = height / ReferenceHeight
	} else {
		m.Scale = AspectFactor * width / refWidth
	}
	return m
}

// Position maps percentages of the half screen to unscaled coordinates
// relative to the screen center.
func (m Metrics) Position(pctX, pctY float64) (x, y float64) {
	return pctX * m.CenterX / m.Scale, pctY * m.CenterY / m.Scale
}

// Unscaled returns the screen size and center in the composition's own
// space, as passed to page layout.
func (m Metrics) Unscaled() (w, h, cx, cy float64) {
	return m.Width / m.Scale, m.Height / m.Scale, m.CenterX / m.Scale, m.CenterY / m.Scale
}

// Pick returns a when the viewport is horizontal and b otherwise.
func (m Metrics) Pick(a, b float64) float64 {
	if m.Horizontal {
		return a
	}
	return b
}
