package layout

// Align selects how a row of items is placed relative to its origin.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Item is one element of an arranged row.
type Item struct {
	// Width is the natural width of the element.
	Width float64
	// Scale multiplies the row scale for this element only; 0 means 1.
	Scale float64
}

// ArrangeOptions controls Arrange.
type ArrangeOptions struct {
	Align   Align
	X, Y    float64
	Spacing float64
	Scale   float64
}

// Placement is where Arrange put an item.
type Placement struct {
	X, Y  float64
	Scale float64
}

// Arrange lays items out left to right, each centered on its own slot, with
// opts.Spacing between slots. Left alignment starts the first item at the
// origin, center alignment centers the middle item (or the middle pair) on
// it, and right alignment ends the row there. The whole row is then offset
// by opts.X.
func Arrange(items []Item, opts ArrangeOptions) []Placement {
	rowScale := opts.Scale
	if rowScale == 0 {
		rowScale = 1
	}

	out := make([]Placement, len(items))
	left := 0.0
	for i, it := range items {
		s := it.Scale
		if s == 0 {
			s = 1
		}
		s *= rowScale
		w := it.Width * s

		left += w / 2
		out[i] = Placement{X: left, Y: opts.Y, Scale: s}
		left += w/2 + opts.Spacing
	}

	shift := 0.0
	switch n := len(out); {
	case n == 0:
		return out
	case opts.Align == AlignCenter:
		mid := n / 2
		if n%2 == 1 {
			shift = out[mid].X
		} else {
			shift = (out[mid].X + out[mid-1].X) / 2
		}
	case opts.Align == AlignRight:
		shift = left
	}

	for i := range out {
		out[i].X += opts.X - shift
	}
	return out
}
