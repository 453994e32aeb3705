package transition

import "math"

// FadeRate is the overlay progress added per unit of dt on each leg.
const FadeRate = 0.025

// Leg is the half of a page fade currently running.
type Leg int

const (
	LegNone Leg = iota
	// LegOut darkens the overlay over the outgoing page.
	LegOut
	// LegIn clears the overlay over the incoming page.
	LegIn
)

func (l Leg) String() string {
	switch l {
	case LegOut:
		return "out"
	case LegIn:
		return "in"
	default:
		return "none"
	}
}

// FadeStep reports what one Advance did.
type FadeStep[P comparable] struct {
	// Swapped is set on the tick the overlay is fully opaque and the
	// content must change from From to To.
	Swapped bool
	From    P
	To      P
	// Finished is set on the tick the overlay clears.
	Finished bool
}

// PageFade cross-fades between pages through an opaque overlay. A fade has
// two legs of 1/FadeRate ticks each; the page swap happens between them.
//
// A request during the out leg retargets the fade without restarting it.
// Retargeting to the current page keeps it on stage and skips the swap.
// A request during the in leg is queued, and later requests replace the
// queued one.
type PageFade[P comparable] struct {
	Rate float64

	current    P
	hasCurrent bool
	target     P
	leg        Leg
	elapsed    float64
	alpha      float64
	queued     P
	hasQueued  bool
}

// NewPageFade creates an empty controller.
func NewPageFade[P comparable]() *PageFade[P] {
	return &PageFade[P]{Rate: FadeRate}
}

// Request asks for page p. On an empty controller p becomes current at once
// and Request returns true; the caller attaches it immediately.
func (f *PageFade[P]) Request(p P) bool {
	if !f.hasCurrent {
		f.current = p
		f.hasCurrent = true
		return true
	}

	switch f.leg {
	case LegOut:
		f.target = p
	case LegIn:
		if p == f.current {
			f.hasQueued = false
			return false
		}
		f.queued = p
		f.hasQueued = true
	default:
		if p == f.current {
			return false
		}
		f.start(p)
	}
	return false
}

func (f *PageFade[P]) start(p P) {
	f.target = p
	f.leg = LegOut
	f.elapsed = 0
	f.alpha = 0
}

// Advance sets the overlay alpha for this tick and moves the fade forward.
func (f *PageFade[P]) Advance(dt float64) FadeStep[P] {
	var step FadeStep[P]
	if f.leg == LegNone {
		f.alpha = 0
		return step
	}

	if f.leg == LegOut {
		f.alpha = f.elapsed
	} else {
		f.alpha = 1 - f.elapsed
	}
	f.elapsed += f.Rate * dt
	if f.elapsed < 1 {
		return step
	}
	f.elapsed = math.Mod(f.elapsed, 1)

	if f.leg == LegOut {
		// retargeted back to the page on stage: nothing to swap
		if f.target != f.current {
			step.Swapped = true
			step.From = f.current
			step.To = f.target
			f.current = f.target
		}
		f.leg = LegIn
		return step
	}

	step.Finished = true
	f.leg = LegNone
	f.alpha = 0
	if f.hasQueued {
		next := f.queued
		f.hasQueued = false
		var zero P
		f.queued = zero
		if next != f.current {
			f.start(next)
		}
	}
	return step
}

// OverlayAlpha returns the overlay opacity set by the last Advance.
func (f *PageFade[P]) OverlayAlpha() float64 { return f.alpha }

// Blocking reports whether input under the overlay must be suppressed.
func (f *PageFade[P]) Blocking() bool { return f.leg != LegNone }

// Fading reports whether a fade is in progress.
func (f *PageFade[P]) Fading() bool { return f.leg != LegNone }

// Leg returns the running leg.
func (f *PageFade[P]) Leg() Leg { return f.leg }

// Elapsed returns progress through the running leg in [0,1).
func (f *PageFade[P]) Elapsed() float64 { return f.elapsed }

// Current returns the page attached to the stage, if any.
func (f *PageFade[P]) Current() (P, bool) { return f.current, f.hasCurrent }

// Pending returns the page the controller is heading to. During the out leg
// that is the fade target; during the in leg it is the queued request.
func (f *PageFade[P]) Pending() (P, bool) {
	switch f.leg {
	case LegOut:
		return f.target, true
	case LegIn:
		return f.queued, f.hasQueued
	}
	var zero P
	return zero, false
}
