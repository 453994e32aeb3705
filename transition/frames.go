// Package transition implements the two discrete state machines of the
// front-end: the frame sequencer that swaps sub-views inside a page, and the
// page fade that cross-fades whole pages through an opaque overlay.
package transition

// Frame is one selectable sub-view of a page.
type Frame interface {
	SetVisible(visible bool)
}

// StoryResetter is implemented by frames that cycle their own captions.
// The sequencer rewinds them as soon as they are chosen as the next frame.
type StoryResetter interface {
	ResetStory()
}

const (
	// FrameRate converts accumulated dt into transition progress.
	FrameRate = 0.1
	// FrameSpan is the progress at which a transition completes.
	FrameSpan = 2.0
)

// SequencerState is a snapshot of a FrameSequencer.
type SequencerState struct {
	Animating bool
	Elapsed   float64
	Current   int
	Next      int // -1 unless Animating
}

// FrameSequencer decides which frame of a page is visible. A transition
// shrinks the frame container to zero, swaps the visible frame at the
// midpoint and grows it back.
type FrameSequencer struct {
	frames    []Frame
	animating bool
	elapsed   float64
	current   int
	next      int
	scale     float64
}

// NewFrameSequencer creates a sequencer in Idle(0) with frame 0 visible.
func NewFrameSequencer(frames ...Frame) *FrameSequencer {
	s := &FrameSequencer{}
	s.SetFrames(frames)
	return s
}

// SetFrames replaces the frame list and resets the sequencer.
func (s *FrameSequencer) SetFrames(frames []Frame) {
	s.frames = frames
	s.Reset()
}

// Append adds a frame to the end of the list without resetting.
func (s *FrameSequencer) Append(f Frame) {
	f.SetVisible(len(s.frames) == s.current && !s.animating)
	s.frames = append(s.frames, f)
}

// Len returns the number of frames.
func (s *FrameSequencer) Len() int { return len(s.frames) }

// Reset returns to Idle(0): frame 0 visible, every other frame hidden and
// every story frame rewound.
func (s *FrameSequencer) Reset() {
	s.animating = false
	s.elapsed = 0
	s.current = 0
	s.next = -1
	s.scale = 1
	for i, f := range s.frames {
		f.SetVisible(i == 0)
		if r, ok := f.(StoryResetter); ok {
			r.ResetStory()
		}
	}
}

// Request starts a transition offset frames away from the current one.
// It returns false, changing nothing, when there is at most one frame or a
// transition is already running. Requests are never queued.
func (s *FrameSequencer) Request(offset int) bool {
	n := len(s.frames)
	if s.animating || n <= 1 {
		return false
	}
	next := (s.current + offset) % n
	if next < 0 {
		next += n
	}
	s.animating = true
	s.elapsed = 0
	s.next = next
	s.rewindNext()
	return true
}

func (s *FrameSequencer) rewindNext() {
	if r, ok := s.frames[s.next].(StoryResetter); ok {
		r.ResetStory()
	}
}

// Advance moves a running transition forward by dt and applies frame
// visibility. It returns the container scale for this tick.
func (s *FrameSequencer) Advance(dt float64) float64 {
	if !s.animating {
		return s.scale
	}
	s.elapsed += dt
	f := s.Progress()
	outgoing := f < 1

	s.scale = abs(f - 1)
	s.frames[s.current].SetVisible(outgoing)
	s.frames[s.next].SetVisible(!outgoing)
	s.rewindNext()

	if f == FrameSpan {
		s.animating = false
		s.current = s.next
		s.next = -1
	}
	return s.scale
}

// Progress returns min(2, elapsed*0.1).
func (s *FrameSequencer) Progress() float64 {
	f := s.elapsed * FrameRate
	if f > FrameSpan {
		f = FrameSpan
	}
	return f
}

// ContainerScale returns the scale computed by the last Advance.
func (s *FrameSequencer) ContainerScale() float64 { return s.scale }

// Animating reports whether a transition is running.
func (s *FrameSequencer) Animating() bool { return s.animating }

// Current returns the index of the logically current frame.
func (s *FrameSequencer) Current() int { return s.current }

// State returns a snapshot of the sequencer.
func (s *FrameSequencer) State() SequencerState {
	return SequencerState{
		Animating: s.animating,
		Elapsed:   s.elapsed,
		Current:   s.current,
		Next:      s.next,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
