package transition

import (
	"math"

	"github.com/automoto/showcase/phi"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// StoryRate converts dt into story time.
	StoryRate = 0.01
	// StoryFrameTime is how long one caption stays up, in story time.
	StoryFrameTime = 3.0
)

// fade-in and fade-out each take this share of a caption's lifetime
var fadeShare = 1 - phi.Conjugate2

// Story cycles through n captions, fading each one in and out.
// The caller advances it only while its frame is visible.
type Story struct {
	Rate      float64
	FrameTime float64

	n       int
	index   int
	elapsed float64
	fadeIn  *gween.Tween
	fadeOut *gween.Tween
}

// NewStory creates a story over n captions.
func NewStory(n int) *Story {
	return &Story{
		Rate:      StoryRate,
		FrameTime: StoryFrameTime,
		n:         n,
		fadeIn:    gween.New(0, 1, float32(fadeShare), ease.Linear),
		fadeOut:   gween.New(1, 0, float32(fadeShare), ease.Linear),
	}
}

// Len returns the number of captions.
func (s *Story) Len() int { return s.n }

// Index returns the caption currently shown.
func (s *Story) Index() int { return s.index }

// Elapsed returns story time spent on the current caption.
func (s *Story) Elapsed() float64 { return s.elapsed }

// ResetStory rewinds to the first caption.
func (s *Story) ResetStory() {
	s.index = 0
	s.elapsed = 0
}

// Next skips to the following caption and restarts its fade.
func (s *Story) Next() {
	if s.n == 0 {
		return
	}
	s.index = (s.index + 1) % s.n
	s.elapsed = 0
}

// Advance moves story time forward, wrapping to the next caption when the
// current one has run its course.
func (s *Story) Advance(dt float64) {
	if s.n == 0 {
		return
	}
	s.elapsed += dt * s.Rate
	if s.elapsed >= s.FrameTime {
		s.elapsed = math.Mod(s.elapsed, s.FrameTime)
		s.index = (s.index + 1) % s.n
	}
}

// Alpha returns the caption opacity: a linear fade in over the first part
// of its lifetime, full opacity, then a linear fade out.
func (s *Story) Alpha() float64 {
	f := s.elapsed / s.FrameTime
	var tw *gween.Tween
	switch {
	case f < fadeShare:
		tw = s.fadeIn
	case f > phi.Conjugate2:
		tw = s.fadeOut
		f -= phi.Conjugate2
	default:
		return 1
	}
	tw.Reset()
	v, _ := tw.Update(float32(f))
	return float64(v)
}
