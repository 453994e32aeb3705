package page

import (
	"image/color"

	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/transition"
	"github.com/hajimehoshi/ebiten/v2"
)

// StoryFrame is a frame that shows one caption at a time, fading each in
// and out. Clicking it skips to the next caption.
type StoryFrame struct {
	*graph.Node
	Story *transition.Story

	captions []*graph.Node
}

func newStoryFrame(images []*ebiten.Image) *StoryFrame {
	s := &StoryFrame{
		Node:  graph.NewContainer("story"),
		Story: transition.NewStory(len(images)),
	}
	s.Story.Rate = cfg.Story.Rate
	s.Story.FrameTime = cfg.Story.FrameTime
	for _, img := range images {
		c := s.AddChild(graph.NewSprite("caption", img))
		c.Visible = false
		s.captions = append(s.captions, c)
	}
	return s
}

// ResetStory rewinds to the first caption.
func (s *StoryFrame) ResetStory() {
	s.Story.ResetStory()
}

// Captions returns the caption sprites.
func (s *StoryFrame) Captions() []*graph.Node { return s.captions }

// Update advances the story and shows the current caption with the
// envelope alpha and tint. Hidden frames do not advance.
func (s *StoryFrame) Update(dt float64, tint color.RGBA) {
	if !s.Visible || len(s.captions) == 0 {
		return
	}
	s.Story.Advance(dt)
	cur := s.Story.Index()
	for i, c := range s.captions {
		c.Visible = i == cur
	}
	c := s.captions[cur]
	c.Alpha = s.Story.Alpha()
	c.Tint = tint
}
