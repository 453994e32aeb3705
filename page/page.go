// Package page is the engine shared by every showcase page: it loads a
// page's textures, builds the title, slogan, arrows, shortcuts and frame
// container, lays them out on the golden ratio and animates them from the
// shared colors. Concrete pages add their own nodes through Hooks.
package page

import (
	"context"
	"fmt"
	"log"

	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/commands"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/layout"
	"github.com/automoto/showcase/motion"
	"github.com/automoto/showcase/phi"
	"github.com/automoto/showcase/transition"
	"github.com/hajimehoshi/ebiten/v2"
)

// Runtime is what a page needs from its host.
type Runtime struct {
	Library *assets.Library
	Motion  *motion.Shared
	// Publish queues the commands a click produces.
	Publish func(...commands.Command)
	// Caption renders one story caption to a texture.
	Caption func(line string) *ebiten.Image
}

// Page is one screen of the showcase.
type Page struct {
	Settings Settings
	Hooks    Hooks

	Root       *graph.Node
	Title1     *graph.Node
	Title2     *graph.Node
	Slogan1    *graph.Node
	Slogan2    *graph.Node
	LeftArrow  *graph.Node
	RightArrow *graph.Node
	TMTitle    *graph.Node
	TMSlogan   *graph.Node
	UI         []*graph.Node

	// Frames holds the frames the sequencer switches between.
	Frames    *graph.Node
	Sequencer *transition.FrameSequencer
	Story     *StoryFrame

	rt       *Runtime
	captions []*ebiten.Image
	spinners map[string]*Spinner
	metrics  layout.Metrics
}

// New creates an unloaded page.
func New(s Settings, h Hooks, rt *Runtime) *Page {
	s.withDefaults()
	return &Page{
		Settings:  s,
		Hooks:     h,
		Sequencer: transition.NewFrameSequencer(),
		rt:        rt,
		spinners:  make(map[string]*Spinner),
	}
}

// Key returns the page key.
func (p *Page) Key() string { return p.Settings.Key }

// Motion returns the shared animation state.
func (p *Page) Motion() *motion.Shared { return p.rt.Motion }

// Metrics returns the metrics of the last layout.
func (p *Page) Metrics() layout.Metrics { return p.metrics }

// Built reports whether Build has succeeded.
func (p *Page) Built() bool { return p.Root != nil }

// Textures lists every texture key the page draws with.
func (p *Page) Textures() []string {
	s := p.Settings
	keys := []string{s.Title, s.Slogan, TextureArrow}
	if s.TMTitle || s.TMSlogan {
		keys = append(keys, TextureTM)
	}
	keys = append(keys, s.Textures...)
	for _, sc := range s.UI {
		keys = append(keys, sc.Texture)
	}
	return keys
}

// Load fetches the page textures and renders its story captions. It does
// not touch the scene graph and may run off the main goroutine.
func (p *Page) Load(ctx context.Context) error {
	if err := p.rt.Library.LoadAll(ctx, p.Textures()...); err != nil {
		return fmt.Errorf("load page %q: %w", p.Key(), err)
	}
	if p.captions != nil || len(p.Settings.Story) == 0 || p.rt.Caption == nil {
		return nil
	}
	captions := make([]*ebiten.Image, 0, len(p.Settings.Story))
	for _, line := range p.Settings.Story {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("load page %q: %w", p.Key(), err)
		}
		captions = append(captions, p.rt.Caption(line))
	}
	p.captions = captions
	return nil
}

// Build creates the page nodes from loaded textures and runs the Init hook.
// Building twice is a no-op.
func (p *Page) Build() error {
	if p.Built() {
		return nil
	}
	s := p.Settings
	p.Root = graph.NewContainer(s.Key)
	p.UI = nil
	p.Story = nil

	for _, sc := range s.UI {
		n := p.NewSprite(sc.Texture, nil)
		p.OnClick(n, commands.RequestPageLoad{Key: sc.Page})
		p.UI = append(p.UI, n)
	}

	p.Title1 = p.NewSprite(s.Title, nil)
	p.Title2 = p.NewSprite(s.Title, nil)
	p.Title2.Alpha = cfg.Motion.EchoAlpha
	if s.TMTitle {
		p.TMTitle = p.NewSprite(TextureTM, nil)
		p.TMTitle.Alpha = cfg.Layout.TMAlpha
	}

	p.Slogan1 = p.NewSprite(s.Slogan, nil)
	p.Slogan2 = p.NewSprite(s.Slogan, nil)
	p.Slogan2.Alpha = cfg.Motion.EchoAlpha
	p.LeftArrow = p.NewSprite(TextureArrow, nil)
	p.RightArrow = p.NewSprite(TextureArrow, nil)
	if s.TMSlogan {
		p.TMSlogan = p.NewSprite(TextureTM, nil)
		p.TMSlogan.Alpha = cfg.Layout.TMAlpha
	}

	p.Frames = p.NewContainer("frames", nil)

	if len(p.captions) > 0 {
		p.Story = newStoryFrame(p.captions)
		p.OnClick(p.Story.Node, commands.AdvanceStory{})
	}

	p.OnClick(p.Title2,
		commands.TriggerColorPulse{Index: motion.ColorTitle, Amount: cfg.Motion.ColorPulse},
		commands.TriggerAccel{Target: commands.AccelTitle, Amount: cfg.Motion.Urgency},
		commands.RequestFrameAdvance{Offset: 1},
	)
	p.OnClick(p.Slogan2, p.sloganClick(1)...)
	p.OnClick(p.LeftArrow, p.sloganClick(-1)...)
	p.OnClick(p.RightArrow, p.sloganClick(1)...)

	if p.Hooks.Init != nil {
		if err := p.Hooks.Init(p); err != nil {
			p.Root = nil
			return fmt.Errorf("init page %q: %w", p.Key(), err)
		}
	}

	p.syncFrames()
	return nil
}

func (p *Page) sloganClick(offset int) []commands.Command {
	return []commands.Command{
		commands.TriggerColorPulse{Index: motion.ColorSlogan, Amount: cfg.Motion.ColorPulse},
		commands.TriggerAccel{Target: commands.AccelSlogan, Amount: cfg.Motion.Urgency},
		commands.RequestFrameAdvance{Offset: offset},
	}
}

// syncFrames hands the children of Frames to the sequencer and resets it.
func (p *Page) syncFrames() {
	children := p.Frames.Children()
	frames := make([]transition.Frame, len(children))
	for i, c := range children {
		if p.Story != nil && c == p.Story.Node {
			frames[i] = p.Story
			continue
		}
		frames[i] = c
	}
	p.Sequencer.SetFrames(frames)
}

// Reload prepares a cached page to be shown again: the first frame is
// visible and stories start over.
func (p *Page) Reload() {
	p.Sequencer.Reset()
	if p.Frames != nil {
		p.Frames.SetScale(1)
	}
}

// NewSprite adds a sprite of a loaded texture to parent, or to the page
// root when parent is nil.
func (p *Page) NewSprite(key string, parent *graph.Node) *graph.Node {
	img := p.rt.Library.Get(key)
	if img == nil {
		log.Printf("Warning: page %q draws texture %q that was not loaded", p.Key(), key)
	}
	return p.parent(parent).AddChild(graph.NewSprite(key, img))
}

// NewContainer adds an empty container to parent, or to the page root.
func (p *Page) NewContainer(name string, parent *graph.Node) *graph.Node {
	return p.parent(parent).AddChild(graph.NewContainer(name))
}

func (p *Page) parent(n *graph.Node) *graph.Node {
	if n == nil {
		return p.Root
	}
	return n
}

// AddStory appends the story frame, if the page has one, to Frames.
func (p *Page) AddStory() {
	if p.Story != nil {
		p.Frames.AddChild(p.Story.Node)
	}
}

// OnClick makes n publish cmds when clicked.
func (p *Page) OnClick(n *graph.Node, cmds ...commands.Command) {
	n.OnClick = func() {
		if p.rt.Publish != nil {
			p.rt.Publish(cmds...)
		}
	}
}

// AddSpinner registers a spinner that FlipRotation and spinner accel
// commands can address by name.
func (p *Page) AddSpinner(name string, s *Spinner) *Spinner {
	p.spinners[name] = s
	return s
}

// Spinner returns a registered spinner or nil.
func (p *Page) Spinner(name string) *Spinner { return p.spinners[name] }

// Position places n at a percentage of the half screen from the center and
// sets its scale.
func (p *Page) Position(n *graph.Node, pctX, pctY, scale float64) {
	n.X, n.Y = p.metrics.Position(pctX, pctY)
	n.ScaleX, n.ScaleY = scale, scale
}

// Arrange lays nodes out in a row. scales gives each node's share of the
// row scale; a missing or zero entry means 1.
func (p *Page) Arrange(opts layout.ArrangeOptions, nodes []*graph.Node, scales ...float64) {
	items := make([]layout.Item, len(nodes))
	for i, n := range nodes {
		w, _ := n.Size()
		items[i].Width = w
		if i < len(scales) {
			items[i].Scale = scales[i]
		}
	}
	for i, pl := range layout.Arrange(items, opts) {
		nodes[i].X, nodes[i].Y = pl.X, pl.Y
		nodes[i].ScaleX, nodes[i].ScaleY = pl.Scale, pl.Scale
	}
}

// Apply runs the commands that target the current page. It reports whether
// cmd was one of them.
func (p *Page) Apply(cmd commands.Command) bool {
	switch c := cmd.(type) {
	case commands.RequestFrameAdvance:
		p.Sequencer.Request(c.Offset)
	case commands.AdvanceStory:
		if p.Story != nil {
			p.Story.Story.Next()
		}
	case commands.FlipRotation:
		if s := p.Spinner(c.Spinner); s != nil {
			s.Flip()
		}
	case commands.TriggerAccel:
		if c.Target != commands.AccelSpinner {
			return false
		}
		if s := p.Spinner(c.Spinner); s != nil {
			s.Kick(c.Amount)
		}
	default:
		return false
	}
	return true
}

// LayoutBase positions the base nodes for m and then runs the Layout hook.
func (p *Page) LayoutBase(m layout.Metrics) {
	if !p.Built() {
		return
	}
	p.metrics = m
	f := frameOf(m)

	p.Position(p.Title1, 0, -phi.Conjugate, 1)
	p.Position(p.Title2, 0, -phi.Conjugate, 1)
	p.placeTM(p.TMTitle, p.Title1)

	p.Position(p.Slogan1, 0, phi.Conjugate, 0.75)
	p.Position(p.Slogan2, 0, phi.Conjugate, 0.75)

	if m.Horizontal {
		p.Position(p.RightArrow, phi.Conjugate, 0, 0.5)
		p.Position(p.LeftArrow, -phi.Conjugate, 0, 0.5)
	} else {
		p.Position(p.RightArrow, phi.Conjugate2, 0, 0.75)
		p.Position(p.LeftArrow, -phi.Conjugate2, 0, 0.75)
	}
	p.LeftArrow.ScaleX = -p.LeftArrow.ScaleX
	p.placeTM(p.TMSlogan, p.Slogan1)

	h := m.Horizontal
	p.Arrange(layout.ArrangeOptions{
		Align:   layout.AlignLeft,
		X:       -f.CenterX + cfg.Pick(cfg.Layout.ShortcutOffsetX, h),
		Y:       -f.CenterY + cfg.Pick(cfg.Layout.ShortcutOffsetY, h),
		Spacing: cfg.Layout.ShortcutSpacing,
		Scale:   cfg.Pick(cfg.Layout.ShortcutScale, h),
	}, p.UI)

	if p.Story != nil {
		p.Story.SetScale(cfg.Pick(cfg.Layout.StoryScale, h))
	}

	if p.Hooks.Layout != nil {
		p.Hooks.Layout(p, f)
	}
}

// placeTM puts a trademark mark at the upper right of target.
func (p *Page) placeTM(tm, target *graph.Node) {
	if tm == nil {
		return
	}
	w, h := target.ScaledSize()
	tm.X = target.X + w/2 + cfg.Layout.TMOffset
	tm.Y = target.Y - h*0.4
}

// UpdateBase tints the titles and slogans, runs the frame transition and
// the story, and then the Update hook.
func (p *Page) UpdateBase(dt float64) {
	if !p.Built() {
		return
	}
	m := p.rt.Motion
	title := m.Color(motion.ColorTitle)
	slogan := m.Color(motion.ColorSlogan)

	p.Title1.Tint = title.RGBA(0)
	p.Title2.Tint = title.RGBA(motion.EchoOffset)
	p.Slogan1.Tint = slogan.RGBA(0)
	p.Slogan2.Tint = slogan.RGBA(motion.EchoOffset)

	p.Frames.SetScale(p.Sequencer.Advance(dt))
	if p.Story != nil {
		p.Story.Update(dt, m.Color(motion.ColorContent).RGBA(0))
	}

	if p.Hooks.Update != nil {
		p.Hooks.Update(p, dt)
	}
}
