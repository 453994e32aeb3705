package pages

import (
	"github.com/automoto/showcase/commands"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/layout"
	"github.com/automoto/showcase/motion"
	"github.com/automoto/showcase/page"
)

const spinComingSoon = "comingSoon"

var awakeningStory = []string{
	"In a world where\ngame pieces come\nto life...",
	"one must rise\nto the challenge\nof an imminent threat.",
	"Embark on an epic\nadventure to\nsave the world!",
	"Engage in highly\nstrategic gameplay...",
	"relying on your wits\nand creativity\nfor survival.",
	"With abundant\ncharacter classes",
	"and unique\nencounters...",
	"no two games\nare ever the same.",
	"Coming soon!",
	"Genre: RPG,\nTactical,\nRoguelike,\nDeckbuilding",
}

type awakening struct {
	mage            *graph.Node
	duelist         *graph.Node
	comingSoonFrame *graph.Node
	comingSoon1     *graph.Node
	comingSoon2     *graph.Node
	spin            *page.Spinner
}

// NewAwakening creates the Piece Quest: Awakening teaser page.
func NewAwakening(rt *page.Runtime) *page.Page {
	a := &awakening{}
	return page.New(page.Settings{
		Key:      KeyAwakening,
		Title:    "pieceQuest",
		Slogan:   "awakening",
		Textures: []string{"duelist", "mage", "comingSoon"},
		TMTitle:  true,
		Fractal:  page.Fractal{MaxIterations: 10},
		UI: []page.Shortcut{
			{Texture: "cheese", Page: KeyHome},
			{Texture: "scholar", Page: KeyPieceQuest},
		},
		Story: awakeningStory,
	}, page.Hooks{
		Init:   a.init,
		Layout: a.layout,
		Update: a.update,
	}, rt)
}

func (a *awakening) init(p *page.Page) error {
	a.mage = p.NewSprite("mage", nil)
	a.duelist = p.NewSprite("duelist", nil)

	p.AddStory()

	a.comingSoonFrame = p.NewContainer("comingSoonFrame", p.Frames)
	a.comingSoon1 = p.NewSprite("comingSoon", a.comingSoonFrame)
	a.comingSoon2 = p.NewSprite("comingSoon", a.comingSoonFrame)
	a.comingSoon2.Alpha = cfg.Motion.EchoAlpha

	a.spin = p.AddSpinner(spinComingSoon, page.NewSpinner(cfg.Motion.SpinRate, nil))

	p.OnClick(a.comingSoon2,
		commands.FlipRotation{Spinner: spinComingSoon},
		commands.TriggerColorPulse{Index: motion.ColorGlow, Amount: cfg.Motion.ColorPulse},
		commands.TriggerAccel{Target: commands.AccelGlow, Amount: 8},
		commands.TriggerAccel{Target: commands.AccelFractal, Amount: 16},
	)
	return nil
}

// layout flanks the slogan with the two heroes.
func (a *awakening) layout(p *page.Page, f page.Frame) {
	scale := 1.15
	if f.Horizontal {
		scale = 1
	}
	for _, slogan := range []*graph.Node{p.Slogan1, p.Slogan2} {
		slogan.Y -= 50
		p.Arrange(layout.ArrangeOptions{
			Align:   layout.AlignCenter,
			Y:       slogan.Y,
			Spacing: 50,
			Scale:   scale,
		}, []*graph.Node{a.mage, slogan, a.duelist}, 0.49, 0.55, 0.46)
	}
}

func (a *awakening) update(p *page.Page, dt float64) {
	m := p.Motion()
	content := m.Color(motion.ColorContent)

	a.spin.Advance(dt, m.Glow.Multiplier())
	a.comingSoonFrame.SetScale(a.spin.Pulse() * 0.85)
	a.comingSoon1.Tint = content.RGBA(0)
	a.comingSoon2.Tint = content.RGBA(motion.EchoOffset)
}
