package pages

import (
	"github.com/automoto/showcase/commands"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/motion"
	"github.com/automoto/showcase/page"
)

const spinCheese = "cheese"

var homeStory = []string{
	"Code on Bleu was founded\nwith one quest in mind...",
	"To create the games\nwe always wanted to play.",
	"We aspire to create\ngames which...",
	"evoke a sense of wonder\nand adventure...",
	"contain mystery\nand secrets galore...",
	"feature deep\ncustomization...",
	"and deceptively\ncomplex mechanics.",
	"Through creativity...",
	"experimentation...",
	"and exploration...",
	"players shall conquer\nimpossible feats...",
	"and discover endless\nreplayability!",
	"Starting with the\nPiece Quest Saga...",
	"an epic adventure is\nabout to unfold!",
}

type home struct {
	cheeseFrame     *graph.Node
	cheese          *graph.Node
	f               *graph.Node
	pieceQuestFrame *graph.Node
	pieceQuest1     *graph.Node
	pieceQuest2     *graph.Node
	spin            *page.Spinner
}

// NewHome creates the studio page: a spinning cheese, the studio story and
// a door to Piece Quest.
func NewHome(rt *page.Runtime) *page.Page {
	h := &home{}
	return page.New(page.Settings{
		Key:      KeyHome,
		Textures: []string{"f", "pieceQuest", "cheese"},
		TMSlogan: true,
		Fractal: page.Fractal{
			MaxIterations: 10,
			Real:          motion.ZeroParam,
		},
		UI: []page.Shortcut{
			{Texture: "scholar", Page: KeyPieceQuest},
		},
		Story: homeStory,
	}, page.Hooks{
		Init:   h.init,
		Layout: h.layout,
		Update: h.update,
	}, rt)
}

func (h *home) init(p *page.Page) error {
	h.cheeseFrame = p.NewContainer("cheeseFrame", p.Frames)
	h.cheese = p.NewSprite("cheese", h.cheeseFrame)
	h.f = p.NewSprite("f", h.cheeseFrame)

	p.AddStory()

	h.pieceQuestFrame = p.NewContainer("pieceQuestFrame", p.Frames)
	p.NewSprite("scholar", h.pieceQuestFrame)
	h.pieceQuest1 = p.NewSprite("pieceQuest", h.pieceQuestFrame)
	h.pieceQuest2 = p.NewSprite("pieceQuest", h.pieceQuestFrame)

	h.spin = p.AddSpinner(spinCheese, page.NewSpinner(cfg.Motion.SpinRate, motion.NewFastImpulse(motion.Additive)))

	p.OnClick(h.pieceQuestFrame, commands.RequestPageLoad{Key: KeyPieceQuest})
	p.OnClick(h.cheeseFrame,
		commands.FlipRotation{Spinner: spinCheese},
		commands.TriggerColorPulse{Index: motion.ColorContent, Amount: cfg.Motion.ColorPulse},
		commands.TriggerAccel{Target: commands.AccelSpinner, Spinner: spinCheese, Amount: 8},
		commands.TriggerAccel{Target: commands.AccelGlow, Amount: 8},
		commands.TriggerAccel{Target: commands.AccelFractal, Amount: 4},
	)
	return nil
}

func (h *home) layout(p *page.Page, f page.Frame) {
	h.f.SetPosition(-140, 30)
	p.Title1.SetScale(0.85)
	p.Title2.SetScale(0.85)
	if f.Horizontal {
		h.pieceQuestFrame.SetScale(0.85)
	} else {
		h.pieceQuestFrame.SetScale(1)
	}
}

func (h *home) update(p *page.Page, dt float64) {
	content := p.Motion().Color(motion.ColorContent)

	p.Title2.Alpha = 1

	h.spin.Advance(dt, 1)
	h.cheese.Tint = content.RGBA(0)
	h.cheese.Rotation = h.spin.Angle
	h.cheese.SetScale(h.spin.Pulse())

	h.pieceQuest1.Tint = content.RGBA(0)
	h.pieceQuest2.Tint = content.RGBA(motion.EchoOffset)
}
