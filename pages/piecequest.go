package pages

import (
	"math"

	"github.com/automoto/showcase/commands"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/motion"
	"github.com/automoto/showcase/page"
)

const spinScholar = "scholar"

var pieceQuestStory = []string{
	"Enter a universe...",
	"where game pieces\ncome to life!",
	"Experience deep gameplay...",
	"in several iterations\nand formats.",
	"Welcome to the\nPiece Quest Saga!",
	"Whether you enjoy\nJRPGs, TRPGs...",
	"SRPGs, CRPGs,\nARPGs, RTSs...",
	"Roguelikes, Sidescrollers,\nDeckbuilders, Auto-battlers...",
	"or other intriguing\ngame formats...",
	"there will be a\nPiece Quest for you!",
	"Beginning with\nPiece Quest: Awakening...",
	"Join now as the\nadventure unfolds!",
}

type pieceQuest struct {
	cheese         *graph.Node
	duelistLink    *graph.Node
	scholar        *graph.Node
	awakeningFrame *graph.Node
	mage           *graph.Node
	duelist        *graph.Node
	awakening1     *graph.Node
	awakening2     *graph.Node
	spin           *page.Spinner
}

// NewPieceQuest creates the franchise page.
func NewPieceQuest(rt *page.Runtime) *page.Page {
	pq := &pieceQuest{}
	return page.New(page.Settings{
		Key:      KeyPieceQuest,
		Title:    "pieceQuest",
		Slogan:   "epicFranchise",
		Textures: []string{"scholar", "duelist", "mage", "cheese", "awakening"},
		TMTitle:  true,
		TMSlogan: true,
		Fractal:  page.Fractal{MaxIterations: 20},
		Story:    pieceQuestStory,
	}, page.Hooks{
		Init:   pq.init,
		Layout: pq.layout,
		Update: pq.update,
	}, rt)
}

func (pq *pieceQuest) init(p *page.Page) error {
	pq.cheese = p.NewSprite("cheese", nil)
	pq.duelistLink = p.NewSprite("duelist", nil)

	pq.scholar = p.NewSprite("scholar", p.Frames)
	p.AddStory()

	pq.awakeningFrame = p.NewContainer("awakeningFrame", p.Frames)
	pq.mage = p.NewSprite("mage", pq.awakeningFrame)
	pq.duelist = p.NewSprite("duelist", pq.awakeningFrame)
	pq.awakening1 = p.NewSprite("awakening", pq.awakeningFrame)
	pq.awakening2 = p.NewSprite("awakening", pq.awakeningFrame)
	pq.awakening2.Alpha = cfg.Motion.EchoAlpha

	// the scholar breathes with the shared glow impulse
	pq.spin = p.AddSpinner(spinScholar, page.NewSpinner(cfg.Motion.SpinRate, nil))

	p.OnClick(pq.cheese, commands.RequestPageLoad{Key: KeyHome})
	p.OnClick(pq.duelistLink, commands.RequestPageLoad{Key: KeyAwakening})
	p.OnClick(pq.scholar,
		commands.FlipRotation{Spinner: spinScholar},
		commands.TriggerColorPulse{Index: motion.ColorGlow, Amount: cfg.Motion.ColorPulse},
		commands.TriggerAccel{Target: commands.AccelGlow, Amount: 8},
		commands.TriggerAccel{Target: commands.AccelFractal, Amount: 16},
	)
	p.OnClick(pq.awakeningFrame, commands.RequestPageLoad{Key: KeyAwakening})
	return nil
}

func (pq *pieceQuest) layout(p *page.Page, _ page.Frame) {
	p.Position(pq.cheese, -0.94, -0.87, 0.15)
	p.Position(pq.duelistLink, -0.88, -0.87, 0.15)

	pq.awakeningFrame.SetScale(0.75)
	p.Position(pq.mage, -0.5, 0, 0.95)
	p.Position(pq.duelist, 0.5, 0, 0.9)

	pq.awakening1.Y = 100
	pq.awakening2.Y = pq.awakening1.Y
	pq.awakening1.SetScale(0.75)
	pq.awakening2.SetScale(0.75)
}

func (pq *pieceQuest) update(p *page.Page, dt float64) {
	m := p.Motion()
	content := m.Color(motion.ColorContent)

	pq.spin.Advance(dt, m.Glow.Multiplier())
	metrics := p.Metrics()
	aspect := 1.4 * math.Sqrt(metrics.Height/metrics.Width)
	pq.scholar.SetScale(pq.spin.Pulse() * 0.8 * aspect)

	pq.awakening1.Tint = content.RGBA(0)
	pq.awakening2.Tint = content.RGBA(motion.EchoOffset)
}
