package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/fonts"
	"github.com/automoto/showcase/graph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // captions and labels share the font.Face fonts
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the click targets of the page and prints the
// controller state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	st := stageOf(ecs.World)
	pg := pagesOf(ecs.World)
	vp := viewportOf(ecs.World)
	ptr := pointerOf(ecs.World)
	if st == nil || pg == nil {
		return
	}

	st.PageLayer.Walk(func(n *graph.Node) {
		if !n.Clickable() {
			return
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if n == ptr.Hover {
			c = color.RGBA{255, 255, 0, 255} // Yellow
		}
		x, y, w, h := n.Bounds()
		drawOutline(screen, x, y, w, h, c)
	})

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	current := "-"
	if pg.Attached != nil {
		current = pg.Attached.Key()
	}
	lines := []string{
		fmt.Sprintf("page %s  fade %s %.2f  loading %d  cached %d", current, pg.Fade.Leg(), pg.Fade.Elapsed(), len(pg.Loading), len(pg.Cache)),
		fmt.Sprintf("size %dx%d  scale %.3f  horizontal %v", vp.Size.Width, vp.Size.Height, vp.Metrics.Scale, vp.Metrics.Horizontal),
		fmt.Sprintf("iterations %d  fps %.0f  tps %.0f", st.MaxIterations, ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	face := fonts.Debug.Get()
	for i, l := range lines {
		text.Draw(screen, l, face, 8, 16+i*14, cfg.DebugText)
	}
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
