package systems

import (
	"github.com/automoto/showcase/graph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground draws the fractal layers.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	if st := stageOf(ecs.World); st != nil {
		graph.Draw(screen, st.Background)
	}
}

// DrawStage draws the attached page with its glow.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	st := stageOf(ecs.World)
	if st == nil || len(st.PageLayer.Children()) == 0 {
		return
	}
	graph.Draw(screen, st.PageLayer)
}

// DrawOverlay draws the fade overlay.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	if st := stageOf(ecs.World); st != nil {
		graph.Draw(screen, st.Overlay)
	}
}

// DrawLoading draws the loading spinner while a page loads.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	if st := stageOf(ecs.World); st != nil {
		graph.Draw(screen, st.Loading)
	}
}
