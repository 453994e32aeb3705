package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLinkBar runs the link bar widgets.
func UpdateLinkBar(ecs *ecs.ECS) {
	lb := linkBarOf(ecs.World)
	if lb == nil || lb.Bar == nil {
		return
	}
	syncLinkBar(ecs.World)
	lb.Bar.Update(tickDelta())
}

// syncLinkBar disables the buttons while the overlay blocks input.
func syncLinkBar(w donburi.World) {
	lb := linkBarOf(w)
	if lb == nil || lb.Bar == nil {
		return
	}
	lb.Bar.SetEnabled(!inputBlocked(pagesOf(w)))
}

// DrawLinkBar draws the link bar over the page.
func DrawLinkBar(ecs *ecs.ECS, screen *ebiten.Image) {
	lb := linkBarOf(ecs.World)
	if lb == nil || lb.Bar == nil {
		return
	}
	lb.Bar.Draw(screen)
}
