package systems

import (
	"github.com/automoto/showcase/graph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer tracks the clickable node under the cursor and fires its
// click handler on a left click or a touch.
func UpdatePointer(ecs *ecs.ECS) {
	ptr := pointerOf(ecs.World)
	x, y := ebiten.CursorPosition()
	ptr.X, ptr.Y = float64(x), float64(y)
	ptr.Hover = pick(ecs, x, y)

	if ptr.Hover != nil {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if ptr.Hover != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ptr.Hover.OnClick()
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		Click(ecs, tx, ty)
	}
}

// Click fires the topmost clickable node of the page at (x, y) and reports
// whether one was hit. Clicks are swallowed while the overlay blocks input
// and over the link bar.
func Click(ecs *ecs.ECS, x, y int) bool {
	n := pick(ecs, x, y)
	if n == nil {
		return false
	}
	n.OnClick()
	return true
}

func pick(ecs *ecs.ECS, x, y int) *graph.Node {
	ptr := pointerOf(ecs.World)
	pg := pagesOf(ecs.World)
	ptr.Blocked = inputBlocked(pg)
	if ptr.Blocked || pg.Attached == nil {
		return nil
	}
	if lb := linkBarOf(ecs.World); lb != nil && lb.Bar != nil && lb.Bar.Contains(x, y) {
		return nil
	}

	st := stageOf(ecs.World)
	vp := viewportOf(ecs.World)
	st.Hits.Sync(st.PageLayer, vp.Size.Width, vp.Size.Height)
	return st.Hits.Pick(float64(x), float64(y))
}
