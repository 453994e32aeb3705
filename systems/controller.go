package systems

import (
	"github.com/automoto/showcase/components"
	cfg "github.com/automoto/showcase/config"
	"github.com/yohamta/donburi"
)

// tickDelta is the animation time of one update, in 60 Hz frames.
func tickDelta() float64 {
	if cfg.Window.TPS <= 0 {
		return 1
	}
	return 60 / float64(cfg.Window.TPS)
}

func pagesOf(w donburi.World) *components.PagesData {
	ent, ok := components.Pages.First(w)
	if !ok {
		return nil
	}
	return components.Pages.Get(ent)
}

func stageOf(w donburi.World) *components.StageData {
	ent, ok := components.Stage.First(w)
	if !ok {
		return nil
	}
	return components.Stage.Get(ent)
}

func motionOf(w donburi.World) *components.MotionData {
	ent, ok := components.Motion.First(w)
	if !ok {
		return nil
	}
	return components.Motion.Get(ent)
}

func viewportOf(w donburi.World) *components.ViewportData {
	ent, ok := components.Viewport.First(w)
	if !ok {
		return nil
	}
	return components.Viewport.Get(ent)
}

func pointerOf(w donburi.World) *components.PointerData {
	ent, ok := components.Pointer.First(w)
	if !ok {
		return nil
	}
	return components.Pointer.Get(ent)
}

func linkBarOf(w donburi.World) *components.LinkBarData {
	ent, ok := components.LinkBar.First(w)
	if !ok {
		return nil
	}
	return components.LinkBar.Get(ent)
}

// inputBlocked reports whether the overlay swallows clicks: during a page
// fade and while a page is loading.
func inputBlocked(pg *components.PagesData) bool {
	return pg.Fade.Blocking() || len(pg.Loading) > 0
}
