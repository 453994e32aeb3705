package systems

import (
	"log"

	"github.com/automoto/showcase/assets"
	cfg "github.com/automoto/showcase/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePageFade runs the page cross-fade, swapping pages when the overlay
// is opaque, and sets the overlay and spinner for this tick.
func UpdatePageFade(ecs *ecs.ECS) {
	pg := pagesOf(ecs.World)
	st := stageOf(ecs.World)

	step := pg.Fade.Advance(tickDelta())
	if step.Swapped {
		attachPage(ecs.World, step.To)
	}

	alpha := pg.Fade.OverlayAlpha()
	loading := len(pg.Loading) > 0
	if loading && alpha < cfg.Fade.LoadingAlpha {
		alpha = cfg.Fade.LoadingAlpha
	}
	st.Overlay.Alpha = alpha
	st.Loading.Visible = loading
}

// attachPage puts the cached page for key on stage in place of the
// current one, restarts it and tunes the background for it.
func attachPage(w donburi.World, key string) {
	pg := pagesOf(w)
	st := stageOf(w)
	m := motionOf(w)

	p := pg.Cache[key]
	if p == nil {
		log.Printf("Warning: [pages] no built page for %s", key)
		return
	}
	if pg.Attached != nil && pg.Attached.Root != nil {
		pg.Attached.Root.Detach()
	}
	st.PageLayer.AddChild(p.Root)
	p.Reload()
	pg.Attached = p

	fr := p.Settings.Fractal
	m.Shared.Fractal.SetFunctions(fr.Real, fr.Imag)
	m.Shared.Fractal.SetMaxIterations(fr.MaxIterations)
	if fr.MaxIterations != st.MaxIterations {
		shader, err := assets.JuliaShader(fr.MaxIterations)
		if err != nil {
			log.Printf("Warning: [pages] keeping %d fractal iterations: %v", st.MaxIterations, err)
		} else {
			for _, j := range st.Julia {
				j.Shader = shader
			}
			st.MaxIterations = fr.MaxIterations
		}
	}

	relayout(w)

	if lb := linkBarOf(w); lb != nil && lb.Bar != nil {
		lb.Bar.Show()
	}
	if pg.Visited != nil {
		pg.Visited(key)
	}
	log.Printf("[pages] showing %s", key)
}

// UpdatePage animates the attached page.
func UpdatePage(ecs *ecs.ECS) {
	pg := pagesOf(ecs.World)
	if pg.Attached != nil {
		pg.Attached.UpdateBase(tickDelta())
	}
}
