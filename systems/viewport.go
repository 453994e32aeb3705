package systems

import (
	"math"
	"time"

	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/components"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/layout"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var now = time.Now

// Resize records the screen size reported by the window. The first size is
// laid out on the next tick; later ones once resizing has settled.
func Resize(w donburi.World, width, height int) {
	vp := viewportOf(w)
	if vp == nil {
		return
	}
	s := layout.Size{Width: width, Height: height}
	if s == vp.Requested {
		return
	}
	vp.Requested = s
	if !vp.LaidOut {
		vp.Size = s
		vp.Dirty = true
		return
	}
	vp.Debounce.Push(s, now())
}

// UpdateViewport applies a settled resize.
func UpdateViewport(ecs *ecs.ECS) {
	vp := viewportOf(ecs.World)
	if s, ok := vp.Debounce.Poll(now()); ok {
		vp.Size = s
		vp.Dirty = true
	}
	if vp.Dirty {
		relayout(ecs.World)
	}
}

// relayout sizes the stage for the current viewport and lays the attached
// page out again.
func relayout(w donburi.World) {
	vp := viewportOf(w)
	pg := pagesOf(w)
	st := stageOf(w)
	m := motionOf(w)

	var refWidth float64
	if pg.Attached != nil {
		refWidth = pg.Attached.Settings.ReferenceWidth
	}
	metrics := layout.Compute(float64(vp.Size.Width), float64(vp.Size.Height), refWidth)
	vp.Metrics = metrics
	vp.Dirty = false
	vp.LaidOut = true

	layoutStage(st, metrics)
	m.Shared.Fractal.SetViewport(vp.Size.Width, vp.Size.Height)

	if pg.Attached != nil {
		pg.Attached.LayoutBase(metrics)
	}
}

func layoutStage(st *components.StageData, m layout.Metrics) {
	// portrait screens get a band of background around the content
	band, top := m.Height, 0.0
	if !m.Horizontal {
		band = m.Height * cfg.Layout.PortraitBand
		top = (m.Height - band) / 2
	}
	for _, l := range st.Layers {
		l.Width, l.Height = m.Width, band
		l.Y = top
	}
	for _, j := range st.Julia {
		j.Set(assets.UniformScreenWidth, m.Width)
		j.Set(assets.UniformScreenHeight, m.Height)
	}
	st.Dot.Set(assets.UniformScale, cfg.Motion.DotScale/math.Sqrt(m.Scale))

	st.PageLayer.SetPosition(m.CenterX, m.CenterY)
	st.PageLayer.SetScale(m.Scale)
	st.Glow.Set(assets.UniformRadius, cfg.Layout.GlowRadius*m.Scale)
	st.Glow.Set(assets.UniformShadow, cfg.Layout.ShadowOffset*m.Scale)

	st.Overlay.Width, st.Overlay.Height = m.Width, m.Height

	st.Loading.SetPosition(m.CenterX, m.CenterY)
	st.Loading.SetScale(m.Scale)
}
