package factory

import (
	"fmt"

	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/components"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/page"
)

// TextureLoading is the spinner shown while a page loads.
const TextureLoading = "loading"

// CreateStage builds the scene graph layers the renderers draw: the
// fractal background rects, the page layer, the fade overlay and the
// loading spinner. Sizes are set again by the first layout.
func CreateStage(lib *assets.Library, width, height int) (*components.StageData, error) {
	julia, err := assets.JuliaShader(page.DefaultMaxIterations)
	if err != nil {
		return nil, err
	}
	dot, err := assets.DotShader()
	if err != nil {
		return nil, err
	}
	glow, err := assets.GlowShader()
	if err != nil {
		return nil, err
	}

	w, h := float64(width), float64(height)
	st := &components.StageData{
		Background:    graph.NewContainer("background"),
		Dot:           graph.NewShaderFilter("dot", dot),
		MaxIterations: page.DefaultMaxIterations,
		Glow:          graph.NewShaderFilter("glow", glow),
		Hits:          graph.NewHitIndex(width, height),
	}

	n := cfg.Motion.FractalLayers
	st.Layers = make([]*graph.Node, n)
	st.Julia = make([]*graph.ShaderFilter, n)
	for i := range n {
		st.Julia[i] = graph.NewShaderFilter(fmt.Sprintf("julia%d", i+1), julia)
		st.Layers[i] = graph.NewRect(fmt.Sprintf("layer%d", i+1), w, h, cfg.Background)
		st.Layers[i].Filters = []graph.Filter{st.Julia[i], st.Dot}
	}
	// the first layer is drawn on top
	for i := n - 1; i >= 0; i-- {
		st.Background.AddChild(st.Layers[i])
	}

	st.PageLayer = graph.NewContainer("pages")
	st.PageLayer.Filters = []graph.Filter{st.Glow}

	st.Overlay = graph.NewRect("overlay", w, h, cfg.Fade.OverlayColor)
	st.Overlay.Alpha = 0

	img := lib.Get(TextureLoading)
	if img == nil {
		img = assets.Placeholder(128, cfg.White)
	}
	st.Loading = graph.NewSprite(TextureLoading, img)
	st.Loading.Visible = false

	return st, nil
}
