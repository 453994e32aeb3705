package factory

import (
	"sync"

	"github.com/automoto/showcase/archetypes"
	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/commands"
	"github.com/automoto/showcase/components"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/fonts"
	"github.com/automoto/showcase/layout"
	"github.com/automoto/showcase/motion"
	"github.com/automoto/showcase/page"
	"github.com/automoto/showcase/pages"
	"github.com/automoto/showcase/transition"
	"github.com/automoto/showcase/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ControllerOptions configures CreateController.
type ControllerOptions struct {
	Library  *assets.Library
	Registry *pages.Registry
	Width    int
	Height   int

	// Load replaces the goroutine page loader.
	Load func(p *page.Page, done func(error))
	// Visited is told about every page that becomes current.
	Visited func(key string)
}

// CreateController spawns the entity holding the whole showcase state.
func CreateController(ecs *ecs.ECS, opts ControllerOptions) (*donburi.Entry, error) {
	stage, err := CreateStage(opts.Library, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		registry = pages.NewRegistry()
	}

	shared := motion.NewShared(motion.SharedConfig{
		Warmup:         cfg.Motion.ColorWarmup,
		ColorRate:      cfg.Motion.ColorRate,
		FractalLayers:  cfg.Motion.FractalLayers,
		FractalStart:   cfg.Motion.FractalStart,
		FractalRate:    cfg.Motion.FractalRate,
		FractalStagger: cfg.Motion.FractalStagger,
		FractalBoost:   cfg.Motion.FractalBoost,
	})
	publish := commands.Publisher(ecs.World)

	fade := transition.NewPageFade[string]()
	fade.Rate = cfg.Fade.Rate

	debounce := layout.NewDebouncer()
	debounce.Window = cfg.Layout.Debounce

	size := layout.Size{Width: opts.Width, Height: opts.Height}

	controller := archetypes.Controller.Spawn(ecs)
	components.Motion.SetValue(controller, components.MotionData{Shared: shared})
	components.Pages.SetValue(controller, components.PagesData{
		Registry: registry,
		Runtime: &page.Runtime{
			Library: opts.Library,
			Motion:  shared,
			Publish: publish,
			Caption: captionRenderer(),
		},
		Cache:   make(map[string]*page.Page),
		Fade:    fade,
		Loading: make(map[string]bool),
		Results: &components.LoadQueue{},
		Load:    opts.Load,
		Visited: opts.Visited,
	})
	components.Stage.Set(controller, stage)
	components.Viewport.SetValue(controller, components.ViewportData{
		Size:      size,
		Requested: size,
		Debounce:  debounce,
		Dirty:     true,
	})
	components.LinkBar.SetValue(controller, components.LinkBarData{
		Bar: ui.NewLinkBar(publish),
	})

	return controller, nil
}

// captionRenderer draws story captions with the caption font. Pages load
// on their own goroutines and a font face is not safe for concurrent use.
func captionRenderer() func(string) *ebiten.Image {
	if !fonts.Loaded(fonts.Caption) {
		return nil
	}
	var mu sync.Mutex
	face := fonts.Caption.Get()
	return func(line string) *ebiten.Image {
		mu.Lock()
		defer mu.Unlock()
		return assets.RenderCaption(face, line)
	}
}
