package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/showcase/assets"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/systems"
	"github.com/automoto/showcase/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Resizer is implemented by scenes that lay out to the window size.
type Resizer interface {
	Resize(width, height int)
}

// ShowcaseScene plays the pages.
type ShowcaseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	library      *assets.Library
	key          string
	width        int
	height       int
	once         sync.Once
}

// NewShowcaseScene creates the scene that opens on page key.
func NewShowcaseScene(sc SceneChanger, lib *assets.Library, key string) *ShowcaseScene {
	return &ShowcaseScene{
		sceneChanger: sc,
		library:      lib,
		key:          key,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (ss *ShowcaseScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *ShowcaseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

// Resize hands the window size to the viewport.
func (ss *ShowcaseScene) Resize(width, height int) {
	if ss.ecs == nil {
		ss.width, ss.height = width, height
		return
	}
	systems.Resize(ss.ecs.World, width, height)
}

func (ss *ShowcaseScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	_, err := factory.CreateController(ss.ecs, factory.ControllerOptions{
		Library: ss.library,
		Width:   ss.width,
		Height:  ss.height,
		Visited: systems.SaveVisitedPage,
	})
	if err != nil {
		panic("failed to load shaders: " + err.Error())
	}
	systems.SubscribeCommands(ss.ecs.World)

	ss.ecs.AddSystem(systems.UpdateViewport)
	ss.ecs.AddSystem(systems.UpdateKeys)
	ss.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePointer))
	ss.ecs.AddSystem(systems.ProcessCommands)
	ss.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMotion))
	ss.ecs.AddSystem(systems.UpdatePageLoads)
	ss.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePageFade))
	ss.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePage))
	ss.ecs.AddSystem(systems.UpdateLinkBar)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawStage)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawLinkBar)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawLoading)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	systems.RequestPage(ss.ecs.World, ss.key)
}
