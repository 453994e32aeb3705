package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/config"
	"github.com/automoto/showcase/fonts"
	"github.com/automoto/showcase/scenes"
	"github.com/automoto/showcase/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(lib *assets.Library, key string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewBootScene(g, lib, key)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout draws at the window size; the showcase scales its own content.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.bounds = image.Rect(0, 0, outsideWidth, outsideHeight)
	if r, ok := g.scene.(scenes.Resizer); ok {
		r.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	key := flag.String("key", "", "page to open (home, piecequest, piecequestawakening)")
	media := flag.String("media", config.Pages.MediaDir, "directory holding the page textures")
	debug := flag.Bool("debug", config.Debug.Overlay, "draw click targets and controller state")
	pause := flag.Bool("pause", config.Debug.PauseEnabled, "let P freeze the animation")
	fullscreen := flag.Bool("fullscreen", config.Window.Fullscreen, "start in fullscreen")
	flag.Parse()

	config.Debug.Overlay = *debug
	config.Debug.PauseEnabled = *pause
	config.Window.Fullscreen = *fullscreen

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and restore the last page
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	start := *key
	if start == "" {
		start = systems.LastPage()
	}
	if start == "" {
		start = config.Pages.Default
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	if config.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(config.Window.Fullscreen)
	ebiten.SetTPS(config.Window.TPS)

	lib := assets.NewLibrary(os.DirFS(*media))
	if err := ebiten.RunGame(NewGame(lib, start)); err != nil {
		log.Fatal(err)
	}
}
