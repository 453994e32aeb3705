package scenes

import (
	"image/color"
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/automoto/showcase/assets"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/page"
	"github.com/automoto/showcase/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/sync/errgroup"
)

// BaseTextures are loaded before the first page: the loading spinner and
// the marks every page draws.
var BaseTextures = []string{
	factory.TextureLoading,
	"cheese",
	page.TextureTM,
	page.TextureArrow,
}

// placeholderSize is the edge of a stand-in for a missing base texture.
const placeholderSize = 128

// BootScene loads the base textures off the main goroutine and then hands
// over to the showcase.
type BootScene struct {
	sceneChanger SceneChanger
	library      *assets.Library
	key          string
	once         sync.Once
	done         atomic.Bool
	angle        float64
	size         [2]int
}

// NewBootScene creates the boot scene. key is the page to open with.
func NewBootScene(sc SceneChanger, lib *assets.Library, key string) *BootScene {
	return &BootScene{
		sceneChanger: sc,
		library:      lib,
		key:          key,
		size:         [2]int{cfg.C.Width, cfg.C.Height},
	}
}

func (bs *BootScene) Update() {
	bs.once.Do(bs.start)
	bs.angle = math.Mod(bs.angle+cfg.Motion.SpinnerRate, 2*math.Pi)

	if bs.done.Load() {
		next := NewShowcaseScene(bs.sceneChanger, bs.library, bs.key)
		next.Resize(bs.size[0], bs.size[1])
		bs.sceneChanger.ChangeScene(next)
	}
}

func (bs *BootScene) start() {
	go func() {
		LoadBaseTextures(bs.library)
		bs.done.Store(true)
	}()
}

// LoadBaseTextures loads every base texture, substituting a placeholder
// for the ones that fail.
func LoadBaseTextures(lib *assets.Library) {
	var g errgroup.Group
	g.SetLimit(4)
	for _, key := range BaseTextures {
		g.Go(func() error {
			if _, err := lib.LoadOrPlaceholder(key, placeholderSize, cfg.White); err != nil {
				log.Printf("Warning: Using a placeholder for %s: %v", key, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Resize remembers the window size for the showcase.
func (bs *BootScene) Resize(width, height int) {
	bs.size = [2]int{width, height}
}

func (bs *BootScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// a ring of dots chasing the angle
	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	r := math.Min(cx, cy) * 0.1
	const dots = 8
	for i := range dots {
		a := bs.angle + float64(i)*2*math.Pi/dots
		alpha := uint8(255 * (i + 1) / dots)
		c := color.RGBA{alpha, alpha, alpha, alpha}
		vector.FillCircle(screen, float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)), float32(r*0.15), c, true)
	}
}
