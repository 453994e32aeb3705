package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/errgroup"
)

// ErrMissingTexture is returned when a texture key has no file in the media
// directory.
var ErrMissingTexture = errors.New("missing texture")

// Library loads textures by key from a media directory and caches them.
// Loading a key twice returns the cached image. It is safe for concurrent use.
type Library struct {
	fsys fs.FS

	mu       sync.RWMutex
	textures map[string]*ebiten.Image
}

// NewLibrary creates a library reading <key>.png files from fsys.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:     fsys,
		textures: make(map[string]*ebiten.Image),
	}
}

// Path returns the file name a key is loaded from.
func Path(key string) string {
	return key + ".png"
}

// Load returns the texture for key, reading and decoding it on first use.
func (l *Library) Load(key string) (*ebiten.Image, error) {
	if img := l.Get(key); img != nil {
		return img, nil
	}

	data, err := fs.ReadFile(l.fsys, Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingTexture, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read texture %s: %w", key, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", key, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// another loader may have won the race
	if cached, ok := l.textures[key]; ok {
		return cached, nil
	}
	l.textures[key] = img
	return img, nil
}

// LoadAll loads every key concurrently and returns the first error.
func (l *Library) LoadAll(ctx context.Context, keys ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, key := range keys {
		if l.Has(key) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := l.Load(key)
			return err
		})
	}
	return g.Wait()
}

// Get returns a loaded texture or nil.
func (l *Library) Get(key string) *ebiten.Image {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.textures[key]
}

// Has reports whether key is loaded.
func (l *Library) Has(key string) bool {
	return l.Get(key) != nil
}

// Put stores an image under key, replacing any previous one.
func (l *Library) Put(key string, img *ebiten.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.textures[key] = img
}

// Len returns the number of cached textures.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.textures)
}
