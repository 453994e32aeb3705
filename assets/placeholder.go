package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Placeholder draws a stand-in texture: a filled disc with a darker ring,
// so controller textures still show up when the media directory lacks them.
func Placeholder(size int, c color.RGBA) *ebiten.Image {
	if size < 2 {
		size = 2
	}
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.FillCircle(img, r, r, r, c, true)
	ring := color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
	vector.StrokeCircle(img, r, r, r-float32(size)/16, float32(size)/16, ring, true)
	return img
}

// LoadOrPlaceholder loads key, falling back to a placeholder. The error is
// returned so the caller can log it.
func (l *Library) LoadOrPlaceholder(key string, size int, c color.RGBA) (*ebiten.Image, error) {
	img, err := l.Load(key)
	if err == nil {
		return img, nil
	}
	img = Placeholder(size, c)
	l.Put(key, img)
	return img, err
}
