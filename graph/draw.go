package graph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// Draw renders the tree rooted at n onto dst in painter order.
func Draw(dst *ebiten.Image, n *Node) {
	var parent ebiten.GeoM
	if n.parent != nil {
		parent = n.parent.WorldTransform()
	}
	drawNode(dst, n, parent, inheritedAlpha(n.parent))
}

func inheritedAlpha(p *Node) float64 {
	a := 1.0
	for ; p != nil; p = p.parent {
		a *= p.Alpha
	}
	return a
}

func drawNode(dst *ebiten.Image, n *Node, parent ebiten.GeoM, alpha float64) {
	if !n.Visible {
		return
	}
	alpha *= n.Alpha
	if alpha <= 0 {
		return
	}

	g := n.LocalTransform()
	g.Concat(parent)

	if len(n.Filters) > 0 {
		drawFiltered(dst, n, g, alpha)
		return
	}
	drawSelf(dst, n, g, alpha)
	for _, c := range n.children {
		drawNode(dst, c, g, alpha)
	}
}

// drawFiltered renders the subtree at full opacity into a screen-sized
// buffer, runs the filter chain over it and composites the result.
func drawFiltered(dst *ebiten.Image, n *Node, g ebiten.GeoM, alpha float64) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for i := range n.offscreen {
		img := n.offscreen[i]
		if img == nil || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			if img != nil {
				img.Deallocate()
			}
			n.offscreen[i] = ebiten.NewImage(w, h)
		} else {
			img.Clear()
		}
	}

	src := n.offscreen[0]
	drawSelf(src, n, g, 1)
	for _, c := range n.children {
		drawNode(src, c, g, 1)
	}

	result := applyFilters(n.Filters, src, n.offscreen[1])

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(result, op)
}

func drawSelf(dst *ebiten.Image, n *Node, g ebiten.GeoM, alpha float64) {
	var img *ebiten.Image
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	switch n.Kind {
	case KindSprite:
		img = n.Image
	case KindRect:
		img = whitePixel()
		op.GeoM.Scale(n.Width, n.Height)
		op.ColorScale.ScaleWithColor(n.Fill)
	}
	if img == nil {
		return
	}

	op.GeoM.Concat(g)
	op.ColorScale.ScaleWithColor(n.Tint)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}
