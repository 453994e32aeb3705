// Package graph is a small retained scene graph drawn with Ebiten: nested
// containers, sprites and filled rectangles with per-node transforms, tint,
// alpha, shader filters and click handlers.
package graph

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind identifies what a node draws.
type Kind int

const (
	KindContainer Kind = iota
	KindSprite
	KindRect
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindRect:
		return "rect"
	default:
		return "container"
	}
}

var white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// Node is one element of the scene graph. Position is relative to the
// parent; sprites are anchored on their center by default.
type Node struct {
	Name string
	Kind Kind

	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Alpha    float64
	Visible  bool
	Tint     color.RGBA

	// AnchorX and AnchorY are fractions of the node size placed at (X, Y).
	AnchorX, AnchorY float64

	// Image is the texture of a sprite.
	Image *ebiten.Image
	// Width and Height size a rect; sprites take their size from Image.
	Width, Height float64
	// Fill is the color of a rect before tinting.
	Fill color.RGBA

	// Filters run, in order, over the rendered subtree of this node.
	Filters []Filter

	// OnClick makes the node a pointer target.
	OnClick func()

	parent    *Node
	children  []*Node
	offscreen [2]*ebiten.Image
}

func newNode(name string, kind Kind) *Node {
	return &Node{
		Name:    name,
		Kind:    kind,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
		Tint:    white,
	}
}

// NewContainer creates an empty grouping node.
func NewContainer(name string) *Node {
	return newNode(name, KindContainer)
}

// NewSprite creates a sprite anchored on its center.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := newNode(name, KindSprite)
	n.Image = img
	n.AnchorX, n.AnchorY = 0.5, 0.5
	return n
}

// NewRect creates a filled rectangle anchored on its top-left corner.
func NewRect(name string, w, h float64, fill color.RGBA) *Node {
	n := newNode(name, KindRect)
	n.Width, n.Height = w, h
	n.Fill = fill
	return n
}

// AddChild appends c, detaching it from any previous parent first.
func (n *Node) AddChild(c *Node) *Node {
	if c.parent != nil {
		c.Detach()
	}
	c.parent = n
	n.children = append(n.children, c)
	return c
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Children returns the child list. Callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// SetScale sets a uniform scale, keeping the sign of each axis.
func (n *Node) SetScale(s float64) {
	n.ScaleX = math.Copysign(s, n.ScaleX)
	n.ScaleY = math.Copysign(s, n.ScaleY)
}

// SetPosition sets X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
}

// SetVisible shows or hides the node and its subtree.
func (n *Node) SetVisible(v bool) { n.Visible = v }

// Clickable reports whether the node has a click handler.
func (n *Node) Clickable() bool { return n.OnClick != nil }

// Size returns the unscaled size of what the node draws.
func (n *Node) Size() (w, h float64) {
	switch n.Kind {
	case KindSprite:
		if n.Image == nil {
			return 0, 0
		}
		b := n.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	case KindRect:
		return n.Width, n.Height
	}
	return 0, 0
}

// ScaledSize returns the size after the node's own scale.
func (n *Node) ScaledSize() (w, h float64) {
	w, h = n.Size()
	return w * math.Abs(n.ScaleX), h * math.Abs(n.ScaleY)
}

// LocalTransform maps node-local pixels into the parent's space.
func (n *Node) LocalTransform() ebiten.GeoM {
	var g ebiten.GeoM
	w, h := n.Size()
	g.Translate(-n.AnchorX*w, -n.AnchorY*h)
	g.Scale(n.ScaleX, n.ScaleY)
	if n.Rotation != 0 {
		g.Rotate(n.Rotation)
	}
	g.Translate(n.X, n.Y)
	return g
}

// WorldTransform maps node-local pixels into screen space.
func (n *Node) WorldTransform() ebiten.GeoM {
	g := n.LocalTransform()
	for p := n.parent; p != nil; p = p.parent {
		g.Concat(p.LocalTransform())
	}
	return g
}

// Bounds returns the screen-space axis-aligned box around what the node draws.
func (n *Node) Bounds() (x, y, w, h float64) {
	return boundsOf(n, n.WorldTransform())
}

func boundsOf(n *Node, g ebiten.GeoM) (x, y, w, h float64) {
	sw, sh := n.Size()
	if n.Kind == KindContainer {
		return containerBounds(n, g)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {sw, 0}, {0, sh}, {sw, sh}} {
		px, py := g.Apply(c[0], c[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// containerBounds is the union of the visible children's bounds.
func containerBounds(n *Node, g ebiten.GeoM) (x, y, w, h float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range n.children {
		if !c.Visible {
			continue
		}
		cg := c.LocalTransform()
		cg.Concat(g)
		cx, cy, cw, ch := boundsOf(c, cg)
		if cw == 0 && ch == 0 {
			continue
		}
		minX, maxX = math.Min(minX, cx), math.Max(maxX, cx+cw)
		minY, maxY = math.Min(minY, cy), math.Max(maxY, cy+ch)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX - minX, maxY - minY
}

// Walk visits n and its visible descendants in painter order.
func (n *Node) Walk(fn func(*Node)) {
	if !n.Visible {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
