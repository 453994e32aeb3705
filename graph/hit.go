package graph

import "github.com/solarlune/resolv"

const (
	hitCellSize  = 32
	tagClickable = "clickable"
)

// HitIndex answers "which clickable node is under the pointer". Sync
// registers the screen bounds of every visible clickable node in a resolv
// space; Pick narrows the broadphase candidates to the topmost hit.
type HitIndex struct {
	space  *resolv.Space
	width  int
	height int
	order  map[*Node]int
	probe  *resolv.Object
}

// NewHitIndex creates an index for a screen of the given size.
func NewHitIndex(width, height int) *HitIndex {
	h := &HitIndex{order: make(map[*Node]int)}
	h.resize(width, height)
	return h
}

func (h *HitIndex) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	h.width, h.height = width, height
	h.space = resolv.NewSpace(width, height, hitCellSize, hitCellSize)
	h.probe = resolv.NewObject(0, 0, 1, 1)
}

// Sync rebuilds the index from the tree rooted at root.
func (h *HitIndex) Sync(root *Node, width, height int) {
	if width != h.width || height != h.height {
		h.resize(width, height)
	} else {
		h.space.Remove(h.space.Objects()...)
	}
	clear(h.order)

	i := 0
	root.Walk(func(n *Node) {
		if !n.Clickable() {
			return
		}
		x, y, w, ht := n.Bounds()
		if w <= 0 || ht <= 0 {
			return
		}
		obj := resolv.NewObject(x, y, w, ht, tagClickable)
		obj.Data = n
		h.space.Add(obj)
		h.order[n] = i
		i++
	})
}

// Len returns the number of registered nodes.
func (h *HitIndex) Len() int { return len(h.order) }

// Pick returns the topmost clickable node containing (x, y), or nil.
func (h *HitIndex) Pick(x, y float64) *Node {
	h.probe.X, h.probe.Y = x, y
	h.space.Add(h.probe)
	defer h.space.Remove(h.probe)

	c := h.probe.Check(0, 0, tagClickable)
	if c == nil {
		return nil
	}

	var top *Node
	best := -1
	for _, obj := range c.ObjectsByTags(tagClickable) {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		n, ok := obj.Data.(*Node)
		if !ok {
			continue
		}
		if o := h.order[n]; o > best {
			best, top = o, n
		}
	}
	return top
}
