package components

import (
	"github.com/automoto/showcase/graph"
	"github.com/yohamta/donburi"
)

// PointerData is the pointer state of the current tick
type PointerData struct {
	X, Y float64
	// Hover is the clickable node under the pointer, if any
	Hover *graph.Node
	// Blocked is true while the overlay swallows clicks
	Blocked bool
}

var Pointer = donburi.NewComponentType[PointerData]()
