package components

import (
	"github.com/automoto/showcase/graph"
	"github.com/yohamta/donburi"
)

// StageData holds the scene graph layers drawn by the renderers
type StageData struct {
	// Background holds one rect per fractal layer, back to front
	Background *graph.Node
	Layers     []*graph.Node
	Julia      []*graph.ShaderFilter
	Dot        *graph.ShaderFilter
	// MaxIterations is the depth the Julia filters were compiled for
	MaxIterations int

	// PageLayer is centered and scaled; the current page root is its child
	PageLayer *graph.Node
	Glow      *graph.ShaderFilter

	Overlay *graph.Node
	Loading *graph.Node

	Hits *graph.HitIndex
}

var Stage = donburi.NewComponentType[StageData]()
