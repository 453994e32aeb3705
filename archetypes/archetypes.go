package archetypes

import (
	"github.com/automoto/showcase/components"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Controller is the single entity that owns the showcase state.
	Controller = newArchetype(
		tags.Controller,
		components.Viewport,
		components.Motion,
		components.Pages,
		components.Stage,
		components.Pointer,
		components.Pause,
		components.LinkBar,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
