package archetypes

import (
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Chicken = newArchetype(
		tags.Chicken,
		components.Walker,
		components.Object,
		components.Animation,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Input = newArchetype(
		components.Input,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Settings = newArchetype(
		components.Settings,
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
