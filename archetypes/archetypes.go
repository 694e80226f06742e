package archetypes

import (
	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Note = newArchetype(
		tags.Note,
		components.Note,
		components.Object,
	)
	Disc = newArchetype(
		tags.Disc,
		components.Sprite,
		components.Spin,
		components.Object,
	)
	Cover = newArchetype(
		tags.Cover,
		components.Sprite,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Input = newArchetype(
		components.Input,
		components.InputText,
	)
	Playback = newArchetype(
		components.Playback,
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
		cfg.LayerBackground,
		append(a.components, cs...)...,
	))
	return e
}
