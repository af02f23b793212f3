package archetypes

import (
	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Camera,
		components.Input,
		components.Loadout,
		components.Vitals,
		components.Arena,
		components.Match,
		components.KillFeed,
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
