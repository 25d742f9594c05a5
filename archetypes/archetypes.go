package archetypes

import (
	"github.com/automoto/badmonkey/components"
	cfg "github.com/automoto/badmonkey/config"
	"github.com/automoto/badmonkey/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Combatant,
		components.Object,
	)
	Goon = newArchetype(
		tags.Enemy,
		tags.Goon,
		components.Combatant,
		components.Object,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Combatant,
		components.Boss,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Encounter = newArchetype(
		components.Encounter,
	)
	Scene = newArchetype(
		components.Scene,
		components.Pause,
	)
	Frame = newArchetype(
		components.Frame,
		components.Events,
	)
	Dialogue = newArchetype(
		components.Dialogue,
	)
	Bot = newArchetype(
		components.Bot,
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
