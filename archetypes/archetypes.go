package archetypes

import (
	"github.com/automoto/dunkball/components"
	"github.com/automoto/dunkball/tags"
	"github.com/yohamta/donburi"
)

var (
	Space = newArchetype(
		components.Physics,
		components.Contacts,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Hoop = newArchetype(
		tags.Hoop,
		components.Hoop,
		components.Team,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Team,
		components.Input,
		components.Grounding,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Body,
		components.Possession,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
