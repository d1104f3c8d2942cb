package factory

import (
	"github.com/automoto/dunkball/archetypes"
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/physics"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/yohamta/donburi"
)

// CreateGround spawns the floor. Only bodies touching it count as landed.
func CreateGround(w donburi.World, box cfg.BoxConfig, friction float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)
	createStatic(w, ground, box, friction, contact.Ground)
	return ground
}

// CreateWall spawns a solid box that takes part in no contact rule.
func CreateWall(w donburi.World, box cfg.BoxConfig) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	createStatic(w, wall, box, 0, 0)
	return wall
}

func createStatic(w donburi.World, e *donburi.Entry, box cfg.BoxConfig, friction float64, caps contact.Capability) {
	sp := space(w)
	id := sp.World.AddBox(physics.Static, box.X, box.Y, box.HalfWidth, box.HalfHeight, physics.Material{
		Friction: friction,
	})
	sp.Register(id, e, caps)
	components.Body.SetValue(e, components.BodyData{ID: id})
}
