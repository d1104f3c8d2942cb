package factory

import (
	"github.com/automoto/dunkball/archetypes"
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/physics"
	"github.com/automoto/dunkball/sensors"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Physics.SetValue(space, components.PhysicsData{
		World:   physics.New(cfg.Physics),
		Sensors: sensors.New(cfg.Court),
		Entries: make(map[contact.BodyID]*donburi.Entry),
		Caps:    make(contact.Capabilities),
	})
	return space
}

// space returns the physics singleton, creating it on first use.
func space(w donburi.World) *components.PhysicsData {
	entry, ok := components.Physics.First(w)
	if !ok {
		entry = CreateSpace(w)
	}
	return components.Physics.Get(entry)
}
