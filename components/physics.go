package components

import (
	"github.com/automoto/dunkball/physics"
	"github.com/automoto/dunkball/sensors"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/yohamta/donburi"
)

// PhysicsData is the scene's single physics singleton: the rigid-body world,
// the hand sensor layer and the id registry they share. A player owns two
// ids, its body and its hand.
type PhysicsData struct {
	World   *physics.World
	Sensors *sensors.Layer
	Entries map[contact.BodyID]*donburi.Entry
	Caps    contact.Capabilities
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Register links a body id to the entity that owns it.
func (p *PhysicsData) Register(id contact.BodyID, e *donburi.Entry, caps contact.Capability) {
	p.Entries[id] = e
	p.Caps[id] = caps
}

// Entry returns the live entity owning id.
func (p *PhysicsData) Entry(id contact.BodyID) (*donburi.Entry, bool) {
	e, ok := p.Entries[id]
	if !ok || !e.Valid() {
		return nil, false
	}
	return e, true
}

// Has makes the registry a contact.CapabilitySet.
func (p *PhysicsData) Has(id contact.BodyID, c contact.Capability) bool {
	if _, ok := p.Entry(id); !ok {
		return false
	}
	return p.Caps.Has(id, c)
}
