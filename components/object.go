package components

import (
	"github.com/automoto/dunkball/shared/contact"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its body in the physics world.
type BodyData struct {
	ID contact.BodyID
}

var Body = donburi.NewComponentType[BodyData]()
