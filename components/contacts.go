package components

import (
	"github.com/automoto/dunkball/shared/contact"
	"github.com/yohamta/donburi"
)

// ContactsData holds one step's contact batch. It is filled after the physics
// step and emptied at the end of the same step.
type ContactsData struct {
	Events  []contact.Event
	Labeled []contact.Labeled
}

var Contacts = donburi.NewComponentType[ContactsData]()
