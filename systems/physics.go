package systems

import (
	"github.com/automoto/dunkball/components"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics steps the rigid-body world, moves the hand and ball sensors to
// where their owners ended up, and stores the contacts of both as this step's
// batch.
func UpdatePhysics(w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	sp := components.Physics.Get(entry)
	contacts := components.Contacts.Get(entry)

	events := sp.World.Step(StepSeconds())

	components.Player.Each(w, func(playerEntry *donburi.Entry) {
		hand := components.Player.Get(playerEntry).Hand
		sp.Sensors.Move(hand, HandPosition(sp, playerEntry))
	})
	tags.Ball.Each(w, func(ballEntry *donburi.Entry) {
		ball := components.Body.Get(ballEntry).ID
		sp.Sensors.Move(ball, sp.World.Position(ball))
	})

	contacts.Events = append(events, sp.Sensors.Step()...)
}

// UpdateContacts labels the step's batch by contact rule.
func UpdateContacts(w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	sp := components.Physics.Get(entry)
	contacts := components.Contacts.Get(entry)

	contacts.Labeled = contact.LabelAll(contacts.Events, sp)
}

// ClearContacts drops the batch. Contacts never outlive their step.
func ClearContacts(w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	contacts.Events = nil
	contacts.Labeled = nil
}
