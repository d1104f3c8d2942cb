package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/automoto/dunkball/shared/contact"
)

// recorder collects contact callbacks fired inside B2World.Step. The world is
// locked while they run, so it only appends.
type recorder struct {
	events []contact.Event
}

func (r *recorder) BeginContact(c box2d.B2ContactInterface) {
	r.add(c, contact.Begin)
}

func (r *recorder) EndContact(c box2d.B2ContactInterface) {
	r.add(c, contact.End)
}

func (r *recorder) PreSolve(c box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (r *recorder) PostSolve(c box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}

func (r *recorder) add(c box2d.B2ContactInterface, phase contact.Phase) {
	a, okA := bodyID(c.GetFixtureA())
	b, okB := bodyID(c.GetFixtureB())
	if !okA || !okB {
		return
	}
	r.events = append(r.events, contact.Event{A: a, B: b, Phase: phase})
}

func (r *recorder) drain() []contact.Event {
	out := r.events
	r.events = nil
	return out
}

func bodyID(f *box2d.B2Fixture) (contact.BodyID, bool) {
	if f == nil {
		return contact.None, false
	}
	id, ok := f.GetBody().GetUserData().(contact.BodyID)
	return id, ok
}
