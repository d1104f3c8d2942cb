// Package grounding tracks whether a movable body is resting on the ground.
//
// Transitions are pure: they take the current state and an event and return
// the next state plus the impulses the caller must apply to the body.
package grounding

import (
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/team"
)

// State of one body.
type State int

const (
	Airborne State = iota
	OnGround
)

func (s State) String() string {
	if s == OnGround {
		return "on-ground"
	}
	return "airborne"
}

// EventKind selects the transition.
type EventKind int

const (
	// GroundContact is a ground-contact-begin for the body.
	GroundContact EventKind = iota
	// LeaveGround is raised by the jump action.
	LeaveGround
)

// Event carries what a transition needs to know about the body at the moment
// of the event.
type Event struct {
	Kind EventKind
	Body contact.BodyID
	Tilt float64 // signed rotation in radians, 0 is upright
	Side team.Side
}

// Effect is a righting torque impulse to apply to Body.
type Effect struct {
	Body          contact.BodyID
	TorqueImpulse float64
}

// Transition applies ev to s. A grounded body ignores further ground contacts,
// which arrive in bursts when several contact points touch in one landing.
func Transition(s State, ev Event, impulseScale float64) (State, []Effect) {
	switch ev.Kind {
	case LeaveGround:
		return Airborne, nil
	case GroundContact:
		if s == OnGround {
			return s, nil
		}
		return OnGround, []Effect{{
			Body:          ev.Body,
			TorqueImpulse: impulseScale * RightingDirection(ev.Tilt, ev.Side),
		}}
	}
	return s, nil
}

// RightingDirection is the sign of tilt, or the side default when the body is
// exactly upright.
func RightingDirection(tilt float64, side team.Side) float64 {
	switch {
	case tilt > 0:
		return 1
	case tilt < 0:
		return -1
	default:
		return side.Sign()
	}
}

// Pose is the part of a body a ground contact depends on.
type Pose struct {
	Tilt float64
	Side team.Side
}

// Lookup returns the pose of a body that has grounding state, or false for
// bodies that are not tracked (walls, the ball).
type Lookup func(id contact.BodyID) (Pose, bool)

// Events picks the ground-contact-begin events out of a labeled step batch.
// Body-body contacts and contact ends never produce grounding events.
func Events(batch []contact.Labeled, lookup Lookup) []Event {
	var out []Event
	for _, l := range batch {
		if l.Kind != contact.GroundBody || l.Phase != contact.Begin {
			continue
		}
		pose, ok := lookup(l.Second)
		if !ok {
			continue
		}
		out = append(out, Event{Kind: GroundContact, Body: l.Second, Tilt: pose.Tilt, Side: pose.Side})
	}
	return out
}
