package systems

import (
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/gamemath"
	"github.com/automoto/dunkball/shared/grounding"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateGrounding lands players whose body began touching the ground this
// step and gives each fresh landing its righting kick.
func UpdateGrounding(w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	sp := components.Physics.Get(entry)
	contacts := components.Contacts.Get(entry)

	lookup := func(id contact.BodyID) (grounding.Pose, bool) {
		playerEntry, ok := groundedEntry(sp, id)
		if !ok {
			return grounding.Pose{}, false
		}
		return grounding.Pose{
			Tilt: gamemath.WrapAngle(sp.World.Angle(id)),
			Side: components.Team.Get(playerEntry).Side,
		}, true
	}

	for _, ev := range grounding.Events(contacts.Labeled, lookup) {
		playerEntry, _ := groundedEntry(sp, ev.Body)
		ground := components.Grounding.Get(playerEntry)

		next, effects := grounding.Transition(ground.State, ev, cfg.Player.TorqueOnCollide)
		for _, fx := range effects {
			sp.World.ApplyAngularImpulse(fx.Body, fx.TorqueImpulse)
			zap.S().Debugw("landed",
				"player", components.Player.Get(playerEntry).Index,
				"tilt", ev.Tilt,
				"impulse", fx.TorqueImpulse,
			)
		}
		ground.State = next
	}
}

// groundedEntry finds the entity whose main body is id and that tracks
// grounding. Hands and balls are not tracked.
func groundedEntry(sp *components.PhysicsData, id contact.BodyID) (*donburi.Entry, bool) {
	e, ok := sp.Entry(id)
	if !ok || !e.HasComponent(components.Grounding) {
		return nil, false
	}
	if components.Body.Get(e).ID != id {
		return nil, false
	}
	return e, true
}
