package systems

import (
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/ballistics"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/possession"
	"github.com/automoto/dunkball/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdatePossession runs the ball's possession rules for the step, in order:
// grabs from this step's hand contacts, then a shot if the holder released,
// then pinning a still-held ball to its holder's hand.
func UpdatePossession(w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	sp := components.Physics.Get(entry)
	touches := possession.Touches(components.Contacts.Get(entry).Labeled)
	targets := collectTargets(w)

	tags.Ball.Each(w, func(ballEntry *donburi.Entry) {
		ball := components.Body.Get(ballEntry).ID
		poss := components.Possession.Get(ballEntry)

		handleGrabs(sp, ball, poss, touches)
		handleShot(sp, ball, poss, targets)
		carryBall(sp, ball, poss)
	})
}

func handleGrabs(sp *components.PhysicsData, ball contact.BodyID, poss *components.PossessionData, touches []possession.Touch) {
	for _, t := range touches {
		if t.Ball != ball {
			continue
		}
		playerEntry, ok := sp.Entry(t.Hand)
		if !ok || !playerEntry.HasComponent(components.Input) {
			continue
		}
		grab := components.Input.Get(playerEntry).Action(cfg.ActionGrab)

		wasHeld := poss.State.Held()
		poss.State = possession.Grab(poss.State, t.Hand, grab.Pressed)
		if !wasHeld && poss.State.Held() {
			sp.World.SetKinematic(ball, true)
			zap.S().Debugw("grab",
				"player", components.Player.Get(playerEntry).Index,
				"side", components.Team.Get(playerEntry).Side,
			)
		}
	}
}

func handleShot(sp *components.PhysicsData, ball contact.BodyID, poss *components.PossessionData, targets []possession.Target) {
	hand, held := poss.State.Holder()
	if !held {
		return
	}

	holderEntry, ok := sp.Entry(hand)
	if !ok {
		// The holder is gone; drop the ball where it is.
		poss.State = possession.Free()
		sp.World.SetKinematic(ball, false)
		return
	}
	if !components.Input.Get(holderEntry).Action(cfg.ActionShoot).JustReleased {
		return
	}

	side := components.Team.Get(holderEntry).Side
	next, shot := possession.Release(poss.State, sp.World.Position(ball), targets, side, shotParams())
	poss.State = next
	sp.World.SetKinematic(ball, false)

	if !shot.Solved {
		zap.S().Debugw("no arc to target",
			"origin", shot.Origin,
			"target", shot.Target,
			"side", side,
		)
		return
	}
	sp.World.SetVelocity(ball, shot.Velocity)
	poss.Shots++
	zap.S().Infow("shot",
		"player", components.Player.Get(holderEntry).Index,
		"side", side,
		"origin", shot.Origin,
		"target", shot.Target,
		"velocity", shot.Velocity,
	)
}

func carryBall(sp *components.PhysicsData, ball contact.BodyID, poss *components.PossessionData) {
	pos, ok := possession.Carry(poss.State, func(hand contact.BodyID) (dmath.Vec2, bool) {
		holderEntry, ok := sp.Entry(hand)
		if !ok {
			return dmath.Vec2{}, false
		}
		return HandPosition(sp, holderEntry), true
	})
	if !ok {
		return
	}
	sp.World.SetPosition(ball, pos)
	sp.Sensors.Move(ball, pos)
}

func collectTargets(w donburi.World) []possession.Target {
	var targets []possession.Target
	tags.Hoop.Each(w, func(hoopEntry *donburi.Entry) {
		targets = append(targets, possession.Target{
			Position: components.Hoop.Get(hoopEntry).Position,
			Side:     components.Team.Get(hoopEntry).Side,
		})
	})
	return targets
}

func shotParams() ballistics.Params {
	return ballistics.Params{
		Gravity:         cfg.Shot.Gravity,
		GravityScale:    cfg.Shot.GravityScale,
		SpeedMultiplier: cfg.Shot.SpeedMultiplier,
	}
}
