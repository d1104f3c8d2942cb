package systems

import (
	"math"

	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/gamemath"
	"github.com/automoto/dunkball/shared/grounding"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateArms raises each arm while grab is held and lowers it otherwise.
func UpdateArms(w donburi.World) {
	arm := cfg.Player.Rig()
	dt := StepSeconds()

	components.Player.Each(w, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		grab := components.Input.Get(playerEntry).Action(cfg.ActionGrab)
		player.ArmSwing = arm.Swing(player.ArmSwing, dt, grab.Pressed)
	})
}

// UpdateUpright pulls every player back toward standing.
func UpdateUpright(w donburi.World) {
	sp := getSpace(w)
	if sp == nil {
		return
	}

	components.Player.Each(w, func(playerEntry *donburi.Entry) {
		body := components.Body.Get(playerEntry).ID
		sp.World.ApplyTorque(body, gamemath.UprightTorque(cfg.Player.UprightStiffness, sp.World.Angle(body)))
	})
}

// UpdateJump launches grounded players that just pressed jump, along their
// own up axis, unless they are tipped too far over.
func UpdateJump(w donburi.World) {
	sp := getSpace(w)
	if sp == nil {
		return
	}

	components.Player.Each(w, func(playerEntry *donburi.Entry) {
		if !components.Input.Get(playerEntry).Action(cfg.ActionJump).JustPressed {
			return
		}

		ground := components.Grounding.Get(playerEntry)
		if ground.State != grounding.OnGround {
			return
		}

		body := components.Body.Get(playerEntry).ID
		angle := sp.World.Angle(body)
		if gamemath.TiltDegrees(angle) > cfg.Player.MaxJumpTilt {
			return
		}

		impulse := dmath.Vec2{
			X: -math.Sin(angle) * cfg.Player.JumpImpulse,
			Y: math.Cos(angle) * cfg.Player.JumpImpulse,
		}
		sp.World.ApplyLinearImpulse(body, impulse)

		ground.State, _ = grounding.Transition(ground.State, grounding.Event{
			Kind: grounding.LeaveGround,
			Body: body,
		}, cfg.Player.TorqueOnCollide)

		zap.S().Debugw("jump",
			"player", components.Player.Get(playerEntry).Index,
			"tilt", gamemath.TiltDegrees(angle),
		)
	})
}
