package systems

import (
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// getSpace returns the physics singleton, or nil before the court exists.
func getSpace(w donburi.World) *components.PhysicsData {
	entry, ok := components.Physics.First(w)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry)
}

// StepSeconds is the length of one fixed step.
func StepSeconds() float64 {
	if cfg.Physics.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.Physics.TickRate)
}

// HandPosition returns where a player's hand is right now.
func HandPosition(sp *components.PhysicsData, playerEntry *donburi.Entry) dmath.Vec2 {
	body := components.Body.Get(playerEntry).ID
	player := components.Player.Get(playerEntry)
	side := components.Team.Get(playerEntry).Side

	return cfg.Player.Rig().Hand(sp.World.Position(body), sp.World.Angle(body), side, player.ArmSwing)
}
