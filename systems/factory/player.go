package factory

import (
	"github.com/automoto/dunkball/archetypes"
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/physics"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/grounding"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns an upright, airborne player with its arm hanging down
// and a hand sensor at the end of it.
func CreatePlayer(w donburi.World, index int, spawn cfg.SpawnConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	sp := space(w)

	id := sp.World.AddBox(physics.Dynamic, spawn.X, spawn.Y, cfg.Player.HalfWidth, cfg.Player.HalfHeight, physics.Material{
		Density:        cfg.Player.Density,
		Friction:       cfg.Player.Friction,
		Restitution:    cfg.Player.Restitution,
		LinearDamping:  cfg.Player.LinearDamping,
		AngularDamping: cfg.Player.AngularDamping,
		GravityScale:   cfg.Player.GravityScale,
	})
	sp.Register(id, player, contact.Dynamic)
	components.Body.SetValue(player, components.BodyData{ID: id})
	components.Team.SetValue(player, components.TeamData{Side: spawn.Side})
	components.Grounding.SetValue(player, components.GroundingData{State: grounding.Airborne})

	hand := sp.World.Reserve()
	at := cfg.Player.Rig().Hand(dmath.Vec2{X: spawn.X, Y: spawn.Y}, 0, spawn.Side, cfg.Player.MinArmSwing)
	sp.Sensors.AddHand(hand, at, cfg.Player.HandRadius)
	sp.Register(hand, player, contact.Hand)

	components.Player.SetValue(player, components.PlayerData{
		Index:    index,
		Hand:     hand,
		ArmSwing: cfg.Player.MinArmSwing,
	})
	return player
}
