package factory

import (
	"github.com/automoto/dunkball/archetypes"
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/physics"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/possession"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBall spawns a free ball at the configured spot.
func CreateBall(w donburi.World) *donburi.Entry {
	ball := archetypes.Ball.Spawn(w)
	sp := space(w)

	id := sp.World.AddCircle(physics.Dynamic, cfg.Ball.SpawnX, cfg.Ball.SpawnY, cfg.Ball.Radius, physics.Material{
		Density:      cfg.Ball.Density,
		Friction:     cfg.Ball.Friction,
		Restitution:  cfg.Ball.Restitution,
		GravityScale: cfg.Ball.GravityScale,
	})
	sp.Register(id, ball, contact.Ball|contact.Dynamic)
	sp.Sensors.AddBall(id, dmath.Vec2{X: cfg.Ball.SpawnX, Y: cfg.Ball.SpawnY}, cfg.Ball.Radius)

	components.Body.SetValue(ball, components.BodyData{ID: id})
	components.Possession.SetValue(ball, components.PossessionData{State: possession.Free()})
	return ball
}
