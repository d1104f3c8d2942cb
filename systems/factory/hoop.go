package factory

import (
	"github.com/automoto/dunkball/archetypes"
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateHoop spawns a hoop target and its backboard, which sits on the
// outer side of the hoop.
func CreateHoop(w donburi.World, h cfg.HoopConfig) *donburi.Entry {
	hoop := archetypes.Hoop.Spawn(w)
	components.Hoop.SetValue(hoop, components.HoopData{Position: dmath.Vec2{X: h.X, Y: h.Y}})
	components.Team.SetValue(hoop, components.TeamData{Side: h.Side})

	CreateWall(w, cfg.BoxConfig{
		X:          h.X + h.Side.Sign()*cfg.Court.BackboardOffsetX,
		Y:          h.Y + cfg.Court.BackboardOffsetY,
		HalfWidth:  cfg.Court.BackboardHalfWidth,
		HalfHeight: cfg.Court.BackboardHalfHeight,
	})
	return hoop
}
