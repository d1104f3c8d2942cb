package factory

import (
	cfg "github.com/automoto/dunkball/config"
	"github.com/yohamta/donburi"
)

// CreateCourt builds the whole configured court: floor, walls, hoops, players
// and the ball.
func CreateCourt(w donburi.World) {
	CreateSpace(w)

	CreateGround(w, cfg.Court.Ground, cfg.Court.GroundFriction)
	for _, wall := range cfg.Court.Walls {
		CreateWall(w, wall)
	}
	for _, hoop := range cfg.Court.Hoops {
		CreateHoop(w, hoop)
	}
	for i, spawn := range cfg.Player.Spawns {
		CreatePlayer(w, i, spawn)
	}
	CreateBall(w)
}
