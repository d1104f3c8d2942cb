package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ball   = donburi.NewTag().SetName("Ball")
	Ground = donburi.NewTag().SetName("Ground")
	Wall   = donburi.NewTag().SetName("Wall")
	Hoop   = donburi.NewTag().SetName("Hoop")
)

// Resolv tags for the hand sensor layer
const (
	ResolvHand = "hand"
	ResolvBall = "ball"
)
