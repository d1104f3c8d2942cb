package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// HoopData is the point a shot aims at.
type HoopData struct {
	Position dmath.Vec2
}

var Hoop = donburi.NewComponentType[HoopData]()
