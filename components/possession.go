package components

import (
	"github.com/automoto/dunkball/shared/possession"
	"github.com/yohamta/donburi"
)

// PossessionData lives on the ball.
type PossessionData struct {
	State possession.State
	Shots int // releases that produced a launch velocity
}

var Possession = donburi.NewComponentType[PossessionData]()
