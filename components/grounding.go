package components

import (
	"github.com/automoto/dunkball/shared/grounding"
	"github.com/yohamta/donburi"
)

type GroundingData struct {
	State grounding.State
}

var Grounding = donburi.NewComponentType[GroundingData]()
