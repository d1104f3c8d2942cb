package components

import (
	"github.com/automoto/dunkball/shared/contact"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index    int            // spawn order, also the input slot
	Hand     contact.BodyID // the hand sensor riding on this player's arm
	ArmSwing float64        // degrees, 0 is hanging straight down
}

var Player = donburi.NewComponentType[PlayerData]()
