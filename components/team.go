package components

import (
	"github.com/automoto/dunkball/shared/team"
	"github.com/yohamta/donburi"
)

type TeamData struct {
	Side team.Side
}

var Team = donburi.NewComponentType[TeamData]()
