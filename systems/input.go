package systems

import (
	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/team"
	"github.com/yohamta/donburi"
)

// InputSource reports which actions a player holds during this step.
type InputSource interface {
	Actions(player int, side team.Side) [cfg.ActionCount]bool
}

// Ticker is implemented by sources that refresh once per step, before any
// player is polled.
type Ticker interface {
	Tick()
}

// InputFunc adapts a function to InputSource.
type InputFunc func(player int, side team.Side) [cfg.ActionCount]bool

func (f InputFunc) Actions(player int, side team.Side) [cfg.ActionCount]bool {
	return f(player, side)
}

// SingleButton maps one physical button onto every action. Which action fires
// depends on the edge: press jumps, hold grabs, release shoots.
func SingleButton(pressed bool) [cfg.ActionCount]bool {
	var actions [cfg.ActionCount]bool
	actions[cfg.ActionJump] = pressed
	actions[cfg.ActionGrab] = pressed
	actions[cfg.ActionShoot] = pressed
	return actions
}

// UpdateInput samples every player's actions once for the step.
// Must run BEFORE any system reading components.Input.
func UpdateInput(w donburi.World, src InputSource) {
	if t, ok := src.(Ticker); ok {
		t.Tick()
	}

	components.Player.Each(w, func(playerEntry *donburi.Entry) {
		input := components.Input.Get(playerEntry)
		if src == nil {
			input.Advance([cfg.ActionCount]bool{})
			return
		}
		player := components.Player.Get(playerEntry)
		side := components.Team.Get(playerEntry).Side
		input.Advance(src.Actions(player.Index, side))
	})
}
