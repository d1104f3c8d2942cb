package components

import (
	cfg "github.com/automoto/dunkball/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this step
	JustReleased bool // Released this step
}

// InputData stores the current and previous step's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing steps.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of an action.
func (in *InputData) Action(a cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[a],
		JustPressed:  in.Current[a] && !in.Previous[a],
		JustReleased: !in.Current[a] && in.Previous[a],
	}
}

// Advance moves the current step to the previous one and records next.
func (in *InputData) Advance(next [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = next
}
