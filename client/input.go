package client

import (
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/team"
	"github.com/automoto/dunkball/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding is the physical button of one side. Everyone on a side shares it.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings gives the left side Space and the right side Enter, plus
// the bottom face button of the first and second gamepad.
var DefaultBindings = map[team.Side]Binding{
	team.Left: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	team.Right: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Keyboard polls ebiten for each side's button.
type Keyboard struct {
	Bindings map[team.Side]Binding

	gamepadIDs []ebiten.GamepadID
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Bindings: DefaultBindings}
}

// Tick refreshes the connected gamepads once per step.
func (k *Keyboard) Tick() {
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])
}

func (k *Keyboard) Actions(player int, side team.Side) [cfg.ActionCount]bool {
	return systems.SingleButton(k.pressed(side))
}

func (k *Keyboard) pressed(side team.Side) bool {
	binding, ok := k.Bindings[side]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}

	// Gamepad n drives side n.
	pad := int(side)
	if pad >= len(k.gamepadIDs) {
		return false
	}
	id := k.gamepadIDs[pad]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	for _, btn := range binding.StandardGamepadButtons {
		if ebiten.IsStandardGamepadButtonPressed(id, btn) {
			return true
		}
	}
	return false
}
