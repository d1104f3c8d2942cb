package config

// ActionID represents a logical game action
type ActionID int

// Every player has a single action button. Its press, hold and release edges
// map to jump, grab and shoot respectively, so the three actions are sampled
// from the same key.
const (
	ActionNone ActionID = iota
	ActionJump
	ActionGrab
	ActionShoot
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionGrab:
		return "grab"
	case ActionShoot:
		return "shoot"
	default:
		return "none"
	}
}
