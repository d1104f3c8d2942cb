package team

import "fmt"

// Side identifies which half of the court a body plays for.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Sign returns -1 for Left and +1 for Right.
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// UnmarshalText accepts "left" or "right" so config files can name sides.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left", "0":
		*s = Left
	case "right", "1":
		*s = Right
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}
