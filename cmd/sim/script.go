package main

import (
	"math/rand"

	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/team"
	"github.com/automoto/dunkball/systems"
)

// Script presses each side's button in seeded random bursts. Both players on
// a side share the button, as they do on the keyboard.
type Script struct {
	rng     *rand.Rand
	pressed map[team.Side]bool
	left    map[team.Side]int
}

func NewScript(seed int64) *Script {
	return &Script{
		rng:     rand.New(rand.NewSource(seed)),
		pressed: make(map[team.Side]bool),
		left:    make(map[team.Side]int),
	}
}

func (s *Script) Actions(player int, side team.Side) [cfg.ActionCount]bool {
	return systems.SingleButton(s.pressed[side])
}

// Tick counts down each side's current press or pause and flips it when done.
func (s *Script) Tick() {
	for _, side := range []team.Side{team.Left, team.Right} {
		if s.left[side] > 0 {
			s.left[side]--
			continue
		}
		s.pressed[side] = !s.pressed[side]
		if s.pressed[side] {
			s.left[side] = 10 + s.rng.Intn(50) // hold long enough to swing up
		} else {
			s.left[side] = 20 + s.rng.Intn(90)
		}
	}
}
