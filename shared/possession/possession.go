// Package possession tracks who holds the ball and turns a release into a shot.
package possession

import (
	"github.com/automoto/dunkball/shared/ballistics"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/team"
	dmath "github.com/yohamta/donburi/features/math"
)

// State is either free or held by a hand. The zero value is free.
type State struct {
	holder contact.BodyID
}

// Free returns the unheld state.
func Free() State { return State{} }

// HeldBy returns the state of a ball held by hand.
func HeldBy(hand contact.BodyID) State { return State{holder: hand} }

// Held reports whether a hand holds the ball.
func (s State) Held() bool { return s.holder != contact.None }

// Holder returns the hand holding the ball.
func (s State) Holder() (contact.BodyID, bool) {
	return s.holder, s.Held()
}

func (s State) String() string {
	if s.Held() {
		return "held"
	}
	return "free"
}

// Grab handles a hand-ball contact begin. grabHeld is the grab signal of the
// hand's owner sampled when the contact was reported. The first grab wins: a
// second hand touching a held ball does not take it.
func Grab(s State, hand contact.BodyID, grabHeld bool) State {
	if !grabHeld || s.Held() {
		return s
	}
	return HeldBy(hand)
}

// Touch is a hand-ball contact begin.
type Touch struct {
	Hand, Ball contact.BodyID
}

// Touches picks the hand-ball contact begins out of a labeled step batch.
func Touches(batch []contact.Labeled) []Touch {
	var out []Touch
	for _, l := range batch {
		if l.Kind == contact.HandBall && l.Phase == contact.Begin {
			out = append(out, Touch{Hand: l.First, Ball: l.Second})
		}
	}
	return out
}

// Carry returns where a held ball must be placed this step: exactly on its
// holder. It reports false when the ball is free or the holder has no pose.
func Carry(s State, pose func(contact.BodyID) (dmath.Vec2, bool)) (dmath.Vec2, bool) {
	hand, ok := s.Holder()
	if !ok {
		return dmath.Vec2{}, false
	}
	return pose(hand)
}

// Target is a hoop.
type Target struct {
	Position dmath.Vec2
	Side     team.Side
}

// SelectTarget picks the hoop a holder on holderSide shoots at: the only hoop
// when there is one, otherwise the first hoop of the opposing side.
func SelectTarget(targets []Target, holderSide team.Side) (Target, bool) {
	if len(targets) == 1 {
		return targets[0], true
	}
	for _, t := range targets {
		if t.Side != holderSide {
			return t, true
		}
	}
	return Target{}, false
}

// Shot is the outcome of a release. Velocity is only meaningful when Solved.
type Shot struct {
	Taken    bool
	Solved   bool
	Origin   dmath.Vec2
	Target   dmath.Vec2
	Velocity dmath.Vec2
}

// Release handles the shoot action. Releasing a free ball does nothing.
// Releasing a held ball always frees it, whether or not an arc to the opposing
// hoop exists; without one the ball keeps the velocity it already had.
func Release(s State, ball dmath.Vec2, targets []Target, holderSide team.Side, p ballistics.Params) (State, Shot) {
	if !s.Held() {
		return s, Shot{}
	}

	shot := Shot{Taken: true, Origin: ball}
	target, ok := SelectTarget(targets, holderSide)
	if !ok {
		return Free(), shot
	}
	shot.Target = target.Position
	shot.Velocity, shot.Solved = ballistics.Solve(ball, target.Position, p)
	return Free(), shot
}
