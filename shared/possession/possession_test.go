package possession

import (
	"testing"

	"github.com/automoto/dunkball/shared/ballistics"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

var params = ballistics.Params{Gravity: 9.81, GravityScale: 0.4, SpeedMultiplier: 14.6}

var hoops = []Target{
	{Position: dmath.Vec2{X: -400, Y: 200}, Side: team.Left},
	{Position: dmath.Vec2{X: 400, Y: 200}, Side: team.Right},
}

func TestGrabIsGated(t *testing.T) {
	s := Grab(Free(), 5, false)
	assert.False(t, s.Held())

	s = Grab(s, 5, true)
	hand, ok := s.Holder()
	assert.True(t, ok)
	assert.Equal(t, contact.BodyID(5), hand)
}

func TestFirstGrabWins(t *testing.T) {
	s := Grab(Free(), 5, true)
	s = Grab(s, 6, true)

	hand, _ := s.Holder()
	assert.Equal(t, contact.BodyID(5), hand)
}

func TestReleaseFreeBallDoesNothing(t *testing.T) {
	s, shot := Release(Free(), dmath.Vec2{}, hoops, team.Left, params)
	assert.False(t, s.Held())
	assert.False(t, shot.Taken)
}

func TestReleaseShootsAtOpposingHoop(t *testing.T) {
	ball := dmath.Vec2{X: -150, Y: 60}
	s, shot := Release(HeldBy(5), ball, hoops, team.Left, params)

	assert.False(t, s.Held())
	require.True(t, shot.Taken)
	require.True(t, shot.Solved)
	assert.Equal(t, hoops[1].Position, shot.Target)

	want, _ := ballistics.Solve(ball, hoops[1].Position, params)
	assert.Equal(t, want, shot.Velocity)
	assert.Greater(t, shot.Velocity.X, 0.0)
}

func TestReleaseWithoutArcStillFrees(t *testing.T) {
	// Straight under the only hoop: no closed-form arc.
	ball := dmath.Vec2{X: 400, Y: 0}
	only := []Target{hoops[1]}

	s, shot := Release(HeldBy(5), ball, only, team.Left, params)
	assert.False(t, s.Held())
	assert.True(t, shot.Taken)
	assert.False(t, shot.Solved)
}

func TestReleaseWithoutTargetsStillFrees(t *testing.T) {
	s, shot := Release(HeldBy(5), dmath.Vec2{}, nil, team.Right, params)
	assert.False(t, s.Held())
	assert.True(t, shot.Taken)
	assert.False(t, shot.Solved)
}

func TestSelectTarget(t *testing.T) {
	got, ok := SelectTarget(hoops, team.Right)
	require.True(t, ok)
	assert.Equal(t, team.Left, got.Side)

	got, ok = SelectTarget(hoops[:1], team.Left)
	require.True(t, ok)
	assert.Equal(t, team.Left, got.Side)

	_, ok = SelectTarget([]Target{hoops[0], hoops[0]}, team.Left)
	assert.False(t, ok)
}

func TestCarryPinsToHolder(t *testing.T) {
	poses := map[contact.BodyID]dmath.Vec2{5: {X: 12, Y: 34}}
	lookup := func(id contact.BodyID) (dmath.Vec2, bool) {
		p, ok := poses[id]
		return p, ok
	}

	_, ok := Carry(Free(), lookup)
	assert.False(t, ok)

	pos, ok := Carry(HeldBy(5), lookup)
	assert.True(t, ok)
	assert.Equal(t, dmath.Vec2{X: 12, Y: 34}, pos)

	_, ok = Carry(HeldBy(6), lookup)
	assert.False(t, ok)
}

func TestTouches(t *testing.T) {
	batch := []contact.Labeled{
		{Kind: contact.HandBall, Phase: contact.Begin, First: 5, Second: 9},
		{Kind: contact.HandBall, Phase: contact.End, First: 6, Second: 9},
		{Kind: contact.GroundBody, Phase: contact.Begin, First: 1, Second: 9},
	}
	assert.Equal(t, []Touch{{Hand: 5, Ball: 9}}, Touches(batch))
}
