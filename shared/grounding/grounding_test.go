package grounding

import (
	"testing"

	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/shared/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scale = 30.0

func TestGroundContactLands(t *testing.T) {
	tests := []struct {
		name string
		tilt float64
		side team.Side
		want float64
	}{
		{"upright left player", 0, team.Left, -scale},
		{"upright right player", 0, team.Right, scale},
		{"tilted counter-clockwise", 0.2, team.Left, scale},
		{"tilted clockwise", -0.01, team.Right, -scale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := Transition(Airborne, Event{Kind: GroundContact, Body: 7, Tilt: tt.tilt, Side: tt.side}, scale)
			assert.Equal(t, OnGround, next)
			require.Len(t, effects, 1)
			assert.Equal(t, contact.BodyID(7), effects[0].Body)
			assert.Equal(t, tt.want, effects[0].TorqueImpulse)
		})
	}
}

func TestRepeatedGroundContactIsIgnored(t *testing.T) {
	ev := Event{Kind: GroundContact, Body: 3, Tilt: 0.1, Side: team.Left}

	s, first := Transition(Airborne, ev, scale)
	require.Len(t, first, 1)

	s, second := Transition(s, ev, scale)
	assert.Equal(t, OnGround, s)
	assert.Empty(t, second)
}

func TestLeaveGroundIsUnconditional(t *testing.T) {
	for _, from := range []State{Airborne, OnGround} {
		next, effects := Transition(from, Event{Kind: LeaveGround, Body: 1}, scale)
		assert.Equal(t, Airborne, next)
		assert.Empty(t, effects)
	}
}

func TestJumpThenLandAgain(t *testing.T) {
	ev := Event{Kind: GroundContact, Body: 2, Side: team.Right}

	s, _ := Transition(Airborne, ev, scale)
	s, _ = Transition(s, Event{Kind: LeaveGround, Body: 2}, scale)
	s, effects := Transition(s, ev, scale)

	assert.Equal(t, OnGround, s)
	assert.Len(t, effects, 1)
}

func TestEventsFiltersBatch(t *testing.T) {
	poses := map[contact.BodyID]Pose{
		10: {Tilt: 0.5, Side: team.Left},
		11: {Tilt: 0, Side: team.Right},
	}
	lookup := func(id contact.BodyID) (Pose, bool) {
		p, ok := poses[id]
		return p, ok
	}

	batch := []contact.Labeled{
		{Kind: contact.GroundBody, Phase: contact.Begin, First: 1, Second: 10},
		{Kind: contact.GroundBody, Phase: contact.End, First: 1, Second: 11},
		{Kind: contact.BodyBody, Phase: contact.Begin, First: 10, Second: 11},
		{Kind: contact.GroundBody, Phase: contact.Begin, First: 1, Second: 99}, // ball, untracked
		{Kind: contact.HandBall, Phase: contact.Begin, First: 20, Second: 99},
		{Kind: contact.GroundBody, Phase: contact.Begin, First: 1, Second: 11},
	}

	got := Events(batch, lookup)
	assert.Equal(t, []Event{
		{Kind: GroundContact, Body: 10, Tilt: 0.5, Side: team.Left},
		{Kind: GroundContact, Body: 11, Tilt: 0, Side: team.Right},
	}, got)
}
