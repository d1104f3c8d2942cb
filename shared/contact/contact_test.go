package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	floor BodyID = iota + 1
	wall
	playerA
	playerB
	ball
	handA
)

func court() Capabilities {
	return Capabilities{
		floor:   Ground,
		wall:    0,
		playerA: Dynamic,
		playerB: Dynamic,
		ball:    Dynamic | Ball,
		handA:   Hand,
	}
}

func TestClassify(t *testing.T) {
	caps := court()

	tests := []struct {
		name string
		a, b BodyID
		want Kind
	}{
		{"player lands on floor", floor, playerA, GroundBody},
		{"ball bounces on floor", ball, floor, GroundBody},
		{"hand touches ball", handA, ball, HandBall},
		{"players bump", playerA, playerB, BodyBody},
		{"player bumps ball", playerB, ball, BodyBody},
		{"wall is untagged", wall, playerA, Unrecognized},
		{"hand against player", handA, playerB, Unrecognized},
		{"unknown body", 99, playerA, Unrecognized},
		{"self contact", playerA, playerA, Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.a, tt.b, caps))
		})
	}
}

func TestClassifySymmetric(t *testing.T) {
	caps := court()
	ids := []BodyID{floor, wall, playerA, playerB, ball, handA, 42}

	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, Classify(a, b, caps), Classify(b, a, caps), "pair (%d, %d)", a, b)
		}
	}
}

func TestLabelOrdersByRole(t *testing.T) {
	caps := court()

	l := Label(Event{A: playerA, B: floor, Phase: Begin}, caps)
	assert.Equal(t, GroundBody, l.Kind)
	assert.Equal(t, floor, l.First)
	assert.Equal(t, playerA, l.Second)

	l = Label(Event{A: ball, B: handA, Phase: End}, caps)
	assert.Equal(t, HandBall, l.Kind)
	assert.Equal(t, End, l.Phase)
	assert.Equal(t, handA, l.First)
	assert.Equal(t, ball, l.Second)
}

func TestLabelAllKeepsOrder(t *testing.T) {
	caps := court()
	batch := []Event{
		{A: handA, B: ball, Phase: Begin},
		{A: floor, B: playerB, Phase: Begin},
		{A: wall, B: ball, Phase: Begin},
	}

	got := LabelAll(batch, caps)
	assert.Len(t, got, 3)
	assert.Equal(t, HandBall, got[0].Kind)
	assert.Equal(t, GroundBody, got[1].Kind)
	assert.Equal(t, Unrecognized, got[2].Kind)
}
