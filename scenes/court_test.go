package scenes

import (
	"context"
	"testing"

	"github.com/automoto/dunkball/components"
	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/grounding"
	"github.com/automoto/dunkball/shared/team"
	"github.com/automoto/dunkball/systems"
	"github.com/automoto/dunkball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// buttons is scripted input: one button per player index.
type buttons map[int]bool

func (b buttons) Actions(player int, side team.Side) [cfg.ActionCount]bool {
	return systems.SingleButton(b[player])
}

func findPlayer(t *testing.T, w donburi.World, index int) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Player.Each(w, func(e *donburi.Entry) {
		if components.Player.Get(e).Index == index {
			found = e
		}
	})
	require.NotNil(t, found)
	return found
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func findBall(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	ball, ok := tags.Ball.First(w)
	require.True(t, ok)
	return ball
}

func physicsOf(t *testing.T, w donburi.World) *components.PhysicsData {
	t.Helper()
	entry, ok := components.Physics.First(w)
	require.True(t, ok)
	return components.Physics.Get(entry)
}

func TestCourtSpawn(t *testing.T) {
	scene := NewCourtScene(nil)
	w := scene.World()

	assert.Equal(t, len(cfg.Player.Spawns), count(w, tags.Player))
	assert.Equal(t, len(cfg.Court.Hoops), count(w, tags.Hoop))
	assert.Equal(t, 1, count(w, tags.Ball))

	components.Player.Each(w, func(e *donburi.Entry) {
		assert.Equal(t, grounding.Airborne, components.Grounding.Get(e).State)
	})
	assert.False(t, components.Possession.Get(findBall(t, w)).State.Held())
}

func TestPlayersLand(t *testing.T) {
	scene := NewCourtScene(nil)
	loop := NewGameLoop(scene, cfg.Physics.TickRate)
	require.NoError(t, loop.RunFast(context.Background(), 300))

	w := scene.World()
	components.Player.Each(w, func(e *donburi.Entry) {
		assert.Equal(t, grounding.OnGround, components.Grounding.Get(e).State,
			"player %d", components.Player.Get(e).Index)
	})
	assert.Equal(t, 300, scene.Steps())
}

func TestJumpLeavesGround(t *testing.T) {
	input := buttons{}
	scene := NewCourtScene(input)
	loop := NewGameLoop(scene, cfg.Physics.TickRate)
	require.NoError(t, loop.RunFast(context.Background(), 300))

	w := scene.World()
	player := findPlayer(t, w, 0)
	require.Equal(t, grounding.OnGround, components.Grounding.Get(player).State)

	input[0] = true
	scene.Update()

	assert.Equal(t, grounding.Airborne, components.Grounding.Get(player).State)
	body := components.Body.Get(player).ID
	assert.Greater(t, physicsOf(t, w).World.Velocity(body).Y, 0.0)
}

func TestGrabCarryShoot(t *testing.T) {
	input := buttons{}
	scene := NewCourtScene(input)
	loop := NewGameLoop(scene, cfg.Physics.TickRate)
	require.NoError(t, loop.RunFast(context.Background(), 300))

	w := scene.World()
	sp := physicsOf(t, w)
	ballEntry := findBall(t, w)
	ball := components.Body.Get(ballEntry).ID
	shooter := findPlayer(t, w, 2)
	require.Equal(t, team.Right, components.Team.Get(shooter).Side)

	// Put the ball in the shooter's hand and press.
	sp.World.SetVelocity(ball, dmath.Vec2{})
	sp.World.SetPosition(ball, systems.HandPosition(sp, shooter))
	input[2] = true
	scene.Update()

	poss := components.Possession.Get(ballEntry)
	hand, held := poss.State.Holder()
	require.True(t, held)
	assert.Equal(t, components.Player.Get(shooter).Hand, hand)
	assert.True(t, sp.World.Kinematic(ball))

	// Keep holding: the ball rides on the hand.
	for i := 0; i < 20; i++ {
		scene.Update()
	}
	require.True(t, poss.State.Held())
	at := systems.HandPosition(sp, shooter)
	pos := sp.World.Position(ball)
	assert.InDelta(t, at.X, pos.X, 1e-6)
	assert.InDelta(t, at.Y, pos.Y, 1e-6)

	// Release: shoot at the left hoop.
	input[2] = false
	scene.Update()

	assert.False(t, poss.State.Held())
	assert.False(t, sp.World.Kinematic(ball))
	assert.Equal(t, 1, poss.Shots)
	v := sp.World.Velocity(ball)
	assert.Less(t, v.X, 0.0)
	assert.Greater(t, v.Y, 0.0)
}

func TestGrabNeedsButton(t *testing.T) {
	scene := NewCourtScene(buttons{})
	loop := NewGameLoop(scene, cfg.Physics.TickRate)
	require.NoError(t, loop.RunFast(context.Background(), 300))

	w := scene.World()
	sp := physicsOf(t, w)
	ballEntry := findBall(t, w)
	ball := components.Body.Get(ballEntry).ID

	sp.World.SetVelocity(ball, dmath.Vec2{})
	sp.World.SetPosition(ball, systems.HandPosition(sp, findPlayer(t, w, 1)))
	scene.Update()

	assert.False(t, components.Possession.Get(ballEntry).State.Held())
}

func TestRunFastHonoursContext(t *testing.T) {
	scene := NewCourtScene(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewGameLoop(scene, 60).RunFast(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, scene.Steps())
}

func TestRunAtTickRate(t *testing.T) {
	scene := NewCourtScene(nil)
	err := NewGameLoop(scene, 1000).Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, scene.Steps())
}
