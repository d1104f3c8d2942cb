package main

import (
	"context"
	"testing"

	"github.com/automoto/dunkball/shared/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptIsSeeded(t *testing.T) {
	a, b := NewScript(7), NewScript(7)
	for i := 0; i < 500; i++ {
		a.Tick()
		b.Tick()
		assert.Equal(t, a.Actions(0, team.Left), b.Actions(0, team.Left))
		assert.Equal(t, a.Actions(2, team.Right), b.Actions(2, team.Right))
	}
}

func TestScriptPressesAndReleases(t *testing.T) {
	s := NewScript(1)
	var presses, releases int
	was := false
	for i := 0; i < 1000; i++ {
		s.Tick()
		now := s.pressed[team.Left]
		if now && !was {
			presses++
		}
		if !now && was {
			releases++
		}
		was = now
	}
	assert.Greater(t, presses, 3)
	assert.Greater(t, releases, 3)
}

func TestRunParallelMatches(t *testing.T) {
	results, err := run(context.Background(), 3, 120, false, 1)
	require.NoError(t, err)
	require.Len(t, results, 3)

	seen := map[string]bool{}
	for _, r := range results {
		assert.Equal(t, 120, r.Steps)
		assert.False(t, seen[r.Scene])
		seen[r.Scene] = true
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, 2, 10, false, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
