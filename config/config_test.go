package config

import (
	"strings"
	"testing"

	"github.com/automoto/dunkball/shared/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()

	assert.Equal(t, 200.0, Physics.PixelsPerMeter)
	assert.Len(t, Player.Spawns, 4)
	assert.Len(t, Court.Hoops, 2)
	assert.Equal(t, 14.6, Shot.SpeedMultiplier)
	assert.Equal(t, 155.0, Player.MaxArmSwing)
}

func TestLoadReaderOverlays(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	doc := `
shot:
  speed_multiplier: 10
court:
  hoops:
    - {side: right, x: 300, y: 150}
sim:
  matches: 1
`
	require.NoError(t, LoadReader(strings.NewReader(doc)))

	assert.Equal(t, 10.0, Shot.SpeedMultiplier)
	assert.Equal(t, 9.81, Shot.Gravity)
	require.Len(t, Court.Hoops, 1)
	assert.Equal(t, team.Right, Court.Hoops[0].Side)
	assert.Equal(t, 300.0, Court.Hoops[0].X)
	assert.Equal(t, 1, Sim.Matches)
	assert.Equal(t, 600, Sim.Steps)
}

func TestLoadReaderRejectsUnknownKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := LoadReader(strings.NewReader("ball:\n  colour: red\n"))
	assert.Error(t, err)
}

func TestLoadReaderEmpty(t *testing.T) {
	t.Cleanup(Reset)
	assert.NoError(t, LoadReader(strings.NewReader("")))
}

func TestLoadMissingFile(t *testing.T) {
	err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}
