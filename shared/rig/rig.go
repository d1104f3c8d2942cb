// Package rig resolves the world position of a player's hand from the player's
// pose and arm swing, so nothing else has to walk a transform hierarchy.
package rig

import (
	"math"

	"github.com/automoto/dunkball/shared/gamemath"
	"github.com/automoto/dunkball/shared/team"
	dmath "github.com/yohamta/donburi/features/math"
)

// Rig describes a player's arm. Offsets are for a right-side player and are
// mirrored on the x axis for the left side.
type Rig struct {
	ShoulderX float64
	ShoulderY float64
	Reach     float64 // shoulder to hand with the arm hanging down

	SwingSpeed float64 // degrees per second
	MinSwing   float64 // degrees
	MaxSwing   float64 // degrees
}

// SwingDirection is +1 when a side raises its arm counter-clockwise. Each side
// swings toward the opposing hoop.
func SwingDirection(side team.Side) float64 {
	return -side.Sign()
}

// Swing advances the arm angle by one step: up while raising, down otherwise,
// clamped to the rig's range.
func (r Rig) Swing(angle, dt float64, raising bool) float64 {
	delta := r.SwingSpeed * dt
	if raising {
		angle += delta
	} else {
		angle -= delta
	}
	return gamemath.Clamp(angle, r.MinSwing, r.MaxSwing)
}

// Hand returns the world position of the hand of a player at body, rotated by
// bodyAngle radians, with the arm raised swing degrees.
func (r Rig) Hand(body dmath.Vec2, bodyAngle float64, side team.Side, swing float64) dmath.Vec2 {
	phi := swing * SwingDirection(side) * math.Pi / 180

	// Hand relative to the shoulder: straight down, rotated by the swing.
	lx := r.Reach * math.Sin(phi)
	ly := -r.Reach * math.Cos(phi)

	// Relative to the body centre.
	lx += r.ShoulderX * side.Sign()
	ly += r.ShoulderY

	return toWorld(body, bodyAngle, lx, ly)
}

// Shoulder returns the world position of the shoulder the arm swings from.
func (r Rig) Shoulder(body dmath.Vec2, bodyAngle float64, side team.Side) dmath.Vec2 {
	return toWorld(body, bodyAngle, r.ShoulderX*side.Sign(), r.ShoulderY)
}

func toWorld(body dmath.Vec2, angle, lx, ly float64) dmath.Vec2 {
	sin, cos := math.Sincos(angle)
	return dmath.Vec2{
		X: body.X + lx*cos - ly*sin,
		Y: body.Y + lx*sin + ly*cos,
	}
}
