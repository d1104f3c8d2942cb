// Package ballistics computes the launch velocity of a shot at a hoop.
package ballistics

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Re-aim heuristic. A shot taken with less than ReaimDistance of horizontal
// gap to the hoop aims at a point lifted by ReaimLift and pulled ReaimInset
// back toward the shooter, so the ball drops in from the side.
const (
	ReaimDistance = 200.0
	ReaimLift     = 70.0
	ReaimInset    = 20.0
)

// Params holds the gravity the ball is subject to and the empirical speed
// multiplier that matches the solver's units to the backend's.
type Params struct {
	Gravity         float64
	GravityScale    float64
	SpeedMultiplier float64
}

// AimPoint returns the point a shot from origin should be aimed at to reach target.
func AimPoint(origin, target dmath.Vec2) dmath.Vec2 {
	dx := target.X - origin.X
	if math.Abs(dx) >= ReaimDistance {
		return target
	}

	aim := dmath.Vec2{X: target.X, Y: target.Y + ReaimLift}
	if dx > 0 {
		aim.X -= ReaimInset
	} else {
		aim.X += ReaimInset
	}
	return aim
}

// LaunchAngle bisects the line-of-sight angle to (dx, dy) and 45 degrees.
func LaunchAngle(dx, dy float64) float64 {
	return math.Atan2(dy, dx)/2 + math.Pi/4
}

// Solve returns the velocity that lands a ball launched from origin on target,
// re-aiming first when origin is nearly under the hoop. It reports false when
// origin is straight above or below target or no real arc exists.
func Solve(origin, target dmath.Vec2, p Params) (dmath.Vec2, bool) {
	if target.X == origin.X {
		return dmath.Vec2{}, false
	}
	return Launch(origin, AimPoint(origin, target), p)
}

// Launch is the closed-form part of Solve: no re-aiming is applied.
func Launch(origin, target dmath.Vec2, p Params) (dmath.Vec2, bool) {
	dx := target.X - origin.X
	dy := target.Y - origin.Y
	if dx == 0 {
		return dmath.Vec2{}, false
	}

	angle := LaunchAngle(dx, dy)
	tan := math.Tan(angle)

	denom := dx*tan - dy
	if denom <= 0 {
		return dmath.Vec2{}, false
	}

	speedSq := p.Gravity * p.GravityScale * dx * dx * (1 + tan*tan) / (2 * denom)
	if speedSq < 0 || math.IsNaN(speedSq) || math.IsInf(speedSq, 0) {
		return dmath.Vec2{}, false
	}

	speed := math.Sqrt(speedSq) * p.SpeedMultiplier
	return dmath.Vec2{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)}, true
}
