package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps an angle in radians into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// TiltDegrees is the unsigned angle between a body's up axis and world up,
// for a body rotated by a radians. It is 0 upright and 180 upside down.
func TiltDegrees(a float64) float64 {
	return math.Abs(WrapAngle(a)) * 180 / math.Pi
}

// UprightTorque is a restoring torque proportional to the z component of the
// body's rotation quaternion, sin(a/2). It vanishes upright and peaks upside
// down.
func UprightTorque(stiffness, a float64) float64 {
	return stiffness * (0 - math.Sin(WrapAngle(a)/2))
}
