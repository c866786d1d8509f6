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

// Aim returns the velocity of a body leaving (fromX, fromY) toward
// (toX, toY) at the given speed.
func Aim(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Cone returns the velocity for a particle thrown at angle radians off the
// horizontal in the facing direction.
func Cone(facing, angle, speed float64) (vx, vy float64) {
	return math.Cos(angle) * speed * facing, math.Sin(angle) * speed
}

// LandsOn reports whether a falling body crossed the top edge of surface
// during the last integration step. vy is the velocity that was just applied.
// The body must not have sunk past the surface's vertical midpoint.
func LandsOn(body Rect, vy float64, surface Rect) bool {
	if vy < 0 {
		return false
	}
	bottom := body.Bottom()
	prevBottom := bottom - vy
	return bottom >= surface.Y &&
		prevBottom <= surface.Y &&
		bottom <= surface.Y+surface.H/2 &&
		body.OverlapsX(surface)
}

// Bounce reverses and damps a downward velocity. It reports rest when the
// rebound is too small to keep bouncing.
func Bounce(vy, damping, restThreshold float64) (float64, bool) {
	vy = -vy * damping
	if math.Abs(vy) < restThreshold {
		return 0, true
	}
	return vy, false
}
