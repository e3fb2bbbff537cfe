package geometry

import "math"

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point2D) Point2D {
	return Point2D{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// InBetween returns the point a fraction t of the way from a to b.
// t is not clamped; t=0 yields a, t=1 yields b.
func InBetween(a, b Point2D, t float64) Point2D {
	return Point2D{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// RightHandUnitNormal returns the right-hand unit normal of the directed
// segment a->b (rotate the direction -90 degrees). Negating the result
// gives the left-hand normal.
func RightHandUnitNormal(a, b Point2D) Point2D {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return Point2D{X: -dy, Y: dx}.Normalize()
}

// AngleOf returns the signed angle of a unit vector from the positive
// X axis, in (-pi, pi], with the sign matching p.Y.
func AngleOf(p Point2D) float64 {
	angle := math.Acos(clamp(p.X, -1, 1))
	if p.Y < 0 {
		return -angle
	}
	return angle
}

// SignedAngleDifference returns the clockwise-positive signed delta from
// `from` to `to`, both angles in radians, normalized to (-pi, pi].
func SignedAngleDifference(from, to float64) float64 {
	d := to - from
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
