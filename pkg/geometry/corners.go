package geometry

import "math"

// DefaultCornerThreshold is pi/2, the default turn-angle below which a
// vertex is not considered a corner.
const DefaultCornerThreshold = math.Pi / 2

// FindCorners marks each interior index of path as a corner iff the turn
// angle there is at least theta. Endpoints are never corners.
func FindCorners(path []Point2D, theta float64) []bool {
	corners := make([]bool, len(path))
	if len(path) < 3 {
		return corners
	}
	for i := 1; i < len(path)-1; i++ {
		v1 := path[i].Sub(path[i-1])
		v2 := path[i+1].Sub(path[i])
		n1 := v1.Normalize()
		n2 := v2.Normalize()
		if n1 == (Point2D{}) || n2 == (Point2D{}) {
			continue
		}
		diff := SignedAngleDifference(AngleOf(n1), AngleOf(n2))
		if math.Abs(diff) >= theta {
			corners[i] = true
		}
	}
	return corners
}
