// Package rdp implements Ramer-Douglas-Peucker polyline simplification,
// the RDPReduce external collaborator from spec.md §6.
package rdp

import "shapefill/pkg/geometry"

// Reduce simplifies path, keeping only vertices that deviate from the
// chord between their neighbors by more than tolerance.
func Reduce(path []geometry.Point2D, tolerance float64) []geometry.Point2D {
	if len(path) <= 2 {
		return path
	}

	end := len(path) - 1
	dmax := 0.0
	index := 0
	for i := 1; i < end; i++ {
		d := perpendicularDistance(path[i], path[0], path[end])
		if d > dmax {
			dmax = d
			index = i
		}
	}

	if dmax > tolerance {
		left := Reduce(path[:index+1], tolerance)
		right := Reduce(path[index:], tolerance)
		result := make([]geometry.Point2D, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	return []geometry.Point2D{path[0], path[end]}
}

func perpendicularDistance(p, a, b geometry.Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return p.Distance(a)
	}
	num := abs(dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X)
	den := (geometry.Point2D{X: dx, Y: dy}).Length()
	return num / den
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
