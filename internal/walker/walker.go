// Package walker extracts, from each cluster contour, the short boundary
// segments that enter the hole rim and point outward into the
// surrounding image (spec.md §4.3).
package walker

import (
	"errors"

	"shapefill/internal/cluster"
	"shapefill/internal/raster"
	"shapefill/internal/rdp"
	"shapefill/pkg/geometry"
)

// ErrOddSegmentCount is returned when the total number of extracted
// segments is odd — a programming/input-contract error, since every
// matching requires pairing segments two at a time.
var ErrOddSegmentCount = errors.New("walker: odd number of segments")

// Segment is a simplified piece of contour with its tail (index 0) on
// the hole rim and at least one interior point.
type Segment struct {
	Points []geometry.Point2D
}

// ExtractSegments walks every component's contour, finds rim-touching
// endpoints with exactly one non-rim neighbor, and returns the
// RDP-simplified outward segment from each.
func ExtractSegments(components []cluster.Component, hole raster.HoleRect, simplifyTolerance float64) ([]Segment, error) {
	seen := make(map[[2]int]bool)
	var segments []Segment

	for _, comp := range components {
		path := openForm(comp.Contour)
		n := len(path)
		if n < 3 {
			continue
		}

		mask := make([]bool, n)
		for i, p := range path {
			mask[i] = hole.OnRim(p.X, p.Y)
		}

		for i := 0; i < n; i++ {
			if !mask[i] {
				continue
			}
			prev := (i - 1 + n) % n
			next := (i + 1) % n
			if mask[prev] == mask[next] {
				// Both neighbors on rim (corner-touch degeneracy, zero
				// endpoints) or neither on rim: not an endpoint.
				continue
			}

			key := [2]int{path[i].X, path[i].Y}
			if seen[key] {
				continue
			}
			seen[key] = true

			dir := -1
			if mask[prev] {
				dir = 1
			}

			seg := walkSegment(path, mask, i, dir, simplifyTolerance)
			segments = append(segments, seg)
		}
	}

	if len(segments)%2 != 0 {
		return nil, ErrOddSegmentCount
	}
	return segments, nil
}

func walkSegment(path []geometry.PointInt, mask []bool, start, dir int, tolerance float64) Segment {
	n := len(path)
	var raw []geometry.Point2D
	idx := start
	raw = append(raw, path[idx].ToFloat())
	for {
		idx = ((idx+dir)%n + n) % n
		raw = append(raw, path[idx].ToFloat())
		if mask[idx] || len(raw) >= n {
			break
		}
	}
	return Segment{Points: rdp.Reduce(raw, tolerance)}
}

func openForm(contour []geometry.PointInt) []geometry.PointInt {
	if len(contour) > 1 && contour[0] == contour[len(contour)-1] {
		return contour[:len(contour)-1]
	}
	return contour
}
