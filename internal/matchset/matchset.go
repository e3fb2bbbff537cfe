// Package matchset builds match items from walked segments (spec.md
// §4.4).
package matchset

import (
	"shapefill/internal/match"
	"shapefill/internal/walker"
)

// Build emits one match item per segment: its tail point, and its
// outward tangent approximated from the tail toward its first interior
// neighbor. IDs are assigned by insertion order.
func Build(segments []walker.Segment) match.Set {
	items := make(match.Set, len(segments))
	for i, s := range segments {
		tail := s.Points[0]
		neighbor := s.Points[1]
		items[i] = match.Item{
			ID:        i,
			Point:     tail,
			Direction: tail.Sub(neighbor).Normalize(),
		}
	}
	return items
}
