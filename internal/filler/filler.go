// Package filler rasterizes synthesized connectors into the hole's
// local coordinate frame and floods texture into the correct side of
// each rim arc (spec.md §4.9).
package filler

import (
	"shapefill/internal/curve"
	"shapefill/internal/raster"
	"shapefill/pkg/geometry"
)

// Fill rasterizes every connector's segments into a new FilledHole the
// size of hole, snapping each connector's true (non-joint) endpoints
// onto the rim first, then flood-fills texture outward from the
// foreground-adjacent rim arcs. outside supplies foreground queries on
// pixels surrounding the hole, in the original image's coordinate frame.
func Fill(hole raster.HoleRect, outside raster.Image, connectors []curve.Connector) *raster.FilledHole {
	out := raster.NewFilledHole(hole.Width(), hole.Height())

	var endpoints []geometry.Point2D
	for _, conn := range connectors {
		if len(conn.Segments) == 0 {
			continue
		}
		segs := make([]geometry.Bezier, len(conn.Segments))
		copy(segs, conn.Segments)

		segs[0].P0 = hole.NearestRimPoint(segs[0].P0)
		lastIdx := len(segs) - 1
		segs[lastIdx].P3 = hole.NearestRimPoint(segs[lastIdx].P3)
		endpoints = append(endpoints, segs[0].P0, segs[lastIdx].P3)

		for _, seg := range segs {
			rasterizeSegment(out, hole, seg)
		}
	}

	floodTexture(out, hole, outside, endpoints)
	return out
}
