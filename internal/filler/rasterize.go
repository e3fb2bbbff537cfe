package filler

import (
	"shapefill/internal/raster"
	"shapefill/pkg/geometry"
)

// maxSubdivideDepth bounds the adaptive-subdivision recursion.
const maxSubdivideDepth = 20

// flatnessTolerance is the maximum allowed slack, in pixels, between a
// sub-curve's control-polygon length and its straight-line chord before
// it is accepted as flat enough to rasterize as a line.
const flatnessTolerance = 0.25

// rasterizeSegment marks every pixel a cubic segment passes through as
// Structure, translating from image coordinates into the hole's local
// frame and clamping to the matrix bounds. Adaptive subdivision breaks
// the curve into straight-enough pieces (dense where curvature is high,
// sparse on flat stretches); each piece is then walked pixel-by-pixel so
// long flat runs don't leave gaps between sample points.
func rasterizeSegment(out *raster.FilledHole, hole raster.HoleRect, seg geometry.Bezier) {
	var points []geometry.Point2D
	collectFlatPoints(seg, 0, &points)
	for i := 0; i+1 < len(points); i++ {
		drawLine(out, hole, points[i], points[i+1])
	}
}

func collectFlatPoints(seg geometry.Bezier, depth int, out *[]geometry.Point2D) {
	straight := seg.P0.Distance(seg.P3)
	if depth >= maxSubdivideDepth || seg.ChordLength()-straight < flatnessTolerance || straight < 1 {
		*out = append(*out, seg.P0, seg.P3)
		return
	}
	a, b := seg.Split(0.5)
	collectFlatPoints(a, depth+1, out)
	collectFlatPoints(b, depth+1, out)
}

// drawLine marks every integer pixel between p0 and p3 (inclusive),
// translated into the hole's local frame and clamped to its bounds.
func drawLine(out *raster.FilledHole, hole raster.HoleRect, p0, p3 geometry.Point2D) {
	steps := int(p0.Distance(p3) + 0.5)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geometry.InBetween(p0, p3, t)
		x := int(p.X+0.5) - hole.Left
		y := int(p.Y+0.5) - hole.Top
		out.Set(clampInt(x, 0, out.Width-1), clampInt(y, 0, out.Height-1), raster.Structure)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
