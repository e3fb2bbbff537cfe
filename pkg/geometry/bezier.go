package geometry

import "math"

// Bezier is a single cubic Bezier segment.
type Bezier struct {
	P0, C1, C2, P3 Point2D
}

// PointAt evaluates the curve at parameter t in [0,1].
func (b Bezier) PointAt(t float64) Point2D {
	mt := 1 - t
	a := mt * mt * mt
	c1 := 3 * mt * mt * t
	c2 := 3 * mt * t * t
	d := t * t * t
	return Point2D{
		X: a*b.P0.X + c1*b.C1.X + c2*b.C2.X + d*b.P3.X,
		Y: a*b.P0.Y + c1*b.C1.Y + c2*b.C2.Y + d*b.P3.Y,
	}
}

// ChordLength approximates the curve's arc length as the length of its
// control polygon (P0-C1-C2-P3), a cheap over-estimate used to scale
// intersection accuracy and to judge flatness during rasterization.
func (b Bezier) ChordLength() float64 {
	return b.P0.Distance(b.C1) + b.C1.Distance(b.C2) + b.C2.Distance(b.P3)
}

// Bounds returns the axis-aligned bounding box of the control polygon,
// which always contains the curve itself (the convex-hull property).
func (b Bezier) Bounds() Rect {
	minX := math.Min(math.Min(b.P0.X, b.C1.X), math.Min(b.C2.X, b.P3.X))
	maxX := math.Max(math.Max(b.P0.X, b.C1.X), math.Max(b.C2.X, b.P3.X))
	minY := math.Min(math.Min(b.P0.Y, b.C1.Y), math.Min(b.C2.Y, b.P3.Y))
	maxY := math.Max(math.Max(b.P0.Y, b.C1.Y), math.Max(b.C2.Y, b.P3.Y))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Split divides the curve at parameter t via De Casteljau's algorithm,
// returning the two resulting sub-curves.
func (b Bezier) Split(t float64) (Bezier, Bezier) {
	p01 := InBetween(b.P0, b.C1, t)
	p12 := InBetween(b.C1, b.C2, t)
	p23 := InBetween(b.C2, b.P3, t)
	p012 := InBetween(p01, p12, t)
	p123 := InBetween(p12, p23, t)
	p0123 := InBetween(p012, p123, t)
	return Bezier{P0: b.P0, C1: p01, C2: p012, P3: p0123},
		Bezier{P0: p0123, C1: p123, C2: p23, P3: b.P3}
}

func boxesOverlap(a, b Rect) bool {
	return a.X <= b.X+b.Width && b.X <= a.X+a.Width &&
		a.Y <= b.Y+b.Height && b.Y <= a.Y+a.Height
}

// CubicCurveIntersect reports whether c1 and c2 cross, via recursive
// bounding-box clipping: each curve is split in half until both boxes
// shrink under `accuracy`, at which point an overlapping pair of tiny
// boxes is taken as a hit. Curves whose boxes never overlap are rejected
// at any depth without further subdivision.
func CubicCurveIntersect(c1, c2 Bezier, accuracy float64) bool {
	return cubicIntersectRec(c1, c2, accuracy, 0)
}

const maxClipDepth = 24

func cubicIntersectRec(c1, c2 Bezier, accuracy float64, depth int) bool {
	b1 := c1.Bounds()
	b2 := c2.Bounds()
	if !boxesOverlap(b1, b2) {
		return false
	}
	if depth >= maxClipDepth {
		return true
	}
	small1 := b1.Width <= accuracy && b1.Height <= accuracy
	small2 := b2.Width <= accuracy && b2.Height <= accuracy
	if small1 && small2 {
		return true
	}
	c1a, c1b := c1, c1
	if !small1 {
		c1a, c1b = c1.Split(0.5)
	}
	c2a, c2b := c2, c2
	if !small2 {
		c2a, c2b = c2.Split(0.5)
	}
	return cubicIntersectRec(c1a, c2a, accuracy, depth+1) ||
		cubicIntersectRec(c1a, c2b, accuracy, depth+1) ||
		cubicIntersectRec(c1b, c2a, accuracy, depth+1) ||
		cubicIntersectRec(c1b, c2b, accuracy, depth+1)
}

// BezierCurvesIntersect reports whether any two single-segment splines
// drawn from different connectors intersect. Self-intersection within a
// single connector (relevant for S-shaped two-segment connectors) is
// ignored, per spec: a connector's own halves are expected to meet only
// at their shared midpoint.
func BezierCurvesIntersect(connectors [][]Bezier) bool {
	for i := 0; i < len(connectors); i++ {
		for j := i + 1; j < len(connectors); j++ {
			for _, s1 := range connectors[i] {
				for _, s2 := range connectors[j] {
					accuracy := 0.25 * (s1.ChordLength() + s2.ChordLength())
					if accuracy <= 0 {
						accuracy = 0.25
					}
					if CubicCurveIntersect(s1, s2, accuracy) {
						return true
					}
				}
			}
		}
	}
	return false
}
