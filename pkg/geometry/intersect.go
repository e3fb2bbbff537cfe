package geometry

import "math"

// epsScale is the tolerance used to classify a denominator as "zero" when
// testing two directed lines for parallelism/coincidence.
const epsScale = 1e-9

// IntersectKind classifies the result of DirectedLineIntersection.
type IntersectKind int

const (
	// KindNone means the lines (extended infinitely) only cross behind
	// one or both rays, so there is no intersection in the forward
	// direction of both.
	KindNone IntersectKind = iota
	KindIntersect
	KindParallel
	KindCoincidence
)

// LineIntersection is the result of DirectedLineIntersection.
type LineIntersection struct {
	Kind  IntersectKind
	Point Point2D
}

// DirectedLineIntersection classifies and, where applicable, locates the
// intersection of ray p1->p2 with ray p3->p4. A result of KindIntersect
// requires the intersection to lie in the forward direction of both rays.
func DirectedLineIntersection(p1, p2, p3, p4 Point2D) LineIntersection {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	numA := (p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)
	numB := (p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)

	if math.Abs(denom) < epsScale {
		if math.Abs(numA) < epsScale && math.Abs(numB) < epsScale {
			return LineIntersection{Kind: KindCoincidence}
		}
		return LineIntersection{Kind: KindParallel}
	}

	uA := numA / denom
	uB := numB / denom
	if uA > 0 && uB > 0 {
		return LineIntersection{
			Kind:  KindIntersect,
			Point: InBetween(p1, p2, uA),
		}
	}
	return LineIntersection{Kind: KindNone}
}

// RetractPoint repeatedly moves `from` a `ratio` fraction of the way
// toward `to` until `accept` holds or maxIters is exhausted, returning the
// final point.
func RetractPoint(from, to Point2D, ratio float64, accept func(Point2D) bool, maxIters int) Point2D {
	cur := from
	for i := 0; i < maxIters && !accept(cur); i++ {
		cur = InBetween(cur, to, ratio)
	}
	return cur
}
