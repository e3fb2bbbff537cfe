package curve

import (
	"errors"

	"shapefill/pkg/geometry"
)

// ErrNoIntersection is returned when the two rays (or their recomputed
// midpoint halves, for the S-shape case) admit no forward intersection
// even after the "None" recomputation step.
var ErrNoIntersection = errors.New("curve: no forward intersection between tangent rays")

// ErrCoincidencePartCurve signals the forbidden case of PartCurve being
// invoked with a coincident pair; callers must unfold coincidence before
// recursing, so reaching this indicates a programming error.
var ErrCoincidencePartCurve = errors.New("curve: coincidence reached PartCurve")

// Connector is the one- or two-segment cubic-Bezier spline joining a
// matched pair of endpoints.
type Connector struct {
	Segments []geometry.Bezier
}

// Synthesize builds the connector between (e1,t1) and (e2,t2), where t1
// and t2 are unit outward tangents. insideHole reports whether a point
// lies on the hole rim or within the hole interior, used to bound
// control-point retraction.
func Synthesize(e1, t1, e2, t2 geometry.Point2D, insideHole func(geometry.Point2D) bool, cfg Config) (Connector, error) {
	result := geometry.DirectedLineIntersection(e1, e1.Add(t1), e2, e2.Add(t2))

	switch {
	case result.Kind == geometry.KindIntersect:
		seg, err := partCurveWithResult(e1, t1, e2, t2, result, cfg, insideHole)
		if err != nil {
			return Connector{}, err
		}
		return Connector{Segments: []geometry.Bezier{seg}}, nil

	case result.Kind == geometry.KindCoincidence:
		mid := geometry.LineIntersection{Kind: geometry.KindIntersect, Point: geometry.Midpoint(e1, e2)}
		seg, err := partCurveWithResult(e1, t1, e2, t2, mid, cfg, insideHole)
		if err != nil {
			return Connector{}, err
		}
		return Connector{Segments: []geometry.Bezier{seg}}, nil

	case result.Kind == geometry.KindParallel && t1.Dot(t2) >= 0:
		seg, err := partCurveWithResult(e1, t1, e2, t2, result, cfg, insideHole)
		if err != nil {
			return Connector{}, err
		}
		return Connector{Segments: []geometry.Bezier{seg}}, nil

	default:
		// Parallel + opposite direction, or Intersect-None: S-shape.
		return synthesizeSShape(e1, t1, e2, t2, cfg, insideHole)
	}
}

func synthesizeSShape(e1, t1, e2, t2 geometry.Point2D, cfg Config, insideHole func(geometry.Point2D) bool) (Connector, error) {
	mid := geometry.Midpoint(e1, e2)
	normal := geometry.RightHandUnitNormal(e1, e2)
	joinT1 := normal
	if normal.Dot(t1) < 0 {
		joinT1 = normal.Scale(-1)
	}
	joinT2 := joinT1.Scale(-1)

	seg1, err := partCurveNone(e1, t1, mid, joinT1, cfg, insideHole)
	if err != nil {
		return Connector{}, err
	}
	seg2, err := partCurveNone(mid, joinT2, e2, t2, cfg, insideHole)
	if err != nil {
		return Connector{}, err
	}
	return Connector{Segments: []geometry.Bezier{seg1, seg2}}, nil
}

// partCurveNone recomputes the intersection of (fromP,fromT) and
// (toP,toT) locally and dispatches to the Intersect or Parallel
// sub-case; a still-None or Coincidence result fails the pair.
func partCurveNone(fromP, fromT, toP, toT geometry.Point2D, cfg Config, insideHole func(geometry.Point2D) bool) (geometry.Bezier, error) {
	result := geometry.DirectedLineIntersection(fromP, fromP.Add(fromT), toP, toP.Add(toT))
	switch result.Kind {
	case geometry.KindIntersect, geometry.KindParallel:
		return partCurveWithResult(fromP, fromT, toP, toT, result, cfg, insideHole)
	default:
		return geometry.Bezier{}, ErrNoIntersection
	}
}

// partCurveWithResult chooses control points per the geometric case
// already classified in result, retracts each toward its base endpoint,
// and emits the resulting cubic segment.
func partCurveWithResult(fromP, fromT, toP, toT geometry.Point2D, result geometry.LineIntersection, cfg Config, insideHole func(geometry.Point2D) bool) (geometry.Bezier, error) {
	var c1, c2 geometry.Point2D

	switch result.Kind {
	case geometry.KindIntersect:
		x := result.Point
		l := 2 * fromP.Distance(toP)
		c1 = controlPointToward(fromP, fromT, x, l)
		c2 = controlPointToward(toP, toT, x, l)
	case geometry.KindParallel:
		c1 = fromP.Add(fromT)
		c2 = toP.Add(toT)
	case geometry.KindCoincidence:
		return geometry.Bezier{}, ErrCoincidencePartCurve
	default:
		return geometry.Bezier{}, ErrNoIntersection
	}

	c1 = geometry.RetractPoint(c1, fromP, cfg.ControlPointsRetractRatio, insideHole, maxRetractIters)
	c2 = geometry.RetractPoint(c2, toP, cfg.ControlPointsRetractRatio, insideHole, maxRetractIters)
	return geometry.Bezier{P0: fromP, C1: c1, C2: c2, P3: toP}, nil
}

// controlPointToward picks the control point for one side of an
// Intersect-case connector: the midpoint toward the shared intersection
// x when that midpoint is close enough, else a fixed-length step along
// the side's own tangent.
func controlPointToward(side, sideTangent, x geometry.Point2D, l float64) geometry.Point2D {
	if l > 0.5*side.Distance(x) {
		return geometry.Midpoint(side, x)
	}
	return side.Add(sideTangent.Scale(l))
}
