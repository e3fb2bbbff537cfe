// Package select picks the first matching (in score order) whose
// synthesized connectors are mutually non-crossing, retrying once with
// tail-tangent correction enabled if no matching succeeds outright
// (spec.md §4.8).
package selection

import (
	"errors"

	"shapefill/internal/curve"
	"shapefill/internal/match"
	"shapefill/internal/matcher"
	"shapefill/internal/walker"
	"shapefill/pkg/geometry"
)

// ErrNotIntrapolated is returned when every candidate matching fails to
// synthesize, or synthesizes but always self-crosses, on both the plain
// and tail-corrected passes.
var ErrNotIntrapolated = errors.New("select: no matching could be intrapolated")

// Connector pairs a matched endpoint pair with its synthesized curve.
type Connector struct {
	Pair  match.Pair
	Curve curve.Connector
}

// Result is the accepted matching and its connectors.
type Result struct {
	Matching   match.Matching
	Connectors []Connector
}

// Select tries each candidate matching in score order, synthesizing a
// connector per pair and rejecting the matching if any two connectors
// cross. If nothing succeeds, the whole search repeats once with
// tail-tangent correction enabled.
func Select(segments []walker.Segment, candidates []matcher.Scored, insideHole func(geometry.Point2D) bool, cfg curve.Config) (Result, error) {
	for _, correctTails := range []bool{false, true} {
		for _, c := range candidates {
			connectors, ok := trySynthesizeMatching(segments, c.Matching, insideHole, cfg, correctTails)
			if !ok {
				continue
			}
			if geometry.BezierCurvesIntersect(toSplines(connectors)) {
				continue
			}
			return Result{Matching: c.Matching, Connectors: connectors}, nil
		}
	}
	return Result{}, ErrNotIntrapolated
}

func trySynthesizeMatching(segments []walker.Segment, matching match.Matching, insideHole func(geometry.Point2D) bool, cfg curve.Config, correctTails bool) ([]Connector, bool) {
	connectors := make([]Connector, 0, len(matching))
	for _, pair := range matching {
		conn, ok := trySynthesizePair(segments, pair, insideHole, cfg, correctTails)
		if !ok {
			return nil, false
		}
		connectors = append(connectors, Connector{Pair: pair, Curve: conn})
	}
	return connectors, true
}

func trySynthesizePair(segments []walker.Segment, pair match.Pair, insideHole func(geometry.Point2D) bool, cfg curve.Config, correctTails bool) (curve.Connector, bool) {
	if pair.A < 0 || pair.A >= len(segments) || pair.B < 0 || pair.B >= len(segments) {
		return curve.Connector{}, false
	}

	pathA := orientTailLast(segments[pair.A].Points)
	pathB := orientTailLast(segments[pair.B].Points)
	if len(pathA) < 2 || len(pathB) < 2 {
		return curve.Connector{}, false
	}

	smoothA, cornersA := curve.SmoothOpenCurveIterative(pathA, cfg)
	smoothB, cornersB := curve.SmoothOpenCurveIterative(pathB, cfg)

	e1 := smoothA[len(smoothA)-1]
	e2 := smoothB[len(smoothB)-1]
	baseLength := e1.Distance(e2)

	t1 := curve.WeightedTailTangent(smoothA, cornersA, cfg, baseLength)
	t2 := curve.WeightedTailTangent(smoothB, cornersB, cfg, baseLength)
	if correctTails {
		t1, t2 = curve.CorrectTailTangents(e1, t1, e2, t2)
	}

	conn, err := curve.Synthesize(e1, t1, e2, t2, insideHole, cfg)
	if err != nil {
		return curve.Connector{}, false
	}
	return conn, true
}

// orientTailLast reverses a walker.Segment's points (tail at index 0)
// into the convention curve.SmoothOpenCurveIterative and
// curve.WeightedTailTangent expect: the tail as the last point.
func orientTailLast(points []geometry.Point2D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func toSplines(connectors []Connector) [][]geometry.Bezier {
	out := make([][]geometry.Bezier, len(connectors))
	for i, c := range connectors {
		out[i] = c.Curve.Segments
	}
	return out
}
