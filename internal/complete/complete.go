package complete

import (
	"fmt"

	"shapefill/internal/cluster"
	"shapefill/internal/curve"
	"shapefill/internal/debugsink"
	"shapefill/internal/filler"
	"shapefill/internal/matcher"
	"shapefill/internal/matchset"
	"shapefill/internal/raster"
	selection "shapefill/internal/select"
	"shapefill/internal/walker"
	"shapefill/pkg/geometry"
)

// CompleteShape runs the full pipeline against img with hole erased,
// returning the reconstructed interior. Equivalent to
// CompleteShapeAndDraw with a no-op debug sink.
func CompleteShape(img raster.Image, hole raster.HoleRect, cfg Config) (*raster.FilledHole, error) {
	return CompleteShapeAndDraw(img, hole, cfg, debugsink.Noop{})
}

// CompleteShapeAndDraw runs the full pipeline, additionally feeding the
// simplified segments (if ShouldDrawSimplified), the connector splines
// (if ShouldDrawSmoothed or ShouldDrawControlPoints), their control
// points (if ShouldDrawControlPoints), and the final filled hole through
// sink. The smoothed segment paths and tail tangents are not drawn.
func CompleteShapeAndDraw(img raster.Image, hole raster.HoleRect, cfg Config, sink debugsink.Sink) (*raster.FilledHole, error) {
	if sink == nil {
		sink = debugsink.Noop{}
	}

	erased := erasedView{Image: img, hole: hole}

	components, err := cluster.Contours(erased)
	if err != nil {
		return nil, fmt.Errorf("cluster contours: %w", err)
	}

	segments, err := walker.ExtractSegments(components, hole, cfg.SimplifyTolerance)
	if err != nil {
		return nil, fmt.Errorf("extract segments: %w", err)
	}

	if sink.ShouldDrawSimplified() {
		for i, seg := range segments {
			sink.DrawPath(fmt.Sprintf("segment-%d", i), seg.Points)
		}
	}

	if len(segments) == 0 {
		return raster.NewFilledHole(hole.Width(), hole.Height()), nil
	}

	items := matchset.Build(segments)

	candidates, err := matcher.Enumerate(items, cfg.MaxBipartitions)
	if err != nil {
		return nil, fmt.Errorf("enumerate matchings: %w", err)
	}

	result, err := selection.Select(segments, candidates, insideHole(hole), cfg.Curve)
	if err != nil {
		return nil, fmt.Errorf("select connectors: %w", err)
	}

	connectors := make([]curve.Connector, len(result.Connectors))
	for i, c := range result.Connectors {
		connectors[i] = c.Curve
	}

	if sink.ShouldDrawSmoothed() || sink.ShouldDrawControlPoints() {
		for _, conn := range connectors {
			for _, seg := range conn.Segments {
				sink.DrawSpline("connector", seg)
				if sink.ShouldDrawControlPoints() {
					sink.DrawCross("control", seg.C1)
					sink.DrawCross("control", seg.C2)
				}
			}
		}
	}

	out := filler.Fill(hole, img, connectors)
	sink.DrawFilledHole(hole, out)
	return out, nil
}

// insideHole builds the predicate curve.Synthesize needs to bound
// control-point retraction: true for any point on the rim or within the
// hole's interior.
func insideHole(hole raster.HoleRect) func(geometry.Point2D) bool {
	return func(p geometry.Point2D) bool {
		x, y := int(p.X+0.5), int(p.Y+0.5)
		return hole.Contains(x, y) || hole.OnRim(x, y)
	}
}

// erasedView wraps an arbitrary raster.Image, reporting background for
// every pixel inside hole regardless of the wrapped image's own
// content, the erasure precondition spec.md's entry points assume.
type erasedView struct {
	raster.Image
	hole raster.HoleRect
}

func (e erasedView) IsForeground(x, y int) bool {
	if e.hole.Contains(x, y) {
		return false
	}
	return e.Image.IsForeground(x, y)
}
