// Package debugsink defines the optional, injectable drawing/trace
// capability the coordinator calls into during CompleteShapeAndDraw
// (spec.md §6), ported from the original Rust implementation's
// Debugger trait to a Go interface.
package debugsink

import (
	"shapefill/internal/raster"
	"shapefill/pkg/geometry"
)

// Sink receives primitive draw calls and structured log lines from
// inside the pipeline stages. Every "ShouldDraw*" query lets a stage
// skip building a primitive's arguments when the sink won't use them.
type Sink interface {
	ShouldDrawSimplified() bool
	ShouldDrawSmoothed() bool
	ShouldDrawControlPoints() bool
	ShouldDrawTailTangents() bool

	DrawPath(label string, path []geometry.Point2D)
	DrawCross(label string, center geometry.Point2D)
	DrawSpline(label string, curve geometry.Bezier)
	DrawFilledHole(hole raster.HoleRect, filled *raster.FilledHole)

	Logf(format string, args ...any)
}

// Noop is the zero-cost default Sink: every ShouldDraw* query is false
// and every draw/log call is a no-op.
type Noop struct{}

func (Noop) ShouldDrawSimplified() bool     { return false }
func (Noop) ShouldDrawSmoothed() bool       { return false }
func (Noop) ShouldDrawControlPoints() bool  { return false }
func (Noop) ShouldDrawTailTangents() bool   { return false }
func (Noop) DrawPath(string, []geometry.Point2D)             {}
func (Noop) DrawCross(string, geometry.Point2D)              {}
func (Noop) DrawSpline(string, geometry.Bezier)              {}
func (Noop) DrawFilledHole(raster.HoleRect, *raster.FilledHole) {}
func (Noop) Logf(string, ...any)                             {}

var _ Sink = Noop{}
