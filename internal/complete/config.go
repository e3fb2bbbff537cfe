// Package complete coordinates the full pipeline — clustering, segment
// walking, matching, connector synthesis, and hole filling — into the
// single entry points a caller uses to repair one rectangular hole
// (spec.md §4.10).
package complete

import (
	"math"

	"shapefill/internal/curve"
	"shapefill/internal/matcher"
)

// Config composes every stage's tunables plus the coordinator's own
// combinatorial safety valve.
type Config struct {
	// SimplifyTolerance is the RDP epsilon applied to each walked
	// segment before matching.
	SimplifyTolerance float64

	// Curve holds the smoothing/tangent/connector tunables.
	Curve curve.Config

	// MaxBipartitions bounds internal/matcher.Enumerate's combinatorial
	// search before it gives up rather than stalling on a busy hole.
	MaxBipartitions int
}

// DefaultConfig returns the tunables listed in spec.md's external
// interface configuration table.
func DefaultConfig() Config {
	return Config{
		SimplifyTolerance: 2.0,
		Curve:             curve.DefaultConfig(),
		MaxBipartitions:   matcher.DefaultMaxBipartitions,
	}
}

// WithCornerThresholdDegrees sets Curve.CornerThreshold from a degree
// value, the convenience constructor the original completor config
// exposes alongside its radian field.
func (c Config) WithCornerThresholdDegrees(d float64) Config {
	c.Curve.CornerThreshold = d * math.Pi / 180
	return c
}
