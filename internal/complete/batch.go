package complete

import (
	"fmt"

	"shapefill/internal/raster"
)

// CompleteShapeBatch runs CompleteShape once per hole against the same
// img, independently — no cross-hole interaction is specified, so each
// hole sees the same original image regardless of the others' results.
// It stops and returns the first stage error encountered, wrapped with
// the failing hole's index.
func CompleteShapeBatch(img raster.Image, holes []raster.HoleRect, cfg Config) ([]*raster.FilledHole, error) {
	out := make([]*raster.FilledHole, len(holes))
	for i, hole := range holes {
		filled, err := CompleteShape(img, hole, cfg)
		if err != nil {
			return out, fmt.Errorf("hole %d: %w", i, err)
		}
		out[i] = filled
	}
	return out, nil
}
