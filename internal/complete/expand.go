package complete

import (
	"errors"
	"fmt"

	"shapefill/internal/debugsink"
	"shapefill/internal/raster"
)

// ErrExpansionOutOfRange is wrapped into the joined error, once for each
// 1-pixel expansion of the hole rectangle that would leave the image
// bounds.
var ErrExpansionOutOfRange = errors.New("complete: hole expansion out of image bounds")

var expandDirections = [4]raster.Direction{
	raster.DirLeft, raster.DirTop, raster.DirRight, raster.DirBottom,
}

// CompleteShapeAndDrawExpandable first tries CompleteShapeAndDraw
// against hole as given. If that fails, it retries once per direction
// (left, top, right, bottom), growing the hole by one pixel and
// trimming the added column or row back off the result on success. If
// every attempt fails, it returns the joined set of every attempt's
// error.
func CompleteShapeAndDrawExpandable(img raster.Image, hole raster.HoleRect, cfg Config, sink debugsink.Sink) (*raster.FilledHole, error) {
	out, err := CompleteShapeAndDraw(img, hole, cfg, sink)
	if err == nil {
		return out, nil
	}
	errs := []error{fmt.Errorf("original rect: %w", err)}

	for _, dir := range expandDirections {
		expanded := hole.Expand(dir)
		if !expanded.WithinImage(img.Width(), img.Height()) {
			errs = append(errs, fmt.Errorf("expand %s: %w", dirName(dir), ErrExpansionOutOfRange))
			continue
		}

		out, err := CompleteShapeAndDraw(img, expanded, cfg, sink)
		if err != nil {
			errs = append(errs, fmt.Errorf("expand %s: %w", dirName(dir), err))
			continue
		}
		return out.Trim(dir), nil
	}

	return nil, errors.Join(errs...)
}

// CompleteShapeExpandable is CompleteShapeAndDrawExpandable with a
// no-op debug sink.
func CompleteShapeExpandable(img raster.Image, hole raster.HoleRect, cfg Config) (*raster.FilledHole, error) {
	return CompleteShapeAndDrawExpandable(img, hole, cfg, debugsink.Noop{})
}

func dirName(dir raster.Direction) string {
	switch dir {
	case raster.DirLeft:
		return "left"
	case raster.DirTop:
		return "top"
	case raster.DirRight:
		return "right"
	case raster.DirBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
