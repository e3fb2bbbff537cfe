package complete

import (
	"errors"
	"math"
	"testing"

	"shapefill/internal/matcher"
	"shapefill/internal/raster"
	selection "shapefill/internal/select"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// horizontalBar builds spec.md §8 scenario 1: a 100x100 image with a
// horizontal bar y in [40,50), x in [0,100), hole rect (40,30,20,30).
func horizontalBar() (*raster.BitImage, raster.HoleRect) {
	img := raster.NewBitImage(100, 100)
	for x := 0; x < 100; x++ {
		for y := 40; y < 50; y++ {
			img.Set(x, y, true)
		}
	}
	hole := raster.NewHoleRect(40, 30, 20, 30)
	return img, hole
}

// disk builds spec.md §8 scenario 2: a radius-20 disk centered at
// (50,50) on a 100x100 canvas, with a hole sized so the disk's boundary
// crosses each of the hole's four edges twice, near its ends, rather than
// swallowing the hole whole or missing it — the hole's half-width (15)
// is smaller than the disk radius (20), which in turn is smaller than
// the hole's half-diagonal (~21.2).
func disk() (*raster.BitImage, raster.HoleRect) {
	img := raster.NewBitImage(100, 100)
	for x := 0; x < 100; x++ {
		for y := 0; y < 100; y++ {
			dx, dy := float64(x-50), float64(y-50)
			if math.Sqrt(dx*dx+dy*dy) <= 20 {
				img.Set(x, y, true)
			}
		}
	}
	hole := raster.NewHoleRect(35, 35, 30, 30)
	return img, hole
}

// crossingX builds spec.md §8 scenario 3: two crossing thick lines on a
// 100x100 canvas, hole rect centered on the crossing.
func crossingX() (*raster.BitImage, raster.HoleRect) {
	img := raster.NewBitImage(100, 100)
	thickLine := func(x0, y0, x1, y1 float64) {
		steps := 200
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			cx := x0 + (x1-x0)*t
			cy := y0 + (y1-y0)*t
			for ox := -1; ox <= 1; ox++ {
				for oy := -1; oy <= 1; oy++ {
					img.Set(int(cx)+ox, int(cy)+oy, true)
				}
			}
		}
	}
	thickLine(10, 10, 90, 90)
	thickLine(10, 90, 90, 10)
	hole := raster.NewHoleRect(40, 40, 20, 20)
	return img, hole
}

func TestCompleteShapeHorizontalBar(t *testing.T) {
	img, hole := horizontalBar()
	out, err := CompleteShape(img, hole, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, hole.Width(), out.Width)
	assert.Equal(t, hole.Height(), out.Height)

	hasStructure, hasTexture := false, false
	for _, c := range out.Cells {
		switch c {
		case raster.Structure:
			hasStructure = true
		case raster.Texture:
			hasTexture = true
		}
	}
	assert.True(t, hasStructure, "expected the bar to rasterize into STRUCTURE pixels")
	assert.True(t, hasTexture, "expected the band between the bar's edges to flood TEXTURE")
}

// TestCompleteShapeDisk exercises spec.md §8 scenario 2. The disk's
// boundary crosses each hole edge twice, giving eight endpoints; as with
// scenario 3, the global consistency check may legitimately reject every
// candidate pairing in favor of ErrNotIntrapolated. Both a successful
// reconstruction and that documented failure are acceptable.
func TestCompleteShapeDisk(t *testing.T) {
	img, hole := disk()
	out, err := CompleteShape(img, hole, DefaultConfig())
	if err != nil {
		assert.ErrorIs(t, err, selection.ErrNotIntrapolated)
		return
	}
	require.NotNil(t, out)

	found := false
	for _, c := range out.Cells {
		if c != raster.Blank {
			found = true
			break
		}
	}
	assert.True(t, found, "expected the disk's interior to reconstruct into non-BLANK cells")
}

// TestCompleteShapeCrossingX exercises spec.md §8 scenario 3. The
// diametric pairing that exactly reconstructs the X necessarily crosses
// itself at the center, which the global consistency check (spec.md
// §4.8, "reject a matching if any two synthesized splines cross") may
// legitimately refuse in favor of ErrNotIntrapolated when no
// non-crossing pairing of the four endpoints exists — both a successful
// reconstruction and that documented failure are acceptable outcomes
// here; any other error is not.
func TestCompleteShapeCrossingX(t *testing.T) {
	img, hole := crossingX()
	out, err := CompleteShape(img, hole, DefaultConfig())
	if err != nil {
		assert.ErrorIs(t, err, selection.ErrNotIntrapolated)
		return
	}
	require.NotNil(t, out)

	hasStructure := false
	for _, c := range out.Cells {
		if c == raster.Structure {
			hasStructure = true
			break
		}
	}
	assert.True(t, hasStructure, "expected the crossing lines to rasterize into STRUCTURE pixels")
}

func TestCompleteShapeEmptyHoleAllBlank(t *testing.T) {
	img := raster.NewBitImage(100, 100)
	hole := raster.NewHoleRect(40, 40, 20, 20)

	out, err := CompleteShape(img, hole, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, out)
	for _, c := range out.Cells {
		assert.Equal(t, raster.Blank, c)
	}
}

// TestCompleteShapeBipartitionBudgetWrapsStageError exercises the
// coordinator's fmt.Errorf("stage: %w", err) wrapping: the disk scenario
// has eight endpoints (35 distinct bipartitions), so a MaxBipartitions
// budget of 1 must surface matcher.ErrTooManyBipartitions wrapped through
// CompleteShape.
func TestCompleteShapeBipartitionBudgetWrapsStageError(t *testing.T) {
	img, hole := disk()
	cfg := DefaultConfig()
	cfg.MaxBipartitions = 1

	_, err := CompleteShape(img, hole, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrTooManyBipartitions)
}

func TestCompleteShapeAndDrawExpandableAggregatesErrors(t *testing.T) {
	img, hole := disk()
	cfg := DefaultConfig()
	cfg.MaxBipartitions = 1 // forces every attempt, original and all four expansions, to fail identically

	_, err := CompleteShapeExpandable(img, hole, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrTooManyBipartitions)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined), "expected an errors.Join aggregate")
	assert.GreaterOrEqual(t, len(joined.Unwrap()), 2, "expected the original attempt plus at least one expansion attempt")
}

func TestCompleteShapeAndDrawExpandableSucceedsWithoutRetryWhenPlainCallWorks(t *testing.T) {
	img, hole := horizontalBar()
	out, err := CompleteShapeExpandable(img, hole, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, hole.Width(), out.Width)
	assert.Equal(t, hole.Height(), out.Height)
}

func TestCompleteShapeBatchRunsEachHoleIndependently(t *testing.T) {
	img, hole1 := horizontalBar()
	hole2 := raster.NewHoleRect(70, 70, 10, 10) // far from the bar: no crossing segments

	out, err := CompleteShapeBatch(img, []raster.HoleRect{hole1, hole2}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, out, 2)

	hasStructure := false
	for _, c := range out[0].Cells {
		if c == raster.Structure {
			hasStructure = true
		}
	}
	assert.True(t, hasStructure)

	for _, c := range out[1].Cells {
		assert.Equal(t, raster.Blank, c)
	}
}

func TestCompleteShapeBatchStopsAtFirstFailure(t *testing.T) {
	img, hole1 := disk()
	cfg := DefaultConfig()
	cfg.MaxBipartitions = 1

	out, err := CompleteShapeBatch(img, []raster.HoleRect{hole1}, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, matcher.ErrTooManyBipartitions)
	require.Len(t, out, 1)
	assert.Nil(t, out[0])
}
