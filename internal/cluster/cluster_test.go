package cluster

import (
	"testing"

	"shapefill/internal/raster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContoursFindsSquare(t *testing.T) {
	img := raster.NewBitImage(20, 20)
	for x := 5; x < 15; x++ {
		for y := 5; y < 15; y++ {
			img.Set(x, y, true)
		}
	}

	comps, err := Contours(img)
	require.NoError(t, err)
	require.NotEmpty(t, comps)
	assert.Greater(t, len(comps[0].Contour), minContourLength)
}

func TestContoursDropsSpecks(t *testing.T) {
	img := raster.NewBitImage(20, 20)
	img.Set(1, 1, true)

	comps, err := Contours(img)
	require.NoError(t, err)
	assert.Empty(t, comps)
}
