package matchset

import (
	"testing"

	"shapefill/internal/walker"
	"shapefill/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOutwardDirection(t *testing.T) {
	segs := []walker.Segment{
		{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 0, Y: 10}}},
	}
	items := Build(segs)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].ID)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, items[0].Point)
	assert.InDelta(t, 0, items[0].Direction.X, 1e-9)
	assert.InDelta(t, -1, items[0].Direction.Y, 1e-9)
}

func TestBuildAssignsSequentialIDs(t *testing.T) {
	segs := []walker.Segment{
		{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Points: []geometry.Point2D{{X: 10, Y: 0}, {X: 9, Y: 0}}},
	}
	items := Build(segs)
	assert.Equal(t, []int{0, 1}, []int{items[0].ID, items[1].ID})
}
