package matcher

import (
	"testing"

	"shapefill/internal/match"
	"shapefill/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds four outward-pointing endpoints at the corners of a
// square, so the bipartition that puts the two left-facing corners on
// one side and the two right-facing corners on the other (zero
// directional variance per side) should score better than the other
// splits.
func square() match.Set {
	return match.Set{
		{ID: 0, Point: geometry.Point2D{X: 0, Y: 0}, Direction: geometry.Point2D{X: -1, Y: 0}},
		{ID: 1, Point: geometry.Point2D{X: 10, Y: 0}, Direction: geometry.Point2D{X: 1, Y: 0}},
		{ID: 2, Point: geometry.Point2D{X: 10, Y: 10}, Direction: geometry.Point2D{X: 1, Y: 0}},
		{ID: 3, Point: geometry.Point2D{X: 0, Y: 10}, Direction: geometry.Point2D{X: -1, Y: 0}},
	}
}

func TestEnumerateFindsLowVarianceBipartitionFirst(t *testing.T) {
	scored, err := Enumerate(square(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, scored)

	best := scored[0]
	assert.Equal(t, 0.0, best.Score)
	for _, s := range scored {
		assert.GreaterOrEqual(t, s.Score, best.Score)
	}
}

func TestEnumerateRejectsOddItemCount(t *testing.T) {
	items := match.Set{
		{ID: 0, Point: geometry.Point2D{}, Direction: geometry.Point2D{X: 1}},
		{ID: 1, Point: geometry.Point2D{}, Direction: geometry.Point2D{X: 1}},
		{ID: 2, Point: geometry.Point2D{}, Direction: geometry.Point2D{X: 1}},
	}
	_, err := Enumerate(items, 0)
	assert.ErrorIs(t, err, ErrOddItemCount)
}

func TestEnumerateEmptySetReturnsNil(t *testing.T) {
	scored, err := Enumerate(nil, 0)
	require.NoError(t, err)
	assert.Nil(t, scored)
}

func TestEnumerateDeduplicatesMatchingsKeepingMinScore(t *testing.T) {
	scored, err := Enumerate(square(), 0)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, s := range scored {
		key := s.Matching.Key()
		assert.False(t, seen[key], "matching %v reported more than once", s.Matching)
		seen[key] = true
	}
}

func TestEnumerateRejectsBudgetOverflow(t *testing.T) {
	items := square()
	_, err := Enumerate(items, 1)
	assert.ErrorIs(t, err, ErrTooManyBipartitions)
}
