package match

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSizeMismatch is returned when the two sides of a distance matrix
// are not equal-sized match sets.
var ErrSizeMismatch = errors.New("match: mismatched set sizes")

// costScale pre-multiplies f64 distances before truncation to integers,
// reducing rounding artifacts in near-tie assignments (spec.md §9).
const costScale = 1 << 16

// DistanceMatrix is a square matrix of Euclidean distances between two
// equally-sized match sets, backed by gonum's dense matrix storage.
type DistanceMatrix struct {
	n     int
	left  Set
	right Set
	m     *mat.Dense
}

// NewDistanceMatrix builds the n x n matrix M[i][j] = |a[i].Point - b[j].Point|.
func NewDistanceMatrix(a, b Set) (*DistanceMatrix, error) {
	if len(a) != len(b) {
		return nil, ErrSizeMismatch
	}
	n := len(a)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, a[i].Point.Distance(b[j].Point))
		}
	}
	return &DistanceMatrix{n: n, left: a, right: b, m: m}, nil
}

// Solve returns the minimum-sum perfect bipartite assignment between
// the left and right match sets, as a Matching of (left.ID, right.ID)
// pairs in left-row order.
func (d *DistanceMatrix) Solve() (Matching, error) {
	if d.n == 0 {
		return nil, nil
	}
	cost := make([][]int64, d.n)
	for i := 0; i < d.n; i++ {
		cost[i] = make([]int64, d.n)
		for j := 0; j < d.n; j++ {
			v := d.m.At(i, j) * costScale
			if v < 0 || math.IsNaN(v) {
				v = 0
			}
			cost[i][j] = int64(v)
		}
	}

	assignment, err := hungarian(cost)
	if err != nil {
		return nil, err
	}

	matching := make(Matching, d.n)
	for row, col := range assignment {
		matching[row] = Pair{A: d.left[row].ID, B: d.right[col].ID}
	}
	return matching, nil
}

// hungarian solves the square assignment problem via the classical
// O(n^3) Kuhn-Munkres algorithm with vertex potentials and shortest
// augmenting paths, returning, for each row, its assigned column.
func hungarian(cost [][]int64) ([]int, error) {
	n := len(cost)
	const inf = int64(1) << 62

	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1) // p[j] = row matched to column j (1-based), 0 = unmatched
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				return nil, errors.New("match: assignment has no feasible augmenting path")
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			assignment[p[j]-1] = j - 1
		}
	}
	return assignment, nil
}
