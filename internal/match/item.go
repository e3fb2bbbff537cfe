// Package match provides the matching substrate: match items, the
// square distance matrix, and the Hungarian minimum-sum assignment
// solver (spec.md §4.2).
package match

import "shapefill/pkg/geometry"

// Item is a (point, outward unit direction) pair derived from a
// segment's tail.
type Item struct {
	ID        int
	Point     geometry.Point2D
	Direction geometry.Point2D
}

// Set is an ordered collection of match items.
type Set []Item

// MeanUnitDirection returns the normalized sum of the set's unit
// directions, or the zero vector for an empty set. Exported as a
// standalone helper; DirectionalVariance, which the matcher's score
// uses, builds on it.
func MeanUnitDirection(items Set) geometry.Point2D {
	var sum geometry.Point2D
	for _, it := range items {
		sum = sum.Add(it.Direction.Normalize())
	}
	return sum.Normalize()
}

// DirectionalVariance scores how spread out a set's directions are
// around their mean, defined as 0 for a singleton set.
func DirectionalVariance(items Set) float64 {
	if len(items) <= 1 {
		return 0
	}
	mean := MeanUnitDirection(items)
	var sum float64
	for _, it := range items {
		sum += mean.Sub(it.Direction.Normalize()).Length()
	}
	return sum / float64(len(items)-1)
}

// Pair is one unordered pair of matched item ids.
type Pair struct {
	A, B int
}

// Matching is a perfect pairing of a match set's ids into len(items)/2
// unordered pairs.
type Matching []Pair

// Key returns a canonical, comparable representation of the matching
// (each pair ordered, pairs sorted), suitable as a map key for
// deduplicating matchings produced by different bipartitions.
func (m Matching) Key() string {
	pairs := make([]Pair, len(m))
	copy(pairs, m)
	for i := range pairs {
		if pairs[i].A > pairs[i].B {
			pairs[i].A, pairs[i].B = pairs[i].B, pairs[i].A
		}
	}
	// Simple O(n^2) insertion sort keeps this dependency-free; matchings
	// are small (n/2 pairs, n capped at 12).
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && less(pairs[j], pairs[j-1]); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
	key := make([]byte, 0, len(pairs)*8)
	for _, p := range pairs {
		key = appendInt(key, p.A)
		key = append(key, ':')
		key = appendInt(key, p.B)
		key = append(key, ',')
	}
	return string(key)
}

func less(a, b Pair) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
