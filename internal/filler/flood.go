package filler

import (
	"shapefill/internal/raster"
	"shapefill/pkg/geometry"
)

// floodTexture scans the hole's rim in a fixed winding order, finds each
// maximal arc between two connector endpoints, and — for arcs whose
// majority of rim points border foreground outside the hole — seeds a
// bounded 4-connected flood fill that paints Blank cells Texture.
func floodTexture(out *raster.FilledHole, hole raster.HoleRect, outside raster.Image, endpoints []geometry.Point2D) {
	width, height := out.Width, out.Height
	if width < 2 || height < 2 || len(endpoints) == 0 {
		return
	}

	rim := enumerateRim(width, height)
	boundaries := endpointRimIndices(rim, hole, endpoints)
	if len(boundaries) < 2 {
		return
	}

	n := len(boundaries)
	rimLen := len(rim)
	for i := 0; i < n; i++ {
		start := boundaries[i]
		end := boundaries[(i+1)%n]

		interior := arcInterior(start, end, rimLen)
		if len(interior) == 0 {
			continue
		}

		filled := 0
		for _, idx := range interior {
			if outsideIsForeground(out, hole, outside, rim[idx]) {
				filled++
			}
		}
		if filled < len(interior)/2 {
			continue
		}

		for _, frac := range [...]float64{0.25, 0.5, 0.75} {
			offset := clampInt(int(frac*float64(len(interior))), 0, len(interior)-1)
			seed := insideNeighbor(rim[interior[offset]], width, height)
			floodFillFrom(out, seed)
		}
	}
}

// enumerateRim returns the hole's border cells in a single clockwise
// loop starting at the top-left corner: across the top, down the right
// side, back across the bottom, up the left side.
func enumerateRim(width, height int) []geometry.PointInt {
	var pts []geometry.PointInt
	for x := 0; x < width; x++ {
		pts = append(pts, geometry.PointInt{X: x, Y: 0})
	}
	for y := 1; y < height; y++ {
		pts = append(pts, geometry.PointInt{X: width - 1, Y: y})
	}
	for x := width - 2; x >= 0; x-- {
		pts = append(pts, geometry.PointInt{X: x, Y: height - 1})
	}
	for y := height - 2; y >= 1; y-- {
		pts = append(pts, geometry.PointInt{X: 0, Y: y})
	}
	return pts
}

// endpointRimIndices maps each snapped connector endpoint (in image
// coordinates) to its nearest index in rim (local coordinates),
// deduplicated and sorted ascending, with the smallest index rotated to
// the front so the walk starts from "the first endpoint" in winding
// order.
func endpointRimIndices(rim []geometry.PointInt, hole raster.HoleRect, endpoints []geometry.Point2D) []int {
	seen := make(map[int]bool)
	var indices []int
	for _, e := range endpoints {
		localX := int(e.X+0.5) - hole.Left
		localY := int(e.Y+0.5) - hole.Top
		idx := nearestRimIndex(rim, localX, localY)
		if idx < 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	insertionSort(indices)
	return indices
}

func nearestRimIndex(rim []geometry.PointInt, x, y int) int {
	best := -1
	bestDist := 1 << 30
	for i, p := range rim {
		dx, dy := p.X-x, p.Y-y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// arcInterior returns the rim indices strictly between start and end,
// walking forward (increasing index, wrapping modulo rimLen).
func arcInterior(start, end, rimLen int) []int {
	var interior []int
	for i := (start + 1) % rimLen; i != end; i = (i + 1) % rimLen {
		interior = append(interior, i)
	}
	return interior
}

// outsideIsForeground reports whether the image pixel just outside the
// hole, adjacent to the given rim cell, is foreground.
func outsideIsForeground(out *raster.FilledHole, hole raster.HoleRect, outside raster.Image, p geometry.PointInt) bool {
	gx, gy := outsideNeighborGlobal(hole, p, out.Width, out.Height)
	return outside.IsForeground(gx, gy)
}

func outsideNeighborGlobal(hole raster.HoleRect, p geometry.PointInt, width, height int) (int, int) {
	switch {
	case p.Y == 0:
		return hole.Left + p.X, hole.Top - 1
	case p.Y == height-1:
		return hole.Left + p.X, hole.Bottom
	case p.X == 0:
		return hole.Left - 1, hole.Top + p.Y
	default:
		return hole.Right, hole.Top + p.Y
	}
}

// insideNeighbor returns the rim cell's nearest interior neighbor, in
// the hole's local coordinate frame, to use as a flood-fill seed.
func insideNeighbor(p geometry.PointInt, width, height int) geometry.PointInt {
	switch {
	case p.Y == 0:
		return geometry.PointInt{X: p.X, Y: p.Y + 1}
	case p.Y == height-1:
		return geometry.PointInt{X: p.X, Y: p.Y - 1}
	case p.X == 0:
		return geometry.PointInt{X: p.X + 1, Y: p.Y}
	default:
		return geometry.PointInt{X: p.X - 1, Y: p.Y}
	}
}

// floodFillFrom performs a bounded 4-connected BFS from seed, painting
// Blank cells Texture and stopping at Structure or the matrix edge.
// Depth is capped at width*height to rule out runaway growth.
func floodFillFrom(out *raster.FilledHole, seed geometry.PointInt) {
	width, height := out.Width, out.Height
	if seed.X < 0 || seed.Y < 0 || seed.X >= width || seed.Y >= height {
		return
	}
	if out.At(seed.X, seed.Y) != raster.Blank {
		return
	}

	maxVisits := width * height
	queue := []geometry.PointInt{seed}
	visited := make(map[geometry.PointInt]bool)
	visited[seed] = true
	out.Set(seed.X, seed.Y, raster.Texture)

	visits := 0
	for len(queue) > 0 && visits < maxVisits {
		cur := queue[0]
		queue = queue[1:]
		visits++

		for _, d := range [...]geometry.PointInt{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			next := geometry.PointInt{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < 0 || next.Y < 0 || next.X >= width || next.Y >= height {
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			if out.At(next.X, next.Y) != raster.Blank {
				continue
			}
			out.Set(next.X, next.Y, raster.Texture)
			queue = append(queue, next)
		}
	}
}
