package curve

import "shapefill/pkg/geometry"

// SmoothOpenCurveIterative repeatedly applies SmoothStep, stopping early
// once a step inserts no new points or max_iters is reached.
func SmoothOpenCurveIterative(path []geometry.Point2D, cfg Config) ([]geometry.Point2D, []bool) {
	corners := geometry.FindCorners(path, cfg.CornerThreshold)
	if len(path) < 4 {
		return path, corners
	}
	for i := 0; i < cfg.SmoothMaxIterations; i++ {
		next, nextCorners, changed := smoothStep(path, corners, cfg)
		if !changed {
			break
		}
		path, corners = next, nextCorners
	}
	return path, corners
}

// smoothStep slides a 4-point window (with the last point duplicated so
// every interior segment is covered) across path, inserting a
// Dyn-Levin-subdivided point between non-corner, long-enough segments.
// changed is false iff no point was inserted.
func smoothStep(path []geometry.Point2D, corners []bool, cfg Config) ([]geometry.Point2D, []bool, bool) {
	n := len(path)
	working := make([]geometry.Point2D, 0, n+1)
	working = append(working, path...)
	working = append(working, path[n-1])

	workingCorners := make([]bool, 0, n+1)
	workingCorners = append(workingCorners, corners...)
	workingCorners = append(workingCorners, corners[n-1])

	newPath := []geometry.Point2D{path[0]}
	newCorners := []bool{corners[0]}
	changed := false

	for i := 0; i+3 < len(working); i++ {
		w0, w1, w2, w3 := working[i], working[i+1], working[i+2], working[i+3]
		newPath = append(newPath, w1)
		newCorners = append(newCorners, workingCorners[i+1])

		if workingCorners[i+1] || workingCorners[i+2] {
			continue
		}
		if w1.Distance(w2) < cfg.MinSegmentLength {
			continue
		}
		newPath = append(newPath, geometry.FourPointScheme(w1, w2, w0, w3, cfg.OutsetRatio))
		newCorners = append(newCorners, false)
		changed = true
	}

	newPath = append(newPath, path[n-1])
	newCorners = append(newCorners, corners[n-1])
	return newPath, newCorners, changed
}
