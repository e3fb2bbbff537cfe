package curve

import "shapefill/pkg/geometry"

// WeightedTailTangent estimates the outward tangent at the tail (last
// point) of path by walking backward up to TailTangentNumPoints steps,
// weighting later (closer to the tail) contributions more heavily via
// TailWeightMultiplier, and stopping early at a corner or once the
// accumulated length reaches baseLength.
func WeightedTailTangent(path []geometry.Point2D, corners []bool, cfg Config, baseLength float64) geometry.Point2D {
	var acc geometry.Point2D
	var length float64

	j := len(path) - 1
	consumed := 0
	for consumed < cfg.TailTangentNumPoints && j >= 1 {
		if corners[j] {
			break
		}
		from := path[j]
		to := path[j-1]
		acc = acc.Scale(cfg.TailWeightMultiplier)
		acc = acc.Add(to.Sub(from).Normalize())
		length += to.Distance(from)
		consumed++
		if length >= baseLength {
			break
		}
		j--
	}
	return acc.Normalize()
}

// CorrectTailTangents rebuilds any tangent that bends away from the
// opposite endpoint (a negative dot product with the endpoint-to-endpoint
// vector) into the side's right-hand normal, scaled to the endpoint
// separation and oriented to agree in sign with the original tangent.
func CorrectTailTangents(e1, t1, e2, t2 geometry.Point2D) (geometry.Point2D, geometry.Point2D) {
	return correctOneTangent(e1, t1, e2), correctOneTangent(e2, t2, e1)
}

func correctOneTangent(self, t, other geometry.Point2D) geometry.Point2D {
	v := other.Sub(self)
	if t.Dot(v) >= 0 {
		return t
	}
	normal := geometry.RightHandUnitNormal(self, other)
	if normal.Dot(t) < 0 {
		normal = normal.Scale(-1)
	}
	return normal.Scale(v.Length())
}
