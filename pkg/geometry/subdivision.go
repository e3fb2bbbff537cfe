package geometry

// FourPointScheme computes the outsetted Dyn-Levin interpolatory
// subdivision point for the segment (p1, p2) flanked by its outer
// neighbors p_i, p_j. The new point is mid_out = mid(p_i, p_j) pushed
// further along the unit direction of v = mid_out - mid_in (mid_in being
// the segment midpoint) by |v|/outset.
func FourPointScheme(p1, p2, pi, pj Point2D, outset float64) Point2D {
	midOut := Midpoint(pi, pj)
	midIn := Midpoint(p1, p2)
	v := midOut.Sub(midIn)
	l := v.Length()
	if outset == 0 || l/outset < 1e-5 {
		return midOut
	}
	dir := v.Normalize()
	return midOut.Add(dir.Scale(l / outset))
}
