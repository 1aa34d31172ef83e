package geom

// IsInTriangle reports whether p lies strictly inside the triangle abc. p is assumed to be on its plane.
func IsInTriangle(p, a, b, c Vector3) bool {
	ab, bc, ca := b.Sub(a), c.Sub(b), a.Sub(c)
	c1, c2, c3 := ab.Cross(p.Sub(a)), bc.Cross(p.Sub(b)), ca.Cross(p.Sub(c))
	return c1.Dot(c2) > 0 && c2.Dot(c3) > 0 && c3.Dot(c1) > 0
}

// polygonNormal uses Newell's method.
func polygonNormal(poly []Vector3) Vector3 {
	var n Vector3
	for i, v1 := range poly {
		v0 := poly[(i+len(poly)-1)%len(poly)]
		v2 := poly[(i+1)%len(poly)]
		n = n.Add(v0.Sub(v1).Cross(v2.Sub(v1)))
	}
	return n.Normalize()
}

// Triangulate splits a planar polygon into triangles by ear clipping.
// Indices refer to poly. Self-intersecting input falls back to a fan over the remaining vertices.
func Triangulate(poly []Vector3) [][3]int {
	var dst [][3]int
	if len(poly) < 3 {
		return dst
	}
	n := polygonNormal(poly)
	ii := make([]int, len(poly))
	for i := range ii {
		ii[i] = i
	}

	// O(N*N)...
	for len(ii) >= 3 {
		clipped := false
		for i := len(ii) - 1; i >= 0 && len(ii) >= 3; i-- {
			count := len(ii)
			i0, i1, i2 := ii[(i+count-1)%count], ii[i], ii[(i+1)%count]
			v0, v1, v2 := poly[i0], poly[i1], poly[i2]
			if v0.Sub(v1).Cross(v2.Sub(v1)).Dot(n) < 0 {
				// reflex vertex
				continue
			}
			rest := make([]int, 0, count-1)
			rest = append(rest, ii[:i]...)
			rest = append(rest, ii[i+1:]...)
			if containsAny(poly, rest, v0, v1, v2) {
				continue
			}
			dst = append(dst, [3]int{i0, i1, i2})
			ii = rest
			clipped = true
		}
		if !clipped {
			// maybe self-intersecting polygon
			for i := 0; i < len(ii)-2; i++ {
				dst = append(dst, [3]int{ii[0], ii[i+1], ii[i+2]})
			}
			break
		}
	}
	return dst
}

func containsAny(poly []Vector3, indices []int, a, b, c Vector3) bool {
	for _, i := range indices {
		if IsInTriangle(poly[i], a, b, c) {
			return true
		}
	}
	return false
}
