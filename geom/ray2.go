package geom

// Ray2 is the half-line Start + t*Dir, t >= 0.
type Ray2 struct {
	Start Vector2
	Dir   Vector2
}

type Ray2Hit struct {
	Point  Vector2
	Normal Vector2
	// Distance from Start to Point.
	Distance Element
}

func NewRay2(px, py, vx, vy Element) Ray2 {
	return Ray2{Start: Vector2{px, py}, Dir: Vector2{vx, vy}}
}

// NewRay2FromPoints returns a ray starting at start and passing through end.
func NewRay2FromPoints(start, end Vector2) Ray2 {
	return Ray2{Start: start, Dir: end.Sub(start)}
}

func (r Ray2) PointAt(t Element) Vector2 {
	return r.Start.Add(r.Dir.Scale(t))
}

// intersect returns the ray parameter t and the segment parameter u.
func (r Ray2) intersect(p1, p2 Vector2) (t, u Element, ok bool) {
	e := p2.Sub(p1)
	denom := r.Dir.Cross(e)
	if Abs(denom) <= Epsilon {
		return 0, 0, false
	}
	w := p1.Sub(r.Start)
	t = w.Cross(e) / denom
	u = w.Cross(r.Dir) / denom
	return t, u, true
}

// IntersectLineSegment returns the point where r crosses the segment p1-p2.
func (r Ray2) IntersectLineSegment(p1, p2 Vector2) (Vector2, bool) {
	t, u, ok := r.intersect(p1, p2)
	if !ok || t < 0 || u < 0 || u > 1 {
		return Vector2{}, false
	}
	return r.PointAt(t), true
}

// IntersectRay2 returns the point where both rays meet.
func (r Ray2) IntersectRay2(r2 Ray2) (Vector2, bool) {
	t, u, ok := r.intersect(r2.Start, r2.Start.Add(r2.Dir))
	if !ok || t < 0 || u < 0 {
		return Vector2{}, false
	}
	return r.PointAt(t), true
}

// edgeNormal returns the unit normal of p1-p2 pointing away from inside.
func edgeNormal(p1, p2, inside Vector2) Vector2 {
	e := p2.Sub(p1)
	n := Vector2{-e.Y, e.X}.Normalize()
	if inside.Sub(p1).Dot(n) > 0 {
		n = n.Scale(-1)
	}
	return n
}

// intersectPolygon tests every edge of a closed convex polygon and keeps the
// nearest hit on an edge that faces the ray.
func (r Ray2) intersectPolygon(points []Vector2) (Ray2Hit, bool) {
	var center Vector2
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Scale(1 / Element(len(points)))

	var hit Ray2Hit
	found := false
	for i, p1 := range points {
		p2 := points[(i+1)%len(points)]
		pt, ok := r.IntersectLineSegment(p1, p2)
		if !ok {
			continue
		}
		n := edgeNormal(p1, p2, center)
		if n.Dot(r.Dir) >= 0 {
			continue
		}
		d := pt.Distance(r.Start)
		if !found || d < hit.Distance {
			hit = Ray2Hit{Point: pt, Normal: n, Distance: d}
			found = true
		}
	}
	return hit, found
}

func (r Ray2) IntersectTriangle(p1, p2, p3 Vector2) (Ray2Hit, bool) {
	return r.intersectPolygon([]Vector2{p1, p2, p3})
}

// IntersectBox tests the quad p1-p2-p3-p4, given in winding order.
func (r Ray2) IntersectBox(p1, p2, p3, p4 Vector2) (Ray2Hit, bool) {
	return r.intersectPolygon([]Vector2{p1, p2, p3, p4})
}

func (r Ray2) IntersectAABB(b AABB2) (Ray2Hit, bool) {
	return r.IntersectBox(b.Min, Vector2{b.Max.X, b.Min.Y}, b.Max, Vector2{b.Min.X, b.Max.Y})
}

func (r Ray2) IntersectCircle(center Vector2, radius Element) (Ray2Hit, bool) {
	a := r.Dir.LenSqr()
	if a == 0 || radius <= 0 {
		return Ray2Hit{}, false
	}
	f := r.Start.Sub(center)
	b := 2 * r.Dir.Dot(f)
	c := f.LenSqr() - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return Ray2Hit{}, false
	}
	sq := sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
		if t < 0 {
			return Ray2Hit{}, false
		}
	}
	pt := r.PointAt(t)
	return Ray2Hit{
		Point:    pt,
		Normal:   pt.Sub(center).Scale(1 / radius),
		Distance: t * sqrt(a),
	}, true
}
