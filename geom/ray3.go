package geom

import "github.com/chewxy/math32"

// Ray3 is the half-line Start + t*Dir, t >= 0.
type Ray3 struct {
	Start Vector3
	Dir   Vector3
}

type Ray3Hit struct {
	Point  Vector3
	Normal Vector3
	// Distance from Start to Point.
	Distance Element
}

func NewRay3(px, py, pz, vx, vy, vz Element) Ray3 {
	return Ray3{Start: Vector3{px, py, pz}, Dir: Vector3{vx, vy, vz}}
}

func NewRay3FromPoints(start, end Vector3) Ray3 {
	return Ray3{Start: start, Dir: end.Sub(start)}
}

func (r Ray3) PointAt(t Element) Vector3 {
	return r.Start.Add(r.Dir.Scale(t))
}

// Transform returns r in the space of m.
func (r Ray3) Transform(m Matrix4) Ray3 {
	return Ray3{Start: m.ApplyTo(r.Start), Dir: r.Dir.TransformNormal(m)}
}

// IntersectPlane hits planes from either side. The hit normal is the normalized plane normal.
// Parallelism is judged on the angle between Dir and the normal, so Dir may have any length.
func (r Ray3) IntersectPlane(p Plane) (Ray3Hit, bool) {
	denom := p.DotNormal(r.Dir)
	if Abs(denom) <= Epsilon*r.Dir.Len()*p.Normal().Len() {
		return Ray3Hit{}, false
	}
	t := -p.DotCoord(r.Start) / denom
	if t < 0 {
		return Ray3Hit{}, false
	}
	return Ray3Hit{
		Point:    r.PointAt(t),
		Normal:   p.Normal().Normalize(),
		Distance: t * r.Dir.Len(),
	}, true
}

// IntersectTriangle is the Moller-Trumbore test. Triangles are one-sided:
// the front face is counter-clockwise when seen from the ray.
func (r Ray3) IntersectTriangle(v0, v1, v2 Vector3) (Ray3Hit, bool) {
	e1, e2 := v1.Sub(v0), v2.Sub(v0)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if det < Epsilon*Epsilon {
		return Ray3Hit{}, false
	}
	inv := 1 / det
	s := r.Start.Sub(v0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return Ray3Hit{}, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return Ray3Hit{}, false
	}
	t := e2.Dot(q) * inv
	if t <= Epsilon {
		return Ray3Hit{}, false
	}
	return Ray3Hit{
		Point:    r.PointAt(t),
		Normal:   e1.Cross(e2).Normalize(),
		Distance: t * r.Dir.Len(),
	}, true
}

// IntersectAABB is a slab test. A ray starting inside b hits at Start with a zero normal.
func (r Ray3) IntersectAABB(b AABB3) (Ray3Hit, bool) {
	start := r.Start.Array()
	dir := r.Dir.Array()
	lo, hi := b.Min.Array(), b.Max.Array()

	tmin, tmax := Element(0), Element(math32.MaxFloat32)
	axis, sign := -1, Element(0)
	for i := 0; i < 3; i++ {
		if Abs(dir[i]) < Epsilon*Epsilon {
			if start[i] < lo[i] || start[i] > hi[i] {
				return Ray3Hit{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1, t2 := (lo[i]-start[i])*inv, (hi[i]-start[i])*inv
		s := Element(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tmin {
			tmin, axis, sign = t1, i, s
		}
		tmax = Min(tmax, t2)
		if tmin > tmax {
			return Ray3Hit{}, false
		}
	}

	var n [3]Element
	if axis >= 0 {
		n[axis] = sign
	}
	return Ray3Hit{
		Point:    r.PointAt(tmin),
		Normal:   NewVector3FromArray(n),
		Distance: tmin * r.Dir.Len(),
	}, true
}
