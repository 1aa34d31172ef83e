package geom

// Plane is a*x + b*y + c*z + d = 0.
type Plane struct {
	A Element
	B Element
	C Element
	D Element
}

type PointClassification int

const (
	PointInFrontOfPlane PointClassification = iota
	PointBehindPlane
	PointOnPlane
)

func NewPlane(a, b, c, d Element) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

func NewPlaneFromPointNormal(p, normal Vector3) Plane {
	return Plane{A: normal.X, B: normal.Y, C: normal.Z, D: -normal.Dot(p)}
}

// NewPlaneFromPoints returns the plane through three points, facing (p2-p1)x(p3-p1).
func NewPlaneFromPoints(p1, p2, p3 Vector3) Plane {
	n := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return NewPlaneFromPointNormal(p1, n)
}

// NewPlaneFromNormalAndDistance returns the plane containing normal*distance.
func NewPlaneFromNormalAndDistance(normal Vector3, distance Element) Plane {
	return Plane{A: normal.X, B: normal.Y, C: normal.Z, D: -distance}
}

func NewPlaneFromMatrix4(m Matrix4, p ClipPlane) Plane {
	return m.ExtractPlane(p)
}

func (p Plane) Normal() Vector3 {
	return Vector3{X: p.A, Y: p.B, Z: p.C}
}

func (p Plane) Dot(v Vector4) Element {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D*v.W
}

// DotCoord returns the signed distance of a point when p is normalized.
func (p Plane) DotCoord(v Vector3) Element {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

func (p Plane) DotNormal(v Vector3) Element {
	return p.A*v.X + p.B*v.Y + p.C*v.Z
}

func (p Plane) Scale(s Element) Plane {
	return Plane{A: p.A * s, B: p.B * s, C: p.C * s, D: p.D * s}
}

// Normalize scales p so that its normal has unit length. A zero normal is returned unchanged.
func (p Plane) Normalize() Plane {
	n, _ := p.TryNormalize()
	return n
}

func (p Plane) TryNormalize() (Plane, error) {
	l := p.Normal().Len()
	if l == 0 {
		return p, ErrDegenerate
	}
	return p.Scale(1 / l), nil
}

func (p Plane) ClassifyPoint(v Vector3) PointClassification {
	d := p.DotCoord(v)
	if d > Epsilon {
		return PointInFrontOfPlane
	}
	if d < -Epsilon {
		return PointBehindPlane
	}
	return PointOnPlane
}

// IntersectLine intersects p with the infinite line through v1 and v2.
func (p Plane) IntersectLine(v1, v2 Vector3) (Vector3, error) {
	dir := v2.Sub(v1)
	denom := p.DotNormal(dir)
	if Abs(denom) <= Epsilon {
		return Vector3{}, ErrNoIntersection
	}
	t := -p.DotCoord(v1) / denom
	return v1.Add(dir.Scale(t)), nil
}

// IntersectPlanes returns the single point shared by three planes.
func IntersectPlanes(p1, p2, p3 Plane) (Vector3, error) {
	n1, n2, n3 := p1.Normal(), p2.Normal(), p3.Normal()
	c23, c31, c12 := n2.Cross(n3), n3.Cross(n1), n1.Cross(n2)
	det := n1.Dot(c23)
	if Abs(det) <= Epsilon {
		return Vector3{}, ErrNoIntersection
	}
	r := c23.Scale(-p1.D).Add(c31.Scale(-p2.D)).Add(c12.Scale(-p3.D))
	return r.Scale(1 / det), nil
}
