package geom

// Containment is the result of testing one box against another.
type Containment int

const (
	ContainsNone Containment = iota
	ContainsPartial
	ContainsAll
)

type AABB3 struct {
	Min Vector3
	Max Vector3
}

// NewAABB3 returns a box of the given extents centered on center.
func NewAABB3(center Vector3, width, height, depth Element) AABB3 {
	h := Vector3{width / 2, height / 2, depth / 2}
	return AABB3{Min: center.Sub(h), Max: center.Add(h)}
}

// NewAABB3FromPoints returns the smallest box holding all points.
func NewAABB3FromPoints(points ...Vector3) AABB3 {
	if len(points) == 0 {
		return AABB3{}
	}
	b := AABB3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExpandToPoint(p)
	}
	return b
}

// Sanitize swaps bounds so that Min <= Max on every axis.
func (b AABB3) Sanitize() AABB3 {
	if b.Min.X > b.Max.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Min.Y > b.Max.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	if b.Min.Z > b.Max.Z {
		b.Min.Z, b.Max.Z = b.Max.Z, b.Min.Z
	}
	return b
}

// ContainsPoint reports whether p is inside b or on its boundary.
func (b AABB3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b AABB3) ContainsAABB(other AABB3) Containment {
	if !b.IntersectsAABB(other) {
		return ContainsNone
	}
	for _, c := range other.Corners() {
		if !b.ContainsPoint(c) {
			return ContainsPartial
		}
	}
	return ContainsAll
}

// Contains reports whether other lies entirely inside b.
func (b AABB3) Contains(other AABB3) bool {
	return b.ContainsAABB(other) == ContainsAll
}

func (b AABB3) IntersectsAABB(other AABB3) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// IntersectsTriangle runs a separating axis test against the triangle (p1, p2, p3).
func (b AABB3) IntersectsTriangle(p1, p2, p3 Vector3) bool {
	c := b.Center()
	h := b.Max.Sub(b.Min).Scale(0.5)
	v := [3]Vector3{p1.Sub(c), p2.Sub(c), p3.Sub(c)}
	e := [3]Vector3{v[1].Sub(v[0]), v[2].Sub(v[1]), v[0].Sub(v[2])}

	separated := func(axis Vector3) bool {
		if axis.LenSqr() < Epsilon*Epsilon {
			// parallel edges give no axis
			return false
		}
		d0, d1, d2 := v[0].Dot(axis), v[1].Dot(axis), v[2].Dot(axis)
		r := h.X*Abs(axis.X) + h.Y*Abs(axis.Y) + h.Z*Abs(axis.Z)
		return Max(d0, Max(d1, d2)) < -r || Min(d0, Min(d1, d2)) > r
	}

	boxAxes := [3]Vector3{Vector3PosX, Vector3PosY, Vector3PosZ}
	for _, a := range boxAxes {
		if separated(a) {
			return false
		}
	}
	if separated(e[0].Cross(e[1])) {
		return false
	}
	for _, a := range boxAxes {
		for _, ed := range e {
			if separated(a.Cross(ed)) {
				return false
			}
		}
	}
	return true
}

func (b AABB3) DiameterX() Element {
	return Abs(b.Max.X - b.Min.X)
}

func (b AABB3) DiameterY() Element {
	return Abs(b.Max.Y - b.Min.Y)
}

func (b AABB3) DiameterZ() Element {
	return Abs(b.Max.Z - b.Min.Z)
}

func (b AABB3) Size() Vector3 {
	return Vector3{b.DiameterX(), b.DiameterY(), b.DiameterZ()}
}

func (b AABB3) Center() Vector3 {
	return b.Min.MidPoint(b.Max)
}

// Scale scales b uniformly about its center.
func (b AABB3) Scale(s Element) AABB3 {
	c := b.Center()
	h := b.Max.Sub(c).Scale(s)
	return AABB3{Min: c.Sub(h), Max: c.Add(h)}
}

func (b AABB3) ExpandToContain(other AABB3) AABB3 {
	return AABB3{
		Min: Vector3{Min(b.Min.X, other.Min.X), Min(b.Min.Y, other.Min.Y), Min(b.Min.Z, other.Min.Z)},
		Max: Vector3{Max(b.Max.X, other.Max.X), Max(b.Max.Y, other.Max.Y), Max(b.Max.Z, other.Max.Z)},
	}
}

func (b AABB3) ExpandToPoint(p Vector3) AABB3 {
	return b.ExpandToContain(AABB3{Min: p, Max: p})
}

func (b AABB3) Corners() [8]Vector3 {
	lo, hi := b.Min, b.Max
	return [8]Vector3{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
	}
}

// Transform returns the box enclosing the eight transformed corners of b.
func (b AABB3) Transform(m Matrix4) AABB3 {
	corners := b.Corners()
	for i := range corners {
		corners[i] = m.ApplyTo(corners[i])
	}
	return NewAABB3FromPoints(corners[:]...)
}

type AABB2 struct {
	Min Vector2
	Max Vector2
}

func NewAABB2(center Vector2, width, height Element) AABB2 {
	h := Vector2{width / 2, height / 2}
	return AABB2{Min: center.Sub(h), Max: center.Add(h)}
}

func (b AABB2) Sanitize() AABB2 {
	if b.Min.X > b.Max.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Min.Y > b.Max.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

func (b AABB2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b AABB2) ContainsAABB(other AABB2) Containment {
	if !b.IntersectsAABB(other) {
		return ContainsNone
	}
	if b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max) {
		return ContainsAll
	}
	return ContainsPartial
}

func (b AABB2) IntersectsAABB(other AABB2) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}

func (b AABB2) DiameterX() Element {
	return Abs(b.Max.X - b.Min.X)
}

func (b AABB2) DiameterY() Element {
	return Abs(b.Max.Y - b.Min.Y)
}

func (b AABB2) Center() Vector2 {
	return b.Min.MidPoint(b.Max)
}

func (b AABB2) Scale(s Element) AABB2 {
	c := b.Center()
	h := b.Max.Sub(c).Scale(s)
	return AABB2{Min: c.Sub(h), Max: c.Add(h)}
}

func (b AABB2) ExpandToContain(other AABB2) AABB2 {
	return AABB2{
		Min: Vector2{Min(b.Min.X, other.Min.X), Min(b.Min.Y, other.Min.Y)},
		Max: Vector2{Max(b.Max.X, other.Max.X), Max(b.Max.Y, other.Max.Y)},
	}
}
