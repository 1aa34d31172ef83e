package geom

import "github.com/chewxy/math32"

type Vector2 struct {
	X Element
	Y Element
}

func NewVector2(x, y Element) Vector2 {
	return Vector2{X: x, Y: y}
}

func NewVector2FromArray(arr [2]Element) Vector2 {
	return Vector2{X: arr[0], Y: arr[1]}
}

func (v Vector2) Add(v2 Vector2) Vector2 {
	return Vector2{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vector2) Sub(v2 Vector2) Vector2 {
	return Vector2{X: v.X - v2.X, Y: v.Y - v2.Y}
}

func (v Vector2) Scale(s Element) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise.
func (v Vector2) Mul(v2 Vector2) Vector2 {
	return Vector2{X: v.X * v2.X, Y: v.Y * v2.Y}
}

// Div divides component-wise. Components divided by zero are left unchanged.
func (v Vector2) Div(v2 Vector2) Vector2 {
	r := v
	if v2.X != 0 {
		r.X /= v2.X
	}
	if v2.Y != 0 {
		r.Y /= v2.Y
	}
	return r
}

func (v Vector2) Dot(v2 Vector2) Element {
	return v.X*v2.X + v.Y*v2.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector2) Cross(v2 Vector2) Element {
	return v.X*v2.Y - v.Y*v2.X
}

func (v Vector2) Len() Element {
	return sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LenSqr() Element {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	n, _ := v.TryNormalize()
	return n
}

func (v Vector2) TryNormalize() (Vector2, error) {
	l := v.Len()
	if l == 0 {
		return v, ErrDegenerate
	}
	return Vector2{X: v.X / l, Y: v.Y / l}, nil
}

func (v Vector2) Lerp(v2 Vector2, t Element) Vector2 {
	return Vector2{X: Lerp(v.X, v2.X, t), Y: Lerp(v.Y, v2.Y, t)}
}

func (v Vector2) Equals(v2 Vector2) bool {
	return AlmostEqual(v.X, v2.X) && AlmostEqual(v.Y, v2.Y)
}

func (v Vector2) Distance(v2 Vector2) Element {
	return v2.Sub(v).Len()
}

func (v Vector2) MidPoint(v2 Vector2) Vector2 {
	return Vector2{X: (v.X + v2.X) / 2, Y: (v.Y + v2.Y) / 2}
}

// Reflect reflects v about a unit normal.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// RotateBy rotates v counter-clockwise around center.
func (v Vector2) RotateBy(degrees Element, center Vector2) Vector2 {
	s, c := math32.Sincos(DegToRad(degrees))
	d := v.Sub(center)
	return Vector2{X: d.X*c - d.Y*s + center.X, Y: d.X*s + d.Y*c + center.Y}
}

// DegreesBetween returns the signed angle from v to v2 in degrees.
func (v Vector2) DegreesBetween(v2 Vector2) Element {
	if v.Equals(v2) {
		return 0
	}
	t1, t2 := v.Normalize(), v2.Normalize()
	dot := Clamp(t1.Dot(t2), -1, 1)
	return RadToDeg(math32.Atan2(t1.Cross(t2), dot))
}

// Transform applies m to (x, y, 1).
func (v Vector2) Transform(m Matrix3) Vector2 {
	return Vector2{
		X: v.X*m[0] + v.Y*m[3] + m[6],
		Y: v.X*m[1] + v.Y*m[4] + m[7],
	}
}

// TransformCoord applies m to (x, y, 1) and projects back onto z = 1.
func (v Vector2) TransformCoord(m Matrix3) Vector2 {
	r := v.Transform(m)
	z := v.X*m[2] + v.Y*m[5] + m[8]
	if z == 0 || z == 1 {
		return r
	}
	return r.Scale(1 / z)
}

func (v Vector2) ToArray(array []Element) {
	array[0] = v.X
	array[1] = v.Y
}
