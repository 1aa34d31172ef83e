package geom

type Vector3 struct {
	X Element
	Y Element
	Z Element
}

var (
	Vector3Zero  = Vector3{}
	Vector3PosX  = Vector3{X: 1}
	Vector3PosY  = Vector3{Y: 1}
	Vector3PosZ  = Vector3{Z: 1}
	Vector3NegX  = Vector3{X: -1}
	Vector3NegY  = Vector3{Y: -1}
	Vector3NegZ  = Vector3{Z: -1}
	Vector3Unity = Vector3{1, 1, 1}
)

func NewVector3(x, y, z Element) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func NewVector3FromArray(arr [3]Element) Vector3 {
	return Vector3{X: arr[0], Y: arr[1], Z: arr[2]}
}

func NewVector3FromSlice(arr []Element) Vector3 {
	return Vector3{X: arr[0], Y: arr[1], Z: arr[2]}
}

func (v Vector3) Add(v2 Vector3) Vector3 {
	return Vector3{X: v.X + v2.X, Y: v.Y + v2.Y, Z: v.Z + v2.Z}
}

func (v Vector3) Sub(v2 Vector3) Vector3 {
	return Vector3{X: v.X - v2.X, Y: v.Y - v2.Y, Z: v.Z - v2.Z}
}

// Mul multiplies component-wise.
func (v Vector3) Mul(v2 Vector3) Vector3 {
	return Vector3{X: v.X * v2.X, Y: v.Y * v2.Y, Z: v.Z * v2.Z}
}

// Div divides component-wise. Components divided by zero are left unchanged.
func (v Vector3) Div(v2 Vector3) Vector3 {
	r := v
	if v2.X != 0 {
		r.X /= v2.X
	}
	if v2.Y != 0 {
		r.Y /= v2.Y
	}
	if v2.Z != 0 {
		r.Z /= v2.Z
	}
	return r
}

func (v Vector3) Dot(v2 Vector3) Element {
	return v.X*v2.X + v.Y*v2.Y + v.Z*v2.Z
}

func (v Vector3) Cross(v2 Vector3) Vector3 {
	return Vector3{
		X: v.Y*v2.Z - v.Z*v2.Y,
		Y: v.Z*v2.X - v.X*v2.Z,
		Z: v.X*v2.Y - v.Y*v2.X,
	}
}

func (v Vector3) Scale(s Element) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Len() Element {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) LenSqr() Element {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	n, _ := v.TryNormalize()
	return n
}

func (v Vector3) TryNormalize() (Vector3, error) {
	l := v.Len()
	if l == 0 {
		return v, ErrDegenerate
	}
	return Vector3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}, nil
}

func (v Vector3) Lerp(v2 Vector3, t Element) Vector3 {
	return Vector3{X: Lerp(v.X, v2.X, t), Y: Lerp(v.Y, v2.Y, t), Z: Lerp(v.Z, v2.Z, t)}
}

func (v Vector3) Equals(v2 Vector3) bool {
	return AlmostEqual(v.X, v2.X) && AlmostEqual(v.Y, v2.Y) && AlmostEqual(v.Z, v2.Z)
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3) Distance(v2 Vector3) Element {
	return v2.Sub(v).Len()
}

func (v Vector3) MidPoint(v2 Vector3) Vector3 {
	return Vector3{X: (v.X + v2.X) / 2, Y: (v.Y + v2.Y) / 2, Z: (v.Z + v2.Z) / 2}
}

// Reflect reflects v about a unit normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// ProjectOnToPlane removes the component of v along the plane normal.
func (v Vector3) ProjectOnToPlane(p Plane) Vector3 {
	n := p.Normal()
	return v.Sub(n.Scale(v.Dot(n) / n.LenSqr()))
}

// Transform returns m*v using the 3x3 matrix only.
func (v Vector3) Transform(m Matrix3) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[3] + v.Z*m[6],
		Y: v.X*m[1] + v.Y*m[4] + v.Z*m[7],
		Z: v.X*m[2] + v.Y*m[5] + v.Z*m[8],
	}
}

// TransformMatrix4 transforms (x, y, z, 1) by m and drops w.
func (v Vector3) TransformMatrix4(m Matrix4) Vector3 {
	return m.ApplyTo(v)
}

// TransformCoord transforms (x, y, z, 1) by m and divides by the resulting w.
func (v Vector3) TransformCoord(m Matrix4) Vector3 {
	r := m.ApplyTo(v)
	w := v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	if w == 0 || w == 1 {
		return r
	}
	return r.Scale(1 / w)
}

// TransformNormal transforms the direction (x, y, z, 0) by m.
func (v Vector3) TransformNormal(m Matrix4) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10],
	}
}

// InverseTransform undoes a rigid transform (rotation + translation) without inverting m.
func (v Vector3) InverseTransform(m Matrix4) Vector3 {
	return Vector3{X: v.X - m[12], Y: v.Y - m[13], Z: v.Z - m[14]}.InverseTransformNormal(m)
}

// InverseTransformNormal multiplies by the transpose of the rotation block of m.
func (v Vector3) InverseTransformNormal(m Matrix4) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[1] + v.Z*m[2],
		Y: v.X*m[4] + v.Y*m[5] + v.Z*m[6],
		Z: v.X*m[8] + v.Y*m[9] + v.Z*m[10],
	}
}

func (v Vector3) ToArray(array []Element) {
	array[0] = v.X
	array[1] = v.Y
	array[2] = v.Z
}

func (v Vector3) Array() [3]Element {
	return [3]Element{v.X, v.Y, v.Z}
}
