package geom

type Vector4 struct {
	X Element
	Y Element
	Z Element
	W Element
}

func NewVector4(x, y, z, w Element) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func NewVector4FromArray(arr [4]Element) Vector4 {
	return Vector4{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
}

// NewPoint4 returns the homogeneous position (x, y, z, 1).
func NewPoint4(v Vector3) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

func (v Vector4) Add(v2 Vector4) Vector4 {
	return Vector4{X: v.X + v2.X, Y: v.Y + v2.Y, Z: v.Z + v2.Z, W: v.W + v2.W}
}

func (v Vector4) Sub(v2 Vector4) Vector4 {
	return Vector4{X: v.X - v2.X, Y: v.Y - v2.Y, Z: v.Z - v2.Z, W: v.W - v2.W}
}

func (v Vector4) Scale(s Element) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Mul multiplies component-wise.
func (v Vector4) Mul(v2 Vector4) Vector4 {
	return Vector4{X: v.X * v2.X, Y: v.Y * v2.Y, Z: v.Z * v2.Z, W: v.W * v2.W}
}

func (v Vector4) Dot(v2 Vector4) Element {
	return v.X*v2.X + v.Y*v2.Y + v.Z*v2.Z + v.W*v2.W
}

func (v Vector4) Len() Element {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

func (v Vector4) LenSqr() Element {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vector4) Normalize() Vector4 {
	n, _ := v.TryNormalize()
	return n
}

func (v Vector4) TryNormalize() (Vector4, error) {
	l := v.Len()
	if l == 0 {
		return v, ErrDegenerate
	}
	return v.Scale(1 / l), nil
}

func (v Vector4) Lerp(v2 Vector4, t Element) Vector4 {
	return Vector4{
		X: Lerp(v.X, v2.X, t),
		Y: Lerp(v.Y, v2.Y, t),
		Z: Lerp(v.Z, v2.Z, t),
		W: Lerp(v.W, v2.W, t),
	}
}

func (v Vector4) Equals(v2 Vector4) bool {
	return AlmostEqual(v.X, v2.X) && AlmostEqual(v.Y, v2.Y) &&
		AlmostEqual(v.Z, v2.Z) && AlmostEqual(v.W, v2.W)
}

// Transform returns m*v.
func (v Vector4) Transform(m Matrix4) Vector4 {
	return Vector4{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		W: v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}

func (v Vector4) Vector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) ToArray(array []Element) {
	array[0] = v.X
	array[1] = v.Y
	array[2] = v.Z
	array[3] = v.W
}
