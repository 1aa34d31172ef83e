package geom

import "github.com/chewxy/math32"

type Quaternion struct {
	X Element
	Y Element
	Z Element
	W Element
}

func NewQuaternion(x, y, z, w Element) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

func NewQuaternionFromArray(arr [4]Element) Quaternion {
	return Quaternion{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
}

func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromAxisAngle returns a rotation of radians around a unit axis.
func NewQuaternionFromAxisAngle(axis Vector3, radians Element) Quaternion {
	s, c := math32.Sincos(radians / 2)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// NewQuaternionFromYawPitchRoll returns the same rotation as NewYawPitchRollMatrix4.
func NewQuaternionFromYawPitchRoll(yaw, pitch, roll Element) Quaternion {
	qy := NewQuaternionFromAxisAngle(Vector3PosY, yaw)
	qx := NewQuaternionFromAxisAngle(Vector3PosX, pitch)
	qz := NewQuaternionFromAxisAngle(Vector3PosZ, roll)
	return qy.Mul(qx).Mul(qz)
}

// NewQuaternionFromMatrix3 converts a pure rotation matrix.
func NewQuaternionFromMatrix3(m Matrix3) Quaternion {
	m00, m01, m02 := m[0], m[3], m[6]
	m10, m11, m12 := m[1], m[4], m[7]
	m20, m21, m22 := m[2], m[5], m[8]

	trace := m00 + m11 + m22
	switch {
	case trace > Epsilon:
		s := 0.5 / sqrt(trace+1)
		return Quaternion{
			X: (m21 - m12) * s,
			Y: (m02 - m20) * s,
			Z: (m10 - m01) * s,
			W: 0.25 / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * sqrt(1+m00-m11-m22)
		return Quaternion{
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := 2 * sqrt(1+m11-m00-m22)
		return Quaternion{
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := 2 * sqrt(1+m22-m00-m11)
		return Quaternion{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
			W: (m10 - m01) / s,
		}
	}
}

// NewQuaternionRotationBetween returns the shortest rotation taking v1 onto v2.
// Opposite vectors rotate 180 degrees around fallback, or around an arbitrary
// perpendicular axis when fallback is zero.
func NewQuaternionRotationBetween(v1, v2, fallback Vector3) Quaternion {
	a, b := v1.Normalize(), v2.Normalize()
	d := a.Dot(b)
	if d >= 1-Epsilon {
		return NewQuaternionIdentity()
	}
	if d <= -1+Epsilon {
		if !fallback.IsZero() {
			return NewQuaternionFromAxisAngle(fallback.Normalize(), Pi)
		}
		axis := Vector3PosX.Cross(a)
		if axis.LenSqr() < Epsilon*Epsilon {
			axis = Vector3PosY.Cross(a)
		}
		return NewQuaternionFromAxisAngle(axis.Normalize(), Pi)
	}

	s := sqrt((1 + d) * 2)
	c := a.Cross(b).Scale(1 / s)
	return Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: s / 2}.Normalize()
}

// NewQuaternionLookRotation returns the orientation whose ForwardRH is direction
// and whose Up lies in the plane of direction and up.
func NewQuaternionLookRotation(direction, up Vector3) Quaternion {
	view := NewLookAtMatrix3(Vector3Zero, direction, up)
	return NewQuaternionFromMatrix3(view.Transposed()).Normalize()
}

func (q Quaternion) Add(q2 Quaternion) Quaternion {
	return Quaternion{X: q.X + q2.X, Y: q.Y + q2.Y, Z: q.Z + q2.Z, W: q.W + q2.W}
}

func (q Quaternion) Sub(q2 Quaternion) Quaternion {
	return Quaternion{X: q.X - q2.X, Y: q.Y - q2.Y, Z: q.Z - q2.Z, W: q.W - q2.W}
}

// Mul returns the Hamilton product q*q2. q2 is applied first.
func (q Quaternion) Mul(q2 Quaternion) Quaternion {
	return Quaternion{
		X: q.W*q2.X + q.X*q2.W + q.Y*q2.Z - q.Z*q2.Y,
		Y: q.W*q2.Y + q.Y*q2.W + q.Z*q2.X - q.X*q2.Z,
		Z: q.W*q2.Z + q.Z*q2.W + q.X*q2.Y - q.Y*q2.X,
		W: q.W*q2.W - q.X*q2.X - q.Y*q2.Y - q.Z*q2.Z,
	}
}

func (q Quaternion) Scale(s Element) Quaternion {
	return Quaternion{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

func (q Quaternion) Dot(q2 Quaternion) Element {
	return q.X*q2.X + q.Y*q2.Y + q.Z*q2.Z + q.W*q2.W
}

func (q Quaternion) Len() Element {
	return sqrt(q.LenSqr())
}

func (q Quaternion) LenSqr() Element {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize returns q scaled to unit length. A zero quaternion is returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	n, _ := q.TryNormalize()
	return n
}

func (q Quaternion) TryNormalize() (Quaternion, error) {
	l := q.Len()
	if l == 0 {
		return q, ErrDegenerate
	}
	return q.Scale(1 / l), nil
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse. The zero quaternion maps to itself.
func (q Quaternion) Inverse() Quaternion {
	l := q.LenSqr()
	if l == 0 {
		return Quaternion{}
	}
	return q.Conjugate().Scale(1 / l)
}

func (q Quaternion) IsIdentity() bool {
	return q == NewQuaternionIdentity()
}

func (q Quaternion) Equals(q2 Quaternion) bool {
	return AlmostEqual(q.X, q2.X) && AlmostEqual(q.Y, q2.Y) &&
		AlmostEqual(q.Z, q2.Z) && AlmostEqual(q.W, q2.W)
}

func (q Quaternion) vector() Vector3 {
	return Vector3{X: q.X, Y: q.Y, Z: q.Z}
}

func (q Quaternion) Exp() Quaternion {
	v := q.vector()
	theta := v.Len()
	ew := math32.Exp(q.W)
	s, c := math32.Sincos(theta)
	if theta < Epsilon {
		// sin(theta)/theta -> 1
		return Quaternion{X: v.X * ew, Y: v.Y * ew, Z: v.Z * ew, W: c * ew}
	}
	v = v.Scale(ew * s / theta)
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: c * ew}
}

func (q Quaternion) Ln() Quaternion {
	l := q.Len()
	if l == 0 {
		return Quaternion{}
	}
	v := q.vector()
	vl := v.Len()
	if vl < Epsilon {
		return Quaternion{W: math32.Log(l)}
	}
	theta := math32.Acos(Clamp(q.W/l, -1, 1))
	v = v.Scale(theta / vl)
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: math32.Log(l)}
}

// Slerp interpolates along the shortest arc between q and q2.
func (q Quaternion) Slerp(q2 Quaternion, t Element) Quaternion {
	d := q.Dot(q2)
	if d < 0 {
		q2 = q2.Scale(-1)
		d = -d
	}
	if d > 1-Epsilon {
		return Quaternion{
			X: Lerp(q.X, q2.X, t),
			Y: Lerp(q.Y, q2.Y, t),
			Z: Lerp(q.Z, q2.Z, t),
			W: Lerp(q.W, q2.W, t),
		}.Normalize()
	}
	theta := math32.Acos(d)
	st := math32.Sin(theta)
	a := math32.Sin((1-t)*theta) / st
	b := math32.Sin(t*theta) / st
	return q.Scale(a).Add(q2.Scale(b))
}

// ApplyTo rotates v by q.
func (q Quaternion) ApplyTo(v Vector3) Vector3 {
	u := q.vector()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToAxisAngle returns a unit axis and an angle in radians. q need not be normalized.
// A rotation by zero or a full turn yields axis +Z and angle 0.
func (q Quaternion) ToAxisAngle() (Vector3, Element) {
	if !AlmostEqual(q.LenSqr(), 1) {
		q = q.Normalize()
	}
	v := q.vector()
	scale := v.Len()
	if scale < Epsilon {
		return Vector3PosZ, 0
	}
	return v.Scale(1 / scale), 2 * math32.Acos(Clamp(q.W, -1, 1))
}

func (q Quaternion) ToMatrix3() Matrix3 {
	return NewRotationMatrix3FromQuaternion(q)
}

func (q Quaternion) ToMatrix4() Matrix4 {
	return NewRotationMatrix4FromQuaternion(q)
}

// Pitch returns the X rotation of the yaw-pitch-roll decomposition.
func (q Quaternion) Pitch() Element {
	return NewEulerFromQuaternion(q, RotationOrderYXZ).X
}

// Yaw returns the Y rotation of the yaw-pitch-roll decomposition.
func (q Quaternion) Yaw() Element {
	return NewEulerFromQuaternion(q, RotationOrderYXZ).Y
}

// Roll returns the Z rotation of the yaw-pitch-roll decomposition.
func (q Quaternion) Roll() Element {
	return NewEulerFromQuaternion(q, RotationOrderYXZ).Z
}

func (q Quaternion) Up() Vector3 {
	return q.ApplyTo(Vector3PosY)
}

func (q Quaternion) Right() Vector3 {
	return q.ApplyTo(Vector3PosX)
}

func (q Quaternion) ForwardRH() Vector3 {
	return q.ApplyTo(Vector3NegZ)
}

func (q Quaternion) ForwardLH() Vector3 {
	return q.ApplyTo(Vector3PosZ)
}

// ExtractRotationAroundAxis returns the twist of q around a unit axis.
// A rotation with no component around axis yields the identity.
func (q Quaternion) ExtractRotationAroundAxis(axis Vector3) Quaternion {
	p := axis.Scale(q.vector().Dot(axis))
	r, err := Quaternion{X: p.X, Y: p.Y, Z: p.Z, W: q.W}.TryNormalize()
	if err != nil {
		return NewQuaternionIdentity()
	}
	return r
}

func (q Quaternion) ToArray(array []Element) {
	array[0] = q.X
	array[1] = q.Y
	array[2] = q.Z
	array[3] = q.W
}
