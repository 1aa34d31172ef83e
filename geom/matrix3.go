package geom

import "github.com/chewxy/math32"

// column-major matrix
type Matrix3 [9]Element

func NewMatrix3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func NewMatrix3FromSlice(a []Element) Matrix3 {
	var mat Matrix3
	copy(mat[:], a)
	return mat
}

// NewRotationMatrix3 returns a 2D rotation about the Z axis.
func NewRotationMatrix3(radians Element) Matrix3 {
	s, c := math32.Sincos(radians)
	return Matrix3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

func NewScaleMatrix3(x, y Element) Matrix3 {
	return Matrix3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

func NewTranslateMatrix3(x, y Element) Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// NewAxisAngleMatrix3 returns a rotation of radians around a unit axis.
func NewAxisAngleMatrix3(axis Vector3, radians Element) Matrix3 {
	s, c := math32.Sincos(radians)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Matrix3{
		c + x*x*t, z*s + y*x*t, -y*s + z*x*t,
		-z*s + x*y*t, c + y*y*t, x*s + z*y*t,
		y*s + x*z*t, -x*s + y*z*t, c + z*z*t,
	}
}

func NewRotationMatrix3FromQuaternion(q Quaternion) Matrix3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return Matrix3{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w),
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w),
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y),
	}
}

// NewLookAtMatrix3 returns the rotation part of NewLookAtMatrix4.
func NewLookAtMatrix3(eye, center, up Vector3) Matrix3 {
	return NewLookAtMatrix4(eye, center, up).Rotation()
}

// Mul returns a*b. b is applied first.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	var r Matrix3
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			r[c*3+row] = a[row]*b[c*3] + a[3+row]*b[c*3+1] + a[6+row]*b[c*3+2]
		}
	}
	return r
}

func (m Matrix3) MulScalar(s Element) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Matrix3) Transposed() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Matrix3) Det() Element {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func (m Matrix3) Adjugate() Matrix3 {
	return Matrix3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
}

// Inverse returns the inverse of m. A singular matrix yields the identity and ErrSingular.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if Abs(det) <= Epsilon {
		return NewMatrix3(), ErrSingular
	}
	return m.Adjugate().MulScalar(1 / det), nil
}

func (m Matrix3) IsIdentity() bool {
	return m == NewMatrix3()
}

func (m Matrix3) Equals(m2 Matrix3) bool {
	for i := range m {
		if !AlmostEqual(m[i], m2[i]) {
			return false
		}
	}
	return true
}

func (m Matrix3) Col(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

func (m Matrix3) Up() Vector3 {
	return m.Col(1).Normalize()
}

func (m Matrix3) Right() Vector3 {
	return m.Col(0).Normalize()
}

// ForwardRH returns the -Z basis vector.
func (m Matrix3) ForwardRH() Vector3 {
	return m.Col(2).Neg().Normalize()
}

// ForwardLH returns the +Z basis vector.
func (m Matrix3) ForwardLH() Vector3 {
	return m.Col(2).Normalize()
}

// ToAxisAngle returns the rotation of m as a unit axis and an angle in radians.
func (m Matrix3) ToAxisAngle() (Vector3, Element) {
	return NewQuaternionFromMatrix3(m).ToAxisAngle()
}

func (m Matrix3) ToArray(a []Element) {
	copy(a, m[:])
}
