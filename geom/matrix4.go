package geom

import "github.com/chewxy/math32"

// column-major matrix
type Matrix4 [16]Element

// ClipPlane selects a frustum plane in Matrix4.ExtractPlane.
type ClipPlane int

const (
	ClipPlaneLeft ClipPlane = iota
	ClipPlaneRight
	ClipPlaneBottom
	ClipPlaneTop
	ClipPlaneNear
	ClipPlaneFar
)

func NewMatrix4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func NewMatrix4FromSlice(a []Element) Matrix4 {
	var mat Matrix4
	copy(mat[:], a)
	return mat
}

func NewScaleMatrix4(x, y, z Element) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func NewTranslateMatrix4(x, y, z Element) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func NewRotationXMatrix4(radians Element) Matrix4 {
	s, c := math32.Sincos(radians)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func NewRotationYMatrix4(radians Element) Matrix4 {
	s, c := math32.Sincos(radians)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func NewRotationZMatrix4(radians Element) Matrix4 {
	s, c := math32.Sincos(radians)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewAxisAngleMatrix4 returns a rotation of radians around a unit axis.
func NewAxisAngleMatrix4(axis Vector3, radians Element) Matrix4 {
	return NewRotationTranslationMatrix4(NewAxisAngleMatrix3(axis, radians), Vector3{})
}

func NewRotationMatrix4FromQuaternion(q Quaternion) Matrix4 {
	return NewRotationTranslationMatrix4(NewRotationMatrix3FromQuaternion(q), Vector3{})
}

// NewYawPitchRollMatrix4 returns Ry(yaw) * Rx(pitch) * Rz(roll).
func NewYawPitchRollMatrix4(yaw, pitch, roll Element) Matrix4 {
	return NewRotationYMatrix4(yaw).Mul(NewRotationXMatrix4(pitch)).Mul(NewRotationZMatrix4(roll))
}

func NewRotationTranslationMatrix4(rot Matrix3, t Vector3) Matrix4 {
	return Matrix4{
		rot[0], rot[1], rot[2], 0,
		rot[3], rot[4], rot[5], 0,
		rot[6], rot[7], rot[8], 0,
		t.X, t.Y, t.Z, 1,
	}
}

// NewTRSMatrix4 returns T * R * S.
func NewTRSMatrix4(translate Vector3, rotation Quaternion, scale Vector3) Matrix4 {
	r := NewRotationMatrix3FromQuaternion(rotation)
	return Matrix4{
		r[0] * scale.X, r[1] * scale.X, r[2] * scale.X, 0,
		r[3] * scale.Y, r[4] * scale.Y, r[5] * scale.Y, 0,
		r[6] * scale.Z, r[7] * scale.Z, r[8] * scale.Z, 0,
		translate.X, translate.Y, translate.Z, 1,
	}
}

// NewPerspectiveMatrix4 works like gluPerspective. fovY is in degrees.
func NewPerspectiveMatrix4(fovY, aspect, zNear, zFar Element) (Matrix4, error) {
	r := DegToRad(fovY / 2)
	deltaZ := zFar - zNear
	s, c := math32.Sincos(r)
	if deltaZ == 0 || s == 0 || aspect == 0 {
		return NewMatrix4(), ErrDegenerate
	}
	cot := c / s

	m := NewMatrix4()
	m[0] = cot / aspect
	m[5] = cot
	m[10] = -(zFar + zNear) / deltaZ
	m[11] = -1
	m[14] = -2 * zNear * zFar / deltaZ
	m[15] = 0
	return m, nil
}

// NewOrthographicMatrix4 works like glOrtho.
func NewOrthographicMatrix4(left, right, bottom, top, zNear, zFar Element) Matrix4 {
	m := NewMatrix4()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (zFar - zNear)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(zFar + zNear) / (zFar - zNear)
	return m
}

// NewLookAtMatrix4 works like gluLookAt: the camera looks down -Z and the result
// is the inverse of the camera's world transform.
func NewLookAtMatrix4(eye, center, up Vector3) Matrix4 {
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Matrix4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// Mul returns b*a. a is applied first.
func (b Matrix4) Mul(a Matrix4) Matrix4 {
	var r Matrix4

	r[0] = a[0]*b[0] + a[1]*b[4] + a[2]*b[8] + a[3]*b[12]
	r[1] = a[0]*b[1] + a[1]*b[5] + a[2]*b[9] + a[3]*b[13]
	r[2] = a[0]*b[2] + a[1]*b[6] + a[2]*b[10] + a[3]*b[14]
	r[3] = a[0]*b[3] + a[1]*b[7] + a[2]*b[11] + a[3]*b[15]

	r[4] = a[4]*b[0] + a[5]*b[4] + a[6]*b[8] + a[7]*b[12]
	r[5] = a[4]*b[1] + a[5]*b[5] + a[6]*b[9] + a[7]*b[13]
	r[6] = a[4]*b[2] + a[5]*b[6] + a[6]*b[10] + a[7]*b[14]
	r[7] = a[4]*b[3] + a[5]*b[7] + a[6]*b[11] + a[7]*b[15]

	r[8] = a[8]*b[0] + a[9]*b[4] + a[10]*b[8] + a[11]*b[12]
	r[9] = a[8]*b[1] + a[9]*b[5] + a[10]*b[9] + a[11]*b[13]
	r[10] = a[8]*b[2] + a[9]*b[6] + a[10]*b[10] + a[11]*b[14]
	r[11] = a[8]*b[3] + a[9]*b[7] + a[10]*b[11] + a[11]*b[15]

	r[12] = a[12]*b[0] + a[13]*b[4] + a[14]*b[8] + a[15]*b[12]
	r[13] = a[12]*b[1] + a[13]*b[5] + a[14]*b[9] + a[15]*b[13]
	r[14] = a[12]*b[2] + a[13]*b[6] + a[14]*b[10] + a[15]*b[14]
	r[15] = a[12]*b[3] + a[13]*b[7] + a[14]*b[11] + a[15]*b[15]
	return r
}

func (m Matrix4) ApplyTo(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// cofactors of the first row, shared by Det and Inverse
func (m Matrix4) cofactors() (t11, t12, t13, t14 Element) {
	t11 = m[9]*m[14]*m[7] - m[13]*m[10]*m[7] + m[13]*m[6]*m[11] - m[5]*m[14]*m[11] - m[9]*m[6]*m[15] + m[5]*m[10]*m[15]
	t12 = m[12]*m[10]*m[7] - m[8]*m[14]*m[7] - m[12]*m[6]*m[11] + m[4]*m[14]*m[11] + m[8]*m[6]*m[15] - m[4]*m[10]*m[15]
	t13 = m[8]*m[13]*m[7] - m[12]*m[9]*m[7] + m[12]*m[5]*m[11] - m[4]*m[13]*m[11] - m[8]*m[5]*m[15] + m[4]*m[9]*m[15]
	t14 = m[12]*m[9]*m[6] - m[8]*m[13]*m[6] - m[12]*m[5]*m[10] + m[4]*m[13]*m[10] + m[8]*m[5]*m[14] - m[4]*m[9]*m[14]
	return
}

func (m Matrix4) Det() Element {
	t11, t12, t13, t14 := m.cofactors()
	return m[0]*t11 + m[1]*t12 + m[2]*t13 + m[3]*t14
}

// Inverse returns the inverse of m. A singular matrix yields the identity and ErrSingular.
func (m Matrix4) Inverse() (Matrix4, error) {
	t11, t12, t13, t14 := m.cofactors()
	det := m[0]*t11 + m[1]*t12 + m[2]*t13 + m[3]*t14
	if Abs(det) <= Epsilon {
		return NewMatrix4(), ErrSingular
	}
	inv := 1 / det

	var r Matrix4
	r[0] = t11 * inv
	r[1] = (m[13]*m[10]*m[3] - m[9]*m[14]*m[3] - m[13]*m[2]*m[11] + m[1]*m[14]*m[11] + m[9]*m[2]*m[15] - m[1]*m[10]*m[15]) * inv
	r[2] = (m[5]*m[14]*m[3] - m[13]*m[6]*m[3] + m[13]*m[2]*m[7] - m[1]*m[14]*m[7] - m[5]*m[2]*m[15] + m[1]*m[6]*m[15]) * inv
	r[3] = (m[9]*m[6]*m[3] - m[5]*m[10]*m[3] - m[9]*m[2]*m[7] + m[1]*m[10]*m[7] + m[5]*m[2]*m[11] - m[1]*m[6]*m[11]) * inv
	r[4] = t12 * inv
	r[5] = (m[8]*m[14]*m[3] - m[12]*m[10]*m[3] + m[12]*m[2]*m[11] - m[0]*m[14]*m[11] - m[8]*m[2]*m[15] + m[0]*m[10]*m[15]) * inv
	r[6] = (m[12]*m[6]*m[3] - m[4]*m[14]*m[3] - m[12]*m[2]*m[7] + m[0]*m[14]*m[7] + m[4]*m[2]*m[15] - m[0]*m[6]*m[15]) * inv
	r[7] = (m[4]*m[10]*m[3] - m[8]*m[6]*m[3] + m[8]*m[2]*m[7] - m[0]*m[10]*m[7] - m[4]*m[2]*m[11] + m[0]*m[6]*m[11]) * inv
	r[8] = t13 * inv
	r[9] = (m[12]*m[9]*m[3] - m[8]*m[13]*m[3] - m[12]*m[1]*m[11] + m[0]*m[13]*m[11] + m[8]*m[1]*m[15] - m[0]*m[9]*m[15]) * inv
	r[10] = (m[4]*m[13]*m[3] - m[12]*m[5]*m[3] + m[12]*m[1]*m[7] - m[0]*m[13]*m[7] - m[4]*m[1]*m[15] + m[0]*m[5]*m[15]) * inv
	r[11] = (m[8]*m[5]*m[3] - m[4]*m[9]*m[3] - m[8]*m[1]*m[7] + m[0]*m[9]*m[7] + m[4]*m[1]*m[11] - m[0]*m[5]*m[11]) * inv
	r[12] = t14 * inv
	r[13] = (m[8]*m[13]*m[2] - m[12]*m[9]*m[2] + m[12]*m[1]*m[10] - m[0]*m[13]*m[10] - m[8]*m[1]*m[14] + m[0]*m[9]*m[14]) * inv
	r[14] = (m[12]*m[5]*m[2] - m[4]*m[13]*m[2] - m[12]*m[1]*m[6] + m[0]*m[13]*m[6] + m[4]*m[1]*m[14] - m[0]*m[5]*m[14]) * inv
	r[15] = (m[4]*m[9]*m[2] - m[8]*m[5]*m[2] + m[8]*m[1]*m[6] - m[0]*m[9]*m[6] - m[4]*m[1]*m[10] + m[0]*m[5]*m[10]) * inv

	return r, nil
}

func (m Matrix4) Transposed() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (m Matrix4) IsIdentity() bool {
	return m == NewMatrix4()
}

func (m Matrix4) Equals(m2 Matrix4) bool {
	for i := range m {
		if !AlmostEqual(m[i], m2[i]) {
			return false
		}
	}
	return true
}

// Rotation returns the upper-left 3x3 block.
func (m Matrix4) Rotation() Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Matrix4) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// ToAxisAngle returns the rotation part of m as a unit axis and an angle in radians.
func (m Matrix4) ToAxisAngle() (Vector3, Element) {
	return m.Rotation().ToAxisAngle()
}

// Decompose splits an affine T*R*S matrix into its parts.
func (m Matrix4) Decompose() (translate Vector3, rotation Quaternion, scale Vector3) {
	translate = m.Translation()
	scale = Vector3{
		Vector3{m[0], m[1], m[2]}.Len(),
		Vector3{m[4], m[5], m[6]}.Len(),
		Vector3{m[8], m[9], m[10]}.Len(),
	}
	if m.Det() < 0 {
		scale.X = -scale.X
	}
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return translate, NewQuaternionIdentity(), scale
	}
	r := m.Rotation()
	for i := 0; i < 3; i++ {
		r[i] /= scale.X
		r[3+i] /= scale.Y
		r[6+i] /= scale.Z
	}
	rotation = NewQuaternionFromMatrix3(r).Normalize()
	return
}

func (m Matrix4) Up() Vector3 {
	return Vector3{m[4], m[5], m[6]}.Normalize()
}

func (m Matrix4) Right() Vector3 {
	return Vector3{m[0], m[1], m[2]}.Normalize()
}

// ForwardRH returns the -Z basis vector.
func (m Matrix4) ForwardRH() Vector3 {
	return Vector3{-m[8], -m[9], -m[10]}.Normalize()
}

// ForwardLH returns the +Z basis vector.
func (m Matrix4) ForwardLH() Vector3 {
	return Vector3{m[8], m[9], m[10]}.Normalize()
}

func (m Matrix4) row(i int) Vector4 {
	return Vector4{m[i], m[4+i], m[8+i], m[12+i]}
}

// ExtractPlane returns a normalized frustum plane of a projection (or projection*view)
// matrix. Plane normals point into the frustum.
func (m Matrix4) ExtractPlane(p ClipPlane) Plane {
	r := m.row(3)
	axis := m.row(int(p) / 2)
	if p%2 == 0 {
		r = r.Add(axis)
	} else {
		r = r.Sub(axis)
	}
	return NewPlane(r.X, r.Y, r.Z, r.W).Normalize()
}

func (m Matrix4) ToArray(a []Element) {
	copy(a, m[:])
}
