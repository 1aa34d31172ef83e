package geom

import "github.com/chewxy/math32"

type RotationOrder int

// Order in which intrinsic rotations are composed. RotationOrderXYZ is Rx*Ry*Rz.
const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX
)

type EulerAngles struct {
	Vector3
	Order RotationOrder
}

func NewEuler(x, y, z Element, order RotationOrder) EulerAngles {
	return EulerAngles{Vector3: Vector3{x, y, z}, Order: order}
}

func NewEulerFromQuaternion(q Quaternion, order RotationOrder) EulerAngles {
	return NewEulerFromMatrix3(NewRotationMatrix3FromQuaternion(q), order)
}

func NewEulerFromMatrix4(m Matrix4, order RotationOrder) EulerAngles {
	return NewEulerFromMatrix3(m.Rotation(), order)
}

func NewEulerFromMatrix3(m Matrix3, order RotationOrder) EulerAngles {
	const limit = 1 - 1e-6
	m11, m21, m31 := m[0], m[1], m[2]
	m12, m22, m32 := m[3], m[4], m[5]
	m13, m23, m33 := m[6], m[7], m[8]

	e := EulerAngles{Order: order}
	switch order {
	case RotationOrderXYZ:
		e.Y = math32.Asin(Clamp(m13, -1, 1))
		if Abs(m13) < limit {
			e.X = math32.Atan2(-m23, m33)
			e.Z = math32.Atan2(-m12, m11)
		} else {
			e.X = math32.Atan2(m32, m22)
		}
	case RotationOrderYXZ:
		e.X = math32.Asin(-Clamp(m23, -1, 1))
		if Abs(m23) < limit {
			e.Y = math32.Atan2(m13, m33)
			e.Z = math32.Atan2(m21, m22)
		} else {
			e.Y = math32.Atan2(-m31, m11)
		}
	case RotationOrderZXY:
		e.X = math32.Asin(Clamp(m32, -1, 1))
		if Abs(m32) < limit {
			e.Y = math32.Atan2(-m31, m33)
			e.Z = math32.Atan2(-m12, m22)
		} else {
			e.Z = math32.Atan2(m21, m11)
		}
	case RotationOrderZYX:
		e.Y = math32.Asin(-Clamp(m31, -1, 1))
		if Abs(m31) < limit {
			e.X = math32.Atan2(m32, m33)
			e.Z = math32.Atan2(m21, m11)
		} else {
			e.Z = math32.Atan2(-m12, m22)
		}
	}
	return e
}

func (e EulerAngles) ToQuaternion() Quaternion {
	sx, cx := math32.Sincos(e.X / 2)
	sy, cy := math32.Sincos(e.Y / 2)
	sz, cz := math32.Sincos(e.Z / 2)

	switch e.Order {
	case RotationOrderXYZ:
		return Quaternion{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz}
	case RotationOrderYXZ:
		return Quaternion{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz}
	case RotationOrderZXY:
		return Quaternion{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz}
	case RotationOrderZYX:
		return Quaternion{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz}
	default:
		return NewQuaternionIdentity()
	}
}

func (e EulerAngles) ToMatrix4() Matrix4 {
	return NewRotationMatrix4FromQuaternion(e.ToQuaternion())
}
