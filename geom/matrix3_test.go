package geom

import (
	"errors"
	"testing"
)

func TestMatrix3(t *testing.T) {
	const eps = 0.0001

	m := NewTranslateMatrix3(3, 4).Mul(NewRotationMatrix3(0.7)).Mul(NewScaleMatrix3(2, 3))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !m.Mul(inv).Equals(NewMatrix3()) {
		t.Error("M * M^-1 != I: ", m.Mul(inv))
	}
	if d := m.Det(); Abs(d-6) > eps {
		t.Error("Det: ", d)
	}
	if !m.Transposed().Transposed().Equals(m) {
		t.Error("Transposed")
	}

	inv, err = NewScaleMatrix3(0, 1).Inverse()
	if !errors.Is(err, ErrSingular) || !inv.IsIdentity() {
		t.Error("singular: ", inv, err)
	}

	axis := NewVector3(-1, 2, 0.5).Normalize()
	r := NewAxisAngleMatrix3(axis, 1.1)
	if !r.Equals(NewRotationMatrix3FromQuaternion(NewQuaternionFromAxisAngle(axis, 1.1))) {
		t.Error("axis-angle != quaternion: ", r)
	}
	axis2, angle := r.ToAxisAngle()
	if axis2.Sub(axis).Len() > eps || Abs(angle-1.1) > eps {
		t.Error("ToAxisAngle: ", axis2, angle)
	}
	if v := NewVector3(1, 0, 0).Transform(r); Abs(v.Len()-1) > eps {
		t.Error("rotation should keep length: ", v)
	}

	look := NewLookAtMatrix3(Vector3Zero, NewVector3(0, 0, -5), Vector3PosY)
	if !look.Equals(NewMatrix3()) {
		t.Error("LookAt: ", look)
	}
	if v := NewRotationMatrix3(Pi / 2).Right(); v.Sub(Vector3PosY).Len() > eps {
		t.Error("Right: ", v)
	}
	if NewMatrix3().ForwardRH() != Vector3NegZ || NewMatrix3().ForwardLH() != Vector3PosZ || NewMatrix3().Up() != Vector3PosY {
		t.Error("basis vectors of identity")
	}

	if !m.MulScalar(2).Equals(NewMatrix3FromSlice([]Element{
		2 * m[0], 2 * m[1], 2 * m[2],
		2 * m[3], 2 * m[4], 2 * m[5],
		2 * m[6], 2 * m[7], 2 * m[8],
	})) {
		t.Error("MulScalar")
	}
}
