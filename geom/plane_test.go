package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector3(t *testing.T, want, got Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.Equals(got), append([]interface{}{"want %v, got %v", want, got}, msgAndArgs...)...)
}

func TestPlane_Construction(t *testing.T) {
	p := NewPlaneFromPoints(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	assert.Equal(t, NewPlane(0, 0, 1, 0), p)

	p = NewPlaneFromPointNormal(NewVector3(0, 0, -5), Vector3PosZ)
	assert.Equal(t, Element(5), p.D)
	assert.Equal(t, Vector3PosZ, p.Normal())

	p = NewPlaneFromNormalAndDistance(Vector3PosZ, 2)
	assert.InDelta(t, 0, p.DotCoord(NewVector3(3, 4, 2)), 1e-6)

	p = NewPlaneFromNormalAndDistance(Vector3PosZ, 0)
	assert.Equal(t, Element(0), p.DotCoord(Vector3Zero))

	assert.Equal(t, NewPlane(0, 0, 1, 2), NewPlane(0, 0, 2, 4).Normalize())
	assert.Equal(t, NewPlane(0, 0, 4, 8), NewPlane(0, 0, 2, 4).Scale(2))

	zero := NewPlane(0, 0, 0, 1)
	n, err := zero.TryNormalize()
	assert.ErrorIs(t, err, ErrDegenerate)
	assert.Equal(t, zero, n)
}

func TestPlane_Dot(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)
	assert.Equal(t, Element(1+4+9+4), p.DotCoord(NewVector3(1, 2, 3)))
	assert.Equal(t, Element(1+4+9), p.DotNormal(NewVector3(1, 2, 3)))
	assert.Equal(t, Element(1+4+9+8), p.Dot(NewVector4(1, 2, 3, 2)))
}

func TestPlane_ClassifyPoint(t *testing.T) {
	p := NewPlaneFromPointNormal(NewVector3(0, 0, 1), Vector3PosZ)

	assert.Equal(t, PointInFrontOfPlane, p.ClassifyPoint(NewVector3(5, 5, 2)))
	assert.Equal(t, PointBehindPlane, p.ClassifyPoint(NewVector3(5, 5, 0)))
	assert.Equal(t, PointOnPlane, p.ClassifyPoint(NewVector3(5, 5, 1)))
	assert.Equal(t, PointOnPlane, p.ClassifyPoint(NewVector3(5, 5, 1+Epsilon/2)))

	for _, v := range []Vector3{{0, 0, 3}, {1, 2, -3}, {0, 0, 1.00001}, {9, -9, 0.5}} {
		d := p.DotCoord(v)
		switch p.ClassifyPoint(v) {
		case PointInFrontOfPlane:
			assert.Greater(t, d, Epsilon)
		case PointBehindPlane:
			assert.Less(t, d, -Epsilon)
		case PointOnPlane:
			assert.LessOrEqual(t, Abs(d), Epsilon)
		}
	}
}

func TestPlane_IntersectLine(t *testing.T) {
	p := NewPlane(0, 0, 1, 0)

	// the line extends past both points
	v, err := p.IntersectLine(NewVector3(1, 2, 1), NewVector3(1, 2, 2))
	require.NoError(t, err)
	assertVector3(t, NewVector3(1, 2, 0), v)

	v, err = p.IntersectLine(NewVector3(0, 0, -1), NewVector3(2, 2, 1))
	require.NoError(t, err)
	assertVector3(t, NewVector3(1, 1, 0), v)

	_, err = p.IntersectLine(NewVector3(0, 0, 1), NewVector3(1, 0, 1))
	assert.ErrorIs(t, err, ErrNoIntersection)
}

func TestPlane_IntersectPlanes(t *testing.T) {
	v, err := IntersectPlanes(NewPlane(0, 1, 0, 1), NewPlane(1, 0, 0, 1), NewPlane(0, 0, 1, 1))
	require.NoError(t, err)
	assertVector3(t, NewVector3(-1, -1, -1), v)

	p1 := NewPlaneFromPoints(NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1))
	p2 := NewPlaneFromPointNormal(NewVector3(0, 0, 0), NewVector3(1, -1, 0))
	p3 := NewPlaneFromPointNormal(NewVector3(0, 0, 0), NewVector3(0, 1, -1))
	v, err = IntersectPlanes(p1, p2, p3)
	require.NoError(t, err)
	assertVector3(t, NewVector3(1, 1, 1).Scale(1.0/3), v)

	_, err = IntersectPlanes(NewPlane(0, 1, 0, 1), NewPlane(0, 1, 0, 2), NewPlane(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrNoIntersection)
}

func TestPlane_FromMatrix4(t *testing.T) {
	proj, err := NewPerspectiveMatrix4(90, 1, 1, 100)
	require.NoError(t, err)

	// a point in view is in front of every frustum plane
	inside := NewVector3(0, 0, -10)
	outside := NewVector3(0, 0, 10)
	for p := ClipPlaneLeft; p <= ClipPlaneFar; p++ {
		plane := NewPlaneFromMatrix4(proj, p)
		assert.InDelta(t, 1, plane.Normal().Len(), 1e-5)
		assert.Equal(t, PointInFrontOfPlane, plane.ClassifyPoint(inside), "plane %d", p)
	}
	assert.Equal(t, PointBehindPlane, NewPlaneFromMatrix4(proj, ClipPlaneNear).ClassifyPoint(outside))
	assert.Equal(t, PointBehindPlane, NewPlaneFromMatrix4(proj, ClipPlaneLeft).ClassifyPoint(NewVector3(-20, 0, -10)))
	assert.Equal(t, PointBehindPlane, NewPlaneFromMatrix4(proj, ClipPlaneFar).ClassifyPoint(NewVector3(0, 0, -200)))
}
