package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRay2_IntersectLineSegment(t *testing.T) {
	r := NewRay2(0, 0, 1, 0)

	p, ok := r.IntersectLineSegment(NewVector2(2, -1), NewVector2(2, 1))
	require.True(t, ok)
	assert.True(t, p.Equals(NewVector2(2, 0)), p)

	_, ok = r.IntersectLineSegment(NewVector2(-2, -1), NewVector2(-2, 1))
	assert.False(t, ok, "segment behind the ray")

	_, ok = r.IntersectLineSegment(NewVector2(2, 1), NewVector2(2, 3))
	assert.False(t, ok, "line hit outside the segment")

	_, ok = r.IntersectLineSegment(NewVector2(0, 1), NewVector2(5, 1))
	assert.False(t, ok, "parallel")

	p, ok = NewRay2FromPoints(NewVector2(0, 0), NewVector2(1, 1)).IntersectLineSegment(NewVector2(4, 0), NewVector2(0, 4))
	require.True(t, ok)
	assert.True(t, p.Equals(NewVector2(2, 2)), p)

	p, ok = r.IntersectRay2(NewRay2(3, 5, 0, -1))
	require.True(t, ok)
	assert.True(t, p.Equals(NewVector2(3, 0)), p)
	_, ok = r.IntersectRay2(NewRay2(3, 5, 0, 1))
	assert.False(t, ok)
}

func TestRay2_IntersectShapes(t *testing.T) {
	r := NewRay2(0, 0, 1, 0)

	hit, ok := r.IntersectTriangle(NewVector2(2, -1), NewVector2(4, 0), NewVector2(2, 1))
	require.True(t, ok)
	assert.True(t, hit.Point.Equals(NewVector2(2, 0)), hit)
	assert.True(t, hit.Normal.Equals(NewVector2(-1, 0)), hit)
	assert.InDelta(t, 2, hit.Distance, 1e-5)

	// winding does not matter
	hit, ok = r.IntersectTriangle(NewVector2(2, 1), NewVector2(4, 0), NewVector2(2, -1))
	require.True(t, ok)
	assert.True(t, hit.Normal.Equals(NewVector2(-1, 0)), hit)

	_, ok = r.IntersectTriangle(NewVector2(2, 1), NewVector2(4, 2), NewVector2(2, 3))
	assert.False(t, ok)

	hit, ok = r.IntersectBox(NewVector2(2, -1), NewVector2(4, -1), NewVector2(4, 1), NewVector2(2, 1))
	require.True(t, ok)
	assert.True(t, hit.Point.Equals(NewVector2(2, 0)), hit)
	assert.True(t, hit.Normal.Equals(NewVector2(-1, 0)), hit)
	assert.InDelta(t, 2, hit.Distance, 1e-5)

	// from inside only the far edge faces away, so there is no hit
	_, ok = NewRay2(3, 0, 1, 0).IntersectBox(NewVector2(2, -1), NewVector2(4, -1), NewVector2(4, 1), NewVector2(2, 1))
	assert.False(t, ok)

	hit, ok = NewRay2(0, 5, 0, -2).IntersectAABB(NewAABB2(Vector2{}, 2, 2))
	require.True(t, ok)
	assert.True(t, hit.Point.Equals(NewVector2(0, 1)), hit)
	assert.True(t, hit.Normal.Equals(NewVector2(0, 1)), hit)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
}

func TestRay2_IntersectCircle(t *testing.T) {
	hit, ok := NewRay2(0, 0, 1, 0).IntersectCircle(NewVector2(5, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
	assert.True(t, hit.Point.Equals(NewVector2(4, 0)), hit)
	assert.True(t, hit.Normal.Equals(NewVector2(-1, 0)), hit)

	// direction length does not change the distance
	hit, ok = NewRay2(0, 0, 3, 0).IntersectCircle(NewVector2(5, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)

	// starting inside takes the exit point
	hit, ok = NewRay2(5, 0, 1, 0).IntersectCircle(NewVector2(5, 0), 1)
	require.True(t, ok)
	assert.True(t, hit.Point.Equals(NewVector2(6, 0)), hit)

	_, ok = NewRay2(0, 2, 1, 0).IntersectCircle(NewVector2(5, 0), 1)
	assert.False(t, ok, "miss")
	_, ok = NewRay2(0, 0, -1, 0).IntersectCircle(NewVector2(5, 0), 1)
	assert.False(t, ok, "behind")
}

func TestRay3_IntersectPlane(t *testing.T) {
	plane := NewPlaneFromPointNormal(NewVector3(0, 0, -5), Vector3PosZ)

	hit, ok := NewRay3(0, 0, 0, 0, 0, -1).IntersectPlane(plane)
	require.True(t, ok)
	assert.InDelta(t, 5, hit.Distance, 1e-5)
	assertVector3(t, NewVector3(0, 0, -5), hit.Point)
	assertVector3(t, Vector3PosZ, hit.Normal)

	hit, ok = NewRay3(0, 10, 10, 0, 0, -1).IntersectPlane(NewPlaneFromNormalAndDistance(Vector3PosZ, 0))
	require.True(t, ok)
	assertVector3(t, NewVector3(0, 10, 0), hit.Point)

	_, ok = NewRay3(0, 0, 0, 0, 0, 1).IntersectPlane(plane)
	assert.False(t, ok, "plane behind the ray")
	_, ok = NewRay3(0, 0, 0, 1, 0, 0).IntersectPlane(plane)
	assert.False(t, ok, "parallel")

	// short direction vectors still hit
	hit, ok = NewRay3(0, 0, 0, 0, 0, -1e-5).IntersectPlane(plane)
	require.True(t, ok)
	assert.InDelta(t, 5, hit.Distance, 1e-3)
	assertVector3(t, NewVector3(0, 0, -5), hit.Point)
	_, ok = NewRay3(0, 0, 0, 1e-5, 0, 0).IntersectPlane(plane)
	assert.False(t, ok, "short parallel")
	_, ok = NewRay3(0, 0, 0, 0, 0, 0).IntersectPlane(plane)
	assert.False(t, ok, "zero direction")
}

func TestRay3_IntersectTriangle(t *testing.T) {
	v0, v1, v2 := NewVector3(-1, -1, 0), NewVector3(1, -1, 0), NewVector3(0, 1, 0)

	hit, ok := NewRay3(0, 0, 5, 0, 0, -2).IntersectTriangle(v0, v1, v2)
	require.True(t, ok)
	assertVector3(t, Vector3Zero, hit.Point)
	assertVector3(t, Vector3PosZ, hit.Normal)
	assert.InDelta(t, 5, hit.Distance, 1e-5)

	_, ok = NewRay3(0, 0, -5, 0, 0, 1).IntersectTriangle(v0, v1, v2)
	assert.False(t, ok, "back face")
	_, ok = NewRay3(0, 0, -5, 0, 0, 1).IntersectTriangle(v0, v2, v1)
	assert.True(t, ok, "front face after flipping winding")
	_, ok = NewRay3(3, 0, 5, 0, 0, -1).IntersectTriangle(v0, v1, v2)
	assert.False(t, ok, "outside")
	_, ok = NewRay3(0, 0, 5, 0, 0, 1).IntersectTriangle(v0, v1, v2)
	assert.False(t, ok, "behind")
}

func TestRay3_IntersectAABB(t *testing.T) {
	b := NewAABB3(Vector3Zero, 2, 2, 2)

	hit, ok := NewRay3(-5, 0, 0, 1, 0, 0).IntersectAABB(b)
	require.True(t, ok)
	assertVector3(t, NewVector3(-1, 0, 0), hit.Point)
	assertVector3(t, Vector3NegX, hit.Normal)
	assert.InDelta(t, 4, hit.Distance, 1e-5)

	hit, ok = NewRay3(0.5, 5, 0.5, 0, -1, 0).IntersectAABB(b)
	require.True(t, ok)
	assertVector3(t, NewVector3(0.5, 1, 0.5), hit.Point)
	assertVector3(t, Vector3PosY, hit.Normal)

	hit, ok = NewRay3(0, 0, 0, 1, 1, 0).IntersectAABB(b)
	require.True(t, ok, "start inside")
	assert.Equal(t, Element(0), hit.Distance)

	_, ok = NewRay3(-5, 3, 0, 1, 0, 0).IntersectAABB(b)
	assert.False(t, ok)
	_, ok = NewRay3(-5, 0, 0, -1, 0, 0).IntersectAABB(b)
	assert.False(t, ok, "behind")

	r := NewRay3(-5, 0, 0, 1, 0, 0).Transform(NewTranslateMatrix4(0, 3, 0))
	_, ok = r.IntersectAABB(b)
	assert.False(t, ok, "transformed ray")
}
