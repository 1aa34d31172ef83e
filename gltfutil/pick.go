package gltfutil

import (
	"github.com/binzume/geomkit/geom"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

// SceneHit is a ray hit on a node's mesh, in world space.
type SceneHit struct {
	geom.Ray3Hit
	Node uint32
}

func primitiveIndices(doc *gltf.Document, p *gltf.Primitive, vertexCount int) ([]uint32, error) {
	if p.Indices == nil {
		indices := make([]uint32, vertexCount)
		for i := range indices {
			indices[i] = uint32(i)
		}
		return indices, nil
	}
	acr, err := accessor(doc, *p.Indices)
	if err != nil {
		return nil, err
	}
	return modeler.ReadIndices(doc, acr, []uint32{})
}

// PickMesh returns the nearest front facing triangle of the mesh hit by ray, in mesh space.
func PickMesh(doc *gltf.Document, mesh uint32, ray geom.Ray3) (geom.Ray3Hit, bool, error) {
	if int(mesh) >= len(doc.Meshes) {
		return geom.Ray3Hit{}, false, errors.Errorf("mesh %d out of range", mesh)
	}
	var nearest geom.Ray3Hit
	found := false
	for i, p := range doc.Meshes[mesh].Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			logger.Warn("primitive mode is not supported",
				zap.Uint32("mesh", mesh), zap.Int("primitive", i), zap.Any("mode", p.Mode))
			continue
		}
		a, ok := p.Attributes["POSITION"]
		if !ok {
			continue
		}
		acr, err := accessor(doc, a)
		if err != nil {
			return geom.Ray3Hit{}, false, errors.Wrapf(err, "mesh %d primitive %d", mesh, i)
		}
		pos, err := modeler.ReadPosition(doc, acr, [][3]float32{})
		if err != nil {
			return geom.Ray3Hit{}, false, errors.Wrapf(err, "mesh %d primitive %d", mesh, i)
		}
		indices, err := primitiveIndices(doc, p, len(pos))
		if err != nil {
			return geom.Ray3Hit{}, false, errors.Wrapf(err, "mesh %d primitive %d indices", mesh, i)
		}
		for t := 0; t+2 < len(indices); t += 3 {
			i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
			if int(i0) >= len(pos) || int(i1) >= len(pos) || int(i2) >= len(pos) {
				return geom.Ray3Hit{}, false, errors.Errorf("mesh %d primitive %d: index out of range", mesh, i)
			}
			hit, ok := ray.IntersectTriangle(
				geom.NewVector3FromArray(pos[i0]),
				geom.NewVector3FromArray(pos[i1]),
				geom.NewVector3FromArray(pos[i2]))
			if ok && (!found || hit.Distance < nearest.Distance) {
				nearest = hit
				found = true
			}
		}
	}
	return nearest, found, nil
}

// PickScene tests ray against every node with a mesh and returns the nearest world space hit.
func PickScene(doc *gltf.Document, ray geom.Ray3) (SceneHit, bool, error) {
	world, err := WorldMatrices(doc)
	if err != nil {
		return SceneHit{}, false, err
	}
	var nearest SceneHit
	found := false
	for i, n := range doc.Nodes {
		if n.Mesh == nil {
			continue
		}
		inv, err := world[i].Inverse()
		if err != nil {
			logger.Warn("node is not pickable", zap.Int("node", i), zap.Error(err))
			continue
		}
		hit, ok, err := PickMesh(doc, *n.Mesh, ray.Transform(inv))
		if err != nil {
			return SceneHit{}, false, errors.Wrapf(err, "node %d", i)
		}
		if !ok {
			continue
		}
		p := world[i].ApplyTo(hit.Point)
		d := p.Distance(ray.Start)
		if found && d >= nearest.Distance {
			continue
		}
		nearest = SceneHit{
			Ray3Hit: geom.Ray3Hit{
				Point:    p,
				Normal:   hit.Normal.InverseTransformNormal(inv).Normalize(),
				Distance: d,
			},
			Node: uint32(i),
		}
		found = true
	}
	return nearest, found, nil
}
