package gltfutil

import (
	"github.com/binzume/geomkit/geom"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

var ErrNoMesh = errors.New("gltfutil: no mesh")

// AccessorBounds returns the box stored in the accessor's min and max.
func AccessorBounds(acr *gltf.Accessor) (geom.AABB3, error) {
	if len(acr.Min) < 3 || len(acr.Max) < 3 {
		return geom.AABB3{}, errors.Errorf("accessor %q has no 3D min/max", acr.Name)
	}
	return geom.AABB3{
		Min: geom.NewVector3FromSlice(acr.Min),
		Max: geom.NewVector3FromSlice(acr.Max),
	}.Sanitize(), nil
}

func setAccessorBounds(acr *gltf.Accessor, b geom.AABB3) {
	lo, hi := b.Min.Array(), b.Max.Array()
	acr.Min = lo[:]
	acr.Max = hi[:]
}

// MeshBounds reads every POSITION attribute of the mesh.
func MeshBounds(doc *gltf.Document, mesh uint32) (geom.AABB3, error) {
	if int(mesh) >= len(doc.Meshes) {
		return geom.AABB3{}, errors.Errorf("mesh %d out of range", mesh)
	}
	var bounds geom.AABB3
	found := false
	for i, p := range doc.Meshes[mesh].Primitives {
		a, ok := p.Attributes["POSITION"]
		if !ok {
			continue
		}
		acr, err := accessor(doc, a)
		if err != nil {
			return geom.AABB3{}, errors.Wrapf(err, "mesh %d primitive %d", mesh, i)
		}
		if acr.Sparse != nil {
			logger.Warn("sparse accessor is not supported", zap.Uint32("mesh", mesh), zap.Int("primitive", i))
			continue
		}
		pos, err := modeler.ReadPosition(doc, acr, [][3]float32{})
		if err != nil {
			return geom.AABB3{}, errors.Wrapf(err, "mesh %d primitive %d", mesh, i)
		}
		for _, v := range pos {
			pt := geom.NewVector3FromArray(v)
			if !found {
				bounds = geom.AABB3{Min: pt, Max: pt}
				found = true
			} else {
				bounds = bounds.ExpandToPoint(pt)
			}
		}
	}
	if !found {
		return geom.AABB3{}, errors.Wrapf(ErrNoMesh, "mesh %d has no positions", mesh)
	}
	return bounds, nil
}

// SceneBounds returns the world space box of every node with a mesh.
func SceneBounds(doc *gltf.Document) (geom.AABB3, error) {
	world, err := WorldMatrices(doc)
	if err != nil {
		return geom.AABB3{}, err
	}
	var bounds geom.AABB3
	found := false
	for i, n := range doc.Nodes {
		if n.Mesh == nil {
			continue
		}
		b, err := MeshBounds(doc, *n.Mesh)
		if errors.Is(err, ErrNoMesh) {
			continue
		} else if err != nil {
			return geom.AABB3{}, errors.Wrapf(err, "node %d", i)
		}
		b = b.Transform(world[i])
		if !found {
			bounds = b
			found = true
		} else {
			bounds = bounds.ExpandToContain(b)
		}
	}
	if !found {
		return geom.AABB3{}, ErrNoMesh
	}
	return bounds, nil
}
