package gltfutil

import (
	"github.com/binzume/geomkit/geom"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/binary"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

func Load(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return doc, nil
}

func Save(doc *gltf.Document, path string) error {
	return errors.Wrapf(gltf.SaveBinary(doc, path), "save %s", path)
}

func positionAccessors(doc *gltf.Document) map[uint32]bool {
	// accessor -> is morph target
	accs := map[uint32]bool{}
	for _, m := range doc.Meshes {
		for _, p := range m.Primitives {
			if a, ok := p.Attributes["POSITION"]; ok {
				accs[a] = false
			}
			for _, t := range p.Targets {
				if a, ok := t["POSITION"]; ok {
					accs[a] = true
				}
			}
		}
	}
	return accs
}

func accessor(doc *gltf.Document, i uint32) (*gltf.Accessor, error) {
	if int(i) >= len(doc.Accessors) {
		return nil, errors.Errorf("accessor %d out of range", i)
	}
	return doc.Accessors[i], nil
}

// accessorData returns the buffer bytes from the start of acr and the stride of its view.
func accessorData(doc *gltf.Document, acr *gltf.Accessor) ([]byte, uint32, error) {
	if acr.BufferView == nil {
		return nil, 0, errors.New("accessor has no buffer view")
	}
	if int(*acr.BufferView) >= len(doc.BufferViews) {
		return nil, 0, errors.Errorf("buffer view %d out of range", *acr.BufferView)
	}
	bufferView := doc.BufferViews[*acr.BufferView]
	if int(bufferView.Buffer) >= len(doc.Buffers) {
		return nil, 0, errors.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	data := doc.Buffers[bufferView.Buffer].Data
	offset := int(bufferView.ByteOffset) + int(acr.ByteOffset)
	if offset > len(data) {
		return nil, 0, errors.Errorf("accessor offset %d exceeds buffer size %d", offset, len(data))
	}
	return data[offset:], bufferView.ByteStride, nil
}

type pendingWrite struct {
	data   []byte
	stride uint32
	values interface{}
}

// Transform scales and then offsets every mesh in doc. Morph targets hold
// displacements and are only scaled. nil leaves the component unchanged.
// doc is only modified when every accessor could be read.
func Transform(doc *gltf.Document, scale *geom.Vector3, offset *geom.Vector3) error {
	if scale == nil && offset == nil {
		return nil
	}
	scaleMat := geom.NewMatrix4()
	if scale != nil {
		scaleMat = geom.NewScaleMatrix4(scale.X, scale.Y, scale.Z)
	}
	invScale, err := scaleMat.Inverse()
	if err != nil {
		return errors.Wrap(err, "scale")
	}
	scaleOffsetMat := scaleMat
	if offset != nil {
		scaleOffsetMat = geom.NewTranslateMatrix4(offset.X, offset.Y, offset.Z).Mul(scaleMat)
	}

	var writes []pendingWrite
	bounds := map[*gltf.Accessor]geom.AABB3{}
	for a, morph := range positionAccessors(doc) {
		acr, err := accessor(doc, a)
		if err != nil {
			return err
		}
		if acr.Sparse != nil {
			logger.Warn("sparse accessor is not supported", zap.Uint32("accessor", a))
			continue
		}
		data, stride, err := accessorData(doc, acr)
		if err != nil {
			return errors.Wrapf(err, "accessor %d", a)
		}
		pos, err := modeler.ReadPosition(doc, acr, [][3]float32{})
		if err != nil {
			return errors.Wrapf(err, "read accessor %d", a)
		}

		mat := scaleOffsetMat
		if morph {
			mat = scaleMat
		}
		for i := range pos {
			v := mat.ApplyTo(geom.NewVector3FromArray(pos[i]))
			v.ToArray(pos[i][:])
			if i == 0 {
				bounds[acr] = geom.AABB3{Min: v, Max: v}
			} else {
				bounds[acr] = bounds[acr].ExpandToPoint(v)
			}
		}
		writes = append(writes, pendingWrite{data, stride, pos})
	}

	// joints move with the scaled skeleton: IBM' = S * IBM * S^-1
	for i, skin := range doc.Skins {
		if skin.InverseBindMatrices == nil {
			continue
		}
		acr, err := accessor(doc, *skin.InverseBindMatrices)
		if err != nil {
			return errors.Wrapf(err, "skin %d", i)
		}
		if acr.BufferView == nil || acr.Sparse != nil {
			logger.Warn("inverse bind matrices without buffer view are not supported", zap.Int("skin", i))
			continue
		}
		data, stride, err := accessorData(doc, acr)
		if err != nil {
			return errors.Wrapf(err, "skin %d", i)
		}
		if len(data) == 0 {
			continue
		}
		mats := make([][4][4]float32, acr.Count)
		if err := binary.Read(data, stride, mats); err != nil {
			return errors.Wrapf(err, "read inverse bind matrices of skin %d", i)
		}
		for j := range mats {
			m := scaleMat.Mul(matrixFromColumns(mats[j])).Mul(invScale)
			mats[j] = matrixToColumns(m)
		}
		writes = append(writes, pendingWrite{data, stride, mats})
	}

	for _, w := range writes {
		if err := binary.Write(w.data, w.stride, w.values); err != nil {
			return errors.Wrap(err, "write accessor")
		}
	}
	for acr, b := range bounds {
		setAccessorBounds(acr, b)
	}
	for _, node := range doc.Nodes {
		scaleMat.ApplyTo(geom.NewVector3FromArray(node.Translation)).ToArray(node.Translation[:])
	}
	return nil
}

func matrixFromColumns(c [4][4]float32) geom.Matrix4 {
	var m geom.Matrix4
	for i := range c {
		copy(m[i*4:], c[i][:])
	}
	return m
}

func matrixToColumns(m geom.Matrix4) [4][4]float32 {
	var c [4][4]float32
	for i := range c {
		copy(c[i][:], m[i*4:i*4+4])
	}
	return c
}
