package gltfutil

import (
	"github.com/binzume/geomkit/geom"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// NodeMatrix returns the local transform of n. Unset TRS fields take their glTF defaults.
func NodeMatrix(n *gltf.Node) geom.Matrix4 {
	if m := n.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return geom.Matrix4(m)
	}
	return geom.NewTRSMatrix4(
		geom.NewVector3FromArray(n.Translation),
		geom.NewQuaternionFromArray(n.RotationOrDefault()),
		geom.NewVector3FromArray(n.ScaleOrDefault()))
}

// SetNodeMatrix stores m as translation, rotation and scale.
func SetNodeMatrix(n *gltf.Node, m geom.Matrix4) {
	t, r, s := m.Decompose()
	n.Translation = t.Array()
	n.Rotation = [4]float32{r.X, r.Y, r.Z, r.W}
	n.Scale = s.Array()
	n.Matrix = gltf.DefaultMatrix
}

func sceneRoots(doc *gltf.Document) []uint32 {
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}
	// no scene: every node that is nobody's child
	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []uint32
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, uint32(i))
		}
	}
	return roots
}

func checkNodes(doc *gltf.Document) error {
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			if int(c) >= len(doc.Nodes) {
				return errors.Errorf("node %d: child %d out of range", i, c)
			}
		}
	}
	return nil
}

// WorldMatrices returns the world transform of every node reachable from the
// default scene, indexed like doc.Nodes. Unreachable nodes keep their local transform.
func WorldMatrices(doc *gltf.Document) ([]geom.Matrix4, error) {
	if err := checkNodes(doc); err != nil {
		return nil, err
	}
	roots := sceneRoots(doc)
	for _, r := range roots {
		if int(r) >= len(doc.Nodes) {
			return nil, errors.Errorf("scene node %d out of range", r)
		}
	}

	world := make([]geom.Matrix4, len(doc.Nodes))
	visited := make([]bool, len(doc.Nodes))
	for i, n := range doc.Nodes {
		world[i] = NodeMatrix(n)
	}

	stack := geom.NewMatrix4Stack()
	var walk func(i uint32)
	walk = func(i uint32) {
		if visited[i] {
			return
		}
		visited[i] = true
		stack.Push()
		stack.Multiply(world[i])
		world[i] = stack.Top()
		for _, c := range doc.Nodes[i].Children {
			walk(c)
		}
		_ = stack.Pop()
	}
	for _, r := range roots {
		walk(r)
	}
	return world, nil
}
