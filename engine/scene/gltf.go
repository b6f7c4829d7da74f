package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/qmuntal/gltf"
	"github.com/spaghettifunk/kinema/engine/core"
	"github.com/spaghettifunk/kinema/engine/math"
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// GLTFLoader imports the node hierarchy of a .gltf or .glb file. Meshes and
// other attachments are ignored.
type GLTFLoader struct{}

func (l *GLTFLoader) Load(path string) (*Graph, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	g, err := buildGLTF(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func buildGLTF(doc *gltf.Document) (*Graph, error) {
	parents := make(map[int]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			child := int(c)
			if child < 0 || child >= len(doc.Nodes) {
				return nil, fmt.Errorf("node %d has child %d: %w", i, child, core.ErrNodeNotFound)
			}
			if _, exists := parents[child]; exists {
				return nil, fmt.Errorf("node %d has two parents: %w", child, core.ErrHierarchyCycle)
			}
			parents[child] = i
		}
	}

	g := NewGraph()
	ids := make(map[int]uuid.UUID, len(doc.Nodes))
	used := make(map[string]int)

	var visit func(index int, parent uuid.UUID) error
	visit = func(index int, parent uuid.UUID) error {
		n := doc.Nodes[index]
		local, err := gltfTransform(n)
		if err != nil {
			return fmt.Errorf("node %d: %w", index, err)
		}
		id, err := g.Add(uniqueName(n.Name, index, used), parent, local)
		if err != nil {
			return err
		}
		ids[index] = id
		for _, c := range n.Children {
			if err := visit(int(c), id); err != nil {
				return err
			}
		}
		return nil
	}

	for i := range doc.Nodes {
		if _, hasParent := parents[i]; hasParent {
			continue
		}
		if err := visit(i, uuid.Nil); err != nil {
			return nil, err
		}
	}
	// nodes never reached from a root sit on a parent loop
	if len(ids) != len(doc.Nodes) {
		return nil, core.ErrHierarchyCycle
	}
	return g, nil
}

// uniqueName falls back to the node index for unnamed nodes and suffixes
// repeated names.
func uniqueName(name string, index int, used map[string]int) string {
	if name == "" {
		name = fmt.Sprintf("node_%d", index)
	}
	used[name]++
	if count := used[name]; count > 1 {
		return fmt.Sprintf("%s.%d", name, count-1)
	}
	return name
}

func gltfTransform(n *gltf.Node) (math.Transform, error) {
	if n.Matrix != identityMatrix && n.Matrix != [16]float64{} {
		var data [16]float32
		for i, v := range n.Matrix {
			data[i] = float32(v)
		}
		t, ok := math.NewTransformFromMat4(math.NewMat4FromArray(data, true))
		if !ok {
			return t, core.ErrDegenerateTransform
		}
		return t, nil
	}

	t := math.NewTransformIdentity()
	t.Position = math.NewVec3(float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2]))

	q := math.NewQuat(float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2]), float32(n.Rotation[3]))
	if q.Normal() > math.SmallEpsilon {
		t.Rotation = q.Normalized()
	}

	if n.Scale != [3]float64{} {
		t.Scale = math.NewVec3(float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2]))
	}
	return t, nil
}
