package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/kinema/engine/core"
	"github.com/spaghettifunk/kinema/engine/math"
	"gopkg.in/yaml.v3"
)

// Loader builds a graph from a file on disk.
type Loader interface {
	Load(path string) (*Graph, error)
}

var loaders = map[string]Loader{
	".toml": &TOMLLoader{},
	".yaml": &YAMLLoader{},
	".yml":  &YAMLLoader{},
	".gltf": &GLTFLoader{},
	".glb":  &GLTFLoader{},
}

// LoaderFor returns the loader registered for the extension of path.
func LoaderFor(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, exists := loaders[ext]
	if !exists {
		return nil, fmt.Errorf("%s: %w", path, core.ErrUnsupportedFormat)
	}
	return loader, nil
}

// LoadFile loads a scene, picking the loader from the file extension.
func LoadFile(path string) (*Graph, error) {
	loader, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	g, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	core.LogDebug("loaded %d nodes from %s", g.Len(), path)
	return g, nil
}

// NodeSpec is the on-disk description of a node shared by the TOML and
// YAML formats. Angles are in degrees.
type NodeSpec struct {
	Name          string    `toml:"name" yaml:"name"`
	Parent        string    `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Position      []float32 `toml:"position,omitempty" yaml:"position,omitempty"`
	RotationEuler []float32 `toml:"rotation_euler,omitempty" yaml:"rotation_euler,omitempty"`
	Rotation      []float32 `toml:"rotation,omitempty" yaml:"rotation,omitempty"`
	Scale         []float32 `toml:"scale,omitempty" yaml:"scale,omitempty"`
}

// File is the document layout of TOML and YAML scenes.
type File struct {
	Nodes []NodeSpec `toml:"node" yaml:"nodes"`
}

type TOMLLoader struct{}

func (l *TOMLLoader) Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

type YAMLLoader struct{}

func (l *YAMLLoader) Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Build turns the node list into a graph. Nodes may be listed before their
// parents.
func (f File) Build() (*Graph, error) {
	names := make(map[string]bool, len(f.Nodes))
	for _, spec := range f.Nodes {
		if spec.Name == "" {
			return nil, errors.New("node without a name")
		}
		if names[spec.Name] {
			return nil, fmt.Errorf("node %q: %w", spec.Name, core.ErrDuplicateNode)
		}
		names[spec.Name] = true
	}
	for _, spec := range f.Nodes {
		if spec.Parent != "" && !names[spec.Parent] {
			return nil, fmt.Errorf("parent %q of %q: %w", spec.Parent, spec.Name, core.ErrNodeNotFound)
		}
	}

	g := NewGraph()
	pending := f.Nodes
	for len(pending) > 0 {
		var deferred []NodeSpec
		for _, spec := range pending {
			parent := uuid.Nil
			if spec.Parent != "" {
				p, err := g.Lookup(spec.Parent)
				if err != nil {
					deferred = append(deferred, spec)
					continue
				}
				parent = p.ID
			}
			local, err := spec.Transform()
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}
			if _, err := g.Add(spec.Name, parent, local); err != nil {
				return nil, err
			}
		}
		if len(deferred) == len(pending) {
			return nil, fmt.Errorf("node %q: %w", deferred[0].Name, core.ErrHierarchyCycle)
		}
		pending = deferred
	}
	return g, nil
}

// Transform converts the spec into a local transform.
func (s NodeSpec) Transform() (math.Transform, error) {
	t := math.NewTransformIdentity()

	if s.Position != nil {
		v, err := vec3(s.Position, "position")
		if err != nil {
			return t, err
		}
		t.Position = v
	}

	switch {
	case s.Rotation != nil && s.RotationEuler != nil:
		return t, errors.New("both rotation and rotation_euler are set")
	case s.Rotation != nil:
		if len(s.Rotation) != 4 {
			return t, fmt.Errorf("rotation needs 4 components, got %d", len(s.Rotation))
		}
		q := math.NewQuat(s.Rotation[0], s.Rotation[1], s.Rotation[2], s.Rotation[3])
		if q.Normal() < math.SmallEpsilon {
			return t, errors.New("rotation has zero length")
		}
		t.Rotation = q.Normalized()
	case s.RotationEuler != nil:
		e, err := vec3(s.RotationEuler, "rotation_euler")
		if err != nil {
			return t, err
		}
		t.Rotation = math.NewQuatFromEulerAngles(
			math.DegreeToRadian(e.X),
			math.DegreeToRadian(e.Y),
			math.DegreeToRadian(e.Z),
		)
	}

	if s.Scale != nil {
		v, err := vec3(s.Scale, "scale")
		if err != nil {
			return t, err
		}
		if v.X == 0 || v.Y == 0 || v.Z == 0 {
			return t, core.ErrDegenerateTransform
		}
		t.Scale = v
	}

	if !t.IsValid() {
		return t, fmt.Errorf("non-finite values in %+v", s)
	}
	return t, nil
}

func vec3(values []float32, field string) (math.Vec3, error) {
	if len(values) != 3 {
		return math.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", field, len(values))
	}
	return math.NewVec3(values[0], values[1], values[2]), nil
}

// Spec converts a graph back to its file form, in resolve order.
func (g *Graph) Spec() File {
	resolved := g.Resolve()
	names := make(map[uuid.UUID]string, len(resolved))
	for _, r := range resolved {
		names[r.ID] = r.Name
	}

	f := File{Nodes: make([]NodeSpec, 0, len(resolved))}
	for _, r := range resolved {
		p, q, s := r.Local.Position, r.Local.Rotation, r.Local.Scale
		f.Nodes = append(f.Nodes, NodeSpec{
			Name:     r.Name,
			Parent:   names[r.Parent],
			Position: []float32{p.X, p.Y, p.Z},
			Rotation: []float32{q.X, q.Y, q.Z, q.W},
			Scale:    []float32{s.X, s.Y, s.Z},
		})
	}
	return f
}
