package scene

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/kinema/engine/core"
	"github.com/spaghettifunk/kinema/engine/math"
)

// Node is a named transform below an optional parent. Parent is uuid.Nil for
// root nodes.
type Node struct {
	ID     uuid.UUID
	Name   string
	Parent uuid.UUID
	Local  math.Transform
}

// ResolvedNode pairs a node with its global transform.
type ResolvedNode struct {
	Node
	Global math.Transform
}

// Graph is a parent/child hierarchy of transforms. It is safe for
// concurrent use.
type Graph struct {
	mutex sync.RWMutex

	nodes  map[uuid.UUID]*Node
	byName map[string]uuid.UUID
	// insertion order, used to keep siblings stable
	order []uuid.UUID
}

func NewGraph() *Graph {
	return &Graph{
		nodes:  make(map[uuid.UUID]*Node),
		byName: make(map[string]uuid.UUID),
	}
}

// Add inserts a node below parent (uuid.Nil for a root) and returns its id.
func (g *Graph) Add(name string, parent uuid.UUID, local math.Transform) (uuid.UUID, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, exists := g.byName[name]; exists {
		return uuid.Nil, fmt.Errorf("add %q: %w", name, core.ErrDuplicateNode)
	}
	if parent != uuid.Nil {
		if _, exists := g.nodes[parent]; !exists {
			return uuid.Nil, fmt.Errorf("add %q below %s: %w", name, parent, core.ErrNodeNotFound)
		}
	}

	id := uuid.New()
	g.nodes[id] = &Node{ID: id, Name: name, Parent: parent, Local: local}
	g.byName[name] = id
	g.order = append(g.order, id)
	return id, nil
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id uuid.UUID) (Node, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, exists := g.nodes[id]
	if !exists {
		return Node{}, fmt.Errorf("node %s: %w", id, core.ErrNodeNotFound)
	}
	return *n, nil
}

// Lookup returns the node with the given name.
func (g *Graph) Lookup(name string) (Node, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	id, exists := g.byName[name]
	if !exists {
		return Node{}, fmt.Errorf("node %q: %w", name, core.ErrNodeNotFound)
	}
	return *g.nodes[id], nil
}

func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// Children returns the direct children of id in insertion order. Passing
// uuid.Nil returns the roots.
func (g *Graph) Children(id uuid.UUID) ([]Node, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if id != uuid.Nil {
		if _, exists := g.nodes[id]; !exists {
			return nil, fmt.Errorf("children of %s: %w", id, core.ErrNodeNotFound)
		}
	}
	var out []Node
	for _, childID := range g.order {
		if n := g.nodes[childID]; n.Parent == id {
			out = append(out, *n)
		}
	}
	return out, nil
}

// SetLocal replaces the local transform of id.
func (g *Graph) SetLocal(id uuid.UUID, local math.Transform) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return fmt.Errorf("set local %s: %w", id, core.ErrNodeNotFound)
	}
	n.Local = local
	return nil
}

// Global returns the transform of id relative to the root of the hierarchy.
func (g *Graph) Global(id uuid.UUID) (math.Transform, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if _, exists := g.nodes[id]; !exists {
		return math.Transform{}, fmt.Errorf("global %s: %w", id, core.ErrNodeNotFound)
	}
	return g.global(id), nil
}

func (g *Graph) global(id uuid.UUID) math.Transform {
	if id == uuid.Nil {
		return math.NewTransformIdentity()
	}
	n := g.nodes[id]
	out := math.Transform{}
	out.SetGlobalTransform(g.global(n.Parent), n.Local)
	return out
}

// SetGlobal stores the local transform that places id at global.
func (g *Graph) SetGlobal(id uuid.UUID, global math.Transform) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return fmt.Errorf("set global %s: %w", id, core.ErrNodeNotFound)
	}
	if err := g.setGlobal(n, global); err != nil {
		return fmt.Errorf("set global %q: %w", n.Name, err)
	}
	return nil
}

func (g *Graph) setGlobal(n *Node, global math.Transform) error {
	parent := g.global(n.Parent)
	if parent.Scale.X == 0 || parent.Scale.Y == 0 || parent.Scale.Z == 0 {
		return core.ErrDegenerateTransform
	}
	n.Local.SetLocalTransform(parent, global)
	return nil
}

// Reparent moves id below parent (uuid.Nil for a root). With keepGlobal the
// local transform is recomputed so the node does not move in world space.
func (g *Graph) Reparent(id, parent uuid.UUID, keepGlobal bool) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return fmt.Errorf("reparent %s: %w", id, core.ErrNodeNotFound)
	}
	if parent != uuid.Nil {
		if _, exists := g.nodes[parent]; !exists {
			return fmt.Errorf("reparent %q below %s: %w", n.Name, parent, core.ErrNodeNotFound)
		}
		if g.isAncestor(id, parent) {
			return fmt.Errorf("reparent %q below %q: %w", n.Name, g.nodes[parent].Name, core.ErrHierarchyCycle)
		}
	}

	global := g.global(id)
	previous := n.Parent
	n.Parent = parent
	if keepGlobal {
		if err := g.setGlobal(n, global); err != nil {
			n.Parent = previous
			return fmt.Errorf("reparent %q: %w", n.Name, err)
		}
	}
	return nil
}

// isAncestor reports whether ancestor is node or lies on its parent chain.
func (g *Graph) isAncestor(ancestor, node uuid.UUID) bool {
	for current := node; current != uuid.Nil; current = g.nodes[current].Parent {
		if current == ancestor {
			return true
		}
	}
	return false
}

// Resolve computes every global transform. Parents come before their
// children and siblings keep insertion order.
func (g *Graph) Resolve() []ResolvedNode {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	children := make(map[uuid.UUID][]uuid.UUID, len(g.nodes))
	for _, id := range g.order {
		parent := g.nodes[id].Parent
		children[parent] = append(children[parent], id)
	}

	out := make([]ResolvedNode, 0, len(g.nodes))
	var visit func(id uuid.UUID, parentGlobal math.Transform)
	visit = func(id uuid.UUID, parentGlobal math.Transform) {
		n := g.nodes[id]
		r := ResolvedNode{Node: *n}
		r.Global.SetGlobalTransform(parentGlobal, n.Local)
		out = append(out, r)
		for _, child := range children[id] {
			visit(child, r.Global)
		}
	}
	for _, root := range children[uuid.Nil] {
		visit(root, math.NewTransformIdentity())
	}
	return out
}
