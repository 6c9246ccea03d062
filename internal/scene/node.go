package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrAlreadyParented is returned when adding a node that already belongs to another parent.
	ErrAlreadyParented = errors.New("scene: node already has a parent")
	// ErrCycle is returned when adding a node under itself or one of its descendants.
	ErrCycle = errors.New("scene: node would become its own ancestor")
)

// Mesh is the drawable payload of a leaf node.
type Mesh struct {
	Geometry      Geometry
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

// Node is an element of the scene tree: a named local transform with ordered children.
// A node may carry a Mesh or a Light; such nodes are leaves by convention.
type Node struct {
	Name      string
	Transform Transform
	Mesh      *Mesh
	Light     Light

	parent   *Node
	children []*Node
}

// NewNode returns an empty group node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: Identity()}
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Add appends children in order. Nothing is added if any child would break the tree:
// a child that already has a parent, or one that is n itself or an ancestor of n.
func (n *Node) Add(children ...*Node) error {
	for i, c := range children {
		for p := n; p != nil; p = p.parent {
			if p == c {
				return fmt.Errorf("add %q to %q: %w", c.Name, n.Name, ErrCycle)
			}
		}
		if c.parent != nil || slices.Contains(children[:i], c) {
			return fmt.Errorf("add %q to %q: %w", c.Name, n.Name, ErrAlreadyParented)
		}
	}
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return nil
}

// MustAdd is Add for construction code with a fixed shape; it panics on error.
func (n *Node) MustAdd(children ...*Node) *Node {
	if err := n.Add(children...); err != nil {
		panic(err)
	}
	return n
}

// SetName renames the node and returns it.
func (n *Node) SetName(name string) *Node {
	n.Name = name
	return n
}

// SetPosition sets the local position and returns the node.
func (n *Node) SetPosition(x, y, z float32) *Node {
	n.Transform.Position = mgl32.Vec3{x, y, z}
	return n
}

// SetRotation sets the local Euler rotation in radians and returns the node.
func (n *Node) SetRotation(x, y, z float32) *Node {
	n.Transform.Rotation = mgl32.Vec3{x, y, z}
	return n
}

// WorldMatrix composes the local matrices from the root down to n.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul4(m)
	}
	return m
}

// Walk visits n and its descendants depth first, parents before children, passing each
// node's world matrix. parent is the world matrix of n's parent. Returning false from fn
// skips that node's children.
func (n *Node) Walk(parent mgl32.Mat4, fn func(n *Node, world mgl32.Mat4) bool) {
	world := parent.Mul4(n.Transform.Matrix())
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		c.Walk(world, fn)
	}
}

// Find returns the first node named name in n's subtree (including n), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Meshes returns every mesh-carrying node in n's subtree in walk order.
func (n *Node) Meshes() []*Node {
	var out []*Node
	n.Walk(mgl32.Ident4(), func(c *Node, _ mgl32.Mat4) bool {
		if c.Mesh != nil {
			out = append(out, c)
		}
		return true
	})
	return out
}
