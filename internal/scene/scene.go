// Package scene holds the diorama's data model: a tree of nodes carrying meshes and
// lights, plus the scene-wide lights and background. It is built once and read every frame.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the root of the diorama. Top-level composites are children of an unnamed
// root node; ambient and directional lights are kept on the Scene itself.
type Scene struct {
	Background color.RGBA

	root   *Node
	lights []Light
}

// Stats counts what a scene contains.
type Stats struct {
	Nodes  int
	Meshes int
	Lights int
}

// New returns an empty scene with a black background.
func New() *Scene {
	return &Scene{
		Background: color.RGBA{A: 0xff},
		root:       NewNode(""),
	}
}

// Add attaches top-level composites in order.
func (s *Scene) Add(nodes ...*Node) error {
	return s.root.Add(nodes...)
}

// AddLight registers a scene-wide light.
func (s *Scene) AddLight(l Light) {
	s.lights = append(s.lights, l)
}

// Nodes returns the top-level composites in insertion order.
func (s *Scene) Nodes() []*Node {
	return s.root.Children()
}

// Lights returns the scene-wide lights in insertion order.
func (s *Scene) Lights() []Light {
	out := make([]Light, len(s.lights))
	copy(out, s.lights)
	return out
}

// Find returns the first node with the given name, or nil.
func (s *Scene) Find(name string) *Node {
	for _, n := range s.root.children {
		if f := n.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk visits every node below the root with its world matrix. See Node.Walk.
func (s *Scene) Walk(fn func(n *Node, world mgl32.Mat4) bool) {
	for _, n := range s.root.children {
		n.Walk(mgl32.Ident4(), fn)
	}
}

// PlacedLights resolves every light to world space: scene-wide lights first, then
// lights carried by nodes in walk order. Ambient lights have a zero position.
func (s *Scene) PlacedLights() []PlacedLight {
	out := make([]PlacedLight, 0, len(s.lights))
	for _, l := range s.lights {
		pl := PlacedLight{Light: l}
		if dl, ok := l.(*DirectionalLight); ok {
			pl.Position = dl.Position
		}
		out = append(out, pl)
	}
	s.Walk(func(n *Node, world mgl32.Mat4) bool {
		if n.Light != nil {
			out = append(out, PlacedLight{Light: n.Light, Position: world.Col(3).Vec3()})
		}
		return true
	})
	return out
}

// Stats counts nodes, meshes, and lights (scene-wide plus node-carried).
func (s *Scene) Stats() Stats {
	st := Stats{Lights: len(s.lights)}
	s.Walk(func(n *Node, _ mgl32.Mat4) bool {
		st.Nodes++
		if n.Mesh != nil {
			st.Meshes++
		}
		if n.Light != nil {
			st.Lights++
		}
		return true
	})
	return st
}
