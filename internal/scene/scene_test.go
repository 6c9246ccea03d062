package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAddKeepsOrder(t *testing.T) {
	g := NewNode("group")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	require.NoError(t, g.Add(a, b))
	require.NoError(t, g.Add(c))

	kids := g.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{kids[0].Name, kids[1].Name, kids[2].Name})
	assert.Same(t, g, c.Parent())
}

func TestNodeAddRejectsSharedParent(t *testing.T) {
	g1, g2 := NewNode("g1"), NewNode("g2")
	child := NewNode("child")
	require.NoError(t, g1.Add(child))

	err := g2.Add(child)
	assert.ErrorIs(t, err, ErrAlreadyParented)
	assert.Empty(t, g2.Children())
	assert.Same(t, g1, child.Parent())
}

func TestNodeAddRejectsDuplicateInOneCall(t *testing.T) {
	g := NewNode("g")
	c := NewNode("c")
	assert.ErrorIs(t, g.Add(c, c), ErrAlreadyParented)
	assert.Empty(t, g.Children())
	assert.Nil(t, c.Parent())
}

func TestNodeAddRejectsCycles(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	require.NoError(t, root.Add(mid))
	require.NoError(t, mid.Add(leaf))

	// Parented or not, an ancestor is reported as a cycle.
	assert.ErrorIs(t, leaf.Add(leaf), ErrCycle)
	assert.ErrorIs(t, leaf.Add(mid), ErrCycle)
	assert.ErrorIs(t, leaf.Add(root), ErrCycle)
	assert.ErrorIs(t, mid.Add(mid), ErrCycle)
	assert.Empty(t, leaf.Children())
	assert.Equal(t, []*Node{leaf}, mid.Children())
	assert.Same(t, root, mid.Parent())
}

func TestMustAddPanics(t *testing.T) {
	n := NewNode("n")
	assert.Panics(t, func() { n.MustAdd(n) })
}

func TestWorldMatrixComposesParents(t *testing.T) {
	group := NewNode("group").SetPosition(10, 0, 0)
	child := NewNode("child").SetPosition(0, 2, 0)
	group.MustAdd(child)

	pos := child.WorldMatrix().Col(3).Vec3()
	assert.InDelta(t, 10, pos.X(), 1e-6)
	assert.InDelta(t, 2, pos.Y(), 1e-6)
	assert.InDelta(t, 0, pos.Z(), 1e-6)
}

func TestWorldMatrixAppliesParentRotation(t *testing.T) {
	// A quarter turn about Y maps local +X to world -Z.
	group := NewNode("group").SetRotation(0, mgl32.DegToRad(90), 0)
	child := NewNode("child").SetPosition(1, 0, 0)
	group.MustAdd(child)

	pos := child.WorldMatrix().Col(3).Vec3()
	assert.InDelta(t, 0, pos.X(), 1e-6)
	assert.InDelta(t, -1, pos.Z(), 1e-6)
}

func TestWalkSkipsPrunedSubtrees(t *testing.T) {
	root := NewNode("root")
	hidden := NewNode("hidden")
	hidden.MustAdd(NewNode("under-hidden"))
	root.MustAdd(hidden, NewNode("shown"))

	var seen []string
	root.Walk(mgl32.Ident4(), func(n *Node, _ mgl32.Mat4) bool {
		seen = append(seen, n.Name)
		return n.Name != "hidden"
	})
	assert.Equal(t, []string{"root", "hidden", "shown"}, seen)
}

func TestScenePlacedLights(t *testing.T) {
	sc := New()
	amb := &AmbientLight{LightBase{Name: "ambient", Intensity: 0.4}}
	sun := &DirectionalLight{LightBase: LightBase{Name: "sun"}, Position: mgl32.Vec3{5, 10, 7}}
	sc.AddLight(amb)
	sc.AddLight(sun)

	pole := NewNode("pole").SetPosition(-10, 0, 10)
	lamp := NewNode("lamp").SetPosition(0, 3.9, 0)
	lamp.Light = &PointLight{LightBase: LightBase{Name: "lamp"}, Range: 15}
	pole.MustAdd(lamp)
	require.NoError(t, sc.Add(pole))

	placed := sc.PlacedLights()
	require.Len(t, placed, 3)
	assert.Same(t, amb, placed[0].Light)
	assert.Equal(t, mgl32.Vec3{5, 10, 7}, placed[1].Position)
	assert.InDelta(t, -10, placed[2].Position.X(), 1e-6)
	assert.InDelta(t, 3.9, placed[2].Position.Y(), 1e-6)
	assert.InDelta(t, 10, placed[2].Position.Z(), 1e-6)

	st := sc.Stats()
	assert.Equal(t, Stats{Nodes: 2, Meshes: 0, Lights: 3}, st)
}

func TestDirectionalLightDirection(t *testing.T) {
	dl := &DirectionalLight{Position: mgl32.Vec3{0, 10, 0}}
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, dl.Direction())
}

func TestHex(t *testing.T) {
	c := Hex(0x87ceeb)
	assert.Equal(t, uint8(0x87), c.R)
	assert.Equal(t, uint8(0xce), c.G)
	assert.Equal(t, uint8(0xeb), c.B)
	assert.Equal(t, uint8(0xff), c.A)
}
