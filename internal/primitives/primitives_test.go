package primitives

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-diorama/internal/scene"
)

var gray = scene.Standard(scene.Hex(0x888888), 0.2, 0.9)

func TestNewKeepsParametersExactly(t *testing.T) {
	tests := []scene.Geometry{
		scene.Box(1.5, 0.5, 0.5),
		scene.Plane(0.1, 2.5),
		scene.Cylinder(0.05, 0.07, 0.7, 16),
		scene.Sphere(0.1, 16, 16),
		scene.Torus(0.3, 0.1, 16, 32),
	}
	for _, g := range tests {
		t.Run(string(g.Kind), func(t *testing.T) {
			n, err := New(g, gray)
			require.NoError(t, err)
			require.NotNil(t, n.Mesh)
			assert.Equal(t, g, n.Mesh.Geometry)
			assert.Equal(t, gray, n.Mesh.Material)
			assert.Equal(t, string(g.Kind), n.Name)
			assert.False(t, n.Mesh.CastShadow)
			assert.False(t, n.Mesh.ReceiveShadow)
			assert.Equal(t, mgl32.Ident4(), n.Transform.Matrix())
			assert.Empty(t, n.Children())
		})
	}
}

func TestNewRejectsInvalidGeometry(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name string
		g    scene.Geometry
	}{
		{"box zero width", scene.Box(0, 1, 1)},
		{"box negative depth", scene.Box(1, 1, -1)},
		{"box NaN height", scene.Box(1, nan, 1)},
		{"plane infinite", scene.Plane(inf, 1)},
		{"plane zero height", scene.Plane(1, 0)},
		{"cylinder zero top", scene.Cylinder(0, 1, 1, 8)},
		{"cylinder negative height", scene.Cylinder(1, 1, -4, 8)},
		{"cylinder two segments", scene.Cylinder(1, 1, 1, 2)},
		{"sphere zero radius", scene.Sphere(0, 16, 16)},
		{"sphere few width segments", scene.Sphere(1, 2, 16)},
		{"sphere few height segments", scene.Sphere(1, 16, 0)},
		{"torus zero tube", scene.Torus(0.3, 0, 16, 32)},
		{"torus few radial", scene.Torus(0.3, 0.1, 2, 32)},
		{"torus few tubular", scene.Torus(0.3, 0.1, 16, -1)},
		{"unknown kind", scene.Geometry{Kind: "cone", Radius: 1}},
		{"zero value", scene.Geometry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.g, gray)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, n)
		})
	}
}

func TestSegmentBoundary(t *testing.T) {
	_, err := New(scene.Cylinder(1, 1, 1, 3), gray)
	assert.NoError(t, err)
	_, err = New(scene.Torus(1, 0.5, 3, 3), gray)
	assert.NoError(t, err)
}

func TestNewRejectsInvalidMaterial(t *testing.T) {
	box := scene.Box(1, 1, 1)
	tests := []struct {
		name string
		m    scene.Material
	}{
		{"roughness above one", scene.Standard(scene.Hex(0), 1.5, 0)},
		{"negative metalness", scene.Standard(scene.Hex(0), 0.5, -0.1)},
		{"negative emissive", scene.Standard(scene.Hex(0), 0.5, 0.5).WithEmissive(scene.Hex(0xffffcc), -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(box, tt.m)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestMustPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { Must(scene.Box(1, 0, 1), gray) })
	assert.NotPanics(t, func() { Must(scene.Box(1, 1, 1), gray) })
}

func TestErrorNamesField(t *testing.T) {
	_, err := New(scene.Sphere(0.1, 16, 2), gray)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heightSegments")
}
