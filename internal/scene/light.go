package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Light is one of *AmbientLight, *DirectionalLight, or *PointLight.
// Ambient and directional lights are stored on the Scene; point lights hang off a Node
// so they follow the composite they belong to.
type Light interface {
	// Base returns the fields shared by every light.
	Base() *LightBase
}

// LightBase holds the color and strength common to all lights.
type LightBase struct {
	Name      string
	Color     color.RGBA
	Intensity float32
}

func (lb *LightBase) Base() *LightBase {
	return lb
}

// ShadowConfig describes the depth map a shadow-casting light renders.
// Left/Right/Top/Bottom bound the orthographic shadow camera of a directional light;
// point lights only use the map size and Near/Far.
type ShadowConfig struct {
	MapWidth  int
	MapHeight int
	Left      float32
	Right     float32
	Top       float32
	Bottom    float32
	Near      float32
	Far       float32
	// Soft requests percentage-closer filtering of shadow edges.
	Soft bool
}

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	LightBase
}

// DirectionalLight shines from Position toward the origin with no falloff, like the sun.
type DirectionalLight struct {
	LightBase
	Position   mgl32.Vec3
	CastShadow bool
	Shadow     ShadowConfig
}

// Direction returns the normalized direction the light travels in.
func (dl *DirectionalLight) Direction() mgl32.Vec3 {
	if dl.Position.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return dl.Position.Mul(-1).Normalize()
}

// PointLight radiates from its node's origin and fades to nothing at Range.
type PointLight struct {
	LightBase
	Range      float32
	CastShadow bool
	Shadow     ShadowConfig
}

// PlacedLight is a light resolved to world space for one frame.
type PlacedLight struct {
	Light    Light
	Position mgl32.Vec3
}
