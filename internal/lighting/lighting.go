// Package lighting configures the diorama's fixed lights: one ambient fill, one
// shadow-casting sun, and the point lights mounted on the lot's poles.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"

	"parking-diorama/internal/config"
	"parking-diorama/internal/scene"
)

// sunPosition is where the directional light shines from, toward the origin.
var sunPosition = mgl32.Vec3{5, 10, 7}

// Sun shadow camera: covers the whole ground plane.
const (
	sunShadowExtent = 20
	sunShadowNear   = 0.5
	sunShadowFar    = 50
)

// poleLightColor is a warm sodium-lamp white.
var poleLightColor = scene.Hex(0xffffcc)

// Pole lights use a smaller cube shadow map; four of them render every frame.
const (
	poleShadowMapSize = 512
	poleShadowNear    = 0.5
)

// Rig adds the ambient and directional lights to sc and returns them.
func Rig(sc *scene.Scene, cfg config.Lighting) (*scene.AmbientLight, *scene.DirectionalLight) {
	amb := Ambient(cfg)
	sun := Sun(cfg)
	sc.AddLight(amb)
	sc.AddLight(sun)
	return amb, sun
}

// Ambient returns the low, uniform white fill light.
func Ambient(cfg config.Lighting) *scene.AmbientLight {
	return &scene.AmbientLight{LightBase: scene.LightBase{
		Name:      "ambient",
		Color:     colornames.White,
		Intensity: cfg.AmbientIntensity,
	}}
}

// Sun returns the shadow-casting directional light. Its shadow frustum spans ±20 on both
// horizontal axes so the 30×30 ground is fully covered.
func Sun(cfg config.Lighting) *scene.DirectionalLight {
	res := cfg.ShadowMapResolution
	return &scene.DirectionalLight{
		LightBase: scene.LightBase{
			Name:      "sun",
			Color:     colornames.White,
			Intensity: cfg.DirectionalIntensity,
		},
		Position:   sunPosition,
		CastShadow: true,
		Shadow: scene.ShadowConfig{
			MapWidth:  res,
			MapHeight: res,
			Left:      -sunShadowExtent,
			Right:     sunShadowExtent,
			Top:       sunShadowExtent,
			Bottom:    -sunShadowExtent,
			Near:      sunShadowNear,
			Far:       sunShadowFar,
			Soft:      true,
		},
	}
}

// PoleLight returns one lamp's point light. Range bounds both lighting and the shadow
// camera's far plane.
func PoleLight(cfg config.Lighting) *scene.PointLight {
	return &scene.PointLight{
		LightBase: scene.LightBase{
			Name:      "pole-light",
			Color:     poleLightColor,
			Intensity: cfg.PointLightIntensity,
		},
		Range:      cfg.PointLightRange,
		CastShadow: true,
		Shadow: scene.ShadowConfig{
			MapWidth:  poleShadowMapSize,
			MapHeight: poleShadowMapSize,
			Near:      poleShadowNear,
			Far:       cfg.PointLightRange,
			Soft:      true,
		},
	}
}
