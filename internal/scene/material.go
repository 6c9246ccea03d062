package scene

import "image/color"

// Material describes how a mesh surface is shaded.
// Roughness and Metalness are in [0,1]; EmissiveIntensity is >= 0.
// Unlit materials ignore scene lights and draw Color as is.
type Material struct {
	Color             color.RGBA
	Roughness         float32
	Metalness         float32
	Emissive          color.RGBA
	EmissiveIntensity float32
	Unlit             bool
}

// Standard returns a lit material with the given base color and surface response.
func Standard(c color.RGBA, roughness, metalness float32) Material {
	return Material{Color: c, Roughness: roughness, Metalness: metalness}
}

// Basic returns an unlit, flat-colored material.
func Basic(c color.RGBA) Material {
	return Material{Color: c, Roughness: 1, Unlit: true}
}

// WithEmissive returns a copy of m that glows with c at the given intensity.
func (m Material) WithEmissive(c color.RGBA, intensity float32) Material {
	m.Emissive = c
	m.EmissiveIntensity = intensity
	return m
}

// Hex converts a 0xRRGGBB value to an opaque color.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}
