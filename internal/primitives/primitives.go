// Package primitives builds single mesh nodes (box, plane, cylinder, sphere, torus)
// from a geometry and a material, rejecting parameters no backend could draw.
package primitives

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"parking-diorama/internal/scene"
)

// ErrInvalidParameter is wrapped by every validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// minSegments is the fewest radial/tubular segments that still enclose a volume.
const minSegments = 3

// New returns a mesh node for g and m with an identity transform and both shadow flags off.
// The node is named after the geometry kind. Geometry and material are stored unchanged.
func New(g scene.Geometry, m scene.Material) (*scene.Node, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	if err := ValidateMaterial(m); err != nil {
		return nil, err
	}
	n := scene.NewNode(string(g.Kind))
	n.Mesh = &scene.Mesh{Geometry: g, Material: m}
	return n, nil
}

// Must is New for the diorama's fixed construction code; invalid input panics.
func Must(g scene.Geometry, m scene.Material) *scene.Node {
	n, err := New(g, m)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks that every dimension used by g's kind is a finite value > 0 and that
// every segment count is at least 3.
func Validate(g scene.Geometry) error {
	switch g.Kind {
	case scene.KindBox:
		return dims(g.Kind, dim{"width", g.Width}, dim{"height", g.Height}, dim{"depth", g.Depth})
	case scene.KindPlane:
		return dims(g.Kind, dim{"width", g.Width}, dim{"height", g.Height})
	case scene.KindCylinder:
		if err := dims(g.Kind, dim{"radiusTop", g.RadiusTop}, dim{"radiusBottom", g.RadiusBottom}, dim{"height", g.Height}); err != nil {
			return err
		}
		return segments(g.Kind, "radialSegments", g.RadialSegments)
	case scene.KindSphere:
		if err := dims(g.Kind, dim{"radius", g.Radius}); err != nil {
			return err
		}
		if err := segments(g.Kind, "widthSegments", g.WidthSegments); err != nil {
			return err
		}
		return segments(g.Kind, "heightSegments", g.HeightSegments)
	case scene.KindTorus:
		if err := dims(g.Kind, dim{"radius", g.Radius}, dim{"tube", g.Tube}); err != nil {
			return err
		}
		if err := segments(g.Kind, "radialSegments", g.RadialSegments); err != nil {
			return err
		}
		return segments(g.Kind, "tubularSegments", g.TubularSegments)
	default:
		return fmt.Errorf("%w: unknown shape kind %q", ErrInvalidParameter, g.Kind)
	}
}

// ValidateMaterial checks roughness and metalness are in [0,1] and emissive intensity is >= 0.
func ValidateMaterial(m scene.Material) error {
	if !unit(m.Roughness) {
		return fmt.Errorf("%w: roughness must be in [0,1], got %v", ErrInvalidParameter, m.Roughness)
	}
	if !unit(m.Metalness) {
		return fmt.Errorf("%w: metalness must be in [0,1], got %v", ErrInvalidParameter, m.Metalness)
	}
	if !(m.EmissiveIntensity >= 0) || math32.IsInf(m.EmissiveIntensity, 1) {
		return fmt.Errorf("%w: emissive intensity must be >= 0, got %v", ErrInvalidParameter, m.EmissiveIntensity)
	}
	return nil
}

// dim is a named dimension checked by dims.
type dim struct {
	name  string
	value float32
}

// dims rejects any value that is not finite and > 0; !(v > 0) also catches NaN.
func dims(kind scene.Kind, ds ...dim) error {
	for _, d := range ds {
		if !(d.value > 0) || math32.IsInf(d.value, 1) {
			return fmt.Errorf("%w: %s %s must be > 0, got %v", ErrInvalidParameter, kind, d.name, d.value)
		}
	}
	return nil
}

func segments(kind scene.Kind, name string, n int) error {
	if n < minSegments {
		return fmt.Errorf("%w: %s %s must be >= %d, got %d", ErrInvalidParameter, kind, name, minSegments, n)
	}
	return nil
}

func unit(v float32) bool {
	return v >= 0 && v <= 1
}
