package scene

// Kind names a primitive solid.
type Kind string

const (
	KindBox      Kind = "box"
	KindPlane    Kind = "plane"
	KindCylinder Kind = "cylinder"
	KindSphere   Kind = "sphere"
	KindTorus    Kind = "torus"
)

// Geometry describes a primitive solid by kind and its numeric parameters.
// Only the fields used by Kind are meaningful; build values with Box, Plane, Cylinder,
// Sphere, or Torus. Geometry is comparable so backends can key mesh caches on it.
type Geometry struct {
	Kind Kind

	// Box uses Width, Height, Depth. Plane uses Width, Height (lies in XY, facing +Z).
	Width  float32
	Height float32
	Depth  float32

	// Cylinder uses RadiusTop, RadiusBottom, Height, RadialSegments (axis along Y, centered).
	RadiusTop    float32
	RadiusBottom float32

	// Sphere uses Radius, WidthSegments, HeightSegments.
	// Torus uses Radius (center to tube center), Tube, RadialSegments, TubularSegments.
	Radius          float32
	Tube            float32
	RadialSegments  int
	TubularSegments int
	WidthSegments   int
	HeightSegments  int
}

// Box returns a box geometry centered on the origin.
func Box(width, height, depth float32) Geometry {
	return Geometry{Kind: KindBox, Width: width, Height: height, Depth: depth}
}

// Plane returns a flat rectangle in the XY plane.
func Plane(width, height float32) Geometry {
	return Geometry{Kind: KindPlane, Width: width, Height: height}
}

// Cylinder returns a cylinder (or truncated cone when the radii differ) along Y.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments int) Geometry {
	return Geometry{
		Kind:           KindCylinder,
		RadiusTop:      radiusTop,
		RadiusBottom:   radiusBottom,
		Height:         height,
		RadialSegments: radialSegments,
	}
}

// Sphere returns a UV sphere.
func Sphere(radius float32, widthSegments, heightSegments int) Geometry {
	return Geometry{Kind: KindSphere, Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

// Torus returns a ring in the XY plane.
func Torus(radius, tube float32, radialSegments, tubularSegments int) Geometry {
	return Geometry{
		Kind:            KindTorus,
		Radius:          radius,
		Tube:            tube,
		RadialSegments:  radialSegments,
		TubularSegments: tubularSegments,
	}
}
