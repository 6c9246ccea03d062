package display

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"parking-diorama/internal/scene"
)

// Raylib's torus clamps the tube/ring ratio to this range.
const (
	minTorusRatio = 0.1
	maxTorusRatio = 1
)

// genMesh generates and uploads the raylib mesh for g. modelFix maps it onto the
// geometry conventions used by the scene package.
func genMesh(g scene.Geometry) rl.Mesh {
	switch g.Kind {
	case scene.KindBox:
		return rl.GenMeshCube(g.Width, g.Height, g.Depth)
	case scene.KindPlane:
		return rl.GenMeshPlane(g.Width, g.Height, 1, 1)
	case scene.KindCylinder:
		// Raylib cylinders have one radius; tapered ones (the exhaust) use the mean.
		return rl.GenMeshCylinder((g.RadiusTop+g.RadiusBottom)/2, g.Height, g.RadialSegments)
	case scene.KindSphere:
		return rl.GenMeshSphere(g.Radius, g.HeightSegments, g.WidthSegments)
	case scene.KindTorus:
		// Raylib builds a unit ring with tube radius `ratio`, then scales it by size/2.
		ratio := mgl32.Clamp(g.Tube/g.Radius, minTorusRatio, maxTorusRatio)
		return rl.GenMeshTorus(ratio, 2*g.Radius, g.TubularSegments, g.RadialSegments)
	default:
		return rl.GenMeshCube(1, 1, 1)
	}
}

// modelFix returns the model-space correction applied before the node's world matrix.
// Raylib cylinders stand on y=0 (scene cylinders are centered) and raylib planes lie in
// XZ facing +Y (scene planes lie in XY facing +Z).
func modelFix(g scene.Geometry) mgl32.Mat4 {
	switch g.Kind {
	case scene.KindCylinder:
		return mgl32.Translate3D(0, -g.Height/2, 0)
	case scene.KindPlane:
		return mgl32.HomogRotate3DX(mgl32.DegToRad(90))
	default:
		return mgl32.Ident4()
	}
}
