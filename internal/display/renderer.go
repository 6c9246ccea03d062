package display

import (
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"parking-diorama/internal/camera"
	"parking-diorama/internal/scene"
)

// maxPointLights must match the array size in litFS.
const maxPointLights = 4

// Renderer draws scene trees with raylib. Meshes are generated the first time a geometry
// is drawn and reused for every node with an equal geometry, so the 44 lane markings
// share one mesh. It must be created after the window exists.
type Renderer struct {
	meshes   map[scene.Geometry]rl.Mesh
	material rl.Material
	lit      bool
	locs     uniformLocations
	stats    *stats
	log      *slog.Logger

	warnedLights bool
}

type uniformLocations struct {
	viewPos, ambient, sunDir, sunColor        int32
	pointPos, pointColor, pointRange, nPoints int32
	roughness, metalness, emissive, unlit     int32
}

func newRenderer(showStats bool, log *slog.Logger) *Renderer {
	r := &Renderer{
		meshes:   make(map[scene.Geometry]rl.Mesh),
		material: rl.LoadMaterialDefault(),
		stats:    &stats{show: showStats},
		log:      log,
	}
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) {
		r.material.Shader = shader
		r.lit = true
		r.locs = uniformLocations{
			viewPos:    rl.GetShaderLocation(shader, "viewPos"),
			ambient:    rl.GetShaderLocation(shader, "ambient"),
			sunDir:     rl.GetShaderLocation(shader, "sunDir"),
			sunColor:   rl.GetShaderLocation(shader, "sunColor"),
			pointPos:   rl.GetShaderLocation(shader, "pointPos[0]"),
			pointColor: rl.GetShaderLocation(shader, "pointColor[0]"),
			pointRange: rl.GetShaderLocation(shader, "pointRange[0]"),
			nPoints:    rl.GetShaderLocation(shader, "pointCount"),
			roughness:  rl.GetShaderLocation(shader, "roughness"),
			metalness:  rl.GetShaderLocation(shader, "metalness"),
			emissive:   rl.GetShaderLocation(shader, "emissive"),
			unlit:      rl.GetShaderLocation(shader, "unlit"),
		}
	} else {
		log.Warn("lit shader failed to compile; drawing unshaded")
	}
	return r
}

// Render draws one frame: sky clear, every mesh in sc under the current lights, then
// the optional stats overlay. EndDrawing swaps buffers and waits for the next refresh.
func (r *Renderer) Render(sc *scene.Scene, cam camera.State) error {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(sc.Background))

	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector(cam.Eye),
		Target:     toVector(cam.Target),
		Up:         toVector(cam.Up),
		Fovy:       cam.FOV,
		Projection: rl.CameraPerspective,
	})
	// BeginMode3D builds its own frustum with fixed clip planes; use the camera's.
	rl.SetMatrixProjection(toMatrix(cam.Projection))
	if r.lit {
		r.setLights(sc.PlacedLights(), cam.Eye)
	}
	sc.Walk(func(n *scene.Node, world mgl32.Mat4) bool {
		if n.Mesh != nil {
			r.drawMesh(n.Mesh, world)
		}
		return true
	})
	rl.EndMode3D()

	r.stats.draw()
	rl.EndDrawing()
	return nil
}

// setLights uploads the frame's lights. Ambient and directional lights sum; point lights
// beyond maxPointLights are dropped.
func (r *Renderer) setLights(lights []scene.PlacedLight, eye mgl32.Vec3) {
	var ambient, sunColor mgl32.Vec3
	sunDir := mgl32.Vec3{0, -1, 0}
	var pos, col []float32
	var ranges []float32

	for _, pl := range lights {
		base := pl.Light.Base()
		c := scaled(base.Color, base.Intensity)
		switch l := pl.Light.(type) {
		case *scene.AmbientLight:
			ambient = ambient.Add(c)
		case *scene.DirectionalLight:
			sunColor = sunColor.Add(c)
			sunDir = l.Direction()
		case *scene.PointLight:
			if len(ranges) == maxPointLights {
				if !r.warnedLights {
					r.log.Warn("too many point lights; extras are not drawn", "max", maxPointLights)
					r.warnedLights = true
				}
				continue
			}
			pos = append(pos, pl.Position[:]...)
			col = append(col, c[:]...)
			ranges = append(ranges, l.Range)
		}
	}

	shader := r.material.Shader
	viewPos := [3]float32{eye[0], eye[1], eye[2]}
	amb := [4]float32{ambient[0], ambient[1], ambient[2], 1}
	rl.SetShaderValueV(shader, r.locs.viewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValueV(shader, r.locs.ambient, amb[:], rl.ShaderUniformVec4, 1)
	rl.SetShaderValueV(shader, r.locs.sunDir, sunDir[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValueV(shader, r.locs.sunColor, sunColor[:], rl.ShaderUniformVec3, 1)
	if n := int32(len(ranges)); n > 0 {
		rl.SetShaderValueV(shader, r.locs.pointPos, pos, rl.ShaderUniformVec3, n)
		rl.SetShaderValueV(shader, r.locs.pointColor, col, rl.ShaderUniformVec3, n)
		rl.SetShaderValueV(shader, r.locs.pointRange, ranges, rl.ShaderUniformFloat, n)
	}
	rl.SetShaderValue(shader, r.locs.nPoints, []float32{float32(len(ranges))}, rl.ShaderUniformFloat)
}

func (r *Renderer) drawMesh(m *scene.Mesh, world mgl32.Mat4) {
	mesh, ok := r.meshes[m.Geometry]
	if !ok {
		mesh = genMesh(m.Geometry)
		r.meshes[m.Geometry] = mesh
	}
	if albedo := r.material.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(m.Material.Color)
	}
	if r.lit {
		shader := r.material.Shader
		emissive := scaled(m.Material.Emissive, m.Material.EmissiveIntensity)
		unlit := float32(0)
		if m.Material.Unlit {
			unlit = 1
		}
		rl.SetShaderValue(shader, r.locs.roughness, []float32{m.Material.Roughness}, rl.ShaderUniformFloat)
		rl.SetShaderValue(shader, r.locs.metalness, []float32{m.Material.Metalness}, rl.ShaderUniformFloat)
		rl.SetShaderValueV(shader, r.locs.emissive, emissive[:], rl.ShaderUniformVec3, 1)
		rl.SetShaderValue(shader, r.locs.unlit, []float32{unlit}, rl.ShaderUniformFloat)
	}
	rl.DrawMesh(mesh, r.material, toMatrix(world.Mul4(modelFix(m.Geometry))))
}

// unload frees every cached mesh and the shader.
func (r *Renderer) unload() {
	for g, mesh := range r.meshes {
		rl.UnloadMesh(&mesh)
		delete(r.meshes, g)
	}
	if r.lit {
		rl.UnloadShader(r.material.Shader)
		r.lit = false
	}
}

// scaled returns c's RGB in [0,1] multiplied by intensity.
func scaled(c color.RGBA, intensity float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toVector(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout, which names its
// elements by the same column-major index.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}
