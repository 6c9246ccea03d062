package composite

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"

	"parking-diorama/internal/config"
	"parking-diorama/internal/lighting"
	"parking-diorama/internal/primitives"
	"parking-diorama/internal/scene"
)

// Parking line grid: x in [-12,12] step 3, z in [-12,12] step 6, with the cells
// inside |x|<3 && |z|<3 left open for the vehicle.
const (
	lineExtent   = 12
	lineStepX    = 3
	lineStepZ    = 6
	openHalfSize = 3
	// lineLift keeps the markings off the ground plane to avoid z-fighting.
	lineLift = 0.01
)

// Light pole dimensions.
const (
	poleHeight   = 4
	fixtureY     = poleHeight
	poleLightY   = 3.9
	poleCornerXZ = 10
)

// PolePositions are the lot corners, as (x, z).
var PolePositions = [4][2]float32{
	{poleCornerXZ, poleCornerXZ},
	{-poleCornerXZ, poleCornerXZ},
	{poleCornerXZ, -poleCornerXZ},
	{-poleCornerXZ, -poleCornerXZ},
}

var (
	groundMaterial   = scene.Standard(scene.Hex(0x333333), 0.8, 0.2) // asphalt
	lineMaterial     = scene.Basic(colornames.White)
	buildingMaterial = scene.Standard(scene.Hex(0xcccccc), 0.7, 0.2) // concrete
	poleMaterial     = scene.Standard(scene.Hex(0x555555), 0.7, 0.3)
	fixtureMaterial  = scene.Standard(scene.Hex(0x333333), 0.7, 0.3)
)

// flat lays a plane built in XY onto the XZ ground.
var flat = float32(-math32.Pi / 2)

// Ground builds the size×size asphalt plane. It receives shadows but casts none.
func Ground(size float32) *scene.Node {
	g := primitives.Must(scene.Plane(size, size), groundMaterial).
		SetName("ground").
		SetRotation(flat, 0, 0)
	g.Mesh.ReceiveShadow = true
	return g
}

// ParkingLines builds the lane markings: one thin white strip per grid cell, except the
// open area around the origin.
func ParkingLines() *scene.Node {
	group := scene.NewNode("parking-lines")
	for _, c := range ParkingCells() {
		line := primitives.Must(scene.Plane(0.1, 2.5), lineMaterial).
			SetName("line").
			SetPosition(c.X(), lineLift, c.Y()).
			SetRotation(flat, 0, 0)
		group.MustAdd(line)
	}
	return group
}

// ParkingCells returns the (x, z) of every lane marking in emission order.
func ParkingCells() []mgl32.Vec2 {
	var cells []mgl32.Vec2
	for x := -lineExtent; x <= lineExtent; x += lineStepX {
		for z := -lineExtent; z <= lineExtent; z += lineStepZ {
			if abs(x) < openHalfSize && abs(z) < openHalfSize {
				continue
			}
			cells = append(cells, mgl32.Vec2{float32(x), float32(z)})
		}
	}
	return cells
}

// Building builds the concrete block off the lot's back corner.
func Building() *scene.Node {
	b := primitives.Must(scene.Box(10, 5, 10), buildingMaterial).
		SetName("building").
		SetPosition(-10, 2.5, -10)
	b.Mesh.CastShadow = true
	b.Mesh.ReceiveShadow = true
	return b
}

// LightPole builds a 4-unit pole with a disk fixture on top and light mounted just below
// the fixture, placed at (x, 0, z). The node carrying light is named "lamp".
func LightPole(x, z float32, light *scene.PointLight) *scene.Node {
	pole := part("pole", scene.Cylinder(0.1, 0.1, poleHeight, 8), poleMaterial).
		SetPosition(0, poleHeight/2, 0)
	fixture := part("fixture", scene.Cylinder(0.3, 0.3, 0.2, 8), fixtureMaterial).
		SetPosition(0, fixtureY, 0)
	lamp := scene.NewNode("lamp").SetPosition(0, poleLightY, 0)
	lamp.Light = light

	return scene.NewNode("light-pole").
		MustAdd(pole, fixture, lamp).
		SetPosition(x, 0, z)
}

// Lot adds the whole parking lot to sc: ground, lane markings, the motorcycle, the
// building and one light pole per corner. Lights from the rig are not added here.
func Lot(sc *scene.Scene, cfg config.Config) error {
	nodes := []*scene.Node{
		Ground(cfg.GroundSize),
		ParkingLines(),
		Vehicle(),
		Building(),
	}
	for _, p := range PolePositions {
		nodes = append(nodes, LightPole(p[0], p[1], lighting.PoleLight(cfg.Lighting)))
	}
	if err := sc.Add(nodes...); err != nil {
		return fmt.Errorf("assemble lot: %w", err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
