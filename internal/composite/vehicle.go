// Package composite assembles primitive meshes into the diorama's named objects:
// the motorcycle and its wheels, light poles, lane markings, the building and the ground.
// Every builder is a plain function that returns a fresh subtree.
package composite

import (
	"github.com/chewxy/math32"

	"parking-diorama/internal/primitives"
	"parking-diorama/internal/scene"
)

// SpokeCount is the number of spokes in every wheel.
const SpokeCount = 8

// Wheel placement along the vehicle's length.
const (
	FrontWheelX = 0.8
	RearWheelX  = -0.6
	wheelY      = 0.3
)

var (
	frameMaterial     = scene.Standard(scene.Hex(0x222222), 0.5, 0.7) // dark metal
	seatMaterial      = scene.Standard(scene.Hex(0x111111), 0.9, 0.1) // black leather
	tankMaterial      = scene.Standard(scene.Hex(0xcc0000), 0.2, 0.8) // red paint
	handlebarMaterial = scene.Standard(scene.Hex(0x888888), 0.2, 0.9)
	forkMaterial      = scene.Standard(scene.Hex(0xaaaaaa), 0.2, 0.9)
	headlightMaterial = scene.Standard(scene.Hex(0xffffcc), 0.2, 0.9).WithEmissive(scene.Hex(0xffffcc), 0.5)
	exhaustMaterial   = scene.Standard(scene.Hex(0xdddddd), 0.2, 0.9)
	tireMaterial      = scene.Standard(scene.Hex(0x111111), 0.9, 0.1)
	hubMaterial       = scene.Standard(scene.Hex(0x888888), 0.2, 0.9)
)

// Vehicle builds the motorcycle around its local origin, wheels touching y=0.
// Every part casts a shadow except the headlight.
func Vehicle() *scene.Node {
	quarter := float32(math32.Pi / 2)

	frame := part("frame", scene.Box(1.5, 0.5, 0.5), frameMaterial).
		SetPosition(0, 0.5, 0)
	seat := part("seat", scene.Box(0.8, 0.15, 0.4), seatMaterial).
		SetPosition(-0.2, 0.8, 0)
	tank := part("tank", scene.Cylinder(0.25, 0.25, 0.6, 16), tankMaterial).
		SetPosition(0.3, 0.8, 0).
		SetRotation(0, 0, quarter)
	handlebar := part("handlebar", scene.Cylinder(0.05, 0.05, 0.7, 16), handlebarMaterial).
		SetPosition(0.7, 0.9, 0).
		SetRotation(quarter, 0, 0)
	fork := part("fork", scene.Cylinder(0.05, 0.05, 0.8, 16), forkMaterial).
		SetPosition(0.7, 0.5, 0)

	headlight := primitives.Must(scene.Sphere(0.1, 16, 16), headlightMaterial).
		SetName("headlight").
		SetPosition(0.85, 0.7, 0)

	exhaust := part("exhaust", scene.Cylinder(0.05, 0.07, 0.7, 16), exhaustMaterial).
		SetPosition(-0.6, 0.3, 0.2).
		SetRotation(0, 0, math32.Pi/4)

	return scene.NewNode("vehicle").MustAdd(
		frame,
		seat,
		tank,
		handlebar,
		fork,
		headlight,
		Wheel(FrontWheelX).SetName("front-wheel"),
		Wheel(RearWheelX).SetName("rear-wheel"),
		exhaust,
	)
}

// Wheel builds one wheel assembly: a torus tire, a hub and SpokeCount spokes fanned
// about the wheel axis. The assembly is turned a quarter about Y so it rolls along X,
// and placed at (xOffset, 0.3, 0).
func Wheel(xOffset float32) *scene.Node {
	wheel := scene.NewNode("wheel")
	tire := part("tire", scene.Torus(0.3, 0.1, 16, 32), tireMaterial)
	hub := part("hub", scene.Cylinder(0.1, 0.1, 0.1, 16), hubMaterial).
		SetRotation(math32.Pi/2, 0, 0)
	wheel.MustAdd(tire, hub)

	for _, angle := range SpokeAngles() {
		spoke := part("spoke", scene.Cylinder(0.01, 0.01, 0.28, 8), hubMaterial).
			SetRotation(0, 0, angle)
		wheel.MustAdd(spoke)
	}

	return wheel.
		SetRotation(0, math32.Pi/2, 0).
		SetPosition(xOffset, wheelY, 0)
}

// SpokeAngles returns the rotation of each spoke about the wheel axis: i·45° for i=0..7.
func SpokeAngles() []float32 {
	angles := make([]float32, SpokeCount)
	for i := range angles {
		angles[i] = float32(i) * 2 * math32.Pi / SpokeCount
	}
	return angles
}

// part builds a shadow-casting mesh node.
func part(name string, g scene.Geometry, m scene.Material) *scene.Node {
	n := primitives.Must(g, m).SetName(name)
	n.Mesh.CastShadow = true
	return n
}
