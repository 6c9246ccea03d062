// Package camera holds the perspective projection and the damped orbit around a target.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"parking-diorama/internal/config"
)

// polarMargin keeps the eye off the poles, where the up vector would be undefined.
const polarMargin = 1e-4

var up = mgl32.Vec3{0, 1, 0}

// State is a snapshot of the camera handed to the renderer each tick.
type State struct {
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	Eye      mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Distance float32

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Controller is a perspective camera orbiting a fixed target.
// Input (Rotate, Zoom) only moves the pending orbit; Update moves the live orbit a fixed
// fraction of the way toward it. Update is called exactly once per render tick and does
// not look at wall-clock time.
type Controller struct {
	fov, aspect, near, far float32
	target                 mgl32.Vec3

	// live orbit, in spherical coordinates around target
	azimuth, polar, distance float32
	// pending orbit that input steers
	wantAzimuth, wantPolar, wantDistance float32

	damping                  float32
	minDistance, maxDistance float32

	eye        mgl32.Vec3
	projection mgl32.Mat4
}

// New returns a controller at cfg.Position looking at cfg.Target with the given aspect.
func New(cfg config.Camera, aspect float32) *Controller {
	c := &Controller{
		fov:         cfg.FOV,
		aspect:      aspect,
		near:        cfg.Near,
		far:         cfg.Far,
		target:      mgl32.Vec3(cfg.Target),
		damping:     cfg.DampingFactor,
		minDistance: cfg.MinDistance,
		maxDistance: cfg.MaxDistance,
	}
	c.azimuth, c.polar, c.distance = spherical(mgl32.Vec3(cfg.Position).Sub(c.target))
	c.polar = c.clampPolar(c.polar)
	c.distance = c.clampDistance(c.distance)
	c.wantAzimuth, c.wantPolar, c.wantDistance = c.azimuth, c.polar, c.distance
	c.updateEye()
	c.updateProjection()
	return c
}

// Rotate turns the pending orbit by dAzimuth around the vertical axis and dPolar toward
// or away from it, both in radians.
func (c *Controller) Rotate(dAzimuth, dPolar float32) {
	c.wantAzimuth += dAzimuth
	c.wantPolar = c.clampPolar(c.wantPolar + dPolar)
}

// Zoom changes the pending orbit distance by delta (positive moves away). The pending
// distance is held to the allowed range so zooming back responds immediately.
func (c *Controller) Zoom(delta float32) {
	c.wantDistance = c.clampDistance(c.wantDistance + delta)
}

// Dolly scales the pending orbit distance by scale (below 1 moves closer), so each step
// covers the same fraction of the distance wherever the camera is. Non-positive or
// non-finite scales are ignored.
func (c *Controller) Dolly(scale float32) {
	if !(scale > 0) || math32.IsInf(scale, 0) {
		return
	}
	c.wantDistance = c.clampDistance(c.wantDistance * scale)
}

// Update moves the live orbit a damping-factor fraction toward the pending orbit, clamps
// the distance to [min, max], and recomputes the eye. Call once per tick.
func (c *Controller) Update() {
	c.azimuth += (c.wantAzimuth - c.azimuth) * c.damping
	c.polar += (c.wantPolar - c.polar) * c.damping
	c.distance += (c.wantDistance - c.distance) * c.damping

	c.polar = c.clampPolar(c.polar)
	c.distance = c.clampDistance(c.distance)
	c.updateEye()
}

// SetAspect sets width/height and refreshes the projection. Non-positive or non-finite
// values are ignored.
func (c *Controller) SetAspect(aspect float32) {
	if !(aspect > 0) || math32.IsInf(aspect, 1) {
		return
	}
	c.aspect = aspect
	c.updateProjection()
}

// Aspect returns the current width/height ratio.
func (c *Controller) Aspect() float32 {
	return c.aspect
}

// Distance returns the live orbit distance.
func (c *Controller) Distance() float32 {
	return c.distance
}

// DistanceLimits returns the allowed orbit distance range.
func (c *Controller) DistanceLimits() (lo, hi float32) {
	return c.minDistance, c.maxDistance
}

// Eye returns the live camera position.
func (c *Controller) Eye() mgl32.Vec3 {
	return c.eye
}

// ViewMatrix returns the world-to-camera transform.
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, up)
}

// ProjectionMatrix returns the perspective projection for the current aspect.
func (c *Controller) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// State returns a snapshot for rendering.
func (c *Controller) State() State {
	return State{
		FOV:        c.fov,
		Aspect:     c.aspect,
		Near:       c.near,
		Far:        c.far,
		Eye:        c.eye,
		Target:     c.target,
		Up:         up,
		Distance:   c.distance,
		View:       c.ViewMatrix(),
		Projection: c.projection,
	}
}

func (c *Controller) updateEye() {
	sinPolar := math32.Sin(c.polar)
	offset := mgl32.Vec3{
		c.distance * sinPolar * math32.Sin(c.azimuth),
		c.distance * math32.Cos(c.polar),
		c.distance * sinPolar * math32.Cos(c.azimuth),
	}
	c.eye = c.target.Add(offset)
}

func (c *Controller) updateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

func (c *Controller) clampDistance(d float32) float32 {
	return mgl32.Clamp(d, c.minDistance, c.maxDistance)
}

func (c *Controller) clampPolar(p float32) float32 {
	return mgl32.Clamp(p, polarMargin, math32.Pi-polarMargin)
}

// spherical converts an offset from the target to (azimuth about +Y measured from +Z,
// polar angle from +Y, radius).
func spherical(v mgl32.Vec3) (azimuth, polar, radius float32) {
	radius = v.Len()
	if radius == 0 {
		return 0, math32.Pi / 2, 0
	}
	azimuth = math32.Atan2(v.X(), v.Z())
	polar = math32.Acos(mgl32.Clamp(v.Y()/radius, -1, 1))
	return azimuth, polar, radius
}
