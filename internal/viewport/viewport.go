// Package viewport tracks the output surface size and keeps the camera aspect in step.
package viewport

import (
	"log/slog"

	"parking-diorama/internal/logger"
)

// Surface is the drawable the diorama renders into.
type Surface interface {
	SetSize(width, height int)
}

// Projector is the camera side of a resize.
type Projector interface {
	SetAspect(aspect float32)
}

// Manager applies host resize events to the camera and the surface.
type Manager struct {
	width, height int
	camera        Projector
	surface       Surface
	log           *slog.Logger
}

// New returns a manager with no recorded size; call Resize with the initial dimensions.
func New(camera Projector, surface Surface, log *slog.Logger) *Manager {
	return &Manager{camera: camera, surface: surface, log: logger.OrDiscard(log)}
}

// Resize records width×height, sets the camera aspect and resizes the surface.
// Events with a zero or negative dimension (a minimized window) change nothing and
// report false.
func (m *Manager) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		m.log.Debug("resize ignored", "width", width, "height", height)
		return false
	}
	m.width, m.height = width, height
	m.camera.SetAspect(float32(width) / float32(height))
	m.surface.SetSize(width, height)
	m.log.Debug("viewport resized", "width", width, "height", height)
	return true
}

// Size returns the last accepted dimensions, or 0, 0 before the first Resize.
func (m *Manager) Size() (width, height int) {
	return m.width, m.height
}
