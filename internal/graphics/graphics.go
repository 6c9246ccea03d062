// Package graphics drives the render loop: once per display refresh it advances the
// camera and draws the scene. The display itself is behind the Host and Renderer interfaces.
package graphics

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"parking-diorama/internal/camera"
	"parking-diorama/internal/logger"
	"parking-diorama/internal/scene"
)

// Host is the display's refresh signal. NextFrame is called before every tick; it
// delivers pending input events to their handlers and reports false once the host is
// closing. Hosts pace ticks to the display refresh, either here or when presenting in
// Render.
type Host interface {
	NextFrame() bool
}

// Renderer draws one frame of sc as seen by cam.
type Renderer interface {
	Render(sc *scene.Scene, cam camera.State) error
}

// Camera is advanced once per tick and then snapshotted for the renderer.
type Camera interface {
	Update()
	State() camera.State
}

// Loop owns the per-tick sequence. It runs on a single goroutine; only Stop may be
// called from elsewhere.
type Loop struct {
	host     Host
	camera   Camera
	renderer Renderer
	scene    *scene.Scene
	log      *slog.Logger

	frames  uint64
	stopped atomic.Bool
}

// NewLoop returns a loop that draws sc through renderer on every host refresh.
func NewLoop(host Host, cam Camera, renderer Renderer, sc *scene.Scene, log *slog.Logger) *Loop {
	return &Loop{
		host:     host,
		camera:   cam,
		renderer: renderer,
		scene:    sc,
		log:      logger.OrDiscard(log),
	}
}

// Tick runs one frame: exactly one camera update, then exactly one render.
func (l *Loop) Tick() error {
	l.camera.Update()
	if err := l.renderer.Render(l.scene, l.camera.State()); err != nil {
		return fmt.Errorf("render frame %d: %w", l.frames, err)
	}
	l.frames++
	return nil
}

// Run ticks once per host refresh until ctx is done, Stop is called, or the host closes.
// It returns ctx.Err() on cancellation, a render error if one occurs, and nil otherwise.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("render loop started")
	defer func() { l.log.Info("render loop stopped", "frames", l.frames) }()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.stopped.Load() || !l.host.NextFrame() {
			return nil
		}
		// Input handlers ran inside NextFrame; they may have stopped the loop.
		if l.stopped.Load() {
			return nil
		}
		if err := l.Tick(); err != nil {
			return err
		}
	}
}

// Stop makes Run return before its next tick.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Frames returns how many frames have been rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Headless is a Host with no display: it reports Frames refreshes and then closes.
// Frames <= 0 means it never closes. OnFrame, if set, runs before each refresh is
// reported, standing in for host input delivery.
type Headless struct {
	Frames  int
	OnFrame func(frame int)

	n int
}

// NextFrame implements Host.
func (h *Headless) NextFrame() bool {
	if h.Frames > 0 && h.n >= h.Frames {
		return false
	}
	if h.OnFrame != nil {
		h.OnFrame(h.n)
	}
	h.n++
	return true
}
