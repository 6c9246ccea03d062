// Package display is the raylib host: it owns the window and GL context, paces frames to
// the monitor refresh, turns mouse and window events into orbit and resize calls, and
// draws the scene tree with a lit shader.
package display

import (
	"errors"
	"log/slog"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"parking-diorama/internal/config"
	"parking-diorama/internal/logger"
)

// ErrNoContext is returned by Open when raylib could not create a window and GL context.
var ErrNoContext = errors.New("display: could not acquire a rendering context")

// fallbackFPS paces frames when the monitor does not report a refresh rate.
const fallbackFPS = 60

// Orbiter receives drag and wheel input already translated into orbit angles and
// distance ratios.
type Orbiter interface {
	Rotate(dAzimuth, dPolar float32)
	Dolly(scale float32)
}

// Resizer receives window size changes.
type Resizer interface {
	Resize(width, height int) bool
}

// Window is the raylib window. It is the render loop's host and the viewport's surface.
// Only one Window may be open at a time.
type Window struct {
	cam    config.Camera
	orbit  Orbiter
	resize Resizer
	log    *slog.Logger

	*Renderer
}

// Open creates the window described by cfg and returns ErrNoContext if raylib fails.
// Frames are paced to the current monitor's refresh rate.
func Open(cfg config.Config, log *slog.Logger) (*Window, error) {
	log = logger.OrDiscard(log)
	flags := uint32(rl.FlagWindowResizable | rl.FlagVsyncHint)
	if cfg.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, ErrNoContext
	}

	fps := rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())
	if fps <= 0 {
		fps = fallbackFPS
	}
	rl.SetTargetFPS(int32(fps))
	log.Info("window opened",
		"width", rl.GetScreenWidth(), "height", rl.GetScreenHeight(),
		"refresh", fps, "msaa", cfg.Window.MSAA)

	return &Window{
		cam:      cfg.Camera,
		log:      log,
		Renderer: newRenderer(cfg.ShowStats, log),
	}, nil
}

// Bind sets where input events go. Events arriving before Bind are dropped.
func (w *Window) Bind(orbit Orbiter, resize Resizer) {
	w.orbit = orbit
	w.resize = resize
}

// NextFrame delivers the input raylib polled at the end of the last frame and reports
// whether the window is still open. Frame pacing happens in Render's EndDrawing.
func (w *Window) NextFrame() bool {
	if rl.WindowShouldClose() {
		return false
	}
	w.pollInput()
	return true
}

func (w *Window) pollInput() {
	if rl.IsWindowResized() && w.resize != nil {
		w.resize.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if w.orbit == nil {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			// A drag across the full window height turns RotateSpeed revolutions.
			perPixel := 2 * math32.Pi * w.cam.RotateSpeed / float32(max(rl.GetScreenHeight(), 1))
			w.orbit.Rotate(-d.X*perPixel, -d.Y*perPixel)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.orbit.Dolly(wheelScale(wheel, w.cam.ZoomSpeed))
	}
}

// wheelStep is the distance ratio of one wheel notch at ZoomSpeed 1.
const wheelStep = 0.95

// wheelScale turns wheel notches into a distance ratio: scrolling up (positive) moves in.
func wheelScale(wheel, speed float32) float32 {
	return math32.Pow(wheelStep, wheel*speed)
}

// SetSize resizes the window to width×height. Sizes that already match, such as those
// reported by the window's own resize event, are left alone.
func (w *Window) SetSize(width, height int) {
	if width == rl.GetScreenWidth() && height == rl.GetScreenHeight() {
		return
	}
	rl.SetWindowSize(width, height)
}

// Size returns the current drawable size in pixels.
func (w *Window) Size() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Close releases GPU resources and closes the window.
func (w *Window) Close() {
	w.Renderer.unload()
	rl.CloseWindow()
}
