// Package app builds the diorama once and wires it to a display: the scene, camera,
// viewport and render loop live on one App value instead of package globals.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/image/colornames"

	"parking-diorama/internal/camera"
	"parking-diorama/internal/composite"
	"parking-diorama/internal/config"
	"parking-diorama/internal/graphics"
	"parking-diorama/internal/lighting"
	"parking-diorama/internal/logger"
	"parking-diorama/internal/scene"
	"parking-diorama/internal/viewport"
)

// Display is everything App needs from the host: a refresh signal, a resizable surface
// and a renderer.
type Display interface {
	graphics.Host
	viewport.Surface
	graphics.Renderer
}

// App is the diorama's runtime context, constructed once at startup.
type App struct {
	Config   config.Config
	Scene    *scene.Scene
	Camera   *camera.Controller
	Viewport *viewport.Manager
	Loop     *graphics.Loop

	log *slog.Logger
}

// New builds the scene and camera for cfg and sizes the viewport to width×height.
func New(cfg config.Config, display Display, width, height int, log *slog.Logger) (*App, error) {
	log = logger.OrDiscard(log)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	cam := camera.New(cfg.Camera, 1)
	vp := viewport.New(cam, display, log)
	if !vp.Resize(width, height) {
		log.Warn("initial viewport has no area", "width", width, "height", height)
	}

	st := sc.Stats()
	log.Info("scene built", "nodes", st.Nodes, "meshes", st.Meshes, "lights", st.Lights)

	return &App{
		Config:   cfg,
		Scene:    sc,
		Camera:   cam,
		Viewport: vp,
		Loop:     graphics.NewLoop(display, cam, display, sc, log),
		log:      log,
	}, nil
}

// Build assembles the full diorama for cfg: sky background, the light rig and the lot.
func Build(cfg config.Config) (*scene.Scene, error) {
	sc := scene.New()
	sc.Background = colornames.Skyblue
	lighting.Rig(sc, cfg.Lighting)
	if err := composite.Lot(sc, cfg); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	return sc, nil
}

// Run drives the render loop until ctx is done, Stop is called, or the display closes.
func (a *App) Run(ctx context.Context) error {
	return a.Loop.Run(ctx)
}

// Stop ends Run before its next frame.
func (a *App) Stop() {
	a.Loop.Stop()
}
