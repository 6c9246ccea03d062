package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"parking-diorama/internal/app"
	"parking-diorama/internal/config"
	"parking-diorama/internal/display"
	"parking-diorama/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "diorama:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(logger.LogFilePath, cfg.LogLevel)
	defer log.Close()

	win, err := display.Open(cfg, log.Logger)
	if err != nil {
		log.Error("initialization failed", "err", err)
		return fmt.Errorf("initialize display: %w", err)
	}
	defer win.Close()

	w, h := win.Size()
	a, err := app.New(cfg, win, w, h, log.Logger)
	if err != nil {
		return err
	}
	win.Bind(a.Camera, a.Viewport)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
