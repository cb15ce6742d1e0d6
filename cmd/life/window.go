//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/app"
)

func runWindow(cfg app.Config, logger *log.Logger) error {
	ctrl := app.NewController(newSim(cfg), cfg, cfg.CellSize, cfg.CellSize, logger)
	game := app.New(ctrl, cfg)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowClosingHandled(true)

	size := cfg.GridSize()
	logger.Info("starting window", "cols", size.W, "rows", size.H, "tick", cfg.TickInterval)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
