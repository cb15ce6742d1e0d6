//go:build !ebiten

package main

import (
	"errors"

	"github.com/charmbracelet/log"

	"lifegrid/internal/app"
)

func runWindow(app.Config, *log.Logger) error {
	return errors.New("the window front end requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/life` or use `life tui`")
}
