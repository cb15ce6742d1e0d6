package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lifegrid/internal/app"
	"lifegrid/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the simulator in the terminal",
	Long: `Runs the same simulator inside the terminal. Click to edit cells while
paused, ESC toggles pause, q quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("life tui needs an interactive terminal")
	}
	size := cfg.GridSize()
	needW, needH := size.W*cfg.TUICellWidth, size.H+2
	if w, h, err := term.GetSize(fd); err == nil && (w < needW || h < needH) {
		logger.Warn("terminal smaller than grid, output will wrap",
			"terminal", fmt.Sprintf("%dx%d", w, h), "needed", fmt.Sprintf("%dx%d", needW, needH))
	}

	// The alt screen owns the terminal; keep log lines out of it.
	var out io.Writer = io.Discard
	if cfg.TUILogFile != "" {
		f, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.TUILogFile, err)
		}
		defer f.Close()
		out = f
	}
	logger.SetOutput(out)

	ctrl := app.NewController(newSim(cfg), cfg, cfg.TUICellWidth, 1, logger)
	logger.Info("starting terminal front end", "cols", size.W, "rows", size.H)
	if err := tui.Run(ctrl, cfg.TPS, cfg.TUICellWidth); err != nil {
		return fmt.Errorf("terminal front end: %w", err)
	}
	return nil
}
