// life is a Game of Life simulator with a window and a terminal front end.
//
// Usage:
//
//	life        - open the simulator window (requires the ebiten build tag)
//	life tui    - run the simulator in the terminal
//
// Controls: ESC toggles pause. While paused, the primary button sets a
// cell alive, the secondary button sets it dead, C clears the grid and R
// seeds a random soup.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/pkg/sims/life"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Game of Life simulator",
	Long: `Game of Life on a fixed grid. Press ESC to pause and edit cells with
the mouse, press ESC again to watch the generations evolve.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		return runWindow(cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// setup loads the embedded configuration and builds the process logger.
func setup() (app.Config, *log.Logger) {
	cfg := app.DefaultConfig()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           cfg.Level(),
	})
	return cfg, logger
}

// newSim creates the simulator sized from cfg.
func newSim(cfg app.Config) *life.Life {
	size := cfg.GridSize()
	return life.New(size.W, size.H)
}
