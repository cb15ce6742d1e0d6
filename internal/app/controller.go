package app

import (
	"errors"

	"github.com/charmbracelet/log"

	icore "lifegrid/internal/core"
	"lifegrid/pkg/sims/life"
)

// ErrClosed is returned by Controller.Update once the front end reports a
// close request.
var ErrClosed = errors.New("window closed")

// Controller applies per-frame input to a simulation. It is shared by the
// window and terminal front ends, which only translate their own input
// events into an icore.Frame.
type Controller struct {
	sim    *life.Life
	ticker *icore.FixedStep
	logger *log.Logger

	cellW, cellH int

	seed          int64
	seedScale     float64
	seedThreshold float64

	hoverX, hoverY int
	hover          bool
}

// NewController wires a simulation to the timing and seeding settings of cfg.
// cellW and cellH give the pointer units covered by one cell.
func NewController(sim *life.Life, cfg Config, cellW, cellH int, logger *log.Logger) *Controller {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.StartPaused != sim.Paused() {
		sim.TogglePause()
	}
	return &Controller{
		sim:           sim,
		ticker:        icore.NewFixedStep(cfg.TickInterval),
		logger:        logger,
		cellW:         cellW,
		cellH:         cellH,
		seed:          cfg.Seed,
		seedScale:     cfg.SeedScale,
		seedThreshold: cfg.SeedThreshold,
	}
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() *life.Life { return c.sim }

// Hover returns the cell under the pointer on the last frame, if any.
func (c *Controller) Hover() (x, y int, ok bool) { return c.hoverX, c.hoverY, c.hover }

// CellAt maps a pointer position to grid coordinates. Positions left of or
// above the grid, and the partial strip past the last whole cell, are
// reported as off-grid.
func (c *Controller) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/c.cellW, py/c.cellH
	size := c.sim.Size()
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// Update applies one frame of input. Input is handled before any generation
// step so the following render reflects the whole frame.
func (c *Controller) Update(f icore.Frame) error {
	if f.CloseRequested {
		c.logger.Info("close requested", "generation", c.sim.Generation())
		return ErrClosed
	}

	if f.TogglePause {
		c.sim.TogglePause()
		c.ticker.Reset()
		if c.sim.Paused() {
			c.logger.Info("paused", "generation", c.sim.Generation(), "population", c.sim.Population())
		} else {
			c.logger.Info("running", "generation", c.sim.Generation(), "population", c.sim.Population())
		}
	}

	c.hoverX, c.hoverY, c.hover = c.CellAt(f.PointerX, f.PointerY)

	if c.sim.Paused() {
		c.edit(f)
		return nil
	}

	if c.ticker.Advance(f.Delta) {
		c.sim.Step()
		c.logger.Debug("step", "generation", c.sim.Generation(), "population", c.sim.Population())
	}
	return nil
}

func (c *Controller) edit(f icore.Frame) {
	if f.Clear {
		c.sim.Clear()
		c.logger.Info("cleared")
	}
	if f.Seed {
		c.sim.Seed(c.seed, c.seedScale, c.seedThreshold)
		c.logger.Info("seeded", "seed", c.seed, "population", c.sim.Population())
		c.seed++
	}

	if !f.Primary && !f.Secondary {
		return
	}
	if !c.hover {
		c.logger.Debug("edit off grid ignored", "x", f.PointerX, "y", f.PointerY)
		return
	}
	switch {
	case f.Primary:
		c.sim.SetCell(c.hoverX, c.hoverY, true)
	case f.Secondary:
		c.sim.SetCell(c.hoverX, c.hoverY, false)
	}
}
