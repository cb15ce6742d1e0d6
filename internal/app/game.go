//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	icore "lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	cfg     Config

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game drawing the controller's simulation.
func New(ctrl *Controller, cfg Config) *Game {
	size := ctrl.Sim().Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(cfg.CellSize),
		cfg:      cfg,
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update polls input for this frame and hands it to the controller.
func (g *Game) Update() error {
	if err := g.ctrl.Update(g.pollFrame()); err != nil {
		if errors.Is(err, ErrClosed) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) pollFrame() icore.Frame {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = g.cfg.TPS
	}
	mx, my := ebiten.CursorPosition()
	return icore.Frame{
		CloseRequested: ebiten.IsWindowBeingClosed(),
		TogglePause:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Clear:          inpututil.IsKeyJustPressed(ebiten.KeyC),
		Seed:           inpututil.IsKeyJustPressed(ebiten.KeyR),
		Primary:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		PointerX:       mx,
		PointerY:       my,
		Delta:          time.Second / time.Duration(tps),
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	sim := g.ctrl.Sim()
	g.painter.Blit(screen, sim.Cells(), g.onColor, g.offColor, g.cfg.CellSize)
	x, y, hover := g.ctrl.Hover()
	g.hud.Draw(screen, sim.Paused(), x, y, hover)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
