package ebiten

import (
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/mcneja/disguiser"
)

// Config describes the window the game runs in.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the initial window size in pixels.
	Width, Height int

	// Seed seeds the game module on startup.
	Seed uint64

	// TPS is the update rate. Zero means Ebitengine's default of 60.
	TPS int
}

// game adapts a Bridge to Ebitengine's Game interface.
type game struct {
	bridge  *disguiser.Bridge
	dev     *Device
	pressed []eb.Key

	lastW, lastH int
}

// Update forwards this tick's key presses to the module.
func (g *game) Update() error {
	g.pressed = forwardKeys(g.bridge, g.pressed)
	return nil
}

// Draw renders the frame if the module invalidated the screen. Ebitengine
// is configured to keep the previous frame, so a valid screen draws
// nothing and the old image stays up.
func (g *game) Draw(screen *eb.Image) {
	b := screen.Bounds()
	g.dev.SetTarget(screen)
	g.bridge.Render(b.Dx(), b.Dy())
	g.dev.SetTarget(nil)
}

// Layout runs the game at 1:1 pixels and invalidates on resize, since the
// retained frame no longer matches the new surface.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		g.bridge.Invalidate()
	}
	return outsideWidth, outsideHeight
}

// Run opens the window, starts the module, and blocks in the game loop
// until the window closes.
func Run(bridge *disguiser.Bridge, dev *Device, cfg Config) error {
	if bridge == nil || dev == nil {
		return fmt.Errorf("ebiten: nil bridge or device")
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		cfg.Width, cfg.Height = 800, 600
	}

	eb.SetWindowTitle(cfg.Title)
	eb.SetWindowSize(cfg.Width, cfg.Height)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	// The redraw scheduler decides when frames change; keep the previous
	// frame on ticks that draw nothing.
	eb.SetScreenClearedEveryFrame(false)
	if cfg.TPS > 0 {
		eb.SetTPS(cfg.TPS)
	}

	bridge.Start(cfg.Seed)
	return eb.RunGame(&game{bridge: bridge, dev: dev})
}
