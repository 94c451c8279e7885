// Package demo is a built-in game module used when no wasm binary is
// given. It fills the screen with atlas tiles, moves a cursor with the
// arrow keys, and exercises the same host surface the real module uses.
package demo

import (
	"github.com/mcneja/disguiser"
)

const (
	tileSize  = 16
	atlasSide = 256

	statusHeight = 24
	statusColor  = disguiser.Color(0xe0302030)
	cursorColor  = disguiser.Color(0x80ffffff)
)

// Game is a deterministic tile-grid toy implementing disguiser.Module.
type Game struct {
	host disguiser.Host

	seed    uint64
	cursorX int32
	cursorY int32
}

var _ disguiser.Module = (*Game)(nil)

// New creates the demo game drawing through host.
func New(host disguiser.Host) *Game {
	return &Game{host: host}
}

// Start seeds the tile pattern and requests the first frame.
func (g *Game) Start(seedHi, seedLo uint32) {
	g.seed = uint64(seedHi)<<32 | uint64(seedLo)
	g.cursorX, g.cursorY = 0, 0
	g.host.InvalidateScreen()
}

// OnKeyDown moves the cursor with the arrows or numpad, reshuffles the
// pattern on space, and invalidates only when something changed.
func (g *Game) OnKeyDown(key disguiser.KeyCode, ctrl, shift bool) {
	step := int32(1)
	if shift {
		step = 4
	}
	switch key {
	case disguiser.KeyLeft, disguiser.KeyNumpad4:
		g.cursorX -= step
	case disguiser.KeyRight, disguiser.KeyNumpad6:
		g.cursorX += step
	case disguiser.KeyUp, disguiser.KeyNumpad8:
		g.cursorY -= step
	case disguiser.KeyDown, disguiser.KeyNumpad2:
		g.cursorY += step
	case disguiser.KeySpace:
		g.seed = g.seed*6364136223846793005 + 1442695040888963407
	case disguiser.KeyHome:
		g.cursorX, g.cursorY = 0, 0
	default:
		return
	}
	if g.cursorX < 0 {
		g.cursorX = 0
	}
	if g.cursorY < 0 {
		g.cursorY = 0
	}
	g.host.InvalidateScreen()
}

// OnDraw paints the tile grid, the cursor highlight, and a status bar.
func (g *Game) OnDraw(width, height int32) {
	cols := (width + tileSize - 1) / tileSize
	rows := (height - statusHeight + tileSize - 1) / tileSize

	for y := int32(0); y < rows; y++ {
		for x := int32(0); x < cols; x++ {
			t := g.tileAt(x, y)
			// Source rows count up from the atlas bottom.
			srcX := (t % 16) * tileSize
			srcY := (t / 16) * tileSize
			g.host.DrawTile(x*tileSize, y*tileSize, tileSize, tileSize,
				g.tintAt(x, y), 0, srcX, srcY)
		}
	}

	cx := g.cursorX
	if cx >= cols {
		cx = cols - 1
	}
	cy := g.cursorY
	if cy >= rows {
		cy = rows - 1
	}
	if cx >= 0 && cy >= 0 {
		g.host.DrawRect(cx*tileSize, cy*tileSize, tileSize, tileSize, cursorColor)
	}

	g.host.DrawRect(0, height-statusHeight, width, statusHeight, statusColor)
}

// tileAt picks a tile index for a grid cell, stable for a given seed.
func (g *Game) tileAt(x, y int32) int32 {
	h := g.seed ^ uint64(uint32(x))*0x9e3779b97f4a7c15 ^ uint64(uint32(y))*0xc2b2ae3d27d4eb4f
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	return int32((h >> 16) % (atlasSide / tileSize * atlasSide / tileSize))
}

// tintAt shades cells slightly so the grid reads even with a flat atlas.
func (g *Game) tintAt(x, y int32) disguiser.Color {
	if (x+y)%2 == 0 {
		return disguiser.Color(0xffffffff)
	}
	return disguiser.Color(0xffd0d0d0)
}
