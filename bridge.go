package disguiser

import (
	"fmt"

	"github.com/mcneja/disguiser/render"
)

// Bridge connects a game Module to a render.Renderer. It is the Host the
// module draws through: tile and rectangle callbacks feed the renderer's
// quad emitter, and screen invalidations feed its redraw scheduler.
//
// The platform layer drives the other direction. It forwards key events
// with KeyDown and calls Render once per display tick; Render draws only
// when an invalidation made the screen stale.
type Bridge struct {
	mod Module
	r   *render.Renderer
}

// NewBridge wires mod to r.
func NewBridge(mod Module, r *render.Renderer) (*Bridge, error) {
	if mod == nil {
		return nil, fmt.Errorf("disguiser: nil module")
	}
	if r == nil {
		return nil, fmt.Errorf("disguiser: nil renderer")
	}
	return &Bridge{mod: mod, r: r}, nil
}

// Start seeds and initializes the module. The 64-bit seed is split into
// the two 32-bit halves the module ABI takes, high word first.
func (b *Bridge) Start(seed uint64) {
	b.mod.Start(uint32(seed>>32), uint32(seed))
}

// KeyDown forwards one key press. Codes the module does not understand are
// dropped here so the module never sees them.
func (b *Bridge) KeyDown(key KeyCode, ctrl, shift bool) {
	if !key.Valid() {
		render.Logger().Debug("unmapped key dropped", "key", int32(key))
		return
	}
	b.mod.OnKeyDown(key, ctrl, shift)
}

// Render draws a frame through the module's OnDraw if the screen is stale
// and reports whether it did. Call once per display tick; ticks on a valid
// screen cost nothing.
func (b *Bridge) Render(width, height int) bool {
	return b.r.EnsureValid(width, height, b.mod.OnDraw)
}

// Invalidate marks the screen stale from the host side, for events the
// module does not know about such as window resizes.
func (b *Bridge) Invalidate() { b.r.Invalidate() }

// DrawTile implements Host by batching the quad on the renderer.
func (b *Bridge) DrawTile(destX, destY, sizeX, sizeY int32, color Color, textureIndex, srcX, srcY int32) {
	b.r.DrawTile(destX, destY, sizeX, sizeY, color, textureIndex, srcX, srcY)
}

// DrawRect implements Host by batching a solid fill on the renderer.
func (b *Bridge) DrawRect(destX, destY, sizeX, sizeY int32, color Color) {
	b.r.DrawRect(destX, destY, sizeX, sizeY, color)
}

// InvalidateScreen implements Host.
func (b *Bridge) InvalidateScreen() { b.r.Invalidate() }

var _ Host = (*Bridge)(nil)
