package disguiser

import "github.com/mcneja/disguiser/render"

// Color is the packed 0xAABBGGRR color crossing the module boundary.
type Color = render.Color

// Module is the guest side of the game contract: the entry points the host
// calls into. A Module draws nothing on its own; during OnDraw it issues
// Host callbacks, and those happen synchronously before OnDraw returns.
type Module interface {
	// Start initializes the game with a random seed split across two
	// 32-bit halves, high word first.
	Start(seedHi, seedLo uint32)

	// OnKeyDown delivers one key press with modifier state. The key is
	// always one the module understands; the bridge filters the rest.
	OnKeyDown(key KeyCode, ctrl, shift bool)

	// OnDraw renders one frame for a surface of the given pixel size by
	// calling back into the Host it was given.
	OnDraw(width, height int32)
}

// Host is the set of callbacks a Module may invoke. DrawTile and DrawRect
// are legal only inside OnDraw; InvalidateScreen is legal at any time.
type Host interface {
	// DrawTile requests a textured, tinted quad. The source rectangle
	// shares the destination's extent and is addressed in atlas pixels.
	DrawTile(destX, destY, sizeX, sizeY int32, color Color, textureIndex, srcX, srcY int32)

	// DrawRect requests an untextured solid fill.
	DrawRect(destX, destY, sizeX, sizeY int32, color Color)

	// InvalidateScreen marks the displayed frame stale so the host
	// schedules a redraw.
	InvalidateScreen()
}
