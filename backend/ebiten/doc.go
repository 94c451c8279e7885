// Package ebiten implements render.Device on Ebitengine and provides the
// windowed game loop.
//
// Ebitengine's DrawTriangles takes destination coordinates in pixels, so
// the projection matrix the renderer computes is not consulted here; the
// GPU backend consumes it instead. Texture coordinates arrive normalized
// and are scaled to the source-pixel space Ebitengine vertices use.
//
// Run owns the window: it polls key presses into the bridge, forwards
// resizes as invalidations, and hands the frame image to the device before
// asking the bridge to render.
package ebiten
