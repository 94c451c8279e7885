// Package render implements the batched quad renderer at the heart of the
// host: a fixed-capacity geometry batch, an ordered texture bank with a
// reserved solid fallback, a quad emitter that converts tile draw requests
// into batched vertices, a frame renderer that owns the projection transform,
// and a redraw scheduler that coalesces invalidations into single frames.
//
// # Architecture
//
// The Renderer owns all mutable rendering state as explicit fields; there is
// no package-level state beyond the shared logger. Actual GPU work goes
// through the Device interface, implemented by backend/wgpu (offscreen
// WebGPU rendering via gogpu/wgpu) and backend/ebiten (windowed rendering
// via DrawTriangles). Tests use an in-package recording device.
//
// # Draw ordering
//
// Quads reach the screen in emission order. A flush happens when the batch
// fills, when the bound texture changes, and once at the end of the frame,
// so later requests always paint over earlier ones at overlapping pixels.
//
// # Coordinate conventions
//
// Destination rectangles are in device pixels, origin top-left, +Y down.
// Source rectangles are in atlas pixels addressed the way the game module
// addresses them: bottom-up rows. Atlas images are therefore row-flipped
// once at load (see PrepareAtlas) and the emitter swaps the top and bottom
// texture coordinates; the two flips cancel and tiles render upright with
// either backend's top-origin sampling.
//
// # Error handling
//
// Nothing in the render path returns an error: malformed draw requests are
// tolerated via clamping or degenerate geometry, because a single bad frame
// is transient and self-corrects on the next redraw. Only construction
// (device or texture creation) can fail.
package render
