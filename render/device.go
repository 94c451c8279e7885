package render

import "image"

// Texture is an opaque handle to a device texture. The renderer never
// inspects texture contents; Size exists so devices that address source
// pixels directly (the ebiten backend) can recover the atlas dimensions.
type Texture interface {
	// Size returns the texture's pixel dimensions.
	Size() (width, height int)
}

// Device is the rendering surface the quad batcher draws through.
//
// A Device is driven from a single goroutine in a strict per-frame order:
//
//	BeginFrame -> (BindTexture | DrawQuads)* -> EndFrame
//
// DrawQuads submissions must reach the target in call order; every quad in
// one submission samples the texture bound by the most recent BindTexture.
// Devices are free to ignore the projection matrix when their drawing API
// already works in device pixels (the ebiten backend does).
type Device interface {
	// CreateTexture uploads a prepared RGBA image (see PrepareAtlas) and
	// returns a handle for BindTexture. It may be called at any time
	// outside a frame.
	CreateTexture(img *image.RGBA) (Texture, error)

	// BeginFrame starts a frame on a width x height pixel target: the
	// color buffer is cleared to clear and the projection transform for
	// this frame is established.
	BeginFrame(width, height int, projection Mat4, clear Color)

	// BindTexture makes tex the active texture for subsequent DrawQuads.
	BindTexture(tex Texture)

	// DrawQuads uploads the first quads*4 entries of positions and colors
	// and issues one indexed draw call covering quads*6 indices.
	DrawQuads(positions []Vertex, colors []Color, quads int)

	// EndFrame completes the frame and submits any pending device work.
	EndFrame()
}
