package render

import (
	"fmt"
	"image"
)

// DrawFunc is the frame draw callback: the single synchronous reentry point
// into the game module's rendering logic. Every tile request the callback
// issues funnels through the emitter before the call returns.
type DrawFunc func(width, height int32)

// Renderer owns the geometry batch, the texture bank, the projection
// transform and the redraw scheduler, and drives a Device with them. It is
// the explicit object form of the render state: nothing here lives at
// package level, so renderers are independent and testable in isolation.
//
// Renderer is not safe for concurrent use. The render path is
// single-threaded: everything runs inside the frame callback's call stack.
type Renderer struct {
	dev   Device
	batch *Batch
	bank  *Bank
	sched Scheduler

	proj      Mat4
	atlasSize float32
	clear     Color
}

// New creates a Renderer on dev. Each atlas image is prepared (sized and
// row-flipped) and uploaded in order; a reserved 1x1 solid fallback texture
// is appended after them, so atlas i keeps index i and FallbackIndex
// addresses untextured fills.
func New(dev Device, atlases []image.Image, opts ...Option) (*Renderer, error) {
	if dev == nil {
		return nil, fmt.Errorf("render: nil device")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	textures := make([]Texture, 0, len(atlases)+1)
	for i, img := range atlases {
		tex, err := dev.CreateTexture(PrepareAtlas(img, o.atlasSize))
		if err != nil {
			return nil, fmt.Errorf("render: atlas %d: %w", i, err)
		}
		textures = append(textures, tex)
	}
	fallback, err := dev.CreateTexture(solidImage())
	if err != nil {
		return nil, fmt.Errorf("render: fallback texture: %w", err)
	}
	textures = append(textures, fallback)

	r := &Renderer{
		dev:       dev,
		batch:     NewBatch(o.maxQuads),
		bank:      NewBank(textures),
		atlasSize: float32(o.atlasSize),
		clear:     o.clear,
	}
	// Establish the device binding for the bank's initial selection.
	dev.BindTexture(r.bank.Texture(r.bank.Current()))

	Logger().Info("renderer created",
		"atlases", len(atlases), "maxQuads", r.batch.Cap(), "atlasSize", o.atlasSize)
	return r, nil
}

// FallbackIndex returns the texture index of the reserved solid texture.
func (r *Renderer) FallbackIndex() int { return r.bank.Len() - 1 }

// DrawTile batches one textured, tinted quad. The destination rectangle is
// in device pixels; the source rectangle is in atlas pixels with the
// destination's extent. Out-of-range texture indices clamp; zero or
// negative sizes produce degenerate quads that draw nothing.
//
// Only call during a frame callback.
func (r *Renderer) DrawTile(destX, destY, destW, destH int32, color Color, textureIndex int32, srcX, srcY int32) {
	tex, switched := r.bank.Select(int(textureIndex))
	if switched {
		r.batch.Flush(r.dev)
		r.dev.BindTexture(tex)
	}
	if r.batch.Full() {
		r.batch.Flush(r.dev)
	}

	x0 := float32(destX)
	y0 := float32(destY)
	x1 := float32(destX + destW)
	y1 := float32(destY + destH)

	s0 := float32(srcX) / r.atlasSize
	s1 := float32(srcX+destW) / r.atlasSize
	// Top and bottom swapped: sources are addressed bottom-up while the
	// device samples top-origin; prepared atlases are row-flipped to match.
	t0 := float32(srcY+destH) / r.atlasSize
	t1 := float32(srcY) / r.atlasSize

	r.batch.Append([VerticesPerQuad]Vertex{
		{X: x0, Y: y0, S: s0, T: t0},
		{X: x1, Y: y0, S: s1, T: t0},
		{X: x0, Y: y1, S: s0, T: t1},
		{X: x1, Y: y1, S: s1, T: t1},
	}, color)
}

// DrawRect batches an untextured solid fill: a tile request against the
// reserved fallback texture. The 1x1 solid pixel stretches over the whole
// quad, so the result is the flat color regardless of size.
func (r *Renderer) DrawRect(destX, destY, destW, destH int32, color Color) {
	r.DrawTile(destX, destY, destW, destH, color, int32(r.FallbackIndex()), 0, 0)
}

// RenderFrame draws one complete frame: recompute the projection for the
// surface size, clear, invoke draw synchronously, then flush whatever the
// callback left batched. Draw calls reach the device in emission order, so
// painter's order holds across the frame.
func (r *Renderer) RenderFrame(width, height int, draw DrawFunc) {
	r.proj = Ortho2D(float32(width), float32(height))
	r.dev.BeginFrame(width, height, r.proj, r.clear)
	if draw != nil {
		draw(int32(width), int32(height))
	}
	r.batch.Flush(r.dev)
	r.dev.EndFrame()
}

// Invalidate marks the displayed frame stale; the redraw happens on the
// next EnsureValid. Callable at any time, including mid-frame.
func (r *Renderer) Invalidate() { r.sched.Invalidate() }

// Valid reports whether the displayed frame is current.
func (r *Renderer) Valid() bool { return r.sched.Valid() }

// EnsureValid renders one frame via RenderFrame if the screen is stale and
// reports whether it did. Bursts of invalidations between two checks
// collapse into a single redraw.
func (r *Renderer) EnsureValid(width, height int, draw DrawFunc) bool {
	return r.sched.EnsureValid(func() {
		r.RenderFrame(width, height, draw)
	})
}
