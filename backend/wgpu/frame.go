package wgpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/mcneja/disguiser/render"
)

// ErrNoFrame is returned by ReadPixels before the first completed frame.
var ErrNoFrame = errors.New("wgpu: no rendered frame to read")

// gpuTimeout bounds every fence wait.
const gpuTimeout = 5 * time.Second

// frameState is the in-flight frame: the encoder and open render pass plus
// the per-frame resources to destroy once the frame has been submitted.
type frameState struct {
	encoder    hal.CommandEncoder
	rp         hal.RenderPassEncoder
	uniformBuf hal.Buffer
	buffers    []hal.Buffer
	groups     []hal.BindGroup
	active     bool
}

// BeginFrame opens a render pass onto the offscreen target, clearing it to
// the given color. Frame-level errors are logged and disable the frame;
// the matching EndFrame then does nothing, which keeps the draw path free
// of error plumbing on a surface the caller cannot fix mid-frame.
func (d *Device) BeginFrame(width, height int, projection render.Mat4, clear render.Color) {
	d.frame = frameState{}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if err := d.ensureTarget(width, height); err != nil {
		render.Logger().Error("frame target unavailable", "error", err)
		return
	}

	uniformBuf, err := createAndUploadBuffer(d.dev, d.queue, "quad_uniform",
		packMat4(projection), gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		render.Logger().Error("frame uniform upload failed", "error", err)
		return
	}

	encoder, err := d.dev.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "quad_frame_encoder",
	})
	if err != nil {
		d.dev.DestroyBuffer(uniformBuf)
		render.Logger().Error("frame encoder unavailable", "error", err)
		return
	}
	if err := encoder.BeginEncoding("quad_frame"); err != nil {
		d.dev.DestroyBuffer(uniformBuf)
		render.Logger().Error("frame encoding failed", "error", err)
		return
	}

	r, g, b, a := clear.Premultiplied()
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "quad_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    d.targetView,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(r), G: float64(g), B: float64(b), A: float64(a),
			},
		}},
	})
	rp.SetPipeline(d.pipe.pipeline)
	rp.SetIndexBuffer(d.pipe.indexBuf, gputypes.IndexFormatUint16, 0)

	d.frame = frameState{
		encoder:    encoder,
		rp:         rp,
		uniformBuf: uniformBuf,
		active:     true,
	}
}

// BindTexture selects the texture subsequent DrawQuads calls sample. The
// binding is device state, not frame state: callers rebind only on texture
// switches, so it must survive frame boundaries.
func (d *Device) BindTexture(tex render.Texture) {
	t, ok := tex.(*Texture)
	if !ok {
		render.Logger().Error("foreign texture bound", "texture", fmt.Sprintf("%T", tex))
		return
	}
	d.current = t
}

// DrawQuads records one indexed draw for the batched quads. Fresh vertex
// buffers are uploaded per call; a queue write lands at submit, so reusing
// one buffer across calls would leave only the final batch visible.
func (d *Device) DrawQuads(positions []render.Vertex, colors []render.Color, quads int) {
	if !d.frame.active || d.current == nil || quads < 1 {
		return
	}
	if quads > d.pipe.maxQuads {
		render.Logger().Warn("draw truncated to index buffer capacity",
			"quads", quads, "cap", d.pipe.maxQuads)
		quads = d.pipe.maxQuads
	}
	n := quads * render.VerticesPerQuad

	posBuf, err := createAndUploadBuffer(d.dev, d.queue, "quad_positions",
		packPositions(positions[:n]), gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		render.Logger().Error("vertex upload failed", "error", err)
		return
	}
	colorBuf, err := createAndUploadBuffer(d.dev, d.queue, "quad_colors",
		packColors(colors[:n]), gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		d.dev.DestroyBuffer(posBuf)
		render.Logger().Error("color upload failed", "error", err)
		return
	}
	d.frame.buffers = append(d.frame.buffers, posBuf, colorBuf)

	group, err := d.dev.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "quad_bind",
		Layout: d.pipe.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: d.frame.uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: d.current.view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: d.pipe.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		render.Logger().Error("bind group creation failed", "error", err)
		return
	}
	d.frame.groups = append(d.frame.groups, group)

	d.frame.rp.SetBindGroup(0, group, nil)
	d.frame.rp.SetVertexBuffer(0, posBuf, 0)
	d.frame.rp.SetVertexBuffer(1, colorBuf, 0)
	d.frame.rp.DrawIndexed(uint32(quads*render.IndicesPerQuad), 1, 0, 0, 0)
}

// EndFrame closes the render pass, submits, and waits for the GPU. The
// finished image stays in the offscreen target for ReadPixels.
func (d *Device) EndFrame() {
	f := d.frame
	d.frame = frameState{}
	if !f.active {
		return
	}
	defer d.releaseFrame(&f)

	f.rp.End()
	cmdBuf, err := f.encoder.EndEncoding()
	if err != nil {
		render.Logger().Error("frame encoding failed", "error", err)
		return
	}
	defer d.dev.FreeCommandBuffer(cmdBuf)

	fence, err := d.dev.CreateFence()
	if err != nil {
		render.Logger().Error("fence creation failed", "error", err)
		return
	}
	defer d.dev.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		render.Logger().Error("frame submit failed", "error", err)
		return
	}
	if ok, err := d.dev.Wait(fence, 1, gpuTimeout); err != nil || !ok {
		render.Logger().Error("frame wait failed", "ok", ok, "error", err)
	}
}

func (d *Device) releaseFrame(f *frameState) {
	for _, g := range f.groups {
		d.dev.DestroyBindGroup(g)
	}
	for _, b := range f.buffers {
		d.dev.DestroyBuffer(b)
	}
	if f.uniformBuf != nil {
		d.dev.DestroyBuffer(f.uniformBuf)
	}
}

// ReadPixels copies the last rendered frame off the GPU. Rows come back
// padded to the 256-byte copy pitch and are repacked tight.
func (d *Device) ReadPixels() (*image.RGBA, error) {
	if d.target == nil {
		return nil, ErrNoFrame
	}
	w := uint32(d.targetW)
	h := uint32(d.targetH)

	const copyPitchAlignment = 256
	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := d.dev.CreateBuffer(&hal.BufferDescriptor{
		Label: "quad_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create staging buffer: %w", err)
	}
	defer d.dev.DestroyBuffer(stagingBuf)

	encoder, err := d.dev.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "quad_readback_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create readback encoder: %w", err)
	}
	if err := encoder.BeginEncoding("quad_readback"); err != nil {
		return nil, fmt.Errorf("wgpu: begin readback: %w", err)
	}

	// The target sits in attachment layout after a frame; copies need the
	// transfer-source layout, and the next frame needs it back.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: d.target,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(d.target, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: d.target, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: d.target,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("wgpu: end readback: %w", err)
	}
	defer d.dev.FreeCommandBuffer(cmdBuf)

	fence, err := d.dev.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer d.dev.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("wgpu: submit readback: %w", err)
	}
	if ok, err := d.dev.Wait(fence, 1, gpuTimeout); err != nil || !ok {
		return nil, fmt.Errorf("wgpu: wait for readback: ok=%v err=%w", ok, err)
	}

	readback := make([]byte, stagingSize)
	if err := d.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("wgpu: read staging buffer: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	for row := uint32(0); row < h; row++ {
		src := readback[row*alignedBytesPerRow : row*alignedBytesPerRow+bytesPerRow]
		copy(img.Pix[int(row)*img.Stride:], src)
	}
	return img, nil
}

// packMat4 serializes a column-major matrix for the uniform buffer.
func packMat4(m render.Mat4) []byte {
	data := make([]byte, uniformSize)
	for i, v := range m {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return data
}

// packPositions serializes vertices as vec4<f32> pos_uv values.
func packPositions(verts []render.Vertex) []byte {
	data := make([]byte, len(verts)*quadVertexStride)
	off := 0
	for _, v := range verts {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v.S))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(v.T))
		off += quadVertexStride
	}
	return data
}

// packColors serializes per-vertex colors as premultiplied vec4<f32>.
func packColors(colors []render.Color) []byte {
	data := make([]byte, len(colors)*quadVertexStride)
	off := 0
	for _, c := range colors {
		r, g, b, a := c.Premultiplied()
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(r))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(g))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(b))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(a))
		off += quadVertexStride
	}
	return data
}
