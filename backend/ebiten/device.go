package ebiten

import (
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/mcneja/disguiser/render"
)

// Texture wraps an Ebitengine image as a render texture.
type Texture struct {
	img *eb.Image
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Device implements render.Device by drawing triangles onto the current
// frame's screen image. SetTarget must be called with each frame's screen
// before the renderer draws; outside a frame the device discards draws.
type Device struct {
	screen  *eb.Image
	current *Texture
	verts   []eb.Vertex
	indices []uint16
}

var _ render.Device = (*Device)(nil)

// NewDevice creates an Ebitengine-backed device.
func NewDevice() *Device {
	return &Device{}
}

// SetTarget points the device at the screen image for the current frame.
// Pass nil after the frame to drop stray draws.
func (d *Device) SetTarget(screen *eb.Image) { d.screen = screen }

// CreateTexture uploads img to the GPU as an Ebitengine image.
func (d *Device) CreateTexture(img *image.RGBA) (render.Texture, error) {
	return &Texture{img: eb.NewImageFromImage(img)}, nil
}

// BeginFrame clears the screen. Width and height are implied by the screen
// image and the projection is unused; Ebitengine draws in pixel space.
func (d *Device) BeginFrame(width, height int, _ render.Mat4, clear render.Color) {
	if d.screen == nil {
		render.Logger().Warn("frame begun with no screen target")
		return
	}
	d.screen.Fill(color.RGBA{R: clear.R(), G: clear.G(), B: clear.B(), A: clear.A()})
}

// BindTexture selects the source image for subsequent DrawQuads calls.
func (d *Device) BindTexture(tex render.Texture) {
	if t, ok := tex.(*Texture); ok {
		d.current = t
	}
}

// DrawQuads draws the batched quads as one DrawTriangles call.
func (d *Device) DrawQuads(positions []render.Vertex, colors []render.Color, quads int) {
	if d.screen == nil || d.current == nil || quads < 1 {
		return
	}
	n := quads * render.VerticesPerQuad
	w, h := d.current.Size()
	d.verts = appendVertices(d.verts[:0], positions[:n], colors[:n], float32(w), float32(h))

	if len(d.indices) < quads*render.IndicesPerQuad {
		d.indices = render.QuadIndices(quads)
	}
	d.screen.DrawTriangles(d.verts, d.indices[:quads*render.IndicesPerQuad], d.current.img,
		&eb.DrawTrianglesOptions{ColorScaleMode: eb.ColorScaleModeStraightAlpha})
}

// EndFrame is a no-op; Ebitengine presents the frame when Draw returns.
func (d *Device) EndFrame() {}

// appendVertices converts renderer vertices to Ebitengine vertices.
// Normalized texture coordinates scale to source pixels, and colors stay
// straight alpha to match ColorScaleModeStraightAlpha.
func appendVertices(dst []eb.Vertex, positions []render.Vertex, colors []render.Color, texW, texH float32) []eb.Vertex {
	for i, v := range positions {
		r, g, b, a := colors[i].Floats()
		dst = append(dst, eb.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   v.S * texW,
			SrcY:   v.T * texH,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	return dst
}
