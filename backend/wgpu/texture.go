package wgpu

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/mcneja/disguiser/render"
)

// Texture is an immutable atlas texture the quad pipeline samples.
type Texture struct {
	tex  hal.Texture
	view hal.TextureView
	w, h int
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) { return t.w, t.h }

// CreateTexture uploads img as an RGBA8 texture. Pixel data is converted
// to premultiplied alpha on the way in to match the pipeline's blend state.
func (d *Device) CreateTexture(img *image.RGBA) (render.Texture, error) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	tex, err := d.dev.CreateTexture(&hal.TextureDescriptor{
		Label: "quad_atlas",
		Size: hal.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture: %w", err)
	}

	d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		packPixels(img),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w) * 4,
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)

	view, err := d.dev.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "quad_atlas_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.dev.DestroyTexture(tex)
		return nil, fmt.Errorf("wgpu: create texture view: %w", err)
	}

	t := &Texture{tex: tex, view: view, w: w, h: h}
	d.textures = append(d.textures, t)
	return t, nil
}

// packPixels returns a tightly packed copy of img's pixels for upload.
// image.RGBA stores alpha-premultiplied values, which is exactly what the
// pipeline's blend state expects.
func packPixels(img *image.RGBA) []byte {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return out
}
