package render

import (
	"image"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// DefaultAtlasSize is the fixed square atlas dimension shared by the quad
// emitter and texture creation. The game module addresses source rectangles
// against this size.
const DefaultAtlasSize = 256

// PrepareAtlas converts src into the RGBA layout devices upload: exactly
// size x size pixels with the pixel rows flipped vertically. Images already
// at the atlas size are copied; anything else is resampled with nearest
// neighbor, which preserves the hard edges of tile art.
//
// The row flip pairs with the emitter's swapped texture coordinates so that
// the module's bottom-up source addressing renders upright; see the package
// documentation.
func PrepareAtlas(src image.Image, size int) *image.RGBA {
	if size < 1 {
		size = DefaultAtlasSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		stddraw.Draw(dst, dst.Bounds(), src, b.Min, stddraw.Src)
	} else {
		Logger().Warn("atlas resampled to fixed size",
			"width", b.Dx(), "height", b.Dy(), "size", size)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	flipRows(dst)
	return dst
}

// flipRows mirrors img vertically in place.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// solidImage returns the 1x1 opaque white image backing the reserved
// fallback texture. Untextured fills sample this single pixel stretched
// over the whole quad, so the fill color is the vertex color unchanged.
func solidImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0] = 0xff
	img.Pix[1] = 0xff
	img.Pix[2] = 0xff
	img.Pix[3] = 0xff
	return img
}
