package render

// Color is a 32-bit RGBA value packed as 0xAABBGGRR: the red channel lives
// in the lowest byte, alpha in the highest. This is the little-endian RGBA
// byte order the game module uses on the wire (0xff0000ff is opaque red).
type Color uint32

// Common colors in packed form.
const (
	White       Color = 0xffffffff
	Black       Color = 0xff000000
	Transparent Color = 0x00000000
)

// RGBA packs four 8-bit channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Floats returns the straight-alpha channels as floats in [0, 1].
func (c Color) Floats() (r, g, b, a float32) {
	const s = 1.0 / 255.0
	return float32(c.R()) * s, float32(c.G()) * s, float32(c.B()) * s, float32(c.A()) * s
}

// Premultiplied returns the channels as floats in [0, 1] with RGB scaled
// by alpha, matching a premultiplied source-over blend state.
func (c Color) Premultiplied() (r, g, b, a float32) {
	r, g, b, a = c.Floats()
	return r * a, g * a, b * a, a
}
