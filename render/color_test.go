package render

import "testing"

func TestColorPacking(t *testing.T) {
	// 0xAABBGGRR: red in the low byte.
	red := Color(0xff0000ff)
	if red.R() != 0xff || red.G() != 0 || red.B() != 0 || red.A() != 0xff {
		t.Errorf("0xff0000ff unpacked to (%d,%d,%d,%d), want opaque red",
			red.R(), red.G(), red.B(), red.A())
	}
	if got := RGBA(0x11, 0x22, 0x33, 0x44); got != 0x44332211 {
		t.Errorf("RGBA(11,22,33,44) = %08x, want 44332211", uint32(got))
	}
}

func TestColorFloats(t *testing.T) {
	r, g, b, a := Color(0xff0000ff).Floats()
	if r != 1 || g != 0 || b != 0 || a != 1 {
		t.Errorf("Floats() = (%v,%v,%v,%v), want (1,0,0,1)", r, g, b, a)
	}
}

func TestColorPremultiplied(t *testing.T) {
	// Half-transparent white: RGB scale down with alpha.
	c := RGBA(0xff, 0xff, 0xff, 0x80)
	r, g, b, a := c.Premultiplied()
	want := float32(0x80) / 255
	if !near(r, want) || !near(g, want) || !near(b, want) || !near(a, want) {
		t.Errorf("Premultiplied() = (%v,%v,%v,%v), want all %v", r, g, b, a, want)
	}
}
