package ebiten

import (
	"testing"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/mcneja/disguiser"
	"github.com/mcneja/disguiser/render"
)

func TestAppendVertices(t *testing.T) {
	positions := []render.Vertex{
		{X: 10, Y: 20, S: 0, T: 1},
		{X: 26, Y: 20, S: 0.0625, T: 1},
	}
	colors := []render.Color{0xff0000ff, render.White}

	verts := appendVertices(nil, positions, colors, 256, 256)
	if len(verts) != 2 {
		t.Fatalf("len = %d, want 2", len(verts))
	}
	if verts[0].DstX != 10 || verts[0].DstY != 20 {
		t.Errorf("vertex 0 dst = (%v,%v), want (10,20)", verts[0].DstX, verts[0].DstY)
	}
	// Normalized (0.0625, 1) scales to source pixels (16, 256).
	if verts[1].SrcX != 16 || verts[1].SrcY != 256 {
		t.Errorf("vertex 1 src = (%v,%v), want (16,256)", verts[1].SrcX, verts[1].SrcY)
	}
	// Straight-alpha color: opaque red.
	if verts[0].ColorR != 1 || verts[0].ColorG != 0 || verts[0].ColorB != 0 || verts[0].ColorA != 1 {
		t.Errorf("vertex 0 color = (%v,%v,%v,%v), want (1,0,0,1)",
			verts[0].ColorR, verts[0].ColorG, verts[0].ColorB, verts[0].ColorA)
	}
}

func TestAppendVerticesReusesBuffer(t *testing.T) {
	positions := []render.Vertex{{X: 1}}
	colors := []render.Color{render.White}

	buf := make([]eb.Vertex, 0, 8)
	out := appendVertices(buf, positions, colors, 1, 1)
	if len(out) != 1 || cap(out) != 8 {
		t.Errorf("len,cap = %d,%d, want 1,8", len(out), cap(out))
	}
}

func TestKeyCodeFor(t *testing.T) {
	tests := []struct {
		key  eb.Key
		want disguiser.KeyCode
	}{
		{eb.KeyArrowLeft, disguiser.KeyLeft},
		{eb.KeyArrowDown, disguiser.KeyDown},
		{eb.KeyEscape, disguiser.KeyEscape},
		{eb.KeyDigit7, disguiser.Key7},
		{eb.KeyZ, disguiser.KeyZ},
		{eb.KeyNumpad5, disguiser.KeyNumpad5},
		{eb.KeyPeriod, disguiser.KeyPeriod},
		{eb.KeyBracketRight, disguiser.KeyBracketRight},
	}
	for _, tt := range tests {
		got, ok := KeyCodeFor(tt.key)
		if !ok || got != tt.want {
			t.Errorf("KeyCodeFor(%v) = %d,%v, want %d,true", tt.key, got, ok, tt.want)
		}
	}

	// Keys with no module meaning report false.
	for _, key := range []eb.Key{eb.KeyF1, eb.KeyControlLeft, eb.KeyShiftRight, eb.KeyAltLeft} {
		if _, ok := KeyCodeFor(key); ok {
			t.Errorf("KeyCodeFor(%v) = true, want false", key)
		}
	}

	// Every mapped code is one the module accepts.
	for key, code := range keyCodes {
		if !code.Valid() {
			t.Errorf("key %v maps to invalid code %d", key, code)
		}
	}
}

func TestDrawQuadsWithoutTargetIsSafe(t *testing.T) {
	d := NewDevice()
	d.BeginFrame(320, 240, render.Ortho2D(320, 240), render.Black)
	d.DrawQuads([]render.Vertex{{}, {}, {}, {}}, []render.Color{0, 0, 0, 0}, 1)
	d.EndFrame()
}
