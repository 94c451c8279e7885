package wgpu

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/mcneja/disguiser/render"
)

func TestPackPositions(t *testing.T) {
	verts := []render.Vertex{
		{X: 1, Y: 2, S: 0.25, T: 0.75},
		{X: -3, Y: 4, S: 1, T: 0},
	}
	data := packPositions(verts)
	if len(data) != len(verts)*quadVertexStride {
		t.Fatalf("len = %d, want %d", len(data), len(verts)*quadVertexStride)
	}
	want := []float32{1, 2, 0.25, 0.75, -3, 4, 1, 0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestPackColorsPremultiplies(t *testing.T) {
	data := packColors([]render.Color{render.RGBA(0xff, 0xff, 0xff, 0x80)})
	a := math.Float32frombits(binary.LittleEndian.Uint32(data[12:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(data[0:]))
	if math.Abs(float64(a-float32(0x80)/255)) > 1e-6 {
		t.Errorf("alpha = %v, want %v", a, float32(0x80)/255)
	}
	if math.Abs(float64(r-a)) > 1e-6 {
		t.Errorf("premultiplied red = %v, want alpha %v", r, a)
	}
}

func TestPackMat4(t *testing.T) {
	m := render.Ortho2D(320, 240)
	data := packMat4(m)
	if len(data) != uniformSize {
		t.Fatalf("len = %d, want %d", len(data), uniformSize)
	}
	for i, v := range m {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != v {
			t.Errorf("element %d = %v, want %v", i, got, v)
		}
	}
}

func TestBuildIndexData(t *testing.T) {
	data := buildIndexData(2)
	want := []uint16{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7}
	if len(data) != len(want)*2 {
		t.Fatalf("len = %d, want %d", len(data), len(want)*2)
	}
	for i, w := range want {
		if got := binary.LittleEndian.Uint16(data[i*2:]); got != w {
			t.Errorf("index %d = %d, want %d", i, got, w)
		}
	}
}

func TestPackPixelsTightensStride(t *testing.T) {
	// A subimage has a stride wider than its row length.
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	base.Set(2, 2, color.RGBA{R: 0xff, A: 0xff})
	sub := base.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)

	data := packPixels(sub)
	if len(data) != 4*4*4 {
		t.Fatalf("len = %d, want %d", len(data), 4*4*4)
	}
	if data[0] != 0xff || data[3] != 0xff {
		t.Errorf("pixel (0,0) = %v, want red", data[:4])
	}
}

func TestQuadVertexLayout(t *testing.T) {
	layouts := quadVertexLayout()
	if len(layouts) != 2 {
		t.Fatalf("buffers = %d, want 2", len(layouts))
	}
	for i, l := range layouts {
		if l.ArrayStride != quadVertexStride {
			t.Errorf("buffer %d stride = %d, want %d", i, l.ArrayStride, quadVertexStride)
		}
		if len(l.Attributes) != 1 {
			t.Fatalf("buffer %d attributes = %d, want 1", i, len(l.Attributes))
		}
		if got := l.Attributes[0].ShaderLocation; got != uint32(i) {
			t.Errorf("buffer %d shader location = %d, want %d", i, got, i)
		}
	}
}

func TestBindingSurvivesFrameBoundaries(t *testing.T) {
	d := &Device{}
	tex := &Texture{w: 4, h: 4}
	d.BindTexture(tex)
	if d.current != tex {
		t.Fatal("texture not bound")
	}

	// A renderer binds once up front and again only on texture switches,
	// so a module drawing with a single texture rebinds on no frame after
	// the first. The binding is device state and must not live in the
	// per-frame state BeginFrame resets. Without a GPU the frame setup
	// stops partway through; the reset at the top still runs.
	func() {
		defer func() { _ = recover() }()
		d.BeginFrame(8, 8, render.Ortho2D(8, 8), render.Black)
	}()
	if d.current != tex {
		t.Fatal("texture binding lost across BeginFrame")
	}

	d.EndFrame()
	if d.current != tex {
		t.Fatal("texture binding lost across EndFrame")
	}
}
