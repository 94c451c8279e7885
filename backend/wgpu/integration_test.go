package wgpu

import (
	"testing"

	"github.com/mcneja/disguiser/render"
)

// TestDeviceIntegration renders one frame on a real GPU and reads the
// pixels back. It exercises the whole runtime path: device open, pipeline
// creation, texture binding, batched draws, submit, and readback.
func TestDeviceIntegration(t *testing.T) {
	d, err := Open(render.DefaultMaxQuads)
	if err != nil {
		t.Skipf("GPU not available: %v (expected in CI/test environments)", err)
	}
	defer d.Close()

	clear := render.RGBA(0, 0, 0xff, 0xff)
	r, err := render.New(d, nil, render.WithClearColor(clear))
	if err != nil {
		t.Fatalf("create renderer: %v", err)
	}

	const red = render.Color(0xff0000ff)
	r.RenderFrame(8, 8, func(w, h int32) {
		r.DrawRect(0, 0, 4, 4, red)
	})

	img, err := d.ReadPixels()
	if err != nil {
		t.Fatalf("read pixels: %v", err)
	}
	if got := img.RGBAAt(1, 1); got.R != 0xff || got.G != 0 || got.B != 0 || got.A != 0xff {
		t.Errorf("pixel inside rect = %v, want opaque red", got)
	}
	if got := img.RGBAAt(6, 6); got.B != 0xff || got.R != 0 {
		t.Errorf("pixel outside rect = %v, want clear blue", got)
	}
}

// TestDeviceIntegrationMultiFrame redraws across frames without rebinding,
// the way the bridge redraws after an invalidation.
func TestDeviceIntegrationMultiFrame(t *testing.T) {
	d, err := Open(render.DefaultMaxQuads)
	if err != nil {
		t.Skipf("GPU not available: %v (expected in CI/test environments)", err)
	}
	defer d.Close()

	r, err := render.New(d, nil)
	if err != nil {
		t.Fatalf("create renderer: %v", err)
	}

	const green = render.Color(0xff00ff00)
	for frame := 0; frame < 2; frame++ {
		r.RenderFrame(8, 8, func(w, h int32) {
			r.DrawRect(0, 0, 8, 8, green)
		})
	}

	img, err := d.ReadPixels()
	if err != nil {
		t.Fatalf("read pixels: %v", err)
	}
	if got := img.RGBAAt(4, 4); got.G != 0xff || got.A != 0xff {
		t.Errorf("second frame pixel = %v, want opaque green", got)
	}
}
