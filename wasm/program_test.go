package wasm

import (
	"context"
	"errors"
	"testing"

	"github.com/mcneja/disguiser"
)

// nopHost implements disguiser.Host for load tests.
type nopHost struct{}

func (nopHost) DrawTile(destX, destY, sizeX, sizeY int32, color disguiser.Color, textureIndex, srcX, srcY int32) {
}
func (nopHost) DrawRect(destX, destY, sizeX, sizeY int32, color disguiser.Color) {}
func (nopHost) InvalidateScreen()                                                {}

// emptyWasm is the smallest valid wasm binary: just the magic and version.
var emptyWasm = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestLoadRejectsMissingExports(t *testing.T) {
	_, err := Load(context.Background(), emptyWasm, nopHost{})
	if !errors.Is(err, ErrMissingExport) {
		t.Errorf("Load(empty module) error = %v, want ErrMissingExport", err)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load(context.Background(), []byte("not wasm"), nopHost{}); err == nil {
		t.Error("Load(garbage) should fail")
	}
}

func TestLoadRejectsNilHost(t *testing.T) {
	if _, err := Load(context.Background(), emptyWasm, nil); err == nil {
		t.Error("Load(nil host) should fail")
	}
}
