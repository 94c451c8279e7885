// Package wasm loads the game module from its WebAssembly binary and
// adapts it to the disguiser.Module interface.
//
// The binary imports its host callbacks from the "env" module under the
// names the original web build used (js_draw_tile, js_draw_rect,
// js_invalidate_screen) and exports rs_start, rs_on_key_down and
// rs_on_draw. Load instantiates the binary under wazero, a pure-Go
// runtime, so no system WebAssembly engine is needed.
package wasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/mcneja/disguiser"
	"github.com/mcneja/disguiser/render"
)

// Module export names in the game binary.
const (
	exportStart     = "rs_start"
	exportOnKeyDown = "rs_on_key_down"
	exportOnDraw    = "rs_on_draw"
)

// ErrMissingExport is returned when the binary lacks one of the required
// entry points.
var ErrMissingExport = errors.New("wasm: binary is missing a required export")

// Program is a loaded game module. It implements disguiser.Module; entry
// point calls run synchronously on the caller's goroutine, and any host
// callbacks the module issues complete before the call returns.
//
// Program is not safe for concurrent use, matching the single-threaded
// contract of the render path.
type Program struct {
	ctx     context.Context
	runtime wazero.Runtime
	module  api.Module

	start     api.Function
	onKeyDown api.Function
	onDraw    api.Function
}

// Load instantiates the wasm binary with host as its environment. The
// returned Program must be closed when done.
func Load(ctx context.Context, binary []byte, host disguiser.Host) (*Program, error) {
	if host == nil {
		return nil, fmt.Errorf("wasm: nil host")
	}
	rt := wazero.NewRuntime(ctx)

	_, err := rt.NewHostModuleBuilder("env").
		NewFunctionBuilder().
		WithFunc(func(destX, destY, sizeX, sizeY, color int32) {
			host.DrawRect(destX, destY, sizeX, sizeY, disguiser.Color(uint32(color)))
		}).
		Export("js_draw_rect").
		NewFunctionBuilder().
		WithFunc(func(destX, destY, sizeX, sizeY, color, textureIndex, srcX, srcY int32) {
			host.DrawTile(destX, destY, sizeX, sizeY,
				disguiser.Color(uint32(color)), textureIndex, srcX, srcY)
		}).
		Export("js_draw_tile").
		NewFunctionBuilder().
		WithFunc(func() { host.InvalidateScreen() }).
		Export("js_invalidate_screen").
		Instantiate(ctx)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("wasm: instantiate host module: %w", err)
	}

	mod, err := rt.Instantiate(ctx, binary)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("wasm: instantiate game module: %w", err)
	}

	p := &Program{ctx: ctx, runtime: rt, module: mod}
	for _, e := range []struct {
		name string
		fn   *api.Function
	}{
		{exportStart, &p.start},
		{exportOnKeyDown, &p.onKeyDown},
		{exportOnDraw, &p.onDraw},
	} {
		f := mod.ExportedFunction(e.name)
		if f == nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, e.name)
		}
		*e.fn = f
	}

	render.Logger().Info("game module loaded", "size", len(binary))
	return p, nil
}

// Start seeds the game.
func (p *Program) Start(seedHi, seedLo uint32) {
	p.call(exportStart, p.start, uint64(seedHi), uint64(seedLo))
}

// OnKeyDown delivers one key press. Modifiers cross the boundary as the
// 0/1 integers the ABI uses.
func (p *Program) OnKeyDown(key disguiser.KeyCode, ctrl, shift bool) {
	p.call(exportOnKeyDown, p.onKeyDown,
		uint64(uint32(key)), uint64(boolToI32(ctrl)), uint64(boolToI32(shift)))
}

// OnDraw asks the module to render one frame; its draw callbacks land on
// the host before this returns.
func (p *Program) OnDraw(width, height int32) {
	p.call(exportOnDraw, p.onDraw, uint64(uint32(width)), uint64(uint32(height)))
}

// call invokes fn, logging traps instead of propagating them. A module
// that panics loses the rest of its frame but does not take the host down.
func (p *Program) call(name string, fn api.Function, params ...uint64) {
	if _, err := fn.Call(p.ctx, params...); err != nil {
		render.Logger().Error("game module call failed", "export", name, "error", err)
	}
}

// Close releases the runtime and the module with it.
func (p *Program) Close() error {
	return p.runtime.Close(p.ctx)
}

var _ disguiser.Module = (*Program)(nil)

func boolToI32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
