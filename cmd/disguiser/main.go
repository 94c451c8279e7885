// Command disguiser runs a WebAssembly game module in a native window.
//
// With -wasm it loads the game binary; without it a built-in demo module
// runs instead. Tile atlases are PNG files in module texture-index order.
package main

import (
	"context"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mcneja/disguiser"
	backend "github.com/mcneja/disguiser/backend/ebiten"
	"github.com/mcneja/disguiser/internal/demo"
	"github.com/mcneja/disguiser/render"
	"github.com/mcneja/disguiser/wasm"
)

func main() {
	var (
		wasmPath = flag.String("wasm", "", "game module binary (empty runs the built-in demo)")
		atlases  = flag.String("atlas", "", "comma-separated atlas PNGs in texture-index order")
		width    = flag.Int("width", 800, "window width")
		height   = flag.Int("height", 600, "window height")
		title    = flag.String("title", "disguiser", "window title")
		seed     = flag.Uint64("seed", 0, "game seed (0 picks one from the clock)")
		quads    = flag.Int("quads", render.DefaultMaxQuads, "geometry batch capacity")
		verbose  = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		disguiser.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	images, err := loadAtlases(*atlases)
	if err != nil {
		log.Fatalf("load atlases: %v", err)
	}

	dev := backend.NewDevice()
	renderer, err := render.New(dev, images, render.WithMaxQuads(*quads))
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	host := disguiser.RendererHost(renderer)

	var mod disguiser.Module
	if *wasmPath != "" {
		binary, err := os.ReadFile(*wasmPath)
		if err != nil {
			log.Fatalf("read game module: %v", err)
		}
		prog, err := wasm.Load(context.Background(), binary, host)
		if err != nil {
			log.Fatalf("load game module: %v", err)
		}
		defer prog.Close()
		mod = prog
	} else {
		mod = demo.New(host)
	}

	bridge, err := disguiser.NewBridge(mod, renderer)
	if err != nil {
		log.Fatalf("create bridge: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	err = backend.Run(bridge, dev, backend.Config{
		Title:  *title,
		Width:  *width,
		Height: *height,
		Seed:   *seed,
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}

// loadAtlases decodes the comma-separated PNG list. An empty list is fine:
// the renderer still has its solid fallback, and tile draws clamp to it.
func loadAtlases(list string) ([]image.Image, error) {
	if list == "" {
		return nil, nil
	}
	var images []image.Image
	for _, path := range strings.Split(list, ",") {
		f, err := os.Open(strings.TrimSpace(path))
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
