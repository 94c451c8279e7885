package render

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(dev, atlases,
//	    render.WithMaxQuads(2048),
//	    render.WithClearColor(render.Black))
type Option func(*options)

type options struct {
	maxQuads  int
	atlasSize int
	clear     Color
}

func defaultOptions() options {
	return options{
		maxQuads:  DefaultMaxQuads,
		atlasSize: DefaultAtlasSize,
		clear:     Black,
	}
}

// DefaultMaxQuads is the default geometry batch capacity. A full screen of
// 16px tiles at 1080p is well under this, so most frames flush exactly once
// per texture.
const DefaultMaxQuads = 1024

// WithMaxQuads sets the geometry batch capacity. Values outside
// [1, MaxIndexedQuads] are clamped.
func WithMaxQuads(n int) Option {
	return func(o *options) { o.maxQuads = n }
}

// WithAtlasSize sets the fixed square atlas dimension source rectangles are
// normalized against. It must match the dimension the game module assumes.
func WithAtlasSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.atlasSize = n
		}
	}
}

// WithClearColor sets the color the frame renderer clears to.
func WithClearColor(c Color) Option {
	return func(o *options) { o.clear = c }
}
