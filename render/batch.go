package render

// Batch accumulates quad geometry until it is flushed to a Device in a
// single indexed draw call. Capacity is fixed at construction; vertex data
// beyond the live count is garbage and is never read or uploaded.
type Batch struct {
	positions []Vertex
	colors    []Color
	count     int
	maxQuads  int
}

// NewBatch creates a batch holding at most maxQuads quads. Capacities
// outside [1, MaxIndexedQuads] are clamped.
func NewBatch(maxQuads int) *Batch {
	if maxQuads < 1 {
		maxQuads = 1
	}
	if maxQuads > MaxIndexedQuads {
		maxQuads = MaxIndexedQuads
	}
	return &Batch{
		positions: make([]Vertex, 0, maxQuads*VerticesPerQuad),
		colors:    make([]Color, 0, maxQuads*VerticesPerQuad),
		maxQuads:  maxQuads,
	}
}

// Len returns the number of quads currently buffered.
func (b *Batch) Len() int { return b.count }

// Cap returns the batch capacity in quads.
func (b *Batch) Cap() int { return b.maxQuads }

// Full reports whether the next Append would exceed capacity.
func (b *Batch) Full() bool { return b.count == b.maxQuads }

// Append adds one quad, repeating color across its four vertices. The
// caller must flush a full batch first; a quad appended past capacity is
// dropped rather than corrupting buffered geometry.
func (b *Batch) Append(quad [VerticesPerQuad]Vertex, color Color) {
	if b.count == b.maxQuads {
		Logger().Warn("batch append past capacity, quad dropped", "cap", b.maxQuads)
		return
	}
	b.positions = append(b.positions, quad[0], quad[1], quad[2], quad[3])
	b.colors = append(b.colors, color, color, color, color)
	b.count++
}

// Flush uploads the buffered quads to dev as one indexed draw call and
// resets the batch. Flushing an empty batch is a no-op: this is the only
// place draw calls are issued.
func (b *Batch) Flush(dev Device) {
	if b.count == 0 {
		return
	}
	n := b.count * VerticesPerQuad
	dev.DrawQuads(b.positions[:n], b.colors[:n], b.count)
	b.positions = b.positions[:0]
	b.colors = b.colors[:0]
	b.count = 0
}
