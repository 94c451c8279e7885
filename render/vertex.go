package render

// Vertex is one corner of a batched quad: a screen position in device
// pixels and a normalized texture coordinate.
type Vertex struct {
	X, Y float32
	S, T float32
}

// VerticesPerQuad is the number of vertices appended per quad, in the fixed
// winding order top-left, top-right, bottom-left, bottom-right.
const VerticesPerQuad = 4

// IndicesPerQuad is the number of triangle-list indices per quad: two
// triangles sharing the diagonal through vertices 1 and 2.
const IndicesPerQuad = 6

// MaxIndexedQuads is the largest quad count addressable with 16-bit indices.
const MaxIndexedQuads = (1 << 16) / VerticesPerQuad

// QuadIndices derives the static index buffer for maxQuads quads. For quad
// i the triangles are (4i, 4i+1, 4i+2) and (4i+2, 4i+1, 4i+3). The result
// never changes for a given capacity, so devices build it once and reuse it
// for every flush.
func QuadIndices(maxQuads int) []uint16 {
	if maxQuads < 0 {
		maxQuads = 0
	}
	if maxQuads > MaxIndexedQuads {
		maxQuads = MaxIndexedQuads
	}
	indices := make([]uint16, 0, maxQuads*IndicesPerQuad)
	for i := 0; i < maxQuads; i++ {
		base := uint16(i * VerticesPerQuad)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}
	return indices
}
