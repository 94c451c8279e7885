package render

import "testing"

func TestQuadIndices(t *testing.T) {
	got := QuadIndices(2)
	want := []uint16{
		0, 1, 2, 2, 1, 3,
		4, 5, 6, 6, 5, 7,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQuadIndicesClamped(t *testing.T) {
	if got := QuadIndices(-1); len(got) != 0 {
		t.Errorf("QuadIndices(-1) len = %d, want 0", len(got))
	}
	got := QuadIndices(MaxIndexedQuads + 1)
	if len(got) != MaxIndexedQuads*IndicesPerQuad {
		t.Fatalf("len = %d, want %d", len(got), MaxIndexedQuads*IndicesPerQuad)
	}
	// The last index must still fit in 16 bits: worst case 4*(n-1)+3.
	if last := got[len(got)-1]; last != uint16(MaxIndexedQuads*VerticesPerQuad-1) {
		t.Errorf("last index = %d, want %d", last, MaxIndexedQuads*VerticesPerQuad-1)
	}
}
