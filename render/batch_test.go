package render

import "testing"

func testQuad(x float32) [VerticesPerQuad]Vertex {
	return [VerticesPerQuad]Vertex{
		{X: x, Y: 0}, {X: x + 1, Y: 0}, {X: x, Y: 1}, {X: x + 1, Y: 1},
	}
}

func TestBatchAppendAndFlush(t *testing.T) {
	b := NewBatch(4)
	dev := &recordingDevice{}

	b.Append(testQuad(0), White)
	b.Append(testQuad(10), Black)
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	b.Flush(dev)
	if len(dev.draws) != 1 {
		t.Fatalf("flushes = %d, want 1", len(dev.draws))
	}
	call := dev.draws[0]
	if call.quads != 2 {
		t.Errorf("quads = %d, want 2", call.quads)
	}
	if len(call.positions) != 2*VerticesPerQuad || len(call.colors) != 2*VerticesPerQuad {
		t.Errorf("uploaded %d positions / %d colors, want %d each",
			len(call.positions), len(call.colors), 2*VerticesPerQuad)
	}
	// Color repeats per vertex of its quad.
	for i := 0; i < VerticesPerQuad; i++ {
		if call.colors[i] != White {
			t.Errorf("quad 0 vertex %d color = %08x, want white", i, uint32(call.colors[i]))
		}
		if call.colors[VerticesPerQuad+i] != Black {
			t.Errorf("quad 1 vertex %d color = %08x, want black", i, uint32(call.colors[VerticesPerQuad+i]))
		}
	}
	if b.Len() != 0 {
		t.Errorf("Len() after flush = %d, want 0", b.Len())
	}
}

func TestBatchFlushEmptyIsNoop(t *testing.T) {
	b := NewBatch(4)
	dev := &recordingDevice{}
	b.Flush(dev)
	if len(dev.draws) != 0 {
		t.Errorf("empty flush issued %d draws, want 0", len(dev.draws))
	}
}

func TestBatchFull(t *testing.T) {
	b := NewBatch(2)
	if b.Full() {
		t.Error("new batch reports full")
	}
	b.Append(testQuad(0), White)
	b.Append(testQuad(1), White)
	if !b.Full() {
		t.Error("batch at capacity does not report full")
	}
}

func TestBatchAppendPastCapacityDrops(t *testing.T) {
	b := NewBatch(1)
	dev := &recordingDevice{}

	b.Append(testQuad(0), White)
	b.Append(testQuad(99), White) // dropped

	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	b.Flush(dev)
	if dev.draws[0].positions[0].X != 0 {
		t.Error("dropped quad corrupted buffered geometry")
	}
}

func TestBatchCapacityClamped(t *testing.T) {
	if got := NewBatch(0).Cap(); got != 1 {
		t.Errorf("Cap() for 0 = %d, want 1", got)
	}
	if got := NewBatch(1 << 20).Cap(); got != MaxIndexedQuads {
		t.Errorf("Cap() for 1<<20 = %d, want %d", got, MaxIndexedQuads)
	}
}
