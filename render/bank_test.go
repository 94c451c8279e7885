package render

import "testing"

func testBank(n int) *Bank {
	textures := make([]Texture, n)
	for i := range textures {
		textures[i] = &fakeTexture{id: i + 1, w: 256, h: 256}
	}
	return NewBank(textures)
}

func TestBankSelect(t *testing.T) {
	k := testBank(3)

	if k.Current() != 0 {
		t.Fatalf("Current() = %d, want 0", k.Current())
	}

	tex, switched := k.Select(1)
	if !switched {
		t.Error("Select(1) from 0 should report a switch")
	}
	if tex != k.Texture(1) {
		t.Error("Select(1) returned the wrong handle")
	}

	_, switched = k.Select(1)
	if switched {
		t.Error("reselecting the current texture should not report a switch")
	}
}

func TestBankSelectClamps(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{-5, 0},
		{-1, 0},
		{0, 0},
		{2, 2},
		{3, 2},
		{1000, 2},
	}
	for _, tt := range tests {
		k := testBank(3)
		tex, _ := k.Select(tt.index)
		if k.Current() != tt.want {
			t.Errorf("Select(%d): Current() = %d, want %d", tt.index, k.Current(), tt.want)
		}
		if tex != k.Texture(tt.want) {
			t.Errorf("Select(%d) returned texture %v, want index %d", tt.index, tex, tt.want)
		}
	}
}

func TestBankClampedSelectStillSwitches(t *testing.T) {
	k := testBank(3)
	// 1000 clamps to 2, a real transition from 0.
	if _, switched := k.Select(1000); !switched {
		t.Error("clamped selection of a different texture should report a switch")
	}
	// -5 clamps to 0: back from 2, still a transition.
	if _, switched := k.Select(-5); !switched {
		t.Error("clamped selection back to 0 should report a switch")
	}
	// Same clamped target again is not.
	if _, switched := k.Select(-99); switched {
		t.Error("reclamping onto the current texture should not report a switch")
	}
}
