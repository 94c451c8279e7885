package render

// Bank is an ordered list of device textures, one of which is current.
// Indices 0..Len()-2 are the loaded atlases; the last index is the reserved
// 1x1 solid fallback used for untextured fills.
//
// Selecting a texture is modeled as an explicit transition: Select reports
// whether the current texture changed so the caller can flush buffered
// geometry before rebinding. The bank itself never touches the device,
// which keeps the flush-on-switch rule a named, testable step in the
// emitter rather than a side effect buried here.
type Bank struct {
	textures []Texture
	current  int
}

// NewBank creates a bank over textures in order. The bank starts with
// index 0 current; callers bind that texture to the device themselves.
func NewBank(textures []Texture) *Bank {
	return &Bank{textures: textures}
}

// Len returns the number of textures in the bank.
func (k *Bank) Len() int { return len(k.textures) }

// Current returns the index of the current texture.
func (k *Bank) Current() int { return k.current }

// Texture returns the handle at index without changing the selection.
// The index must be in range.
func (k *Bank) Texture(index int) Texture { return k.textures[index] }

// Select clamps index into [0, Len()-1] and makes it current. It returns
// the selected handle and whether the selection changed; a change means the
// caller must flush and rebind before emitting more geometry, so that a
// batch never mixes textures. Out-of-range indices silently degrade to the
// nearest valid texture: tolerance for malformed input from the module
// boundary.
func (k *Bank) Select(index int) (Texture, bool) {
	clamped := index
	if clamped < 0 {
		clamped = 0
	}
	if clamped >= len(k.textures) {
		clamped = len(k.textures) - 1
	}
	if clamped != index {
		Logger().Warn("texture index clamped", "requested", index, "clamped", clamped)
	}
	switched := clamped != k.current
	k.current = clamped
	return k.textures[clamped], switched
}
