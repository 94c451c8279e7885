package disguiser

import "testing"

func TestKeyCodeValid(t *testing.T) {
	valid := []KeyCode{
		KeyBackspace, KeyTab, KeyEnter, KeyEscape, KeySpace,
		KeyPageUp, KeyPageDown, KeyEnd, KeyHome,
		KeyLeft, KeyUp, KeyRight, KeyDown,
		KeyInsert, KeyDelete,
		Key0, Key5, Key9,
		KeyA, KeyM, KeyZ,
		KeyNumpad0, KeyNumpad9,
		KeyNumpadMultiply, KeyNumpadDivide,
		KeySemicolon, KeyEqual, KeyComma, KeyMinus, KeyPeriod,
		KeySlash, KeyBackquote,
		KeyBracketLeft, KeyBackslash, KeyBracketRight, KeyQuote,
	}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("KeyCode(%d).Valid() = false, want true", int32(k))
		}
	}

	invalid := []KeyCode{
		0, -1, 7, 10, 12, 14, 26, 28, 31, // below and between control keys
		41, 44, 47, // between insert block and digits
		58, 64, 91, 95, // between digits, letters, numpad
		112, 185, // function keys and the gap before punctuation
		193, 218, 223, 1000,
	}
	for _, k := range invalid {
		if k.Valid() {
			t.Errorf("KeyCode(%d).Valid() = true, want false", int32(k))
		}
	}
}

func TestKeyCodeFor(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"ArrowLeft", KeyLeft},
		{"ArrowDown", KeyDown},
		{"Escape", KeyEscape},
		{"Enter", KeyEnter},
		{" ", KeySpace},
		{"a", KeyA},
		{"Z", KeyZ},
		{"7", Key7},
		{";", KeySemicolon},
		{"[", KeyBracketLeft},
		{"'", KeyQuote},
	}
	for _, tt := range tests {
		got, ok := KeyCodeFor(tt.name)
		if !ok || got != tt.want {
			t.Errorf("KeyCodeFor(%q) = %d,%v, want %d,true", tt.name, got, ok, tt.want)
		}
	}

	for _, name := range []string{"F1", "Control", "Shift", "Meta", "Unidentified", "", "!!"} {
		if _, ok := KeyCodeFor(name); ok {
			t.Errorf("KeyCodeFor(%q) = true, want false", name)
		}
	}
}
