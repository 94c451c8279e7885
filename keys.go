package disguiser

// KeyCode identifies a key in the JavaScript keyCode space the game module
// was compiled against. The host translates its native key events into
// these values before calling Module.OnKeyDown; keys with no entry here are
// dropped at the bridge, never forwarded.
type KeyCode int32

const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyPageUp    KeyCode = 33
	KeyPageDown  KeyCode = 34
	KeyEnd       KeyCode = 35
	KeyHome      KeyCode = 36
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	KeyInsert    KeyCode = 45
	KeyDelete    KeyCode = 46

	Key0 KeyCode = 48
	Key1 KeyCode = 49
	Key2 KeyCode = 50
	Key3 KeyCode = 51
	Key4 KeyCode = 52
	Key5 KeyCode = 53
	Key6 KeyCode = 54
	Key7 KeyCode = 55
	Key8 KeyCode = 56
	Key9 KeyCode = 57

	KeyA KeyCode = 65
	KeyB KeyCode = 66
	KeyC KeyCode = 67
	KeyD KeyCode = 68
	KeyE KeyCode = 69
	KeyF KeyCode = 70
	KeyG KeyCode = 71
	KeyH KeyCode = 72
	KeyI KeyCode = 73
	KeyJ KeyCode = 74
	KeyK KeyCode = 75
	KeyL KeyCode = 76
	KeyM KeyCode = 77
	KeyN KeyCode = 78
	KeyO KeyCode = 79
	KeyP KeyCode = 80
	KeyQ KeyCode = 81
	KeyR KeyCode = 82
	KeyS KeyCode = 83
	KeyT KeyCode = 84
	KeyU KeyCode = 85
	KeyV KeyCode = 86
	KeyW KeyCode = 87
	KeyX KeyCode = 88
	KeyY KeyCode = 89
	KeyZ KeyCode = 90

	KeyNumpad0 KeyCode = 96
	KeyNumpad1 KeyCode = 97
	KeyNumpad2 KeyCode = 98
	KeyNumpad3 KeyCode = 99
	KeyNumpad4 KeyCode = 100
	KeyNumpad5 KeyCode = 101
	KeyNumpad6 KeyCode = 102
	KeyNumpad7 KeyCode = 103
	KeyNumpad8 KeyCode = 104
	KeyNumpad9 KeyCode = 105

	KeyNumpadMultiply KeyCode = 106
	KeyNumpadAdd      KeyCode = 107
	KeyNumpadEnter    KeyCode = 108
	KeyNumpadSubtract KeyCode = 109
	KeyNumpadDecimal  KeyCode = 110
	KeyNumpadDivide   KeyCode = 111

	KeySemicolon    KeyCode = 186
	KeyEqual        KeyCode = 187
	KeyComma        KeyCode = 188
	KeyMinus        KeyCode = 189
	KeyPeriod       KeyCode = 190
	KeySlash        KeyCode = 191
	KeyBackquote    KeyCode = 192
	KeyBracketLeft  KeyCode = 219
	KeyBackslash    KeyCode = 220
	KeyBracketRight KeyCode = 221
	KeyQuote        KeyCode = 222
)

// namedKeys maps DOM KeyboardEvent key names to codes for hosts that
// receive browser-style key events. Single characters are handled by
// KeyCodeFor directly.
var namedKeys = map[string]KeyCode{
	"Backspace":  KeyBackspace,
	"Tab":        KeyTab,
	"Enter":      KeyEnter,
	"Escape":     KeyEscape,
	"PageUp":     KeyPageUp,
	"PageDown":   KeyPageDown,
	"End":        KeyEnd,
	"Home":       KeyHome,
	"ArrowLeft":  KeyLeft,
	"ArrowUp":    KeyUp,
	"ArrowRight": KeyRight,
	"ArrowDown":  KeyDown,
	"Insert":     KeyInsert,
	"Delete":     KeyDelete,
}

// charKeys maps the single-character key values that do not coincide with
// their uppercase ASCII code.
var charKeys = map[byte]KeyCode{
	' ':  KeySpace,
	';':  KeySemicolon,
	'=':  KeyEqual,
	',':  KeyComma,
	'-':  KeyMinus,
	'.':  KeyPeriod,
	'/':  KeySlash,
	'`':  KeyBackquote,
	'[':  KeyBracketLeft,
	'\\': KeyBackslash,
	']':  KeyBracketRight,
	'\'': KeyQuote,
}

// KeyCodeFor translates a DOM KeyboardEvent key name ("ArrowLeft", "a",
// "Escape") to the module's code, reporting false for keys the module has
// no code for.
func KeyCodeFor(name string) (KeyCode, bool) {
	if code, ok := namedKeys[name]; ok {
		return code, true
	}
	if len(name) != 1 {
		return 0, false
	}
	c := name[0]
	switch {
	case c >= '0' && c <= '9':
		return Key0 + KeyCode(c-'0'), true
	case c >= 'a' && c <= 'z':
		return KeyA + KeyCode(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return KeyA + KeyCode(c-'A'), true
	}
	code, ok := charKeys[c]
	return code, ok
}

// Valid reports whether k is one of the key codes the module understands.
func (k KeyCode) Valid() bool {
	switch {
	case k >= Key0 && k <= Key9,
		k >= KeyA && k <= KeyZ,
		k >= KeyPageUp && k <= KeyDown,
		k >= KeyNumpad0 && k <= KeyNumpadDivide,
		k >= KeySemicolon && k <= KeyBackquote,
		k >= KeyBracketLeft && k <= KeyQuote:
		return true
	case k == KeyBackspace, k == KeyTab, k == KeyEnter, k == KeyEscape,
		k == KeySpace, k == KeyInsert, k == KeyDelete:
		return true
	}
	return false
}
