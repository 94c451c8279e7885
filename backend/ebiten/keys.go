package ebiten

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mcneja/disguiser"
)

// keyCodes maps Ebitengine keys to the module's key space. Keys absent
// here have no meaning to the module and are never forwarded.
var keyCodes = map[eb.Key]disguiser.KeyCode{
	eb.KeyBackspace:  disguiser.KeyBackspace,
	eb.KeyTab:        disguiser.KeyTab,
	eb.KeyEnter:      disguiser.KeyEnter,
	eb.KeyEscape:     disguiser.KeyEscape,
	eb.KeySpace:      disguiser.KeySpace,
	eb.KeyPageUp:     disguiser.KeyPageUp,
	eb.KeyPageDown:   disguiser.KeyPageDown,
	eb.KeyEnd:        disguiser.KeyEnd,
	eb.KeyHome:       disguiser.KeyHome,
	eb.KeyArrowLeft:  disguiser.KeyLeft,
	eb.KeyArrowUp:    disguiser.KeyUp,
	eb.KeyArrowRight: disguiser.KeyRight,
	eb.KeyArrowDown:  disguiser.KeyDown,
	eb.KeyInsert:     disguiser.KeyInsert,
	eb.KeyDelete:     disguiser.KeyDelete,

	eb.KeyDigit0: disguiser.Key0,
	eb.KeyDigit1: disguiser.Key1,
	eb.KeyDigit2: disguiser.Key2,
	eb.KeyDigit3: disguiser.Key3,
	eb.KeyDigit4: disguiser.Key4,
	eb.KeyDigit5: disguiser.Key5,
	eb.KeyDigit6: disguiser.Key6,
	eb.KeyDigit7: disguiser.Key7,
	eb.KeyDigit8: disguiser.Key8,
	eb.KeyDigit9: disguiser.Key9,

	eb.KeyA: disguiser.KeyA,
	eb.KeyB: disguiser.KeyB,
	eb.KeyC: disguiser.KeyC,
	eb.KeyD: disguiser.KeyD,
	eb.KeyE: disguiser.KeyE,
	eb.KeyF: disguiser.KeyF,
	eb.KeyG: disguiser.KeyG,
	eb.KeyH: disguiser.KeyH,
	eb.KeyI: disguiser.KeyI,
	eb.KeyJ: disguiser.KeyJ,
	eb.KeyK: disguiser.KeyK,
	eb.KeyL: disguiser.KeyL,
	eb.KeyM: disguiser.KeyM,
	eb.KeyN: disguiser.KeyN,
	eb.KeyO: disguiser.KeyO,
	eb.KeyP: disguiser.KeyP,
	eb.KeyQ: disguiser.KeyQ,
	eb.KeyR: disguiser.KeyR,
	eb.KeyS: disguiser.KeyS,
	eb.KeyT: disguiser.KeyT,
	eb.KeyU: disguiser.KeyU,
	eb.KeyV: disguiser.KeyV,
	eb.KeyW: disguiser.KeyW,
	eb.KeyX: disguiser.KeyX,
	eb.KeyY: disguiser.KeyY,
	eb.KeyZ: disguiser.KeyZ,

	eb.KeyNumpad0: disguiser.KeyNumpad0,
	eb.KeyNumpad1: disguiser.KeyNumpad1,
	eb.KeyNumpad2: disguiser.KeyNumpad2,
	eb.KeyNumpad3: disguiser.KeyNumpad3,
	eb.KeyNumpad4: disguiser.KeyNumpad4,
	eb.KeyNumpad5: disguiser.KeyNumpad5,
	eb.KeyNumpad6: disguiser.KeyNumpad6,
	eb.KeyNumpad7: disguiser.KeyNumpad7,
	eb.KeyNumpad8: disguiser.KeyNumpad8,
	eb.KeyNumpad9: disguiser.KeyNumpad9,

	eb.KeyNumpadMultiply: disguiser.KeyNumpadMultiply,
	eb.KeyNumpadAdd:      disguiser.KeyNumpadAdd,
	eb.KeyNumpadEnter:    disguiser.KeyNumpadEnter,
	eb.KeyNumpadSubtract: disguiser.KeyNumpadSubtract,
	eb.KeyNumpadDecimal:  disguiser.KeyNumpadDecimal,
	eb.KeyNumpadDivide:   disguiser.KeyNumpadDivide,

	eb.KeySemicolon:    disguiser.KeySemicolon,
	eb.KeyEqual:        disguiser.KeyEqual,
	eb.KeyComma:        disguiser.KeyComma,
	eb.KeyMinus:        disguiser.KeyMinus,
	eb.KeyPeriod:       disguiser.KeyPeriod,
	eb.KeySlash:        disguiser.KeySlash,
	eb.KeyBackquote:    disguiser.KeyBackquote,
	eb.KeyBracketLeft:  disguiser.KeyBracketLeft,
	eb.KeyBackslash:    disguiser.KeyBackslash,
	eb.KeyBracketRight: disguiser.KeyBracketRight,
	eb.KeyQuote:        disguiser.KeyQuote,
}

// KeyCodeFor translates an Ebitengine key, reporting false for keys the
// module has no code for.
func KeyCodeFor(key eb.Key) (disguiser.KeyCode, bool) {
	code, ok := keyCodes[key]
	return code, ok
}

// forwardKeys sends this tick's newly pressed keys to the bridge with the
// current modifier state.
func forwardKeys(bridge *disguiser.Bridge, pressed []eb.Key) []eb.Key {
	pressed = inpututil.AppendJustPressedKeys(pressed[:0])
	if len(pressed) == 0 {
		return pressed
	}
	ctrl := eb.IsKeyPressed(eb.KeyControlLeft) || eb.IsKeyPressed(eb.KeyControlRight)
	shift := eb.IsKeyPressed(eb.KeyShiftLeft) || eb.IsKeyPressed(eb.KeyShiftRight)
	for _, key := range pressed {
		if code, ok := KeyCodeFor(key); ok {
			bridge.KeyDown(code, ctrl, shift)
		}
	}
	return pressed
}
