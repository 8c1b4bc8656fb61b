package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource adapts ebiten keyboard and mouse state to the [Source]
// interface. The zero value is ready to use:
//
//	d := rowan.NewDispatcher(bindings, rowan.EbitenSource{})
//
// Keys outside the fixed namespace always read as released.
type EbitenSource struct{}

// Down reports whether the key or mouse button is currently pressed.
func (EbitenSource) Down(k Key) bool {
	if btn, ok := mouseButtons[k]; ok {
		return ebiten.IsMouseButtonPressed(btn)
	}
	if ek, ok := keyboardKeys[k]; ok {
		return ebiten.IsKeyPressed(ek)
	}
	return false
}

// JustPressed reports whether the key or mouse button went down during
// the current frame.
func (EbitenSource) JustPressed(k Key) bool {
	if btn, ok := mouseButtons[k]; ok {
		return inpututil.IsMouseButtonJustPressed(btn)
	}
	if ek, ok := keyboardKeys[k]; ok {
		return inpututil.IsKeyJustPressed(ek)
	}
	return false
}

var mouseButtons = map[Key]ebiten.MouseButton{
	MouseLeft:   ebiten.MouseButtonLeft,
	MouseRight:  ebiten.MouseButtonRight,
	MouseMiddle: ebiten.MouseButtonMiddle,
}

var keyboardKeys = map[Key]ebiten.Key{
	KeyA: ebiten.KeyA,
	KeyB: ebiten.KeyB,
	KeyC: ebiten.KeyC,
	KeyD: ebiten.KeyD,
	KeyE: ebiten.KeyE,
	KeyF: ebiten.KeyF,
	KeyG: ebiten.KeyG,
	KeyH: ebiten.KeyH,
	KeyI: ebiten.KeyI,
	KeyJ: ebiten.KeyJ,
	KeyK: ebiten.KeyK,
	KeyL: ebiten.KeyL,
	KeyM: ebiten.KeyM,
	KeyN: ebiten.KeyN,
	KeyO: ebiten.KeyO,
	KeyP: ebiten.KeyP,
	KeyQ: ebiten.KeyQ,
	KeyR: ebiten.KeyR,
	KeyS: ebiten.KeyS,
	KeyT: ebiten.KeyT,
	KeyU: ebiten.KeyU,
	KeyV: ebiten.KeyV,
	KeyW: ebiten.KeyW,
	KeyX: ebiten.KeyX,
	KeyY: ebiten.KeyY,
	KeyZ: ebiten.KeyZ,

	Key0: ebiten.KeyDigit0,
	Key1: ebiten.KeyDigit1,
	Key2: ebiten.KeyDigit2,
	Key3: ebiten.KeyDigit3,
	Key4: ebiten.KeyDigit4,
	Key5: ebiten.KeyDigit5,
	Key6: ebiten.KeyDigit6,
	Key7: ebiten.KeyDigit7,
	Key8: ebiten.KeyDigit8,
	Key9: ebiten.KeyDigit9,

	KeyUp:        ebiten.KeyArrowUp,
	KeyDown:      ebiten.KeyArrowDown,
	KeyLeft:      ebiten.KeyArrowLeft,
	KeyRight:     ebiten.KeyArrowRight,
	KeySpace:     ebiten.KeySpace,
	KeyEnter:     ebiten.KeyEnter,
	KeyEscape:    ebiten.KeyEscape,
	KeyTab:       ebiten.KeyTab,
	KeyBackspace: ebiten.KeyBackspace,
	KeyDelete:    ebiten.KeyDelete,
	KeyShift:     ebiten.KeyShift,
	KeyControl:   ebiten.KeyControl,
	KeyAlt:       ebiten.KeyAlt,
}
