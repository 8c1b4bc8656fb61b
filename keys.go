package rowan

// Key is a raw input identifier: a keyboard key name or one of the three
// mouse button names. Bindings refer to keys by these identifiers and the
// Dispatcher tracks one held flag per Key. The namespace is fixed; a Key
// outside it always polls as released.
type Key string

// Keyboard keys.
const (
	KeyA Key = "a"
	KeyB Key = "b"
	KeyC Key = "c"
	KeyD Key = "d"
	KeyE Key = "e"
	KeyF Key = "f"
	KeyG Key = "g"
	KeyH Key = "h"
	KeyI Key = "i"
	KeyJ Key = "j"
	KeyK Key = "k"
	KeyL Key = "l"
	KeyM Key = "m"
	KeyN Key = "n"
	KeyO Key = "o"
	KeyP Key = "p"
	KeyQ Key = "q"
	KeyR Key = "r"
	KeyS Key = "s"
	KeyT Key = "t"
	KeyU Key = "u"
	KeyV Key = "v"
	KeyW Key = "w"
	KeyX Key = "x"
	KeyY Key = "y"
	KeyZ Key = "z"

	Key0 Key = "0"
	Key1 Key = "1"
	Key2 Key = "2"
	Key3 Key = "3"
	Key4 Key = "4"
	Key5 Key = "5"
	Key6 Key = "6"
	Key7 Key = "7"
	Key8 Key = "8"
	Key9 Key = "9"

	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyEscape    Key = "escape"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyShift     Key = "shift"
	KeyControl   Key = "control"
	KeyAlt       Key = "alt"
)

// Mouse buttons.
const (
	MouseLeft   Key = "mouse left"
	MouseRight  Key = "mouse right"
	MouseMiddle Key = "mouse middle"
)
