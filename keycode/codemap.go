package keycode

// usageByName maps Karabiner key_code names to HID usage codes.
var usageByName = map[string]uint8{
	// Letters
	"a": KeyA, "b": KeyB, "c": KeyC, "d": KeyD, "e": KeyE, "f": KeyF, "g": KeyG,
	"h": KeyH, "i": KeyI, "j": KeyJ, "k": KeyK, "l": KeyL, "m": KeyM, "n": KeyN,
	"o": KeyO, "p": KeyP, "q": KeyQ, "r": KeyR, "s": KeyS, "t": KeyT, "u": KeyU,
	"v": KeyV, "w": KeyW, "x": KeyX, "y": KeyY, "z": KeyZ,

	// Numbers
	"1": Key1, "2": Key2, "3": Key3, "4": Key4, "5": Key5,
	"6": Key6, "7": Key7, "8": Key8, "9": Key9, "0": Key0,

	// Special keys
	"return_or_enter":        KeyEnter,
	"escape":                 KeyEscape,
	"delete_or_backspace":    KeyBackspace,
	"tab":                    KeyTab,
	"spacebar":               KeySpace,
	"hyphen":                 KeyMinus,
	"equal_sign":             KeyEqual,
	"open_bracket":           KeyLeftBrace,
	"close_bracket":          KeyRightBrace,
	"backslash":              KeyBackslash,
	"non_us_pound":           KeyNonUSHash,
	"semicolon":              KeySemicolon,
	"quote":                  KeyApostrophe,
	"grave_accent_and_tilde": KeyGrave,
	"comma":                  KeyComma,
	"period":                 KeyPeriod,
	"slash":                  KeySlash,
	"caps_lock":              KeyCapsLock,
	"non_us_backslash":       KeyNonUSBackslash,
	"application":            KeyApplication,

	// Arrow keys
	"right_arrow": KeyRight,
	"left_arrow":  KeyLeft,
	"down_arrow":  KeyDown,
	"up_arrow":    KeyUp,

	// Japanese
	"international1": KeyInternational1,
	"international2": KeyInternational2,
	"international3": KeyInternational3,
	"international4": KeyInternational4,
	"international5": KeyInternational5,
	"lang1":          KeyLang1,
	"lang2":          KeyLang2,
	"japanese_kana":  KeyLang1,
	"japanese_eisuu": KeyLang2,

	// Modifiers
	"left_control":  KeyLeftCtrl,
	"left_shift":    KeyLeftShift,
	"left_option":   KeyLeftAlt,
	"left_command":  KeyLeftGUI,
	"right_control": KeyRightCtrl,
	"right_shift":   KeyRightShift,
	"right_option":  KeyRightAlt,
	"right_command": KeyRightGUI,
}

// Usage returns the HID usage code for a Karabiner key_code name.
func Usage(name string) (uint8, bool) {
	u, ok := usageByName[name]
	return u, ok
}

// Known reports whether name is a key_code Karabiner accepts.
func Known(name string) bool {
	_, ok := usageByName[name]
	return ok
}

// IsModifier reports whether name is one of the eight modifier keys.
func IsModifier(name string) bool {
	u, ok := usageByName[name]
	return ok && u >= KeyLeftCtrl && u <= KeyRightGUI
}
