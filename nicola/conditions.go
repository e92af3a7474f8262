package nicola

import "github.com/Alia5/nicolagen/karabiner"

// Input modes in which the layout is active.
var japaneseInputModes = []string{
	"com.apple.inputmethod.Japanese",
	"com.apple.inputmethod.Japanese.Hiragana",
	"com.apple.inputmethod.Japanese.Katakana",
	"com.apple.inputmethod.Japanese.HalfWidthKana",
}

// Applications in which the layout is never active.
var excludedApplications = []string{"loginwindow"}

// ActiveConditions returns the conditions shared by every generated
// manipulator. Each call returns a fresh copy.
func ActiveConditions() []karabiner.Condition {
	unless, err := karabiner.FrontmostApplicationUnless(excludedApplications...)
	if err != nil {
		// excludedApplications is static.
		panic(err)
	}
	return []karabiner.Condition{
		karabiner.InputSourceIf(japaneseInputModes...),
		unless,
	}
}
