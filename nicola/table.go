package nicola

import (
	"fmt"
	"sort"

	"github.com/Alia5/nicolagen/karabiner"
)

// Keystroke is the ordered key sequence Karabiner types for one unit.
type Keystroke []karabiner.ToEvent

// UnknownUnitError is returned when a unit has no entry in the keystroke
// table.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("no keystroke defined for %q", e.Unit)
}

func key(code string) karabiner.ToEvent {
	return karabiner.ToEvent{KeyCode: code, Repeat: false}
}

func keyWithShift(code string) karabiner.ToEvent {
	return karabiner.ToEvent{
		KeyCode:   code,
		Modifiers: []string{karabiner.ModifierLeftShift},
		Repeat:    false,
	}
}

// romanTable holds the romaji input for every unit the layout can emit.
// Read-only after init.
var romanTable = map[string]Keystroke{
	"あ": {key("a")},
	"い": {key("i")},
	"う": {key("u")},
	"え": {key("e")},
	"お": {key("o")},

	"か": {key("k"), key("a")},
	"き": {key("k"), key("i")},
	"く": {key("k"), key("u")},
	"け": {key("k"), key("e")},
	"こ": {key("k"), key("o")},

	"さ": {key("s"), key("a")},
	"し": {key("s"), key("i")},
	"す": {key("s"), key("u")},
	"せ": {key("s"), key("e")},
	"そ": {key("s"), key("o")},

	"た": {key("t"), key("a")},
	"ち": {key("t"), key("i")},
	"つ": {key("t"), key("u")},
	"て": {key("t"), key("e")},
	"と": {key("t"), key("o")},

	"な": {key("n"), key("a")},
	"に": {key("n"), key("i")},
	"ぬ": {key("n"), key("u")},
	"ね": {key("n"), key("e")},
	"の": {key("n"), key("o")},

	"は": {key("h"), key("a")},
	"ひ": {key("h"), key("i")},
	"ふ": {key("h"), key("u")},
	"へ": {key("h"), key("e")},
	"ほ": {key("h"), key("o")},

	"ま": {key("m"), key("a")},
	"み": {key("m"), key("i")},
	"む": {key("m"), key("u")},
	"め": {key("m"), key("e")},
	"も": {key("m"), key("o")},

	"や": {key("y"), key("a")},
	"ゆ": {key("y"), key("u")},
	"よ": {key("y"), key("o")},

	"ら": {key("r"), key("a")},
	"り": {key("r"), key("i")},
	"る": {key("r"), key("u")},
	"れ": {key("r"), key("e")},
	"ろ": {key("r"), key("o")},

	"わ": {key("w"), key("a")},
	"を": {key("w"), key("o")},
	"ん": {key("n"), key("n")},

	"が": {key("g"), key("a")},
	"ぎ": {key("g"), key("i")},
	"ぐ": {key("g"), key("u")},
	"げ": {key("g"), key("e")},
	"ご": {key("g"), key("o")},

	"ざ": {key("z"), key("a")},
	"じ": {key("z"), key("i")},
	"ず": {key("z"), key("u")},
	"ぜ": {key("z"), key("e")},
	"ぞ": {key("z"), key("o")},

	"だ": {key("d"), key("a")},
	"ぢ": {key("d"), key("i")},
	"づ": {key("d"), key("u")},
	"で": {key("d"), key("e")},
	"ど": {key("d"), key("o")},

	"ば": {key("b"), key("a")},
	"び": {key("b"), key("i")},
	"ぶ": {key("b"), key("u")},
	"べ": {key("b"), key("e")},
	"ぼ": {key("b"), key("o")},

	"ぱ": {key("p"), key("a")},
	"ぴ": {key("p"), key("i")},
	"ぷ": {key("p"), key("u")},
	"ぺ": {key("p"), key("e")},
	"ぽ": {key("p"), key("o")},

	"ゔ": {key("v"), key("u")},

	"っ": {key("x"), key("t"), key("u")},
	"ゃ": {key("x"), key("y"), key("a")},
	"ゅ": {key("x"), key("y"), key("u")},
	"ょ": {key("x"), key("y"), key("o")},

	"ぁ": {key("x"), key("a")},
	"ぃ": {key("x"), key("i")},
	"ぅ": {key("x"), key("u")},
	"ぇ": {key("x"), key("e")},
	"ぉ": {key("x"), key("o")},

	"1": {key("1")},
	"2": {key("2")},
	"3": {key("3")},
	"4": {key("4")},
	"5": {key("5")},
	"6": {key("6")},
	"7": {key("7")},
	"8": {key("8")},
	"9": {key("9")},
	"0": {key("0")},

	"、": {key("comma")},
	"。": {key("period")},

	"ー": {key("hyphen")},

	"？": {keyWithShift("slash")},
	"／": {key("slash")},
	"〜": {keyWithShift("equal_sign")},
	"「": {key("close_bracket")},
	"」": {key("backslash")},

	"（": {keyWithShift("8")},
	"）": {keyWithShift("9")},

	"『": {keyWithShift("close_bracket")},
	"』": {keyWithShift("backslash")},
}

// Lookup returns a copy of the keystroke for unit.
func Lookup(unit string) (Keystroke, error) {
	ks, ok := romanTable[unit]
	if !ok {
		return nil, &UnknownUnitError{Unit: unit}
	}
	out := make(Keystroke, len(ks))
	for i, ev := range ks {
		if ev.Modifiers != nil {
			ev.Modifiers = append([]string(nil), ev.Modifiers...)
		}
		out[i] = ev
	}
	return out, nil
}

// Units returns every unit in the table, sorted.
func Units() []string {
	out := make([]string, 0, len(romanTable))
	for u := range romanTable {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}
