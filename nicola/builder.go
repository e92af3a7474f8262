// Package nicola builds the NICOLA thumb-shift layout as Karabiner
// manipulators.
//
// Units (kana, digits, punctuation) are looked up in a fixed romaji
// keystroke table. A Builder turns a physical key and a unit into one
// manipulator for each of the three NICOLA planes: no shift, left thumb
// shift and right thumb shift. Assemble lays the planes out in the order
// Karabiner needs and rejects orderings that would shadow a chord.
package nicola

import "github.com/Alia5/nicolagen/karabiner"

// Default thumb-shift keys on an HHKB.
const (
	DefaultLeftShiftKey  = "spacebar"
	DefaultRightShiftKey = "lang1"
)

// Builder produces manipulators for the three shift planes.
type Builder struct {
	LeftShiftKey  string
	RightShiftKey string
}

// DefaultBuilder uses the space bar as left and lang1 (kana) as right thumb
// shift.
func DefaultBuilder() Builder {
	return Builder{LeftShiftKey: DefaultLeftShiftKey, RightShiftKey: DefaultRightShiftKey}
}

// NoShiftRule maps key pressed alone to unit.
func (b Builder) NoShiftRule(key, unit string) (karabiner.Manipulator, error) {
	return manipulator(karabiner.From{KeyCode: key}, unit)
}

// LeftShiftRule maps key pressed together with the left thumb shift to unit.
func (b Builder) LeftShiftRule(key, unit string) (karabiner.Manipulator, error) {
	return manipulator(simultaneous(key, b.LeftShiftKey), unit)
}

// RightShiftRule maps key pressed together with the right thumb shift to
// unit.
func (b Builder) RightShiftRule(key, unit string) (karabiner.Manipulator, error) {
	return manipulator(simultaneous(key, b.RightShiftKey), unit)
}

func simultaneous(key, shift string) karabiner.From {
	return karabiner.From{Simultaneous: []karabiner.KeyRef{{KeyCode: key}, {KeyCode: shift}}}
}

func manipulator(from karabiner.From, unit string) (karabiner.Manipulator, error) {
	to, err := Lookup(unit)
	if err != nil {
		return karabiner.Manipulator{}, err
	}
	return karabiner.Manipulator{
		Type:       karabiner.ManipulatorBasic,
		From:       from,
		To:         to,
		Conditions: ActiveConditions(),
	}, nil
}
