package nicola

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/nicolagen/karabiner"
)

func TestBuilderRules(t *testing.T) {
	b := DefaultBuilder()

	tests := []struct {
		name         string
		build        func(key, unit string) (karabiner.Manipulator, error)
		key          string
		unit         string
		expectedFrom karabiner.From
		expectedTo   []karabiner.ToEvent
	}{
		{
			name:         "no shift q types a full stop",
			build:        b.NoShiftRule,
			key:          "q",
			unit:         "。",
			expectedFrom: karabiner.From{KeyCode: "q"},
			expectedTo:   []karabiner.ToEvent{{KeyCode: "period", Repeat: false}},
		},
		{
			name:         "left shift s types a",
			build:        b.LeftShiftRule,
			key:          "s",
			unit:         "あ",
			expectedFrom: karabiner.From{Simultaneous: []karabiner.KeyRef{{KeyCode: "s"}, {KeyCode: "spacebar"}}},
			expectedTo:   []karabiner.ToEvent{{KeyCode: "a", Repeat: false}},
		},
		{
			name:         "right shift semicolon types small tsu",
			build:        b.RightShiftRule,
			key:          "semicolon",
			unit:         "っ",
			expectedFrom: karabiner.From{Simultaneous: []karabiner.KeyRef{{KeyCode: "semicolon"}, {KeyCode: "lang1"}}},
			expectedTo:   []karabiner.ToEvent{{KeyCode: "x"}, {KeyCode: "t"}, {KeyCode: "u"}},
		},
		{
			name:         "left shift keeps the held shift of the output",
			build:        b.LeftShiftRule,
			key:          "1",
			unit:         "？",
			expectedFrom: karabiner.From{Simultaneous: []karabiner.KeyRef{{KeyCode: "1"}, {KeyCode: "spacebar"}}},
			expectedTo:   []karabiner.ToEvent{{KeyCode: "slash", Modifiers: []string{karabiner.ModifierLeftShift}}},
		},
		{
			name:         "unused combination is not an error",
			build:        b.NoShiftRule,
			key:          "z",
			unit:         "？",
			expectedFrom: karabiner.From{KeyCode: "z"},
			expectedTo:   []karabiner.ToEvent{{KeyCode: "slash", Modifiers: []string{karabiner.ModifierLeftShift}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build(tt.key, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, karabiner.ManipulatorBasic, m.Type)
			assert.Equal(t, tt.expectedFrom, m.From)
			assert.Equal(t, tt.expectedTo, m.To)
			assert.Equal(t, ActiveConditions(), m.Conditions)
		})
	}
}

func TestBuilderCustomShiftKeys(t *testing.T) {
	b := Builder{LeftShiftKey: "lang2", RightShiftKey: "right_command"}

	m, err := b.LeftShiftRule("s", "あ")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "lang2"}, m.From.Keys())

	m, err = b.RightShiftRule("s", "じ")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "right_command"}, m.From.Keys())
}

func TestBuilderUnknownUnit(t *testing.T) {
	b := DefaultBuilder()
	builders := map[string]func(key, unit string) (karabiner.Manipulator, error){
		"no shift":    b.NoShiftRule,
		"left shift":  b.LeftShiftRule,
		"right shift": b.RightShiftRule,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			_, err := build("z", "ヴ")
			var unknown *UnknownUnitError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, "ヴ", unknown.Unit)
		})
	}
}

func TestActiveConditions(t *testing.T) {
	conds := ActiveConditions()
	require.Len(t, conds, 2)

	assert.Equal(t, karabiner.ConditionInputSourceIf, conds[0].Type)
	assert.Equal(t, []karabiner.InputSource{
		{InputModeID: "com.apple.inputmethod.Japanese"},
		{InputModeID: "com.apple.inputmethod.Japanese.Hiragana"},
		{InputModeID: "com.apple.inputmethod.Japanese.Katakana"},
		{InputModeID: "com.apple.inputmethod.Japanese.HalfWidthKana"},
	}, conds[0].InputSources)

	assert.Equal(t, karabiner.ConditionFrontmostApplicationUnless, conds[1].Type)
	assert.Equal(t, []string{`^com\.apple\.loginwindow$`}, conds[1].BundleIdentifiers)

	conds[0].InputSources[0].InputModeID = "changed"
	assert.Equal(t, "com.apple.inputmethod.Japanese", ActiveConditions()[0].InputSources[0].InputModeID)
}
