package nicola

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func warningsOf(ws []Warning, kind WarningKind) []Warning {
	var out []Warning
	for _, w := range ws {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

func TestLintHHKB(t *testing.T) {
	ws := Lint(HHKB, DefaultBuilder())

	assert.Empty(t, warningsOf(ws, WarnDuplicateTrigger))
	assert.Empty(t, warningsOf(ws, WarnUnknownKeyCode))

	shared := warningsOf(ws, WarnSharedUnit)
	if assert.Len(t, shared, 1) {
		assert.Equal(t, "ぉ", shared[0].Unit)
		assert.Contains(t, shared[0].Detail, "left shift slash")
		assert.Contains(t, shared[0].Detail, "right shift slash")
	}

	var missing []string
	for _, w := range warningsOf(ws, WarnMissingShift) {
		missing = append(missing, w.Key)
	}
	assert.Equal(t, []string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
		"q", "open_bracket", "semicolon",
	}, missing)
}

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		builder  Builder
		expected []Warning
	}{
		{
			name: "clean",
			layout: Layout{
				LeftShift:  []Binding{{"s", "あ"}},
				RightShift: []Binding{{"s", "じ"}},
				NoShift:    []Binding{{"s", "し"}},
			},
			builder: DefaultBuilder(),
		},
		{
			name: "duplicate trigger",
			layout: Layout{
				LeftShift: []Binding{{"s", "あ"}, {"s", "い"}},
			},
			builder: DefaultBuilder(),
			expected: []Warning{{
				Kind:   WarnDuplicateTrigger,
				Key:    "s",
				Unit:   "い",
				Detail: `key "s" is bound more than once in the left shift plane`,
			}},
		},
		{
			name: "unknown shift key",
			layout: Layout{
				LeftShift: []Binding{{"s", "あ"}},
			},
			builder: Builder{LeftShiftKey: "thumb_left", RightShiftKey: "lang1"},
			expected: []Warning{{
				Kind:   WarnUnknownKeyCode,
				Key:    "thumb_left",
				Detail: `"thumb_left" is not a known key_code`,
			}},
		},
		{
			name: "plain key without chords",
			layout: Layout{
				LeftShift: []Binding{{"w", "え"}},
				NoShift:   []Binding{{"w", "か"}},
			},
			builder: DefaultBuilder(),
			expected: []Warning{{
				Kind:   WarnMissingShift,
				Key:    "w",
				Detail: `key "w" has no right shift binding`,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lint(tt.layout, tt.builder))
		})
	}
}
