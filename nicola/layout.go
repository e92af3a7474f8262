package nicola

// Binding assigns a unit to a physical key within one shift plane.
type Binding struct {
	Key  string
	Unit string
}

// Layout is an authored NICOLA layout. Binding order within each plane is
// kept as written.
type Layout struct {
	Title       string
	Description string
	LeftShift   []Binding
	RightShift  []Binding
	NoShift     []Binding
}

// HHKB is NICOLA on a Happy Hacking Keyboard with printed keytops.
var HHKB = Layout{
	Title:       "NICOLA for HHKB (rev 1)",
	Description: "HHKB with keytop",

	LeftShift: []Binding{
		// number row
		{"1", "？"},
		{"2", "／"},
		{"3", "〜"},
		{"4", "「"},
		{"5", "」"},
		// TODO: bind 6 and 7 to ［ and ］ once the table has a romaji
		// keystroke for full-width square brackets.
		{"8", "（"},
		{"9", "）"},
		{"0", "『"},
		{"hyphen", "』"},

		// upper row
		{"q", "ぁ"},
		{"w", "え"},
		{"e", "り"},
		{"r", "ゃ"},
		{"t", "れ"},

		{"y", "ぱ"},
		{"u", "ぢ"},
		{"i", "ぐ"},
		{"o", "づ"},
		{"p", "ぴ"},

		// home row
		{"a", "を"},
		{"s", "あ"},
		{"d", "な"},
		{"f", "ゅ"},
		{"g", "も"},

		{"h", "ば"},
		{"j", "ど"},
		{"k", "ぎ"},
		{"l", "ぽ"},

		// bottom row
		{"z", "ぅ"},
		{"x", "ー"},
		{"c", "ろ"},
		{"v", "や"},
		{"b", "ぃ"},

		{"n", "ぷ"},
		{"m", "ぞ"},
		{"comma", "ぺ"},
		{"period", "ぼ"},
		{"slash", "ぉ"},
	},

	// The number row has no right-shift bindings; adding them breaks
	// recognition of the plain digits.
	RightShift: []Binding{
		// upper row
		{"w", "が"},
		{"e", "だ"},
		{"r", "ご"},
		{"t", "ざ"},

		{"y", "よ"},
		{"u", "に"},
		{"i", "る"},
		{"o", "ま"},
		{"p", "ぇ"},

		// home row
		{"a", "ゔ"},
		{"s", "じ"},
		{"d", "で"},
		{"f", "げ"},
		{"g", "ぜ"},

		{"h", "み"},
		{"j", "お"},
		{"k", "の"},
		{"l", "ょ"},
		{"semicolon", "っ"},

		// bottom row
		{"x", "び"},
		{"c", "ず"},
		{"v", "ぶ"},
		{"b", "べ"},

		{"n", "ぬ"},
		{"m", "ゆ"},
		{"comma", "む"},
		{"period", "わ"},
		{"slash", "ぉ"},
	},

	NoShift: []Binding{
		// number row
		{"1", "1"},
		{"2", "2"},
		{"3", "3"},
		{"4", "4"},
		{"5", "5"},

		{"6", "6"},
		{"7", "7"},
		{"8", "8"},
		{"9", "9"},
		{"0", "0"},

		// upper row
		{"q", "。"},
		{"w", "か"},
		{"e", "た"},
		{"r", "こ"},
		{"t", "さ"},

		{"y", "ら"},
		{"u", "ち"},
		{"i", "く"},
		{"o", "つ"},
		{"open_bracket", "、"},

		// home row
		{"a", "う"},
		{"s", "し"},
		{"d", "て"},
		{"f", "け"},
		{"g", "せ"},

		{"h", "は"},
		{"j", "と"},
		{"k", "き"},
		{"l", "い"},
		{"semicolon", "ん"},

		// bottom row
		{"x", "ひ"},
		{"c", "す"},
		{"v", "ふ"},
		{"b", "へ"},

		{"n", "め"},
		{"m", "そ"},
		{"comma", "ね"},
		{"period", "ほ"},
	},
}
