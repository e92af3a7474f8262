// Package karabiner holds the Karabiner-Elements complex modification wire
// format. Field names and field order match the host schema exactly; the
// generated document is consumed by Karabiner as-is.
package karabiner

import (
	"bytes"
	"encoding/json"
)

// ManipulatorBasic is the only manipulator type the generator emits.
const ManipulatorBasic = "basic"

// Condition types.
const (
	ConditionInputSourceIf              = "input_source_if"
	ConditionFrontmostApplicationUnless = "frontmost_application_unless"
)

// ModifierLeftShift is the held modifier used by shifted keystrokes.
const ModifierLeftShift = "left_shift"

// Document is a complete complex modifications file.
type Document struct {
	Title string `json:"title"`
	Rules []Rule `json:"rules"`
}

// Rule is a named group of manipulators.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`
}

// Manipulator is one remapping rule. Karabiner applies the first matching
// manipulator, so their order within a Rule is significant.
type Manipulator struct {
	Type       string      `json:"type"`
	From       From        `json:"from"`
	To         []ToEvent   `json:"to"`
	Conditions []Condition `json:"conditions"`
}

// From is the trigger. Exactly one of KeyCode and Simultaneous is set.
type From struct {
	KeyCode      string   `json:"key_code,omitempty"`
	Simultaneous []KeyRef `json:"simultaneous,omitempty"`
}

// IsSimultaneous reports whether the trigger is a chord.
func (f From) IsSimultaneous() bool {
	return len(f.Simultaneous) > 0
}

// Keys returns every physical key the trigger references.
func (f From) Keys() []string {
	if !f.IsSimultaneous() {
		return []string{f.KeyCode}
	}
	out := make([]string, 0, len(f.Simultaneous))
	for _, k := range f.Simultaneous {
		out = append(out, k.KeyCode)
	}
	return out
}

// KeyRef names a single key inside a simultaneous trigger.
type KeyRef struct {
	KeyCode string `json:"key_code"`
}

// ToEvent is one synthesized key press.
type ToEvent struct {
	KeyCode   string   `json:"key_code"`
	Modifiers []string `json:"modifiers,omitempty"`
	Repeat    bool     `json:"repeat"`
}

// Condition is an activation predicate attached to a manipulator.
type Condition struct {
	Type              string        `json:"type"`
	InputSources      []InputSource `json:"input_sources,omitempty"`
	BundleIdentifiers []string      `json:"bundle_identifiers,omitempty"`
}

// InputSource selects an input method by its mode identifier.
type InputSource struct {
	InputModeID string `json:"input_mode_id"`
}

// Marshal renders the document as two-space indented JSON terminated by a
// newline. Output is stable for equal documents.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
