package nicola

import (
	"fmt"
	"strings"

	"github.com/Alia5/nicolagen/keycode"
)

// WarningKind classifies a lint finding.
type WarningKind string

const (
	WarnDuplicateTrigger WarningKind = "duplicate-trigger"
	WarnSharedUnit       WarningKind = "shared-unit"
	WarnMissingShift     WarningKind = "missing-shift"
	WarnUnknownKeyCode   WarningKind = "unknown-key-code"
)

// Warning is a non-fatal authoring finding.
type Warning struct {
	Kind   WarningKind
	Key    string
	Unit   string
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
}

type planeRef struct {
	plane string
	key   string
}

// Lint reports duplicates and gaps in l. It never changes the layout.
func Lint(l Layout, b Builder) []Warning {
	var out []Warning

	planes := []struct {
		name     string
		bindings []Binding
	}{
		{"left shift", l.LeftShift},
		{"right shift", l.RightShift},
		{"no shift", l.NoShift},
	}

	unitRefs := map[string][]planeRef{}
	var unitOrder []string
	for _, p := range planes {
		seen := map[string]bool{}
		for _, bnd := range p.bindings {
			if seen[bnd.Key] {
				out = append(out, Warning{
					Kind:   WarnDuplicateTrigger,
					Key:    bnd.Key,
					Unit:   bnd.Unit,
					Detail: fmt.Sprintf("key %q is bound more than once in the %s plane", bnd.Key, p.name),
				})
			}
			seen[bnd.Key] = true
			if _, ok := unitRefs[bnd.Unit]; !ok {
				unitOrder = append(unitOrder, bnd.Unit)
			}
			unitRefs[bnd.Unit] = append(unitRefs[bnd.Unit], planeRef{plane: p.name, key: bnd.Key})
		}
	}

	for _, u := range unitOrder {
		refs := unitRefs[u]
		if len(refs) < 2 {
			continue
		}
		where := make([]string, 0, len(refs))
		for _, r := range refs {
			where = append(where, fmt.Sprintf("%s %s", r.plane, r.key))
		}
		out = append(out, Warning{
			Kind:   WarnSharedUnit,
			Unit:   u,
			Detail: fmt.Sprintf("%q is reachable from %s", u, strings.Join(where, ", ")),
		})
	}

	left := bindingKeys(l.LeftShift)
	right := bindingKeys(l.RightShift)
	for _, bnd := range l.NoShift {
		var missing []string
		if !left[bnd.Key] {
			missing = append(missing, "left shift")
		}
		if !right[bnd.Key] {
			missing = append(missing, "right shift")
		}
		if len(missing) == 0 {
			continue
		}
		out = append(out, Warning{
			Kind:   WarnMissingShift,
			Key:    bnd.Key,
			Detail: fmt.Sprintf("key %q has no %s binding", bnd.Key, strings.Join(missing, " or ")),
		})
	}

	keyOrder := []string{b.LeftShiftKey, b.RightShiftKey}
	for _, p := range planes {
		for _, bnd := range p.bindings {
			keyOrder = append(keyOrder, bnd.Key)
		}
	}
	reported := map[string]bool{}
	for _, k := range keyOrder {
		if reported[k] || keycode.Known(k) {
			continue
		}
		reported[k] = true
		out = append(out, Warning{
			Kind:   WarnUnknownKeyCode,
			Key:    k,
			Detail: fmt.Sprintf("%q is not a known key_code", k),
		})
	}
	for _, u := range unitOrder {
		ks, err := Lookup(u)
		if err != nil {
			continue
		}
		for _, ev := range ks {
			if reported[ev.KeyCode] || keycode.Known(ev.KeyCode) {
				continue
			}
			reported[ev.KeyCode] = true
			out = append(out, Warning{
				Kind:   WarnUnknownKeyCode,
				Key:    ev.KeyCode,
				Unit:   u,
				Detail: fmt.Sprintf("%q typed for %q is not a known key_code", ev.KeyCode, u),
			})
		}
	}

	return out
}

func bindingKeys(bs []Binding) map[string]bool {
	out := make(map[string]bool, len(bs))
	for _, b := range bs {
		out[b.Key] = true
	}
	return out
}
