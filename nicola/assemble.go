package nicola

import (
	"fmt"

	"github.com/Alia5/nicolagen/karabiner"
)

// OrderingViolationError reports a chord listed after the plain manipulator
// for one of its keys. Karabiner would match the plain key first and the
// chord would never fire.
type OrderingViolationError struct {
	Key          string
	ShiftedIndex int
	PlainIndex   int
}

func (e *OrderingViolationError) Error() string {
	return fmt.Sprintf("simultaneous manipulator #%d using %q is listed after the plain manipulator #%d",
		e.ShiftedIndex, e.Key, e.PlainIndex)
}

type ruleFunc func(key, unit string) (karabiner.Manipulator, error)

// Assemble builds the complete document for l. Planes are emitted left
// shift, right shift, then no shift, each in authored order.
func Assemble(b Builder, l Layout) (karabiner.Document, error) {
	planes := []struct {
		name     string
		bindings []Binding
		build    ruleFunc
	}{
		{"left shift", l.LeftShift, b.LeftShiftRule},
		{"right shift", l.RightShift, b.RightShiftRule},
		{"no shift", l.NoShift, b.NoShiftRule},
	}

	var manipulators []karabiner.Manipulator
	for _, p := range planes {
		for _, bnd := range p.bindings {
			m, err := p.build(bnd.Key, bnd.Unit)
			if err != nil {
				return karabiner.Document{}, fmt.Errorf("%s binding for key %q: %w", p.name, bnd.Key, err)
			}
			manipulators = append(manipulators, m)
		}
	}

	if err := ValidateOrdering(manipulators); err != nil {
		return karabiner.Document{}, err
	}

	return karabiner.Document{
		Title: l.Title,
		Rules: []karabiner.Rule{{
			Description:  l.Description,
			Manipulators: manipulators,
		}},
	}, nil
}

// ValidateOrdering checks that every simultaneous manipulator precedes the
// plain manipulator of each key it contains.
func ValidateOrdering(ms []karabiner.Manipulator) error {
	plain := make(map[string]int)
	for i, m := range ms {
		if m.From.IsSimultaneous() {
			continue
		}
		if _, seen := plain[m.From.KeyCode]; !seen {
			plain[m.From.KeyCode] = i
		}
	}
	for i, m := range ms {
		if !m.From.IsSimultaneous() {
			continue
		}
		for _, k := range m.From.Keys() {
			if p, ok := plain[k]; ok && p < i {
				return &OrderingViolationError{Key: k, ShiftedIndex: i, PlainIndex: p}
			}
		}
	}
	return nil
}
