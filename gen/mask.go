package gen

import (
	"fmt"
	"strings"
)

// Placeholder names accepted in mask templates.
const (
	phBase  = "base"
	phCap   = "Base"
	phUpper = "BASE"
	phCamel = "camel"
	phNum   = "num"
	phSym   = "sym"
	phYear  = "year"
)

type maskPart struct {
	text string
	slot int // index into Mask.slots, -1 for literal text
}

// Mask is a parsed template. slots lists the distinct placeholders in
// first-appearance order; every occurrence of the same placeholder shares
// one slot, so one emitted candidate uses the same chosen value for all of
// them.
type Mask struct {
	raw   string
	parts []maskPart
	slots []string
}

// parseMask scans raw for {placeholder} tokens. Unknown placeholder names
// are a configuration error; an unmatched brace is treated as literal text.
func parseMask(raw string) (*Mask, error) {
	m := &Mask{raw: raw}
	slotOf := map[string]int{}

	rest := raw
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			break
		}

		name := rest[i+1 : i+j]
		switch name {
		case phBase, phCap, phUpper, phCamel, phNum, phSym, phYear:
		default:
			return nil, fmt.Errorf("%w: unknown placeholder {%s} in %q", ErrInvalidMask, name, raw)
		}

		if i > 0 {
			m.parts = append(m.parts, maskPart{text: rest[:i], slot: -1})
		}

		slot, ok := slotOf[name]
		if !ok {
			slot = len(m.slots)
			slotOf[name] = slot
			m.slots = append(m.slots, name)
		}
		m.parts = append(m.parts, maskPart{slot: slot})

		rest = rest[i+j+1:]
	}
	if rest != "" {
		m.parts = append(m.parts, maskPart{text: rest, slot: -1})
	}

	return m, nil
}

// compose yields every candidate this mask produces for one base string's
// variants: the cross product of the value sets of the placeholders that
// are actually present. A present placeholder with an empty value set makes
// the mask contribute nothing for this base string. Returns false when the
// yield asked to stop.
func (m *Mask) compose(v Variants, numbers, symbols, years []string, yield func(string) bool) bool {
	sets := make([][]string, len(m.slots))
	for i, name := range m.slots {
		switch name {
		case phBase:
			sets[i] = v.Base
		case phCap:
			sets[i] = []string{v.Capitalized}
		case phUpper:
			sets[i] = []string{v.Upper}
		case phCamel:
			sets[i] = []string{v.Camel}
		case phNum:
			sets[i] = numbers
		case phSym:
			sets[i] = symbols
		case phYear:
			sets[i] = years
		}
		if len(sets[i]) == 0 {
			return true
		}
	}

	if len(m.slots) == 0 {
		// literal-only template
		return yield(m.raw)
	}

	vals := make([]string, len(m.slots))
	choice := make([]int, len(m.slots))
	for {
		for i := range m.slots {
			vals[i] = sets[i][choice[i]]
		}
		if !yield(m.render(vals)) {
			return false
		}

		i := len(choice) - 1
		for i >= 0 && choice[i] == len(sets[i])-1 {
			choice[i] = 0
			i--
		}
		if i < 0 {
			return true
		}
		choice[i]++
	}
}

func (m *Mask) render(vals []string) string {
	var b strings.Builder
	for _, p := range m.parts {
		if p.slot < 0 {
			b.WriteString(p.text)
		} else {
			b.WriteString(vals[p.slot])
		}
	}
	return b.String()
}
