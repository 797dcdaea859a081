package life

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ErrInvalidRule is returned when a rule string cannot be parsed.
var ErrInvalidRule = eris.New("invalid rule")

// Rule is an outer-totalistic Moore-neighbourhood rule for binary cells.
// Birth[n] reports whether a dead cell with n live neighbours comes alive;
// Survive[n] whether a live one stays alive.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// GameOfLife is Conway's B3/S23.
var GameOfLife = MustParseRule("B3/S23")

// ParseRule reads birth/survival notation such as "B3/S23" or "S23/B3".
// Letters are case-insensitive and either part may be empty ("B2/S").
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return r, eris.Wrapf(ErrInvalidRule, "%q: want B<digits>/S<digits>", s)
	}
	seen := map[byte]bool{}
	for _, part := range parts {
		if part == "" {
			return r, eris.Wrapf(ErrInvalidRule, "%q: empty section", s)
		}
		kind := part[0] | 0x20
		var dst *[9]bool
		switch kind {
		case 'b':
			dst = &r.Birth
		case 's':
			dst = &r.Survive
		default:
			return r, eris.Wrapf(ErrInvalidRule, "%q: unknown section %q", s, part[:1])
		}
		if seen[kind] {
			return r, eris.Wrapf(ErrInvalidRule, "%q: duplicate section %q", s, part[:1])
		}
		seen[kind] = true
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return r, eris.Wrapf(ErrInvalidRule, "%q: bad neighbour count %q", s, ch)
			}
			dst[ch-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is ParseRule for package-level constants.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the canonical B/S form.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

func (r Rule) next(alive bool, neighbors int) bool {
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}
