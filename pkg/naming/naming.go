// Package naming compares object names the way geodetic registries are
// compared in practice: spacing, punctuation and (optionally) case are
// cosmetic, identifier characters are not. "WGS 84" and "wgs84" are the
// same name, "WGS 84" and "WGS 84 (G873)" are not.
package naming

import (
	"fmt"
	"unicode"
)

// Unrestricted is a sentinel expected name that matches any actual name,
// including a missing one.
const Unrestricted = "##unrestricted"

// Opt returns a pointer to s, nil if s is empty. Candidate objects report
// a missing name as an empty string.
func Opt(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// scanner walks a string by code point, yielding only identifier
// characters. The first identifier character switches the scan into
// "identifier part" mode for the remainder of the string.
type scanner struct {
	runes []rune
	pos   int
	part  bool
}

func (s *scanner) next() (rune, bool) {
	for s.pos < len(s.runes) {
		r := s.runes[s.pos]
		s.pos++

		if isIdentifier(r, s.part) {
			s.part = true

			return r, true
		}
	}

	return 0, false
}

// rest returns the suffix starting at the last rune yielded by next.
func (s *scanner) rest() string {
	if s.pos == 0 {
		return string(s.runes)
	}

	return string(s.runes[s.pos-1:])
}

func isIdentifier(r rune, part bool) bool {
	if unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) {
		return true
	}

	if !part {
		return false
	}

	return unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Cf, r)
}

// Matches compares an expected name against an actual one, ignoring
// non-identifier code points on both sides. A nil expected means the name
// must be absent, a nil actual means the candidate has no name. The
// Unrestricted sentinel matches anything. A nil return is a match.
func Matches(expected, actual *string, ignoreCase bool) error {
	if expected != nil && *expected == Unrestricted {
		return nil
	}

	switch {
	case expected == nil && actual == nil:
		return nil
	case expected == nil:
		return fmt.Errorf("expected no value, got %q", *actual)
	case actual == nil:
		return fmt.Errorf("value is missing, expected %q", *expected)
	}

	exp := &scanner{runes: []rune(*expected)}
	act := &scanner{runes: []rune(*actual)}

	for {
		er, ok := exp.next()
		if !ok {
			break
		}

		ar, ok := act.next()
		if !ok {
			return fmt.Errorf("missing part %q: expected %q, got %q", exp.rest(), *expected, *actual)
		}

		if ignoreCase {
			er = unicode.ToLower(er)
			ar = unicode.ToLower(ar)
		}

		if er != ar {
			return fmt.Errorf("expected %q, got %q", *expected, *actual)
		}
	}

	if _, ok := act.next(); ok {
		return fmt.Errorf("unexpected trailing string %q: expected %q, got %q", act.rest(), *expected, *actual)
	}

	return nil
}
