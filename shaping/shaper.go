package shaping

import "unicode/utf8"

// LigatureRule describes a mandatory ligature of two letters. Trigger followed by
// Partner (possibly with transparent marks in between) is replaced by a single
// ligature rune. Ligatures never connect to the following letter, therefore
// there are isolated and final forms only.
type LigatureRule struct {
	Trigger, Partner rune // LAM and an ALEF variant, in logical order
	Isolated, Final  rune // ligature forms
}

// Form returns the ligature for a trigger which is connected to the preceding
// letter (final form) or not connected (isolated form).
func (rule LigatureRule) Form(connected bool) rune {
	if connected {
		return rule.Final
	}
	return rule.Isolated
}

const lam = 0x0644

// LookupLigature returns the ligature rule for first followed by second, if any.
func LookupLigature(first, second rune) (LigatureRule, bool) {
	if first != lam {
		return LigatureRule{}, false
	}
	for _, rule := range lamAlefLigatures {
		if rule.Partner == second {
			return rule, true
		}
	}
	return LigatureRule{}, false
}

// Ligatures returns a copy of the ligature rules applied by Shape.
func Ligatures() []LigatureRule {
	rules := make([]LigatureRule, len(lamAlefLigatures))
	copy(rules, lamAlefLigatures[:])
	return rules
}

// ---------------------------------------------------------------------------

// Shape replaces the Arabic letters of s by their contextual presentation forms.
//
// s is expected in logical order. Runes which are not part of the classification
// table are copied unchanged, including presentation forms, so shaping shaped
// text does nothing. HAMZA and other non-joining letters break the join: BEH
// before HAMZA is isolated, not initial. Invalid UTF-8 is replaced by U+FFFD.
// If s is valid UTF-8 without any shapeable rune, s is returned as is.
//
// Shape is safe for concurrent use.
func Shape(s string) string {
	if !needsShaping(s) {
		return s
	}
	return string(ShapeRunes([]rune(s)))
}

func needsShaping(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError { // maybe invalid UTF-8
			return true
		}
		if _, ok := lookup(r); ok {
			return true
		}
	}
	return false
}

// ShapeRunes is the rune-slice variant of Shape. It returns a new slice,
// in is not modified. The result is never longer than in.
func ShapeRunes(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		r := in[i]
		l, ok := lookup(r)
		if !ok {
			out = append(out, r)
			continue
		}
		prev, next := previousLetter(in, i), nextLetter(in, i)
		hasPrev := false
		if prev >= 0 {
			p, ok := lookup(in[prev])
			hasPrev = ok && p.joining.joinsForward()
		}
		if next < len(in) {
			if rule, ok := LookupLigature(r, in[next]); ok {
				lig := rule.Form(hasPrev)
				tracer().Debugf("shaping: ligature %#U at %d", lig, i)
				out = append(out, lig)
				out = append(out, in[i+1:next]...) // marks between LAM and ALEF
				i = next
				continue
			}
		}
		hasNext := false
		if next < len(in) {
			n, ok := lookup(in[next])
			hasNext = ok && n.joining.joinsBackward()
		}
		out = append(out, l.forms[selectPosition(l.forms, hasPrev, hasNext)])
	}
	return out
}

// previousLetter returns the index of the first non-transparent rune before i,
// or -1.
func previousLetter(in []rune, i int) int {
	j := i - 1
	for j >= 0 && IsTransparent(in[j]) {
		j--
	}
	return j
}

// nextLetter returns the index of the first non-transparent rune after i,
// or len(in).
func nextLetter(in []rune, i int) int {
	j := i + 1
	for j < len(in) && IsTransparent(in[j]) {
		j++
	}
	return j
}

func selectPosition(f Forms, hasPrev, hasNext bool) Position {
	switch {
	case hasPrev && hasNext && f[Medial] != f[Final]:
		return Medial
	case hasPrev:
		return Final
	case hasNext && f[Initial] != f[Isolated]:
		return Initial
	}
	return Isolated
}
