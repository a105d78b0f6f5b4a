package shaping

import "unicode"

// Position is one of the four positional forms of an Arabic letter.
type Position int8

// Positional forms, in the order of the slots of Forms.
const (
	Isolated Position = iota // no connection on either side
	Final                    // connects to the preceding letter only
	Initial                  // connects to the following letter only
	Medial                   // connects on both sides
)

func (p Position) String() string {
	switch p {
	case Isolated:
		return "isolated"
	case Final:
		return "final"
	case Initial:
		return "initial"
	case Medial:
		return "medial"
	}
	return "<unknown position>"
}

// Forms holds the presentation forms of a letter, indexed by Position.
//
// A letter which never connects to the following letter has
// Forms[Initial] == Forms[Isolated] and Forms[Medial] == Forms[Final].
type Forms [4]rune

// Form returns the presentation form for position p.
func (f Forms) Form(p Position) rune {
	return f[p]
}

// JoiningType derives the joining behaviour of a letter from its forms.
// Join-causing letters are not recognizable from their forms, see Joining.
func (f Forms) JoiningType() JoiningType {
	switch {
	case f[Initial] != f[Isolated] && f[Final] != f[Isolated]:
		return DualJoining
	case f[Initial] != f[Isolated]:
		return LeftJoining
	case f[Final] != f[Isolated]:
		return RightJoining
	}
	return NonJoining
}

// JoiningType is one of the joining types of ArabicShaping.txt.
type JoiningType int8

// Joining types. We do not distinguish joining groups.
const (
	NonJoining   JoiningType = iota // U
	RightJoining                    // R
	LeftJoining                     // L
	DualJoining                     // D
	JoinCausing                     // C
	Transparent                     // T
)

func (jt JoiningType) String() string {
	if jt < NonJoining || jt > Transparent {
		return "?"
	}
	return string("URLDCT"[jt])
}

// joinsForward is true if a letter of type jt connects to the letter after it
// (the left side, in display order).
func (jt JoiningType) joinsForward() bool {
	return jt == DualJoining || jt == LeftJoining || jt == JoinCausing
}

// joinsBackward is true if a letter of type jt connects to the letter before it.
func (jt JoiningType) joinsBackward() bool {
	return jt == DualJoining || jt == RightJoining || jt == JoinCausing
}

// --- Table access ----------------------------------------------------------

const coreFirst, coreLast = 0x0621, 0x064A

// letter is the compiled table entry for a shapeable rune.
type letter struct {
	forms   Forms
	joining JoiningType
}

var (
	coreLetters                 [coreLast - coreFirst + 1]letter
	extendedLetters             map[rune]letter
	extendedFirst, extendedLast rune // bounds of the keys of extendedLetters
)

// Transparent marks live in U+0610…U+08FF; transparentBits is a bitmap over
// that range, compiled from _Transparent.
const transparentFirst, transparentLast = 0x0610, 0x08FF

var transparentBits [(transparentLast-transparentFirst)/64 + 1]uint64

func init() {
	for i, f := range coreForms {
		if f[Isolated] == 0 {
			continue
		}
		coreLetters[i] = letter{forms: f, joining: f.JoiningType()}
	}
	extendedLetters = make(map[rune]letter, len(extendedForms))
	extendedFirst, extendedLast = unicode.MaxRune, 0
	for r, f := range extendedForms {
		extendedLetters[r] = letter{forms: f, joining: f.JoiningType()}
		if r < extendedFirst {
			extendedFirst = r
		}
		if r > extendedLast {
			extendedLast = r
		}
	}
	for _, r := range joinCausing {
		if r >= coreFirst && r <= coreLast {
			coreLetters[r-coreFirst].joining = JoinCausing
		} else if l, ok := extendedLetters[r]; ok {
			l.joining = JoinCausing
			extendedLetters[r] = l
		}
	}
	for _, rng := range _Transparent.R16 {
		for r := rune(rng.Lo); r <= rune(rng.Hi); r += rune(rng.Stride) {
			i := r - transparentFirst
			transparentBits[i/64] |= 1 << (uint(i) % 64)
		}
	}
	buildReverseIndex()
}

func lookup(r rune) (letter, bool) {
	if r >= coreFirst && r <= coreLast {
		l := coreLetters[r-coreFirst]
		return l, l.forms[Isolated] != 0
	}
	if r < extendedFirst || r > extendedLast {
		return letter{}, false
	}
	l, ok := extendedLetters[r]
	return l, ok
}

// Lookup returns the presentation forms of a shapeable rune. If r is not
// part of the classification table, ok is false. Runes outside of the table
// are copied through unchanged by Shape.
func Lookup(r rune) (forms Forms, ok bool) {
	l, ok := lookup(r)
	return l.forms, ok
}

// Joining returns the joining type of r. Runes which are neither shapeable
// nor transparent are reported as NonJoining.
func Joining(r rune) JoiningType {
	if l, ok := lookup(r); ok {
		return l.joining
	}
	if IsTransparent(r) {
		return Transparent
	}
	return NonJoining
}

// IsTransparent is true for combining marks which are skipped when
// determining the neighbours of a letter.
func IsTransparent(r rune) bool {
	if r < transparentFirst || r > transparentLast {
		return false
	}
	i := r - transparentFirst
	return transparentBits[i/64]&(1<<(uint(i)%64)) != 0
}

// ContainsArabic is true if s contains at least one rune of the Arabic script.
// Callers use it to select a font capable of Arabic presentation forms.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// --- Reverse lookup -------------------------------------------------------

type formOf struct {
	base rune
	pos  Position
}

var reverseForms map[rune]formOf

// buildReverseIndex maps presentation forms back to their base letters.
// Where two slots share a form, the lower position wins (isolated before
// initial, final before medial).
func buildReverseIndex() {
	reverseForms = make(map[rune]formOf, 4*(len(coreForms)+len(extendedForms)))
	add := func(base rune, f Forms) {
		if f[Isolated] == base { // join-causing letters have no presentation forms
			return
		}
		for p := Isolated; p <= Medial; p++ {
			if _, dup := reverseForms[f[p]]; !dup {
				reverseForms[f[p]] = formOf{base: base, pos: p}
			}
		}
	}
	for i, f := range coreForms {
		if f[Isolated] != 0 {
			add(rune(coreFirst+i), f)
		}
	}
	for r, f := range extendedForms {
		add(r, f)
	}
}

// BaseOf returns the base letter and position of a presentation form
// produced by Shape. LAM-ALEF ligatures are not reported, see LookupLigature.
func BaseOf(r rune) (base rune, pos Position, ok bool) {
	f, ok := reverseForms[r]
	return f.base, f.pos, ok
}
