/*
Package shaping implements Arabic contextual shaping to Unicode® presentation forms.

Arabic letters change their appearance depending on whether they connect to
the letter before, the letter after, both, or none. Rendering surfaces which do
not perform OpenType shaping themselves (simple PDF writers, label and receipt
printers) need text where every letter already is the presentation form for its
position. Shape rewrites a logical-order string into such a sequence of
isolated, initial, medial and final forms from the Unicode blocks
“Arabic Presentation Forms-A” (U+FB50…U+FDFF) and “Arabic Presentation
Forms-B” (U+FE70…U+FEFF).

	s := shaping.Shape("سلام")   // U+FEB3 U+FEFC U+FEE1

Joining

Every letter of the classification table carries four forms, in the order
isolated, final, initial, medial. Letters which do not connect to the following
letter (ALEF, DAL, REH, WAW, …) repeat their isolated and final forms in the
initial and medial slots. The joining behaviour of a letter follows from its
forms and corresponds to the Joining_Type property of ArabicShaping.txt:

	U  non-joining      HAMZA
	R  right-joining    ALEF, DAL, REH, WAW, TEH MARBUTA
	D  dual-joining     BEH, SEEN, LAM, YEH, …
	C  join-causing     TATWEEL, ZERO WIDTH JOINER
	T  transparent      FATHA, SHADDA, SUPERSCRIPT ALEF, Quranic marks

Transparent marks are skipped when looking for the neighbours of a letter, and
are copied to the output at their original position.

LAM followed by one of the ALEF variants is replaced by a single LAM-ALEF
ligature, which has an isolated and a final form only.

What Shape does not do

Shape does not reorder text for display. Mixed-direction lines need a bidi
algorithm (see golang.org/x/text/unicode/bidi) after or before shaping,
depending on what the target surface expects. Shape does not break lines, kern,
or look up glyphs either.

Tables

The tables in arabictables.go are created by a generator (source located in
github.com/npillmayer/arshape/shaping/internal/generator) from the Unicode
Character Database files UnicodeData.txt (presentation form decompositions,
general category of marks) and ArabicShaping.txt (joining types):

	go generate ./shaping

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator -ucd ../internal/testdata/ucd -o arabictables.go

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
