package shaping

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer is a transform.Transformer which shapes UTF-8 text.
//
// The form of a letter depends on the letter before it and on the next rune
// which is not a transparent mark. Transformer keeps the joining state of the
// last letter written and holds back the most recent letter, together with
// the marks following it, until the next non-transparent rune has been read.
// Output is the same as Shape produces for the complete text, however the
// input is split into calls. Held-back marks are buffered, so memory grows
// with the longest run of marks following a letter. Output which does not
// fit into dst is kept and written on the next call.
//
// Invalid UTF-8 is replaced by U+FFFD.
//
// A Transformer holds state and must not be shared between streams.
// Create one per stream with NewTransformer.
type Transformer struct {
	pending   []rune // letter waiting for its successor, then its marks
	prevJoins bool   // last letter written joins forward
	out       []byte // shaped output not yet copied to dst
	outPos    int
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer creates a Transformer in its initial state.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.pending = t.pending[:0]
	t.prevJoins = false
	t.out, t.outPos = t.out[:0], 0
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		nDst += t.drain(dst[nDst:])
		if t.outPos < len(t.out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if nSrc == len(src) {
			break
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		nSrc += size
		t.push(r)
	}
	if atEOF && len(t.pending) > 0 {
		t.flush(false)
		nDst += t.drain(dst[nDst:])
		if t.outPos < len(t.out) {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

// push feeds the next input rune. A non-transparent rune is the successor of
// a pending letter and decides its form.
func (t *Transformer) push(r rune) {
	if len(t.pending) > 0 {
		if IsTransparent(r) {
			t.pending = append(t.pending, r)
			return
		}
		if rule, ok := LookupLigature(t.pending[0], r); ok {
			lig := rule.Form(t.prevJoins)
			tracer().Debugf("shaping: ligature %#U + %#U => %#U", rule.Trigger, r, lig)
			t.emit(lig)
			for _, m := range t.pending[1:] {
				t.emit(m)
			}
			t.pending = t.pending[:0]
			t.prevJoins = Joining(r).joinsForward()
			return
		}
		l, ok := lookup(r)
		t.flush(ok && l.joining.joinsBackward())
	}
	if _, ok := lookup(r); ok {
		t.pending = append(t.pending, r)
		return
	}
	t.emit(r)
	if !IsTransparent(r) {
		t.prevJoins = false
	}
}

// flush writes the pending letter in its contextual form, followed by its marks.
func (t *Transformer) flush(hasNext bool) {
	l, _ := lookup(t.pending[0])
	t.emit(l.forms[selectPosition(l.forms, t.prevJoins, hasNext)])
	for _, m := range t.pending[1:] {
		t.emit(m)
	}
	t.prevJoins = l.joining.joinsForward()
	t.pending = t.pending[:0]
}

func (t *Transformer) emit(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.out = append(t.out, buf[:n]...)
}

// drain copies as much buffered output to dst as fits.
func (t *Transformer) drain(dst []byte) int {
	n := copy(dst, t.out[t.outPos:])
	t.outPos += n
	if t.outPos == len(t.out) {
		t.out, t.outPos = t.out[:0], 0
	}
	return n
}

// NewReader returns a reader which shapes the text read from r.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, NewTransformer())
}

// NewWriter returns a writer which shapes text before writing it to w.
// Callers must Close the writer to flush the last letter.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer())
}
