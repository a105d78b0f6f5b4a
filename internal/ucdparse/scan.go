package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned for a nil input reader.
var ErrNoInput = errors.New("no input present")

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the remainder of the current line and then possibly
// branches out to a subsequent step function.
type Scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	rest      string      // unconsumed part of the current line
	step      scannerStep // the next scanner step to execute in a chain
	LastError error       // last error, if any
	Token     *Token      // last token produced by scanner
}

// We're buiding up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*Token) (*Token, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, ErrNoInput
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the UCD file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next line-level token. A token
// subsumes the properties of a data line of UCD input. Empty lines and
// comment lines are skipped.
//
// Next will iterate over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value from a
// step function, meaning there is no further step applicable in this chain.
// If a step function reports an error, Next returns false and the error is
// available as LastError.
func (sc *Scanner) Next() bool {
	if sc.LastError != nil {
		return false
	}
	for sc.lines.Scan() {
		sc.lineNo++
		sc.rest = sc.lines.Text()
		token := &Token{LineNo: sc.lineNo}
		sc.step = sc.ScanLine
		for sc.step != nil && token != nil {
			token, sc.step = sc.step(token)
		}
		if sc.LastError != nil {
			return false
		}
		if token == nil { // no data on this line
			continue
		}
		sc.Token = token
		return true
	}
	if err := sc.lines.Err(); err != nil {
		sc.LastError = fmt.Errorf("reading UCD input: %w", err)
	}
	return false
}

// ScanLine is the first step function for every line. It splits off the
// comment and drops lines without data.
//
//	line:
//	  -> empty or comment only: skip
//	  -> other:                 key
func (sc *Scanner) ScanLine(token *Token) (*Token, scannerStep) {
	if i := strings.IndexByte(sc.rest, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(sc.rest[i+1:])
		sc.rest = sc.rest[:i]
	}
	if strings.TrimSpace(sc.rest) == "" {
		return nil, nil
	}
	return token, sc.ScanKey
}

// ScanKey recognizes the first field of a data line.
//
//	key:
//	  -> XXXX:        single item
//	  -> XXXX..YYYY:  range item
//	  -> XXXX YYYY …: sequence item
func (sc *Scanner) ScanKey(token *Token) (*Token, scannerStep) {
	key := sc.rest
	sc.rest = ""
	if i := strings.IndexByte(key, ';'); i >= 0 {
		key, sc.rest = key[:i], key[i+1:]
	}
	token.Key = strings.TrimSpace(key)
	switch {
	case strings.Contains(token.Key, ".."):
		token.TokenType = RangeItem
		return token, sc.ScanRuneRange
	case strings.ContainsAny(token.Key, " \t"):
		token.TokenType = SequenceItem
		return token, sc.ScanRuneSequence
	}
	token.TokenType = SingleItem
	return token, sc.ScanRuneRange
}

// ScanRuneRange decodes a single code point or a range of code points.
func (sc *Scanner) ScanRuneRange(token *Token) (*Token, scannerStep) {
	from, to := token.Key, token.Key
	if token.TokenType == RangeItem {
		parts := strings.SplitN(token.Key, "..", 2)
		from, to = parts[0], parts[1]
	}
	var err error
	if token.runeFrom, err = parseCodePoint(from); err != nil {
		return sc.fail(token, err)
	}
	if token.runeTo, err = parseCodePoint(to); err != nil {
		return sc.fail(token, err)
	}
	if token.runeTo < token.runeFrom {
		return sc.fail(token, fmt.Errorf("invalid range %s", token.Key))
	}
	return token, sc.ScanItemBody
}

// ScanRuneSequence validates a key consisting of a sequence of code points.
func (sc *Scanner) ScanRuneSequence(token *Token) (*Token, scannerStep) {
	runes, err := ParseSequence(token.Key)
	if err != nil {
		return sc.fail(token, err)
	}
	token.runeFrom, token.runeTo = runes[0], runes[0]
	return token, sc.ScanItemBody
}

// ScanItemBody splits the remainder of a data line into fields.
func (sc *Scanner) ScanItemBody(token *Token) (*Token, scannerStep) {
	if sc.rest != "" {
		token.Fields = strings.Split(sc.rest, ";")
		for i, f := range token.Fields {
			token.Fields[i] = strings.TrimSpace(f)
		}
	}
	sc.rest = ""
	return token, nil
}

func (sc *Scanner) fail(token *Token, err error) (*Token, scannerStep) {
	sc.LastError = fmt.Errorf("line %d: %w", token.LineNo, err)
	return nil, nil
}
