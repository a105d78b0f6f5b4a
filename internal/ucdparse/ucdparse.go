/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines consist of fields separated by ';'. The first field (the key)
is a code point, a code point range "XXXX..YYYY", or a sequence of code points
separated by spaces. Text after '#' is a comment.

	0628;ARABIC LETTER BEH;Lo;0;AL;;;;;N;;;;;
	0610..061A    ; Mn # [11] ARABIC SIGN SALLALLAHOU ALAYHE WASSALLAM..
	0644 0627; FEFB # LAM ALEF
*/
package ucdparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Token subsumes the content of a single data line of a UCD file.
type Token struct {
	LineNo    int       // line number within the input, 1…n
	TokenType TokenType // type of the key
	Key       string    // first field, trimmed
	Fields    []string  // fields following the key, trimmed
	Comment   string    // rest-of-line comment of the data line
	runeFrom  rune      // first/single rune of the key
	runeTo    rune      // final rune of range (may be identical to runeFrom)
}

// TokenType classifies the key of a data line.
type TokenType int8

// Types of keys.
const (
	Undefined     TokenType = iota
	SingleItem              // key is a single code point
	RangeItem               // key is a range of code points
	SequenceItem            // key is a sequence of code points
)

func (tt TokenType) String() string {
	switch tt {
	case SingleItem:
		return "single"
	case RangeItem:
		return "range"
	case SequenceItem:
		return "sequence"
	}
	return "undefined"
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U type=%s %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) following the key. Fields out of range
// are returned as the empty string.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range of the key. For single code points from and to
// are identical, for sequences both denote the first code point.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Runes decodes a field holding a space separated sequence of hexadecimal code
// points. Field #0 is the key. An empty field results in an empty slice.
func (token *Token) Runes(i int) ([]rune, error) {
	field := token.Key
	if i > 0 {
		field = token.Field(i)
	}
	return ParseSequence(field)
}

// ParseSequence decodes a space separated sequence of hexadecimal code points,
// as found in keys of sequence items and in decomposition fields.
func ParseSequence(field string) ([]rune, error) {
	words := strings.Fields(field)
	runes := make([]rune, 0, len(words))
	for _, w := range words {
		r, err := parseCodePoint(w)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return runes, nil
}

func parseCodePoint(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
