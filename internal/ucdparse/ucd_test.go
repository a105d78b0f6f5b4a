package ucdparse

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	require.NoError(t, err)
	require.True(t, sc.Next(), "expected a data line")
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	assert.Equal(t, RangeItem, sc.Token.TokenType)
	assert.Equal(t, "Cc    [18] <control-000E>..<control-001F>", sc.Token.Comment)
	assert.False(t, sc.Next())
	assert.NoError(t, sc.LastError)
}

func TestParseFile(t *testing.T) {
	input := `# ArabicShaping-like excerpt

0621; HAMZA; U; No_Joining_Group
0622; MADDA ON ALEF; R; ALEF   # with comment

FEFB;ARABIC LIGATURE LAM WITH ALEF ISOLATED FORM;Lo;0;AL;<isolated> 0644 0627;;;;N;;;;;
0644 0627; FEFB # LAM ALEF
`
	var tokens []*Token
	err := Parse(strings.NewReader(input), func(token *Token) {
		tokens = append(tokens, token)
	})
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, 3, tokens[0].LineNo)
	assert.Equal(t, SingleItem, tokens[0].TokenType)
	assert.Equal(t, "U", tokens[0].Field(2))
	assert.Equal(t, "", tokens[0].Field(7))
	from, to := tokens[1].Range()
	assert.Equal(t, rune(0x0622), from)
	assert.Equal(t, rune(0x0622), to)
	assert.Equal(t, "ALEF", tokens[1].Field(3))
	assert.Equal(t, "with comment", tokens[1].Comment)

	assert.Equal(t, "<isolated> 0644 0627", tokens[2].Field(5))
	assert.Len(t, tokens[2].Fields, 14)

	assert.Equal(t, SequenceItem, tokens[3].TokenType)
	key, err := tokens[3].Runes(0)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x0644, 0x0627}, key)
	value, err := tokens[3].Runes(1)
	require.NoError(t, err)
	assert.Equal(t, []rune{0xFEFB}, value)
}

func TestParseErrors(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoInput))

	input := "0621; HAMZA\n06ZZ; BROKEN\n0622; MADDA ON ALEF\n"
	n := 0
	err = Parse(strings.NewReader(input), func(*Token) { n++ })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, n, "parsing should stop at the broken line")

	err = Parse(strings.NewReader("0630..0620; REVERSED\n"), func(*Token) {})
	assert.Error(t, err)
}

func TestRangeTableCollector(t *testing.T) {
	rt := NewRangeTableCollector("Test")
	for _, r := range []rune{0x41, 0x42, 0x43, 0x0610, 0x0611} {
		rt.Append(r, r)
	}
	rt.Append(0x0612, 0x061A)
	rt.Append(0x064B, 0x065F)
	assert.Equal(t, [][2]rune{{0x41, 0x43}, {0x0610, 0x061A}, {0x064B, 0x065F}}, rt.Ranges())
	assert.True(t, rt.Contains(0x0615))
	assert.False(t, rt.Contains(0x0620))

	buf := &bytes.Buffer{}
	rt.Output(buf)
	expected := `var _Test = &unicode.RangeTable{ // 3 entries
	R16: []unicode.Range16{
		{0x0041, 0x0043, 1},
		{0x0610, 0x061a, 1},
		{0x064b, 0x065f, 1},
	},
	LatinOffset: 1,
}
`
	assert.Equal(t, expected, buf.String())
}
