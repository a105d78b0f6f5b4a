package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodepoints(t *testing.T) {
	runes, err := parseCodepoints("U+0644,u+0627 0x0628\t0628")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x0644, 0x0627, 0x0628, 0x0628}, runes)

	_, err = parseCodepoints("U+06ZZ")
	assert.Error(t, err)
	_, err = parseCodepoints("U+110000")
	assert.Error(t, err)
	_, err = parseCodepoints("U+D800") // surrogate
	assert.Error(t, err)
	_, err = parseCodepoints("U+")
	assert.Error(t, err)
	runes, err = parseCodepoints(" , ")
	require.NoError(t, err)
	assert.Empty(t, runes)
}

func TestAlignForms(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	// BEH LAM SHADDA ALEF BEH
	input := []rune{0x0628, 0x0644, 0x0651, 0x0627, 0x0628}
	shaped := []rune{0xFE91, 0xFEFC, 0x0651, 0xFE8F}
	rows := alignForms(input, shaped)
	require.Len(t, rows, 4)
	assert.Equal(t, "initial", rows[0].form)
	assert.Equal(t, "ligature", rows[1].form)
	assert.Equal(t, []rune{0x0644, 0x0627}, rows[1].input)
	assert.Equal(t, "unchanged", rows[2].form)
	assert.Equal(t, []rune{0x0651}, rows[2].input)
	assert.Equal(t, "isolated", rows[3].form)
	assert.Equal(t, []rune{0x0628}, rows[3].input)

	data := formTable(input, shaped)
	require.Len(t, data, 5)
	assert.Equal(t, []string{"1", "U+0644 U+0627", "U+FEFC", "ligature", "D"}, data[2])
}

func TestRun(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var out bytes.Buffer
	code := run(options{}, []string{"سلام", "ABC"}, nil, &out)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ﺳﻼﻡ ABC\n", out.String())

	out.Reset()
	code = run(options{codepoints: "U+0644,U+0627"}, nil, nil, &out)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ﻻ\n", out.String())

	out.Reset()
	code = run(options{codepoints: "U+0644,XYZ"}, nil, nil, &out)
	assert.Equal(t, exitInput, code)

	code = run(options{codepoints: "U+0644"}, []string{"text"}, nil, &out)
	assert.Equal(t, exitUsage, code)

	out.Reset()
	code = run(options{nfc: true}, nil, strings.NewReader("لآ\nبب\n"), &out)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ﻵ\nﺑﺐ\n", out.String())

	// a line much longer than the stream buffers
	long := strings.Repeat("ب", 3000)
	expected := "\uFE91" + strings.Repeat("\uFE92", 2998) + "\uFE90\n"
	for _, nfc := range []bool{false, true} {
		out.Reset()
		code = run(options{nfc: nfc}, nil, strings.NewReader(long+"\n"), &out)
		assert.Equal(t, exitOK, code)
		assert.Equal(t, expected, out.String(), "nfc=%v", nfc)
	}
}

func TestTraceLevel(t *testing.T) {
	level, err := traceLevel("Debug")
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelDebug, level)
	_, err = traceLevel("Verbose")
	assert.Error(t, err)
}
