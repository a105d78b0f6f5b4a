package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/arshape/shaping"
	"github.com/pterm/pterm"
)

// ---Parsing code points -----------------------------------------------

// parseCodepoints reads hexadecimal code points separated by commas or white
// space. A code point may be written with a prefix "U+" or "0x".
func parseCodepoints(list string) ([]rune, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	runes := make([]rune, len(fields))
	for i, f := range fields {
		hex := strings.ToUpper(f)
		hex = strings.TrimPrefix(strings.TrimPrefix(hex, "U+"), "0X")
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(cp)) {
			return nil, fmt.Errorf("not a Unicode code point: %q", f)
		}
		runes[i] = rune(cp)
	}
	return runes, nil
}

// ---Formatting the Output ---------------------------------------------

// formRow relates an output rune to the input runes it has been shaped from.
type formRow struct {
	input  []rune
	output rune
	form   string
}

// alignForms walks input and shaped output in parallel. Output is never longer
// than input: a ligature consumes LAM and ALEF, with marks in between
// following the ligature.
func alignForms(input, shaped []rune) []formRow {
	rows := make([]formRow, 0, len(shaped))
	skip, i := -1, 0
	for _, o := range shaped {
		if i == skip {
			i++
		}
		if i >= len(input) {
			break
		}
		r := input[i]
		row := formRow{input: []rune{r}, output: o, form: "unchanged"}
		if lig, ok := ligatureForm(o); ok && r == lig.Trigger {
			j := i + 1
			for j < len(input) && shaping.IsTransparent(input[j]) {
				j++
			}
			if j < len(input) {
				row.input = append(row.input, input[j])
				skip = j
			}
			row.form = "ligature"
		} else if o != r {
			if _, pos, ok := shaping.BaseOf(o); ok {
				row.form = pos.String()
			}
		}
		rows = append(rows, row)
		i++
	}
	return rows
}

func ligatureForm(r rune) (shaping.LigatureRule, bool) {
	for _, rule := range shaping.Ligatures() {
		if r == rule.Isolated || r == rule.Final {
			return rule, true
		}
	}
	return shaping.LigatureRule{}, false
}

func formTable(input, shaped []rune) [][]string {
	data := [][]string{
		{"Index", "Input", "Output", "Form", "Joining"},
	}
	for i, row := range alignForms(input, shaped) {
		in := make([]string, len(row.input))
		for k, r := range row.input {
			in[k] = fmt.Sprintf("%U", r)
		}
		data = append(data, []string{
			strconv.Itoa(i),
			strings.Join(in, " "),
			fmt.Sprintf("%U", row.output),
			row.form,
			shaping.Joining(row.input[0]).String(),
		})
	}
	return data
}

func printFormTable(input, shaped []rune) {
	if len(shaped) == 0 {
		pterm.Info.Println("empty input")
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(formTable(input, shaped)).Render()
}
