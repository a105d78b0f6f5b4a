/*
Package generator is a generator for the Arabic shaping tables.

Tables are generated from two files of the Unicode Character Database:

	UnicodeData.txt    presentation form decompositions, marks
	ArabicShaping.txt  joining types and joining groups

Every letter of U+0600…U+06FF which has presentation forms tagged
<isolated>, <final>, <initial> or <medial> in UnicodeData.txt gets a table
entry. Missing initial and medial forms are filled with the isolated and
final forms, so letters occupy four slots whether they join forward or not.
Right-joining and dual-joining letters without a final form are skipped.
LAM-ALEF ligatures are the two-letter decompositions of LAM followed by a
letter of joining group ALEF. Arabic non-spacing marks become the
transparent range table.

Usage

	generator [-v] [-ucd dir] [-o file]

The generator is designed to be called from the "shaping" directory by
go generate.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/arshape/internal/ucdparse"
)

var logger = log.New(os.Stderr, "Arabic shaping generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

const ucdVersion = "14.0.0"

const coreFirst, coreLast = 0x0621, 0x064A

const lam = 0x0644

var positions = map[string]int{
	"<isolated>": 0, "<final>": 1, "<initial>": 2, "<medial>": 3,
}

// letter is a table entry in the making.
type letter struct {
	Code  rune
	Name  string
	Forms [4]rune
}

// ligature is a LAM-ALEF ligature in the making.
type ligature struct {
	Partner  rune
	Name     string
	Isolated rune
	Final    rune
}

// joining holds the properties of ArabicShaping.txt for a code point.
type joining struct {
	name  string
	jtype string
	group string
}

// ucdData collects what we read from UnicodeData.txt.
type ucdData struct {
	names     map[rune]string
	forms     map[rune]*[4]rune
	ligatures map[[2]rune]*[4]rune
	marks     *ucdparse.RangeTableCollector
}

// Load UnicodeData.txt: names, decompositions of presentation forms and marks.
func loadUnicodeData(dir string) (*ucdData, error) {
	if verbose {
		logger.Printf("reading UnicodeData.txt")
	}
	defer timeTrack(time.Now(), "loading UnicodeData.txt")
	f, err := os.Open(filepath.Join(dir, "UnicodeData.txt"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data := &ucdData{
		names:     make(map[rune]string),
		forms:     make(map[rune]*[4]rune),
		ligatures: make(map[[2]rune]*[4]rune),
		marks:     ucdparse.NewRangeTableCollector("Transparent"),
	}
	var failed error
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		if failed != nil {
			return
		}
		r, _ := token.Range()
		name := token.Field(1)
		data.names[r] = name
		if token.Field(2) == "Mn" && strings.HasPrefix(name, "ARABIC ") && r <= 0x08FF {
			data.marks.Append(r, r)
			return
		}
		decomp := strings.Fields(token.Field(5))
		if len(decomp) < 2 {
			return
		}
		pos, ok := positions[decomp[0]]
		if !ok {
			return
		}
		seq, err := ucdparse.ParseSequence(strings.Join(decomp[1:], " "))
		if err != nil {
			failed = fmt.Errorf("line %d: %w", token.LineNo, err)
			return
		}
		switch {
		case len(seq) == 1 && seq[0] >= 0x0600 && seq[0] <= 0x06FF:
			if data.forms[seq[0]] == nil {
				data.forms[seq[0]] = &[4]rune{}
			}
			data.forms[seq[0]][pos] = r
		case len(seq) == 2 && seq[0] == lam:
			key := [2]rune{seq[0], seq[1]}
			if data.ligatures[key] == nil {
				data.ligatures[key] = &[4]rune{}
			}
			data.ligatures[key][pos] = r
		}
	})
	if err == nil {
		err = failed
	}
	return data, err
}

// Load ArabicShaping.txt: joining types and groups.
func loadArabicShaping(dir string) (map[rune]joining, error) {
	if verbose {
		logger.Printf("reading ArabicShaping.txt")
	}
	defer timeTrack(time.Now(), "loading ArabicShaping.txt")
	f, err := os.Open(filepath.Join(dir, "ArabicShaping.txt"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	jt := make(map[rune]joining)
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		from, to := token.Range()
		for r := from; r <= to; r++ {
			jt[r] = joining{name: token.Field(1), jtype: token.Field(2), group: token.Field(3)}
		}
	})
	return jt, err
}

// collectLetters combines decompositions and joining types into table entries,
// ordered by code point.
func collectLetters(data *ucdData, jt map[rune]joining) *treemap.Map {
	letters := treemap.NewWith(utils.Int32Comparator)
	for base, forms := range data.forms {
		f := *forms
		if f[0] == 0 {
			continue
		}
		t := jt[base].jtype
		if f[1] == 0 {
			if t == "R" || t == "D" || f[2] != 0 || f[3] != 0 {
				if verbose {
					logger.Printf("skipping %04X: joining type %s, no final form", base, t)
				}
				continue
			}
			f[1] = f[0]
		}
		if f[2] == 0 {
			f[2] = f[0]
		}
		if f[3] == 0 {
			f[3] = f[1]
		}
		letters.Put(base, &letter{Code: base, Name: letterName(base, data, jt), Forms: f})
	}
	for r, j := range jt {
		if j.jtype != "C" || !(r >= 0x0600 && r <= 0x06FF || r == 0x200D) {
			continue
		}
		letters.Put(r, &letter{Code: r, Name: letterName(r, data, jt), Forms: [4]rune{r, r, r, r}})
	}
	return letters
}

func collectLigatures(data *ucdData, jt map[rune]joining) *treemap.Map {
	ligatures := treemap.NewWith(utils.Int32Comparator)
	for key, forms := range data.ligatures {
		if jt[key[1]].group != "ALEF" || forms[0] == 0 || forms[1] == 0 {
			continue
		}
		name := data.names[forms[0]]
		name = strings.TrimPrefix(name, "ARABIC LIGATURE ")
		name = strings.TrimSuffix(name, " ISOLATED FORM")
		ligatures.Put(key[1], &ligature{Partner: key[1], Name: name,
			Isolated: forms[0], Final: forms[1]})
	}
	return ligatures
}

func letterName(r rune, data *ucdData, jt map[rune]joining) string {
	name, ok := data.names[r]
	if !ok {
		return jt[r].name
	}
	name = strings.TrimPrefix(name, "ARABIC LETTER ")
	return strings.TrimPrefix(name, "ARABIC ")
}

// --- Templates --------------------------------------------------------

var header = `// Code generated by shaping/internal/generator from UCD {{.}}. DO NOT EDIT.

package shaping

import "unicode"
`

var templateCoreForms = `
// coreForms holds the forms of U+0621 HAMZA … U+064A YEH, indexed by r - coreFirst.
// Unassigned slots are zero.
var coreForms = [coreLast - coreFirst + 1]Forms{
{{range .}}	{{printf "0x%x" .Code}} - coreFirst: {{forms .Forms}}, // {{.Name}}
{{end}}}
`

var templateExtendedForms = `
// extendedForms holds the forms of letters outside the core block.
var extendedForms = map[rune]Forms{
{{range .}}	{{printf "0x%04X" .Code}}: {{forms .Forms}}, // {{.Name}}
{{end}}}
`

var templateJoinCausing = `
// joinCausing lists letters of joining type C.
var joinCausing = [...]rune{ {{- range $i, $r := .}}{{if $i}}, {{end}}{{printf "0x%04X" $r}}{{end -}} }
`

var templateLigatures = `
// lamAlefLigatures lists the mandatory LAM-ALEF ligatures.
var lamAlefLigatures = [...]LigatureRule{
{{range .}}	{Trigger: 0x0644, Partner: {{printf "0x%04X" .Partner}}, Isolated: {{printf "0x%04X" .Isolated}}, Final: {{printf "0x%04X" .Final}}}, // {{.Name}}
{{end}}}
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"forms": func(f [4]rune) string {
		return fmt.Sprintf("{0x%04X, 0x%04X, 0x%04X, 0x%04X}", f[0], f[1], f[2], f[3])
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateTables(buf *bytes.Buffer, data *ucdData, letters, ligatures *treemap.Map) {
	defer timeTrack(time.Now(), "generate tables")
	var core, extended []*letter
	var joinCausing []rune
	it := letters.Iterator()
	for it.Next() {
		l := it.Value().(*letter)
		if l.Code >= coreFirst && l.Code <= coreLast {
			core = append(core, l)
		} else {
			extended = append(extended, l)
		}
		if l.Forms[0] == l.Code {
			joinCausing = append(joinCausing, l.Code)
		}
	}
	ligs := make([]*ligature, 0, ligatures.Size())
	for _, v := range ligatures.Values() {
		ligs = append(ligs, v.(*ligature))
	}
	checkFatal(makeTemplate("header", header).Execute(buf, ucdVersion))
	checkFatal(makeTemplate("core forms", templateCoreForms).Execute(buf, core))
	checkFatal(makeTemplate("extended forms", templateExtendedForms).Execute(buf, extended))
	checkFatal(makeTemplate("join causing", templateJoinCausing).Execute(buf, joinCausing))
	buf.WriteString("\n")
	data.marks.Output(buf)
	checkFatal(makeTemplate("ligatures", templateLigatures).Execute(buf, ligs))
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdDir := flag.String("ucd", "../internal/testdata/ucd", "directory of UCD files")
	outFile := flag.String("o", "arabictables.go", "output file")
	flag.Parse()
	verbose = *doVerbose
	data, err := loadUnicodeData(*ucdDir)
	checkFatal(err)
	jt, err := loadArabicShaping(*ucdDir)
	checkFatal(err)
	letters := collectLetters(data, jt)
	ligatures := collectLigatures(data, jt)
	if verbose {
		logger.Printf("collected %d letters, %d ligatures, %d mark ranges\n",
			letters.Size(), ligatures.Size(), len(data.marks.Ranges()))
	}
	buf := &bytes.Buffer{}
	generateTables(buf, data, letters, ligatures)
	src, err := format.Source(buf.Bytes())
	checkFatal(err)
	checkFatal(os.WriteFile(*outFile, src, 0644))
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
