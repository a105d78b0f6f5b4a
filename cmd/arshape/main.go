/*
Command arshape shapes Arabic text to presentation forms.

Usage

	arshape [flags] [text …]

Text arguments are shaped and printed as a single line. Without arguments,
standard input is shaped and copied to standard output.

	-c U+0644,U+0627   shape a list of code points instead of text
	-x                 print a table of input and output code points
	-nfc               compose input to NFC before shaping
	-i                 interactive mode, quit with <ctrl>D
	-trace Info        trace level [Debug|Info|Error]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arshape/shaping"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Exit codes
const (
	exitOK = iota
	exitUsage
	exitInput
	exitREPL
	exitTraceLevel
)

// options holds the command line flags.
type options struct {
	codepoints string
	table      bool
	nfc        bool
	repl       bool
}

func main() {
	initDisplay()

	// set up logging
	logAdapter := gologadapter.GetAdapter()
	gtrace.CoreTracer = logAdapter()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	opts := options{}
	flag.StringVar(&opts.codepoints, "c", "", "code points instead of text (comma/space separated, e.g. U+0644,U+0627)")
	flag.BoolVar(&opts.table, "x", false, "print a table of input and output code points")
	flag.BoolVar(&opts.nfc, "nfc", false, "compose input to NFC before shaping")
	flag.BoolVar(&opts.repl, "i", false, "interactive mode")
	flag.Parse()
	level, err := traceLevel(*tlevel)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitTraceLevel)
	}
	tracer().SetTraceLevel(level)
	tracer().Infof("Trace level is %s", *tlevel)
	os.Exit(run(opts, flag.Args(), os.Stdin, os.Stdout))
}

// run dispatches to the mode selected by opts and returns an exit code.
func run(opts options, args []string, stdin io.Reader, stdout io.Writer) int {
	switch {
	case opts.repl:
		if err := repl(opts); err != nil {
			tracer().Errorf(err.Error())
			return exitREPL
		}
		return exitOK
	case opts.codepoints != "" && len(args) > 0:
		pterm.Error.Println("flag -c cannot be combined with text arguments")
		return exitUsage
	case opts.codepoints != "":
		input, err := parseCodepoints(opts.codepoints)
		if err != nil {
			pterm.Error.Println(err.Error())
			return exitInput
		}
		output(stdout, string(input), opts)
		return exitOK
	case len(args) > 0:
		output(stdout, strings.Join(args, " "), opts)
		return exitOK
	}
	if err := shapeStream(stdout, stdin, opts.nfc); err != nil {
		tracer().Errorf(err.Error())
		return exitInput
	}
	return exitOK
}

// shapeStream copies r to w, shaping the text on the way.
func shapeStream(w io.Writer, r io.Reader, nfc bool) error {
	var t transform.Transformer = shaping.NewTransformer()
	if nfc {
		t = transform.Chain(norm.NFC, t)
	}
	if _, err := io.Copy(w, transform.NewReader(r, t)); err != nil {
		return fmt.Errorf("shaping input: %w", err)
	}
	return nil
}

func prepare(s string, nfc bool) string {
	if nfc {
		return norm.NFC.String(s)
	}
	return s
}

func output(w io.Writer, input string, opts options) {
	input = prepare(input, opts.nfc)
	shaped := shaping.Shape(input)
	tracer().Debugf("shaped %d runes into %d runes", len([]rune(input)), len([]rune(shaped)))
	fmt.Fprintln(w, shaped)
	if opts.table {
		printFormTable([]rune(input), []rune(shaped))
	}
}

// repl starts interactive mode.
func repl(opts options) error {
	rl, err := readline.New("arshape > ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, "U+") || strings.HasPrefix(line, "u+") {
			runes, err := parseCodepoints(line)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			line = string(runes)
		}
		opts.table = true
		output(os.Stdout, line, opts)
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) (tracing.TraceLevel, error) {
	switch l {
	case "Debug":
		return tracing.LevelDebug, nil
	case "Info":
		return tracing.LevelInfo, nil
	case "Error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", l)
}
