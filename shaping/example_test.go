package shaping_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arshape/shaping"
)

func ExampleShape() {
	shaped := shaping.Shape("سلام")
	for _, r := range shaped {
		fmt.Printf("%#U\n", r)
	}
	// Output:
	// U+FEB3 'ﺳ'
	// U+FEFC 'ﻼ'
	// U+FEE1 'ﻡ'
}

func ExampleLookup() {
	forms, _ := shaping.Lookup('ب')
	for p := shaping.Isolated; p <= shaping.Medial; p++ {
		fmt.Printf("%-8s %U\n", p, forms.Form(p))
	}
	fmt.Println(shaping.Joining('ب'), shaping.Joining('ا'), shaping.Joining('َ'))
	// Output:
	// isolated U+FE8F
	// final    U+FE90
	// initial  U+FE91
	// medial   U+FE92
	// D R T
}

func ExampleNewReader() {
	r := shaping.NewReader(strings.NewReader("لا"))
	shaped, _ := io.ReadAll(r)
	fmt.Printf("%U\n", []rune(string(shaped)))
	// Output:
	// [U+FEFB]
}

func ExampleNewWriter() {
	var sb strings.Builder
	w := shaping.NewWriter(&sb)
	fmt.Fprint(w, "بب")
	w.Close() // flushes the last letter
	fmt.Printf("%U\n", []rune(sb.String()))
	// Output:
	// [U+FE91 U+FE90]
}
