// Package testdata locates Unicode Character Database files used by tests
// and by the table generator.
//
// The directory ucd holds excerpts of UnicodeData.txt and ArabicShaping.txt
// (version 14.0.0) restricted to Arabic letters, presentation forms and
// marks, and ShapingTest.txt with shaping test cases. Complete UCD files may
// be fetched with
//
//	go run download.go
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Names of the data files in directory ucd.
const (
	UnicodeData   = "UnicodeData.txt"
	ArabicShaping = "ArabicShaping.txt"
	ShapingTest   = "ShapingTest.txt"
)

// UCDReader returns reader for the given ucd file for testing.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// UCDPath returns path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
