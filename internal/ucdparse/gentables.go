package ucdparse

import (
	"bytes"
	"fmt"
	"unicode"
)

// RangeTableCollector is a type to collect character ranges during iteration of
// UCD files, and later output them to Go source code.
//
// Runes have to be appended in ascending order. Adjacent runes and ranges
// are merged.
type RangeTableCollector struct {
	Cat    string // name of the table to output
	ranges [][2]rune
}

// NewRangeTableCollector creates a collector for a range table named cat.
func NewRangeTableCollector(cat string) *RangeTableCollector {
	return &RangeTableCollector{Cat: cat}
}

// Append a range of runes to a range table collector. A single
// character is denoted by l == r.
func (rt *RangeTableCollector) Append(l, r rune) {
	if n := len(rt.ranges); n > 0 && l <= rt.ranges[n-1][1]+1 {
		if r > rt.ranges[n-1][1] {
			rt.ranges[n-1][1] = r // range extends previous range
		}
		return
	}
	rt.ranges = append(rt.ranges, [2]rune{l, r})
}

// Ranges returns the collected ranges.
func (rt *RangeTableCollector) Ranges() [][2]rune {
	return rt.ranges
}

// Contains is true if r has been collected before.
func (rt *RangeTableCollector) Contains(r rune) bool {
	for _, rng := range rt.ranges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// Output creates Go source code for a range table.
func (rt *RangeTableCollector) Output(buf *bytes.Buffer) {
	switch32, latinOffset := len(rt.ranges), 0
	for i, r := range rt.ranges {
		if r[1] <= unicode.MaxLatin1 {
			latinOffset++
		}
		if r[1] > 0xFFFF {
			switch32 = i
			break
		}
	}
	fmt.Fprintf(buf, "var _%s = &unicode.RangeTable{ // %d entries\n", rt.Cat, len(rt.ranges))
	if switch32 > 0 {
		fmt.Fprintf(buf, "\tR16: []unicode.Range16{\n")
		for _, r := range rt.ranges[:switch32] {
			fmt.Fprintf(buf, "\t\t{0x%04x, 0x%04x, 1},\n", r[0], r[1])
		}
		fmt.Fprintf(buf, "\t},\n")
	}
	if switch32 < len(rt.ranges) {
		fmt.Fprintf(buf, "\tR32: []unicode.Range32{\n")
		for _, r := range rt.ranges[switch32:] {
			fmt.Fprintf(buf, "\t\t{0x%04x, 0x%04x, 1},\n", r[0], r[1])
		}
		fmt.Fprintf(buf, "\t},\n")
	}
	if latinOffset > 0 {
		fmt.Fprintf(buf, "\tLatinOffset: %d,\n", latinOffset)
	}
	fmt.Fprintf(buf, "}\n")
}
