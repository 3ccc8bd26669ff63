//go:build ignore

// gen_twiddles.go emits twiddles_gen.go, the static half-length twiddle
// tables for the power-of-two size menu, in both precisions. Run with:
//
//	go run gen_twiddles.go > twiddles_gen.go
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

var sizes = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}

func emitTable(w *os.File, name, elem string, n int, format func(float64) string) {
	half := n / 2
	fmt.Fprintf(w, "var %s = [%d]%s{\n", name, half, elem)
	line := "\t"
	for k := 0; k < half; k++ {
		ang := -2 * math.Pi * float64(k) / float64(n)
		ent := fmt.Sprintf("complex(%s, %s), ", format(math.Cos(ang)), format(math.Sin(ang)))
		if len(line)+len(ent) > 100 {
			fmt.Fprintln(w, line)
			line = "\t"
		}
		line += ent
	}
	if line != "\t" {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

func emitLookup(w *os.File, name, elem, prefix string) {
	fmt.Fprintf(w, "func %s(n int) []%s {\n", name, elem)
	fmt.Fprintln(w, "\tswitch n {")
	for _, n := range sizes {
		fmt.Fprintf(w, "\tcase %d:\n\t\treturn %s%d[:]\n", n, prefix, n)
	}
	fmt.Fprintln(w, "\t}")
	fmt.Fprintln(w, "\treturn nil")
	fmt.Fprintln(w, "}")
}

func main() {
	w := os.Stdout
	fmt.Fprintln(w, "// Code generated by gen_twiddles.go; DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package fft")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// Statically generated half-length twiddle tables for the power-of-two")
	fmt.Fprintln(w, "// size menu. Entry k of the table for size n is exp(-2*pi*i*k/n).")
	fmt.Fprintln(w)
	f64 := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	f32 := func(v float64) string { return strconv.FormatFloat(float64(float32(v)), 'g', -1, 32) }
	for _, n := range sizes {
		emitTable(w, fmt.Sprintf("twiddles%d", n), "complex128", n, f64)
	}
	for _, n := range sizes {
		emitTable(w, fmt.Sprintf("twiddles32x%d", n), "complex64", n, f32)
	}
	emitLookup(w, "staticTwiddles64", "complex128", "twiddles")
	fmt.Fprintln(w)
	emitLookup(w, "staticTwiddles32", "complex64", "twiddles32x")
}
