// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

// pi-stats - segment composition analysis for pi back-reference encoding
//
// Usage:
//
//	pi-stats [-dict file] [-svg-dir dir] [-encoded] [file]
//
// Compresses the whole input (file or stdin) and prints how it decomposed
// into matches and literals. With -svg-dir it also renders a match-length
// histogram and a dictionary-position scatter as SVG files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	picompress "github.com/zenatron/pi-compress"
)

var (
	dictPath = flag.String("dict", "", "dictionary file of decimal digits (default: built-in pi)")
	svgDir   = flag.String("svg-dir", "", "directory for SVG charts (empty = no charts)")
	encoded  = flag.Bool("encoded", false, "also report the serialized segment-stream size")
)

func main() {
	flag.Parse()

	dict, err := loadDictionary(*dictPath)
	if err != nil {
		fatal("load dictionary: %v", err)
	}

	var input io.Reader = os.Stdin
	if flag.NArg() > 0 && flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fatal("read input: %v", err)
	}

	opts := &picompress.CompressOptions{Dict: dict}
	segments := picompress.Compress(data, opts)
	st := picompress.CollectStats(segments)

	fmt.Printf("input:          %d bytes\n", st.InputBytes)
	fmt.Printf("segments:       %d (%d matches, %d literals)\n", st.Segments, st.Matches, st.Raws)
	fmt.Printf("matched bytes:  %d (%.1f%%)\n", st.MatchedBytes, st.MatchedShare())
	fmt.Printf("literal bytes:  %d\n", st.RawBytes)
	fmt.Printf("digits used:    %d\n", st.DictDigits)
	fmt.Printf("longest match:  %d bytes\n", st.LongestMatch)

	if *encoded {
		blob, err := picompress.EncodeSegments(segments, opts)
		if err != nil {
			fatal("encode segments: %v", err)
		}
		fmt.Printf("encoded stream: %d bytes (%.2fx input)\n", len(blob), ratio(len(blob), st.InputBytes))
	}

	if *svgDir != "" {
		if err := renderCharts(*svgDir, segments); err != nil {
			fatal("render charts: %v", err)
		}
		fmt.Printf("charts written to %s\n", *svgDir)
	}
}

// renderCharts writes the match-length histogram and position scatter SVGs.
func renderCharts(dir string, segments []picompress.Segment) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	lengths := make(map[int]int)
	var offsets, positions []int

	inputOffset := 0
	for _, s := range segments {
		if s.Kind == picompress.KindMatch {
			lengths[s.Len]++
			offsets = append(offsets, inputOffset)
			positions = append(positions, s.Pos)
		}
		inputOffset += s.ByteLen()
	}

	if len(lengths) == 0 {
		return fmt.Errorf("no matches to chart")
	}

	if err := renderHistogram(filepath.Join(dir, "match-lengths.svg"), lengths); err != nil {
		return err
	}

	return renderScatter(filepath.Join(dir, "match-positions.svg"), offsets, positions)
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// loadDictionary reads a digit file, or returns the built-in pi dictionary.
func loadDictionary(path string) (*picompress.Dictionary, error) {
	if path == "" {
		return picompress.Pi(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return picompress.NewDictionary(strings.TrimSpace(string(raw)))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "pi-stats: "+format+"\n", args...)
	os.Exit(1)
}
