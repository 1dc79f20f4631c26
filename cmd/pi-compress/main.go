// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

// pi-compress - interactive pi back-reference encoder
//
// Usage:
//
//	pi-compress [-dict file] [-coalesce] [file]
//
// Reads one line at a time, compresses it against the dictionary, prints the
// segment sequence and the round-tripped text. With no file it runs an
// interactive prompt on stdin; enter Q to quit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	picompress "github.com/zenatron/pi-compress"
)

var (
	dictPath = flag.String("dict", "", "dictionary file of decimal digits (default: built-in pi)")
	coalesce = flag.Bool("coalesce", false, "merge consecutive literal bytes into one Raw segment")
)

func main() {
	flag.Parse()

	dict, err := loadDictionary(*dictPath)
	if err != nil {
		fatal("load dictionary: %v", err)
	}

	input := os.Stdin
	interactive := true
	if flag.NArg() > 0 && flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
		interactive = false
	}

	opts := &picompress.CompressOptions{Dict: dict, CoalesceRaw: *coalesce}
	decOpts := &picompress.DecompressOptions{Dict: dict}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		if interactive {
			fmt.Print("Enter text to compress (Q to quit): ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if interactive && line == "Q" {
			break
		}

		runLine([]byte(line), opts, decOpts)
	}

	if err := scanner.Err(); err != nil {
		fatal("read input: %v", err)
	}
}

// runLine compresses one line, prints the segments, then round-trips them.
func runLine(data []byte, opts *picompress.CompressOptions, decOpts *picompress.DecompressOptions) {
	segments := picompress.Compress(data, opts)

	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.String()
	}
	fmt.Printf("[%s]\n", strings.Join(parts, ", "))

	st := picompress.CollectStats(segments)
	fmt.Printf("%d segments, %d/%d bytes matched (%.1f%%), %d pi digits referenced\n",
		st.Segments, st.MatchedBytes, st.InputBytes, st.MatchedShare(), st.DictDigits)

	restored, err := picompress.DecompressString(segments, decOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decompress: %v\n", err)
		return
	}

	if restored != string(data) {
		fmt.Fprintln(os.Stderr, "round-trip mismatch")
		return
	}

	fmt.Println(restored)
}

// loadDictionary reads a digit file, or returns the built-in pi dictionary.
func loadDictionary(path string) (*picompress.Dictionary, error) {
	if path == "" {
		return picompress.Pi(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return picompress.NewDictionary(strings.TrimSpace(string(raw)))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "pi-compress: "+format+"\n", args...)
	os.Exit(1)
}
