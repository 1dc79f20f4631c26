// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

//go:embed pi.txt
var piDigits string

// pairCount is the number of distinct two-digit decimal windows ("00".."99").
const pairCount = 100

// Dictionary is an immutable string of decimal digits used as the lookup
// corpus for hex keys. It is safe for concurrent use: nothing mutates it
// after construction.
type Dictionary struct {
	digits      string
	fingerprint uint64

	// pairPos[p] lists every offset at which the two-digit window with value
	// p starts, in ascending order. Candidate positions for a key are read
	// from its first window's list, so a scan visits occurrences leftmost-first.
	pairPos [pairCount][]int32
}

// NewDictionary builds a dictionary from a string of decimal digits.
// Returns ErrEmptyDictionary for an empty string and ErrInvalidDictionary
// if any character is not in '0'–'9'.
func NewDictionary(digits string) (*Dictionary, error) {
	if len(digits) == 0 {
		return nil, ErrEmptyDictionary
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidDictionary, digits[i], i)
		}
	}

	d := &Dictionary{
		digits:      digits,
		fingerprint: xxhash.Sum64String(digits),
	}

	for i := 0; i+1 < len(digits); i++ {
		p := int(digits[i]-'0')*10 + int(digits[i+1]-'0')
		d.pairPos[p] = append(d.pairPos[p], int32(i))
	}

	return d, nil
}

// piOnce builds the embedded pi dictionary on first use.
var piOnce = sync.OnceValue(func() *Dictionary {
	d, err := NewDictionary(strings.TrimSpace(piDigits))
	if err != nil {
		panic(fmt.Sprintf("picompress: embedded pi dictionary invalid: %v", err))
	}
	return d
})

// Pi returns the built-in dictionary: the first 10,000 decimal digits of pi
// ("31415926..."), embedded at compile time.
func Pi() *Dictionary {
	return piOnce()
}

// Len returns the number of digits in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.digits)
}

// Digits returns the dictionary contents.
func (d *Dictionary) Digits() string {
	return d.digits
}

// Fingerprint returns the xxhash64 of the digit string. Segment streams embed
// it so a decoder can reject segments produced against a different dictionary.
func (d *Dictionary) Fingerprint() uint64 {
	return d.fingerprint
}

// indexOf returns the leftmost offset at which key occurs as a substring of
// the dictionary, or -1. key must be non-empty; keys shorter than two
// characters never occur in practice (hex keys are always even-length).
func (d *Dictionary) indexOf(key []byte) int {
	if len(key) < 2 || len(key) > len(d.digits) {
		return -1
	}

	if key[0] < '0' || key[0] > '9' || key[1] < '0' || key[1] > '9' {
		return -1
	}

	for _, pos := range d.pairPos[int(key[0]-'0')*10+int(key[1]-'0')] {
		p := int(pos)
		if p+len(key) > len(d.digits) {
			continue
		}

		if d.matchesAt(p, key) {
			return p
		}
	}

	return -1
}

// matchesAt reports whether key occurs at offset p. The two-character prefix
// is already known to match via the pair index.
func (d *Dictionary) matchesAt(p int, key []byte) bool {
	for i := 2; i < len(key); i++ {
		if d.digits[p+i] != key[i] {
			return false
		}
	}
	return true
}
