package picompress

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestNewDictionary_Validation(t *testing.T) {
	_, err := NewDictionary("")
	if !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("expected ErrEmptyDictionary, got %v", err)
	}

	for _, in := range []string{"12a3", "3.14159", " 314", "314\n"} {
		_, err := NewDictionary(in)
		if !errors.Is(err, ErrInvalidDictionary) {
			t.Fatalf("NewDictionary(%q): expected ErrInvalidDictionary, got %v", in, err)
		}
	}

	d, err := NewDictionary("3141592653")
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}
	if d.Len() != 10 {
		t.Fatalf("Len = %d, want 10", d.Len())
	}
	if d.Digits() != "3141592653" {
		t.Fatalf("Digits = %q", d.Digits())
	}
}

func TestPi_BuiltinDictionary(t *testing.T) {
	d := Pi()
	if d.Len() != 10000 {
		t.Fatalf("built-in dictionary length = %d, want 10000", d.Len())
	}
	if !strings.HasPrefix(d.Digits(), "31415926535897932384626433832795028841971693993751") {
		t.Fatalf("built-in dictionary does not start with pi digits: %q", d.Digits()[:50])
	}
	if Pi() != d {
		t.Fatal("Pi() should return the same instance")
	}
}

func TestDictionary_Fingerprint(t *testing.T) {
	a, err := NewDictionary("31415926")
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}
	b, err := NewDictionary("31415926")
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}
	c, err := NewDictionary("27182818")
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("equal digit strings must have equal fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("different digit strings should have different fingerprints")
	}
}

func TestDictionary_IndexOfMatchesStringsIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	digits := make([]byte, 512)
	for i := range digits {
		digits[i] = byte('0' + rng.Intn(10))
	}

	d, err := NewDictionary(string(digits))
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	// Random keys plus substrings drawn from the dictionary itself, so both
	// hits and misses are exercised.
	for trial := 0; trial < 2000; trial++ {
		keyLen := 2 + rng.Intn(6)

		var key string
		if trial%2 == 0 && keyLen <= len(digits) {
			start := rng.Intn(len(digits) - keyLen + 1)
			key = string(digits[start : start+keyLen])
		} else {
			kb := make([]byte, keyLen)
			for i := range kb {
				kb[i] = byte('0' + rng.Intn(10))
			}
			key = string(kb)
		}

		want := strings.Index(string(digits), key)
		got := d.indexOf([]byte(key))
		if got != want {
			t.Fatalf("indexOf(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestDictionary_IndexOfEdgeCases(t *testing.T) {
	d, err := NewDictionary("12341234")
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	// Leftmost occurrence wins.
	if got := d.indexOf([]byte("1234")); got != 0 {
		t.Fatalf("indexOf(1234) = %d, want 0", got)
	}
	if got := d.indexOf([]byte("4123")); got != 3 {
		t.Fatalf("indexOf(4123) = %d, want 3", got)
	}

	// Keys with hex letters can never occur in a digit dictionary.
	if got := d.indexOf([]byte("ff")); got != -1 {
		t.Fatalf("indexOf(ff) = %d, want -1", got)
	}
	if got := d.indexOf([]byte("1a")); got != -1 {
		t.Fatalf("indexOf(1a) = %d, want -1", got)
	}

	// Keys longer than the dictionary can never occur.
	if got := d.indexOf([]byte("123412341")); got != -1 {
		t.Fatalf("overlong key: got %d, want -1", got)
	}

	// Odd-length key straddling pair boundaries.
	if got := d.indexOf([]byte("234")); got != 1 {
		t.Fatalf("indexOf(234) = %d, want 1", got)
	}
}
