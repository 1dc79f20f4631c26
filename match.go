// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import "bytes"

// findVerifiedMatch looks up the hex key of slice in the dictionary and
// returns the leftmost occurrence. key must equal the lowercase hex form of
// slice (callers pass a window over a precomputed buffer to avoid re-encoding).
//
// The occurrence is re-verified by decoding the referenced digit range and
// comparing it to slice. An exact substring hit cannot decode to anything
// else, but the check pins the safety contract: if the search step is ever
// replaced by an indexed or approximate lookup, a false hit degrades to
// "no match" instead of corrupting output.
func findVerifiedMatch(slice, key []byte, dict *Dictionary) (pos, hexLen int, ok bool) {
	pos = dict.indexOf(key)
	if pos < 0 {
		return 0, 0, false
	}

	hexLen = len(key)
	decoded, err := hexDecode(dict.digits[pos : pos+hexLen])
	if err != nil || !bytes.Equal(decoded, slice) {
		return 0, 0, false
	}

	return pos, hexLen, true
}

// FindMatch reports the leftmost dictionary occurrence of slice's hex key,
// or ok=false when slice cannot be expressed as a back-reference.
func FindMatch(slice []byte, dict *Dictionary) (pos, hexLen int, ok bool) {
	if dict == nil {
		dict = Pi()
	}

	if len(slice) == 0 {
		return 0, 0, false
	}

	return findVerifiedMatch(slice, appendHex(make([]byte, 0, 2*len(slice)), slice), dict)
}
