// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

// Compress encodes src as a segment sequence against the dictionary.
// opts may be nil (uses the built-in pi dictionary, single-byte Raw fallback).
//
// The scan is greedy, leftmost-first and deterministic: at each position the
// longest run whose hex key occurs in the dictionary is taken (the leftmost
// dictionary occurrence), otherwise a single literal byte is emitted. No
// backtracking: an early match may preclude a better later one. Compress is
// total; it never fails and never mutates src.
func Compress(src []byte, opts *CompressOptions) []Segment {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	dict := opts.dict()

	if len(src) == 0 {
		return nil
	}

	// Hex-encode the whole input once; every candidate key is a window over it.
	scratch := acquireHexBuf(2 * len(src))
	defer releaseHexBuf(scratch)
	hexAll := appendHex(*scratch, src)
	*scratch = hexAll

	segments := make([]Segment, 0, len(src)/2+1)

	i := 0
	for i < len(src) {
		maxLen := matchableRun(src[i:], dict)

		matched := false
		for l := maxLen; l >= 1; l-- {
			key := hexAll[2*i : 2*(i+l)]
			if pos, hexLen, ok := findVerifiedMatch(src[i:i+l], key, dict); ok {
				segments = append(segments, Segment{Kind: KindMatch, Pos: pos, HexLen: hexLen, Len: l})
				i += l
				matched = true
				break
			}
		}

		if !matched {
			if opts.CoalesceRaw && len(segments) > 0 && segments[len(segments)-1].Kind == KindRaw {
				last := &segments[len(segments)-1]
				last.Raw = append(last.Raw, src[i])
			} else {
				segments = append(segments, rawSegment(src[i]))
			}
			i++
		}
	}

	return segments
}

// matchableRun bounds the candidate run length at the head of src. A run
// containing a byte with a non-decimal nibble can never occur in an all-digit
// dictionary, and a key longer than the dictionary can never occur either, so
// trying such lengths is pointless. The bound never excludes a real match.
func matchableRun(src []byte, dict *Dictionary) int {
	limit := min(len(src), dict.Len()/2)

	n := 0
	for n < limit && isDecimalByte(src[n]) {
		n++
	}

	return n
}
