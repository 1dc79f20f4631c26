// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import "unicode/utf8"

// Decompress reconstructs the original bytes from a segment sequence.
// opts may be nil (uses the built-in pi dictionary).
//
// Each Match segment is bounds-checked against the dictionary
// (ErrOutOfBounds), decoded from its digit range (ErrOddLength /
// ErrInvalidHexDigit) and verified against its recorded byte count
// (ErrLengthMismatch). Raw segments are copied through verbatim. For
// sequences produced by Compress against the same dictionary these failures
// are unreachable; they guard hand-built or deserialized segments.
func Decompress(segments []Segment, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	dict := opts.dict()

	// Hand-built segments may carry a negative Len; the per-segment checks
	// below reject them, but the preallocation hint must not go negative.
	out := make([]byte, 0, max(totalByteLen(segments), 0))
	for _, s := range segments {
		switch s.Kind {
		case KindMatch:
			if s.Pos < 0 || s.HexLen <= 0 || s.Pos+s.HexLen > dict.Len() {
				return nil, ErrOutOfBounds
			}

			decoded, err := hexDecode(dict.digits[s.Pos : s.Pos+s.HexLen])
			if err != nil {
				return nil, err
			}

			if len(decoded) != s.Len {
				return nil, ErrLengthMismatch
			}

			out = append(out, decoded...)

		case KindRaw:
			if len(s.Raw) == 0 {
				return nil, ErrInvalidSegment
			}

			out = append(out, s.Raw...)

		default:
			return nil, ErrInvalidSegment
		}
	}

	return out, nil
}

// DecompressString decompresses and additionally validates that the result is
// UTF-8 text, failing with ErrInvalidText otherwise. The validation is an
// explicit step for text-oriented callers; byte-oriented callers use Decompress.
func DecompressString(segments []Segment, opts *DecompressOptions) (string, error) {
	out, err := Decompress(segments, opts)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(out) {
		return "", ErrInvalidText
	}

	return string(out), nil
}
