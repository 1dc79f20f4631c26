// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import "errors"

// Sentinel errors for the hex codec, dictionary, decompressor and segment stream.
var (
	// ErrOddLength is returned when a hex string has an odd number of digits.
	ErrOddLength = errors.New("odd-length hex string")
	// ErrInvalidHexDigit is returned when a hex string contains a non-hex character.
	ErrInvalidHexDigit = errors.New("invalid hex digit")

	// ErrEmptyDictionary is returned when a dictionary is built from an empty string.
	ErrEmptyDictionary = errors.New("empty dictionary")
	// ErrInvalidDictionary is returned when a dictionary contains a non-decimal character.
	ErrInvalidDictionary = errors.New("dictionary must contain only decimal digits")

	// ErrOutOfBounds is returned when a Match segment references past the dictionary end.
	ErrOutOfBounds = errors.New("match segment out of dictionary bounds")
	// ErrLengthMismatch is returned when a Match segment's decoded byte count disagrees
	// with its recorded original length.
	ErrLengthMismatch = errors.New("decoded length mismatch")
	// ErrInvalidSegment is returned for a segment with an unknown kind, an empty Raw
	// payload, or inconsistent Match fields.
	ErrInvalidSegment = errors.New("invalid segment")
	// ErrInvalidText is returned by DecompressString when the decoded bytes are not valid UTF-8.
	ErrInvalidText = errors.New("decoded bytes are not valid UTF-8")

	// ErrBadMagic is returned when a segment stream does not start with the expected magic.
	ErrBadMagic = errors.New("bad segment stream magic")
	// ErrUnsupportedVersion is returned when a segment stream declares an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported segment stream version")
	// ErrDictionaryMismatch is returned when a segment stream was produced against a
	// dictionary with a different fingerprint.
	ErrDictionaryMismatch = errors.New("dictionary fingerprint mismatch")
	// ErrChecksumMismatch is returned when a segment stream fails its CRC-32 check.
	ErrChecksumMismatch = errors.New("segment stream checksum mismatch")
	// ErrTruncated is returned when a segment stream ends before its declared contents.
	ErrTruncated = errors.New("truncated segment stream")
	// ErrInputTooLarge is returned when DecodeSegmentsFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
