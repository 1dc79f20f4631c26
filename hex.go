// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

// hexTable maps a nibble to its lowercase hex character.
const hexTable = "0123456789abcdef"

// appendHex appends the lowercase two-digit hex form of each byte of src to dst.
func appendHex(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, hexTable[b>>4], hexTable[b&0x0f])
	}
	return dst
}

// hexEncode returns the lowercase hex string of src, two characters per byte.
func hexEncode(src []byte) string {
	return string(appendHex(make([]byte, 0, 2*len(src)), src))
}

// hexDecode decodes a hex string into bytes. Returns ErrOddLength for an
// odd-length input and ErrInvalidHexDigit for any non-hex character.
// Both lowercase and uppercase digits are accepted.
func hexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok := hexNibble(s[2*i])
		if !ok {
			return nil, ErrInvalidHexDigit
		}

		lo, ok := hexNibble(s[2*i+1])
		if !ok {
			return nil, ErrInvalidHexDigit
		}

		out[i] = hi<<4 | lo
	}

	return out, nil
}

// hexNibble converts one hex character to its 4-bit value.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// isDecimalByte reports whether both nibbles of b are decimal digits.
// Only such bytes can ever occur in an all-digit dictionary.
func isDecimalByte(b byte) bool {
	return b>>4 <= 9 && b&0x0f <= 9
}
