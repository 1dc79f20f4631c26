// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import "fmt"

// SegmentKind distinguishes dictionary back-references from literal bytes.
type SegmentKind uint8

const (
	// KindMatch is a back-reference into the dictionary.
	KindMatch SegmentKind = iota
	// KindRaw is a run of literal bytes carried verbatim.
	KindRaw
)

// Segment is one unit of the compressed representation: either a dictionary
// back-reference (Pos/HexLen/Len set, Raw nil) or a literal run (Raw set).
// Concatenating the byte lengths of a sequence reproduces the input length.
type Segment struct {
	Kind SegmentKind

	// Pos is the dictionary digit offset of the hex key (Match only).
	Pos int
	// HexLen is the number of dictionary digits consumed (Match only).
	// Always even and equal to 2*Len for segments produced by Compress.
	HexLen int
	// Len is the original byte count the match stands for (Match only).
	Len int

	// Raw holds the literal bytes (Raw only, never empty).
	Raw []byte
}

// matchSegment builds a back-reference covering byteLen input bytes.
func matchSegment(pos, byteLen int) Segment {
	return Segment{Kind: KindMatch, Pos: pos, HexLen: 2 * byteLen, Len: byteLen}
}

// rawSegment builds a literal segment holding a copy of b.
func rawSegment(b ...byte) Segment {
	return Segment{Kind: KindRaw, Raw: append([]byte(nil), b...)}
}

// ByteLen returns the number of original input bytes this segment stands for.
func (s Segment) ByteLen() int {
	if s.Kind == KindRaw {
		return len(s.Raw)
	}
	return s.Len
}

// String renders the segment in the tool's display form:
// "Pi[<position>] (<n> bytes)" for a match, "Raw[0x<HH...>]" for literals.
func (s Segment) String() string {
	if s.Kind == KindRaw {
		return fmt.Sprintf("Raw[0x%X]", s.Raw)
	}
	return fmt.Sprintf("Pi[%d] (%d bytes)", s.Pos, s.Len)
}

// totalByteLen sums the original byte counts of a segment sequence.
func totalByteLen(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.ByteLen()
	}
	return total
}
