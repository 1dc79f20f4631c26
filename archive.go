// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// Segment stream layout:
//
//	magic "PIC1" (4) | version (1) | dictionary fingerprint xxhash64 LE (8)
//	| uvarint segment count
//	| per segment: tag (1); match: uvarint pos, uvarint byteLen;
//	               raw:   uvarint n, n literal bytes
//	| CRC-32 IEEE of everything above, LE (4)
const (
	streamMagic   = "PIC1"
	streamVersion = 1

	tagMatch = 0
	tagRaw   = 1

	streamHeaderSize  = len(streamMagic) + 1 + 8
	streamTrailerSize = 4
)

// crcTable is the IEEE CRC-32 table used for the stream trailer.
var crcTable = crc32.MakeTable(crc32.IEEE)

// EncodeSegments packs a segment sequence into a self-checking byte stream.
// opts may be nil (uses the built-in pi dictionary for the fingerprint).
// Returns ErrInvalidSegment for segments Decompress would reject structurally
// (unknown kind, empty Raw, inconsistent Match fields).
func EncodeSegments(segments []Segment, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	dict := opts.dict()

	out := make([]byte, 0, streamHeaderSize+8*len(segments)+streamTrailerSize)
	out = append(out, streamMagic...)
	out = append(out, streamVersion)
	out = binary.LittleEndian.AppendUint64(out, dict.Fingerprint())
	out = binary.AppendUvarint(out, uint64(len(segments)))

	for _, s := range segments {
		switch s.Kind {
		case KindMatch:
			if s.Pos < 0 || s.Len <= 0 || s.HexLen != 2*s.Len {
				return nil, ErrInvalidSegment
			}

			out = append(out, tagMatch)
			out = binary.AppendUvarint(out, uint64(s.Pos))
			out = binary.AppendUvarint(out, uint64(s.Len))

		case KindRaw:
			if len(s.Raw) == 0 {
				return nil, ErrInvalidSegment
			}

			out = append(out, tagRaw)
			out = binary.AppendUvarint(out, uint64(len(s.Raw)))
			out = append(out, s.Raw...)

		default:
			return nil, ErrInvalidSegment
		}
	}

	out = binary.LittleEndian.AppendUint32(out, crc32.Checksum(out, crcTable))

	return out, nil
}

// DecodeSegments unpacks a segment stream produced by EncodeSegments.
// opts may be nil (uses the built-in pi dictionary). The stream must carry
// the fingerprint of the configured dictionary (ErrDictionaryMismatch
// otherwise) and an intact CRC-32 trailer (ErrChecksumMismatch).
func DecodeSegments(data []byte, opts *DecompressOptions) ([]Segment, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	dict := opts.dict()

	if len(data) < streamHeaderSize+streamTrailerSize {
		return nil, ErrTruncated
	}

	if string(data[:len(streamMagic)]) != streamMagic {
		return nil, ErrBadMagic
	}

	body := data[:len(data)-streamTrailerSize]
	want := binary.LittleEndian.Uint32(data[len(data)-streamTrailerSize:])
	if crc32.Checksum(body, crcTable) != want {
		return nil, ErrChecksumMismatch
	}

	pos := len(streamMagic)
	if body[pos] != streamVersion {
		return nil, ErrUnsupportedVersion
	}
	pos++

	if binary.LittleEndian.Uint64(body[pos:]) != dict.Fingerprint() {
		return nil, ErrDictionaryMismatch
	}
	pos += 8

	count, n := binary.Uvarint(body[pos:])
	if n <= 0 {
		return nil, ErrTruncated
	}
	pos += n

	// Each segment needs at least one body byte; cap preallocation so a forged
	// count cannot force a huge (or overflowed) allocation.
	segCap := len(body)
	if count < uint64(segCap) {
		segCap = int(count)
	}
	segments := make([]Segment, 0, segCap)
	for i := uint64(0); i < count; i++ {
		if pos >= len(body) {
			return nil, ErrTruncated
		}

		tag := body[pos]
		pos++

		switch tag {
		case tagMatch:
			p, n := binary.Uvarint(body[pos:])
			if n <= 0 {
				return nil, ErrTruncated
			}
			pos += n

			l, n := binary.Uvarint(body[pos:])
			if n <= 0 || l == 0 {
				return nil, ErrTruncated
			}
			pos += n

			segments = append(segments, matchSegment(int(p), int(l)))

		case tagRaw:
			l, n := binary.Uvarint(body[pos:])
			if n <= 0 || l == 0 {
				return nil, ErrTruncated
			}
			pos += n

			if pos+int(l) > len(body) {
				return nil, ErrTruncated
			}

			segments = append(segments, rawSegment(body[pos:pos+int(l)]...))
			pos += int(l)

		default:
			return nil, ErrInvalidSegment
		}
	}

	if pos != len(body) {
		return nil, ErrTruncated
	}

	return segments, nil
}

// DecodeSegmentsFromReader reads the full stream then calls DecodeSegments.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecodeSegmentsFromReader(r io.Reader, opts *DecompressOptions) ([]Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(data) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return DecodeSegments(data, opts)
}
