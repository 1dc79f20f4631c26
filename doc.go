// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

/*
Package picompress encodes arbitrary bytes as back-references into a fixed
string of decimal digits (by default the first 10,000 digits of pi) and
reconstructs the original bytes from that reference sequence.

Each candidate input run is rendered as its lowercase hex string and looked up
as a substring of the digit dictionary. The compressor is strictly greedy: at
every input position it takes the longest run whose hex form occurs in the
dictionary (leftmost occurrence wins) and falls back to a single literal byte
when no run of any length matches. Because the dictionary holds only '0'–'9',
a byte can match only when both of its nibbles are decimal; everything else
becomes a literal.

This is a toy in the lineage of πfs: output is usually several times larger
than the input. What it guarantees is losslessness and determinism, not ratio.

# Compress and decompress

Options may be nil (uses the built-in pi dictionary):

	segments := picompress.Compress(data, nil)
	out, err := picompress.Decompress(segments, nil)

With a custom dictionary:

	dict, err := picompress.NewDictionary("141421356237309504880168")
	segments = picompress.Compress(data, &picompress.CompressOptions{Dict: dict})

For text callers, DecompressString additionally validates UTF-8:

	text, err := picompress.DecompressString(segments, nil)

# Serialization

A segment sequence can be packed into a self-checking byte stream that carries
the dictionary fingerprint and a CRC-32 trailer:

	blob, err := picompress.EncodeSegments(segments, nil)
	segments, err = picompress.DecodeSegments(blob, nil)
*/
package picompress
