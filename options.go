// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

// CompressOptions configures compression.
type CompressOptions struct {
	// Dict is the lookup dictionary (nil = built-in pi digits).
	Dict *Dictionary
	// CoalesceRaw merges consecutive unmatchable bytes into one Raw segment.
	// Off by default: the classic behavior emits one Raw segment per literal byte.
	CoalesceRaw bool
}

// DefaultCompressOptions returns options using the built-in pi dictionary
// and single-byte Raw segments.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures decompression and segment-stream decoding.
type DecompressOptions struct {
	// Dict is the lookup dictionary (nil = built-in pi digits).
	Dict *Dictionary
	// MaxInputSize limits how many bytes DecodeSegmentsFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options using the built-in pi dictionary
// and no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// dict resolves the configured dictionary, defaulting to the built-in pi digits.
func (o *CompressOptions) dict() *Dictionary {
	if o == nil || o.Dict == nil {
		return Pi()
	}
	return o.Dict
}

// dict resolves the configured dictionary, defaulting to the built-in pi digits.
func (o *DecompressOptions) dict() *Dictionary {
	if o == nil || o.Dict == nil {
		return Pi()
	}
	return o.Dict
}
