// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

// Stats summarizes a segment sequence.
type Stats struct {
	// Segments is the total segment count.
	Segments int
	// Matches is the number of Match segments.
	Matches int
	// Raws is the number of Raw segments.
	Raws int

	// InputBytes is the total original byte count the sequence stands for.
	InputBytes int
	// MatchedBytes is the portion of InputBytes covered by Match segments.
	MatchedBytes int
	// RawBytes is the portion of InputBytes carried as literals.
	RawBytes int

	// DictDigits is the total number of dictionary digits referenced.
	DictDigits int
	// LongestMatch is the largest Match byte length, 0 if none.
	LongestMatch int
}

// CollectStats walks a segment sequence and tallies its composition.
func CollectStats(segments []Segment) Stats {
	var st Stats
	st.Segments = len(segments)

	for _, s := range segments {
		n := s.ByteLen()
		st.InputBytes += n

		if s.Kind == KindMatch {
			st.Matches++
			st.MatchedBytes += n
			st.DictDigits += s.HexLen
			if n > st.LongestMatch {
				st.LongestMatch = n
			}
		} else {
			st.Raws++
			st.RawBytes += n
		}
	}

	return st
}

// MatchedShare returns the percentage of input bytes covered by matches.
func (st Stats) MatchedShare() float64 {
	if st.InputBytes == 0 {
		return 0
	}
	return 100 * float64(st.MatchedBytes) / float64(st.InputBytes)
}
