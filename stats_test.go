package picompress

import "testing"

func TestCollectStats(t *testing.T) {
	segments := []Segment{
		{Kind: KindMatch, Pos: 0, HexLen: 4, Len: 2},
		{Kind: KindRaw, Raw: []byte{0xFF}},
		{Kind: KindMatch, Pos: 10, HexLen: 2, Len: 1},
		{Kind: KindRaw, Raw: []byte{0xFE, 0xAB}},
	}

	st := CollectStats(segments)

	if st.Segments != 4 || st.Matches != 2 || st.Raws != 2 {
		t.Fatalf("segment counts: %+v", st)
	}
	if st.InputBytes != 6 {
		t.Fatalf("InputBytes = %d, want 6", st.InputBytes)
	}
	if st.MatchedBytes != 3 || st.RawBytes != 3 {
		t.Fatalf("byte split: matched=%d raw=%d, want 3/3", st.MatchedBytes, st.RawBytes)
	}
	if st.DictDigits != 6 {
		t.Fatalf("DictDigits = %d, want 6", st.DictDigits)
	}
	if st.LongestMatch != 2 {
		t.Fatalf("LongestMatch = %d, want 2", st.LongestMatch)
	}
	if got := st.MatchedShare(); got != 50 {
		t.Fatalf("MatchedShare = %v, want 50", got)
	}
}

func TestCollectStats_Empty(t *testing.T) {
	st := CollectStats(nil)
	if st.Segments != 0 || st.InputBytes != 0 {
		t.Fatalf("unexpected stats for empty sequence: %+v", st)
	}
	if st.MatchedShare() != 0 {
		t.Fatal("MatchedShare of empty sequence must be 0")
	}
}

func TestCollectStats_MatchesCompressOutput(t *testing.T) {
	data := []byte("statistics for 3.14159 and \xff\xfe")
	segments := Compress(data, nil)

	st := CollectStats(segments)
	if st.InputBytes != len(data) {
		t.Fatalf("InputBytes = %d, want %d", st.InputBytes, len(data))
	}
	if st.MatchedBytes+st.RawBytes != st.InputBytes {
		t.Fatal("matched and raw bytes must partition the input")
	}
	if st.Matches+st.Raws != st.Segments {
		t.Fatal("match and raw counts must partition the segments")
	}
}
