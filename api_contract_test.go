package picompress

import (
	"reflect"
	"testing"
)

func TestAPIContract_NilOptionsAreDefaults(t *testing.T) {
	data := []byte("nil options behave like defaults \xff")

	implicit := Compress(data, nil)
	explicit := Compress(data, DefaultCompressOptions())
	if !reflect.DeepEqual(implicit, explicit) {
		t.Fatal("Compress(nil) must match Compress(DefaultCompressOptions())")
	}

	outImplicit, err := Decompress(implicit, nil)
	if err != nil {
		t.Fatalf("Decompress(nil opts) failed: %v", err)
	}
	outExplicit, err := Decompress(explicit, DefaultDecompressOptions())
	if err != nil {
		t.Fatalf("Decompress(default opts) failed: %v", err)
	}
	if !reflect.DeepEqual(outImplicit, outExplicit) {
		t.Fatal("nil and default decompress options must agree")
	}
}

func TestAPIContract_SegmentRendering(t *testing.T) {
	cases := []struct {
		name string
		seg  Segment
		want string
	}{
		{
			name: "match",
			seg:  Segment{Kind: KindMatch, Pos: 5, HexLen: 4, Len: 2},
			want: "Pi[5] (2 bytes)",
		},
		{
			name: "raw-single",
			seg:  Segment{Kind: KindRaw, Raw: []byte{0xFF}},
			want: "Raw[0xFF]",
		},
		{
			name: "raw-run",
			seg:  Segment{Kind: KindRaw, Raw: []byte{0xDE, 0xAD}},
			want: "Raw[0xDEAD]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.seg.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAPIContract_LeftmostPositionIsStable(t *testing.T) {
	// Pinned observable behavior: when a hex key occurs at several dictionary
	// positions, the reported position is always the leftmost one.
	d := mustDict(t, "55005500550")

	segments := Compress([]byte{0x55}, &CompressOptions{Dict: d})
	if len(segments) != 1 || segments[0].Kind != KindMatch {
		t.Fatalf("unexpected segments: %v", segments)
	}
	if segments[0].Pos != 0 {
		t.Fatalf("Pos = %d, want leftmost occurrence 0", segments[0].Pos)
	}
}

func TestAPIContract_SegmentByteLen(t *testing.T) {
	if got := (Segment{Kind: KindMatch, Pos: 0, HexLen: 6, Len: 3}).ByteLen(); got != 3 {
		t.Fatalf("match ByteLen = %d, want 3", got)
	}
	if got := (Segment{Kind: KindRaw, Raw: []byte{1, 2}}).ByteLen(); got != 2 {
		t.Fatalf("raw ByteLen = %d, want 2", got)
	}
}
