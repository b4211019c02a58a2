package tests

import (
	"encoding/hex"
	"errors"
	"math"
	"testing"
	"time"

	cbor "github.com/synadia-labs/cborstream/runtime"
)

// readTagged decodes a single tag followed by a scalar item.
func readTagged(t *testing.T, b []byte) (uint64, cbor.Item) {
	t.Helper()
	d := cbor.NewDecoder(b)
	tagItem, err := d.Next()
	if err != nil {
		t.Fatalf("tag read err: %v", err)
	}
	tag, ok := tagItem.TagNumber()
	if !ok {
		t.Fatalf("expected tag, got %v", tagItem)
	}
	if !d.HasNext() {
		t.Fatalf("tag must be followed by content")
	}
	content, err := d.Next()
	if err != nil {
		t.Fatalf("content read err: %v", err)
	}
	end, err := d.Next()
	if err != nil || end.Kind() != cbor.KindStreamEnd {
		t.Fatalf("expected StreamEnd, got %v err=%v", end, err)
	}
	return tag, content
}

func TestTag1_Time_IntAndFloat(t *testing.T) {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)

	// Integer seconds
	ti := time.Unix(1700000000, 0).UTC()
	w := cbor.NewWriter(bb)
	w.WriteTag(1)
	w.WriteInt64(ti.Unix())
	tag, content := readTagged(t, w.Bytes())
	secs, ok := content.Int64()
	if tag != 1 || !ok || !time.Unix(secs, 0).Equal(ti) {
		t.Fatalf("int time mismatch: tag=%d content=%v", tag, content)
	}

	// Fractional seconds
	bb.Reset()
	tf := time.Unix(1700000001, 500_000_000).UTC()
	w = cbor.NewWriter(bb)
	w.WriteTag(1)
	w.WriteFloat64(float64(tf.UnixNano()) / 1e9)
	tag, content = readTagged(t, w.Bytes())
	f, ok := content.Float()
	if tag != 1 || !ok {
		t.Fatalf("float time: tag=%d content=%v", tag, content)
	}
	sec, frac := math.Modf(f)
	got := time.Unix(int64(sec), int64(frac*1e9)).UTC()
	if !got.Equal(tf) {
		t.Fatalf("float time mismatch: got %v want %v", got, tf)
	}
}

func TestTagNumberWidths(t *testing.T) {
	cases := []struct {
		tag     uint64
		wantHex string
	}{
		{0, "c0"},
		{23, "d7"},
		{24, "d818"},
		{32, "d820"},
		{55799, "d9d9f7"},
		{1 << 20, "da00100000"},
		{math.MaxUint64, "dbffffffffffffffff"},
	}
	for _, tc := range cases {
		b := cbor.AppendTag(nil, tc.tag)
		if got := hex.EncodeToString(b); got != tc.wantHex {
			t.Fatalf("tag %d: got %s want %s", tc.tag, got, tc.wantHex)
		}
		tag, content := readTagged(t, cbor.AppendNil(b))
		if tag != tc.tag || !content.Equal(cbor.NewNull()) {
			t.Fatalf("tag %d: decoded %d(%v)", tc.tag, tag, content)
		}
	}
}

func TestSelfDescribeAndNestedTags(t *testing.T) {
	// 55799(32("a")) in an array followed by 2: [55799(32("a")), 2]
	b := mustHex(t, "82d9d9f7d8206161" + "02")
	got, err := cbor.RenderBytes(b)
	if err != nil {
		t.Fatalf("render err: %v", err)
	}
	if want := "[55799(32(\"a\")), 2]"; got != want {
		t.Fatalf("render mismatch: got %q want %q", got, want)
	}
}

func TestTagDoesNotCountAsArrayChild(t *testing.T) {
	// [1(2), 3] has two children even though it holds three headers.
	b := mustHex(t, "82c10203")
	var kinds []cbor.Kind
	d := cbor.NewDecoder(b)
	for {
		it, err := d.Next()
		if err != nil {
			t.Fatalf("decode err: %v", err)
		}
		kinds = append(kinds, it.Kind())
		if it.Kind() == cbor.KindStreamEnd {
			break
		}
	}
	want := []cbor.Kind{
		cbor.KindArrayHeader, cbor.KindTag, cbor.KindUint, cbor.KindUint,
		cbor.KindArrayClose, cbor.KindStreamEnd,
	}
	if len(kinds) != len(want) {
		t.Fatalf("event count: got %v want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event %d: got %v want %v", i, kinds[i], want[i])
		}
	}
}

func TestTagNegativeCases(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want error
	}{
		{"tag_at_end", "c1", cbor.ErrTruncatedInput},
		{"tag_at_end_of_array", "8201c1", cbor.ErrTruncatedInput},
		{"tag_number_truncated", "d9d9", cbor.ErrTruncatedInput},
		{"tag_on_map", "c1a0", cbor.ErrUnsupported},
		{"tag_reserved", "dc", cbor.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cbor.ValidateBytes(mustHex(t, tc.hex), cbor.DefaultMaxDepth)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
