package benchmarks

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	msgp "github.com/tinylib/msgp/msgp"

	cbor "github.com/synadia-labs/cborstream/runtime"
)

// Primitive encode microbenchmarks comparing this CBOR runtime against
// tinylib/msgp's MessagePack runtime and fxamacker/cbor for similar
// operations.

func BenchmarkCBOR_AppendInt64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = cbor.AppendInt64(out[:0], int64(i)-int64(b.N/2))
	}
	_ = out
}

func BenchmarkMsgp_AppendInt64(b *testing.B) {
	var out []byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendInt64(out[:0], int64(i)-int64(b.N/2))
	}
	_ = out
}

func BenchmarkCBOR_AppendFloatCanonical(b *testing.B) {
	var out []byte
	vals := []float64{1.5, 100000, 1.1, 65504}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = cbor.AppendFloatCanonical(out[:0], vals[i%len(vals)])
	}
	_ = out
}

func BenchmarkMsgp_AppendFloat64(b *testing.B) {
	var out []byte
	vals := []float64{1.5, 100000, 1.1, 65504}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendFloat64(out[:0], vals[i%len(vals)])
	}
	_ = out
}

func BenchmarkFxamacker_MarshalFloat(b *testing.B) {
	opts := fxcbor.CoreDetEncOptions()
	opts.ShortestFloat = fxcbor.ShortestFloat16
	em, err := opts.EncMode()
	if err != nil {
		b.Fatalf("EncMode: %v", err)
	}
	vals := []float64{1.5, 100000, 1.1, 65504}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := em.Marshal(vals[i%len(vals)]); err != nil {
			b.Fatalf("Marshal: %v", err)
		}
	}
}

func BenchmarkCBOR_AppendShortBytes(b *testing.B) {
	var out []byte
	data := []byte("payload bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, _ = cbor.AppendShortBytes(out[:0], data)
	}
	_ = out
}

func BenchmarkMsgp_AppendBytes(b *testing.B) {
	var out []byte
	data := []byte("payload bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = msgp.AppendBytes(out[:0], data)
	}
	_ = out
}
