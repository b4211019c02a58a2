package cbor

import (
	"math"
	"strconv"

	"github.com/x448/float16"
)

// halfToFloat64 widens IEEE 754 binary16 bits. Subnormals, infinities and
// NaN payloads are preserved; the widening is exact.
func halfToFloat64(h uint16) float64 {
	return float64(float16.Frombits(h).Float32())
}

// shortestFloat reports the narrowest IEEE width (16, 32 or 64) that
// represents f exactly, together with the bits for that width.
//
// NaN never compares equal after narrowing, so it keeps all 64 bits and
// its payload.
func shortestFloat(f float64) (width int, bits uint64) {
	f32 := float32(f)
	if float64(f32) != f {
		return 64, math.Float64bits(f)
	}
	// A value exact in binary16 is exact in binary32, so checking the
	// round trip through f32 is sufficient.
	if h := float16.Fromfloat32(f32); float64(h.Float32()) == f {
		return 16, uint64(h.Bits())
	}
	return 32, uint64(math.Float32bits(f32))
}

// formatFloat renders f for display in the shortest decimal form that
// reads back to the same value.
func formatFloat(f float64) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	af := math.Abs(f)
	// Prefer fixed-point for reasonable magnitudes
	if af == 0 || (af >= 1e-6 && af < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
