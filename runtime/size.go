package cbor

import "math"

// Worst-case encoded sizes. For byte and text strings the total encoded
// size is the prefix size plus the length of the value.
const (
	Uint64Size       = 9
	Int64Size        = Uint64Size
	ArrayHeaderSize  = 9
	TagSize          = 9
	Float64Size      = 9
	SimpleSize       = 1
	ShortStringLimit = addInfoDirect
)

// EncodedSize returns the exact number of bytes AppendItem writes for it,
// or zero if it cannot be encoded.
func EncodedSize(it Item) int {
	switch it.kind {
	case KindUint, KindNegInt, KindArrayHeader, KindTag:
		return uintCoreSize(it.val)
	case KindBytes, KindText:
		if len(it.data) > ShortStringLimit {
			return 0
		}
		return 1 + len(it.data)
	case KindFloat:
		switch width, _ := shortestFloat(math.Float64frombits(it.val)); width {
		case 16:
			return 3
		case 32:
			return 5
		default:
			return Float64Size
		}
	case KindSimple, KindBreak:
		return SimpleSize
	default:
		return 0
	}
}

// Require ensures that b has capacity for at least n additional bytes
// without reallocation. It returns a slice that shares the original
// contents and has sufficient capacity for appending n bytes.
func Require(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}
