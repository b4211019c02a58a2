package cbor

import (
	"math"
	"strconv"
)

// ensure 'sz' extra bytes in 'b' btw len(b) and cap(b)
func ensure(b []byte, sz int) ([]byte, int) {
	l := len(b)
	c := cap(b)
	if c-l < sz {
		o := make([]byte, (2*c)+sz) // exponential growth
		n := copy(o, b)
		return o[:n+sz], n
	}
	return b[:l+sz], l
}

// appendUintCore encodes an unsigned argument with the given major type
// using the shortest of the five header forms.
func appendUintCore(b []byte, majorType uint8, u uint64) []byte {
	switch {
	case u <= addInfoDirect:
		return append(b, makeByte(majorType, uint8(u)))
	case u <= math.MaxUint8:
		o, n := ensure(b, 2)
		o[n] = makeByte(majorType, addInfoUint8)
		o[n+1] = uint8(u)
		return o
	case u <= math.MaxUint16:
		o, n := ensure(b, 3)
		o[n] = makeByte(majorType, addInfoUint16)
		be.PutUint16(o[n+1:], uint16(u))
		return o
	case u <= math.MaxUint32:
		o, n := ensure(b, 5)
		o[n] = makeByte(majorType, addInfoUint32)
		be.PutUint32(o[n+1:], uint32(u))
		return o
	default:
		o, n := ensure(b, 9)
		o[n] = makeByte(majorType, addInfoUint64)
		be.PutUint64(o[n+1:], u)
		return o
	}
}

// uintCoreSize returns the encoded size of a header carrying u.
func uintCoreSize(u uint64) int {
	switch {
	case u <= addInfoDirect:
		return 1
	case u <= math.MaxUint8:
		return 2
	case u <= math.MaxUint16:
		return 3
	case u <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// AppendUint64 appends an unsigned integer
func AppendUint64(b []byte, u uint64) []byte {
	return appendUintCore(b, majorTypeUint, u)
}

// AppendNegInt appends the negative integer -(n+1) given its wire
// argument n.
func AppendNegInt(b []byte, n uint64) []byte {
	return appendUintCore(b, majorTypeNegInt, n)
}

// AppendInt64 appends an int64 using canonical CBOR integer encoding.
//
// Negative values are written with major type 1 and argument -1-i, which
// is the bitwise complement of i and cannot overflow at math.MinInt64.
func AppendInt64(b []byte, i int64) []byte {
	if i >= 0 {
		return appendUintCore(b, majorTypeUint, uint64(i))
	}
	return appendUintCore(b, majorTypeNegInt, uint64(^i))
}

// AppendArrayHeader appends an array header declaring sz children.
func AppendArrayHeader(b []byte, sz uint64) []byte {
	return appendUintCore(b, majorTypeArray, sz)
}

// AppendTag appends a semantic tag header. The tagged item must be
// appended next.
func AppendTag(b []byte, tag uint64) []byte {
	return appendUintCore(b, majorTypeTag, tag)
}

// AppendFloat64 appends a float64 in full 9-byte form
func AppendFloat64(b []byte, f float64) []byte {
	o, n := ensure(b, 9)
	o[n] = makeByte(majorTypeSimple, simpleFloat64)
	be.PutUint64(o[n+1:], math.Float64bits(f))
	return o
}

// AppendFloatCanonical appends the shortest-width float (f16/f32/f64) that
// preserves the value exactly. Negative zero keeps its sign; NaN is
// written as a full double with its payload intact.
func AppendFloatCanonical(b []byte, f float64) []byte {
	width, bits := shortestFloat(f)
	switch width {
	case 16:
		o, n := ensure(b, 3)
		o[n] = makeByte(majorTypeSimple, simpleFloat16)
		be.PutUint16(o[n+1:], uint16(bits))
		return o
	case 32:
		o, n := ensure(b, 5)
		o[n] = makeByte(majorTypeSimple, simpleFloat32)
		be.PutUint32(o[n+1:], uint32(bits))
		return o
	default:
		return AppendFloat64(b, f)
	}
}

// AppendSimple appends a simple value. Only false (20), true (21),
// null (22), undefined (23) and break (31) are accepted; any other code
// returns a SimpleValueError and leaves b unchanged.
func AppendSimple(b []byte, val uint8) ([]byte, error) {
	switch val {
	case simpleFalse, simpleTrue, simpleNull, simpleUndefined, simpleBreak:
		return append(b, makeByte(majorTypeSimple, val)), nil
	default:
		return b, SimpleValueError{Value: val}
	}
}

// AppendBool appends a bool
func AppendBool(b []byte, val bool) []byte {
	if val {
		return append(b, makeByte(majorTypeSimple, simpleTrue))
	}
	return append(b, makeByte(majorTypeSimple, simpleFalse))
}

// AppendNil appends a null value
func AppendNil(b []byte) []byte {
	return append(b, makeByte(majorTypeSimple, simpleNull))
}

// AppendBreak appends a break marker (0xff)
func AppendBreak(b []byte) []byte {
	return append(b, makeByte(majorTypeSimple, simpleBreak))
}

// AppendShortBytes appends a byte string of at most 23 bytes.
func AppendShortBytes(b []byte, data []byte) ([]byte, error) {
	return appendShortString(b, majorTypeBytes, data)
}

// AppendShortText appends a text string of at most 23 bytes. The content
// is written as given, without UTF-8 validation.
func AppendShortText(b []byte, data []byte) ([]byte, error) {
	return appendShortString(b, majorTypeText, data)
}

func appendShortString(b []byte, majorType uint8, data []byte) ([]byte, error) {
	if len(data) > addInfoDirect {
		return b, UnsupportedError{Major: majorType, Info: addInfoUint8, What: "long-form string"}
	}
	o, n := ensure(b, 1+len(data))
	o[n] = makeByte(majorType, uint8(len(data)))
	copy(o[n+1:], data)
	return o, nil
}

// AppendItem appends the canonical encoding of it to b. Decoder-only
// events cannot be encoded and return ErrUnsupported.
func AppendItem(b []byte, it Item) ([]byte, error) {
	switch it.kind {
	case KindUint:
		return AppendUint64(b, it.val), nil
	case KindNegInt:
		return AppendNegInt(b, it.val), nil
	case KindBytes:
		return AppendShortBytes(b, it.data)
	case KindText:
		return AppendShortText(b, it.data)
	case KindArrayHeader:
		return AppendArrayHeader(b, it.val), nil
	case KindTag:
		return AppendTag(b, it.val), nil
	case KindFloat:
		return AppendFloatCanonical(b, math.Float64frombits(it.val)), nil
	case KindSimple:
		return AppendSimple(b, uint8(it.val))
	case KindBreak:
		return AppendBreak(b), nil
	default:
		return b, UnsupportedError{Major: majorTypeSimple, What: it.kind.String() + " event"}
	}
}

// Encode returns the canonical encoding of it.
func Encode(it Item) ([]byte, error) {
	return AppendItem(Require(nil, EncodedSize(it)), it)
}

// AppendSequence appends the encodings of items in order. Array contents
// are not implied: an array header must be followed by exactly that many
// child items in the sequence.
func AppendSequence(b []byte, items ...Item) ([]byte, error) {
	for i, it := range items {
		var err error
		b, err = AppendItem(b, it)
		if err != nil {
			return b, WrapError(err, "item "+strconv.Itoa(i))
		}
	}
	return b, nil
}

// EncodeSequence returns the concatenated encodings of items.
func EncodeSequence(items ...Item) ([]byte, error) {
	sz := 0
	for _, it := range items {
		sz += EncodedSize(it)
	}
	return AppendSequence(Require(nil, sz), items...)
}
