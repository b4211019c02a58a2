package cbor

import (
	"bytes"
	"math"
	bigmath "math/big"
	"strconv"
)

// Kind identifies the variant held by an Item.
type Kind uint8

// Item kinds. The last three are produced only by the Decoder.
const (
	KindInvalid     Kind = iota
	KindUint             // major 0
	KindNegInt           // major 1
	KindBytes            // major 2
	KindText             // major 3
	KindArrayHeader      // major 4
	KindTag              // major 6
	KindFloat            // major 7, additional info 25..27
	KindSimple           // major 7, additional info 0..23
	KindBreak            // major 7, additional info 31

	KindArrayClose // end of the innermost array scope
	KindStreamEnd  // end of top-level input
	KindUnderflow  // input ended while items were still owed
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindNegInt:
		return "negint"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArrayHeader:
		return "array"
	case KindTag:
		return "tag"
	case KindFloat:
		return "float"
	case KindSimple:
		return "simple"
	case KindBreak:
		return "break"
	case KindArrayClose:
		return "array-close"
	case KindStreamEnd:
		return "stream-end"
	case KindUnderflow:
		return "underflow"
	default:
		return "<invalid>"
	}
}

// IsEvent reports whether k is a decoder-only pseudo-event.
func (k Kind) IsEvent() bool {
	return k == KindArrayClose || k == KindStreamEnd || k == KindUnderflow
}

// Item is a single CBOR data item or decoder event. The zero value has
// KindInvalid.
//
// Bytes and text items returned by the decoder reference the decoder's
// input buffer; they remain valid only as long as that buffer is neither
// released nor modified.
type Item struct {
	kind Kind
	// val holds the unsigned argument for integers, array headers, tags
	// and simple values, and the IEEE 754 bits for floats.
	val  uint64
	data []byte
}

var (
	arrayCloseItem = Item{kind: KindArrayClose}
	streamEndItem  = Item{kind: KindStreamEnd}
	underflowItem  = Item{kind: KindUnderflow}
)

// NewUint returns an unsigned integer item.
func NewUint(u uint64) Item { return Item{kind: KindUint, val: u} }

// NewInt returns an unsigned integer item for i >= 0 and a negative
// integer item otherwise.
func NewInt(i int64) Item {
	if i >= 0 {
		return Item{kind: KindUint, val: uint64(i)}
	}
	// -1-i == ^i in two's complement, and never overflows.
	return Item{kind: KindNegInt, val: uint64(^i)}
}

// NewNegIntArg returns a negative integer item from its wire argument n.
// The item's value is -(n+1), so the full range down to -2^64 is
// reachable.
func NewNegIntArg(n uint64) Item { return Item{kind: KindNegInt, val: n} }

// NewBytes returns a byte string item referencing b.
func NewBytes(b []byte) Item { return Item{kind: KindBytes, data: b} }

// NewText returns a text string item referencing b. The content is not
// checked for valid UTF-8.
func NewText(b []byte) Item { return Item{kind: KindText, data: b} }

// NewArrayHeader returns an array header declaring n children.
func NewArrayHeader(n uint64) Item { return Item{kind: KindArrayHeader, val: n} }

// NewTag returns a tag header. The tagged item is the next item in the
// sequence.
func NewTag(tag uint64) Item { return Item{kind: KindTag, val: tag} }

// NewFloat returns a floating point item.
func NewFloat(f float64) Item { return Item{kind: KindFloat, val: math.Float64bits(f)} }

// NewSimple returns a simple value item.
func NewSimple(v uint8) Item { return Item{kind: KindSimple, val: uint64(v)} }

// NewBool returns the simple value for true or false.
func NewBool(v bool) Item {
	if v {
		return NewSimple(simpleTrue)
	}
	return NewSimple(simpleFalse)
}

// NewNull returns the null simple value.
func NewNull() Item { return NewSimple(simpleNull) }

// NewUndefined returns the undefined simple value.
func NewUndefined() Item { return NewSimple(simpleUndefined) }

// NewBreak returns a break item.
func NewBreak() Item { return Item{kind: KindBreak} }

// Kind returns the variant held by the item.
func (it Item) Kind() Kind { return it.kind }

// Uint returns the value of an unsigned integer item and reports whether
// the item is one.
func (it Item) Uint() (uint64, bool) {
	return it.val, it.kind == KindUint
}

// NegArg returns the wire argument n of a negative integer item, whose
// value is -(n+1), and reports whether the item is one.
func (it Item) NegArg() (uint64, bool) {
	return it.val, it.kind == KindNegInt
}

// Int64 returns the value of an integer item as an int64 and reports
// whether the item is an integer whose value fits.
func (it Item) Int64() (int64, bool) {
	switch it.kind {
	case KindUint:
		return int64(it.val), it.val <= math.MaxInt64
	case KindNegInt:
		if it.val > math.MaxInt64 {
			return 0, false
		}
		return ^int64(it.val), true
	default:
		return 0, false
	}
}

// BigInt returns the exact value of an integer item, or nil for any
// other kind.
func (it Item) BigInt() *bigmath.Int {
	switch it.kind {
	case KindUint:
		return new(bigmath.Int).SetUint64(it.val)
	case KindNegInt:
		z := new(bigmath.Int).SetUint64(it.val)
		z.Add(z, bigOne)
		return z.Neg(z)
	default:
		return nil
	}
}

var bigOne = bigmath.NewInt(1)

// Bytes returns the payload of a byte or text string item, or nil for
// any other kind.
func (it Item) Bytes() []byte {
	if it.kind != KindBytes && it.kind != KindText {
		return nil
	}
	return it.data
}

// Float returns the value of a float item and reports whether the item
// is one.
func (it Item) Float() (float64, bool) {
	if it.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(it.val), true
}

// SimpleValue returns the code of a simple value item and reports whether
// the item is one.
func (it Item) SimpleValue() (uint8, bool) {
	return uint8(it.val), it.kind == KindSimple
}

// Len returns the declared child count of an array header, and zero for
// any other kind.
func (it Item) Len() uint64 {
	if it.kind != KindArrayHeader {
		return 0
	}
	return it.val
}

// TagNumber returns the tag number of a tag item and reports whether the
// item is one.
func (it Item) TagNumber() (uint64, bool) {
	return it.val, it.kind == KindTag
}

// Equal reports whether two items hold the same kind and value. Byte and
// text items compare by content. Floats compare by value, with any two
// NaNs considered equal and 0 and -0 distinguished.
func (it Item) Equal(o Item) bool {
	if it.kind != o.kind {
		return false
	}
	switch it.kind {
	case KindBytes, KindText:
		return bytes.Equal(it.data, o.data)
	case KindFloat:
		a, b := math.Float64frombits(it.val), math.Float64frombits(o.val)
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return a == b && math.Signbit(a) == math.Signbit(b)
	default:
		return it.val == o.val
	}
}

// String renders the item for display: integers as numbers, byte strings
// in single quotes and text strings in double quotes (invalid UTF-8
// replaced), array headers as Array(n).
func (it Item) String() string {
	switch it.kind {
	case KindUint:
		return strconv.FormatUint(it.val, 10)
	case KindNegInt:
		return formatNegInt(it.val)
	case KindBytes:
		return "'" + displayString(it.data) + "'"
	case KindText:
		return "\"" + displayString(it.data) + "\""
	case KindArrayHeader:
		return "Array(" + strconv.FormatUint(it.val, 10) + ")"
	case KindTag:
		return "Tag(" + strconv.FormatUint(it.val, 10) + ")"
	case KindFloat:
		return formatFloat(math.Float64frombits(it.val))
	case KindSimple:
		return strconv.FormatUint(it.val, 10)
	case KindBreak:
		return "Break"
	case KindArrayClose:
		return "ArrayClose"
	case KindStreamEnd:
		return "StreamEnd"
	case KindUnderflow:
		return "Underflow"
	default:
		return "<invalid>"
	}
}

// formatNegInt renders -(n+1) without overflowing when n is MaxUint64.
func formatNegInt(n uint64) string {
	if n == math.MaxUint64 {
		return "-18446744073709551616"
	}
	return "-" + strconv.FormatUint(n+1, 10)
}
