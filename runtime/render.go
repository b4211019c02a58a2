package cbor

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// RenderBytes renders the single item at the start of b as bracketed
// text, e.g. [1, [2, 3], "a"]. On error the text rendered so far is
// returned along with a *DecodeError.
func RenderBytes(b []byte) (string, error) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	err := Render(bb, NewDecoder(b))
	return string(bb.Bytes()), err
}

// Render writes every remaining event of d to bb until StreamEnd.
//
// Integers are written as numbers, byte strings as '...' and text strings
// as "..." (invalid UTF-8 replaced for display), arrays in brackets, tags
// as N(item). Separators between siblings are driven by d.HasNext.
func Render(bb *ByteBuffer, d *Decoder) error {
	// depths at which a tag is waiting for its item to complete
	var tags []int

	for {
		it, err := d.Next()
		if err != nil {
			if it.kind == KindUnderflow {
				bb.WriteString(it.String())
			}
			return err
		}

		switch it.kind {
		case KindStreamEnd:
			return nil
		case KindArrayHeader:
			bb.WriteByte('[')
			continue
		case KindTag:
			bb.WriteString(strconv.FormatUint(it.val, 10))
			bb.WriteByte('(')
			tags = append(tags, d.Depth())
			continue
		case KindArrayClose:
			bb.WriteByte(']')
		default:
			bb.WriteString(it.String())
		}

		for len(tags) > 0 && tags[len(tags)-1] == d.Depth() {
			bb.WriteByte(')')
			tags = tags[:len(tags)-1]
		}
		if d.HasNext() {
			bb.WriteString(", ")
		}
	}
}

// displayString converts b for display, replacing invalid UTF-8 with
// U+FFFD.
func displayString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
