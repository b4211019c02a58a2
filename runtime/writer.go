package cbor

import "strconv"

// Writer provides a minimal CBOR writer backed by ByteBuffer.
// Items are encoded canonically and concatenated in call order.
type Writer struct {
	bb *ByteBuffer
	n  int
}

// NewWriter constructs a Writer that appends to the provided ByteBuffer.
func NewWriter(bb *ByteBuffer) *Writer { return &Writer{bb: bb} }

// Bytes returns the underlying encoded bytes.
func (w *Writer) Bytes() []byte { return w.bb.Bytes() }

// Count returns the number of items written so far.
func (w *Writer) Count() int { return w.n }

// WriteItem writes a single item.
func (w *Writer) WriteItem(it Item) error {
	if err := w.bb.AppendItem(it); err != nil {
		return WrapError(err, "item "+strconv.Itoa(w.n))
	}
	w.n++
	return nil
}

// WriteItems writes items in order, stopping at the first error.
func (w *Writer) WriteItems(items ...Item) error {
	for _, it := range items {
		if err := w.WriteItem(it); err != nil {
			return err
		}
	}
	return nil
}

// WriteArray writes an array header for len(items) followed by the
// items themselves.
func (w *Writer) WriteArray(items ...Item) error {
	w.bb.AppendArrayHeader(uint64(len(items)))
	w.n++
	return w.WriteItems(items...)
}

// The typed writers below cover values that always encode, so they
// cannot fail.

// WriteUint64 writes a uint64 value.
func (w *Writer) WriteUint64(v uint64) {
	w.bb.AppendUint64(v)
	w.n++
}

// WriteInt64 writes an int64 value.
func (w *Writer) WriteInt64(v int64) {
	w.bb.AppendInt64(v)
	w.n++
}

// WriteFloat64 writes a float64 value in its shortest exact width.
func (w *Writer) WriteFloat64(v float64) {
	w.bb.AppendFloat(v)
	w.n++
}

func (w *Writer) WriteBool(v bool) {
	w.bb.AppendBool(v)
	w.n++
}

// WriteTag writes a tag header; the tagged item must be written next.
func (w *Writer) WriteTag(tag uint64) {
	w.bb.AppendTag(tag)
	w.n++
}
