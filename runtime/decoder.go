package cbor

import "errors"

// Decoder walks a CBOR buffer one item at a time. Array headers open a
// new scope whose children are the following items; the end of each scope
// is reported as an ArrayClose event and the end of input as StreamEnd.
//
// Nesting is tracked on an explicit stack of remaining child counts
// capped at the configured maximum depth, so hostile input cannot cause
// unbounded recursion or allocation. A Decoder borrows its buffer and is
// not safe for concurrent use.
type Decoder struct {
	buf []byte
	pos int

	// remaining[i] is the number of items still owed at nesting level i.
	remaining []uint64
	maxDepth  int
	seq       bool

	done    bool
	err     error
	errItem Item
}

// NewDecoder constructs a Decoder over b that reads a single top-level
// item, allowing DefaultMaxDepth levels of array nesting.
func NewDecoder(b []byte) *Decoder {
	d := &Decoder{maxDepth: DefaultMaxDepth}
	d.Reset(b)
	return d
}

// SetMaxDepth sets how many array scopes may be open at once. A value of
// zero rejects every array.
func (d *Decoder) SetMaxDepth(n int) {
	if n < 0 {
		n = 0
	}
	d.maxDepth = n
}

// SetSequence controls whether the decoder reads a CBOR sequence
// (RFC 8742): top-level items are decoded until the buffer is exhausted
// instead of stopping after the first one. It takes effect at the next
// Reset.
func (d *Decoder) SetSequence(seq bool) {
	d.seq = seq
}

// Reset starts a new decoding session over b, keeping the configuration
// and reusing the scope stack.
func (d *Decoder) Reset(b []byte) {
	d.buf = b
	d.pos = 0
	d.remaining = d.remaining[:0]
	if d.seq {
		d.remaining = append(d.remaining, 0)
	} else {
		d.remaining = append(d.remaining, 1)
	}
	d.done = false
	d.err = nil
	d.errItem = Item{}
}

// HasNext reports whether the current scope still owes items. It is
// false at the end of every array and at the end of input.
func (d *Decoder) HasNext() bool {
	if d.err != nil || d.done {
		return false
	}
	depth := len(d.remaining) - 1
	if d.remaining[depth] > 0 {
		return true
	}
	return depth == 0 && d.seq && d.pos < len(d.buf)
}

// Next returns the next item or event.
//
// When the current scope is exhausted Next returns ArrayClose, or
// StreamEnd at the top level; StreamEnd is returned again on every later
// call. If the input ends while items are still owed, Next returns an
// Underflow event with an error matching ErrTruncatedInput and consumes
// nothing. All errors are *DecodeError values carrying the offset of the
// offending item, and every error ends the session: later calls return
// the same item and error.
func (d *Decoder) Next() (Item, error) {
	if d.err != nil {
		return d.errItem, d.err
	}
	if d.done {
		return streamEndItem, nil
	}

	depth := len(d.remaining) - 1
	if d.remaining[depth] == 0 {
		if depth > 0 {
			d.remaining = d.remaining[:depth]
			return arrayCloseItem, nil
		}
		if !d.seq || d.pos >= len(d.buf) {
			d.done = true
			return streamEndItem, nil
		}
		d.remaining[0] = 1
	}
	d.remaining[depth]--

	if d.pos >= len(d.buf) {
		return d.fail(underflowItem, ErrTruncatedInput)
	}
	it, n, err := DecodeOne(d.buf[d.pos:])
	if err != nil {
		if errors.Is(err, ErrTruncatedInput) {
			return d.fail(underflowItem, err)
		}
		return d.fail(Item{}, err)
	}
	switch it.kind {
	case KindArrayHeader:
		if depth >= d.maxDepth {
			return d.fail(Item{}, DepthError{Limit: d.maxDepth})
		}
		d.remaining = append(d.remaining, it.val)
	case KindTag:
		// A tag prefixes the item that fills this slot.
		d.remaining[depth]++
	}
	d.pos += n
	return it, nil
}

func (d *Decoder) fail(it Item, err error) (Item, error) {
	d.errItem = it
	d.err = &DecodeError{Offset: d.pos, Err: err}
	return d.errItem, d.err
}

// Err returns the error that ended the session, if any.
func (d *Decoder) Err() error { return d.err }

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.pos }

// Depth returns the number of array scopes currently open.
func (d *Decoder) Depth() int { return len(d.remaining) - 1 }

// Remaining returns the unread portion of the underlying buffer.
func (d *Decoder) Remaining() []byte { return d.buf[d.pos:] }
