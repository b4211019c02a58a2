package cbor

import (
	"io"
	"sync"
)

const (
	defaultBufferSize = 1024
	readChunk         = 32 << 10
)

// ByteBuffer is an append-only byte slice with pooled reuse. It backs the
// Writer and the text renderer.
//
// Buffers obtained from GetByteBuffer are empty. Anything returned by Bytes
// is invalid once the buffer goes back to the pool.
type ByteBuffer struct {
	b []byte
}

var (
	_ io.Writer       = (*ByteBuffer)(nil)
	_ io.StringWriter = (*ByteBuffer)(nil)
	_ io.ByteWriter   = (*ByteBuffer)(nil)
	_ io.ReaderFrom   = (*ByteBuffer)(nil)
)

var bbPool = sync.Pool{New: func() any { return &ByteBuffer{b: make([]byte, 0, defaultBufferSize)} }}

// GetByteBuffer takes an empty buffer from the pool.
func GetByteBuffer() *ByteBuffer {
	bb := bbPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// PutByteBuffer empties bb and returns it to the pool.
func PutByteBuffer(bb *ByteBuffer) {
	bb.Reset()
	bbPool.Put(bb)
}

// Bytes returns the buffered bytes.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

// Grow makes room for at least n more bytes, doubling capacity as needed.
func (bb *ByteBuffer) Grow(n int) {
	need := len(bb.b) + n
	if need <= cap(bb.b) {
		return
	}
	c := max(cap(bb.b), defaultBufferSize)
	for c < need {
		c <<= 1
	}
	nb := make([]byte, len(bb.b), c)
	copy(nb, bb.b)
	bb.b = nb
}

func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.b = append(bb.b, p...)
	return len(p), nil
}

func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.b = append(bb.b, s...)
	return len(s), nil
}

func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.b = append(bb.b, c)
	return nil
}

// ReadFrom reads r to EOF straight into the buffer's spare capacity.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if cap(bb.b)-len(bb.b) < readChunk {
			bb.Grow(readChunk)
		}
		n, err := r.Read(bb.b[len(bb.b):cap(bb.b)])
		bb.b = bb.b[:len(bb.b)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// AppendItem appends the canonical encoding of it. On error the buffer is
// left unchanged.
func (bb *ByteBuffer) AppendItem(it Item) error {
	bb.Grow(EncodedSize(it))
	o, err := AppendItem(bb.b, it)
	if err != nil {
		return err
	}
	bb.b = o
	return nil
}

// The chained appenders below mirror the package-level AppendXxx
// functions for values that always encode.

func (bb *ByteBuffer) AppendArrayHeader(sz uint64) *ByteBuffer {
	bb.b = AppendArrayHeader(bb.b, sz)
	return bb
}

func (bb *ByteBuffer) AppendUint64(u uint64) *ByteBuffer {
	bb.b = AppendUint64(bb.b, u)
	return bb
}

func (bb *ByteBuffer) AppendInt64(i int64) *ByteBuffer {
	bb.b = AppendInt64(bb.b, i)
	return bb
}

// AppendFloat appends f in its shortest exact width.
func (bb *ByteBuffer) AppendFloat(f float64) *ByteBuffer {
	bb.b = AppendFloatCanonical(bb.b, f)
	return bb
}

func (bb *ByteBuffer) AppendBool(v bool) *ByteBuffer {
	bb.b = AppendBool(bb.b, v)
	return bb
}

func (bb *ByteBuffer) AppendTag(tag uint64) *ByteBuffer {
	bb.b = AppendTag(bb.b, tag)
	return bb
}
