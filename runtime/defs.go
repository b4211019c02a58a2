// Package cbor is a streaming decoder and canonical encoder for the
// Concise Binary Object Representation (RFC 8949).
//
// The package works on flat sequences of data items rather than on Go
// object graphs. Decoding yields one Item event per data item, with array
// headers reported separately from their children:
//
//	d := cbor.NewDecoder(buf)
//	for {
//		it, err := d.Next()
//		if err != nil || it.Kind() == cbor.KindStreamEnd {
//			break
//		}
//		...
//	}
//
// Encoding mirrors that shape. An array is written as its header followed
// by exactly that many child items:
//
//	b, err := cbor.EncodeSequence(cbor.NewArrayHeader(2), cbor.NewUint(1), cbor.NewInt(-1))
//
// Two families of encoding functions are provided:
//   - AppendXxxx() appends a single canonical encoding to a []byte.
//   - (*Writer).WriteXxxx() writes items to a pooled *ByteBuffer.
//
// Supported wire features are major types 0, 1, 4, 6 and 7, plus short-form
// (0..23 byte) byte and text strings. Maps, indefinite lengths and long-form
// strings are reported as ErrUnsupported.
package cbor

// DefaultMaxDepth is the array nesting a Decoder accepts unless configured
// otherwise with SetMaxDepth.
const DefaultMaxDepth = 3

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoReserved0  = 28
	addInfoReserved2  = 30
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map)
)

// Simple values in major type 7
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
