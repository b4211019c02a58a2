package cbor

import (
	"encoding/binary"
	"math"
)

var be = binary.BigEndian

// readArgument reads the argument carried by the initial byte of b and
// returns it along with the number of header bytes it occupies.
// The caller has already rejected reserved and indefinite additional info.
func readArgument(b []byte) (uint64, int, error) {
	addInfo := getAddInfo(b[0])

	switch addInfo {
	case addInfoUint8:
		if len(b) < 2 {
			return 0, 0, ErrTruncatedInput
		}
		return uint64(b[1]), 2, nil
	case addInfoUint16:
		if len(b) < 3 {
			return 0, 0, ErrTruncatedInput
		}
		return uint64(be.Uint16(b[1:])), 3, nil
	case addInfoUint32:
		if len(b) < 5 {
			return 0, 0, ErrTruncatedInput
		}
		return uint64(be.Uint32(b[1:])), 5, nil
	case addInfoUint64:
		if len(b) < 9 {
			return 0, 0, ErrTruncatedInput
		}
		return be.Uint64(b[1:]), 9, nil
	default:
		return uint64(addInfo), 1, nil
	}
}

// DecodeOne decodes the data item at the start of b and returns it with
// the number of bytes it occupies.
//
// Array and tag items are headers only: the children of an array and the
// content of a tag are the following items in b. Byte and text items
// reference b directly.
func DecodeOne(b []byte) (Item, int, error) {
	if len(b) < 1 {
		return Item{}, 0, ErrTruncatedInput
	}

	lead := b[0]
	major := getMajorType(lead)
	addInfo := getAddInfo(lead)

	if addInfo >= addInfoReserved0 && addInfo <= addInfoReserved2 {
		return Item{}, 0, InvalidAdditionalInfoError{Major: major, Info: addInfo}
	}
	if addInfo == addInfoIndefinite {
		if major == majorTypeSimple {
			return NewBreak(), 1, nil
		}
		return Item{}, 0, UnsupportedError{Major: major, Info: addInfo, What: "indefinite length"}
	}

	switch major {
	case majorTypeBytes, majorTypeText:
		if addInfo > addInfoDirect {
			return Item{}, 0, UnsupportedError{Major: major, Info: addInfo, What: "long-form string"}
		}
		end := 1 + int(addInfo)
		if len(b) < end {
			return Item{}, 0, ErrTruncatedInput
		}
		// Cap the view so appending to it can never write into b.
		data := b[1:end:end]
		if major == majorTypeBytes {
			return NewBytes(data), end, nil
		}
		return NewText(data), end, nil
	case majorTypeMap:
		return Item{}, 0, UnsupportedError{Major: major, Info: addInfo, What: "map"}
	case majorTypeSimple:
		if addInfo == addInfoUint8 {
			return Item{}, 0, UnsupportedError{Major: major, Info: addInfo, What: "two-byte simple value"}
		}
	}

	arg, n, err := readArgument(b)
	if err != nil {
		return Item{}, 0, err
	}

	switch major {
	case majorTypeUint:
		return NewUint(arg), n, nil
	case majorTypeNegInt:
		return NewNegIntArg(arg), n, nil
	case majorTypeArray:
		return NewArrayHeader(arg), n, nil
	case majorTypeTag:
		return NewTag(arg), n, nil
	default: // majorTypeSimple
		switch addInfo {
		case simpleFloat16:
			return NewFloat(halfToFloat64(uint16(arg))), n, nil
		case simpleFloat32:
			return NewFloat(float64(math.Float32frombits(uint32(arg)))), n, nil
		case simpleFloat64:
			return NewFloat(math.Float64frombits(arg)), n, nil
		default:
			return NewSimple(addInfo), n, nil
		}
	}
}

// NextKind returns the kind of the item at the start of b without
// decoding it, or KindInvalid when b is empty or the initial byte is not
// decodable by DecodeOne.
func NextKind(b []byte) Kind {
	if len(b) == 0 {
		return KindInvalid
	}
	major := getMajorType(b[0])
	addInfo := getAddInfo(b[0])
	if addInfo >= addInfoReserved0 && addInfo <= addInfoReserved2 {
		return KindInvalid
	}
	if addInfo == addInfoIndefinite {
		if major == majorTypeSimple {
			return KindBreak
		}
		return KindInvalid
	}
	switch major {
	case majorTypeUint:
		return KindUint
	case majorTypeNegInt:
		return KindNegInt
	case majorTypeBytes:
		if addInfo <= addInfoDirect {
			return KindBytes
		}
	case majorTypeText:
		if addInfo <= addInfoDirect {
			return KindText
		}
	case majorTypeArray:
		return KindArrayHeader
	case majorTypeTag:
		return KindTag
	case majorTypeSimple:
		switch {
		case addInfo <= addInfoDirect:
			return KindSimple
		case addInfo >= simpleFloat16 && addInfo <= simpleFloat64:
			return KindFloat
		}
	}
	return KindInvalid
}
