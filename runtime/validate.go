package cbor

// ValidateBytes checks that the next data item in b, including all array
// children and tagged content, is decodable with at most maxDepth levels
// of array nesting, and returns the bytes after it.
// Checks performed:
// - reserved additional info values 28, 29, 30 are rejected
// - array counts and arguments do not run past the end of b
// - only supported major types and forms appear
func ValidateBytes(b []byte, maxDepth int) (rest []byte, err error) {
	d := NewDecoder(b)
	d.SetMaxDepth(maxDepth)
	if err := drain(d); err != nil {
		return b, err
	}
	return d.Remaining(), nil
}

// ValidateSequence checks that b is a CBOR sequence of decodable items,
// consuming the whole buffer.
func ValidateSequence(b []byte, maxDepth int) error {
	d := NewDecoder(nil)
	d.SetMaxDepth(maxDepth)
	d.SetSequence(true)
	d.Reset(b)
	return drain(d)
}

func drain(d *Decoder) error {
	for {
		it, err := d.Next()
		if err != nil {
			return err
		}
		if it.kind == KindStreamEnd {
			return nil
		}
	}
}
