package cbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cbor "github.com/synadia-labs/cborstream/runtime"
)

func TestValidateBytes(t *testing.T) {
	rest, err := cbor.ValidateBytes(mustHex(t, "82c10102ff"), cbor.DefaultMaxDepth)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, rest)

	cases := []struct {
		name     string
		cborHex  string
		maxDepth int
		want     error
	}{
		{"truncated_array", "830102", 3, cbor.ErrTruncatedInput},
		{"reserved_info", "821d00", 3, cbor.ErrMalformedInput},
		{"map_child", "81a0", 3, cbor.ErrUnsupported},
		{"too_deep", "8180", 1, cbor.ErrDepthExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustHex(t, tc.cborHex)
			rest, err := cbor.ValidateBytes(b, tc.maxDepth)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, b, rest)
		})
	}
}

func TestValidateSequence(t *testing.T) {
	require.NoError(t, cbor.ValidateSequence(nil, cbor.DefaultMaxDepth))
	require.NoError(t, cbor.ValidateSequence(mustHex(t, "0182020320f6"), cbor.DefaultMaxDepth))

	err := cbor.ValidateSequence(mustHex(t, "01021c"), cbor.DefaultMaxDepth)
	require.ErrorIs(t, err, cbor.ErrMalformedInput)
	var de *cbor.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Offset)
}
