package cbor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cbor "github.com/synadia-labs/cborstream/runtime"
)

func TestResumable(t *testing.T) {
	assert.True(t, cbor.Resumable(cbor.ErrTruncatedInput))
	assert.True(t, cbor.Resumable(cbor.SimpleValueError{Value: 1}))
	assert.False(t, cbor.Resumable(cbor.ErrMalformedInput))
	assert.False(t, cbor.Resumable(cbor.DepthError{Limit: 3}))
	assert.False(t, cbor.Resumable(cbor.UnsupportedError{}))
	assert.False(t, cbor.Resumable(errors.New("other")))
	assert.True(t, cbor.Resumable(&cbor.DecodeError{Offset: 4, Err: cbor.ErrTruncatedInput}))
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	err := cbor.WrapError(base, "outer", "inner")
	assert.EqualError(t, err, "boom at outer/inner")
	assert.Equal(t, base, cbor.Cause(err))
	assert.ErrorIs(t, err, base)

	// Wrapping a context-aware error keeps its type.
	err = cbor.WrapError(cbor.SimpleValueError{Value: 7}, "item 2")
	err = cbor.WrapError(err, "frame 1")
	assert.EqualError(t, err, "cbor: unsupported simple value 7 at frame 1/item 2")
	var sv cbor.SimpleValueError
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, uint8(7), sv.Value)
	assert.Equal(t, err, cbor.Cause(err))
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
		msg  string
	}{
		{cbor.InvalidAdditionalInfoError{Major: 1, Info: 30}, cbor.ErrMalformedInput,
			"cbor: reserved additional info 30 for major type 1"},
		{cbor.UnsupportedError{Major: 5, Info: 1, What: "map"}, cbor.ErrUnsupported,
			"cbor: unsupported map (major type 5, additional info 1)"},
		{cbor.UnsupportedError{Major: 4, Info: 31}, cbor.ErrUnsupported,
			"cbor: unsupported item (major type 4, additional info 31)"},
		{cbor.DepthError{Limit: 3}, cbor.ErrDepthExceeded,
			"cbor: array nesting exceeds max depth 3"},
		{cbor.SimpleValueError{Value: 19}, cbor.ErrUnsupportedSimpleValue,
			"cbor: unsupported simple value 19"},
		{cbor.ErrTruncatedInput, cbor.ErrTruncatedInput,
			"cbor: too few bytes left to read item"},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.kind)
		assert.EqualError(t, tc.err, tc.msg)

		wrapped := &cbor.DecodeError{Offset: 9, Err: tc.err}
		assert.ErrorIs(t, wrapped, tc.kind)
		assert.EqualError(t, wrapped, tc.msg+" at offset 9")
	}

	assert.NotErrorIs(t, cbor.DepthError{}, cbor.ErrMalformedInput)
	assert.NotErrorIs(t, cbor.ErrUnsupported, cbor.ErrMalformedInput)
}
