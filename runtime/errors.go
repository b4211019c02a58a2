package cbor

import (
	"errors"
	"strconv"
)

var (
	// ErrMalformedInput is returned when an initial byte carries one of the
	// reserved additional info values 28, 29 or 30.
	ErrMalformedInput error = errors.New("cbor: malformed input")

	// ErrUnsupported is returned for well-formed CBOR that this codec does
	// not handle: maps, indefinite lengths, long-form strings and two-byte
	// simple values. It is also returned when asked to encode a
	// decoder-only pseudo-event.
	ErrUnsupported error = errors.New("cbor: unsupported feature")

	// ErrTruncatedInput is returned when the buffer ends before a declared
	// argument, payload or array count is satisfied. It is resumable: the
	// same input extended with more bytes may decode successfully.
	ErrTruncatedInput error = errTruncated{}

	// ErrDepthExceeded is returned when array nesting goes beyond the
	// decoder's configured maximum depth.
	ErrDepthExceeded error = errors.New("cbor: max depth exceeded")

	// ErrUnsupportedSimpleValue is returned when encoding a simple value
	// outside false, true, null, undefined and break.
	ErrUnsupportedSimpleValue error = errors.New("cbor: unsupported simple value")
)

// Error is implemented by the typed errors of this package.
type Error interface {
	error

	// Resumable reports whether the same input, extended with more
	// bytes, could still decode. Only truncation and per-item encoding
	// rejections are resumable.
	Resumable() bool
}

// contextError is an Error that can carry a location such as "item 3".
type contextError interface {
	Error

	// withContext returns a copy of the error with ctx prepended.
	withContext(ctx string) error
}

// Cause returns the error passed to WrapError, or e itself when e was
// not wrapped by it.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable reports whether e, or any error it wraps, is a resumable
// Error. Foreign errors are not resumable.
func Resumable(e error) bool {
	var ce Error
	if errors.As(e, &ce) {
		return ce.Resumable()
	}
	return false
}

// WrapError attaches a location to err, outermost first, so that
// WrapError(err, "a", "b") reads "... at a/b". err itself is not modified;
// the original stays reachable through Cause and errors.Unwrap.
func WrapError(err error, ctx ...string) error {
	switch e := err.(type) {
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []string) string {
	out := ""
	for i := len(ctx) - 1; i >= 0; i-- {
		out = addCtx(out, ctx[i])
	}
	return out
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	}
	return add
}

// errWrapped carries a location for errors that are not contextErrors.
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

func (e errWrapped) Resumable() bool { return Resumable(e.cause) }

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errTruncated struct{}

func (e errTruncated) Error() string   { return "cbor: too few bytes left to read item" }
func (e errTruncated) Resumable() bool { return true }

// InvalidAdditionalInfoError is returned when an initial byte uses a
// reserved additional info value. It matches ErrMalformedInput.
type InvalidAdditionalInfoError struct {
	Major uint8
	Info  uint8
}

// Error implements the error interface
func (i InvalidAdditionalInfoError) Error() string {
	return "cbor: reserved additional info " + strconv.Itoa(int(i.Info)) +
		" for major type " + strconv.Itoa(int(i.Major))
}

// Resumable returns 'false' for InvalidAdditionalInfoErrors
func (i InvalidAdditionalInfoError) Resumable() bool { return false }

// Is reports ErrMalformedInput as the error's kind.
func (i InvalidAdditionalInfoError) Is(target error) bool { return target == ErrMalformedInput }

// UnsupportedError names the major type and additional info combination
// that this codec does not decode or encode. It matches ErrUnsupported.
type UnsupportedError struct {
	Major uint8
	Info  uint8
	What  string
}

// Error implements the error interface
func (u UnsupportedError) Error() string {
	out := "cbor: unsupported " + u.What
	if u.What == "" {
		out = "cbor: unsupported item"
	}
	return out + " (major type " + strconv.Itoa(int(u.Major)) +
		", additional info " + strconv.Itoa(int(u.Info)) + ")"
}

// Resumable returns 'false' for UnsupportedErrors
func (u UnsupportedError) Resumable() bool { return false }

// Is reports ErrUnsupported as the error's kind.
func (u UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// DepthError is returned when an array header would open a scope deeper
// than Limit. It matches ErrDepthExceeded.
type DepthError struct {
	Limit int
}

// Error implements the error interface
func (d DepthError) Error() string {
	return "cbor: array nesting exceeds max depth " + strconv.Itoa(d.Limit)
}

// Resumable returns 'false' for DepthErrors
func (d DepthError) Resumable() bool { return false }

// Is reports ErrDepthExceeded as the error's kind.
func (d DepthError) Is(target error) bool { return target == ErrDepthExceeded }

// SimpleValueError is returned when encoding a simple value code that has
// no single-byte encoding in this codec. It matches
// ErrUnsupportedSimpleValue.
type SimpleValueError struct {
	Value uint8
	ctx   string
}

// Error implements the error interface
func (s SimpleValueError) Error() string {
	out := "cbor: unsupported simple value " + strconv.Itoa(int(s.Value))
	if s.ctx != "" {
		out += " at " + s.ctx
	}
	return out
}

// Resumable is always 'true' for SimpleValueErrors
func (s SimpleValueError) Resumable() bool { return true }

// Is reports ErrUnsupportedSimpleValue as the error's kind.
func (s SimpleValueError) Is(target error) bool { return target == ErrUnsupportedSimpleValue }

func (s SimpleValueError) withContext(ctx string) error { s.ctx = addCtx(s.ctx, ctx); return s }

// DecodeError reports a decoding failure together with the byte offset
// of the item that caused it.
type DecodeError struct {
	Offset int
	Err    error
}

// Error implements the error interface
func (d *DecodeError) Error() string {
	return d.Err.Error() + " at offset " + strconv.Itoa(d.Offset)
}

// Resumable delegates to the wrapped error.
func (d *DecodeError) Resumable() bool { return Resumable(d.Err) }

// Unwrap returns the wrapped error.
func (d *DecodeError) Unwrap() error { return d.Err }
