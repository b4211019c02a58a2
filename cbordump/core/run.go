package core

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	bigmath "math/big"
	"os"
	"strconv"
	"strings"

	cbor "github.com/synadia-labs/cborstream/runtime"
)

// ErrNoInput is returned when neither hex arguments nor a file were given.
var ErrNoInput = errors.New("no input: pass hex arguments or --file")

// Options configures how a command runs.
type Options struct {
	Out    io.Writer
	Logger *slog.Logger
	// MaxDepth bounds array nesting while decoding.
	MaxDepth int
	// Seq treats the input as a CBOR sequence instead of a single item.
	Seq bool
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// ParseHex joins args and decodes them as hex, ignoring whitespace.
func ParseHex(args ...string) ([]byte, error) {
	s := strings.Join(strings.Fields(strings.Join(args, " ")), "")
	if s == "" {
		return nil, ErrNoInput
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex input: %w", err)
	}
	return b, nil
}

// ReadFile reads raw CBOR from path, or from stdin when path is "-".
func ReadFile(path string) ([]byte, error) {
	if path == "-" {
		return ReadInput(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ReadInput(f)
}

// ReadInput reads r to EOF.
func ReadInput(r io.Reader) ([]byte, error) {
	var bb cbor.ByteBuffer
	if _, err := bb.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if bb.Len() == 0 {
		return nil, ErrNoInput
	}
	return bb.Bytes(), nil
}

// Decode renders input as text, one line per top-level item. Without
// Seq only the first item is rendered and trailing bytes are reported
// in the log.
func Decode(input []byte, opts Options) error {
	opts = opts.withDefaults()
	if opts.Seq && len(input) == 0 {
		return nil
	}

	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)

	d := cbor.NewDecoder(nil)
	d.SetMaxDepth(opts.MaxDepth)
	rest := input
	for i := 0; ; i++ {
		base := len(input) - len(rest)
		d.Reset(rest)
		bb.Reset()
		rerr := cbor.Render(bb, d)
		_ = bb.WriteByte('\n')
		if _, err := opts.Out.Write(bb.Bytes()); err != nil {
			return err
		}
		if rerr != nil {
			return fmt.Errorf("decode item %d (input offset %d): %w", i, base, rerr)
		}
		opts.Logger.Debug("decoded item", "index", i, "offset", base, "size", d.Offset())

		rest = d.Remaining()
		if len(rest) == 0 {
			return nil
		}
		if !opts.Seq {
			opts.Logger.Warn("ignoring trailing bytes", "count", len(rest))
			return nil
		}
	}
}

// Check validates input without rendering it and prints a summary line.
func Check(input []byte, opts Options) error {
	opts = opts.withDefaults()
	if opts.Seq {
		if err := cbor.ValidateSequence(input, opts.MaxDepth); err != nil {
			return fmt.Errorf("invalid sequence: %w", err)
		}
	} else {
		rest, err := cbor.ValidateBytes(input, opts.MaxDepth)
		if err != nil {
			return fmt.Errorf("invalid item: %w", err)
		}
		if len(rest) > 0 {
			return fmt.Errorf("%d trailing bytes after item", len(rest))
		}
	}
	opts.Logger.Debug("validated input", "bytes", len(input), "seq", opts.Seq)
	_, err := fmt.Fprintf(opts.Out, "ok (%d bytes)\n", len(input))
	return err
}

// Encode parses each token into an item, encodes the items canonically in
// order and prints the result as hex.
func Encode(tokens []string, opts Options) error {
	opts = opts.withDefaults()

	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)

	w := cbor.NewWriter(bb)
	for i, tok := range tokens {
		it, err := ParseToken(tok)
		if err != nil {
			return fmt.Errorf("token %d %q: %w", i, tok, err)
		}
		if err := w.WriteItem(it); err != nil {
			return fmt.Errorf("token %d %q: %w", i, tok, err)
		}
	}
	opts.Logger.Debug("encoded items", "count", w.Count(), "bytes", bb.Len())

	// Tokens are free-form; an array header may be missing children.
	if err := cbor.ValidateSequence(w.Bytes(), opts.MaxDepth); err != nil {
		opts.Logger.Warn("output is not a complete CBOR sequence", "error", err)
	}

	_, err := fmt.Fprintln(opts.Out, hex.EncodeToString(w.Bytes()))
	return err
}

// ParseToken converts a command-line token into an item.
//
// Accepted forms: decimal integers of any sign down to -2^64, floats
// (including inf and nan), true, false, null, undefined, break,
// array:N, tag:N, simple:N, a Go-quoted "text" string and h'hex' bytes.
func ParseToken(tok string) (cbor.Item, error) {
	switch tok {
	case "true":
		return cbor.NewBool(true), nil
	case "false":
		return cbor.NewBool(false), nil
	case "null":
		return cbor.NewNull(), nil
	case "undefined":
		return cbor.NewUndefined(), nil
	case "break":
		return cbor.NewBreak(), nil
	}

	if rest, ok := strings.CutPrefix(tok, "array:"); ok {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return cbor.Item{}, fmt.Errorf("array size: %w", err)
		}
		return cbor.NewArrayHeader(n), nil
	}
	if rest, ok := strings.CutPrefix(tok, "tag:"); ok {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return cbor.Item{}, fmt.Errorf("tag number: %w", err)
		}
		return cbor.NewTag(n), nil
	}
	if rest, ok := strings.CutPrefix(tok, "simple:"); ok {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return cbor.Item{}, fmt.Errorf("simple value: %w", err)
		}
		return cbor.NewSimple(uint8(n)), nil
	}
	if strings.HasPrefix(tok, "\"") || strings.HasPrefix(tok, "`") {
		s, err := strconv.Unquote(tok)
		if err != nil {
			return cbor.Item{}, fmt.Errorf("text string: %w", err)
		}
		return cbor.NewText([]byte(s)), nil
	}
	if len(tok) >= 3 && strings.HasPrefix(tok, "h'") && strings.HasSuffix(tok, "'") {
		b, err := hex.DecodeString(tok[2 : len(tok)-1])
		if err != nil {
			return cbor.Item{}, fmt.Errorf("byte string: %w", err)
		}
		return cbor.NewBytes(b), nil
	}

	if z, ok := new(bigmath.Int).SetString(tok, 10); ok {
		return intItem(z)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return cbor.Item{}, errors.New("unrecognized token")
	}
	return cbor.NewFloat(f), nil
}

var bigOne = bigmath.NewInt(1)

func intItem(z *bigmath.Int) (cbor.Item, error) {
	if z.Sign() >= 0 {
		if !z.IsUint64() {
			return cbor.Item{}, errors.New("integer above 2^64-1")
		}
		return cbor.NewUint(z.Uint64()), nil
	}
	// -(n+1) == z, so n == -z-1.
	n := new(bigmath.Int).Neg(z)
	n.Sub(n, bigOne)
	if !n.IsUint64() {
		return cbor.Item{}, errors.New("integer below -2^64")
	}
	return cbor.NewNegIntArg(n.Uint64()), nil
}
