package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/synadia-labs/cborstream/cbordump/core"
	cbor "github.com/synadia-labs/cborstream/runtime"
)

// CLI defines the cbordump command-line interface.
//
// Input is either hex given as arguments (whitespace ignored) or raw bytes
// read from --file ("-" for stdin).
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose diagnostics"`

	Decode DecodeCmd `cmd:"" help:"Render CBOR input as text."`
	Encode EncodeCmd `cmd:"" help:"Encode tokens as canonical CBOR and print hex."`
	Check  CheckCmd  `cmd:"" help:"Validate CBOR input without rendering it."`
}

// InputFlags are shared by the commands that read CBOR input.
type InputFlags struct {
	File     string   `short:"f" help:"Read raw CBOR bytes from a file ('-' for stdin)"`
	Seq      bool     `short:"s" help:"Treat input as a CBOR sequence of top-level items"`
	MaxDepth int      `short:"d" help:"Maximum array nesting depth" default:"${max_depth}" env:"CBORDUMP_MAX_DEPTH"`
	Hex      []string `arg:"" optional:"" help:"Hex-encoded CBOR input"`
}

func (f *InputFlags) options(logger *slog.Logger) core.Options {
	return core.Options{
		Out:      os.Stdout,
		Logger:   logger,
		MaxDepth: f.MaxDepth,
		Seq:      f.Seq,
	}
}

func (f *InputFlags) load() ([]byte, error) {
	if f.File != "" {
		if len(f.Hex) > 0 {
			return nil, errors.New("--file cannot be combined with hex arguments")
		}
		return core.ReadFile(f.File)
	}
	return core.ParseHex(f.Hex...)
}

type DecodeCmd struct {
	InputFlags
}

func (c *DecodeCmd) Run(logger *slog.Logger) error {
	input, err := c.load()
	if err != nil {
		return err
	}
	return core.Decode(input, c.options(logger))
}

type CheckCmd struct {
	InputFlags
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	input, err := c.load()
	if err != nil {
		return err
	}
	return core.Check(input, c.options(logger))
}

type EncodeCmd struct {
	Tokens []string `arg:"" help:"Items to encode: 1, -5, 1.5, inf, nan, true, null, undefined, break, array:N, tag:N, simple:N, \"text\", h'0102'"`
}

func (c *EncodeCmd) Run(logger *slog.Logger) error {
	return core.Encode(c.Tokens, core.Options{Out: os.Stdout, Logger: logger, MaxDepth: cbor.DefaultMaxDepth})
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("cbordump"),
		kong.Description("Decode, encode and validate a bounded subset of CBOR."),
		kong.UsageOnError(),
		kong.Vars{"max_depth": strconv.Itoa(cbor.DefaultMaxDepth)},
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.FatalIfErrorf(ctx.Run(logger))
}
