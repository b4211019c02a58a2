package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	cbor "github.com/synadia-labs/cborstream/runtime"
)

func parseArgs(t *testing.T, args ...string) CLI {
	t.Helper()
	var cli CLI
	parser, err := newParser(&cli)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestMaxDepthDefault(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Setenv("CBORDUMP_MAX_DEPTH", "")
	require.NoError(t, os.Unsetenv("CBORDUMP_MAX_DEPTH"))

	cli := parseArgs(t, "decode", "8101")
	assert.Equal(t, cbor.DefaultMaxDepth, cli.Decode.MaxDepth)
	assert.Equal(t, []string{"8101"}, cli.Decode.Hex)

	cli = parseArgs(t, "check", "-d", "5", "-s", "01", "02")
	assert.Equal(t, 5, cli.Check.MaxDepth)
	assert.True(t, cli.Check.Seq)
	assert.Equal(t, []string{"01", "02"}, cli.Check.Hex)
}

func TestMaxDepthFromEnv(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Setenv("CBORDUMP_MAX_DEPTH", "7")
	cli := parseArgs(t, "decode", "01")
	assert.Equal(t, 7, cli.Decode.MaxDepth)
}

func TestLoadRejectsFileWithHex(t *testing.T) {
	f := InputFlags{File: "in.cbor", Hex: []string{"01"}}
	_, err := f.load()
	assert.EqualError(t, err, "--file cannot be combined with hex arguments")
}
