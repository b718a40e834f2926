package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestReadInput_Valid parses a size and coordinate pairs spread over lines.
func TestReadInput_Valid(t *testing.T) {
	n, sites, err := readInput(strings.NewReader("3\n1 1\n 2 1\n3\t1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []percolation.Site{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}}, sites)
}

// TestReadInput_Errors covers empty, malformed and unpaired input.
func TestReadInput_Errors(t *testing.T) {
	_, _, err := readInput(strings.NewReader("  \n"))
	assert.ErrorIs(t, err, errEmptyInput)

	_, _, err = readInput(strings.NewReader("3 1 x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `token 3 "x"`)

	_, _, err = readInput(strings.NewReader("3 1 1 2"))
	assert.ErrorIs(t, err, errOddCoordinates)
}

// TestRun_Summary replays a percolating column and checks the report.
func TestRun_Summary(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("3 1 1 2 1 3 1"), &out, config{minOpen: true}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "size:       3\n"+
		"open sites: 3 of 9\n"+
		"percolates: true\n"+
		"min open:   0\n", out.String())
}

// TestRun_Conn8 checks the diagonal flag reaches the grid.
func TestRun_Conn8(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader("2 1 1 2 2"), &out, config{conn8: true}, discardLogger()))
	assert.Contains(t, out.String(), "percolates: true")

	out.Reset()
	require.NoError(t, run(strings.NewReader("2 1 1 2 2"), &out, config{}, discardLogger()))
	assert.Contains(t, out.String(), "percolates: false")
}

// TestRun_Errors propagates grid errors.
func TestRun_Errors(t *testing.T) {
	err := run(strings.NewReader("0"), io.Discard, config{}, discardLogger())
	assert.ErrorIs(t, err, percolation.ErrInvalidSize)

	err = run(strings.NewReader("2 1 1 3 1"), io.Discard, config{}, discardLogger())
	assert.ErrorIs(t, err, percolation.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "site 2")
}

// TestRootCmd_Stdin drives the cobra command end to end.
func TestRootCmd_Stdin(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader("1 1 1"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--min-open", "-"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "percolates: true")
}

// TestRootCmd_BadLogLevel rejects unknown levels.
func TestRootCmd_BadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("1"))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--log-level", "loud"})

	assert.Error(t, cmd.Execute())
}
