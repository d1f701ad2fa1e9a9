package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUILogOutputDiscardsWithoutDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	out, closer, err := tuiLogOutput(false, path)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, io.Discard, out)
	assert.NoFileExists(t, path)
}

func TestTUILogOutputWritesDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	out, closer, err := tuiLogOutput(true, path)
	require.NoError(t, err)

	logger := log.NewWithOptions(out, log.Options{Level: log.DebugLevel})
	logger.Debug("phase changed", "to", "playing")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "phase changed")
}

func TestTUILogOutputBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "debug.log")

	out, closer, err := tuiLogOutput(true, path)
	require.Error(t, err)
	defer closer.Close()
	assert.Equal(t, io.Discard, out)
}
