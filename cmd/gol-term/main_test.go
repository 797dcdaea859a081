package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-gol/internal/logging"
)

func TestOpenLogDiscardsWithoutPath(t *testing.T) {
	out, closeLog, err := openLog("")
	require.NoError(t, err)
	defer closeLog()
	assert.Equal(t, io.Discard, out)
}

func TestOpenLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.log")
	out, closeLog, err := openLog(path)
	require.NoError(t, err)

	log := logging.New(out, "info", false)
	log.Info().Msg("viewer started")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "viewer started")
}

func TestOpenLogMissingDirectory(t *testing.T) {
	_, _, err := openLog(filepath.Join(t.TempDir(), "nope", "gol.log"))
	assert.Error(t, err)
}
