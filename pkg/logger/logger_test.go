package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Info("booking id=%d created", 42)
	log.Debug("debug line")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking id=42 created")
	assert.Contains(t, string(data), "debug line")
}

func TestNew_LevelFiltersLowerRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("should be skipped")
	log.Warn("should be kept")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should be skipped")
	assert.Contains(t, string(data), "should be kept")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
