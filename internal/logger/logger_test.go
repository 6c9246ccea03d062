package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "diorama.txt")
	l := New(path, "debug")
	l.Info("scene built", "meshes", 71)
	l.Debug("resize ignored", "width", 0)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"scene built\" meshes=71")
	assert.Contains(t, string(data), "msg=\"resize ignored\" width=0")
}

func TestLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diorama.txt")
	l := New(path, "warn")
	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestOrDiscard(t *testing.T) {
	l := OrDiscard(nil)
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))

	custom := slog.Default()
	assert.Same(t, custom, OrDiscard(custom))
}

func TestCloseWithoutFile(t *testing.T) {
	l := New("", "info")
	assert.NoError(t, l.Close())
}
