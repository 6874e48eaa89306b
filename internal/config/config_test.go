package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubik.yaml")
	data := []byte("db_path: /tmp/cube.db\nscramble:\n  length: 30\n  seed: 7\nreplay:\n  interval_ms: 100\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cube.db", cfg.DBPath)
	assert.Equal(t, 30, cfg.Scramble.Length)
	assert.Equal(t, uint64(7), cfg.Scramble.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.Replay.Interval())
	assert.Equal(t, log.DebugLevel, cfg.Log.ParsedLevel())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubik.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scramble:\n  seed: 3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scramble.Length)
	assert.Equal(t, uint64(3), cfg.Scramble.Seed)
	assert.Equal(t, 250, cfg.Replay.IntervalMs)
	assert.Equal(t, log.InfoLevel, cfg.Log.ParsedLevel())
}

func TestLoadNormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubik.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scramble:\n  length: -4\nreplay:\n  interval_ms: -10\nlog:\n  level: loud\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scramble.Length)
	assert.Zero(t, cfg.Replay.IntervalMs)
	assert.Equal(t, log.InfoLevel, cfg.Log.ParsedLevel())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scramble: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
