package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "assets", cfg.Assets.Root)
	assert.Equal(t, 1, cfg.Assets.Workers)
	assert.Zero(t, cfg.Sets.Seed)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "donut.toml")
	err := os.WriteFile(path, []byte(`
[log]
level = "debug"

[assets]
root = "/srv/p3d"
files = ["global.p3d", "l1z1.p3d"]
watch = true
workers = 4

[sets]
seed = 42
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/p3d", cfg.Assets.Root)
	assert.Equal(t, []string{"global.p3d", "l1z1.p3d"}, cfg.Assets.Files)
	assert.True(t, cfg.Assets.Watch)
	assert.Equal(t, 4, cfg.Assets.Workers)
	assert.Equal(t, uint64(42), cfg.Sets.Seed)
}

func TestParseConfigPartialKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseConfig([]byte("[sets]\nseed = 7\n"), cfg))
	assert.Equal(t, uint64(7), cfg.Sets.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Assets.Workers)
}

func TestParseConfigRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "[assets]\nrooot = \"x\"\n",
		"bad level":      "[log]\nlevel = \"loud\"\n",
		"zero workers":   "[assets]\nworkers = 0\n",
		"invalid syntax": "[assets\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ParseConfig([]byte(data), DefaultConfig()))
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetLogLevel(t *testing.T) {
	require.NoError(t, SetLogLevel("debug"))
	require.NoError(t, SetLogLevel("info"))
	assert.Error(t, SetLogLevel("shouting"))
}

func TestLoadMetricsSnapshot(t *testing.T) {
	var m LoadMetrics
	m.Files.Add(2)
	m.Chunks.Add(10)
	m.DecodeFailures.Add(1)

	s := m.Snapshot()
	assert.Equal(t, int64(2), s.Files)
	assert.Equal(t, int64(10), s.Chunks)
	assert.Equal(t, int64(1), s.DecodeFailures)
	assert.Contains(t, s.String(), "chunks=10")
}

func TestNewResourceIDUnique(t *testing.T) {
	assert.NotEqual(t, NewResourceID(), NewResourceID())
}
