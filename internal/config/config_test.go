package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := NewManagerAt(path)
	require.NoError(t, err)

	cfg := manager.GetConfig()
	assert.Equal(t, 30*time.Second, cfg.Timer.Duration)
	assert.Equal(t, "countdown.db", cfg.Database.Path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadPersistedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := NewManagerAt(path)
	require.NoError(t, err)

	manager.GetConfig().Timer.Duration = 45 * time.Second
	require.NoError(t, manager.SaveConfig())

	reloaded, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, reloaded.GetConfig().Timer.Duration)
}

func TestDatabasePathResolution(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManagerAt(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "countdown.db"), manager.DatabasePath())

	manager.GetConfig().Database.Path = filepath.Join(os.TempDir(), "abs.db")
	assert.Equal(t, filepath.Join(os.TempDir(), "abs.db"), manager.DatabasePath())
}
