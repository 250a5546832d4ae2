package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxuan19/CAST/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cast.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: debug
  format: console
engine:
  workers: 8
  rescale: true
metrics:
  enabled: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
	assert.Equal(t, 8, cfg.Engine.Workers)
	assert.True(t, cfg.Engine.Rescale)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "metrics:\n  enabled: false\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 0, cfg.Engine.Workers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log:\n  level: verbose\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"negative workers", "engine:\n  workers: -2\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CAST_LOG_LEVEL", "warn")
	t.Setenv("CAST_ENGINE_WORKERS", "4")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "engine:\n  workers: 2\n")
	t.Setenv("CAST_ENGINE_WORKERS", "16")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Engine.Workers)
}

func TestValidateDirect(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	require.NoError(t, cfg.Validate())

	cfg.Engine.Workers = -1
	assert.Error(t, cfg.Validate())
}

func TestWatchDeliversValidReloads(t *testing.T) {
	path := writeConfigFile(t, "engine:\n  workers: 1\n")

	reloads := make(chan *config.Config, 4)
	config.Watch(path, func(cfg *config.Config) {
		reloads <- cfg
	})

	require.NoError(t, os.WriteFile(path, []byte("engine:\n  workers: 5\n"), 0o600))

	select {
	case cfg := <-reloads:
		assert.Equal(t, 5, cfg.Engine.Workers)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	// An invalid rewrite is skipped: whatever additional events fire, no
	// config carrying the invalid value is ever delivered.
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  workers: -9\n"), 0o600))
	deadline := time.After(500 * time.Millisecond)
	for {
		select {
		case cfg := <-reloads:
			assert.NotEqual(t, -9, cfg.Engine.Workers)
		case <-deadline:
			return
		}
	}
}
