package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reader.toml")
	content := `
[panel]
width = 50

[reader]
cell_pixels = 8
mouse = false

[logging]
level = "debug"
format = "json"
file = "/tmp/mdreader.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Panel.Width)
	assert.Equal(t, 8, cfg.Reader.CellPixels)
	assert.False(t, cfg.Reader.Mouse)
	assert.True(t, cfg.Reader.Watch)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/mdreader.log", cfg.Logging.File)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MDREADER_PANEL_WIDTH", "60")
	t.Setenv("MDREADER_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Panel.Width)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Panel.Width = 10
	assert.ErrorContains(t, cfg.Validate(), "panel.width")

	cfg = Default()
	cfg.Reader.CellPixels = 0
	assert.ErrorContains(t, cfg.Validate(), "cell_pixels")

	cfg = Default()
	cfg.Logging.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "logging.format")
}
