package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, filepath.Join(dir, "cardsmith", "config.toml"), GetConfigFilePath())
	assert.FileExists(t, GetConfigFilePath())

	// second load reads the file back
	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte(`
output = "yaml"
color = "never"

[suit_colors]
hearts = "#ff0000"
`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "never", cfg.Color)

	col, ok := cfg.SuitColor("hearts")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", col.Hex())

	// defaults survive for suits the file leaves out
	_, ok = cfg.SuitColor("spades")
	assert.True(t, ok)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad output", `output = "xml"`, "unknown output format"},
		{"bad color", `color = "sometimes"`, "unknown color mode"},
		{"bad suit", "[suit_colors]\nstars = \"#ffffff\"", "unknown suit"},
		{"bad hex", "[suit_colors]\nhearts = \"red\"", "suit_colors.hearts"},
		{"bad toml", `output = `, "error decoding config file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
			require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte(tc.content), 0644))

			_, err := LoadConfig()
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestSuitColor_Missing(t *testing.T) {
	cfg := &Config{}
	_, ok := cfg.SuitColor("hearts")
	assert.False(t, ok)
}
