package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "prompt:\n  text: \"kv> \"\n  theme: monokai\nlog:\n  level: debug\nterminal:\n  history_limit: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "kv> ", cfg.Prompt.Text)
	assert.Equal(t, "monokai", cfg.Prompt.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Terminal.HistoryLimit)
	assert.Equal(t, "^C", cfg.Terminal.InterruptPrompt)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KVSH_LOG_LEVEL", "error")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("prompt: [unterminated"), 0o600))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
