package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Format.Indent)
	assert.Equal(t, 1024, cfg.Format.MaxDepth)
	assert.False(t, cfg.Format.HuJSON)
	assert.False(t, cfg.Format.LegacyEscapes)
	assert.Equal(t, 4, cfg.GLB.Workers)
	assert.Equal(t, 10, cfg.GLB.MaxDepth)
	assert.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jscene.yml")
	writeFile(t, path, `
log_level: debug
format:
  indent: 0
  hujson: true
  key_case: snake
glb:
  workers: 8
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Format.Indent)
	assert.True(t, cfg.Format.HuJSON)
	assert.Equal(t, "snake", cfg.Format.KeyCase)
	assert.Equal(t, 8, cfg.GLB.Workers)

	// Unmentioned settings keep their defaults.
	assert.Equal(t, 1024, cfg.Format.MaxDepth)
	assert.Equal(t, 10, cfg.GLB.MaxDepth)
	assert.Equal(t, 2, cfg.GLB.Indent)
}

func TestConfig_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	tests := map[string]string{
		"syntax":    "format: [1, 2",
		"level":     "log_level: loud",
		"workers":   "glb:\n  workers: 0",
		"depth":     "format:\n  max_depth: -1",
		"key_case":  "glb:\n  key_case: SHOUTING",
		"wrongtype": "format:\n  indent: lots",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yml")
			writeFile(t, path, content)
			cfg, err := LoadConfig(path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	// A directory with a config file name is not a config file.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", ".jscene.yml"), 0o755))
	assert.Equal(t, "", FindConfigFile(nested))

	want := filepath.Join(root, "a", "jscene.yaml")
	writeFile(t, want, "log_level: info\n")
	assert.Equal(t, want, FindConfigFile(nested))

	// A nearer file takes precedence.
	nearer := filepath.Join(nested, ".jscene.yml")
	writeFile(t, nearer, "log_level: info\n")
	assert.Equal(t, nearer, FindConfigFile(nested))
}
