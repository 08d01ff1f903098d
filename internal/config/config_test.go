package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/arith/internal/syntax"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, syntax.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, 0, cfg.MaxSteps)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, ParserRecursive, cfg.Parser)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
max_steps: 100
lenient_whitespace: true
format: json
numerals: true
log_level: debug
history_file: /tmp/arith_history
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, syntax.DefaultMaxDepth, cfg.MaxDepth, "unset keys keep defaults")
	assert.Equal(t, 100, cfg.MaxSteps)
	assert.True(t, cfg.LenientWhitespace)
	assert.False(t, cfg.BigStep)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Numerals)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/arith_history", cfg.HistoryFile)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "max_stepz: 3\n", "field max_stepz not found"},
		{"bad type", "max_steps: many\n", "parsing config"},
		{"negative depth", "max_depth: -1\n", "max_depth must not be negative"},
		{"negative steps", "max_steps: -5\n", "max_steps must not be negative"},
		{"bad format", "format: xml\n", `unknown format "xml"`},
		{"bad parser", "parser: yacc\n", `unknown parser "yacc"`},
		{"bad level", "log_level: loud\n", "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestFind(t *testing.T) {
	t.Run("default location missing", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv(EnvVar, "")
		cfg, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("default location", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv(EnvVar, "")
		require.NoError(t, os.MkdirAll(filepath.Join(home, "arith"), 0o755))
		writeFile(t, filepath.Join(home, "arith"), "big_step: true\n")

		cfg, err := Find("")
		require.NoError(t, err)
		assert.True(t, cfg.BigStep)
	})

	t.Run("environment", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "max_steps: 7\n")
		t.Setenv(EnvVar, path)
		cfg, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.MaxSteps)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(EnvVar, writeFile(t, t.TempDir(), "max_steps: 7\n"))
		path := writeFile(t, t.TempDir(), "max_steps: 9\n")
		cfg, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.MaxSteps)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
