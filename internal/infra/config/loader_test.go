package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Full(t *testing.T) {
	path := writeConfig(t, `{
		"projectDirs": ["work", "oss"],
		"editor": "hx",
		"groups": {"backend": ["work/api", "work/worker"]}
	}`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "oss"}, cfg.ProjectDirs)
	assert.Equal(t, "hx", cfg.Editor)
	assert.Equal(t, []string{"work/api", "work/worker"}, cfg.Groups["backend"])
}

func TestLoader_Load_DefaultEditor(t *testing.T) {
	path := writeConfig(t, `{"projectDirs": ["work"]}`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEditor, cfg.Editor)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ProjectDirs, "missing file yields empty config, not an error")
	assert.Equal(t, DefaultEditor, cfg.Editor)
}

func TestLoader_Load_Malformed(t *testing.T) {
	path := writeConfig(t, `{"projectDirs": [`)

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}
