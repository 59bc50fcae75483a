// Package config provides configuration loading functionality.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runoshun/bonk/internal/domain"
)

// DefaultEditor is used when the config file does not set one.
const DefaultEditor = "vim"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads the user configuration from a JSON file.
// The file is hand-editable; a missing file yields an empty configuration so
// the caller can print setup guidance instead of a parse error.
type Loader struct {
	path string
}

// NewLoader creates a new Loader for the given config file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// fileConfig is the on-disk JSON shape.
type fileConfig struct {
	Groups      map[string][]string `json:"groups,omitempty"`
	Editor      string              `json:"editor,omitempty"`
	ProjectDirs []string            `json:"projectDirs"`
}

// Load reads the config file and applies defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := &domain.Config{Editor: DefaultEditor}

	content, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", l.path, err)
	}

	cfg.ProjectDirs = fc.ProjectDirs
	cfg.Groups = fc.Groups
	if fc.Editor != "" {
		cfg.Editor = fc.Editor
	}
	return cfg, nil
}
