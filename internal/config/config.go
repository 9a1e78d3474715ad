// internal/config/config.go
//
// Runtime configuration for the consolidate tool. The base directory is
// wherever the binary was started; an optional consolidate.yaml there can
// relocate the retrieve directory and the run log. Everything else comes
// from the two interactive prompts.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the optional per-directory configuration file.
	ConfigFileName = "consolidate.yaml"

	defaultRetrieveDir = "retrieve"
	defaultLogFile     = "consolidate.log"
)

// fileConfig models consolidate.yaml.
type fileConfig struct {
	RetrieveDir string `yaml:"retrieve_dir"`
	LogFile     string `yaml:"log_file"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	// BaseDir is the directory the tool was started from. Source folder
	// names entered at the prompt are resolved under RetrieveDir, which
	// lives under BaseDir unless configured absolute.
	BaseDir     string
	RetrieveDir string
	LogPath     string
}

// New resolves configuration for baseDir, overlaying consolidate.yaml on
// the defaults when the file exists. A missing file is not an error; a
// malformed one is.
func New(baseDir string) (*Config, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("config: base directory is empty")
	}
	cfg := &Config{
		BaseDir:     baseDir,
		RetrieveDir: filepath.Join(baseDir, defaultRetrieveDir),
		LogPath:     filepath.Join(baseDir, defaultLogFile),
	}

	data, err := os.ReadFile(filepath.Join(baseDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", ConfigFileName, err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", ConfigFileName, err)
	}
	if dir := strings.TrimSpace(file.RetrieveDir); dir != "" {
		cfg.RetrieveDir = resolve(baseDir, dir)
	}
	if log := strings.TrimSpace(file.LogFile); log != "" {
		cfg.LogPath = resolve(baseDir, log)
	}
	return cfg, nil
}

// SourcePath resolves a prompted folder name against the retrieve
// directory.
func (c *Config) SourcePath(folder string) string {
	return filepath.Join(c.RetrieveDir, folder)
}

// resolve keeps absolute paths as-is and anchors relative ones at baseDir.
func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
