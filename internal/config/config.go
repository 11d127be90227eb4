// Package config handles loading and managing chatvault configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the chatvault configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Export ExportConfig `toml:"export"`

	// Computed paths (not from config file)
	HomeDir string `toml:"-"`
}

// UIConfig holds browser display configuration.
type UIConfig struct {
	PageSize    int    `toml:"page_size"`    // Rows per page (default: 20)
	DefaultSort string `toml:"default_sort"` // date, size, or messages
	Descending  bool   `toml:"descending"`   // Default sort direction
}

// ExportConfig holds Markdown export configuration.
type ExportConfig struct {
	Dir string `toml:"dir"` // Directory for exported documents (default: cwd)
}

// DefaultHome returns the default chatvault home directory.
// Respects the CHATVAULT_HOME environment variable.
func DefaultHome() string {
	if h := os.Getenv("CHATVAULT_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chatvault"
	}
	return filepath.Join(home, ".chatvault")
}

// Load reads the configuration from the specified file. If path is
// empty, uses the default location (~/.chatvault/config.toml). The
// config file is optional; defaults apply when it does not exist.
func Load(path string) (*Config, error) {
	homeDir := DefaultHome()

	if path == "" {
		path = filepath.Join(homeDir, "config.toml")
	}

	cfg := &Config{
		HomeDir: homeDir,
		UI: UIConfig{
			PageSize:    20,
			DefaultSort: "date",
			Descending:  true,
		},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.UI.PageSize <= 0 {
		cfg.UI.PageSize = 20
	}
	cfg.Export.Dir = expandPath(cfg.Export.Dir)

	return cfg, nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
