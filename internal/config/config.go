package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	// StorePath overrides where the habit store file lives. Empty means the
	// platform default.
	StorePath string `yaml:"store_path"`
	// CellColor is the graph cell color at full intensity, "#rrggbb".
	CellColor string `yaml:"cell_color"`
	// ListenAddr is the serve command's bind address.
	ListenAddr string `yaml:"listen_addr"`
}

func defaults() *Config {
	return &Config{
		CellColor:  "#00ff00",
		ListenAddr: ":8080",
	}
}

// Load reads the YAML config. RHABITS_CONFIG overrides the path and must
// point at a readable file; the default path is allowed to be absent, in
// which case the defaults apply.
func Load() (*Config, error) {
	path := os.Getenv("RHABITS_CONFIG")
	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return defaults(), nil
		}
		path = filepath.Join(dir, "rhabits", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
