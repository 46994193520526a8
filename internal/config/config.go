package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema. Every key except
// break_on_hyphens has a flag counterpart; the file just moves the defaults.
type Config struct {
	Layout         string `toml:"layout"`
	Delimiter      string `toml:"delimiter"`
	TableWidth     int    `toml:"table_width"`
	Strict         bool   `toml:"strict"`
	BreakLongWords bool   `toml:"break_long_words"`
	BreakOnHyphens bool   `toml:"break_on_hyphens"`
	Escape         bool   `toml:"escape"`
	Source         string `toml:"-"`
}

func Default() Config {
	return Config{
		Layout:         "grid",
		Delimiter:      "\t",
		BreakOnHyphens: true,
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".textab", "config.toml")
}

// Load reads the config file at path, or at DefaultPath when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
