// Package config loads the optional pg-node2graph configuration file.
//
// The file is TOML and mirrors the command-line flags, plus an inline
// color table:
//
//	format = "svg"
//	img-directory = "out/img"
//	dot-directory = "out/dot"
//	color = true
//	skip-empty = true
//
//	[colors]
//	QUERY = { background = "skyblue" }
//	SEQSCAN = { background = "darkgreen", font = "white" }
//
// Flags given on the command line take precedence over config values;
// merging is the CLI's responsibility, this package only decodes.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/japinli/pg-node2graph/pkg/dot"
	"github.com/japinli/pg-node2graph/pkg/errors"
)

// DefaultName is the config file name looked up under the user config
// directory when no --config flag is given.
const DefaultName = "config.toml"

// ColorEntry is one record coloring in the [colors] table.
type ColorEntry struct {
	Background string `toml:"background"`
	Font       string `toml:"font"`
}

// Config holds the decoded configuration file.
type Config struct {
	Format       string                `toml:"format"`
	DotDirectory string                `toml:"dot-directory"`
	ImgDirectory string                `toml:"img-directory"`
	ColorMapFile string                `toml:"node-color-map"`
	Color        bool                  `toml:"color"`
	SkipEmpty    bool                  `toml:"skip-empty"`
	RemoveDots   bool                  `toml:"remove-dots"`
	Colors       map[string]ColorEntry `toml:"colors"`
}

// ColorMap converts the inline [colors] table to an emission color map.
// Returns an empty map when no colors are configured.
func (c *Config) ColorMap() dot.ColorMap {
	m := make(dot.ColorMap, len(c.Colors))
	for name, e := range c.Colors {
		m[name] = dot.Color{Background: e.Background, Font: e.Font}
	}
	return m
}

// Load decodes the TOML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML config bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return &cfg, nil
}

// LoadDefault loads the config from the user config directory
// (e.g. ~/.config/pg-node2graph/config.toml). A missing file is not an
// error; the zero config is returned instead.
func LoadDefault() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &Config{}, nil
	}

	path := filepath.Join(dir, "pg-node2graph", DefaultName)
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
