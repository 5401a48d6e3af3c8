// Package config loads optional per-project defaults for xliffsync
// from a TOML file. Explicit command-line flags always win over
// configured defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is looked up in the working directory when --config is
// not given.
const DefaultFile = ".xliffsync.toml"

// Config holds defaults applied when the corresponding flag is unset.
type Config struct {
	SourceLanguage string `toml:"source-language"`
	TargetLanguage string `toml:"target-language"`
	TreeKeys       bool   `toml:"tree-keys"`
}

// Load reads the TOML config at path. A missing file is an error only
// when the path was explicitly requested; the implicit default file is
// optional.
func Load(path string, explicit bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
