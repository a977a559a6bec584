package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is where the configuration is looked up when no explicit
// path is given, relative to the current working directory.
const DefaultFilename = "dockerbuilder.yml"

// LoadFile reads and parses the configuration document at `filename`.
//
func LoadFile(filename string) (cfg *Config, err error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		err = errors.Wrapf(err,
			"failed to read configuration file %s", filename)
		return
	}

	return Parse(content, filename)
}

// Parse decodes a configuration document, requiring at least an
// `environments` mapping to be present.
//
func Parse(content []byte, filename string) (cfg *Config, err error) {
	cfg = new(Config)

	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		cfg = nil
		err = errors.Wrapf(err,
			"failed to parse configuration file %s", filename)
		return
	}

	if cfg.Environments == nil {
		cfg = nil
		err = errors.Errorf(
			"configuration file %s declares no environments", filename)
		return
	}

	return
}

// SaveFile rewrites the configuration document wholesale, used after
// environment removal.
//
func (c *Config) SaveFile(filename string) (err error) {
	content, err := yaml.Marshal(c)
	if err != nil {
		err = errors.Wrapf(err,
			"failed to serialize configuration")
		return
	}

	err = os.WriteFile(filename, content, 0644)
	if err != nil {
		err = errors.Wrapf(err,
			"failed to write configuration file %s", filename)
		return
	}

	return
}
