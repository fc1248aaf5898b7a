package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML settings document from path, then applies any
// JSMIN_*-prefixed environment variable overrides on top (env wins, since
// it is typically the outer deployment layer's say over a checked-in
// config file). A zero-valued Settings with only its envDefault tags
// applied is returned if path is empty.
func Load(path string) (*Settings, error) {
	s := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, err
		}
	}
	if err := env.Parse(s); err != nil {
		return nil, err
	}
	s.resolveLocalRenaming()
	return s, nil
}
