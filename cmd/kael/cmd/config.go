package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

var knownModules = map[string]bool{"fs": true, "path": true, "http": true, "json": true}

// Config is the optional .kaelrc.yaml project configuration, loaded from
// the current working directory if present.
type Config struct {
	// Modules restricts which require()-able host modules scripts may load.
	// An empty list means all built-in modules (fs, path, http, json) are
	// available.
	Modules []string `yaml:"modules"`
	// Trace enables the --trace execution trace by default.
	Trace bool `yaml:"trace"`
}

const configFileName = ".kaelrc.yaml"

// loadConfig reads .kaelrc.yaml from the working directory. A missing file
// is not an error: it yields the zero Config.
func loadConfig() (*Config, error) {
	data, err := os.ReadFile(configFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	for _, m := range cfg.Modules {
		if !knownModules[m] {
			return nil, fmt.Errorf("%s: unknown module %q in modules list", configFileName, m)
		}
	}
	return &cfg, nil
}
