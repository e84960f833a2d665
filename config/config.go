package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file generate looks for when -c is not given.
const DefaultFile = "tablegen.yaml"

// Config is the flat set of generation options. Flags override file
// values; nothing is read from ambient state at generation time.
type Config struct {
	OutputDir      string   `yaml:"output_dir"`
	PackageName    string   `yaml:"package"`
	QueryAccessors bool     `yaml:"query_accessors"`
	RuntimeImport  string   `yaml:"runtime_import"`
	Tables         []string `yaml:"tables"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OutputDir:   "models",
		PackageName: "models",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	return cfg, nil
}

// Includes reports whether table is selected by the config. An empty
// Tables list selects every table.
func (c Config) Includes(table string) bool {
	if len(c.Tables) == 0 {
		return true
	}
	for _, t := range c.Tables {
		if t == table {
			return true
		}
	}
	return false
}
