package nexttag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional YAML configuration file. It supplies
// defaults for repeated invocations; command-line flags always win over
// file values.
//
//	version_file: version.txt
//	bump: patch
//	prefix: dev
type FileConfig struct {
	VersionFile string `yaml:"version_file"`
	Bump        string `yaml:"bump"`
	Prefix      string `yaml:"prefix"`
	Suffix      string `yaml:"suffix"`
	Module      string `yaml:"module"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Field: "config file", Reason: fmt.Sprintf("cannot read %s: %v", path, err)}
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Field: "config file", Reason: fmt.Sprintf("invalid YAML in %s: %v", path, err)}
	}

	if cfg.Bump != "" {
		if _, err := ParseBump(cfg.Bump); err != nil {
			return nil, &ConfigError{Field: "config file", Reason: fmt.Sprintf("invalid bump %q", cfg.Bump)}
		}
	}
	return &cfg, nil
}
