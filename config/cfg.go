package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	PathsConfig struct {
		Template string `yaml:"template,omitempty"`
		Theme    string `yaml:"theme,omitempty"`
	}

	DocumentConfig struct {
		// FixZip rewrites the output archive without data descriptors so it
		// survives import into Google Slides and other touchy zip readers.
		FixZip    bool `yaml:"fix_zip"`
		Overwrite bool `yaml:"overwrite"`
	}

	Config struct {
		Version  int            `yaml:"version"`
		Paths    PathsConfig    `yaml:"paths"`
		Document DocumentConfig `yaml:"document"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

func defaultConfig() *Config {
	return &Config{
		Version: 1,
		Document: DocumentConfig{
			FixZip: true,
		},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
	}
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported configuration version: %d", cfg.Version)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposing its values on top of built-in defaults. Empty path returns
// defaults only.
func LoadConfiguration(path string) (*Config, error) {
	cfg := defaultConfig()
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Prepare serializes built-in default configuration values.
func Prepare() ([]byte, error) {
	return Dump(defaultConfig())
}

// Dump serializes actual configuration values.
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
