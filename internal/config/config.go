package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-linereverser/pkg/reverse"
	"github.com/askiada/go-linereverser/pkg/reverser"
)

type Config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Unit     string `yaml:"unit"`
	Strict   bool   `yaml:"strict"`
	LogLevel string `yaml:"log_level"`
	Graph    string `yaml:"graph"`
	Measure  bool   `yaml:"measure"`
}

// Default returns the configuration of a plain run: input.txt reversed byte by byte
// into output.txt, with logging disabled.
func Default() *Config {
	return &Config{
		Input:    reverser.DefaultInputPath,
		Output:   reverser.DefaultOutputPath,
		Unit:     reverse.Byte.String(),
		LogLevel: zerolog.Disabled.String(),
	}
}

// Load reads the YAML file at configPath on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return cfg, nil
}

// Validate checks the values that are parsed later on.
func (c *Config) Validate() error {
	if _, err := c.ReverseUnit(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Input == "" {
		return errors.New("input must be set")
	}
	if c.Output == "" {
		return errors.New("output must be set")
	}

	return nil
}

func (c *Config) ReverseUnit() (reverse.Unit, error) {
	unit, err := reverse.ParseUnit(c.Unit)
	if err != nil {
		return reverse.Byte, errors.Wrap(err, "invalid unit")
	}

	return unit, nil
}

func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Disabled, errors.Wrap(err, "invalid log level")
	}

	return level, nil
}
