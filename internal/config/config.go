// Package config loads the optional YAML configuration file and supplies the
// defaults used when no file is given.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration of the countdown tool.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Game   GameConfig   `yaml:"game"`
	Search SearchConfig `yaml:"search"`
	Batch  BatchConfig  `yaml:"batch"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// GameConfig holds the rules of the classic game that sit outside the solver.
type GameConfig struct {
	// Count is how many numbers a puzzle must have. 0 accepts any count.
	Count int `yaml:"count" validate:"gte=0,lte=63"`
}

type SearchConfig struct {
	EarlyExit    string `yaml:"early_exit" validate:"oneof=subsets top"`
	AllowSubsets bool   `yaml:"allow_subsets"`
}

type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=1"`
}

type OutputConfig struct {
	Color string `yaml:"color" validate:"oneof=auto always never"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "warn", Format: "text"},
		Game:   GameConfig{Count: 6},
		Search: SearchConfig{EarlyExit: "subsets"},
		Batch:  BatchConfig{Workers: runtime.NumCPU()},
		Output: OutputConfig{Color: "auto"},
	}
}

var validate = validator.New()

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config value %v for %s (rule %s)", fe.Value(), fe.Namespace(), fe.Tag())
		}
		return err
	}
	return nil
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
