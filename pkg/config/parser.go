package config

import (
	"fmt"
	"os"

	"github.com/tmarchal/chamber/pkg/chamber"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads and parses the configuration file. An empty filename
// returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := Default()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks the configuration before any visitor task starts.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be greater than 0")
	}

	if c.InPersonDuration <= 0 {
		return fmt.Errorf("inPersonDuration must be greater than 0")
	}

	if c.OnlineDuration <= 0 {
		return fmt.Errorf("onlineDuration must be greater than 0")
	}

	if c.ArrivalStagger < 0 {
		return fmt.Errorf("arrivalStagger must not be negative")
	}

	policy, err := chamber.ParsePolicy(string(c.Fairness))
	if err != nil {
		return err
	}
	c.Fairness = policy

	return nil
}
