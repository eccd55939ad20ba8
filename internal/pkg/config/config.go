package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"setup-link/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Control port backends
const (
	BackendNetlink = "netlink"
	BackendIoctl   = "ioctl"
)

// DefaultInterval is the fixed poll interval between reconciliation ticks
const DefaultInterval = 100 * time.Millisecond

// MetricsConfig represents the optional Prometheus listener
type MetricsConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// HooksConfig represents the actions run when the link first comes up
type HooksConfig struct {
	OnUp          [][]string    `yaml:"on_up,omitempty"`
	SdNotify      bool          `yaml:"sd_notify,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`
	InspectDriver bool          `yaml:"inspect_driver,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging  logging.LogConfig `yaml:"logging"`
	Backend  string            `yaml:"backend"`
	Interval time.Duration     `yaml:"interval"`
	Metrics  MetricsConfig     `yaml:"metrics"`
	Hooks    HooksConfig       `yaml:"hooks"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging:  logging.DefaultLogConfig,
		Backend:  BackendNetlink,
		Interval: DefaultInterval,
	}
}

// Load loads configuration from a YAML file on top of the defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case BackendNetlink, BackendIoctl:
	default:
		return fmt.Errorf("unknown backend %q: must be %s or %s", c.Backend, BackendNetlink, BackendIoctl)
	}

	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}

	for i, argv := range c.Hooks.OnUp {
		if len(argv) == 0 || argv[0] == "" {
			return fmt.Errorf("hooks.on_up[%d]: command is empty", i)
		}
	}

	if c.Hooks.Timeout < 0 {
		return fmt.Errorf("hooks.timeout must not be negative")
	}

	return nil
}
