// Package config
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server,omitempty"`
	Refresh   RefreshConfig   `yaml:"refresh,omitempty"`
	Telemetry TelemetryConfig `yaml:"telemetry,omitempty"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Port int `yaml:"port,omitempty"` // Default: 8050
}

// RefreshConfig holds the background poll settings
type RefreshConfig struct {
	IntervalMS int `yaml:"interval_ms,omitempty"` // Default: 60000 (one minute)
}

// TelemetryConfig points at the telemetry file and names its sensor columns
type TelemetryConfig struct {
	Path    string         `yaml:"path,omitempty"` // Default: ~/telemetria.csv
	Sensors []SensorConfig `yaml:"sensors,omitempty"`
}

// SensorConfig maps a telemetry column to its dropdown label
type SensorConfig struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetPort returns the HTTP port with a default of 8050
func (c *Config) GetPort() int {
	if c.Server.Port <= 0 {
		return 8050
	}
	return c.Server.Port
}

// GetRefreshInterval returns the poll interval with a default of one minute
func (c *Config) GetRefreshInterval() time.Duration {
	if c.Refresh.IntervalMS <= 0 {
		return time.Minute
	}
	return time.Duration(c.Refresh.IntervalMS) * time.Millisecond
}

// GetTelemetryPath returns the telemetry file path, expanding a leading ~/
// against the current user's home directory. Defaults to ~/telemetria.csv.
func (c *Config) GetTelemetryPath() string {
	path := c.Telemetry.Path
	if path == "" {
		path = "~/telemetria.csv"
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetSensors returns the configured sensor columns, falling back to the
// station's stock set
func (c *Config) GetSensors() []SensorConfig {
	if len(c.Telemetry.Sensors) > 0 {
		return c.Telemetry.Sensors
	}
	return []SensorConfig{
		{Name: "pressure", Label: "Pressione"},
		{Name: "temperature", Label: "Temperatura"},
		{Name: "humidity", Label: "Umidità"},
		{Name: "env_pressure", Label: "Pressione Ambientale"},
	}
}

// SensorNames returns the configured column names in declaration order
func (c *Config) SensorNames() []string {
	sensors := c.GetSensors()
	names := make([]string, 0, len(sensors))
	for _, s := range sensors {
		names = append(names, s.Name)
	}
	return names
}

// SensorLabel returns the display label for a column, or the column name
// itself when no label is configured
func (c *Config) SensorLabel(name string) string {
	for _, s := range c.GetSensors() {
		if s.Name == name && s.Label != "" {
			return s.Label
		}
	}
	return name
}
