// Package config loads tableview settings from YAML and resolves per-user
// paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfigName is the config file looked up in the working directory
const ProjectConfigName = ".tableview.yaml"

// Defaults for the table section
const (
	DefaultItemHeight = 30
	DefaultLineUnits  = 30
	DefaultWheelDelta = 90
)

// Config represents the tableview configuration
type Config struct {
	Table  TableConfig  `yaml:"table"`
	Data   DataConfig   `yaml:"data"`
	Update UpdateConfig `yaml:"update"`
}

// TableConfig controls table geometry and columns
type TableConfig struct {
	ItemHeight float64        `yaml:"itemHeight"` // layout units per row
	LineUnits  float64        `yaml:"lineUnits"`  // layout units per terminal line
	WheelDelta float64        `yaml:"wheelDelta"` // layout units per wheel notch
	Columns    []ColumnConfig `yaml:"columns"`
}

// ColumnConfig describes one table column. An empty name makes a spacer.
type ColumnConfig struct {
	Name       string `yaml:"name"`
	Header     string `yaml:"header"`
	Width      int    `yaml:"width"`
	Align      string `yaml:"align"` // left, center, right or stretch
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// DataConfig locates the data sources
type DataConfig struct {
	DB   string `yaml:"db"`
	File string `yaml:"file"` // optional JSONL file shown instead of the database
}

// UpdateConfig controls the release check
type UpdateConfig struct {
	Check bool `yaml:"check"`
}

// Load loads configuration with priority:
// 1. explicitPath, when given
// 2. Project-level: <projectDir>/.tableview.yaml
// 3. Global: <config dir>/config.yaml
// 4. Default: built-in defaults
func Load(explicitPath, projectDir string) (*Config, error) {
	return LoadWithPlatform(explicitPath, projectDir, DefaultPlatform)
}

// LoadWithPlatform allows injecting a custom platform provider for testing
func LoadWithPlatform(explicitPath, projectDir string, platform PlatformProvider) (*Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	projectConfig := filepath.Join(projectDir, ProjectConfigName)
	if isFile(projectConfig) {
		return loadFile(projectConfig)
	}

	if globalConfig := GlobalConfigPathWithPlatform(platform); globalConfig != "" && isFile(globalConfig) {
		return loadFile(globalConfig)
	}

	return DefaultConfig(), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// loadFile loads configuration from a specific file
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces out of range values with defaults
func (c *Config) normalize() {
	if c.Table.ItemHeight <= 0 {
		c.Table.ItemHeight = DefaultItemHeight
	}
	if c.Table.LineUnits <= 0 {
		c.Table.LineUnits = DefaultLineUnits
	}
	if c.Table.WheelDelta <= 0 {
		c.Table.WheelDelta = DefaultWheelDelta
	}
	if len(c.Table.Columns) == 0 {
		c.Table.Columns = DefaultColumns()
	}
	for i := range c.Table.Columns {
		switch c.Table.Columns[i].Align {
		case "", "left", "center", "right", "stretch":
		default:
			c.Table.Columns[i].Align = "left"
		}
		if c.Table.Columns[i].Width < 0 {
			c.Table.Columns[i].Width = 0
		}
	}
}

// DefaultColumns returns the administrative unit columns
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Name: "id", Header: "ID", Width: 8, Align: "right"},
		{Name: "ten", Header: "Name"},
		{Name: "cap", Header: "Level", Width: 12},
		{Name: "parent_id", Header: "Parent", Width: 8, Align: "right"},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			ItemHeight: DefaultItemHeight,
			LineUnits:  DefaultLineUnits,
			WheelDelta: DefaultWheelDelta,
			Columns:    DefaultColumns(),
		},
		Update: UpdateConfig{
			Check: true,
		},
	}
}

// DBPath returns the configured database path or the default one
func (c *Config) DBPath() string {
	if c.Data.DB != "" {
		return c.Data.DB
	}
	return DefaultDBPath()
}
