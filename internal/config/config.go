package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/sragstats/internal/geo"
	"github.com/gyeh/sragstats/internal/model"
)

// Export formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// DefaultMetric is the aggregate column rendered on the map when none is chosen.
const DefaultMetric = "TOTAL"

// Config holds all runtime configuration for a sragload run.
type Config struct {
	Archives      []string
	OutputDir     string
	TempDir       string   // parent of the scoped extraction area; os.TempDir when empty
	LogFormat     string   // "text" or "json"
	LogLevel      string
	Formats       []string `yaml:"formats"` // subset of csv, parquet
	Metric        string   `yaml:"metric"`  // one of model.AllMetrics
	Boundaries    string   `yaml:"boundaries"`
	NameProperty  string   `yaml:"name_property"`
	ValueProperty string   `yaml:"value_property"`
	MetricsFile   string   `yaml:"metrics_file"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Formats       []string `yaml:"formats"`
	Metric        string   `yaml:"metric"`
	Boundaries    string   `yaml:"boundaries"`
	NameProperty  string   `yaml:"name_property"`
	ValueProperty string   `yaml:"value_property"`
	MetricsFile   string   `yaml:"metrics_file"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set (from flags) win over the file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(c.Formats) == 0 {
		c.Formats = yc.Formats
	}
	c.Metric = firstNonEmpty(c.Metric, yc.Metric)
	c.Boundaries = firstNonEmpty(c.Boundaries, yc.Boundaries)
	c.NameProperty = firstNonEmpty(c.NameProperty, yc.NameProperty)
	c.ValueProperty = firstNonEmpty(c.ValueProperty, yc.ValueProperty)
	c.MetricsFile = firstNonEmpty(c.MetricsFile, yc.MetricsFile)
	return c.validateOutputs()
}

// validateOutputs checks format and metric names, filling defaults for
// anything unset.
func (c *Config) validateOutputs() error {
	if len(c.Formats) == 0 {
		c.Formats = []string{FormatCSV}
	}
	for _, f := range c.Formats {
		if f != FormatCSV && f != FormatParquet {
			return fmt.Errorf("unknown export format %q", f)
		}
	}
	if c.Metric == "" {
		c.Metric = DefaultMetric
	}
	if _, ok := model.MetricByName(c.Metric); !ok {
		return fmt.Errorf("unknown metric %q; want one of %v", c.Metric, model.MetricNames())
	}
	if c.NameProperty == "" {
		c.NameProperty = geo.DefaultNameProperty
	}
	if c.ValueProperty == "" {
		c.ValueProperty = c.Metric
	}
	return nil
}

// HasFormat reports whether exports in format f were requested.
func (c *Config) HasFormat(f string) bool {
	for _, have := range c.Formats {
		if have == f {
			return true
		}
	}
	return false
}

// Validate checks that at least one archive was given and all are readable.
func (c *Config) Validate() error {
	if len(c.Archives) == 0 {
		return fmt.Errorf("at least one archive is required")
	}
	for _, a := range c.Archives {
		st, err := os.Stat(a)
		if err != nil {
			return fmt.Errorf("archive not accessible: %w", err)
		}
		if st.IsDir() {
			return fmt.Errorf("archive %s is a directory", a)
		}
	}
	return nil
}

// ValidateWithOutput checks archives, the output directory and export options.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("--out is required")
	}
	if c.Boundaries != "" {
		if _, err := os.Stat(c.Boundaries); err != nil {
			return fmt.Errorf("boundaries not accessible: %w", err)
		}
	}
	return c.validateOutputs()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
