package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NetSummaryDef configures the per-network summary task.
type NetSummaryDef struct {
	TableSize int `yaml:"table_size"`
}

// HostGraphDef configures the network->host->entry aggregation task.
type HostGraphDef struct {
	HostTableSize    int `yaml:"host_table_size"`
	NetworkTableSize int `yaml:"network_table_size"`
}

// TopKDef configures the access-frequency ranking task.
type TopKDef struct {
	K         int `yaml:"k"`
	TableSize int `yaml:"table_size"`
}

// TimelineDef configures the sorted timeline task.
type TimelineDef struct {
	OutputPath string `yaml:"output_path"`
}

// AnalyzerConfig holds the configuration for the log analyzer.
type AnalyzerConfig struct {
	Types      []string      `yaml:"types"`
	NetSummary NetSummaryDef `yaml:"netsummary"`
	HostGraph  HostGraphDef  `yaml:"hostgraph"`
	TopK       TopKDef       `yaml:"topk"`
	Timeline   TimelineDef   `yaml:"timeline"`
}

// InputConfig identifies the access log to ingest.
type InputConfig struct {
	Path string `yaml:"path"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
