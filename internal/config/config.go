package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultFPS      = 60
	DefaultDuration = 12.0
	DefaultDataDir  = ".physlab"
	DefaultDBFile   = "problems.db"
)

// Config is the file-loadable run configuration. Params override the
// registry defaults for the chosen model; Duration caps headless runs of
// unbounded models, which otherwise never complete.
type Config struct {
	Model    string             `yaml:"model"`
	Params   map[string]float64 `yaml:"params"`
	Dt       float64            `yaml:"dt"`
	FPS      int                `yaml:"fps"`
	Duration float64            `yaml:"duration"`
	DataDir  string             `yaml:"data_dir"`
	DBFile   string             `yaml:"db_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "throw",
		Params:   map[string]float64{},
		Dt:       DefaultDt,
		FPS:      DefaultFPS,
		Duration: DefaultDuration,
		DataDir:  DefaultDataDir,
		DBFile:   DefaultDBFile,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
