package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWorkers    = 1
	DefaultTheme      = "minimal"
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 60
)

var (
	ErrNoPoints         = errors.New("config: no sample points")
	ErrNonPositivePoint = errors.New("config: sample points must be positive")
	ErrUnknownPreset    = errors.New("config: unknown preset")
	ErrWorkers          = errors.New("config: workers must be at least 1")
)

type Config struct {
	Points  []int      `yaml:"points"`
	Preset  string     `yaml:"preset"`
	Workers int        `yaml:"workers"`
	Theme   string     `yaml:"theme"`
	Plot    PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Points:  []int{10, 100, 1000, 10000},
		Workers: DefaultWorkers,
		Theme:   DefaultTheme,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
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

// SamplePoints returns the preset's points when a preset is named,
// otherwise the configured points.
func (c *Config) SamplePoints() ([]int, error) {
	if c.Preset == "" {
		return append([]int(nil), c.Points...), nil
	}
	points := GetPreset(c.Preset)
	if points == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, c.Preset, ListPresets())
	}
	return points, nil
}

func (c *Config) Validate() error {
	points, err := c.SamplePoints()
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return ErrNoPoints
	}
	for _, n := range points {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrNonPositivePoint, n)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrWorkers, c.Workers)
	}
	return nil
}
