package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/growlab/internal/anim"
	"github.com/san-kum/growlab/internal/plot"
)

const (
	DefaultAxiom      = "F"
	DefaultIterations = 4
	DefaultAngle      = 25.0
	DefaultStep       = 5.0
	DefaultBatch      = 8
	DefaultFPS        = 60
)

// Config is one drawable L-system plus its pacing parameters.
type Config struct {
	Name       string  `yaml:"name"`
	Desc       string  `yaml:"desc"`
	Axiom      string  `yaml:"axiom"`
	Rules      string  `yaml:"rules"`
	Iterations int     `yaml:"iterations"`
	Angle      float64 `yaml:"angle"`
	Step       float64 `yaml:"step"`
	Draw       string  `yaml:"draw"`
	MaxLen     int     `yaml:"max_len"`
	Batch      int     `yaml:"batch"`
	DelayMs    int     `yaml:"delay_ms"`
	FPS        int     `yaml:"fps"`
	Theme      string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Axiom:      DefaultAxiom,
		Iterations: DefaultIterations,
		Angle:      DefaultAngle,
		Step:       DefaultStep,
		Batch:      DefaultBatch,
		FPS:        DefaultFPS,
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

// PlotConfig maps the file/flag level config onto the pipeline config.
func (c *Config) PlotConfig() plot.Config {
	return plot.Config{
		Axiom:      c.Axiom,
		RulesText:  c.Rules,
		Iterations: c.Iterations,
		AngleDeg:   c.Angle,
		Step:       c.Step,
		Draw:       c.Draw,
		MaxLen:     c.MaxLen,
	}
}

// AnimOptions maps the pacing fields onto scheduler options.
func (c *Config) AnimOptions() anim.Options {
	return anim.Options{
		Batch: c.Batch,
		Delay: time.Duration(c.DelayMs) * time.Millisecond,
	}
}

// FrameInterval returns the frame pacing interval for the grow view.
func (c *Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps < 1 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
