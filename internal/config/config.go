package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/penev-ff/dynarr/internal/workload"
)

const (
	DefaultSeed  = 1
	DefaultCount = 64
)

type Config struct {
	Name     string       `yaml:"name"`
	Seed     int64        `yaml:"seed"`
	Capacity int          `yaml:"capacity"`
	Steps    []StepConfig `yaml:"steps"`
}

type StepConfig struct {
	Op       string `yaml:"op"`
	Count    int    `yaml:"count"`
	Capacity int    `yaml:"capacity"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "append",
		Seed: DefaultSeed,
		Steps: []StepConfig{
			{Op: "push", Count: DefaultCount},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Steps = nil
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

// ToWorkload converts the parsed config into a replayable workload.
func (c *Config) ToWorkload() workload.Workload {
	steps := make([]workload.Step, 0, len(c.Steps))
	for _, s := range c.Steps {
		steps = append(steps, workload.Step{
			Op:       workload.OpKind(s.Op),
			Count:    s.Count,
			Capacity: s.Capacity,
		})
	}
	return workload.Workload{
		Name:     c.Name,
		Seed:     c.Seed,
		Capacity: c.Capacity,
		Steps:    steps,
	}
}
