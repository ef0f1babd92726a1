package config

import "sort"

var Presets = map[string]*Config{
	"append-heavy": {
		Name: "append-heavy", Seed: 1,
		Steps: []StepConfig{
			{Op: "push", Count: 1000},
		},
	},
	"churn": {
		Name: "churn", Seed: 1,
		Steps: []StepConfig{
			{Op: "push", Count: 200},
			{Op: "pop", Count: 150},
			{Op: "push", Count: 200},
			{Op: "pop", Count: 150},
			{Op: "push", Count: 200},
		},
	},
	"spike": {
		Name: "spike", Seed: 1,
		Steps: []StepConfig{
			{Op: "push", Count: 500},
			{Op: "clear"},
			{Op: "push", Count: 40},
		},
	},
	"rebuild": {
		Name: "rebuild", Seed: 1,
		Steps: []StepConfig{
			{Op: "push", Count: 300},
			{Op: "reset"},
			{Op: "push", Count: 300},
		},
	},
	"reserved": {
		Name: "reserved", Seed: 1,
		Steps: []StepConfig{
			{Op: "reserve", Capacity: 1024},
			{Op: "push", Count: 1000},
		},
	},
	"tiny": {
		Name: "tiny", Seed: 1, Capacity: 2,
		Steps: []StepConfig{
			{Op: "push", Count: 33},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
