package config

import "sort"

// Presets are named sample-point sets. "default" matches the classic
// four decades.
var Presets = map[string][]int{
	"default": {10, 100, 1000, 10000},
	"small":   {4, 8, 16, 32},
	"dense":   {10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	"wide":    {10, 100, 1000, 10000, 100000, 1000000},
	"powers2": {16, 64, 256, 1024, 4096},
}

func GetPreset(name string) []int {
	points, ok := Presets[name]
	if !ok {
		return nil
	}
	return append([]int(nil), points...)
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
