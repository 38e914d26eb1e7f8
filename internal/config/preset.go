package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named set of simulation parameters kept in its own YAML file.
type Preset struct {
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Simulation  SimulationConfig `yaml:"simulation" json:"simulation"`
}

func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = PresetID(path)
	}
	return &p, nil
}

// PresetID is the file name without its YAML extension.
func PresetID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}

// ListPresets loads every *.yaml / *.yml file in dir, keyed by PresetID.
// Files that fail to parse are returned in skipped rather than aborting the listing.
func ListPresets(dir string) (presets map[string]*Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	presets = map[string]*Preset{}
	skipped = map[string]error{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		p, err := LoadPreset(filepath.Join(dir, name))
		if err != nil {
			skipped[name] = err
			continue
		}
		presets[PresetID(name)] = p
	}
	return presets, skipped, nil
}

// SortedPresetIDs returns the keys of presets in lexical order.
func SortedPresetIDs(presets map[string]*Preset) []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
