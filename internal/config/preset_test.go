package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPresets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "calm.yaml", "description: calm\nsimulation: {std_return: 0.001}\n")
	writeFile(t, dir, "wild.yml", "name: Wild\nsimulation: {std_return: 0.05}\n")
	writeFile(t, dir, "broken.yaml", "simulation: [not, a, map\n")
	writeFile(t, dir, "notes.txt", "ignored")

	presets, skipped, err := ListPresets(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"calm", "wild"}, SortedPresetIDs(presets))
	assert.Equal(t, "calm", presets["calm"].Name)
	assert.Equal(t, "Wild", presets["wild"].Name)
	assert.Equal(t, 0.05, *presets["wild"].Simulation.StdReturn)
	assert.Contains(t, skipped, "broken.yaml")
}

func TestListPresets_RepoExamples(t *testing.T) {
	presets, skipped, err := ListPresets("../../examples/presets")
	require.NoError(t, err)
	assert.Empty(t, skipped)
	for id, p := range presets {
		assert.NoError(t, p.Simulation.ToParams().Validate(), id)
	}
	assert.Contains(t, presets, "default")
}
