package timeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVOverridesDurationsOnly(t *testing.T) {
	path := writeCSV(t, "Plant,SowToSeedlingDays,SeedlingToHarvestDays,HarvestWindowDays\n"+
		"Tomatoes,10,50,25\n")

	r := NewRegistry()
	before := r.Lookup("Tomatoes")
	require.NoError(t, LoadFromFiles(r, path, ""))

	after := r.Lookup("Tomatoes")
	assert.Equal(t, 10, after.SowToSeedlingDays)
	assert.Equal(t, 50, after.SeedlingToHarvestDays)
	assert.Equal(t, 25, after.HarvestWindowDays)
	// Activities and climate table survive an override.
	assert.Equal(t, before.KeyActivities, after.KeyActivities)
	assert.Equal(t, before.ClimateAdjustments, after.ClimateAdjustments)
}

func TestLoadCSVRegistersNewPlantFromDefaultTemplate(t *testing.T) {
	path := writeCSV(t, "Plant,SowToSeedlingDays,SeedlingToHarvestDays\n"+
		"Pumpkin,14,95\n")

	r := NewRegistry()
	require.NoError(t, LoadFromFiles(r, path, ""))

	require.True(t, r.Has("Pumpkin"))
	tl := r.Lookup("Pumpkin")
	assert.Equal(t, 14, tl.SowToSeedlingDays)
	assert.Equal(t, 95, tl.SeedlingToHarvestDays)
	assert.Equal(t, r.Default().KeyActivities, tl.KeyActivities)
}

func TestLoadCSVHeaderAliases(t *testing.T) {
	path := writeCSV(t, "name,sow_days,grow_days\n"+
		"Kale,9,55\n")

	r := NewRegistry()
	require.NoError(t, LoadFromFiles(r, path, ""))
	assert.True(t, r.Has("Kale"))
}

func TestLoadCSVStripsByteOrderMark(t *testing.T) {
	path := writeCSV(t, "\uFEFFPlant,SowToSeedlingDays,SeedlingToHarvestDays\n"+
		"Silverbeet,12,48\n")

	r := NewRegistry()
	require.NoError(t, LoadFromFiles(r, path, ""))
	require.True(t, r.Has("Silverbeet"), "a BOM on the first header must not hide the Plant column")
	assert.Equal(t, 12, r.Lookup("Silverbeet").SowToSeedlingDays)
}

func TestLoadCSVSkipsInvalidRows(t *testing.T) {
	path := writeCSV(t, "Plant,SowToSeedlingDays,SeedlingToHarvestDays\n"+
		"Ghost,0,50\n"+
		",10,50\n"+
		"Real,8,40\n")

	r := NewRegistry()
	require.NoError(t, LoadFromFiles(r, path, ""))
	assert.False(t, r.Has("Ghost"))
	assert.True(t, r.Has("Real"))
}

func TestLoadCSVMissingColumns(t *testing.T) {
	path := writeCSV(t, "Plant,Colour\nTomatoes,red\n")

	r := NewRegistry()
	err := LoadFromFiles(r, path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, LoadFromFiles(r, filepath.Join(t.TempDir(), "nope.csv"), ""))
}
